package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Closed enum values. Unknown values are rejected at the API boundary;
// the empty string takes the default.
const (
	EventTypeWorkshop    = "Workshop"
	EventTypeCompetition = "Competition"
	EventTypeSeminar     = "Seminar"
	EventTypeOther       = "Other"

	EventStatusOpen      = "open"
	EventStatusClosed    = "closed"
	EventStatusCancelled = "cancelled"
)

type UpcomingEvent struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title" json:"title"`
	Type             string             `bson:"type" json:"type"`
	Description      string             `bson:"description" json:"description"`
	Date             time.Time          `bson:"date" json:"date"`
	StartTime        string             `bson:"start_time" json:"startTime"` // e.g. "14:00"
	EndTime          string             `bson:"end_time" json:"endTime"`
	Location         string             `bson:"location" json:"location"`
	RegistrationLink string             `bson:"registration_link,omitempty" json:"registrationLink,omitempty"`
	Status           string             `bson:"status" json:"status"`
	ImageURL         string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Capacity         int                `bson:"capacity,omitempty" json:"capacity,omitempty"`
	CreatedAt        time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updatedAt"`
}

type PastEvent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Date        time.Time          `bson:"date" json:"date"`
	Description string             `bson:"description" json:"description"`
	Badge       string             `bson:"badge,omitempty" json:"badge,omitempty"` // e.g. "1st Place Winner"
	Media       []string           `bson:"media" json:"media"`
	Category    string             `bson:"category" json:"category"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ValidEventType reports whether t is one of the closed event type values.
// The same set doubles as past-event categories.
func ValidEventType(t string) bool {
	switch t {
	case EventTypeWorkshop, EventTypeCompetition, EventTypeSeminar, EventTypeOther:
		return true
	}
	return false
}

func ValidEventStatus(s string) bool {
	switch s {
	case EventStatusOpen, EventStatusClosed, EventStatusCancelled:
		return true
	}
	return false
}
