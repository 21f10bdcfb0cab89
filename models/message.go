package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is an append-only contact-form submission. Reads are gated by
// the admin key; there are no update or delete routes.
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Subject   string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Message   string             `bson:"message,omitempty" json:"message,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
