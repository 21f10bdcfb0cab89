package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TeamMember struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Role        string             `bson:"role" json:"role"`
	ImageURL    string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	GithubLink  string             `bson:"github_link,omitempty" json:"githubLink,omitempty"`
	LinkedIn    string             `bson:"linkedin,omitempty" json:"linkedIn,omitempty"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Department  string             `bson:"department,omitempty" json:"department,omitempty"`
	Branch      string             `bson:"branch,omitempty" json:"branch,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

type CommitteeMember struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Role       string             `bson:"role" json:"role"`
	Department string             `bson:"department,omitempty" json:"department,omitempty"`
	Year       string             `bson:"year,omitempty" json:"year,omitempty"` // e.g. "First Year"
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}
