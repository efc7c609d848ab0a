package domain

import (
	"time"
)

// Trainee represents a client of a personal trainer. Trainees are provisioned
// by the trainer-side system; this service only reads them.
type Trainee struct {
	ID        string    `bson:"_id" json:"id"`
	TrainerID string    `bson:"trainer_id" json:"trainer_id"`
	FullName  string    `bson:"full_name" json:"full_name"`
	Phone     string    `bson:"phone" json:"phone"` // Unique among active trainees
	Email     *string   `bson:"email,omitempty" json:"email,omitempty"`
	BirthDate *string   `bson:"birth_date,omitempty" json:"birth_date,omitempty"` // YYYY-MM-DD
	Gender    *string   `bson:"gender,omitempty" json:"gender,omitempty"`
	Height    *float64  `bson:"height,omitempty" json:"height,omitempty"` // cm
	IsActive  bool      `bson:"is_active" json:"is_active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
