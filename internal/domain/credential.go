package domain

import (
	"time"
)

// Credential is a phone+password-hash pair owned by this service.
// The only field this service ever mutates is LastLogin.
type Credential struct {
	ID           string     `bson:"_id" json:"id"`
	TraineeID    string     `bson:"trainee_id" json:"trainee_id"`
	Phone        string     `bson:"phone" json:"phone"`
	PasswordHash string     `bson:"password_hash" json:"-"` // Never expose this via JSON
	IsActive     bool       `bson:"is_active" json:"is_active"`
	LastLogin    *time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
}
