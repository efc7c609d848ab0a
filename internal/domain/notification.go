package domain

import (
	"time"
)

// Notification types pushed to the trainer.
const (
	NotificationNewMeasurement = "new_measurement"
)

// TrainerNotification is an event the portal records for the trainee's
// trainer to see in the trainer-side system. The portal only ever inserts
// these; reading and marking them is the trainer app's business.
type TrainerNotification struct {
	ID               string    `bson:"_id" json:"id"`
	TrainerID        string    `bson:"trainer_id" json:"trainer_id"`
	TraineeID        string    `bson:"trainee_id" json:"trainee_id"`
	NotificationType string    `bson:"notification_type" json:"notification_type"`
	Title            string    `bson:"title" json:"title"`
	Message          string    `bson:"message" json:"message"`
	IsRead           bool      `bson:"is_read" json:"is_read"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}
