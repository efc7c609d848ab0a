package mongo

import (
	"context"
	"errors"
	"time"

	"fitlog/trainee-portal/internal/domain"
	"fitlog/trainee-portal/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const notificationCollectionName = "trainer_notifications"

// mongoNotificationRepository implements repository.NotificationRepository using MongoDB.
type mongoNotificationRepository struct {
	collection *mongo.Collection
}

// NewMongoNotificationRepository creates a new instance of mongoNotificationRepository.
func NewMongoNotificationRepository(db *mongo.Database) repository.NotificationRepository {
	return &mongoNotificationRepository{
		collection: db.Collection(notificationCollectionName),
	}
}

// Create inserts a trainer notification and returns its generated id.
func (r *mongoNotificationRepository) Create(ctx context.Context, notification *domain.TrainerNotification) (string, error) {
	if notification.TrainerID == "" || notification.TraineeID == "" {
		return "", errors.New("notification trainer id and trainee id are required")
	}

	notification.ID = uuid.NewString()
	notification.IsRead = false
	notification.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, notification); err != nil {
		return "", err
	}
	return notification.ID, nil
}

// EnsureNotificationIndexes creates necessary indexes for the trainer_notifications collection.
func EnsureNotificationIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "trainer_id", Value: 1}, {Key: "is_read", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
