package mongo

import (
	"context"
	"errors"

	"fitlog/trainee-portal/internal/domain"
	"fitlog/trainee-portal/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const traineeCollectionName = "trainees"

// mongoTraineeRepository implements repository.TraineeRepository using MongoDB.
type mongoTraineeRepository struct {
	collection *mongo.Collection
}

// NewMongoTraineeRepository creates a new instance of mongoTraineeRepository.
// It expects a connected *mongo.Database instance.
func NewMongoTraineeRepository(db *mongo.Database) repository.TraineeRepository {
	return &mongoTraineeRepository{
		collection: db.Collection(traineeCollectionName),
	}
}

// GetActiveByPhone retrieves an active trainee by exact phone match.
// Inactive trainees are invisible to this lookup by contract.
func (r *mongoTraineeRepository) GetActiveByPhone(ctx context.Context, phone string) (*domain.Trainee, error) {
	var trainee domain.Trainee
	filter := bson.M{"phone": phone, "is_active": true}

	err := r.collection.FindOne(ctx, filter).Decode(&trainee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &trainee, nil
}

// GetActiveByID retrieves an active trainee by id.
func (r *mongoTraineeRepository) GetActiveByID(ctx context.Context, id string) (*domain.Trainee, error) {
	var trainee domain.Trainee
	filter := bson.M{"_id": id, "is_active": true}

	err := r.collection.FindOne(ctx, filter).Decode(&trainee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &trainee, nil
}

// EnsureTraineeIndexes creates necessary indexes for the trainees collection.
// Call this once during application startup.
func EnsureTraineeIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Phone must be unique among active trainees; deactivated records
			// may keep their number for a replacement provisioning.
			Keys: bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"is_active": true}),
		},
		{
			Keys:    bson.D{{Key: "trainer_id", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
