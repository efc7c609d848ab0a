package mongo

import (
	"context"
	"errors"

	"fitlog/trainee-portal/internal/domain"
	"fitlog/trainee-portal/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const measurementCollectionName = "measurements"

// mongoMeasurementRepository implements repository.MeasurementRepository using MongoDB.
type mongoMeasurementRepository struct {
	collection *mongo.Collection
}

// NewMongoMeasurementRepository creates a new instance of mongoMeasurementRepository.
func NewMongoMeasurementRepository(db *mongo.Database) repository.MeasurementRepository {
	return &mongoMeasurementRepository{
		collection: db.Collection(measurementCollectionName),
	}
}

// GetByTraineeID retrieves all of the trainee's measurements, newest first.
func (r *mongoMeasurementRepository) GetByTraineeID(ctx context.Context, traineeID string) ([]domain.Measurement, error) {
	filter := bson.M{"trainee_id": traineeID}
	opts := options.Find().SetSort(bson.D{{Key: "measurement_date", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var measurements []domain.Measurement
	if err = cursor.All(ctx, &measurements); err != nil {
		return nil, err
	}
	return measurements, nil
}

// Create inserts a measurement and returns its generated id.
func (r *mongoMeasurementRepository) Create(ctx context.Context, measurement *domain.Measurement) (string, error) {
	if measurement.TraineeID == "" || measurement.MeasurementDate == "" {
		return "", errors.New("measurement trainee id and date are required")
	}

	measurement.ID = uuid.NewString()
	if _, err := r.collection.InsertOne(ctx, measurement); err != nil {
		return "", err
	}
	return measurement.ID, nil
}

// EnsureMeasurementIndexes creates necessary indexes for the measurements collection.
func EnsureMeasurementIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "trainee_id", Value: 1}, {Key: "measurement_date", Value: -1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
