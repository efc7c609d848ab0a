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

const dailyLogCollectionName = "daily_log"

// mongoDailyLogRepository implements repository.DailyLogRepository using MongoDB.
type mongoDailyLogRepository struct {
	collection *mongo.Collection
}

// NewMongoDailyLogRepository creates a new instance of mongoDailyLogRepository.
func NewMongoDailyLogRepository(db *mongo.Database) repository.DailyLogRepository {
	return &mongoDailyLogRepository{
		collection: db.Collection(dailyLogCollectionName),
	}
}

// GetByDate retrieves the trainee's log for a date, if one exists.
func (r *mongoDailyLogRepository) GetByDate(ctx context.Context, traineeID, logDate string) (*domain.DailyLog, error) {
	var log domain.DailyLog
	filter := bson.M{"trainee_id": traineeID, "log_date": logDate}

	err := r.collection.FindOne(ctx, filter).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// Upsert writes the log for (trainee_id, log_date), replacing the metric
// fields of an existing document or inserting a new one. Returns the stored
// document with its id populated.
func (r *mongoDailyLogRepository) Upsert(ctx context.Context, log *domain.DailyLog) (*domain.DailyLog, error) {
	if log.TraineeID == "" || log.LogDate == "" {
		return nil, errors.New("daily log trainee id and date are required")
	}

	filter := bson.M{"trainee_id": log.TraineeID, "log_date": log.LogDate}
	update := bson.M{
		"$set": bson.M{
			"water_ml":      log.WaterML,
			"steps":         log.Steps,
			"sleep_hours":   log.SleepHours,
			"sleep_quality": log.SleepQuality,
			"mood":          log.Mood,
			"notes":         log.Notes,
		},
		"$setOnInsert": bson.M{
			"_id":        uuid.NewString(),
			"trainee_id": log.TraineeID,
			"log_date":   log.LogDate,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored domain.DailyLog
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// EnsureDailyLogIndexes creates necessary indexes for the daily_log collection.
func EnsureDailyLogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// One log per trainee per date; the upsert relies on this.
			Keys:    bson.D{{Key: "trainee_id", Value: 1}, {Key: "log_date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
