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

const mealCollectionName = "meals"

// mongoMealRepository implements repository.MealRepository using MongoDB.
type mongoMealRepository struct {
	collection *mongo.Collection
}

// NewMongoMealRepository creates a new instance of mongoMealRepository.
func NewMongoMealRepository(db *mongo.Database) repository.MealRepository {
	return &mongoMealRepository{
		collection: db.Collection(mealCollectionName),
	}
}

// GetByDate retrieves the trainee's meals for a date, ordered by meal time.
func (r *mongoMealRepository) GetByDate(ctx context.Context, traineeID, mealDate string) ([]domain.Meal, error) {
	filter := bson.M{"trainee_id": traineeID, "meal_date": mealDate}
	opts := options.Find().SetSort(bson.D{{Key: "meal_time", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var meals []domain.Meal
	if err = cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// Create inserts a logged meal and returns its generated id.
func (r *mongoMealRepository) Create(ctx context.Context, meal *domain.Meal) (string, error) {
	if meal.TraineeID == "" || meal.MealDate == "" || meal.Description == "" {
		return "", errors.New("meal trainee id, date, and description are required")
	}

	meal.ID = uuid.NewString()
	if _, err := r.collection.InsertOne(ctx, meal); err != nil {
		return "", err
	}
	return meal.ID, nil
}

// Delete removes a meal only if it belongs to the given trainee.
func (r *mongoMealRepository) Delete(ctx context.Context, id, traineeID string) error {
	filter := bson.M{"_id": id, "trainee_id": traineeID}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureMealIndexes creates necessary indexes for the meals collection.
func EnsureMealIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "trainee_id", Value: 1}, {Key: "meal_date", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
