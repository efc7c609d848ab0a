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

const (
	workoutPlanCollectionName = "workout_plans"
	mealPlanCollectionName    = "meal_plans"
)

// mongoWorkoutPlanRepository implements repository.WorkoutPlanRepository using MongoDB.
type mongoWorkoutPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutPlanRepository creates a new instance of mongoWorkoutPlanRepository.
func NewMongoWorkoutPlanRepository(db *mongo.Database) repository.WorkoutPlanRepository {
	return &mongoWorkoutPlanRepository{
		collection: db.Collection(workoutPlanCollectionName),
	}
}

// GetActiveByTraineeID retrieves the trainee's active workout plan, if any.
func (r *mongoWorkoutPlanRepository) GetActiveByTraineeID(ctx context.Context, traineeID string) (*domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan
	filter := bson.M{"trainee_id": traineeID, "is_active": true}

	err := r.collection.FindOne(ctx, filter).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// mongoMealPlanRepository implements repository.MealPlanRepository using MongoDB.
type mongoMealPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoMealPlanRepository creates a new instance of mongoMealPlanRepository.
func NewMongoMealPlanRepository(db *mongo.Database) repository.MealPlanRepository {
	return &mongoMealPlanRepository{
		collection: db.Collection(mealPlanCollectionName),
	}
}

// GetActiveByTraineeID retrieves the trainee's active meal plan, if any.
func (r *mongoMealPlanRepository) GetActiveByTraineeID(ctx context.Context, traineeID string) (*domain.MealPlan, error) {
	var plan domain.MealPlan
	filter := bson.M{"trainee_id": traineeID, "is_active": true}

	err := r.collection.FindOne(ctx, filter).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// EnsurePlanIndexes creates indexes for both plan collections.
func EnsurePlanIndexes(ctx context.Context, workoutPlans, mealPlans *mongo.Collection) {
	planIndex := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "trainee_id", Value: 1}, {Key: "is_active", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = workoutPlans.Indexes().CreateMany(ctx, planIndex)
	_, _ = mealPlans.Indexes().CreateMany(ctx, planIndex)
}
