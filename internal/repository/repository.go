package repository

import (
	"context"
	"time"

	"fitlog/trainee-portal/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// TraineeRepository reads trainee identities. Trainees are provisioned by the
// trainer-side system, so there is deliberately no Create/Update here.
type TraineeRepository interface {
	GetActiveByPhone(ctx context.Context, phone string) (*domain.Trainee, error)
	GetActiveByID(ctx context.Context, id string) (*domain.Trainee, error)
}

// CredentialRepository owns the trainee_auth collection. UpdateLastLogin is
// the only mutation this service ever performs on a credential.
type CredentialRepository interface {
	GetActiveByPhone(ctx context.Context, phone string) (*domain.Credential, error)
	UpdateLastLogin(ctx context.Context, credentialID string, at time.Time) error
}

// WorkoutPlanRepository reads assigned workout plans.
type WorkoutPlanRepository interface {
	GetActiveByTraineeID(ctx context.Context, traineeID string) (*domain.WorkoutPlan, error)
}

// MealPlanRepository reads assigned meal plans.
type MealPlanRepository interface {
	GetActiveByTraineeID(ctx context.Context, traineeID string) (*domain.MealPlan, error)
}

// DailyLogRepository stores one log per trainee per date.
type DailyLogRepository interface {
	GetByDate(ctx context.Context, traineeID, logDate string) (*domain.DailyLog, error)
	Upsert(ctx context.Context, log *domain.DailyLog) (*domain.DailyLog, error)
}

// MealRepository stores logged meals. Delete is scoped to the owning trainee.
type MealRepository interface {
	GetByDate(ctx context.Context, traineeID, mealDate string) ([]domain.Meal, error)
	Create(ctx context.Context, meal *domain.Meal) (string, error)
	Delete(ctx context.Context, id, traineeID string) error
}

// MeasurementRepository stores body measurements.
type MeasurementRepository interface {
	GetByTraineeID(ctx context.Context, traineeID string) ([]domain.Measurement, error)
	Create(ctx context.Context, measurement *domain.Measurement) (string, error)
}

// WorkoutRepository reads performed workout sessions.
type WorkoutRepository interface {
	GetCompletedByTraineeID(ctx context.Context, traineeID string) ([]domain.Workout, error)
}

// NotificationRepository inserts trainer notifications; the trainer-side
// system consumes them.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.TrainerNotification) (string, error)
}
