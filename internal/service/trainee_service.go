package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"fitlog/trainee-portal/internal/domain"
	"fitlog/trainee-portal/internal/repository"
)

// --- Error Definitions ---
var (
	ErrTraineeNotFound = errors.New("trainee not found or inactive")
	ErrNoActivePlan    = errors.New("no active plan")
	ErrLogNotFound     = errors.New("daily log not found")
	ErrMealNotFound    = errors.New("meal not found")
)

const notificationTimeout = 5 * time.Second

// TraineeService covers everything an authenticated trainee can do in the
// portal: read assigned plans, log daily metrics and meals, record
// measurements, and review workout history. Every operation is scoped to the
// given trainee id.
type TraineeService interface {
	GetProfile(ctx context.Context, traineeID string) (*domain.Trainee, error)

	GetActiveWorkoutPlan(ctx context.Context, traineeID string) (*domain.WorkoutPlan, error)
	GetActiveMealPlan(ctx context.Context, traineeID string) (*domain.MealPlan, error)

	GetDailyLog(ctx context.Context, traineeID, logDate string) (*domain.DailyLog, error)
	SaveDailyLog(ctx context.Context, log *domain.DailyLog) (*domain.DailyLog, error)

	GetMeals(ctx context.Context, traineeID, mealDate string) ([]domain.Meal, error)
	AddMeal(ctx context.Context, meal *domain.Meal) (*domain.Meal, error)
	DeleteMeal(ctx context.Context, traineeID, mealID string) error

	GetMeasurements(ctx context.Context, traineeID string) ([]domain.Measurement, error)
	AddMeasurement(ctx context.Context, trainee *domain.Trainee, measurement *domain.Measurement) (*domain.Measurement, error)

	GetWorkoutHistory(ctx context.Context, traineeID string) ([]domain.Workout, error)
}

// --- Service Implementation ---

// traineeService implements the TraineeService interface.
type traineeService struct {
	traineeRepo      repository.TraineeRepository
	workoutPlanRepo  repository.WorkoutPlanRepository
	mealPlanRepo     repository.MealPlanRepository
	dailyLogRepo     repository.DailyLogRepository
	mealRepo         repository.MealRepository
	measurementRepo  repository.MeasurementRepository
	workoutRepo      repository.WorkoutRepository
	notificationRepo repository.NotificationRepository
}

// NewTraineeService creates a new instance of traineeService.
func NewTraineeService(
	traineeRepo repository.TraineeRepository,
	workoutPlanRepo repository.WorkoutPlanRepository,
	mealPlanRepo repository.MealPlanRepository,
	dailyLogRepo repository.DailyLogRepository,
	mealRepo repository.MealRepository,
	measurementRepo repository.MeasurementRepository,
	workoutRepo repository.WorkoutRepository,
	notificationRepo repository.NotificationRepository,
) TraineeService {
	return &traineeService{
		traineeRepo:      traineeRepo,
		workoutPlanRepo:  workoutPlanRepo,
		mealPlanRepo:     mealPlanRepo,
		dailyLogRepo:     dailyLogRepo,
		mealRepo:         mealRepo,
		measurementRepo:  measurementRepo,
		workoutRepo:      workoutRepo,
		notificationRepo: notificationRepo,
	}
}

// GetProfile re-fetches the trainee's own record. Inactive trainees resolve
// to ErrTraineeNotFound, which ends their session.
func (s *traineeService) GetProfile(ctx context.Context, traineeID string) (*domain.Trainee, error) {
	trainee, err := s.traineeRepo.GetActiveByID(ctx, traineeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTraineeNotFound
		}
		return nil, err
	}
	return trainee, nil
}

// GetActiveWorkoutPlan returns the trainee's active plan with exercises
// ordered by day, then by position within the day.
func (s *traineeService) GetActiveWorkoutPlan(ctx context.Context, traineeID string) (*domain.WorkoutPlan, error) {
	plan, err := s.workoutPlanRepo.GetActiveByTraineeID(ctx, traineeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoActivePlan
		}
		return nil, err
	}

	sort.SliceStable(plan.Exercises, func(i, j int) bool {
		if plan.Exercises[i].DayNumber != plan.Exercises[j].DayNumber {
			return plan.Exercises[i].DayNumber < plan.Exercises[j].DayNumber
		}
		return plan.Exercises[i].OrderIndex < plan.Exercises[j].OrderIndex
	})
	return plan, nil
}

// GetActiveMealPlan returns the trainee's active meal plan with items ordered
// by day of week, then meal type.
func (s *traineeService) GetActiveMealPlan(ctx context.Context, traineeID string) (*domain.MealPlan, error) {
	plan, err := s.mealPlanRepo.GetActiveByTraineeID(ctx, traineeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoActivePlan
		}
		return nil, err
	}

	sort.SliceStable(plan.Items, func(i, j int) bool {
		if plan.Items[i].DayOfWeek != plan.Items[j].DayOfWeek {
			return plan.Items[i].DayOfWeek < plan.Items[j].DayOfWeek
		}
		return plan.Items[i].MealType < plan.Items[j].MealType
	})
	return plan, nil
}

// GetDailyLog returns the trainee's log for a date.
func (s *traineeService) GetDailyLog(ctx context.Context, traineeID, logDate string) (*domain.DailyLog, error) {
	dailyLog, err := s.dailyLogRepo.GetByDate(ctx, traineeID, logDate)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	return dailyLog, nil
}

// SaveDailyLog upserts the log for (trainee, date).
func (s *traineeService) SaveDailyLog(ctx context.Context, dailyLog *domain.DailyLog) (*domain.DailyLog, error) {
	return s.dailyLogRepo.Upsert(ctx, dailyLog)
}

// GetMeals returns the trainee's meals for a date, ordered by meal time.
func (s *traineeService) GetMeals(ctx context.Context, traineeID, mealDate string) ([]domain.Meal, error) {
	meals, err := s.mealRepo.GetByDate(ctx, traineeID, mealDate)
	if err != nil {
		return nil, err
	}
	if meals == nil {
		meals = []domain.Meal{}
	}
	return meals, nil
}

// AddMeal records a meal for the trainee.
func (s *traineeService) AddMeal(ctx context.Context, meal *domain.Meal) (*domain.Meal, error) {
	id, err := s.mealRepo.Create(ctx, meal)
	if err != nil {
		return nil, err
	}
	meal.ID = id
	return meal, nil
}

// DeleteMeal removes one of the trainee's own meals. Another trainee's meal
// is indistinguishable from a missing one.
func (s *traineeService) DeleteMeal(ctx context.Context, traineeID, mealID string) error {
	err := s.mealRepo.Delete(ctx, mealID, traineeID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrMealNotFound
	}
	return err
}

// GetMeasurements returns the trainee's measurements, newest first.
func (s *traineeService) GetMeasurements(ctx context.Context, traineeID string) ([]domain.Measurement, error) {
	measurements, err := s.measurementRepo.GetByTraineeID(ctx, traineeID)
	if err != nil {
		return nil, err
	}
	if measurements == nil {
		measurements = []domain.Measurement{}
	}
	return measurements, nil
}

// AddMeasurement records a measurement and notifies the trainee's trainer.
// The notification is best-effort telemetry for the trainer app: it runs
// detached and its failure never fails the measurement itself.
func (s *traineeService) AddMeasurement(ctx context.Context, trainee *domain.Trainee, measurement *domain.Measurement) (*domain.Measurement, error) {
	measurement.TraineeID = trainee.ID

	id, err := s.measurementRepo.Create(ctx, measurement)
	if err != nil {
		return nil, err
	}
	measurement.ID = id

	notification := &domain.TrainerNotification{
		TrainerID:        trainee.TrainerID,
		TraineeID:        trainee.ID,
		NotificationType: domain.NotificationNewMeasurement,
		Title:            "מדידה חדשה",
		Message:          fmt.Sprintf("%s הוסיף/ה מדידה חדשה", trainee.FullName),
	}
	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
		defer cancel()
		if _, err := s.notificationRepo.Create(notifyCtx, notification); err != nil {
			log.Printf("WARN: failed to notify trainer %s of new measurement: %v", trainee.TrainerID, err)
		}
	}()

	return measurement, nil
}

// GetWorkoutHistory returns the trainee's completed workouts, newest first,
// with exercises and sets in recorded order.
func (s *traineeService) GetWorkoutHistory(ctx context.Context, traineeID string) ([]domain.Workout, error) {
	workouts, err := s.workoutRepo.GetCompletedByTraineeID(ctx, traineeID)
	if err != nil {
		return nil, err
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}

	for i := range workouts {
		sort.SliceStable(workouts[i].Exercises, func(a, b int) bool {
			return workouts[i].Exercises[a].OrderIndex < workouts[i].Exercises[b].OrderIndex
		})
		for j := range workouts[i].Exercises {
			sets := workouts[i].Exercises[j].Sets
			sort.SliceStable(sets, func(a, b int) bool {
				return sets[a].SetNumber < sets[b].SetNumber
			})
		}
	}
	return workouts, nil
}
