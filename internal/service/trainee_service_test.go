package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitlog/trainee-portal/internal/domain"
	"fitlog/trainee-portal/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockWorkoutPlanRepo struct {
	GetActiveByTraineeIDFunc func(ctx context.Context, traineeID string) (*domain.WorkoutPlan, error)
}

func (m *mockWorkoutPlanRepo) GetActiveByTraineeID(ctx context.Context, traineeID string) (*domain.WorkoutPlan, error) {
	return m.GetActiveByTraineeIDFunc(ctx, traineeID)
}

type mockMealPlanRepo struct {
	GetActiveByTraineeIDFunc func(ctx context.Context, traineeID string) (*domain.MealPlan, error)
}

func (m *mockMealPlanRepo) GetActiveByTraineeID(ctx context.Context, traineeID string) (*domain.MealPlan, error) {
	return m.GetActiveByTraineeIDFunc(ctx, traineeID)
}

type mockDailyLogRepo struct {
	GetByDateFunc func(ctx context.Context, traineeID, logDate string) (*domain.DailyLog, error)
	UpsertFunc    func(ctx context.Context, log *domain.DailyLog) (*domain.DailyLog, error)
}

func (m *mockDailyLogRepo) GetByDate(ctx context.Context, traineeID, logDate string) (*domain.DailyLog, error) {
	return m.GetByDateFunc(ctx, traineeID, logDate)
}

func (m *mockDailyLogRepo) Upsert(ctx context.Context, log *domain.DailyLog) (*domain.DailyLog, error) {
	return m.UpsertFunc(ctx, log)
}

type mockMealRepo struct {
	GetByDateFunc func(ctx context.Context, traineeID, mealDate string) ([]domain.Meal, error)
	CreateFunc    func(ctx context.Context, meal *domain.Meal) (string, error)
	DeleteFunc    func(ctx context.Context, id, traineeID string) error
}

func (m *mockMealRepo) GetByDate(ctx context.Context, traineeID, mealDate string) ([]domain.Meal, error) {
	return m.GetByDateFunc(ctx, traineeID, mealDate)
}

func (m *mockMealRepo) Create(ctx context.Context, meal *domain.Meal) (string, error) {
	return m.CreateFunc(ctx, meal)
}

func (m *mockMealRepo) Delete(ctx context.Context, id, traineeID string) error {
	return m.DeleteFunc(ctx, id, traineeID)
}

type mockMeasurementRepo struct {
	GetByTraineeIDFunc func(ctx context.Context, traineeID string) ([]domain.Measurement, error)
	CreateFunc         func(ctx context.Context, measurement *domain.Measurement) (string, error)
}

func (m *mockMeasurementRepo) GetByTraineeID(ctx context.Context, traineeID string) ([]domain.Measurement, error) {
	return m.GetByTraineeIDFunc(ctx, traineeID)
}

func (m *mockMeasurementRepo) Create(ctx context.Context, measurement *domain.Measurement) (string, error) {
	return m.CreateFunc(ctx, measurement)
}

type mockWorkoutRepo struct {
	GetCompletedByTraineeIDFunc func(ctx context.Context, traineeID string) ([]domain.Workout, error)
}

func (m *mockWorkoutRepo) GetCompletedByTraineeID(ctx context.Context, traineeID string) ([]domain.Workout, error) {
	return m.GetCompletedByTraineeIDFunc(ctx, traineeID)
}

type mockNotificationRepo struct {
	CreateFunc func(ctx context.Context, notification *domain.TrainerNotification) (string, error)
}

func (m *mockNotificationRepo) Create(ctx context.Context, notification *domain.TrainerNotification) (string, error) {
	return m.CreateFunc(ctx, notification)
}

type traineeServiceMocks struct {
	trainee      *mockTraineeRepo
	workoutPlan  *mockWorkoutPlanRepo
	mealPlan     *mockMealPlanRepo
	dailyLog     *mockDailyLogRepo
	meal         *mockMealRepo
	measurement  *mockMeasurementRepo
	workout      *mockWorkoutRepo
	notification *mockNotificationRepo
}

func newTraineeService(m *traineeServiceMocks) TraineeService {
	return NewTraineeService(
		m.trainee,
		m.workoutPlan,
		m.mealPlan,
		m.dailyLog,
		m.meal,
		m.measurement,
		m.workout,
		m.notification,
	)
}

func TestGetProfile_InactiveTrainee(t *testing.T) {
	m := &traineeServiceMocks{
		trainee: &mockTraineeRepo{
			GetActiveByIDFunc: func(ctx context.Context, id string) (*domain.Trainee, error) {
				return nil, repository.ErrNotFound
			},
		},
	}
	svc := newTraineeService(m)

	_, err := svc.GetProfile(context.Background(), "t-gone")
	assert.ErrorIs(t, err, ErrTraineeNotFound)
}

func TestGetActiveWorkoutPlan_OrdersExercises(t *testing.T) {
	m := &traineeServiceMocks{
		workoutPlan: &mockWorkoutPlanRepo{
			GetActiveByTraineeIDFunc: func(ctx context.Context, traineeID string) (*domain.WorkoutPlan, error) {
				return &domain.WorkoutPlan{
					ID:        "p1",
					TraineeID: traineeID,
					IsActive:  true,
					Exercises: []domain.WorkoutPlanExercise{
						{ExerciseName: "Deadlift", DayNumber: 2, OrderIndex: 1},
						{ExerciseName: "Squat", DayNumber: 1, OrderIndex: 2},
						{ExerciseName: "Bench Press", DayNumber: 1, OrderIndex: 1},
					},
				}, nil
			},
		},
	}
	svc := newTraineeService(m)

	plan, err := svc.GetActiveWorkoutPlan(context.Background(), "t1")
	require.NoError(t, err)

	names := make([]string, 0, len(plan.Exercises))
	for _, ex := range plan.Exercises {
		names = append(names, ex.ExerciseName)
	}
	assert.Equal(t, []string{"Bench Press", "Squat", "Deadlift"}, names)
}

func TestGetActiveWorkoutPlan_NoPlan(t *testing.T) {
	m := &traineeServiceMocks{
		workoutPlan: &mockWorkoutPlanRepo{
			GetActiveByTraineeIDFunc: func(ctx context.Context, traineeID string) (*domain.WorkoutPlan, error) {
				return nil, repository.ErrNotFound
			},
		},
	}
	svc := newTraineeService(m)

	_, err := svc.GetActiveWorkoutPlan(context.Background(), "t1")
	assert.ErrorIs(t, err, ErrNoActivePlan)
}

func TestGetActiveMealPlan_OrdersItems(t *testing.T) {
	m := &traineeServiceMocks{
		mealPlan: &mockMealPlanRepo{
			GetActiveByTraineeIDFunc: func(ctx context.Context, traineeID string) (*domain.MealPlan, error) {
				return &domain.MealPlan{
					ID:       "mp1",
					IsActive: true,
					Items: []domain.MealPlanItem{
						{DayOfWeek: 1, MealType: domain.MealTypeLunch},
						{DayOfWeek: 0, MealType: domain.MealTypeBreakfast},
						{DayOfWeek: 1, MealType: domain.MealTypeBreakfast},
					},
				}, nil
			},
		},
	}
	svc := newTraineeService(m)

	plan, err := svc.GetActiveMealPlan(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, plan.Items, 3)
	assert.Equal(t, 0, plan.Items[0].DayOfWeek)
	assert.Equal(t, domain.MealTypeBreakfast, plan.Items[1].MealType)
	assert.Equal(t, domain.MealTypeLunch, plan.Items[2].MealType)
}

func TestSaveDailyLog_PassesThroughUpsert(t *testing.T) {
	water := 2000
	m := &traineeServiceMocks{
		dailyLog: &mockDailyLogRepo{
			UpsertFunc: func(ctx context.Context, log *domain.DailyLog) (*domain.DailyLog, error) {
				assert.Equal(t, "t1", log.TraineeID)
				assert.Equal(t, "2026-09-01", log.LogDate)
				stored := *log
				stored.ID = "dl1"
				return &stored, nil
			},
		},
	}
	svc := newTraineeService(m)

	saved, err := svc.SaveDailyLog(context.Background(), &domain.DailyLog{
		TraineeID: "t1",
		LogDate:   "2026-09-01",
		WaterML:   &water,
	})
	require.NoError(t, err)
	assert.Equal(t, "dl1", saved.ID)
	assert.Equal(t, &water, saved.WaterML)
}

func TestGetMeals_EmptyResultIsNotNil(t *testing.T) {
	m := &traineeServiceMocks{
		meal: &mockMealRepo{
			GetByDateFunc: func(ctx context.Context, traineeID, mealDate string) ([]domain.Meal, error) {
				return nil, nil
			},
		},
	}
	svc := newTraineeService(m)

	meals, err := svc.GetMeals(context.Background(), "t1", "2026-09-01")
	require.NoError(t, err)
	assert.NotNil(t, meals)
	assert.Empty(t, meals)
}

func TestDeleteMeal_NotOwned(t *testing.T) {
	m := &traineeServiceMocks{
		meal: &mockMealRepo{
			DeleteFunc: func(ctx context.Context, id, traineeID string) error {
				return repository.ErrNotFound
			},
		},
	}
	svc := newTraineeService(m)

	err := svc.DeleteMeal(context.Background(), "t1", "someone-elses-meal")
	assert.ErrorIs(t, err, ErrMealNotFound)
}

func TestAddMeasurement_NotifiesTrainer(t *testing.T) {
	notified := make(chan *domain.TrainerNotification, 1)
	m := &traineeServiceMocks{
		measurement: &mockMeasurementRepo{
			CreateFunc: func(ctx context.Context, measurement *domain.Measurement) (string, error) {
				return "m1", nil
			},
		},
		notification: &mockNotificationRepo{
			CreateFunc: func(ctx context.Context, notification *domain.TrainerNotification) (string, error) {
				notified <- notification
				return "n1", nil
			},
		},
	}
	svc := newTraineeService(m)

	trainee := &domain.Trainee{ID: "t1", TrainerID: "tr1", FullName: "Dana Cohen", IsActive: true}
	weight := 61.5
	created, err := svc.AddMeasurement(context.Background(), trainee, &domain.Measurement{
		MeasurementDate: "2026-09-01",
		Weight:          &weight,
	})
	require.NoError(t, err)
	assert.Equal(t, "m1", created.ID)
	assert.Equal(t, "t1", created.TraineeID)

	select {
	case n := <-notified:
		assert.Equal(t, "tr1", n.TrainerID)
		assert.Equal(t, "t1", n.TraineeID)
		assert.Equal(t, domain.NotificationNewMeasurement, n.NotificationType)
		assert.Equal(t, "מדידה חדשה", n.Title)
		assert.Contains(t, n.Message, "Dana Cohen")
	case <-time.After(2 * time.Second):
		t.Fatal("trainer was never notified")
	}
}

func TestAddMeasurement_NotificationFailureIsSwallowed(t *testing.T) {
	attempted := make(chan struct{}, 1)
	m := &traineeServiceMocks{
		measurement: &mockMeasurementRepo{
			CreateFunc: func(ctx context.Context, measurement *domain.Measurement) (string, error) {
				return "m1", nil
			},
		},
		notification: &mockNotificationRepo{
			CreateFunc: func(ctx context.Context, notification *domain.TrainerNotification) (string, error) {
				attempted <- struct{}{}
				return "", errors.New("notifications collection unavailable")
			},
		},
	}
	svc := newTraineeService(m)

	trainee := &domain.Trainee{ID: "t1", TrainerID: "tr1", FullName: "Dana Cohen", IsActive: true}
	created, err := svc.AddMeasurement(context.Background(), trainee, &domain.Measurement{MeasurementDate: "2026-09-01"})
	require.NoError(t, err)
	assert.Equal(t, "m1", created.ID)

	select {
	case <-attempted:
	case <-time.After(2 * time.Second):
		t.Fatal("notification insert was never attempted")
	}
}

func TestGetWorkoutHistory_OrdersExercisesAndSets(t *testing.T) {
	m := &traineeServiceMocks{
		workout: &mockWorkoutRepo{
			GetCompletedByTraineeIDFunc: func(ctx context.Context, traineeID string) ([]domain.Workout, error) {
				return []domain.Workout{
					{
						ID:          "w1",
						WorkoutDate: "2026-08-30",
						IsCompleted: true,
						Exercises: []domain.WorkoutExercise{
							{ExerciseName: "Row", OrderIndex: 2},
							{
								ExerciseName: "Pull Up",
								OrderIndex:   1,
								Sets: []domain.ExerciseSet{
									{SetNumber: 2},
									{SetNumber: 1},
								},
							},
						},
					},
				}, nil
			},
		},
	}
	svc := newTraineeService(m)

	workouts, err := svc.GetWorkoutHistory(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	require.Len(t, workouts[0].Exercises, 2)
	assert.Equal(t, "Pull Up", workouts[0].Exercises[0].ExerciseName)
	assert.Equal(t, 1, workouts[0].Exercises[0].Sets[0].SetNumber)
	assert.Equal(t, 2, workouts[0].Exercises[0].Sets[1].SetNumber)
}
