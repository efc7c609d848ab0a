package domain

// Workout is a performed (or scheduled) workout session. The portal only
// reads completed sessions for the history screen; sessions themselves are
// written by the trainer-side system during or after training.
type Workout struct {
	ID          string            `bson:"_id" json:"id"`
	TraineeID   string            `bson:"trainee_id" json:"trainee_id"`
	WorkoutDate string            `bson:"workout_date" json:"workout_date"` // YYYY-MM-DD
	IsCompleted bool              `bson:"is_completed" json:"is_completed"`
	Exercises   []WorkoutExercise `bson:"exercises" json:"exercises"`
}

// WorkoutExercise is one exercise performed within a workout, with its sets
// embedded in recorded order.
type WorkoutExercise struct {
	ExerciseID   string        `bson:"exercise_id" json:"exercise_id"`
	ExerciseName string        `bson:"exercise_name" json:"exercise_name"`
	OrderIndex   int           `bson:"order_index" json:"order_index"`
	Sets         []ExerciseSet `bson:"sets" json:"sets"`
}

// ExerciseSet is a single recorded set.
type ExerciseSet struct {
	SetNumber int      `bson:"set_number" json:"set_number"`
	Weight    *float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	Reps      *int     `bson:"reps,omitempty" json:"reps,omitempty"`
	ToFailure bool     `bson:"to_failure" json:"to_failure"`
}
