package domain

// WorkoutPlan is the training program a trainer assigned to a trainee.
// Exercises are embedded in the plan document; ExerciseName is denormalized
// from the trainer-side exercise library so the portal never has to join.
type WorkoutPlan struct {
	ID          string                `bson:"_id" json:"id"`
	TrainerID   string                `bson:"trainer_id" json:"trainer_id"`
	TraineeID   string                `bson:"trainee_id" json:"trainee_id"`
	Name        string                `bson:"name" json:"name"`
	Description *string               `bson:"description,omitempty" json:"description,omitempty"`
	IsActive    bool                  `bson:"is_active" json:"is_active"` // At most one active plan per trainee
	Exercises   []WorkoutPlanExercise `bson:"exercises" json:"exercises"`
}

// WorkoutPlanExercise is one prescribed exercise within a plan day.
type WorkoutPlanExercise struct {
	ExerciseID   string  `bson:"exercise_id" json:"exercise_id"`
	ExerciseName string  `bson:"exercise_name" json:"exercise_name"`
	DayNumber    int     `bson:"day_number" json:"day_number"`
	OrderIndex   int     `bson:"order_index" json:"order_index"`
	SetsCount    *int    `bson:"sets_count,omitempty" json:"sets_count,omitempty"`
	RepsTarget   *string `bson:"reps_target,omitempty" json:"reps_target,omitempty"` // e.g. "8-12"
	WeightNotes  *string `bson:"weight_notes,omitempty" json:"weight_notes,omitempty"`
	RestSeconds  *int    `bson:"rest_seconds,omitempty" json:"rest_seconds,omitempty"`
	Notes        *string `bson:"notes,omitempty" json:"notes,omitempty"`
}
