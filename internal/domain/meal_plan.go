package domain

// MealPlan is the weekly nutrition program assigned to a trainee.
type MealPlan struct {
	ID        string         `bson:"_id" json:"id"`
	TraineeID string         `bson:"trainee_id" json:"trainee_id"`
	Name      string         `bson:"name" json:"name"`
	IsActive  bool           `bson:"is_active" json:"is_active"`
	Items     []MealPlanItem `bson:"items" json:"items"`
}

// MealPlanItem is one planned meal slot: what to eat at a given meal on a
// given day of the week.
type MealPlanItem struct {
	DayOfWeek   int      `bson:"day_of_week" json:"day_of_week"` // 0 (Sun) - 6 (Sat)
	MealType    MealType `bson:"meal_type" json:"meal_type"`
	Description string   `bson:"description" json:"description"`
	Notes       *string  `bson:"notes,omitempty" json:"notes,omitempty"`
}
