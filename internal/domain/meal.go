package domain

// MealType classifies a logged meal.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// Meal is a single meal the trainee logged for a given day.
type Meal struct {
	ID          string   `bson:"_id" json:"id"`
	TraineeID   string   `bson:"trainee_id" json:"trainee_id"`
	MealDate    string   `bson:"meal_date" json:"meal_date"` // YYYY-MM-DD
	MealType    MealType `bson:"meal_type" json:"meal_type"`
	MealTime    *string  `bson:"meal_time,omitempty" json:"meal_time,omitempty"` // HH:MM
	Description string   `bson:"description" json:"description"`
}
