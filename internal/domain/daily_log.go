package domain

// DailyLog holds the health metrics a trainee logs for a single day.
// At most one log exists per trainee per date; saves upsert on
// (trainee_id, log_date).
type DailyLog struct {
	ID           string   `bson:"_id" json:"id"`
	TraineeID    string   `bson:"trainee_id" json:"trainee_id"`
	LogDate      string   `bson:"log_date" json:"log_date"` // YYYY-MM-DD
	WaterML      *int     `bson:"water_ml,omitempty" json:"water_ml,omitempty"`
	Steps        *int     `bson:"steps,omitempty" json:"steps,omitempty"`
	SleepHours   *float64 `bson:"sleep_hours,omitempty" json:"sleep_hours,omitempty"`
	SleepQuality *int     `bson:"sleep_quality,omitempty" json:"sleep_quality,omitempty"` // 1-5
	Mood         *string  `bson:"mood,omitempty" json:"mood,omitempty"`
	Notes        *string  `bson:"notes,omitempty" json:"notes,omitempty"`
}
