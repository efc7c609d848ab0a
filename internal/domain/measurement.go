package domain

// Measurement is a body-composition snapshot recorded by the trainee.
// All numeric fields are optional: trainees fill in whatever their scale
// or tape measure gives them.
type Measurement struct {
	ID                string   `bson:"_id" json:"id"`
	TraineeID         string   `bson:"trainee_id" json:"trainee_id"`
	MeasurementDate   string   `bson:"measurement_date" json:"measurement_date"` // YYYY-MM-DD
	Weight            *float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	BodyFatPercentage *float64 `bson:"body_fat_percentage,omitempty" json:"body_fat_percentage,omitempty"`
	MuscleMass        *float64 `bson:"muscle_mass,omitempty" json:"muscle_mass,omitempty"`
	MetabolicAge      *float64 `bson:"metabolic_age,omitempty" json:"metabolic_age,omitempty"`
	Chest             *float64 `bson:"chest,omitempty" json:"chest,omitempty"`
	Waist             *float64 `bson:"waist,omitempty" json:"waist,omitempty"`
	Hips              *float64 `bson:"hips,omitempty" json:"hips,omitempty"`
}
