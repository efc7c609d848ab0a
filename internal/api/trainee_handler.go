package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"fitlog/trainee-portal/internal/domain"
	"fitlog/trainee-portal/internal/service"

	"github.com/gin-gonic/gin"
)

// User-facing messages for the data endpoints, in the app's locale.
const (
	msgNoActivePlan = "לא נמצאה תוכנית פעילה"
	msgLogNotFound  = "לא נמצא יומן ליום זה"
	msgMealNotFound = "הארוחה לא נמצאה"
	msgLoadFailed   = "שגיאה בטעינת הנתונים"
	msgSaveFailed   = "שגיאה בשמירת הנתונים"
)

// TraineeHandler holds the trainee data service dependency. All routes it
// serves run behind SessionMiddleware, so the authenticated trainee is always
// available from the context.
type TraineeHandler struct {
	traineeService service.TraineeService
}

// NewTraineeHandler creates a new TraineeHandler.
func NewTraineeHandler(traineeService service.TraineeService) *TraineeHandler {
	return &TraineeHandler{traineeService: traineeService}
}

// --- Request Structs ---

type SaveDailyLogRequest struct {
	LogDate      string   `json:"log_date"` // YYYY-MM-DD, defaults to today
	WaterML      *int     `json:"water_ml"`
	Steps        *int     `json:"steps"`
	SleepHours   *float64 `json:"sleep_hours"`
	SleepQuality *int     `json:"sleep_quality" binding:"omitempty,min=1,max=5"`
	Mood         *string  `json:"mood"`
	Notes        *string  `json:"notes"`
}

type AddMealRequest struct {
	MealDate    string  `json:"meal_date"` // YYYY-MM-DD, defaults to today
	MealType    string  `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	MealTime    *string `json:"meal_time"`
	Description string  `json:"description" binding:"required"`
}

type AddMeasurementRequest struct {
	Weight            *float64 `json:"weight"`
	BodyFatPercentage *float64 `json:"body_fat_percentage"`
	MuscleMass        *float64 `json:"muscle_mass"`
	MetabolicAge      *float64 `json:"metabolic_age"`
	Chest             *float64 `json:"chest"`
	Waist             *float64 `json:"waist"`
	Hips              *float64 `json:"hips"`
}

// todayDate returns the current date in the YYYY-MM-DD form the store uses.
func todayDate() string {
	return time.Now().Format("2006-01-02")
}

// --- Handler Methods ---

// GetMe returns the authenticated trainee's own profile.
func (h *TraineeHandler) GetMe(c *gin.Context) {
	trainee, err := getTraineeFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify trainee")
		return
	}
	c.JSON(http.StatusOK, trainee)
}

// GetWorkoutPlan returns the trainee's active workout plan.
func (h *TraineeHandler) GetWorkoutPlan(c *gin.Context) {
	trainee, err := getTraineeFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify trainee")
		return
	}

	plan, err := h.traineeService.GetActiveWorkoutPlan(c.Request.Context(), trainee.ID)
	if err != nil {
		if errors.Is(err, service.ErrNoActivePlan) {
			abortWithError(c, http.StatusNotFound, msgNoActivePlan)
		} else {
			abortWithError(c, http.StatusInternalServerError, msgLoadFailed)
		}
		return
	}
	c.JSON(http.StatusOK, plan)
}

// GetMealPlan returns the trainee's active meal plan.
func (h *TraineeHandler) GetMealPlan(c *gin.Context) {
	trainee, err := getTraineeFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify trainee")
		return
	}

	plan, err := h.traineeService.GetActiveMealPlan(c.Request.Context(), trainee.ID)
	if err != nil {
		if errors.Is(err, service.ErrNoActivePlan) {
			abortWithError(c, http.StatusNotFound, msgNoActivePlan)
		} else {
			abortWithError(c, http.StatusInternalServerError, msgLoadFailed)
		}
		return
	}
	c.JSON(http.StatusOK, plan)
}

// GetDailyLog returns the trainee's log for the date in the "date" query
// parameter, defaulting to today.
func (h *TraineeHandler) GetDailyLog(c *gin.Context) {
	trainee, err := getTraineeFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify trainee")
		return
	}

	logDate := c.DefaultQuery("date", todayDate())
	dailyLog, err := h.traineeService.GetDailyLog(c.Request.Context(), trainee.ID, logDate)
	if err != nil {
		if errors.Is(err, service.ErrLogNotFound) {
			abortWithError(c, http.StatusNotFound, msgLogNotFound)
		} else {
			abortWithError(c, http.StatusInternalServerError, msgLoadFailed)
		}
		return
	}
	c.JSON(http.StatusOK, dailyLog)
}

// SaveDailyLog upserts the trainee's log for a date.
func (h *TraineeHandler) SaveDailyLog(c *gin.Context) {
	trainee, err := getTraineeFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify trainee")
		return
	}

	var req SaveDailyLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if req.LogDate == "" {
		req.LogDate = todayDate()
	}

	dailyLog := &domain.DailyLog{
		TraineeID:    trainee.ID,
		LogDate:      req.LogDate,
		WaterML:      req.WaterML,
		Steps:        req.Steps,
		SleepHours:   req.SleepHours,
		SleepQuality: req.SleepQuality,
		Mood:         req.Mood,
		Notes:        req.Notes,
	}

	saved, err := h.traineeService.SaveDailyLog(c.Request.Context(), dailyLog)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, msgSaveFailed)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GetMeals returns the trainee's meals for the date in the "date" query
// parameter, defaulting to today.
func (h *TraineeHandler) GetMeals(c *gin.Context) {
	trainee, err := getTraineeFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify trainee")
		return
	}

	mealDate := c.DefaultQuery("date", todayDate())
	meals, err := h.traineeService.GetMeals(c.Request.Context(), trainee.ID, mealDate)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// AddMeal records a meal for the trainee.
func (h *TraineeHandler) AddMeal(c *gin.Context) {
	trainee, err := getTraineeFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify trainee")
		return
	}

	var req AddMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if req.MealDate == "" {
		req.MealDate = todayDate()
	}

	meal := &domain.Meal{
		TraineeID:   trainee.ID,
		MealDate:    req.MealDate,
		MealType:    domain.MealType(req.MealType),
		MealTime:    req.MealTime,
		Description: req.Description,
	}

	created, err := h.traineeService.AddMeal(c.Request.Context(), meal)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, msgSaveFailed)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteMeal removes one of the trainee's own meals.
func (h *TraineeHandler) DeleteMeal(c *gin.Context) {
	trainee, err := getTraineeFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify trainee")
		return
	}

	mealID := c.Param("id")
	if err := h.traineeService.DeleteMeal(c.Request.Context(), trainee.ID, mealID); err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			abortWithError(c, http.StatusNotFound, msgMealNotFound)
		} else {
			abortWithError(c, http.StatusInternalServerError, msgSaveFailed)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// GetMeasurements returns the trainee's measurements, newest first.
func (h *TraineeHandler) GetMeasurements(c *gin.Context) {
	trainee, err := getTraineeFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify trainee")
		return
	}

	measurements, err := h.traineeService.GetMeasurements(c.Request.Context(), trainee.ID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, measurements)
}

// AddMeasurement records a measurement dated today and notifies the trainer.
func (h *TraineeHandler) AddMeasurement(c *gin.Context) {
	trainee, err := getTraineeFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify trainee")
		return
	}

	var req AddMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	measurement := &domain.Measurement{
		MeasurementDate:   todayDate(),
		Weight:            req.Weight,
		BodyFatPercentage: req.BodyFatPercentage,
		MuscleMass:        req.MuscleMass,
		MetabolicAge:      req.MetabolicAge,
		Chest:             req.Chest,
		Waist:             req.Waist,
		Hips:              req.Hips,
	}

	created, err := h.traineeService.AddMeasurement(c.Request.Context(), trainee, measurement)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, msgSaveFailed)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetWorkoutHistory returns the trainee's completed workouts, newest first.
func (h *TraineeHandler) GetWorkoutHistory(c *gin.Context) {
	trainee, err := getTraineeFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify trainee")
		return
	}

	workouts, err := h.traineeService.GetWorkoutHistory(c.Request.Context(), trainee.ID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, workouts)
}
