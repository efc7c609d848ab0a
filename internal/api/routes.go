package api

import (
	"net/http"

	"fitlog/trainee-portal/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the login endpoint and the trainee data API.
//
// The login route lives at the root (the path the mobile client was built
// against); everything else sits under /api/v1 behind the session middleware.
func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	traineeService service.TraineeService,
) {
	router.Use(CORSMiddleware())

	authHandler := NewAuthHandler(authService)
	traineeHandler := NewTraineeHandler(traineeService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.POST("/trainee-login", authHandler.Login)

	apiV1 := router.Group("/api/v1")
	apiV1.Use(SessionMiddleware(traineeService))
	{
		apiV1.GET("/me", traineeHandler.GetMe)

		apiV1.GET("/plans/workout", traineeHandler.GetWorkoutPlan)
		apiV1.GET("/plans/meal", traineeHandler.GetMealPlan)

		apiV1.GET("/daily-log", traineeHandler.GetDailyLog)
		apiV1.PUT("/daily-log", traineeHandler.SaveDailyLog)

		apiV1.GET("/meals", traineeHandler.GetMeals)
		apiV1.POST("/meals", traineeHandler.AddMeal)
		apiV1.DELETE("/meals/:id", traineeHandler.DeleteMeal)

		apiV1.GET("/measurements", traineeHandler.GetMeasurements)
		apiV1.POST("/measurements", traineeHandler.AddMeasurement)

		apiV1.GET("/workouts/history", traineeHandler.GetWorkoutHistory)
	}
}
