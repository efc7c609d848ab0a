package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitlog/trainee-portal/internal/api"
	"fitlog/trainee-portal/internal/config"
	"fitlog/trainee-portal/internal/repository/mongo"
	"fitlog/trainee-portal/internal/service"

	"github.com/gin-gonic/gin"
)

// @title Trainee Portal API
// @version 1.0
// @description API for the trainee-facing fitness portal: login, assigned plans, daily logs, meals, measurements, and workout history.
// @host localhost:8080
func main() {
	log.Println("Starting Trainee Portal Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureTraineeIndexes(ctx, appDB.Collection("trainees"))
		mongo.EnsureCredentialIndexes(ctx, appDB.Collection("trainee_auth"))
		mongo.EnsurePlanIndexes(ctx, appDB.Collection("workout_plans"), appDB.Collection("meal_plans"))
		mongo.EnsureDailyLogIndexes(ctx, appDB.Collection("daily_log"))
		mongo.EnsureMealIndexes(ctx, appDB.Collection("meals"))
		mongo.EnsureMeasurementIndexes(ctx, appDB.Collection("measurements"))
		mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts"))
		mongo.EnsureNotificationIndexes(ctx, appDB.Collection("trainer_notifications"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	traineeRepo := mongo.NewMongoTraineeRepository(appDB)
	credentialRepo := mongo.NewMongoCredentialRepository(appDB)
	workoutPlanRepo := mongo.NewMongoWorkoutPlanRepository(appDB)
	mealPlanRepo := mongo.NewMongoMealPlanRepository(appDB)
	dailyLogRepo := mongo.NewMongoDailyLogRepository(appDB)
	mealRepo := mongo.NewMongoMealRepository(appDB)
	measurementRepo := mongo.NewMongoMeasurementRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	notificationRepo := mongo.NewMongoNotificationRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(traineeRepo, credentialRepo)
	traineeService := service.NewTraineeService(
		traineeRepo,
		workoutPlanRepo,
		mealPlanRepo,
		dailyLogRepo,
		mealRepo,
		measurementRepo,
		workoutRepo,
		notificationRepo,
	)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, authService, traineeService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
