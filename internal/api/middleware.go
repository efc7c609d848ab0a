package api

import (
	"errors"
	"net/http"
	"strings"

	"fitlog/trainee-portal/internal/domain"
	"fitlog/trainee-portal/internal/service"

	"github.com/gin-gonic/gin"
)

// Constants for context keys
const (
	ContextTraineeKey = "trainee"
)

// CORSMiddleware sets permissive CORS headers on every response and answers
// OPTIONS preflight unconditionally. Failure branches must carry the same
// headers as success, or browsers mask the real error behind a CORS error.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Client-Info, Apikey")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// SessionMiddleware authenticates requests carrying the session handle issued
// at login: the trainee's own id, presented as "Bearer <id>". The trainee is
// re-resolved on every request, so a deactivated trainee loses access
// immediately. The resolved record is stored in the context for handlers.
func SessionMiddleware(traineeService service.TraineeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {trainee id}")
			return
		}
		traineeID := parts[1]

		trainee, err := traineeService.GetProfile(c.Request.Context(), traineeID)
		if err != nil {
			if errors.Is(err, service.ErrTraineeNotFound) {
				abortWithError(c, http.StatusUnauthorized, "Invalid or expired session")
			} else {
				abortWithError(c, http.StatusInternalServerError, "Failed to resolve session")
			}
			return
		}

		c.Set(ContextTraineeKey, trainee)
		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// Helper function to get the authenticated trainee from context (used by handlers)
func getTraineeFromContext(c *gin.Context) (*domain.Trainee, error) {
	raw, exists := c.Get(ContextTraineeKey)
	if !exists {
		return nil, errors.New("trainee not found in context")
	}
	trainee, ok := raw.(*domain.Trainee)
	if !ok {
		return nil, errors.New("invalid trainee type in context")
	}
	return trainee, nil
}
