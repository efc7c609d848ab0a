package api

import (
	"errors"
	"net/http"

	"fitlog/trainee-portal/internal/domain"
	"fitlog/trainee-portal/internal/service"

	"github.com/gin-gonic/gin"
)

// User-facing messages, kept in the app's locale (Hebrew). The 401 message is
// deliberately identical for every authentication miss so callers cannot tell
// an unknown phone from a wrong password.
const (
	msgMissingCredentials = "נא למלא טלפון וסיסמה"
	msgInvalidCredentials = "מספר טלפון או סיסמה שגויים"
	msgLoginFailed        = "שגיאה בהתחברות"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginResponse carries the session handle (the trainee's own id) and the
// trainee profile. The credential's password hash lives in a separate
// document and can never reach this struct.
type LoginResponse struct {
	TraineeID string         `json:"trainee_id"`
	Trainee   domain.Trainee `json:"trainee"`
}

// --- Handler Methods ---

// Login godoc
// @Summary Log in a trainee
// @Description Verifies phone/password and returns the trainee profile plus session handle.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse "Login successful"
// @Failure 400 {object} gin.H "Missing phone or password"
// @Failure 401 {object} gin.H "Invalid phone or password"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainee-login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, msgMissingCredentials)
		return
	}

	trainee, err := h.authService.Login(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrMissingCredentials) {
			abortWithError(c, http.StatusBadRequest, msgMissingCredentials)
		} else if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, msgInvalidCredentials)
		} else {
			abortWithError(c, http.StatusInternalServerError, msgLoginFailed)
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		TraineeID: trainee.ID,
		Trainee:   *trainee,
	})
}
