package service

import (
	"context"
	"errors"
	"log"
	"time"

	"fitlog/trainee-portal/internal/domain"
	"fitlog/trainee-portal/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrMissingCredentials   = errors.New("phone and password cannot be empty")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid phone or password")
)

const lastLoginTimeout = 5 * time.Second

// AuthService verifies trainee credentials and issues the session handle.
// There is deliberately no Register, password reset, or refresh: trainees and
// their credentials are provisioned by the trainer-side system.
type AuthService interface {
	Login(ctx context.Context, phone, password string) (*domain.Trainee, error)
}

// --- Service Implementation ---

// authService implements the AuthService interface.
type authService struct {
	traineeRepo    repository.TraineeRepository
	credentialRepo repository.CredentialRepository
}

// NewAuthService creates a new instance of authService.
func NewAuthService(traineeRepo repository.TraineeRepository, credentialRepo repository.CredentialRepository) AuthService {
	return &authService{
		traineeRepo:    traineeRepo,
		credentialRepo: credentialRepo,
	}
}

// Login authenticates a trainee by phone and password.
//
// Unknown phone, inactive trainee, missing credential row, and wrong password
// all map to the same ErrAuthenticationFailed so callers cannot probe which
// phone numbers are registered. Any other error is a store failure and is
// propagated as-is.
func (s *authService) Login(ctx context.Context, phone, password string) (*domain.Trainee, error) {
	// 1. Validate input before touching the store.
	if phone == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	// 2. Resolve the trainee identity. Only active trainees are visible.
	trainee, err := s.traineeRepo.GetActiveByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}

	// 3. Resolve the credential row.
	credential, err := s.credentialRepo.GetActiveByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}

	// 4. Compare the provided password with the stored hash.
	if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password)); err != nil {
		return nil, ErrAuthenticationFailed
	}

	// 5. Record the login time. Best-effort telemetry: runs detached from the
	// request so its failure can never fail the authentication response.
	loginAt := time.Now().UTC()
	go func(credentialID, traineeID string) {
		updateCtx, cancel := context.WithTimeout(context.Background(), lastLoginTimeout)
		defer cancel()
		if err := s.credentialRepo.UpdateLastLogin(updateCtx, credentialID, loginAt); err != nil {
			log.Printf("WARN: failed to record last login for trainee %s: %v", traineeID, err)
		}
	}(credential.ID, trainee.ID)

	return trainee, nil
}
