package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sprintify/sprintify-server/internal/logger"
	"github.com/sprintify/sprintify-server/internal/services"
)

// Submitter defines the interface that the login service must implement.
type Submitter interface {
	Submit(ctx context.Context, email, password string) (string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Success message
	// default: Login successful! Redirecting you to home in 3 seconds...
	Message string `json:"message"`

	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// default: Invalid email or password.
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Verify credentials, store the session identity and return a JWT token. A redirect is scheduled 3 seconds after success.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Login succeeded"
// @Failure 400 {object} handlers.LoginErrorResponse "Invalid request body / missing fields"
// @Failure 401 {object} handlers.LoginErrorResponse "Invalid email or password"
// @Failure 502 {object} handlers.LoginErrorResponse "User lookup failed"
// @Router /login [post]
func NewLoginHandler(svc Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		token, err := svc.Submit(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Please fill in all fields.",
				})
			case errors.Is(err, services.ErrFetchUser):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Error fetching user. Please try again.",
				})
			case errors.Is(err, services.ErrUserNotFound),
				errors.Is(err, services.ErrInvalidCredentials):
				// Deliberately the same message for both: a caller cannot
				// tell an unknown email from a wrong password.
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Invalid email or password.",
				})
			default:
				logger.Log.Errorw("login failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Login failed. Please try again.",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			Message: "Login successful! Redirecting you to home in 3 seconds...",
			Token:   token,
		})
	}
}
