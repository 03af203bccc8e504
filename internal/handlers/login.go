package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/invest-ledger/internal/logger"
	"github.com/sbilibin2017/invest-ledger/internal/services"
)

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// LoginRequest represents the JSON body for login
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
	// JWT token
	Token string `json:"token"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Login
// @Description Authenticates a user and returns a JWT token carrying the user id, email and phone.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Successful login"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) || errors.Is(err, services.ErrInvalidCredentials) {
				logger.Log.Warnw("login rejected", "email", req.Email)
				writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: services.ErrInvalidCredentials.Error()})
				return
			}
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token})
	}
}
