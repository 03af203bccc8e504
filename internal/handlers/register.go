package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/invest-ledger/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, phone, password string) (uuid.UUID, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Wallet phone number
	// required: true
	// default: 01712345678
	Phone string `json:"phone"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`

	// Id of the new user
	UserID uuid.UUID `json:"user_id"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user. Email must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		userID, err := svc.Register(r.Context(), req.Email, req.Phone, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrUserAlreadyExists) {
				writeJSON(w, http.StatusConflict, ErrorResponse{Error: "Email already registered"})
				return
			}
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "User registered successfully",
			UserID:  userID,
		})
	}
}
