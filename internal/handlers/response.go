package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/invest-ledger/internal/jwt"
	"github.com/sbilibin2017/invest-ledger/internal/logger"
	"github.com/sbilibin2017/invest-ledger/internal/models"
	"github.com/sbilibin2017/invest-ledger/internal/services"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: insufficient funds
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps ledger and flow errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	var vErr *services.ValidationError

	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: vErr.Error()})
	case errors.Is(err, services.ErrUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrNoProfitAvailable),
		errors.Is(err, services.ErrProfitNotForToday),
		errors.Is(err, services.ErrAlreadyClaimedToday):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrAccountNotFound),
		errors.Is(err, services.ErrHoldNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrHoldNotReady):
		writeJSON(w, http.StatusTooEarly, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrOperationFailed):
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: services.ErrOperationFailed.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// identityFromRequest returns the caller identity placed in the context by
// the auth middleware.
func identityFromRequest(r *http.Request) (models.Identity, bool) {
	claims, ok := jwt.ClaimsFromContext(r.Context())
	if !ok {
		return models.Identity{}, false
	}
	return claims.Identity(), true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.Log.Errorw("failed to decode request", "error", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return false
	}
	return true
}
