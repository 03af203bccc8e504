package handlers

//go:generate mockgen -source=deposit_hold.go -destination=deposit_hold_mock.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/invest-ledger/internal/models"
	"github.com/sbilibin2017/invest-ledger/internal/services"
)

// DepositHolder defines the interface that the hold service must implement.
type DepositHolder interface {
	Create(ctx context.Context, identity models.Identity, in services.DepositInput) (*models.DepositHold, error)
	Confirm(ctx context.Context, identity models.Identity, holdID uuid.UUID) (*models.Account, error)
	Cancel(ctx context.Context, identity models.Identity, holdID uuid.UUID) error
}

// DepositHoldResponse describes a parked deposit
// swagger:model DepositHoldResponse
type DepositHoldResponse struct {
	HoldID  uuid.UUID `json:"hold_id"`
	Amount  float64   `json:"amount"`
	Method  string    `json:"method"`
	ReadyAt time.Time `json:"ready_at"`
}

// NewCreateDepositHoldHandler returns an HTTP handler that parks a deposit
// until its confirmation countdown has elapsed.
// @Summary Start a deposit confirmation countdown
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.DepositRequest true "Deposit Request"
// @Success 201 {object} handlers.DepositHoldResponse "Hold created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount, phone, method or trx id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wallet/deposit/holds [post]
// @Security BearerAuth
func NewCreateDepositHoldHandler(svc DepositHolder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(r)
		if !ok {
			writeError(w, services.ErrUnauthenticated)
			return
		}

		var req DepositRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		hold, err := svc.Create(r.Context(), identity, req.input())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, DepositHoldResponse{
			HoldID:  hold.HoldID,
			Amount:  hold.Amount,
			Method:  hold.Method,
			ReadyAt: hold.ReadyAt,
		})
	}
}

// NewConfirmDepositHoldHandler returns an HTTP handler that commits a held deposit.
// @Summary Confirm a held deposit
// @Tags wallet
// @Produce json
// @Param id path string true "Hold id"
// @Success 200 {object} handlers.LedgerResponse "Deposit successful"
// @Failure 404 {object} handlers.ErrorResponse "Hold not found"
// @Failure 425 {object} handlers.ErrorResponse "Hold not ready"
// @Router /wallet/deposit/holds/{id}/confirm [post]
// @Security BearerAuth
func NewConfirmDepositHoldHandler(svc DepositHolder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(r)
		if !ok {
			writeError(w, services.ErrUnauthenticated)
			return
		}

		holdID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, services.ErrHoldNotFound)
			return
		}

		acct, err := svc.Confirm(r.Context(), identity, holdID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LedgerResponse{
			Message: "Deposit successful",
			Account: summarize(acct),
		})
	}
}

// NewCancelDepositHoldHandler returns an HTTP handler that cancels a held deposit.
// @Summary Cancel a held deposit
// @Tags wallet
// @Param id path string true "Hold id"
// @Success 204 "Cancelled"
// @Router /wallet/deposit/holds/{id} [delete]
// @Security BearerAuth
func NewCancelDepositHoldHandler(svc DepositHolder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(r)
		if !ok {
			writeError(w, services.ErrUnauthenticated)
			return
		}

		holdID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if err := svc.Cancel(r.Context(), identity, holdID); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
