package handlers

//go:generate mockgen -source=withdraw.go -destination=withdraw_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/invest-ledger/internal/models"
	"github.com/sbilibin2017/invest-ledger/internal/services"
)

// WithdrawWriter defines the interface that the service must implement.
type WithdrawWriter interface {
	Withdraw(ctx context.Context, identity models.Identity, in services.WithdrawInput) (*models.Account, error)
}

// WithdrawRequest represents the JSON body for withdrawing funds
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Amount to withdraw, at least 500
	// required: true
	// default: 500
	Amount float64 `json:"amount"`

	// Payout method: bkash, nogod or rocket
	// default: bkash
	Method string `json:"method"`

	// Payout wallet phone number
	// required: true
	// default: 01712345678
	Phone string `json:"phone"`
}

// NewWithdrawHandler returns an HTTP handler for withdrawing funds.
// @Summary Withdraw funds
// @Description Reserves funds from the caller's balance and records a pending withdraw request for approval.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.WithdrawRequest true "Withdraw request"
// @Success 200 {object} handlers.LedgerResponse "Withdraw request submitted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount, phone or method"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Insufficient funds"
// @Failure 503 {object} handlers.ErrorResponse "Operation failed, please try again"
// @Router /wallet/withdraw [post]
// @Security BearerAuth
func NewWithdrawHandler(svc WithdrawWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(r)
		if !ok {
			writeError(w, services.ErrUnauthenticated)
			return
		}

		var req WithdrawRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		acct, err := svc.Withdraw(r.Context(), identity, services.WithdrawInput{
			Amount: req.Amount,
			Method: req.Method,
			Phone:  req.Phone,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LedgerResponse{
			Message: "Withdraw request submitted",
			Account: summarize(acct),
		})
	}
}
