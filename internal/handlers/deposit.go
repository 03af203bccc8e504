package handlers

//go:generate mockgen -source=deposit.go -destination=deposit_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/invest-ledger/internal/models"
	"github.com/sbilibin2017/invest-ledger/internal/services"
)

// DepositWriter defines the interface that the service must implement.
type DepositWriter interface {
	Deposit(ctx context.Context, identity models.Identity, in services.DepositInput) (*models.Account, error)
}

// DepositRequest represents the JSON body for depositing funds
// swagger:model DepositRequest
type DepositRequest struct {
	// Amount to deposit, at least 500
	// required: true
	// default: 500
	Amount float64 `json:"amount"`

	// Payment method: bkash, nogod or rocket
	// default: bkash
	Method string `json:"method"`

	// Sender wallet phone number
	// required: true
	// default: 01712345678
	Phone string `json:"phone"`

	// Provider transaction id
	// required: true
	// default: 8N7A6B5C4D
	TrxID string `json:"trx_id"`
}

func (req DepositRequest) input() services.DepositInput {
	return services.DepositInput{
		Amount: req.Amount,
		Method: req.Method,
		Phone:  req.Phone,
		TrxID:  req.TrxID,
	}
}

// AccountSummary is the state of the caller's account after an operation
// swagger:model AccountSummary
type AccountSummary struct {
	Balance       float64 `json:"balance"`
	TotalDeposit  float64 `json:"total_deposit"`
	TotalWithdraw float64 `json:"total_withdraw"`
	DailyProfit   float64 `json:"daily_profit"`
}

func summarize(acct *models.Account) AccountSummary {
	return AccountSummary{
		Balance:       acct.Balance,
		TotalDeposit:  acct.TotalDeposit,
		TotalWithdraw: acct.TotalWithdraw,
		DailyProfit:   acct.DailyProfit,
	}
}

// LedgerResponse represents a successful ledger operation
// swagger:model LedgerResponse
type LedgerResponse struct {
	// Success message
	Message string `json:"message"`

	// Account after the operation
	Account AccountSummary `json:"account"`
}

// NewDepositHandler returns an HTTP handler for depositing funds.
// @Summary Deposit funds
// @Description Credits the caller's account and records a successful payment request. The account is created on the first deposit.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.DepositRequest true "Deposit Request"
// @Success 200 {object} handlers.LedgerResponse "Deposit successful"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount, phone, method or trx id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 503 {object} handlers.ErrorResponse "Operation failed, please try again"
// @Router /wallet/deposit [post]
// @Security BearerAuth
func NewDepositHandler(svc DepositWriter) http.HandlerFunc {
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

		acct, err := svc.Deposit(r.Context(), identity, req.input())
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
