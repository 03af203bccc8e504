package handlers

//go:generate mockgen -source=requests.go -destination=requests_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/invest-ledger/internal/models"
	"github.com/sbilibin2017/invest-ledger/internal/services"
)

// AuditReader defines the interface that the audit repository must implement.
type AuditReader interface {
	ListPaymentRequests(ctx context.Context, userID uuid.UUID) ([]models.PaymentRequest, error)
	ListWithdrawRequests(ctx context.Context, userID uuid.UUID) ([]models.WithdrawRequest, error)
}

// RequestsResponse lists the caller's submitted operations
// swagger:model RequestsResponse
type RequestsResponse struct {
	Deposits    []models.PaymentRequest  `json:"deposits"`
	Withdrawals []models.WithdrawRequest `json:"withdrawals"`
}

// NewRequestsHandler returns an HTTP handler listing the caller's audit records.
// @Summary Submitted requests
// @Description Payment and withdraw requests with their review status, newest first.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.RequestsResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wallet/requests [get]
// @Security BearerAuth
func NewRequestsHandler(repo AuditReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(r)
		if !ok {
			writeError(w, services.ErrUnauthenticated)
			return
		}

		deposits, err := repo.ListPaymentRequests(r.Context(), identity.UserID)
		if err != nil {
			writeError(w, err)
			return
		}
		withdrawals, err := repo.ListWithdrawRequests(r.Context(), identity.UserID)
		if err != nil {
			writeError(w, err)
			return
		}

		resp := RequestsResponse{
			Deposits:    deposits,
			Withdrawals: withdrawals,
		}
		if resp.Deposits == nil {
			resp.Deposits = []models.PaymentRequest{}
		}
		if resp.Withdrawals == nil {
			resp.Withdrawals = []models.WithdrawRequest{}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
