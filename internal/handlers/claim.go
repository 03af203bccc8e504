package handlers

//go:generate mockgen -source=claim.go -destination=claim_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/invest-ledger/internal/models"
	"github.com/sbilibin2017/invest-ledger/internal/services"
)

// ProfitClaimer defines the interface that the service must implement.
type ProfitClaimer interface {
	ClaimDailyProfit(ctx context.Context, identity models.Identity) (*services.ClaimResult, error)
}

// NewClaimHandler returns an HTTP handler for claiming the daily profit.
// @Summary Claim daily profit
// @Description Moves today's pending profit into the balance. At most one claim succeeds per day.
// @Tags wallet
// @Produce json
// @Success 200 {object} services.ClaimResult "Profit claimed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Failure 409 {object} handlers.ErrorResponse "No profit, profit not for today or already claimed"
// @Router /wallet/claim [post]
// @Security BearerAuth
func NewClaimHandler(svc ProfitClaimer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(r)
		if !ok {
			writeError(w, services.ErrUnauthenticated)
			return
		}

		res, err := svc.ClaimDailyProfit(r.Context(), identity)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}
