package handlers

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/invest-ledger/internal/dashboard"
	"github.com/sbilibin2017/invest-ledger/internal/models"
	"github.com/sbilibin2017/invest-ledger/internal/services"
)

// AccountReader defines the interface that the service must implement.
type AccountReader interface {
	Account(ctx context.Context, identity models.Identity) (*models.Account, error)
}

// loadAccount returns the caller's account, or nil when it does not exist
// yet. It writes the error response itself and reports false on failure.
func loadAccount(w http.ResponseWriter, r *http.Request, svc AccountReader) (*models.Account, bool) {
	identity, ok := identityFromRequest(r)
	if !ok {
		writeError(w, services.ErrUnauthenticated)
		return nil, false
	}

	acct, err := svc.Account(r.Context(), identity)
	if errors.Is(err, services.ErrAccountNotFound) {
		return nil, true
	}
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return acct, true
}

// NewDashboardHandler returns an HTTP handler for the dashboard view.
// @Summary Get dashboard
// @Description Balance, profit, active plan count, totals and the ten most recent ledger entries. A user without an account gets the zero view.
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardView
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /dashboard [get]
// @Security BearerAuth
func NewDashboardHandler(svc AccountReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acct, ok := loadAccount(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, dashboard.Project(acct))
	}
}
