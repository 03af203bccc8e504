package handlers

import (
	"net/http"
	"strconv"

	"github.com/sbilibin2017/invest-ledger/internal/history"
	"github.com/sbilibin2017/invest-ledger/internal/models"
)

// NewDepositHistoryHandler returns an HTTP handler listing the caller's deposits, newest first.
// @Summary Deposit history
// @Tags history
// @Produce json
// @Success 200 {array} models.LedgerEntry
// @Router /history/deposits [get]
// @Security BearerAuth
func NewDepositHistoryHandler(svc AccountReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acct, ok := loadAccount(w, r, svc)
		if !ok {
			return
		}
		var entries []models.LedgerEntry
		if acct != nil {
			entries = acct.DepositHistory
		}
		writeJSON(w, http.StatusOK, history.Sorted(entries))
	}
}

// NewWithdrawHistoryHandler returns an HTTP handler listing the caller's withdrawals, newest first.
// @Summary Withdraw history
// @Tags history
// @Produce json
// @Success 200 {array} models.LedgerEntry
// @Router /history/withdrawals [get]
// @Security BearerAuth
func NewWithdrawHistoryHandler(svc AccountReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acct, ok := loadAccount(w, r, svc)
		if !ok {
			return
		}
		var entries []models.LedgerEntry
		if acct != nil {
			entries = acct.WithdrawHistory
		}
		writeJSON(w, http.StatusOK, history.Sorted(entries))
	}
}

// NewRecentActivityHandler returns an HTTP handler for the merged recent activity feed.
// @Summary Recent activity
// @Tags history
// @Produce json
// @Param limit query int false "Maximum number of entries" default(10)
// @Success 200 {array} models.LedgerEntry
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Router /history/recent [get]
// @Security BearerAuth
func NewRecentActivityHandler(svc AccountReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := history.DefaultLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid limit"})
				return
			}
			limit = n
		}

		acct, ok := loadAccount(w, r, svc)
		if !ok {
			return
		}
		if acct == nil {
			acct = &models.Account{}
		}
		writeJSON(w, http.StatusOK, history.Merge(acct.DepositHistory, acct.WithdrawHistory, limit))
	}
}
