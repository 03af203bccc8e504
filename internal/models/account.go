package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Account is the canonical financial document of a single user.
// One document exists per user and is keyed by the user id.
type Account struct {
	AccountID       uuid.UUID         `json:"-"`                        // Owner user id, also the document key
	Version         int64             `json:"-"`                        // Optimistic concurrency version, 0 for a document never stored
	Email           string            `json:"email,omitempty"`          // Owner email captured on provisioning
	Phone           string            `json:"phone,omitempty"`          // Owner phone captured on provisioning
	Balance         float64           `json:"balance"`                  // Spendable balance
	TotalDeposit    float64           `json:"totalDeposit"`             // Sum of all deposits, never decreases
	TotalWithdraw   float64           `json:"totalWithdraw"`            // Sum of all withdrawals, never decreases
	DailyProfit     float64           `json:"dailyProfit"`              // Profit credited externally and pending claim
	HasDailyProfit  bool              `json:"-"`                        // Whether the stored document carries dailyProfit at all
	TotalProfit     *float64          `json:"totalProfit,omitempty"`    // Legacy profit counter kept for display only
	LastProfitDate  string            `json:"lastProfitDate,omitempty"` // Day the pending profit belongs to, YYYY-MM-DD
	LastClaimDate   string            `json:"lastClaimDate,omitempty"`  // Day of the last successful claim, YYYY-MM-DD
	Plans           []json.RawMessage `json:"plans,omitempty"`          // Active investment plans, opaque to the ledger
	DepositHistory  []LedgerEntry     `json:"depositHistory"`           // Append-only deposit entries
	WithdrawHistory []LedgerEntry     `json:"withdrawHistory"`          // Append-only withdraw entries
	CreatedAt       time.Time         `json:"-"`                        // Server-assigned creation time
	UpdatedAt       time.Time         `json:"-"`                        // Server-assigned time of the last commit
}

// NewAccount returns a zeroed account document owned by the given identity.
func NewAccount(identity Identity) *Account {
	return &Account{
		AccountID:       identity.UserID,
		Email:           identity.Email,
		Phone:           identity.Phone,
		HasDailyProfit:  true,
		DepositHistory:  []LedgerEntry{},
		WithdrawHistory: []LedgerEntry{},
	}
}

// Clone returns a deep enough copy for in-memory mutation inside a transaction.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	cp := *a
	cp.DepositHistory = append([]LedgerEntry(nil), a.DepositHistory...)
	cp.WithdrawHistory = append([]LedgerEntry(nil), a.WithdrawHistory...)
	cp.Plans = append([]json.RawMessage(nil), a.Plans...)
	if a.TotalProfit != nil {
		v := *a.TotalProfit
		cp.TotalProfit = &v
	}
	return &cp
}
