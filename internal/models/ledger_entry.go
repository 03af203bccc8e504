package models

import (
	"time"

	"github.com/google/uuid"
)

// EntryType distinguishes deposit and withdraw ledger entries.
type EntryType string

const (
	EntryTypeDeposit  EntryType = "deposit"
	EntryTypeWithdraw EntryType = "withdraw"
)

// Entry statuses
const (
	StatusSuccess = "success"
	StatusPending = "pending"
)

// Payment methods
const (
	MethodBkash  = "bkash"
	MethodNogod  = "nogod"
	MethodRocket = "rocket"
)

// LedgerEntry is one recorded deposit or withdrawal line on an account.
// Entries are immutable once appended; a withdraw entry's status may be
// changed later by the approval workflow.
type LedgerEntry struct {
	RequestID uuid.UUID `json:"requestId"`          // Id of the matching audit record
	Type      EntryType `json:"type"`               // deposit or withdraw
	Amount    float64   `json:"amount"`             // Always positive for entries written by the ledger
	Method    string    `json:"method,omitempty"`   // Payment method (bkash, nogod, rocket)
	Phone     string    `json:"phone,omitempty"`    // Wallet phone number used
	TrxID     string    `json:"trxId,omitempty"`    // Provider transaction id, deposits only
	Status    string    `json:"status,omitempty"`   // success for deposits, pending for withdrawals
	CreatedAt time.Time `json:"createdAt,omitzero"` // Zero when unknown (legacy entries)
}

// HasTime reports whether the entry carries a resolvable timestamp.
func (e LedgerEntry) HasTime() bool {
	return !e.CreatedAt.IsZero()
}
