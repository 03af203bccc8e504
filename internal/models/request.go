package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentRequest is the audit record written for every deposit.
type PaymentRequest struct {
	RequestID uuid.UUID `json:"request_id" db:"request_id"` // Primary key, equals LedgerEntry.RequestID
	UserID    uuid.UUID `json:"uid" db:"user_id"`           // Account owner
	Email     *string   `json:"email" db:"email"`           // Caller email, nil when unknown
	Amount    float64   `json:"amount" db:"amount"`         // Deposited amount
	Method    string    `json:"method" db:"method"`         // Payment method
	Phone     string    `json:"phone" db:"phone"`           // Sender phone
	TrxID     string    `json:"trx_id" db:"trx_id"`         // Provider transaction id
	Status    string    `json:"status" db:"status"`         // Always success for deposits
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Assigned by the database
}

// WithdrawRequest is the audit record written for every withdrawal and
// reviewed by the external approval workflow.
type WithdrawRequest struct {
	RequestID uuid.UUID `json:"request_id" db:"request_id"` // Primary key, equals LedgerEntry.RequestID
	UserID    uuid.UUID `json:"uid" db:"user_id"`           // Account owner
	Amount    float64   `json:"amount" db:"amount"`         // Reserved amount
	Method    string    `json:"method" db:"method"`         // Payout method
	Phone     string    `json:"phone" db:"phone"`           // Payout phone
	Status    string    `json:"status" db:"status"`         // pending until reviewed
	Refunded  bool      `json:"refunded" db:"refunded"`     // Set by the approval workflow on rejection
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Assigned by the database
}

// Commit is the write-set of a single ledger transaction: the mutated
// account plus at most one audit record. ExpectedVersion 0 means the
// account must not exist yet.
type Commit struct {
	Account         *Account
	ExpectedVersion int64
	Payment         *PaymentRequest
	Withdraw        *WithdrawRequest
}
