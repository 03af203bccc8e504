package services

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/invest-ledger/internal/models"
)

// Ledger errors
var (
	ErrUnauthenticated     = errors.New("caller is not authenticated")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrNoProfitAvailable   = errors.New("no profit available to claim")
	ErrProfitNotForToday   = errors.New("profit is not for today")
	ErrAlreadyClaimedToday = errors.New("profit already claimed today")
	ErrAccountNotFound     = errors.New("account not found")
	ErrOperationFailed     = errors.New("operation failed, please try again")

	// ErrTransactionConflict means another writer committed the account
	// between our read and our write.
	ErrTransactionConflict = models.ErrVersionConflict
)

// Deposit hold errors
var (
	ErrHoldNotReady = errors.New("deposit hold is not ready for confirmation")
	ErrHoldNotFound = errors.New("deposit hold not found")
)

// ValidationError reports malformed input rejected before the store is touched.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
