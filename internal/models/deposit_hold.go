package models

import (
	"time"

	"github.com/google/uuid"
)

// DepositHold is a validated deposit parked until its confirmation window
// has elapsed. It carries no balance effect of its own.
type DepositHold struct {
	HoldID    uuid.UUID `json:"hold_id"`
	UserID    uuid.UUID `json:"user_id"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Phone     string    `json:"phone"`
	TrxID     string    `json:"trx_id"`
	ReadyAt   time.Time `json:"ready_at"`
	CreatedAt time.Time `json:"created_at"`
}
