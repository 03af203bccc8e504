package repositories

import "time"

const (
	KeyAccountChannel = "account:%s"
	KeyDepositHold    = "deposit_hold:%s"

	// Holds outlive their confirmation window by this much before Redis
	// drops them.
	TTLDepositHoldGrace = 10 * time.Minute
)
