package models

// LedgerEvent is published to Kafka after every committed ledger operation.
type LedgerEvent struct {
	RequestID string  `json:"request_id"` // Audit record id, empty for claims
	AccountID string  `json:"account_id"` // Account owner
	Operation string  `json:"operation"`  // deposit, withdraw or claim
	Amount    float64 `json:"amount"`     // Operation amount
	Status    string  `json:"status"`     // success or pending
	Balance   float64 `json:"balance"`    // Balance after the commit
	Timestamp int64   `json:"timestamp"`  // Unix seconds
}
