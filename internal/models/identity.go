package models

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the authenticated caller as seen by the ledger.
type Identity struct {
	UserID uuid.UUID // Authenticated user id
	Email  string    // Optional email
	Phone  string    // Optional phone
}

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Email        string    `json:"email" db:"email"`           // Unique login email
	Phone        string    `json:"phone" db:"phone"`           // Contact phone
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
