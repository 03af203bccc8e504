package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/invest-ledger/internal/logger"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		phone VARCHAR(32) NOT NULL DEFAULT '',
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS accounts (
		account_id UUID PRIMARY KEY,
		version BIGINT NOT NULL,
		data JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS payment_requests (
		request_id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		email VARCHAR(255),
		amount NUMERIC(20,2) NOT NULL,
		method VARCHAR(16) NOT NULL,
		phone VARCHAR(32) NOT NULL,
		trx_id VARCHAR(128) NOT NULL,
		status VARCHAR(16) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS withdraw_requests (
		request_id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		amount NUMERIC(20,2) NOT NULL,
		method VARCHAR(16) NOT NULL,
		phone VARCHAR(32) NOT NULL,
		status VARCHAR(16) NOT NULL,
		refunded BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS withdraw_requests_status_idx ON withdraw_requests (status, created_at);`,
}

// Migrate creates the tables used by the repositories if they are missing.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, m := range migrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			logger.Log.Errorw("migration failed", "error", err)
			return err
		}
	}
	logger.Log.Infow("migrations applied", "count", len(migrations))
	return nil
}
