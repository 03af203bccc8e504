package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/invest-ledger/internal/logger"
	"github.com/sbilibin2017/invest-ledger/internal/models"
)

// AccountRepository stores account documents as versioned JSONB rows.
// Every write is a compare-and-swap on the version column.
type AccountRepository struct {
	db *sqlx.DB
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

type accountRow struct {
	AccountID uuid.UUID `db:"account_id"`
	Version   int64     `db:"version"`
	Data      []byte    `db:"data"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Get returns the account document, or nil if none is stored for id.
func (r *AccountRepository) Get(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	const query = `
		SELECT account_id, version, data, created_at, updated_at
		FROM accounts
		WHERE account_id = $1
	`

	var row accountRow
	err := r.db.GetContext(ctx, &row, query, id)

	logger.Log.Infow(
		"sql query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", row.Version,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	acct, err := DecodeAccount(row.Data)
	if err != nil {
		return nil, fmt.Errorf("decode account %s: %w", id, err)
	}
	acct.AccountID = row.AccountID
	acct.Version = row.Version
	acct.CreatedAt = row.CreatedAt
	acct.UpdatedAt = row.UpdatedAt
	return acct, nil
}

// Create stores a brand new account document at version 1.
// It returns models.ErrVersionConflict if the account already exists.
func (r *AccountRepository) Create(ctx context.Context, acct *models.Account) error {
	return r.Commit(ctx, models.Commit{Account: acct})
}

// Commit applies one ledger transaction atomically: the account write
// (insert when ExpectedVersion is 0, otherwise a version-checked update)
// and the optional audit record. Nothing is written on any failure.
func (r *AccountRepository) Commit(ctx context.Context, c models.Commit) (err error) {
	if c.Account == nil {
		return errors.New("commit without account")
	}

	data, err := EncodeAccount(c.Account)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if c.ExpectedVersion == 0 {
		err = r.insertAccount(ctx, tx, c.Account.AccountID, data)
	} else {
		err = r.updateAccount(ctx, tx, c.Account.AccountID, c.ExpectedVersion, data)
	}
	if err != nil {
		return err
	}

	if c.Payment != nil {
		if err = r.insertPaymentRequest(ctx, tx, c.Payment); err != nil {
			return err
		}
	}
	if c.Withdraw != nil {
		if err = r.insertWithdrawRequest(ctx, tx, c.Withdraw); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *AccountRepository) insertAccount(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, data []byte) error {
	const query = `
		INSERT INTO accounts (account_id, version, data, created_at, updated_at)
		VALUES ($1, 1, $2, NOW(), NOW())
		ON CONFLICT (account_id) DO NOTHING
	`
	return execExpectingRow(ctx, tx, query, id, data)
}

func (r *AccountRepository) updateAccount(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, version int64, data []byte) error {
	const query = `
		UPDATE accounts
		SET data = $3, version = version + 1, updated_at = NOW()
		WHERE account_id = $1 AND version = $2
	`
	return execExpectingRow(ctx, tx, query, id, version, data)
}

// execExpectingRow runs a write that must touch exactly one row; touching
// none means a concurrent writer got there first.
func execExpectingRow(ctx context.Context, tx *sqlx.Tx, query string, args ...any) error {
	res, err := tx.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"sql query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args[:len(args)-1],
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrVersionConflict
	}
	return nil
}

func (r *AccountRepository) insertPaymentRequest(ctx context.Context, tx *sqlx.Tx, p *models.PaymentRequest) error {
	const query = `
		INSERT INTO payment_requests (request_id, user_id, email, amount, method, phone, trx_id, status, created_at)
		VALUES (:request_id, :user_id, :email, :amount, :method, :phone, :trx_id, :status, NOW())
	`
	_, err := tx.NamedExecContext(ctx, query, p)

	logger.Log.Infow(
		"sql query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{p.RequestID, p.UserID, p.Amount, p.Method},
		"error", err,
	)

	return err
}

func (r *AccountRepository) insertWithdrawRequest(ctx context.Context, tx *sqlx.Tx, w *models.WithdrawRequest) error {
	const query = `
		INSERT INTO withdraw_requests (request_id, user_id, amount, method, phone, status, refunded, created_at)
		VALUES (:request_id, :user_id, :amount, :method, :phone, :status, :refunded, NOW())
	`
	_, err := tx.NamedExecContext(ctx, query, w)

	logger.Log.Infow(
		"sql query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{w.RequestID, w.UserID, w.Amount, w.Method},
		"error", err,
	)

	return err
}

// AuditRepository reads the audit records written alongside ledger commits.
type AuditRepository struct {
	db *sqlx.DB
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// ListPaymentRequests returns the deposits submitted by a user, newest first.
func (r *AuditRepository) ListPaymentRequests(ctx context.Context, userID uuid.UUID) ([]models.PaymentRequest, error) {
	const query = `
		SELECT request_id, user_id, email, amount, method, phone, trx_id, status, created_at
		FROM payment_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var out []models.PaymentRequest
	err := r.db.SelectContext(ctx, &out, query, userID)

	logger.Log.Infow(
		"sql query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(out),
		"error", err,
	)

	return out, err
}

// ListWithdrawRequests returns the withdrawals submitted by a user, newest first.
func (r *AuditRepository) ListWithdrawRequests(ctx context.Context, userID uuid.UUID) ([]models.WithdrawRequest, error) {
	const query = `
		SELECT request_id, user_id, amount, method, phone, status, refunded, created_at
		FROM withdraw_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var out []models.WithdrawRequest
	err := r.db.SelectContext(ctx, &out, query, userID)

	logger.Log.Infow(
		"sql query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(out),
		"error", err,
	)

	return out, err
}
