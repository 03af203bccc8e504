package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/invest-ledger/internal/logger"
	"github.com/sbilibin2017/invest-ledger/internal/models"
)

// UserReadRepository reads identity records.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user registered with email, or nil if there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, email, phone, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow(
		"sql query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", user.UserID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository writes identity records.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns its id.
func (r *UserWriteRepository) Save(ctx context.Context, email, phone, passwordHash string) (uuid.UUID, error) {
	query := `
		INSERT INTO users (user_id, email, phone, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`
	userID := uuid.New()
	args := []any{userID, email, phone, passwordHash}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"sql query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, email, phone},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}
	return userID, nil
}
