package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/invest-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

var (
	selectAccount  = regexp.QuoteMeta("SELECT account_id, version, data, created_at, updated_at FROM accounts WHERE account_id = $1")
	insertAccount  = regexp.QuoteMeta("INSERT INTO accounts")
	updateAccount  = regexp.QuoteMeta("UPDATE accounts SET data = $3, version = version + 1")
	insertPayment  = regexp.QuoteMeta("INSERT INTO payment_requests")
	insertWithdraw = regexp.QuoteMeta("INSERT INTO withdraw_requests")
)

func TestAccountRepository_Get(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		rows := sqlmock.NewRows([]string{"account_id", "version", "data", "created_at", "updated_at"}).
			AddRow(id.String(), int64(4), []byte(`{"balance":1500,"total_deposit":2000,"daily_profit":"25","plans":[{"id":1}]}`), now, now)
		mock.ExpectQuery(selectAccount).WithArgs(id).WillReturnRows(rows)

		acct, err := NewAccountRepository(db).Get(ctx, id)

		require.NoError(t, err)
		require.NotNil(t, acct)
		assert.Equal(t, id, acct.AccountID)
		assert.Equal(t, int64(4), acct.Version)
		assert.Equal(t, 1500.0, acct.Balance)
		assert.Equal(t, 2000.0, acct.TotalDeposit)
		assert.Equal(t, 25.0, acct.DailyProfit)
		assert.Len(t, acct.Plans, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(selectAccount).WithArgs(id).WillReturnError(sql.ErrNoRows)

		acct, err := NewAccountRepository(db).Get(ctx, id)

		assert.NoError(t, err)
		assert.Nil(t, acct)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(selectAccount).WithArgs(id).WillReturnError(errors.New("boom"))

		acct, err := NewAccountRepository(db).Get(ctx, id)

		assert.EqualError(t, err, "boom")
		assert.Nil(t, acct)
	})

	t.Run("corrupt document", func(t *testing.T) {
		db, mock := newMockDB(t)
		rows := sqlmock.NewRows([]string{"account_id", "version", "data", "created_at", "updated_at"}).
			AddRow(id.String(), int64(1), []byte(`not json`), now, now)
		mock.ExpectQuery(selectAccount).WithArgs(id).WillReturnRows(rows)

		acct, err := NewAccountRepository(db).Get(ctx, id)

		assert.Error(t, err)
		assert.Nil(t, acct)
	})
}

func TestAccountRepository_Commit(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	acct := &models.Account{AccountID: id, Balance: 500}

	t.Run("insert with payment request", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(insertAccount).WithArgs(id, sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(insertPayment).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := NewAccountRepository(db).Commit(ctx, models.Commit{
			Account: acct,
			Payment: &models.PaymentRequest{RequestID: uuid.New(), UserID: id, Amount: 500, Status: models.StatusSuccess},
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update with withdraw request", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(updateAccount).WithArgs(id, int64(3), sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(insertWithdraw).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := NewAccountRepository(db).Commit(ctx, models.Commit{
			Account:         acct,
			ExpectedVersion: 3,
			Withdraw:        &models.WithdrawRequest{RequestID: uuid.New(), UserID: id, Amount: 100, Status: models.StatusPending},
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale version", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(updateAccount).WithArgs(id, int64(3), sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := NewAccountRepository(db).Commit(ctx, models.Commit{Account: acct, ExpectedVersion: 3})

		assert.ErrorIs(t, err, models.ErrVersionConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already exists", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(insertAccount).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := NewAccountRepository(db).Create(ctx, acct)

		assert.ErrorIs(t, err, models.ErrVersionConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("audit failure rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(updateAccount).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(insertPayment).WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := NewAccountRepository(db).Commit(ctx, models.Commit{
			Account:         acct,
			ExpectedVersion: 1,
			Payment:         &models.PaymentRequest{RequestID: uuid.New(), UserID: id},
		})

		assert.EqualError(t, err, "disk full")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

		err := NewAccountRepository(db).Commit(ctx, models.Commit{Account: acct})

		assert.ErrorIs(t, err, sql.ErrConnDone)
	})

	t.Run("missing account", func(t *testing.T) {
		db, _ := newMockDB(t)
		err := NewAccountRepository(db).Commit(ctx, models.Commit{})
		assert.Error(t, err)
	})
}

func TestAccountRepository_Postgres(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	repo := NewAccountRepository(db)
	audit := NewAuditRepository(db)

	id := uuid.New()
	acct := models.NewAccount(models.Identity{UserID: id, Email: "bob@example.com"})
	acct.Balance = 500
	acct.TotalDeposit = 500
	reqID := uuid.New()
	acct.DepositHistory = append(acct.DepositHistory, models.LedgerEntry{
		RequestID: reqID, Type: models.EntryTypeDeposit, Amount: 500, Status: models.StatusSuccess,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	})
	email := "bob@example.com"

	err := repo.Commit(ctx, models.Commit{
		Account: acct,
		Payment: &models.PaymentRequest{RequestID: reqID, UserID: id, Email: &email, Amount: 500, Method: "bkash", Phone: "01712345678", TrxID: "TX1", Status: models.StatusSuccess},
	})
	require.NoError(t, err)

	stored, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, int64(1), stored.Version)
	assert.Equal(t, 500.0, stored.Balance)
	require.Len(t, stored.DepositHistory, 1)
	assert.Equal(t, reqID, stored.DepositHistory[0].RequestID)
	assert.True(t, acct.DepositHistory[0].CreatedAt.Equal(stored.DepositHistory[0].CreatedAt))

	payments, err := audit.ListPaymentRequests(ctx, id)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "TX1", payments[0].TrxID)

	// A second writer holding the old version must lose.
	stored.Balance = 100
	require.NoError(t, repo.Commit(ctx, models.Commit{Account: stored, ExpectedVersion: 1}))
	err = repo.Commit(ctx, models.Commit{Account: stored, ExpectedVersion: 1})
	assert.ErrorIs(t, err, models.ErrVersionConflict)

	// A failed commit leaves no audit record behind.
	err = repo.Commit(ctx, models.Commit{
		Account:         stored,
		ExpectedVersion: 1,
		Withdraw:        &models.WithdrawRequest{RequestID: uuid.New(), UserID: id, Amount: 50, Status: models.StatusPending},
	})
	assert.ErrorIs(t, err, models.ErrVersionConflict)
	withdrawals, err := audit.ListWithdrawRequests(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, withdrawals)
}

func TestAccountRepository_PostgresLegacyDocument(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	id := uuid.New()

	_, err := db.ExecContext(ctx, `INSERT INTO accounts (account_id, version, data) VALUES ($1, 7, $2)`, id, []byte(`{
		"balance": "1200",
		"total_withdrawn": 300,
		"daily_profit": 40,
		"last_profit_date": "2025-05-01",
		"activePlans": [{"plan": "gold"}, {"plan": "silver"}],
		"depositHistory": [1000, "deposit of 500", null, {"amt": 200, "at": 1700000000000}]
	}`))
	require.NoError(t, err)

	acct, err := NewAccountRepository(db).Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, acct)

	assert.Equal(t, int64(7), acct.Version)
	assert.Equal(t, 1200.0, acct.Balance)
	assert.Equal(t, 300.0, acct.TotalWithdraw)
	assert.Equal(t, 40.0, acct.DailyProfit)
	assert.Equal(t, "2025-05-01", acct.LastProfitDate)
	assert.Len(t, acct.Plans, 2)
	require.Len(t, acct.DepositHistory, 3)
	assert.Equal(t, 500.0, acct.DepositHistory[1].Amount)
}
