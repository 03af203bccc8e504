package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/invest-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAccount_Aliases(t *testing.T) {
	acct, err := DecodeAccount([]byte(`{
		"email": "c@example.com",
		"balance": 10,
		"total_deposit": 20,
		"total_withdraw": 5,
		"daily_profit": 3,
		"total_profit": 99,
		"last_claim_date": "2025-01-01",
		"plans": [1, 2, 3],
		"withdrawHistory": [{"amount": 5, "status": "pending", "createdAt": 1700000000000}]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "c@example.com", acct.Email)
	assert.Equal(t, 10.0, acct.Balance)
	assert.Equal(t, 20.0, acct.TotalDeposit)
	assert.Equal(t, 5.0, acct.TotalWithdraw)
	assert.Equal(t, 3.0, acct.DailyProfit)
	assert.True(t, acct.HasDailyProfit)
	require.NotNil(t, acct.TotalProfit)
	assert.Equal(t, 99.0, *acct.TotalProfit)
	assert.Equal(t, "2025-01-01", acct.LastClaimDate)
	assert.Len(t, acct.Plans, 3)
	require.Len(t, acct.WithdrawHistory, 1)
	assert.Equal(t, models.EntryTypeWithdraw, acct.WithdrawHistory[0].Type)
	assert.Equal(t, "pending", acct.WithdrawHistory[0].Status)
	assert.Empty(t, acct.DepositHistory)
}

func TestDecodeAccount_CanonicalWins(t *testing.T) {
	acct, err := DecodeAccount([]byte(`{"dailyProfit": 0, "daily_profit": 50, "totalDeposit": 1, "total_deposit": 2}`))
	require.NoError(t, err)

	assert.Equal(t, 0.0, acct.DailyProfit)
	assert.True(t, acct.HasDailyProfit)
	assert.Equal(t, 1.0, acct.TotalDeposit)
	assert.Nil(t, acct.TotalProfit)
}

func TestEncodeDecodeAccount_RoundTrip(t *testing.T) {
	acct := models.NewAccount(models.Identity{UserID: uuid.New(), Email: "d@example.com", Phone: "01712345678"})
	acct.Balance = 750.5
	acct.TotalDeposit = 1000
	acct.TotalWithdraw = 249.5
	acct.LastProfitDate = "2025-06-01"
	acct.DepositHistory = []models.LedgerEntry{{
		RequestID: uuid.New(), Type: models.EntryTypeDeposit, Amount: 1000, Method: "bkash",
		Phone: "01712345678", TrxID: "TX", Status: models.StatusSuccess, CreatedAt: time.Unix(1700000000, 0).UTC(),
	}}

	data, err := EncodeAccount(acct)
	require.NoError(t, err)
	got, err := DecodeAccount(data)
	require.NoError(t, err)

	assert.Equal(t, acct.Balance, got.Balance)
	assert.Equal(t, acct.TotalWithdraw, got.TotalWithdraw)
	assert.Equal(t, acct.LastProfitDate, got.LastProfitDate)
	assert.Equal(t, acct.Phone, got.Phone)
	require.Len(t, got.DepositHistory, 1)
	assert.Equal(t, acct.DepositHistory[0].RequestID, got.DepositHistory[0].RequestID)
	assert.True(t, acct.DepositHistory[0].CreatedAt.Equal(got.DepositHistory[0].CreatedAt))
	assert.Empty(t, got.WithdrawHistory)
}

func TestDecodeAccount_Invalid(t *testing.T) {
	_, err := DecodeAccount([]byte(`[1,2]`))
	assert.Error(t, err)
}

func TestDecodeAccount_DailyProfitPresence(t *testing.T) {
	acct, err := DecodeAccount([]byte(`{"balance": 1250, "totalProfit": 900}`))
	require.NoError(t, err)
	assert.False(t, acct.HasDailyProfit)

	acct, err = DecodeAccount([]byte(`{"balance": 1250, "dailyProfit": 0, "totalProfit": 900}`))
	require.NoError(t, err)
	assert.True(t, acct.HasDailyProfit)
	assert.Zero(t, acct.DailyProfit)

	roundTrip, err := EncodeAccount(models.NewAccount(models.Identity{UserID: uuid.New()}))
	require.NoError(t, err)
	acct, err = DecodeAccount(roundTrip)
	require.NoError(t, err)
	assert.True(t, acct.HasDailyProfit)
}
