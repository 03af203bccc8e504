package services

//go:generate mockgen -source=ledger.go -destination=ledger_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/sbilibin2017/invest-ledger/internal/logger"
	"github.com/sbilibin2017/invest-ledger/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day format used by the profit claim fields.
const DateLayout = "2006-01-02"

// AccountStore is the versioned account document store.
type AccountStore interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Account, error) // Returns nil when the account does not exist
	Create(ctx context.Context, acct *models.Account) error         // Inserts a new document, ErrTransactionConflict if present
	Commit(ctx context.Context, c models.Commit) error              // Compare-and-swap write of account plus audit record
}

// AccountPublisher announces committed account documents to live subscribers.
type AccountPublisher interface {
	Publish(ctx context.Context, acct *models.Account) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ClaimResult is the outcome of a successful daily profit claim.
type ClaimResult struct {
	Claimed    float64 `json:"claimed"`
	NewBalance float64 `json:"new_balance"`
}

// LedgerOption configures a LedgerService.
type LedgerOption func(*LedgerService)

// WithClock overrides the time source.
func WithClock(now func() time.Time) LedgerOption {
	return func(s *LedgerService) {
		s.now = now
	}
}

// WithLocation sets the reference timezone that decides what "today" is.
func WithLocation(loc *time.Location) LedgerOption {
	return func(s *LedgerService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithMaxAttempts bounds the number of tries per transaction.
func WithMaxAttempts(n int) LedgerOption {
	return func(s *LedgerService) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithBackOff sets the delay policy between conflicting attempts.
func WithBackOff(newBackOff func() backoff.BackOff) LedgerOption {
	return func(s *LedgerService) {
		s.newBackOff = newBackOff
	}
}

// LedgerService owns every balance mutation. Each operation is a single
// read-modify-write of the account document committed with
// compare-and-swap on its version.
type LedgerService struct {
	store       AccountStore
	feed        AccountPublisher
	kafkaWriter KafkaWriter
	validator   *Validator
	now         func() time.Time
	location    *time.Location
	maxAttempts int
	newBackOff  func() backoff.BackOff
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	store AccountStore,
	feed AccountPublisher,
	kafkaWriter KafkaWriter,
	opts ...LedgerOption,
) *LedgerService {
	s := &LedgerService{
		store:       store,
		feed:        feed,
		kafkaWriter: kafkaWriter,
		validator:   NewValidator(),
		now:         time.Now,
		location:    time.UTC,
		maxAttempts: 5,
		newBackOff:  defaultBackOff,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond
	b.MaxElapsedTime = 5 * time.Second
	b.Reset()
	return b
}

// Today returns the current calendar day in the reference timezone.
func (s *LedgerService) Today() string {
	return s.now().In(s.location).Format(DateLayout)
}

// Deposit credits the caller's account and records a successful payment request.
func (s *LedgerService) Deposit(ctx context.Context, identity models.Identity, in DepositInput) (*models.Account, error) {
	if identity.UserID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	in.Method = normalizeMethod(in.Method)
	in.Phone = strings.TrimSpace(in.Phone)
	in.TrxID = strings.TrimSpace(in.TrxID)
	if err := s.validator.Struct(in); err != nil {
		logger.Log.Warnw("deposit rejected", "userID", identity.UserID, "error", err)
		return nil, err
	}

	now := s.now().UTC()
	requestID := uuid.New()
	entry := models.LedgerEntry{
		RequestID: requestID,
		Type:      models.EntryTypeDeposit,
		Amount:    in.Amount,
		Method:    in.Method,
		Phone:     in.Phone,
		TrxID:     in.TrxID,
		Status:    models.StatusSuccess,
		CreatedAt: now,
	}

	acct, err := s.runTransaction(ctx, identity.UserID, func(current *models.Account) (models.Commit, error) {
		next, expected := models.NewAccount(identity), int64(0)
		if current != nil {
			next, expected = current.Clone(), current.Version
		}

		next.Balance = add(next.Balance, in.Amount)
		next.TotalDeposit = add(next.TotalDeposit, in.Amount)
		next.DepositHistory = append(next.DepositHistory, entry)

		return models.Commit{
			Account:         next,
			ExpectedVersion: expected,
			Payment: &models.PaymentRequest{
				RequestID: requestID,
				UserID:    identity.UserID,
				Email:     optionalString(identity.Email),
				Amount:    in.Amount,
				Method:    in.Method,
				Phone:     in.Phone,
				TrxID:     in.TrxID,
				Status:    models.StatusSuccess,
			},
		}, nil
	})
	if err != nil {
		logger.Log.Errorw("failed to deposit", "userID", identity.UserID, "amount", in.Amount, "error", err)
		return nil, err
	}

	s.afterCommit(ctx, acct, models.LedgerEvent{
		RequestID: requestID.String(),
		Operation: string(models.EntryTypeDeposit),
		Amount:    in.Amount,
		Status:    models.StatusSuccess,
	})
	return acct, nil
}

// Withdraw reserves funds from the caller's account and records a pending
// withdraw request for external approval. An account that does not exist
// yet is provisioned with a zero balance first, so the withdrawal then
// fails with ErrInsufficientFunds.
func (s *LedgerService) Withdraw(ctx context.Context, identity models.Identity, in WithdrawInput) (*models.Account, error) {
	if identity.UserID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	in.Method = normalizeMethod(in.Method)
	in.Phone = strings.TrimSpace(in.Phone)
	if err := s.validator.Struct(in); err != nil {
		logger.Log.Warnw("withdraw rejected", "userID", identity.UserID, "error", err)
		return nil, err
	}

	if err := s.ensureAccount(ctx, identity); err != nil {
		logger.Log.Errorw("failed to provision account", "userID", identity.UserID, "error", err)
		return nil, err
	}

	now := s.now().UTC()
	requestID := uuid.New()

	acct, err := s.runTransaction(ctx, identity.UserID, func(current *models.Account) (models.Commit, error) {
		if current == nil {
			return models.Commit{}, ErrAccountNotFound
		}
		if decimal.NewFromFloat(current.Balance).LessThan(decimal.NewFromFloat(in.Amount)) {
			return models.Commit{}, ErrInsufficientFunds
		}

		next := current.Clone()
		next.Balance = sub(next.Balance, in.Amount)
		next.TotalWithdraw = add(next.TotalWithdraw, in.Amount)
		next.WithdrawHistory = append(next.WithdrawHistory, models.LedgerEntry{
			RequestID: requestID,
			Type:      models.EntryTypeWithdraw,
			Amount:    in.Amount,
			Method:    in.Method,
			Phone:     in.Phone,
			Status:    models.StatusPending,
			CreatedAt: now,
		})

		return models.Commit{
			Account:         next,
			ExpectedVersion: current.Version,
			Withdraw: &models.WithdrawRequest{
				RequestID: requestID,
				UserID:    identity.UserID,
				Amount:    in.Amount,
				Method:    in.Method,
				Phone:     in.Phone,
				Status:    models.StatusPending,
				Refunded:  false,
			},
		}, nil
	})
	if err != nil {
		logger.Log.Errorw("failed to withdraw", "userID", identity.UserID, "amount", in.Amount, "error", err)
		return nil, err
	}

	s.afterCommit(ctx, acct, models.LedgerEvent{
		RequestID: requestID.String(),
		Operation: string(models.EntryTypeWithdraw),
		Amount:    in.Amount,
		Status:    models.StatusPending,
	})
	return acct, nil
}

// ClaimDailyProfit moves today's pending profit into the balance. At most
// one claim succeeds per calendar day in the reference timezone.
func (s *LedgerService) ClaimDailyProfit(ctx context.Context, identity models.Identity) (*ClaimResult, error) {
	if identity.UserID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	today := s.Today()
	var claimed float64

	acct, err := s.runTransaction(ctx, identity.UserID, func(current *models.Account) (models.Commit, error) {
		if current == nil {
			return models.Commit{}, ErrAccountNotFound
		}
		if current.LastClaimDate == today {
			return models.Commit{}, ErrAlreadyClaimedToday
		}
		if current.DailyProfit <= 0 {
			return models.Commit{}, ErrNoProfitAvailable
		}
		if current.LastProfitDate != "" && current.LastProfitDate != today {
			return models.Commit{}, ErrProfitNotForToday
		}

		claimed = current.DailyProfit
		next := current.Clone()
		next.Balance = add(next.Balance, claimed)
		next.DailyProfit = 0
		next.LastClaimDate = today

		return models.Commit{Account: next, ExpectedVersion: current.Version}, nil
	})
	if err != nil {
		logger.Log.Errorw("failed to claim daily profit", "userID", identity.UserID, "error", err)
		return nil, err
	}

	s.afterCommit(ctx, acct, models.LedgerEvent{
		Operation: "claim",
		Amount:    claimed,
		Status:    models.StatusSuccess,
	})
	return &ClaimResult{Claimed: claimed, NewBalance: acct.Balance}, nil
}

// Account returns the caller's account document, or ErrAccountNotFound.
func (s *LedgerService) Account(ctx context.Context, identity models.Identity) (*models.Account, error) {
	if identity.UserID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	acct, err := s.store.Get(ctx, identity.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get account", "userID", identity.UserID, "error", err)
		return nil, err
	}
	if acct == nil {
		return nil, ErrAccountNotFound
	}
	return acct, nil
}

// ensureAccount provisions a zeroed account for the caller if none exists.
// It is a separate write that persists even if the following transaction fails.
func (s *LedgerService) ensureAccount(ctx context.Context, identity models.Identity) error {
	acct, err := s.store.Get(ctx, identity.UserID)
	if err != nil {
		return err
	}
	if acct != nil {
		return nil
	}

	err = s.store.Create(ctx, models.NewAccount(identity))
	if errors.Is(err, ErrTransactionConflict) {
		// Created concurrently; that is just as good.
		return nil
	}
	if err == nil {
		logger.Log.Infow("account provisioned", "userID", identity.UserID)
	}
	return err
}

// runTransaction reads the account, lets mutate build the write-set and
// commits it with compare-and-swap. Version conflicts are retried with
// backoff up to maxAttempts; errors returned by mutate are final.
func (s *LedgerService) runTransaction(
	ctx context.Context,
	id uuid.UUID,
	mutate func(current *models.Account) (models.Commit, error),
) (*models.Account, error) {
	var (
		committed *models.Account
		attempt   int
	)

	op := func() error {
		attempt++

		current, err := s.store.Get(ctx, id)
		if err != nil {
			return backoff.Permanent(err)
		}

		c, err := mutate(current)
		if err != nil {
			return backoff.Permanent(err)
		}

		err = s.store.Commit(ctx, c)
		if errors.Is(err, ErrTransactionConflict) {
			logger.Log.Warnw("transaction conflict", "accountID", id, "attempt", attempt)
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}

		committed = c.Account
		committed.Version = c.ExpectedVersion + 1
		committed.HasDailyProfit = true // stored documents always carry dailyProfit
		committed.UpdatedAt = s.now().UTC()
		if c.ExpectedVersion == 0 {
			committed.CreatedAt = committed.UpdatedAt
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(s.newBackOff(), uint64(s.maxAttempts-1)), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		if errors.Is(err, ErrTransactionConflict) {
			return nil, fmt.Errorf("%w: %w after %d attempts", ErrOperationFailed, err, attempt)
		}
		return nil, err
	}
	return committed, nil
}

// afterCommit notifies live subscribers and the approval workflow. Both are
// best-effort; the commit already happened.
func (s *LedgerService) afterCommit(ctx context.Context, acct *models.Account, event models.LedgerEvent) {
	if s.feed != nil {
		if err := s.feed.Publish(ctx, acct); err != nil {
			logger.Log.Errorw("Failed to publish account change", "accountID", acct.AccountID, "error", err)
		}
	}

	event.AccountID = acct.AccountID.String()
	event.Balance = acct.Balance
	event.Timestamp = s.now().Unix()
	s.publishEvent(ctx, event)
}

// publishEvent publishes a ledger event to Kafka.
func (s *LedgerService) publishEvent(ctx context.Context, event models.LedgerEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "request_id", event.RequestID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal ledger event for Kafka", "request_id", event.RequestID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.AccountID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish ledger event to Kafka", "request_id", event.RequestID, "error", err)
	} else {
		logger.Log.Infow("Ledger event published to Kafka", "request_id", event.RequestID, "operation", event.Operation, "amount", event.Amount)
	}
}

func add(a, b float64) float64 {
	return decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).InexactFloat64()
}

func sub(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).InexactFloat64()
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
