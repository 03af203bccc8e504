package services

//go:generate mockgen -source=deposit_hold.go -destination=deposit_hold_mock.go -package=services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/invest-ledger/internal/logger"
	"github.com/sbilibin2017/invest-ledger/internal/models"
)

// DepositHoldStore keeps pending deposit confirmations.
type DepositHoldStore interface {
	Save(ctx context.Context, hold *models.DepositHold) error
	Get(ctx context.Context, id uuid.UUID) (*models.DepositHold, error)  // Returns nil when absent
	Take(ctx context.Context, id uuid.UUID) (*models.DepositHold, error) // Atomic read-and-delete, nil when absent
	Delete(ctx context.Context, id uuid.UUID) error
}

// Depositor commits a deposit to the ledger.
type Depositor interface {
	Deposit(ctx context.Context, identity models.Identity, in DepositInput) (*models.Account, error)
}

// DepositHoldService implements the confirm-after-countdown deposit flow.
// The hold only gates when the user may confirm; the ledger itself is
// never delayed by it.
type DepositHoldService struct {
	store     DepositHoldStore
	ledger    Depositor
	validator *Validator
	window    time.Duration
	now       func() time.Time
}

// NewDepositHoldService creates a new DepositHoldService.
func NewDepositHoldService(store DepositHoldStore, ledger Depositor, window time.Duration) *DepositHoldService {
	return &DepositHoldService{
		store:     store,
		ledger:    ledger,
		validator: NewValidator(),
		window:    window,
		now:       time.Now,
	}
}

// Create validates the deposit and parks it until the window has elapsed.
func (s *DepositHoldService) Create(ctx context.Context, identity models.Identity, in DepositInput) (*models.DepositHold, error) {
	if identity.UserID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	in.Method = normalizeMethod(in.Method)
	in.Phone = strings.TrimSpace(in.Phone)
	in.TrxID = strings.TrimSpace(in.TrxID)
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	hold := &models.DepositHold{
		HoldID:    uuid.New(),
		UserID:    identity.UserID,
		Amount:    in.Amount,
		Method:    in.Method,
		Phone:     in.Phone,
		TrxID:     in.TrxID,
		ReadyAt:   now.Add(s.window),
		CreatedAt: now,
	}
	if err := s.store.Save(ctx, hold); err != nil {
		logger.Log.Errorw("failed to save deposit hold", "userID", identity.UserID, "error", err)
		return nil, err
	}

	logger.Log.Infow("deposit hold created", "holdID", hold.HoldID, "userID", identity.UserID, "readyAt", hold.ReadyAt)
	return hold, nil
}

// Confirm commits a held deposit once its window has elapsed. A hold can
// be confirmed at most once; if the ledger write fails the hold is restored.
func (s *DepositHoldService) Confirm(ctx context.Context, identity models.Identity, holdID uuid.UUID) (*models.Account, error) {
	if identity.UserID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	hold, err := s.store.Get(ctx, holdID)
	if err != nil {
		logger.Log.Errorw("failed to get deposit hold", "holdID", holdID, "error", err)
		return nil, err
	}
	if hold == nil || hold.UserID != identity.UserID {
		return nil, ErrHoldNotFound
	}
	if s.now().Before(hold.ReadyAt) {
		return nil, ErrHoldNotReady
	}

	hold, err = s.store.Take(ctx, holdID)
	if err != nil {
		logger.Log.Errorw("failed to take deposit hold", "holdID", holdID, "error", err)
		return nil, err
	}
	if hold == nil {
		// Confirmed or cancelled concurrently.
		return nil, ErrHoldNotFound
	}

	acct, err := s.ledger.Deposit(ctx, identity, DepositInput{
		Amount: hold.Amount,
		Method: hold.Method,
		Phone:  hold.Phone,
		TrxID:  hold.TrxID,
	})
	if err != nil {
		// The deposit did not commit; put the hold back so it can be confirmed again.
		if saveErr := s.store.Save(context.WithoutCancel(ctx), hold); saveErr != nil {
			logger.Log.Errorw("failed to restore deposit hold", "holdID", holdID, "userID", identity.UserID, "error", saveErr)
		}
		return nil, err
	}
	return acct, nil
}

// Cancel drops a hold. Cancelling a missing hold is not an error.
func (s *DepositHoldService) Cancel(ctx context.Context, identity models.Identity, holdID uuid.UUID) error {
	if identity.UserID == uuid.Nil {
		return ErrUnauthenticated
	}

	hold, err := s.store.Get(ctx, holdID)
	if err != nil {
		return err
	}
	if hold == nil || hold.UserID != identity.UserID {
		return nil
	}

	if err := s.store.Delete(ctx, holdID); err != nil {
		logger.Log.Errorw("failed to delete deposit hold", "holdID", holdID, "error", err)
		return err
	}
	logger.Log.Infow("deposit hold cancelled", "holdID", holdID, "userID", identity.UserID)
	return nil
}
