package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/invest-ledger/internal/logger"
	"github.com/sbilibin2017/invest-ledger/internal/models"
)

// DepositHoldRepository keeps pending deposit confirmations in Redis.
type DepositHoldRepository struct {
	client *redis.Client
}

// NewDepositHoldRepository creates a new DepositHoldRepository.
func NewDepositHoldRepository(client *redis.Client) *DepositHoldRepository {
	return &DepositHoldRepository{client: client}
}

func depositHoldKey(id uuid.UUID) string {
	return fmt.Sprintf(KeyDepositHold, id)
}

// Save stores the hold until shortly after it becomes confirmable. A hold
// saved after its ready time lives for the grace period.
func (r *DepositHoldRepository) Save(ctx context.Context, hold *models.DepositHold) error {
	data, err := json.Marshal(hold)
	if err != nil {
		return err
	}

	key := depositHoldKey(hold.HoldID)
	ttl := max(time.Until(hold.ReadyAt), 0) + TTLDepositHoldGrace
	err = r.client.Set(ctx, key, data, ttl).Err()

	logger.Log.Infow(
		"redis command",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// Get returns the hold, or nil if it does not exist.
func (r *DepositHoldRepository) Get(ctx context.Context, id uuid.UUID) (*models.DepositHold, error) {
	return r.read(ctx, id, r.client.Get)
}

// Take atomically reads and removes the hold, so a hold is consumed at
// most once. It returns nil if the hold does not exist.
func (r *DepositHoldRepository) Take(ctx context.Context, id uuid.UUID) (*models.DepositHold, error) {
	return r.read(ctx, id, r.client.GetDel)
}

// Delete removes the hold. Deleting a missing hold is not an error.
func (r *DepositHoldRepository) Delete(ctx context.Context, id uuid.UUID) error {
	key := depositHoldKey(id)
	n, err := r.client.Del(ctx, key).Result()

	logger.Log.Infow(
		"redis command",
		"key", key,
		"result", n,
		"error", err,
	)

	return err
}

func (r *DepositHoldRepository) read(
	ctx context.Context,
	id uuid.UUID,
	cmd func(ctx context.Context, key string) *redis.StringCmd,
) (*models.DepositHold, error) {
	key := depositHoldKey(id)
	val, err := cmd(ctx, key).Result()

	logger.Log.Infow(
		"redis command",
		"key", key,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var hold models.DepositHold
	if err := json.Unmarshal([]byte(val), &hold); err != nil {
		return nil, err
	}
	return &hold, nil
}
