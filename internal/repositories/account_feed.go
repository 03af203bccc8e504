package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/invest-ledger/internal/logger"
	"github.com/sbilibin2017/invest-ledger/internal/models"
)

// AccountGetter performs the point read that seeds a subscription.
type AccountGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Account, error)
}

// AccountFeedRepository is the account change feed, built on Redis pub/sub.
type AccountFeedRepository struct {
	client *redis.Client
	reader AccountGetter
}

// NewAccountFeedRepository creates a feed that seeds subscriptions from reader.
func NewAccountFeedRepository(client *redis.Client, reader AccountGetter) *AccountFeedRepository {
	return &AccountFeedRepository{client: client, reader: reader}
}

type accountMessage struct {
	AccountID uuid.UUID       `json:"account_id"`
	Version   int64           `json:"version"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func accountChannel(id uuid.UUID) string {
	return fmt.Sprintf(KeyAccountChannel, id)
}

// Publish announces a committed account document to its subscribers.
func (r *AccountFeedRepository) Publish(ctx context.Context, acct *models.Account) error {
	data, err := EncodeAccount(acct)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(accountMessage{
		AccountID: acct.AccountID,
		Version:   acct.Version,
		Data:      data,
		CreatedAt: acct.CreatedAt,
		UpdatedAt: acct.UpdatedAt,
	})
	if err != nil {
		return err
	}

	key := accountChannel(acct.AccountID)
	receivers, err := r.client.Publish(ctx, key, payload).Result()

	logger.Log.Infow(
		"redis command",
		"key", key,
		"version", acct.Version,
		"result", receivers,
		"error", err,
	)

	return err
}

// Subscribe delivers the current account document, then every newer
// published version, to onChange until the returned function is called or
// ctx is done. onChange receives nil when the account does not exist.
// Decoding failures go to onError. The returned function is idempotent.
func (r *AccountFeedRepository) Subscribe(
	ctx context.Context,
	id uuid.UUID,
	onChange func(*models.Account),
	onError func(error),
) (func(), error) {
	key := accountChannel(id)
	pubsub := r.client.Subscribe(ctx, key)

	// Wait for the subscription to be confirmed so no change committed after
	// the snapshot read below can be missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		logger.Log.Errorw("failed to subscribe to account feed", "key", key, "error", err)
		return nil, err
	}

	snapshot, err := r.reader.Get(ctx, id)
	if err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	var (
		stopped atomic.Bool
		once    sync.Once
	)
	unsubscribe := func() {
		once.Do(func() {
			stopped.Store(true)
			if err := pubsub.Close(); err != nil {
				logger.Log.Warnw("failed to close account feed", "key", key, "error", err)
			}
		})
	}

	go func() {
		var lastVersion int64
		if snapshot != nil {
			lastVersion = snapshot.Version
		}
		if !stopped.Load() {
			onChange(snapshot)
		}

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				unsubscribe()
				return
			case msg, ok := <-messages:
				if !ok || stopped.Load() {
					return
				}
				acct, version, err := decodeAccountMessage(msg.Payload)
				if err != nil {
					logger.Log.Errorw("failed to decode account change", "key", key, "error", err)
					onError(err)
					continue
				}
				if version <= lastVersion {
					continue
				}
				lastVersion = version
				onChange(acct)
			}
		}
	}()

	logger.Log.Infow("account feed subscribed", "key", key)
	return unsubscribe, nil
}

func decodeAccountMessage(payload string) (*models.Account, int64, error) {
	var msg accountMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		return nil, 0, err
	}
	acct, err := DecodeAccount(msg.Data)
	if err != nil {
		return nil, 0, err
	}
	acct.AccountID = msg.AccountID
	acct.Version = msg.Version
	acct.CreatedAt = msg.CreatedAt
	acct.UpdatedAt = msg.UpdatedAt
	return acct, msg.Version, nil
}
