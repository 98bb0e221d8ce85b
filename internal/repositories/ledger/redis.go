package ledger

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// RedisConfig holds configuration for the redis ledger
type RedisConfig struct {
	Client       redis.UniversalClient
	TTL          time.Duration
	TimeProvider TimeProvider
}

type redisRepo struct {
	client       redis.UniversalClient
	ttl          time.Duration
	timeProvider TimeProvider
}

// NewRedis creates a redis ledger with the default TTL
func NewRedis(client redis.UniversalClient) (Repository, error) {
	return NewRedisRepository(&RedisConfig{Client: client})
}

// NewRedisRepository creates a redis ledger. Claims use SET NX so two
// processes racing on the same action cannot both win.
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("redis config is required")
	}
	if cfg.Client == nil {
		return nil, errors.InvalidArgument("redis client is required")
	}
	if cfg.TTL < 0 {
		return nil, errors.InvalidArgumentf("ledger ttl %s cannot be negative", cfg.TTL)
	}

	repo := &redisRepo{
		client:       cfg.Client,
		ttl:          cfg.TTL,
		timeProvider: cfg.TimeProvider,
	}
	if repo.ttl == 0 {
		repo.ttl = DefaultTTL
	}
	if repo.timeProvider == nil {
		repo.timeProvider = RealTimeProvider{}
	}
	return repo, nil
}

func (r *redisRepo) Claim(ctx context.Context, actionID, participantID string) (bool, error) {
	if err := validateKey(actionID, participantID); err != nil {
		return false, err
	}

	data, err := json.Marshal(&Claim{
		ActionID:      actionID,
		ParticipantID: participantID,
		ClaimedAt:     r.timeProvider.Now(),
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to marshal claim")
	}

	ok, err := r.client.SetNX(ctx, claimKey(actionID, participantID), string(data), r.ttl).Result()
	if err != nil {
		return false, errors.Wrapf(err, "failed to claim action %s", actionID).
			WithMeta("participant_id", participantID)
	}
	if !ok {
		log.Printf("[LEDGER] Action %s already claimed for %s", actionID, participantID)
	}
	return ok, nil
}

func (r *redisRepo) Get(ctx context.Context, actionID, participantID string) (*Claim, error) {
	if err := validateKey(actionID, participantID); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, claimKey(actionID, participantID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("action %s has not been claimed for %s", actionID, participantID).
				WithMeta("participant_id", participantID)
		}
		return nil, errors.Wrapf(err, "failed to get claim for action %s", actionID)
	}

	var claim Claim
	if err := json.Unmarshal(data, &claim); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal claim")
	}
	return &claim, nil
}

func (r *redisRepo) Release(ctx context.Context, actionID, participantID string) error {
	if err := validateKey(actionID, participantID); err != nil {
		return err
	}
	if err := r.client.Del(ctx, claimKey(actionID, participantID)).Err(); err != nil {
		return errors.Wrapf(err, "failed to release action %s", actionID).
			WithMeta("participant_id", participantID)
	}
	return nil
}
