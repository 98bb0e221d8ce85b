package participants

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

const (
	participantKeyPrefix = "participant:"
	participantIndexKey  = "participants"
)

// RedisConfig holds configuration for the redis repository
type RedisConfig struct {
	Client redis.UniversalClient
	// TTL expires idle snapshots. Zero keeps them forever.
	TTL time.Duration
}

type redisRepo struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedis creates a redis repository that keeps snapshots forever
func NewRedis(client redis.UniversalClient) (Repository, error) {
	return NewRedisRepository(&RedisConfig{Client: client})
}

// NewRedisRepository creates a redis-backed snapshot repository
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("redis config is required")
	}
	if cfg.Client == nil {
		return nil, errors.InvalidArgument("redis client is required")
	}
	if cfg.TTL < 0 {
		return nil, errors.InvalidArgumentf("snapshot ttl %s cannot be negative", cfg.TTL)
	}
	return &redisRepo{client: cfg.Client, ttl: cfg.TTL}, nil
}

func (r *redisRepo) Save(ctx context.Context, p *participant.Participant) error {
	if p == nil {
		return errors.InvalidArgument("participant cannot be nil")
	}
	if err := p.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "failed to marshal participant").WithMeta("participant_id", p.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, participantKeyPrefix+p.ID, string(data), r.ttl)
	pipe.SAdd(ctx, participantIndexKey, p.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to save participant").WithMeta("participant_id", p.ID)
	}
	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*participant.Participant, error) {
	if id == "" {
		return nil, errors.InvalidArgument("participant id is required")
	}

	data, err := r.client.Get(ctx, participantKeyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("participant %s not found", id).WithMeta("participant_id", id)
		}
		return nil, errors.Wrap(err, "failed to get participant").WithMeta("participant_id", id)
	}

	var p participant.Participant
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal participant").WithMeta("participant_id", id)
	}
	return &p, nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.InvalidArgument("participant id is required")
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, participantKeyPrefix+id)
	pipe.SRem(ctx, participantIndexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to delete participant").WithMeta("participant_id", id)
	}
	if del.Val() == 0 {
		return errors.NotFoundf("participant %s not found", id).WithMeta("participant_id", id)
	}
	return nil
}

func (r *redisRepo) List(ctx context.Context) ([]*participant.Participant, error) {
	ids, err := r.client.SMembers(ctx, participantIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list participants")
	}
	sort.Strings(ids)

	snapshots := make([]*participant.Participant, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			p, err := r.Get(ctx, id)
			if err != nil {
				return err
			}
			snapshots[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return snapshots, nil
}
