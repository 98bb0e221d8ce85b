package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// InMemoryConfig holds configuration for the in-memory ledger
type InMemoryConfig struct {
	TTL          time.Duration
	TimeProvider TimeProvider
}

type inMemoryRepo struct {
	mu           sync.Mutex
	claims       map[string]*Claim
	ttl          time.Duration
	timeProvider TimeProvider
}

// NewInMemory creates a ledger for a single process. Expired claims are
// dropped lazily when their key is touched.
func NewInMemory(cfg *InMemoryConfig) Repository {
	repo := &inMemoryRepo{
		claims:       make(map[string]*Claim),
		ttl:          DefaultTTL,
		timeProvider: RealTimeProvider{},
	}
	if cfg != nil {
		if cfg.TTL > 0 {
			repo.ttl = cfg.TTL
		}
		if cfg.TimeProvider != nil {
			repo.timeProvider = cfg.TimeProvider
		}
	}
	return repo
}

// live returns the unexpired claim under key; callers hold mu
func (r *inMemoryRepo) live(key string) (*Claim, bool) {
	claim, ok := r.claims[key]
	if !ok {
		return nil, false
	}
	if !r.timeProvider.Now().Before(claim.ClaimedAt.Add(r.ttl)) {
		delete(r.claims, key)
		return nil, false
	}
	return claim, true
}

func (r *inMemoryRepo) Claim(_ context.Context, actionID, participantID string) (bool, error) {
	if err := validateKey(actionID, participantID); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := claimKey(actionID, participantID)
	if _, ok := r.live(key); ok {
		return false, nil
	}
	r.claims[key] = &Claim{
		ActionID:      actionID,
		ParticipantID: participantID,
		ClaimedAt:     r.timeProvider.Now(),
	}
	return true, nil
}

func (r *inMemoryRepo) Get(_ context.Context, actionID, participantID string) (*Claim, error) {
	if err := validateKey(actionID, participantID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	claim, ok := r.live(claimKey(actionID, participantID))
	if !ok {
		return nil, errors.NotFoundf("action %s has not been claimed for %s", actionID, participantID).
			WithMeta("participant_id", participantID)
	}
	c := *claim
	return &c, nil
}

func (r *inMemoryRepo) Release(_ context.Context, actionID, participantID string) error {
	if err := validateKey(actionID, participantID); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.claims, claimKey(actionID, participantID))
	return nil
}
