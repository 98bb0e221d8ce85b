package participants

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// inMemoryRepo keeps snapshots as JSON so callers never share memory with
// the store, the same as they would with redis
type inMemoryRepo struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewInMemory creates an in-memory snapshot repository
func NewInMemory() Repository {
	return &inMemoryRepo{snapshots: make(map[string][]byte)}
}

func (r *inMemoryRepo) Save(_ context.Context, p *participant.Participant) error {
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

	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[p.ID] = data
	return nil
}

func (r *inMemoryRepo) Get(_ context.Context, id string) (*participant.Participant, error) {
	if id == "" {
		return nil, errors.InvalidArgument("participant id is required")
	}

	r.mu.RLock()
	data, ok := r.snapshots[id]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NotFoundf("participant %s not found", id).WithMeta("participant_id", id)
	}

	var p participant.Participant
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal participant").WithMeta("participant_id", id)
	}
	return &p, nil
}

func (r *inMemoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.snapshots[id]; !ok {
		return errors.NotFoundf("participant %s not found", id).WithMeta("participant_id", id)
	}
	delete(r.snapshots, id)
	return nil
}

func (r *inMemoryRepo) List(ctx context.Context) ([]*participant.Participant, error) {
	r.mu.RLock()
	ids := make([]string, 0, len(r.snapshots))
	for id := range r.snapshots {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	sort.Strings(ids)

	out := make([]*participant.Participant, 0, len(ids))
	for _, id := range ids {
		p, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
