// Package applier commits engine deltas to stored participants exactly once
// per action, even when several processes retry the same request.
package applier

//go:generate mockgen -destination=mock/mock_service.go -package=mockapplier -source=service.go

import (
	"context"
	"log"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/action"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/repositories/ledger"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/repositories/participants"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/services/engine"
)

// Result reports what a commit did
type Result struct {
	// Committed holds the stored participants after their deltas
	Committed []*participant.Participant
	// Skipped lists participant ids whose delta had already been committed
	Skipped []string
}

// Service commits deltas
type Service interface {
	// Commit applies each delta to the stored snapshot of its participant
	Commit(ctx context.Context, deltas ...*action.Delta) (*Result, error)

	// CommitOutcome commits every delta of a resolved action
	CommitOutcome(ctx context.Context, out *engine.Outcome) (*Result, error)
}

// ServiceConfig holds the dependencies of the service
type ServiceConfig struct {
	Ledger       ledger.Repository
	Participants participants.Repository
}

type service struct {
	ledger       ledger.Repository
	participants participants.Repository
}

// NewService creates the applier service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("service config is required")
	}
	if cfg.Ledger == nil {
		return nil, errors.InvalidArgument("ledger repository is required")
	}
	if cfg.Participants == nil {
		return nil, errors.InvalidArgument("participants repository is required")
	}
	return &service{ledger: cfg.Ledger, participants: cfg.Participants}, nil
}

func (s *service) CommitOutcome(ctx context.Context, out *engine.Outcome) (*Result, error) {
	if out == nil {
		return nil, errors.InvalidArgument("outcome is required")
	}
	if out.Replayed {
		log.Printf("[APPLIER] Action %s was replayed, nothing to commit", out.ActionID)
		return &Result{}, nil
	}
	return s.Commit(ctx, out.Deltas()...)
}

// Commit claims each (action, participant) pair before touching the
// snapshot. A failed save releases the claim so a retry can commit.
func (s *service) Commit(ctx context.Context, deltas ...*action.Delta) (*Result, error) {
	for _, d := range deltas {
		if d == nil {
			return nil, errors.InvalidArgument("delta is required")
		}
		if d.ActionID == "" {
			return nil, errors.InvalidArgument("delta has no action id").
				WithMeta("participant_id", d.ParticipantID)
		}
	}

	result := &Result{}
	for _, d := range deltas {
		claimed, err := s.ledger.Claim(ctx, d.ActionID, d.ParticipantID)
		if err != nil {
			return result, err
		}
		if !claimed {
			log.Printf("[APPLIER] Action %s already committed for %s, skipping", d.ActionID, d.ParticipantID)
			result.Skipped = append(result.Skipped, d.ParticipantID)
			continue
		}

		committed, err := s.commitOne(ctx, d)
		if err != nil {
			if releaseErr := s.ledger.Release(ctx, d.ActionID, d.ParticipantID); releaseErr != nil {
				log.Printf("[APPLIER] Failed to release action %s for %s: %v", d.ActionID, d.ParticipantID, releaseErr)
			}
			return result, err
		}
		result.Committed = append(result.Committed, committed)
	}
	return result, nil
}

func (s *service) commitOne(ctx context.Context, d *action.Delta) (*participant.Participant, error) {
	stored, err := s.participants.Get(ctx, d.ParticipantID)
	if err != nil {
		return nil, err
	}

	after, applied, err := action.Apply(stored, d)
	if err != nil {
		return nil, err
	}
	if !applied {
		// the snapshot already carries the action; the claim is all that was missing
		return after, nil
	}

	if err := s.participants.Save(ctx, after); err != nil {
		return nil, errors.Wrapf(err, "failed to save %s after action %s", d.ParticipantID, d.ActionID)
	}
	return after, nil
}
