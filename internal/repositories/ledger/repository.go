// Package ledger records which action ids have been committed to which
// participants, so a retried request is applied once across processes.
package ledger

//go:generate mockgen -destination=mock/mock_repository.go -package=mockledger -source=repository.go

import (
	"context"
	"time"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// DefaultTTL is how long a claim is remembered
const DefaultTTL = 24 * time.Hour

// Claim is one committed (action, participant) pair
type Claim struct {
	ActionID      string    `json:"action_id"`
	ParticipantID string    `json:"participant_id"`
	ClaimedAt     time.Time `json:"claimed_at"`
}

// Repository stores claims
type Repository interface {
	// Claim records the pair and reports true, or reports false when the
	// pair was already claimed
	Claim(ctx context.Context, actionID, participantID string) (bool, error)

	// Get returns the claim for the pair
	Get(ctx context.Context, actionID, participantID string) (*Claim, error)

	// Release forgets the pair so a retry can claim it again
	Release(ctx context.Context, actionID, participantID string) error
}

// TimeProvider stamps claims
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider reads the wall clock
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

func validateKey(actionID, participantID string) error {
	if actionID == "" {
		return errors.InvalidArgument("action id is required")
	}
	if participantID == "" {
		return errors.InvalidArgument("participant id is required")
	}
	return nil
}

func claimKey(actionID, participantID string) string {
	return "ledger:" + actionID + ":" + participantID
}
