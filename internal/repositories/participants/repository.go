// Package participants stores participant snapshots between actions
package participants

//go:generate mockgen -destination=mock/mock_repository.go -package=mockparticipants -source=repository.go

import (
	"context"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
)

// Repository stores the latest snapshot of each participant
type Repository interface {
	// Save validates and stores the snapshot, replacing any earlier one
	Save(ctx context.Context, p *participant.Participant) error

	// Get retrieves a snapshot by participant id
	Get(ctx context.Context, id string) (*participant.Participant, error)

	// Delete removes a snapshot
	Delete(ctx context.Context, id string) error

	// List returns every stored snapshot ordered by id
	List(ctx context.Context) ([]*participant.Participant, error)
}
