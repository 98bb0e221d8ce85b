package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

import (
	"context"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/equipment"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/spells"
)

// Client loads rules content from the D&D 5e API and converts it into the
// records the engine resolves against
type Client interface {
	GetWeapon(ctx context.Context, key string) (*equipment.Weapon, error)
	GetSpell(ctx context.Context, key string) (*spells.Spell, error)
	GetMonster(ctx context.Context, key string) (*participant.Template, error)

	// ListWeapons returns every weapon that converts cleanly. Items the
	// engine cannot attack with are skipped.
	ListWeapons(ctx context.Context) ([]*equipment.Weapon, error)
	ListSpells(ctx context.Context, input *ListSpellsInput) ([]*spells.Spell, error)
	ListMonstersByCR(ctx context.Context, minCR, maxCR float64) ([]*participant.Template, error)
}

// ListSpellsInput filters ListSpells. Empty fields do not filter.
type ListSpellsInput struct {
	Class string
	Level *int
}
