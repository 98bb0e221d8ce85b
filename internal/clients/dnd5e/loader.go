package dnd5e

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/equipment"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/spells"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// CatalogSink receives loaded records. engine.StaticCatalog satisfies it.
type CatalogSink interface {
	AddWeapon(w *equipment.Weapon) error
	AddSpell(s *spells.Spell) error
}

// KeyChecker reports whether a record is already known so built-in
// entries are not replaced by API data
type KeyChecker interface {
	WeaponKeys() []string
	SpellKeys() []string
}

// LoadRequest names the records to fetch
type LoadRequest struct {
	Weapons []string
	Spells  []string
}

// LoadCatalog fetches the requested weapons and spells concurrently and adds
// them to sink. Keys the sink already holds are not fetched when it can
// list them. Any failed key fails the load.
func LoadCatalog(ctx context.Context, c Client, sink CatalogSink, req *LoadRequest) error {
	if c == nil {
		return errors.InvalidArgument("client is required")
	}
	if sink == nil {
		return errors.InvalidArgument("catalog is required")
	}
	if req == nil {
		return nil
	}

	weapons, spellKeys := req.Weapons, req.Spells
	if known, ok := sink.(KeyChecker); ok {
		weapons = missing(weapons, known.WeaponKeys())
		spellKeys = missing(spellKeys, known.SpellKeys())
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for _, key := range weapons {
		g.Go(func() error {
			w, err := c.GetWeapon(gctx, key)
			if err != nil {
				return errors.Wrapf(err, "failed to load weapon %s", key)
			}
			return sink.AddWeapon(w)
		})
	}
	for _, key := range spellKeys {
		g.Go(func() error {
			s, err := c.GetSpell(gctx, key)
			if err != nil {
				return errors.Wrapf(err, "failed to load spell %s", key)
			}
			return sink.AddSpell(s)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Printf("[DND5E] Loaded %d weapons and %d spells", len(weapons), len(spellKeys))
	return nil
}

func missing(want, have []string) []string {
	known := make(map[string]bool, len(have))
	for _, k := range have {
		known[k] = true
	}
	var out []string
	for _, k := range want {
		if k != "" && !known[k] {
			known[k] = true
			out = append(out, k)
		}
	}
	return out
}
