package dnd5e

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
	"golang.org/x/sync/errgroup"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/equipment"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/spells"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

const (
	weaponCategory = "weapon"

	// maxConcurrentFetches bounds detail requests fanned out by list calls
	maxConcurrentFetches = 8
)

// challengeRatings are the published CR values. The API filters on exact
// values only so ranges are walked one rating at a time.
var challengeRatings = []float64{0, 0.125, 0.25, 0.5, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
	11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30}

type client struct {
	client api.Interface
}

// Config configures the API client
type Config struct {
	HTTPClient *http.Client
	// BaseURL overrides the public API endpoint. Optional.
	BaseURL string
	// CacheTTL caches responses in memory. Zero disables caching.
	CacheTTL time.Duration
}

// New creates a client for the public D&D 5e API
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("dnd5e client config is required")
	}
	if cfg.CacheTTL < 0 {
		return nil, errors.InvalidArgument("cache ttl cannot be negative")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	base, err := api.NewDND5eAPI(&api.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	if cfg.CacheTTL > 0 {
		return NewFromAPI(api.NewCachedClient(base, cfg.CacheTTL))
	}
	return NewFromAPI(base)
}

// NewFromAPI wraps an existing API client
func NewFromAPI(apiClient api.Interface) (Client, error) {
	if apiClient == nil {
		return nil, errors.InvalidArgument("api client is required")
	}
	return &client{client: apiClient}, nil
}

func (c *client) GetWeapon(ctx context.Context, key string) (*equipment.Weapon, error) {
	if key == "" {
		return nil, errors.InvalidArgument("weapon key is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	response, err := c.client.GetEquipment(key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get equipment %s", key)
	}

	weapon, ok := response.(*apiEntities.Weapon)
	if !ok {
		return nil, errors.InvalidArgumentf("equipment %s is not a weapon", key).WithMeta("key", key)
	}

	return apiWeaponToWeapon(weapon)
}

func (c *client) GetSpell(ctx context.Context, key string) (*spells.Spell, error) {
	if key == "" {
		return nil, errors.InvalidArgument("spell key is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	response, err := c.client.GetSpell(key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get spell %s", key)
	}

	return apiSpellToSpell(response)
}

func (c *client) GetMonster(ctx context.Context, key string) (*participant.Template, error) {
	if key == "" {
		return nil, errors.InvalidArgument("monster key is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	response, err := c.client.GetMonster(key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster %s", key)
	}

	return apiMonsterToTemplate(response)
}

func (c *client) ListWeapons(ctx context.Context) ([]*equipment.Weapon, error) {
	category, err := c.client.GetEquipmentCategory(weaponCategory)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get weapon category")
	}

	keys := make([]string, 0, len(category.Equipment))
	for _, ref := range category.Equipment {
		if ref != nil && ref.Key != "" {
			keys = append(keys, ref.Key)
		}
	}

	return fetchAll(ctx, keys, "weapon", c.GetWeapon)
}

func (c *client) ListSpells(ctx context.Context, input *ListSpellsInput) ([]*spells.Spell, error) {
	var filter *api.ListSpellsInput
	if input != nil {
		filter = &api.ListSpellsInput{Class: input.Class, Level: input.Level}
	}

	refs, err := c.client.ListSpells(filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list spells")
	}

	return fetchAll(ctx, referenceKeys(refs), "spell", c.GetSpell)
}

func (c *client) ListMonstersByCR(ctx context.Context, minCR, maxCR float64) ([]*participant.Template, error) {
	if minCR > maxCR {
		return nil, errors.InvalidArgumentf("min challenge rating %.3g is above max %.3g", minCR, maxCR)
	}

	seen := make(map[string]bool)
	var keys []string
	for _, cr := range challengeRatings {
		if cr < minCR || cr > maxCR {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rating := cr
		refs, err := c.client.ListMonstersWithFilter(&api.ListMonstersInput{ChallengeRating: &rating})
		if err != nil {
			log.Printf("[DND5E] Failed to list monsters for CR %v: %v", cr, err)
			continue
		}
		for _, key := range referenceKeys(refs) {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}

	return fetchAll(ctx, keys, "monster", c.GetMonster)
}

func referenceKeys(refs []*apiEntities.ReferenceItem) []string {
	keys := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref != nil && ref.Key != "" {
			keys = append(keys, ref.Key)
		}
	}
	return keys
}

// fetchAll loads every key concurrently and keeps the input order. Records
// that fail to load or convert are logged and dropped; only cancellation
// fails the whole call.
func fetchAll[T any](ctx context.Context, keys []string, kind string, fetch func(context.Context, string) (*T, error)) ([]*T, error) {
	results := make([]*T, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, key := range keys {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			record, err := fetch(gctx, key)
			if err != nil {
				log.Printf("[DND5E] Skipping %s %s: %v", kind, key, err)
				return nil
			}
			results[i] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]*T, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out, nil
}
