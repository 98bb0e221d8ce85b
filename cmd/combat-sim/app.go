package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/actionlog"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/clients/dnd5e"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/config"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/dice"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/action"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/repositories/ledger"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/repositories/participants"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/services/applier"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/services/engine"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/uuid"
)

type appOptions struct {
	EnvFile  string
	FetchAPI bool
	// Roller replaces the configured roller. Tests use it to script rolls.
	Roller dice.Roller
	// Config skips loading from the environment
	Config *config.Config
}

// app wires the engine to storage for one CLI invocation
type app struct {
	cfg          *config.Config
	logger       *slog.Logger
	roller       dice.Roller
	engine       engine.Service
	catalog      *engine.StaticCatalog
	publisher    *actionlog.Publisher
	participants participants.Repository
	applier      applier.Service
	api          dnd5e.Client
	redis        redis.UniversalClient
}

func newApp(ctx context.Context, opts *appOptions) (*app, error) {
	if opts == nil {
		opts = &appOptions{}
	}

	cfg := opts.Config
	if cfg == nil {
		var files []string
		if opts.EnvFile != "" {
			files = append(files, opts.EnvFile)
		}
		loaded, err := config.Load(files...)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	logger, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	a := &app{cfg: cfg, logger: logger, roller: opts.Roller}
	if a.roller == nil {
		a.roller = newRoller(cfg.Dice.Seed)
	}

	a.catalog, err = engine.DefaultCatalog()
	if err != nil {
		return nil, err
	}

	a.publisher = actionlog.NewPublisher(nil)
	a.publisher.Subscribe(0, func(ctx context.Context, entry *actionlog.Entry) error {
		logger.Debug("action resolved", "action_id", entry.ActionID, "type", entry.Type, "summary", entry.Summary)
		return nil
	})

	a.engine, err = engine.NewService(&engine.ServiceConfig{
		Roller:      a.roller,
		Publisher:   a.publisher,
		IDGenerator: uuid.NewGoogleUUIDGenerator(),
		Catalog:     a.catalog,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	ledgerRepo, participantRepo, err := a.openStorage(ctx)
	if err != nil {
		return nil, err
	}
	a.participants = participantRepo

	a.applier, err = applier.NewService(&applier.ServiceConfig{
		Ledger:       ledgerRepo,
		Participants: participantRepo,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create applier")
	}

	if opts.FetchAPI {
		a.api, err = dnd5e.New(&dnd5e.Config{
			BaseURL:  cfg.DND5E.BaseURL,
			CacheTTL: cfg.DND5E.CacheTTL,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create D&D 5e client")
		}
		logger.Info("Fetching missing catalog entries from the D&D 5e API", "url", cfg.DND5E.BaseURL)
	}

	return a, nil
}

func newRoller(seed int64) dice.Roller {
	if seed == 0 {
		return dice.NewRandomRoller()
	}
	slog.Info("Using seeded dice", "seed", seed)
	return dice.NewSeededRoller(seed)
}

func newLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// openStorage connects to Redis when configured and falls back to memory
// when it is unreachable
func (a *app) openStorage(ctx context.Context) (ledger.Repository, participants.Repository, error) {
	if a.cfg.UseRedis() {
		a.logger.Info("Connecting to Redis", "addr", a.cfg.Redis.Addr)
		client := redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			a.logger.Warn("Failed to connect to Redis, falling back to in-memory storage", "error", err)
			_ = client.Close()
		} else {
			a.redis = client
			ledgerRepo, err := ledger.NewRedisRepository(&ledger.RedisConfig{
				Client: client,
				TTL:    a.cfg.Redis.LedgerTTL,
			})
			if err != nil {
				return nil, nil, err
			}
			participantRepo, err := participants.NewRedis(client)
			if err != nil {
				return nil, nil, err
			}
			return ledgerRepo, participantRepo, nil
		}
	}

	a.logger.Debug("Using in-memory storage")
	return ledger.NewInMemory(&ledger.InMemoryConfig{TTL: a.cfg.Redis.LedgerTTL}), participants.NewInMemory(), nil
}

// Close releases the Redis connection
func (a *app) Close() error {
	if a.redis == nil {
		return nil
	}
	if err := a.redis.Close(); err != nil {
		return errors.Wrap(err, "failed to close redis")
	}
	return nil
}

// ensureCatalog fetches the named weapons and spells when API loading is on.
// Keys already in the catalog are never fetched.
func (a *app) ensureCatalog(ctx context.Context, weapons, spellKeys []string) error {
	if a.api == nil {
		return nil
	}
	return dnd5e.LoadCatalog(ctx, a.api, a.catalog, &dnd5e.LoadRequest{Weapons: weapons, Spells: spellKeys})
}

// participant loads a stored participant, building it from the roster the
// first time it is seen
func (a *app) participant(ctx context.Context, id string) (*participant.Participant, error) {
	p, err := a.participants.Get(ctx, id)
	if err == nil {
		return p, nil
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	p, err = a.build(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := a.participants.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// build makes a roster member, or a monster from the API when fetching
func (a *app) build(ctx context.Context, id string) (*participant.Participant, error) {
	p, err := buildRoster(id)
	if err == nil || !errors.IsNotFound(err) || a.api == nil {
		return p, err
	}

	tpl, apiErr := a.api.GetMonster(ctx, monsterKey(id))
	if apiErr != nil {
		return nil, errors.Wrapf(apiErr, "participant %s is not in the roster", id)
	}
	return participant.FromTemplate(tpl, id)
}

// startTurn refreshes a participant's action economy and stores it
func (a *app) startTurn(ctx context.Context, p *participant.Participant) (*participant.Participant, error) {
	next := p.Clone()
	next.Economy = next.Economy.StartTurn()
	if err := a.participants.Save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// run resolves one request on the actor's turn and commits the outcome
func (a *app) run(ctx context.Context, req *action.Request, newTurn bool) (*engine.Outcome, error) {
	actor, err := a.participant(ctx, req.ActorID)
	if err != nil {
		return nil, err
	}
	if newTurn {
		actor, err = a.startTurn(ctx, actor)
		if err != nil {
			return nil, err
		}
	}

	var target *participant.Participant
	if req.TargetID != "" {
		target, err = a.participant(ctx, req.TargetID)
		if err != nil {
			return nil, err
		}
	}

	out, err := a.engine.Resolve(ctx, req, actor, target, a.catalog)
	if err != nil {
		return nil, err
	}
	if _, err := a.applier.CommitOutcome(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *app) printOutcome(w io.Writer, out *engine.Outcome) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, entry := range out.Entries {
		fmt.Fprintln(w, entry.Summary)
	}
	printStatus(w, out.Actor)
	if out.Target != nil {
		printStatus(w, out.Target)
	}
	return nil
}

func printStatus(w io.Writer, p *participant.Participant) {
	status := fmt.Sprintf("  %s: %d/%d HP", p.Name, p.HP.Current, p.HP.Max)
	for _, t := range p.Conditions.Sorted().Types() {
		status += ", " + string(t)
	}
	if p.Concentration != "" {
		status += ", concentrating on " + p.Concentration
	}
	if p.IsDefeated() {
		status += ", defeated"
	}
	fmt.Fprintln(w, status)
}
