package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

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

var simulateFlags struct {
	hero       string
	monster    string
	encounters int
	rounds     int
	workers    int
}

// simulation aggregates encounter results
type simulation struct {
	mu          sync.Mutex
	Hero        string `json:"hero"`
	Monster     string `json:"monster"`
	Encounters  int    `json:"encounters"`
	HeroWins    int    `json:"hero_wins"`
	MonsterWins int    `json:"monster_wins"`
	Draws       int    `json:"draws"`
	Rounds      int    `json:"rounds"`
	HeroDamage  int    `json:"hero_damage"`
}

type encounterResult struct {
	winner string // "hero", "monster" or ""
	rounds int
	damage int
}

func (s *simulation) add(r *encounterResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Encounters++
	s.Rounds += r.rounds
	s.HeroDamage += r.damage
	switch r.winner {
	case "hero":
		s.HeroWins++
	case "monster":
		s.MonsterWins++
	default:
		s.Draws++
	}
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run many one-on-one encounters and report how they went",
	Example: `  combat-sim simulate --encounters 500
  combat-sim simulate --hero duelist --monster ogre --workers 8
  DICE_SEED=42 combat-sim simulate --encounters 100`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := simulateFlags
		if f.encounters < 1 || f.rounds < 1 || f.workers < 1 {
			return errors.InvalidArgument("--encounters, --rounds and --workers must be positive")
		}
		for _, key := range []string{f.hero, f.monster} {
			if _, ok := roster[key]; !ok {
				return errors.NotFoundf("no roster entry for %q", key)
			}
		}

		result, err := sim.simulate(cmd.Context(), f.hero, f.monster, f.encounters, f.rounds, f.workers)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}
		fmt.Fprintf(w, "%d encounters of %s vs %s\n", result.Encounters, result.Hero, result.Monster)
		fmt.Fprintf(w, "  %s wins: %d (%.1f%%)\n", result.Hero, result.HeroWins, percent(result.HeroWins, result.Encounters))
		fmt.Fprintf(w, "  %s wins: %d (%.1f%%)\n", result.Monster, result.MonsterWins, percent(result.MonsterWins, result.Encounters))
		fmt.Fprintf(w, "  draws: %d\n", result.Draws)
		fmt.Fprintf(w, "  average rounds: %.1f\n", float64(result.Rounds)/float64(result.Encounters))
		fmt.Fprintf(w, "  average %s damage: %.1f\n", result.Hero, float64(result.HeroDamage)/float64(result.Encounters))
		return nil
	},
}

func init() {
	simulateCmd.Flags().StringVar(&simulateFlags.hero, "hero", "fighter", "roster entry that attacks first")
	simulateCmd.Flags().StringVar(&simulateFlags.monster, "monster", "goblin", "roster entry it fights")
	simulateCmd.Flags().IntVar(&simulateFlags.encounters, "encounters", 100, "number of encounters")
	simulateCmd.Flags().IntVar(&simulateFlags.rounds, "rounds", 20, "rounds before an encounter is a draw")
	simulateCmd.Flags().IntVar(&simulateFlags.workers, "workers", 4, "encounters resolved in parallel")
}

func percent(n, total int) float64 {
	return 100 * float64(n) / float64(total)
}

// simulate runs the encounters on a worker pool against in-memory storage.
// With a dice seed each encounter gets its own seeded roller, so results do
// not depend on scheduling.
func (a *app) simulate(ctx context.Context, hero, monster string, encounters, rounds, workers int) (*simulation, error) {
	result := &simulation{Hero: hero, Monster: monster}

	store := participants.NewInMemory()
	commits, err := applier.NewService(&applier.ServiceConfig{
		Ledger:       ledger.NewInMemory(&ledger.InMemoryConfig{TTL: a.cfg.Redis.LedgerTTL}),
		Participants: store,
	})
	if err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 1; i <= encounters; i++ {
		g.Go(func() error {
			enc, err := a.forEncounter(i, store, commits)
			if err != nil {
				return err
			}
			r, err := enc.encounter(ctx, fmt.Sprintf("%s-%d", hero, i), fmt.Sprintf("%s-%d", monster, i), rounds)
			if err != nil {
				return errors.Wrapf(err, "encounter %d failed", i)
			}
			result.add(r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.logger.Info("Simulation complete", "encounters", result.Encounters, "hero_wins", result.HeroWins)
	return result, nil
}

// forEncounter copies a onto the given storage with its own engine
func (a *app) forEncounter(n int, store participants.Repository, commits applier.Service) (*app, error) {
	roller := a.roller
	if a.cfg.Dice.Seed != 0 {
		roller = dice.NewSeededRoller(a.cfg.Dice.Seed + int64(n))
	}
	eng, err := engine.NewService(&engine.ServiceConfig{
		Roller:      roller,
		Publisher:   a.publisher,
		IDGenerator: uuid.NewSequentialGenerator(fmt.Sprintf("encounter-%d", n)),
		Catalog:     a.catalog,
	})
	if err != nil {
		return nil, err
	}

	enc := *a
	enc.roller = roller
	enc.engine = eng
	enc.participants = store
	enc.applier = commits
	enc.api = nil
	enc.redis = nil
	return &enc, nil
}

// encounter alternates turns until one side is defeated
func (a *app) encounter(ctx context.Context, heroID, monsterID string, rounds int) (*encounterResult, error) {
	hero, err := a.participant(ctx, heroID)
	if err != nil {
		return nil, err
	}

	result := &encounterResult{}
	for round := 1; round <= rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.rounds = round

		out, err := a.run(ctx, &action.Request{Type: action.TypeAttack, ActorID: heroID, TargetID: monsterID}, true)
		if err != nil {
			return nil, err
		}
		result.damage += out.DamageDealt
		if down(out.Target) {
			result.winner = "hero"
			return result, nil
		}

		if hero.OffHand != nil && hero.OffHand.IsWeapon() {
			out, err = a.run(ctx, &action.Request{Type: action.TypeOffHandAttack, ActorID: heroID, TargetID: monsterID}, false)
			if err != nil {
				return nil, err
			}
			result.damage += out.DamageDealt
			if down(out.Target) {
				result.winner = "hero"
				return result, nil
			}
		}

		out, err = a.run(ctx, &action.Request{Type: action.TypeAttack, ActorID: monsterID, TargetID: heroID}, true)
		if err != nil {
			return nil, err
		}
		if down(out.Target) {
			result.winner = "monster"
			return result, nil
		}
	}
	return result, nil
}

// down is true once a participant can no longer fight
func down(p *participant.Participant) bool {
	return p.IsDefeated() || p.HP.IsDown()
}
