package hazards

import (
	"log"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/dice"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/action"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/conditions"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/checks"
)

// Config holds the dependencies of a Resolver
type Config struct {
	Roller dice.Roller
}

// Resolver rolls hazard detection and saves
type Resolver struct {
	roller dice.Roller
}

// NewResolver creates a resolver
func NewResolver(cfg *Config) (*Resolver, error) {
	if cfg == nil || cfg.Roller == nil {
		return nil, errors.InvalidArgument("dice roller is required")
	}
	return &Resolver{roller: cfg.Roller}, nil
}

// Detection is the outcome of looking for a hazard
type Detection struct {
	HazardKey string         `json:"hazard_key"`
	Detected  bool           `json:"detected"`
	Check     *checks.Result `json:"check,omitempty"` // nil for hazards in plain sight
}

// Detect rolls a skill check against a hidden hazard. Hazards in plain
// sight are always found.
func (r *Resolver) Detect(p *participant.Participant, def *Definition, skill shared.Skill, opts checks.Options) (*Detection, error) {
	if p == nil {
		return nil, errors.InvalidAction("participant is required")
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}

	result := &Detection{HazardKey: def.Key}
	if !def.Hidden {
		result.Detected = true
		return result, nil
	}
	if !def.CanDetectWith(skill) {
		return nil, errors.InvalidActionf("%s cannot be found with %q", def.Name, skill).
			WithMeta("participant_id", p.ID).
			WithMeta("hazard", def.Key)
	}

	check, err := checks.Skill(r.roller, p, skill, def.DetectionDC, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search for %s", def.Key)
	}
	result.Check = check
	result.Detected = check.Success
	return result, nil
}

// InteractOptions are the caller's choices when a hazard is sprung
type InteractOptions struct {
	ActionID string
	Override dice.Override
}

// Interaction is what a sprung hazard did to a participant
type Interaction struct {
	HazardKey         string                   `json:"hazard_key"`
	Saved             bool                     `json:"saved"`
	SaveRoll          *checks.Result           `json:"save_roll,omitempty"`
	DamageRolled      *dice.RollResult         `json:"damage_rolled,omitempty"`
	Damage            *action.DamageOutcome    `json:"damage,omitempty"`
	DamageDealt       int                      `json:"damage_dealt"`
	ConditionsApplied []conditions.Condition   `json:"conditions_applied,omitempty"`
	Exhaustion        int                      `json:"exhaustion,omitempty"`
	Fatal             bool                     `json:"fatal,omitempty"`
	Participant       *participant.Participant `json:"participant"`
	Delta             *action.Delta            `json:"delta"`
}

// Interact springs a hazard on p. Without a save every effect lands. With
// one, success reduces damage per the hazard's policy and skips conditions
// and exhaustion.
func (r *Resolver) Interact(p *participant.Participant, def *Definition, opts InteractOptions) (*Interaction, error) {
	if p == nil {
		return nil, errors.InvalidAction("participant is required")
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	if p.Dead {
		return nil, errors.InvalidActionf("%s is dead", p.Name).
			WithMeta("participant_id", p.ID).
			WithMeta("hazard", def.Key)
	}

	result := &Interaction{
		HazardKey: def.Key,
		Delta:     action.NewDelta(opts.ActionID, p),
	}

	if def.Save != nil {
		save, err := checks.Save(r.roller, p, def.Save.Ability, def.Save.DC, checks.Options{Override: opts.Override})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to save against %s", def.Key)
		}
		result.SaveRoll = save
		result.Saved = save.Success
	}

	if def.Damage != nil {
		roll, err := def.Damage.Roll(r.roller, false)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s damage", def.Key)
		}
		result.DamageRolled = roll

		amount := max(0, roll.Total)
		if result.Saved {
			amount = def.OnSuccess.Apply(amount)
		}
		if amount > 0 {
			outcome := result.Delta.ApplyDamage(p, amount, def.Damage.DamageType)
			result.Damage = &outcome
			result.DamageDealt = outcome.Dealt
		}
	}

	if !result.Saved {
		for _, t := range def.Conditions {
			c := conditions.Condition{Type: t, Source: def.Key}
			result.ConditionsApplied = append(result.ConditionsApplied, c)
			result.Delta.ConditionsAdded = append(result.Delta.ConditionsAdded, c)
		}
		result.Exhaustion = def.ExhaustionDelta
		result.Delta.ExhaustionDelta = def.ExhaustionDelta
	}

	after, _, err := action.Apply(p, result.Delta)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to apply %s to %s", def.Key, p.ID)
	}
	result.Participant = after

	if after.Conditions.IsFatal() {
		result.Fatal = true
		result.Delta.Died = true
		log.Printf("[HAZARD] %s succumbs to exhaustion from %s", p.Name, def.Name)
	}

	return result, nil
}
