// Package spellcasting spends spell slots and tracks concentration.
package spellcasting

import (
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/dice"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/action"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/spells"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// SpellSaveDCBase is the 8 in 8 + proficiency + modifier
const SpellSaveDCBase = 8

// Config holds the dependencies of a Manager
type Config struct {
	Roller dice.Roller
}

// Manager validates casts and rolls concentration saves
type Manager struct {
	roller dice.Roller
}

// NewManager creates a manager
func NewManager(cfg *Config) (*Manager, error) {
	if cfg == nil || cfg.Roller == nil {
		return nil, errors.InvalidArgument("dice roller is required")
	}
	return &Manager{roller: cfg.Roller}, nil
}

// CastOptions are the caller's choices for one cast
type CastOptions struct {
	ActionID string
	// UsePact spends a pact magic slot instead of a regular one
	UsePact bool
}

// CastResult is the caster after the cast
type CastResult struct {
	Spell       *spells.Spell            `json:"spell"`
	SlotLevel   int                      `json:"slot_level"` // 0 for cantrips
	Participant *participant.Participant `json:"participant"`
	Economy     shared.ActionEconomy     `json:"economy"`
	Delta       *action.Delta            `json:"delta"`
}

// CastSpell spends the slot and the part of the turn a spell needs. The
// economy passed in is the turn as the orchestrator tracks it and replaces
// whatever p carries. A cantrip never spends a slot; slotLevel 0 with
// UsePact means "at the pact slot level".
func (m *Manager) CastSpell(economy shared.ActionEconomy, p *participant.Participant, spell *spells.Spell, slotLevel int, opts CastOptions) (*CastResult, error) {
	if p == nil {
		return nil, errors.InvalidAction("caster is required")
	}
	if spell == nil {
		return nil, errors.InvalidAction("unknown spell").WithMeta("participant_id", p.ID)
	}
	if err := spell.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidAction, "cannot cast invalid spell").
			WithMeta("participant_id", p.ID).
			WithMeta("spell", spell.Key)
	}

	fail := func(format string, args ...any) error {
		return errors.InvalidActionf(format, args...).
			WithMeta("participant_id", p.ID).
			WithMeta("spell", spell.Key)
	}

	if p.IsDefeated() {
		return nil, fail("%s cannot cast while defeated", p.Name)
	}
	if p.SpellcastingAbility() == shared.AttributeNone {
		return nil, fail("%s cannot cast spells", p.Name)
	}

	delta := action.NewDelta(opts.ActionID, p)

	switch spell.CastingTime {
	case spells.CastingBonusAction:
		if economy.BonusActionUsed {
			return nil, fail("%s has already used their bonus action", p.Name)
		}
		delta.BonusActionConsumed = true
	case spells.CastingReaction:
		if economy.ReactionUsed {
			return nil, fail("%s has already used their reaction", p.Name)
		}
		delta.ReactionConsumed = true
	default:
		if economy.ActionUsed {
			return nil, fail("%s has already used their action", p.Name)
		}
		delta.ActionConsumed = true
	}

	if spell.IsCantrip() {
		slotLevel = 0
	} else {
		slot, err := chooseSlot(p, spell, slotLevel, opts.UsePact)
		if err != nil {
			return nil, err
		}
		delta.SlotConsumed = slot
		slotLevel = slot.Level
	}

	if spell.Concentration {
		if p.IsConcentrating() {
			return nil, errors.RuleViolationf("%s is already concentrating on %s", p.Name, p.Concentration).
				WithMeta("participant_id", p.ID).
				WithMeta("spell", spell.Key)
		}
		delta.ConcentrationSet = spell.Key
	}

	caster := p.Clone()
	caster.Economy = economy
	after, _, err := action.Apply(caster, delta)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to cast %s", spell.Name)
	}

	return &CastResult{
		Spell:       spell.Clone(),
		SlotLevel:   slotLevel,
		Participant: after,
		Economy:     after.Economy,
		Delta:       delta,
	}, nil
}

func chooseSlot(p *participant.Participant, spell *spells.Spell, slotLevel int, usePact bool) (*action.SlotConsumption, error) {
	fail := func(format string, args ...any) error {
		return errors.InvalidActionf(format, args...).
			WithMeta("participant_id", p.ID).
			WithMeta("spell", spell.Key).
			WithMeta("slot_level", slotLevel)
	}

	if usePact {
		pact := p.PactSlots
		if pact.Max == 0 {
			return nil, fail("%s has no pact magic", p.Name)
		}
		if slotLevel == 0 {
			slotLevel = pact.SlotLevel
		}
		if slotLevel != pact.SlotLevel {
			return nil, fail("pact slots are cast at level %d, not %d", pact.SlotLevel, slotLevel)
		}
		if slotLevel < spell.Level {
			return nil, fail("%s needs at least a level %d slot", spell.Name, spell.Level)
		}
		if !pact.Available() {
			return nil, fail("%s has no pact slots remaining", p.Name)
		}
		return &action.SlotConsumption{Level: slotLevel, Pact: true}, nil
	}

	if slotLevel == 0 {
		slotLevel = spell.Level
	}
	if slotLevel < spell.Level {
		return nil, fail("%s needs at least a level %d slot, got %d", spell.Name, spell.Level, slotLevel)
	}
	if slotLevel > shared.MaxSpellLevel {
		return nil, fail("slot level %d out of range 1-%d", slotLevel, shared.MaxSpellLevel)
	}
	if !p.SpellSlots.Available(slotLevel) {
		return nil, fail("%s has no level %d slots remaining", p.Name, slotLevel)
	}
	return &action.SlotConsumption{Level: slotLevel}, nil
}

// SpellSaveDC is 8 + proficiency + the spellcasting modifier
func SpellSaveDC(p *participant.Participant) int {
	return SpellSaveDCBase + p.ProficiencyBonus() + p.AbilityModifier(p.SpellcastingAbility())
}

// SpellAttackBonus is proficiency + the spellcasting modifier
func SpellAttackBonus(p *participant.Participant) int {
	return p.ProficiencyBonus() + p.AbilityModifier(p.SpellcastingAbility())
}
