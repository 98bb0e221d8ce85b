package spellcasting

import (
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/dice"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/action"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/conditions"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/spells"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/checks"
)

// SaveResult is one target's side of a save spell
type SaveResult struct {
	SpellKey    string                   `json:"spell_key"`
	DC          int                      `json:"dc"`
	Save        *checks.Result           `json:"save"`
	DamageRoll  *dice.RollResult         `json:"damage_roll,omitempty"`
	Damage      *action.DamageOutcome    `json:"damage,omitempty"`
	Conditions  []conditions.Condition   `json:"conditions,omitempty"`
	TargetAfter *participant.Participant `json:"target_after"`
	Delta       *action.Delta            `json:"delta"`
}

// ResolveSpellSave makes target save against caster's spell cast at
// slotLevel. Damage is rolled once and reduced by the spell's success
// policy; conditions land only on a failed save.
func (m *Manager) ResolveSpellSave(spell *spells.Spell, slotLevel int, caster, target *participant.Participant, actionID string, opts checks.Options) (*SaveResult, error) {
	if spell == nil || spell.Save == nil {
		return nil, errors.InvalidAction("spell does not force a saving throw")
	}
	if caster == nil || target == nil {
		return nil, errors.InvalidAction("caster and target are required").WithMeta("spell", spell.Key)
	}
	if target.Dead {
		return nil, errors.InvalidActionf("%s is dead", target.Name).
			WithMeta("participant_id", target.ID).
			WithMeta("spell", spell.Key)
	}

	dc := SpellSaveDC(caster)
	save, err := checks.Save(m.roller, target, spell.Save.Ability, dc, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s save", spell.Name)
	}

	result := &SaveResult{
		SpellKey: spell.Key,
		DC:       dc,
		Save:     save,
		Delta:    action.NewDelta(actionID, target),
	}

	if dmg := spell.DamageAt(slotLevel, caster.Level()); dmg != nil {
		roll, err := dmg.Roll(m.roller, false)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s damage", spell.Name)
		}
		result.DamageRoll = roll

		amount := max(0, roll.Total)
		if save.Success {
			amount = spell.Save.OnSuccess.Apply(amount)
		}
		if amount > 0 {
			outcome := result.Delta.ApplyDamage(target, amount, dmg.DamageType)
			result.Damage = &outcome
		}
	}

	if !save.Success {
		for _, t := range spell.OnFailedSave {
			c := conditions.Condition{Type: t, Source: spell.Key}
			result.Conditions = append(result.Conditions, c)
			result.Delta.ConditionsAdded = append(result.Delta.ConditionsAdded, c)
		}
	}

	after, _, err := action.Apply(target, result.Delta)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to apply %s to %s", spell.Name, target.ID)
	}
	result.TargetAfter = after

	return result, nil
}

// ResolveSpellDamage applies the damage of a spell that neither attacks nor
// allows a save, such as magic missile. The result's Save is nil.
func (m *Manager) ResolveSpellDamage(spell *spells.Spell, slotLevel int, caster, target *participant.Participant, actionID string) (*SaveResult, error) {
	if spell == nil || spell.Damage == nil || spell.Save != nil || spell.IsAttack() {
		return nil, errors.InvalidAction("spell does not deal automatic damage")
	}
	if caster == nil || target == nil {
		return nil, errors.InvalidAction("caster and target are required").WithMeta("spell", spell.Key)
	}
	if target.Dead {
		return nil, errors.InvalidActionf("%s is dead", target.Name).
			WithMeta("participant_id", target.ID).
			WithMeta("spell", spell.Key)
	}

	dmg := spell.DamageAt(slotLevel, caster.Level())
	roll, err := dmg.Roll(m.roller, false)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s damage", spell.Name)
	}

	result := &SaveResult{
		SpellKey:   spell.Key,
		DamageRoll: roll,
		Delta:      action.NewDelta(actionID, target),
	}
	if amount := max(0, roll.Total); amount > 0 {
		outcome := result.Delta.ApplyDamage(target, amount, dmg.DamageType)
		result.Damage = &outcome
	}

	after, _, err := action.Apply(target, result.Delta)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to apply %s to %s", spell.Name, target.ID)
	}
	result.TargetAfter = after
	return result, nil
}
