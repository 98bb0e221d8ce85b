package attack

import (
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/dice"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/action"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/damage"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/equipment"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	rulebook "github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/rulebook/dnd5e"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/spells"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// DuelingBonus is the damage added by the dueling style
const DuelingBonus = 2

// DamageRoll is the damage half of an attack
type DamageRoll struct {
	Dice *dice.RollResult `json:"dice"`
	// Rerolls holds the replacement faces from great weapon fighting
	Rerolls  []int       `json:"rerolls,omitempty"`
	Bonus    int         `json:"bonus"`
	Raw      int         `json:"raw"`
	Type     damage.Type `json:"type"`
	Critical bool        `json:"critical,omitempty"`
	// Outcome is Raw after defenses and hit points
	Outcome action.DamageOutcome `json:"outcome"`
}

// FullAttackResult is a resolved attack with its damage applied to a copy
// of the target
type FullAttackResult struct {
	Resolution  *Resolution              `json:"resolution"`
	Damage      *DamageRoll              `json:"damage,omitempty"` // nil on a miss
	TargetAfter *participant.Participant `json:"target_after"`
	// TargetReducedHP is the target's current hit points after the attack
	TargetReducedHP  int           `json:"target_reduced_hp"`
	TotalDamageDealt int           `json:"total_damage_dealt"`
	Delta            *action.Delta `json:"delta"`
}

// Hand says which hand an attack comes from
type Hand int

const (
	MainHand Hand = iota
	OffHand
)

// DamageSpec is everything needed to roll damage for one weapon hit
type DamageSpec struct {
	Damage      *damage.Damage
	Bonus       int
	GreatWeapon bool
}

// WeaponDamage works out the dice and flat bonus for a weapon hit. The
// ability modifier is added in the main hand. The off hand leaves it out,
// positive or negative, unless the attacker has two weapon fighting.
func WeaponDamage(w *equipment.Weapon, attacker *participant.Participant, hand Hand, opts Options) DamageSpec {
	dmg := w.Damage
	twoHanded := w.IsTwoHanded()
	if opts.TwoHanded && w.TwoHandedDamage != nil {
		dmg = w.TwoHandedDamage
		twoHanded = true
	}

	mod := attacker.AbilityModifier(WeaponAbility(w, attacker))
	spec := DamageSpec{Damage: dmg, Bonus: w.DamageBonus}

	switch hand {
	case OffHand:
		if attacker.HasFightingStyle(rulebook.StyleTwoWeaponFighting) {
			spec.Bonus += mod
		}
	default:
		spec.Bonus += mod
		if w.IsMelee() && !twoHanded && !holdsOffHandWeapon(attacker) &&
			attacker.HasFightingStyle(rulebook.StyleDueling) {
			spec.Bonus += DuelingBonus
		}
	}

	if w.IsMelee() && (twoHanded || w.HasProperty(equipment.PropertyVersatile)) &&
		attacker.HasFightingStyle(rulebook.StyleGreatWeapon) {
		spec.GreatWeapon = true
	}

	return spec
}

// RollDamage rolls the dice, doubling the count on a critical. Great weapon
// fighting rerolls each 1 or 2 once and keeps the new face.
func (r *Resolver) RollDamage(spec DamageSpec, critical bool) (*DamageRoll, error) {
	if err := spec.Damage.Validate(); err != nil {
		return nil, err
	}

	result, err := spec.Damage.Roll(r.roller, critical)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll damage")
	}

	roll := &DamageRoll{
		Dice:     result,
		Bonus:    spec.Bonus,
		Type:     spec.Damage.DamageType,
		Critical: critical,
	}

	total := result.RawTotal
	if spec.GreatWeapon {
		for _, face := range result.Rolls {
			if face > 2 {
				continue
			}
			reroll, err := r.roller.Roll(1, spec.Damage.DiceSize, 0)
			if err != nil {
				return nil, errors.Wrap(err, "failed to reroll damage")
			}
			roll.Rerolls = append(roll.Rerolls, reroll.RawTotal)
			total += reroll.RawTotal - face
		}
	}

	roll.Raw = max(0, total+spec.Damage.Bonus+spec.Bonus)
	return roll, nil
}

// PerformAttack resolves a main hand weapon attack and applies the damage to
// a copy of the target
func (r *Resolver) PerformAttack(w *equipment.Weapon, attacker, target *participant.Participant, opts Options) (*FullAttackResult, error) {
	return r.performWeapon(w, attacker, target, MainHand, opts)
}

// PerformOffHandAttack is PerformAttack with off hand damage rules
func (r *Resolver) PerformOffHandAttack(w *equipment.Weapon, attacker, target *participant.Participant, opts Options) (*FullAttackResult, error) {
	return r.performWeapon(w, attacker, target, OffHand, opts)
}

func (r *Resolver) performWeapon(w *equipment.Weapon, attacker, target *participant.Participant, hand Hand, opts Options) (*FullAttackResult, error) {
	res, err := r.ResolveAttack(w, attacker, target, opts)
	if err != nil {
		return nil, err
	}

	var roll *DamageRoll
	if res.Hit {
		roll, err = r.RollDamage(WeaponDamage(w, attacker, hand, opts), res.Critical)
		if err != nil {
			return nil, err
		}
	}
	return finish(res, roll, target, opts.ActionID)
}

// PerformSpellAttack resolves an attack spell cast at slotLevel. Spell damage
// never adds the ability modifier.
func (r *Resolver) PerformSpellAttack(spell *spells.Spell, slotLevel int, attacker, target *participant.Participant, opts Options) (*FullAttackResult, error) {
	res, err := r.ResolveSpellAttack(spell, attacker, target, opts)
	if err != nil {
		return nil, err
	}

	var roll *DamageRoll
	if dmg := spell.DamageAt(slotLevel, attacker.Level()); res.Hit && dmg != nil {
		roll, err = r.RollDamage(DamageSpec{Damage: dmg}, res.Critical)
		if err != nil {
			return nil, err
		}
	}
	return finish(res, roll, target, opts.ActionID)
}

func finish(res *Resolution, roll *DamageRoll, target *participant.Participant, actionID string) (*FullAttackResult, error) {
	delta := action.NewDelta(actionID, target)
	result := &FullAttackResult{Resolution: res, Damage: roll, Delta: delta}

	if roll != nil {
		roll.Outcome = delta.ApplyDamage(target, roll.Raw, roll.Type)
		result.TotalDamageDealt = roll.Outcome.Dealt
	}

	after, _, err := action.Apply(target, delta)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to apply attack on %s", target.ID)
	}
	result.TargetAfter = after
	result.TargetReducedHP = after.HP.Current

	return result, nil
}

func holdsOffHandWeapon(p *participant.Participant) bool {
	return p.OffHand != nil && p.OffHand.IsWeapon()
}
