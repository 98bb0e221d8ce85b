package attack

import (
	"log"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/dice"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/conditions"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/equipment"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	rulebook "github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/rulebook/dnd5e"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/spells"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

const (
	// MeleeReach is the reach of a melee weapon without the reach property
	MeleeReach = 5
	// ExtendedReach is the reach of a weapon with the reach property
	ExtendedReach = 10
	// ArcheryBonus is added to ranged attack rolls by the archery style
	ArcheryBonus = 2
)

// Config holds the dependencies of a Resolver
type Config struct {
	Roller dice.Roller
}

// Resolver rolls attacks and their damage
type Resolver struct {
	roller dice.Roller
}

// NewResolver creates a resolver
func NewResolver(cfg *Config) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if cfg.Roller == nil {
		return nil, errors.InvalidArgument("dice roller is required")
	}
	return &Resolver{roller: cfg.Roller}, nil
}

// Options are per-attack choices the caller makes
type Options struct {
	// ActionID stamps the deltas; empty means the caller does not need
	// idempotent apply
	ActionID string
	Override dice.Override
	// Distance to the target in feet. 0 leaves it unspecified: the target
	// counts as within reach, but a ranged attack is not penalized for an
	// adjacent target unless the distance is given.
	Distance int
	// TwoHanded wields a versatile weapon in both hands
	TwoHanded bool
}

func (o Options) withinFiveFeet() bool {
	return o.Distance <= MeleeReach
}

// Resolution is the to-hit half of an attack
type Resolution struct {
	AttackerID  string           `json:"attacker_id"`
	TargetID    string           `json:"target_id"`
	SourceKey   string           `json:"source_key"`
	SourceName  string           `json:"source_name"`
	Melee       bool             `json:"melee"`
	Ability     shared.Attribute `json:"ability"`
	AttackBonus int              `json:"attack_bonus"`
	Mode        dice.Mode        `json:"mode"`
	Roll        *dice.RollResult `json:"roll"`
	Natural     int              `json:"natural"`
	Total       int              `json:"total"`
	TargetAC    int              `json:"target_ac"`
	Hit         bool             `json:"hit"`
	Critical    bool             `json:"critical"`
	Fumble      bool             `json:"fumble"`
	// AutoCritical is set when the target's condition turned a hit into a crit
	AutoCritical bool `json:"auto_critical,omitempty"`
}

// WeaponAbility picks the ability for a weapon attack: the better of STR and
// DEX for finesse weapons and for monk weapons in a monk's hands, DEX for
// ranged weapons, STR otherwise
func WeaponAbility(w *equipment.Weapon, attacker *participant.Participant) shared.Attribute {
	best := func() shared.Attribute {
		if attacker.AbilityModifier(shared.AttributeDexterity) > attacker.AbilityModifier(shared.AttributeStrength) {
			return shared.AttributeDexterity
		}
		return shared.AttributeStrength
	}

	switch {
	case w.IsFinesse():
		return best()
	case w.IsMonkWeapon() && hasClass(attacker, rulebook.ClassMonk):
		return best()
	case w.IsRanged():
		return shared.AttributeDexterity
	default:
		return shared.AttributeStrength
	}
}

// WeaponAttackBonus is proficiency plus the weapon's ability modifier, the
// item's magic bonus and the archery style for ranged weapons
func WeaponAttackBonus(w *equipment.Weapon, attacker *participant.Participant) int {
	bonus := attacker.ProficiencyBonus() + attacker.AbilityModifier(WeaponAbility(w, attacker)) + w.AttackBonus
	if w.IsRanged() && attacker.HasFightingStyle(rulebook.StyleArchery) {
		bonus += ArcheryBonus
	}
	return bonus
}

// SpellAttackBonus is proficiency plus the spellcasting modifier
func SpellAttackBonus(caster *participant.Participant) int {
	return caster.ProficiencyBonus() + caster.AbilityModifier(caster.SpellcastingAbility())
}

// ResolveAttack rolls to hit with a weapon
func (r *Resolver) ResolveAttack(w *equipment.Weapon, attacker, target *participant.Participant, opts Options) (*Resolution, error) {
	if err := validateParticipants(attacker, target); err != nil {
		return nil, err
	}
	if w == nil {
		return nil, errors.InvalidAction("attack requires a weapon").WithMeta("participant_id", attacker.ID)
	}
	if !w.IsWeapon() {
		return nil, errors.InvalidActionf("%s is not a weapon", w.Name).
			WithMeta("participant_id", attacker.ID).
			WithMeta("weapon", w.Key)
	}
	if w.IsMelee() {
		reach := MeleeReach
		if w.HasProperty(equipment.PropertyReach) {
			reach = ExtendedReach
		}
		if opts.Distance > reach {
			return nil, errors.InvalidActionf("%s is %d ft away, beyond %s reach of %d ft",
				target.Name, opts.Distance, w.Name, reach).
				WithMeta("participant_id", attacker.ID)
		}
	}
	if opts.TwoHanded && attacker.OffHand != nil {
		return nil, errors.InvalidActionf("cannot wield %s in two hands with the off hand full", w.Name).
			WithMeta("participant_id", attacker.ID)
	}

	ability := WeaponAbility(w, attacker)
	res := &Resolution{
		AttackerID:  attacker.ID,
		TargetID:    target.ID,
		SourceKey:   w.Key,
		SourceName:  w.Name,
		Melee:       w.IsMelee(),
		Ability:     ability,
		AttackBonus: WeaponAttackBonus(w, attacker),
	}

	if err := r.roll(res, attacker, target, opts); err != nil {
		return nil, err
	}
	return res, nil
}

// ResolveSpellAttack rolls to hit with an attack spell
func (r *Resolver) ResolveSpellAttack(spell *spells.Spell, attacker, target *participant.Participant, opts Options) (*Resolution, error) {
	if err := validateParticipants(attacker, target); err != nil {
		return nil, err
	}
	if spell == nil {
		return nil, errors.InvalidAction("spell attack requires a spell").WithMeta("participant_id", attacker.ID)
	}
	if !spell.IsAttack() {
		return nil, errors.InvalidActionf("%s is not an attack spell", spell.Name).
			WithMeta("participant_id", attacker.ID).
			WithMeta("spell", spell.Key)
	}
	ability := attacker.SpellcastingAbility()
	if ability == shared.AttributeNone {
		return nil, errors.InvalidActionf("%s cannot cast spells", attacker.Name).
			WithMeta("participant_id", attacker.ID).
			WithMeta("spell", spell.Key)
	}

	res := &Resolution{
		AttackerID:  attacker.ID,
		TargetID:    target.ID,
		SourceKey:   spell.Key,
		SourceName:  spell.Name,
		Melee:       spell.Attack == spells.AttackMelee,
		Ability:     ability,
		AttackBonus: SpellAttackBonus(attacker),
	}

	if err := r.roll(res, attacker, target, opts); err != nil {
		return nil, err
	}
	return res, nil
}

// roll pools every advantage source before cancelling, then applies the
// natural 1 and natural 20 overrides
func (r *Resolver) roll(res *Resolution, attacker, target *participant.Participant, opts Options) error {
	self := conditions.SelfModifiers(attacker.Conditions)
	against := conditions.AgainstTarget(target.Conditions, conditions.AttackContext{
		Melee:          res.Melee,
		WithinFiveFeet: opts.withinFiveFeet(),
	})

	advantage := self.AttackAdvantage || against.Advantage || opts.Override.Advantage
	disadvantage := self.AttackDisadvantage || against.Disadvantage || opts.Override.Disadvantage
	// ranged attacks with the target known to be adjacent
	if !res.Melee && opts.Distance > 0 && opts.withinFiveFeet() {
		disadvantage = true
	}
	res.Mode = dice.ResolveMode(advantage, disadvantage)

	roll, err := dice.RollD20(r.roller, res.AttackBonus, res.Mode)
	if err != nil {
		return errors.Wrapf(err, "failed to roll attack for %s", attacker.ID)
	}

	res.Roll = roll
	res.Natural = roll.Natural
	res.Total = roll.Total
	res.TargetAC = target.ArmorClass

	switch {
	case roll.IsFumble:
		res.Fumble = true
	case roll.IsCrit:
		res.Hit = true
		res.Critical = true
	default:
		res.Hit = roll.Total >= target.ArmorClass
	}

	if res.Hit && !res.Critical && against.AutoCritOnHit {
		res.Critical = true
		res.AutoCritical = true
	}

	if res.Critical {
		log.Printf("[ATTACK] %s scores a critical hit on %s with %s", attacker.Name, target.Name, res.SourceName)
	}
	return nil
}

func validateParticipants(attacker, target *participant.Participant) error {
	if attacker == nil {
		return errors.InvalidAction("attacker is required")
	}
	if target == nil {
		return errors.InvalidAction("target is required").WithMeta("participant_id", attacker.ID)
	}
	if attacker.ID == target.ID {
		return errors.InvalidAction("a participant cannot attack itself").WithMeta("participant_id", attacker.ID)
	}
	if attacker.Dead {
		return errors.InvalidActionf("%s is dead", attacker.Name).WithMeta("participant_id", attacker.ID)
	}
	if conditions.SelfModifiers(attacker.Conditions).Incapacitated {
		return errors.InvalidActionf("%s is incapacitated", attacker.Name).WithMeta("participant_id", attacker.ID)
	}
	return nil
}

func hasClass(p *participant.Participant, key rulebook.ClassKey) bool {
	for _, cl := range p.Classes {
		if cl.Class == key {
			return true
		}
	}
	return false
}
