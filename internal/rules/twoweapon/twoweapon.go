package twoweapon

import (
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/action"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/equipment"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	rulebook "github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/rulebook/dnd5e"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/attack"
)

// Plan is how many attacks a two weapon turn makes
type Plan struct {
	MainHandAttacks int  `json:"main_hand_attacks"`
	OffHand         bool `json:"off_hand"`
}

// Result is a two weapon turn with both participants' deltas
type Result struct {
	Plan             Plan                       `json:"plan"`
	MainHand         []*attack.FullAttackResult `json:"main_hand"`
	OffHand          *attack.FullAttackResult   `json:"off_hand,omitempty"`
	TargetAfter      *participant.Participant   `json:"target_after"`
	TargetDelta      *action.Delta              `json:"target_delta"`
	AttackerDelta    *action.Delta              `json:"attacker_delta"`
	TotalDamageDealt int                        `json:"total_damage_dealt"`
}

// Attacks lists every attack made, main hand first
func (r *Result) Attacks() []*attack.FullAttackResult {
	out := append([]*attack.FullAttackResult(nil), r.MainHand...)
	if r.OffHand != nil {
		out = append(out, r.OffHand)
	}
	return out
}

// CheckEligibility returns InvalidAction naming the first reason p cannot
// fight with two weapons
func CheckEligibility(p *participant.Participant) error {
	if p == nil {
		return errors.InvalidAction("participant is required")
	}

	fail := func(format string, args ...any) error {
		return errors.InvalidActionf(format, args...).WithMeta("participant_id", p.ID)
	}

	switch {
	case p.MainHand == nil:
		return fail("%s has nothing in the main hand", p.Name)
	case p.OffHand == nil:
		return fail("%s has nothing in the off hand", p.Name)
	case p.OffHand.Kind == equipment.KindShield:
		return fail("%s is holding a shield, not a weapon, in the off hand", p.Name)
	case p.OffHand.Kind == equipment.KindFocus:
		return fail("%s is holding a spellcasting focus in the off hand", p.Name)
	case !p.MainHand.IsWeapon() || !p.OffHand.IsWeapon():
		return fail("%s must hold a weapon in each hand", p.Name)
	case !p.MainHand.IsMelee() || !p.OffHand.IsMelee():
		return fail("two weapon fighting needs melee weapons")
	case !p.MainHand.IsLight():
		return fail("%s is not a light weapon", p.MainHand.Name)
	case !p.OffHand.IsLight():
		return fail("%s is not a light weapon", p.OffHand.Name)
	case p.Economy.BonusActionUsed:
		return fail("%s has already used their bonus action", p.Name)
	}
	return nil
}

// Sequence plans a full two weapon turn
func Sequence(p *participant.Participant) Plan {
	attacks := 1
	if !p.IsMonster() {
		attacks = rulebook.AttacksPerAction(p.Classes)
	}
	return Plan{MainHandAttacks: attacks, OffHand: true}
}

// Config holds the dependencies of a Sequencer
type Config struct {
	Attacks *attack.Resolver
}

// Sequencer runs main hand attacks followed by the bonus action off hand
// attack
type Sequencer struct {
	attacks *attack.Resolver
}

// NewSequencer creates a sequencer
func NewSequencer(cfg *Config) (*Sequencer, error) {
	if cfg == nil || cfg.Attacks == nil {
		return nil, errors.InvalidArgument("attack resolver is required")
	}
	return &Sequencer{attacks: cfg.Attacks}, nil
}

// Perform takes the Attack action with the main hand weapon and then makes
// one off hand attack with the bonus action. The off hand attack is skipped
// when the main hand already dropped the target.
func (s *Sequencer) Perform(p, target *participant.Participant, opts attack.Options) (*Result, error) {
	if err := CheckEligibility(p); err != nil {
		return nil, err
	}
	if p.Economy.ActionUsed {
		return nil, errors.InvalidActionf("%s has already used their action", p.Name).
			WithMeta("participant_id", p.ID)
	}

	plan := Sequence(p)

	seq, err := s.attacks.RunMainHand(p, target, opts)
	if err != nil {
		return nil, err
	}

	offHand := !seq.Done()
	if offHand {
		step := opts
		step.ActionID = ""
		step.TwoHanded = false
		result, err := s.attacks.PerformOffHandAttack(p.OffHand, p, seq.Target(), step)
		if err != nil {
			return nil, err
		}
		if err := seq.Add(result); err != nil {
			return nil, err
		}
	}

	after, targetDelta, err := seq.Finish()
	if err != nil {
		return nil, err
	}

	attacks := seq.Attacks()
	result := &Result{
		Plan:             plan,
		MainHand:         attacks,
		TargetAfter:      after,
		TargetDelta:      targetDelta,
		AttackerDelta:    action.NewDelta(opts.ActionID, p),
		TotalDamageDealt: seq.TotalDealt(),
	}
	result.AttackerDelta.ActionConsumed = true
	if offHand {
		result.MainHand = attacks[:len(attacks)-1]
		result.OffHand = attacks[len(attacks)-1]
		result.AttackerDelta.BonusActionConsumed = true
	}

	return result, nil
}

// PerformOffHand makes only the bonus action attack, for callers that
// sequence a turn one attack at a time. The Attack action must already have
// been taken this turn.
func (s *Sequencer) PerformOffHand(p, target *participant.Participant, opts attack.Options) (*Result, error) {
	if err := CheckEligibility(p); err != nil {
		return nil, err
	}
	if !p.Economy.ActionUsed {
		return nil, errors.InvalidActionf("%s must take the Attack action before attacking with the off hand", p.Name).
			WithMeta("participant_id", p.ID)
	}

	opts.TwoHanded = false
	offHand, err := s.attacks.PerformOffHandAttack(p.OffHand, p, target, opts)
	if err != nil {
		return nil, err
	}

	attackerDelta := action.NewDelta(opts.ActionID, p)
	attackerDelta.BonusActionConsumed = true

	return &Result{
		Plan:             Plan{OffHand: true},
		OffHand:          offHand,
		TargetAfter:      offHand.TargetAfter,
		TargetDelta:      offHand.Delta,
		AttackerDelta:    attackerDelta,
		TotalDamageDealt: offHand.TotalDamageDealt,
	}, nil
}
