package attack

import (
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/action"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	rulebook "github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/rulebook/dnd5e"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// ActionResult is a whole Attack action: every attack the attacker's
// progression allows, folded into one delta per participant
type ActionResult struct {
	Attacks          []*FullAttackResult      `json:"attacks"`
	TargetAfter      *participant.Participant `json:"target_after"`
	TargetDelta      *action.Delta            `json:"target_delta"`
	AttackerDelta    *action.Delta            `json:"attacker_delta"`
	TotalDamageDealt int                      `json:"total_damage_dealt"`
}

// Sequence runs attacks one after another against the evolving target and
// folds their deltas. Each step sees the target as the previous one left it.
type Sequence struct {
	actionID string
	original *participant.Participant
	current  *participant.Participant
	delta    *action.Delta
	attacks  []*FullAttackResult
	dealt    int
}

// NewSequence starts a sequence against target
func NewSequence(actionID string, target *participant.Participant) *Sequence {
	return &Sequence{
		actionID: actionID,
		original: target,
		current:  target,
		delta:    action.NewDelta("", target),
	}
}

// Target is the target as the attacks so far have left it
func (s *Sequence) Target() *participant.Participant {
	return s.current
}

// Done reports whether further attacks are pointless
func (s *Sequence) Done() bool {
	return s.current.HP.IsDown() || s.current.IsDefeated()
}

// Add folds one attack's result in. The attack must have been resolved
// against Target() with no action id.
func (s *Sequence) Add(result *FullAttackResult) error {
	merged, err := s.delta.Merge(result.Delta)
	if err != nil {
		return err
	}
	s.delta = merged
	s.current = result.TargetAfter
	s.attacks = append(s.attacks, result)
	s.dealt += result.TotalDamageDealt
	return nil
}

// Finish stamps the folded delta with the action id and applies it to the
// original target
func (s *Sequence) Finish() (*participant.Participant, *action.Delta, error) {
	d := *s.delta
	d.ActionID = s.actionID
	after, _, err := action.Apply(s.original, &d)
	if err != nil {
		return nil, nil, err
	}
	return after, &d, nil
}

// Attacks lists the results added so far
func (s *Sequence) Attacks() []*FullAttackResult {
	return s.attacks
}

// TotalDealt sums damage dealt by every attack
func (s *Sequence) TotalDealt() int {
	return s.dealt
}

// PerformAttackAction makes every main hand attack the Attack action grants
// and spends the attacker's action
func (r *Resolver) PerformAttackAction(attacker, target *participant.Participant, opts Options) (*ActionResult, error) {
	if attacker == nil {
		return nil, errors.InvalidAction("attacker is required")
	}
	if attacker.Economy.ActionUsed {
		return nil, errors.InvalidActionf("%s has already used their action", attacker.Name).
			WithMeta("participant_id", attacker.ID)
	}
	if attacker.MainHand == nil {
		return nil, errors.InvalidActionf("%s has nothing in the main hand", attacker.Name).
			WithMeta("participant_id", attacker.ID)
	}

	seq, err := r.RunMainHand(attacker, target, opts)
	if err != nil {
		return nil, err
	}

	after, targetDelta, err := seq.Finish()
	if err != nil {
		return nil, err
	}

	attackerDelta := action.NewDelta(opts.ActionID, attacker)
	attackerDelta.ActionConsumed = true

	return &ActionResult{
		Attacks:          seq.Attacks(),
		TargetAfter:      after,
		TargetDelta:      targetDelta,
		AttackerDelta:    attackerDelta,
		TotalDamageDealt: seq.TotalDealt(),
	}, nil
}

// RunMainHand makes the main hand attacks of one Attack action, stopping
// early once the target is down
func (r *Resolver) RunMainHand(attacker, target *participant.Participant, opts Options) (*Sequence, error) {
	if target == nil {
		return nil, errors.InvalidAction("target is required")
	}

	seq := NewSequence(opts.ActionID, target)
	step := opts
	step.ActionID = ""

	attacks := 1
	if !attacker.IsMonster() {
		attacks = rulebook.AttacksPerAction(attacker.Classes)
	}

	for i := 0; i < attacks && !seq.Done(); i++ {
		result, err := r.PerformAttack(attacker.MainHand, attacker, seq.Target(), step)
		if err != nil {
			return nil, err
		}
		if err := seq.Add(result); err != nil {
			return nil, err
		}
	}
	return seq, nil
}
