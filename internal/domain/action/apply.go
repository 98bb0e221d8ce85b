package action

import (
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// Apply returns a copy of p with the delta committed. The bool is false
// when the delta's action was already applied to p, in which case the copy
// is unchanged; applying twice never spends a second slot or bonus action.
// A delta computed against different hit points than p has is stale and is
// rejected.
func Apply(p *participant.Participant, d *Delta) (*participant.Participant, bool, error) {
	if p == nil {
		return nil, false, errors.InvalidArgument("participant is required")
	}
	if d == nil {
		return nil, false, errors.InvalidArgument("delta is required")
	}
	if d.ParticipantID != p.ID {
		return nil, false, errors.InvalidArgumentf("delta for %s applied to %s", d.ParticipantID, p.ID).
			WithMeta("participant_id", p.ID)
	}

	out := p.Clone()
	if p.HasApplied(d.ActionID) {
		return out, false, nil
	}

	if d.ChangesHP() {
		if out.HP != d.HPBefore {
			return nil, false, errors.InvalidActionf("stale delta: hit points are %d/%d, delta expected %d/%d",
				out.HP.Current, out.HP.Max, d.HPBefore.Current, d.HPBefore.Max).
				WithMeta("participant_id", p.ID).
				WithMeta("action_id", d.ActionID)
		}
		out.HP = d.HPAfter
	}

	for _, t := range d.ConditionsRemoved {
		out.Conditions = out.Conditions.Remove(t)
	}
	for _, c := range d.ConditionsAdded {
		next, err := out.Conditions.Add(c)
		if err != nil {
			return nil, false, err
		}
		out.Conditions = next
	}
	if d.ExhaustionDelta != 0 {
		out.Conditions = out.Conditions.AddExhaustion(d.ExhaustionDelta)
	}

	if d.SlotConsumed != nil {
		if err := consumeSlot(out, d.SlotConsumed); err != nil {
			return nil, false, err
		}
	}

	if d.ConcentrationDropped {
		out.Concentration = ""
	}
	if d.ConcentrationSet != "" {
		out.Concentration = d.ConcentrationSet
	}

	if err := consumeEconomy(out, d); err != nil {
		return nil, false, err
	}

	if d.Died || out.Conditions.IsFatal() {
		out.Dead = true
		out.HP.Current = 0
		out.HP.Temporary = 0
	}

	if d.ActionID != "" {
		out.AppliedActions = append(out.AppliedActions, d.ActionID)
	}

	if err := out.Validate(); err != nil {
		return nil, false, errors.Wrapf(err, "delta %s left participant invalid", d.ActionID)
	}

	return out, true, nil
}

func consumeSlot(p *participant.Participant, slot *SlotConsumption) error {
	if slot.Pact {
		if p.PactSlots.SlotLevel != slot.Level {
			return errors.InvalidActionf("pact slots are level %d, not %d", p.PactSlots.SlotLevel, slot.Level).
				WithMeta("participant_id", p.ID).
				WithMeta("slot_level", slot.Level)
		}
		next, err := p.PactSlots.Consume()
		if err != nil {
			return err
		}
		p.PactSlots = next
		return nil
	}

	next, err := p.SpellSlots.Consume(slot.Level)
	if err != nil {
		return err
	}
	p.SpellSlots = next
	return nil
}

func consumeEconomy(p *participant.Participant, d *Delta) error {
	if d.ActionConsumed {
		if p.Economy.ActionUsed {
			return errors.InvalidAction("action already used this turn").WithMeta("participant_id", p.ID)
		}
		p.Economy.ActionUsed = true
	}
	if d.BonusActionConsumed {
		if p.Economy.BonusActionUsed {
			return errors.InvalidAction("bonus action already used this turn").WithMeta("participant_id", p.ID)
		}
		p.Economy.BonusActionUsed = true
	}
	if d.ReactionConsumed {
		if p.Economy.ReactionUsed {
			return errors.InvalidAction("reaction already used this turn").WithMeta("participant_id", p.ID)
		}
		p.Economy.ReactionUsed = true
	}
	return nil
}
