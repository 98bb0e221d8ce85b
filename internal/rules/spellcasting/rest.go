package spellcasting

import (
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/conditions"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// LongRest restores every slot, hit points and the action economy, ends
// concentration and removes one level of exhaustion
func LongRest(p *participant.Participant) (*participant.Participant, error) {
	if p == nil {
		return nil, errors.InvalidArgument("participant is required")
	}
	if p.Dead {
		return nil, errors.InvalidActionf("%s is dead and cannot rest", p.Name).WithMeta("participant_id", p.ID)
	}

	out := p.Clone()
	out.SpellSlots = out.SpellSlots.RestoreAll()
	out.PactSlots = out.PactSlots.Restore()
	out.Concentration = ""
	out.Economy = out.Economy.StartTurn()
	out.HP.Current = out.HP.Max
	out.HP.Temporary = 0
	if out.Conditions.ExhaustionLevel() > 0 {
		out.Conditions = out.Conditions.AddExhaustion(-1)
	}
	out.Conditions = out.Conditions.Remove(conditions.Unconscious)
	return out, nil
}

// ShortRest restores pact magic slots
func ShortRest(p *participant.Participant) (*participant.Participant, error) {
	if p == nil {
		return nil, errors.InvalidArgument("participant is required")
	}
	if p.Dead {
		return nil, errors.InvalidActionf("%s is dead and cannot rest", p.Name).WithMeta("participant_id", p.ID)
	}

	out := p.Clone()
	out.PactSlots = out.PactSlots.Restore()
	return out, nil
}
