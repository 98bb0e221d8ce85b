package action

import (
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/conditions"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// SlotConsumption records which slot a cast spent
type SlotConsumption struct {
	Level int  `json:"level"`
	Pact  bool `json:"pact,omitempty"`
}

// Delta is the proposed change to one participant from one action. The
// orchestrator commits it with Apply, at most once per action id.
type Delta struct {
	ActionID             string                     `json:"action_id"`
	ParticipantID        string                     `json:"participant_id"`
	HPBefore             shared.HitPoints           `json:"hp_before"`
	HPAfter              shared.HitPoints           `json:"hp_after"`
	ConditionsAdded      []conditions.Condition     `json:"conditions_added,omitempty"`
	ConditionsRemoved    []conditions.ConditionType `json:"conditions_removed,omitempty"`
	ExhaustionDelta      int                        `json:"exhaustion_delta,omitempty"`
	SlotConsumed         *SlotConsumption           `json:"slot_consumed,omitempty"`
	ConcentrationSet     string                     `json:"concentration_set,omitempty"`
	ConcentrationDropped bool                       `json:"concentration_dropped,omitempty"`
	ActionConsumed       bool                       `json:"action_consumed,omitempty"`
	BonusActionConsumed  bool                       `json:"bonus_action_consumed,omitempty"`
	ReactionConsumed     bool                       `json:"reaction_consumed,omitempty"`
	Died                 bool                       `json:"died,omitempty"`
}

// NewDelta starts a delta for a participant with HP unchanged
func NewDelta(actionID string, p *participant.Participant) *Delta {
	return &Delta{
		ActionID:      actionID,
		ParticipantID: p.ID,
		HPBefore:      p.HP,
		HPAfter:       p.HP,
	}
}

// ChangesHP reports whether the delta moves hit points
func (d *Delta) ChangesHP() bool {
	return d.HPBefore != d.HPAfter
}

// IsEmpty reports a delta that changes nothing
func (d *Delta) IsEmpty() bool {
	return !d.ChangesHP() && len(d.ConditionsAdded) == 0 && len(d.ConditionsRemoved) == 0 &&
		d.ExhaustionDelta == 0 && d.SlotConsumed == nil && d.ConcentrationSet == "" &&
		!d.ConcentrationDropped && !d.ActionConsumed && !d.BonusActionConsumed &&
		!d.ReactionConsumed && !d.Died
}

// Merge folds a later delta for the same participant and action into d.
// HPBefore stays from d and HPAfter comes from next.
func (d *Delta) Merge(next *Delta) (*Delta, error) {
	if next == nil {
		return d, nil
	}
	if d.ParticipantID != next.ParticipantID || d.ActionID != next.ActionID {
		return nil, errors.Internalf("cannot merge delta for %s/%s into %s/%s",
			next.ActionID, next.ParticipantID, d.ActionID, d.ParticipantID)
	}
	if d.SlotConsumed != nil && next.SlotConsumed != nil {
		return nil, errors.InvalidAction("an action can consume only one spell slot")
	}

	out := *d
	out.HPAfter = next.HPAfter
	out.ConditionsAdded = append(append([]conditions.Condition(nil), d.ConditionsAdded...), next.ConditionsAdded...)
	out.ConditionsRemoved = append(append([]conditions.ConditionType(nil), d.ConditionsRemoved...), next.ConditionsRemoved...)
	out.ExhaustionDelta += next.ExhaustionDelta
	if next.SlotConsumed != nil {
		slot := *next.SlotConsumed
		out.SlotConsumed = &slot
	}
	if next.ConcentrationSet != "" {
		out.ConcentrationSet = next.ConcentrationSet
	}
	out.ConcentrationDropped = d.ConcentrationDropped || next.ConcentrationDropped
	out.ActionConsumed = d.ActionConsumed || next.ActionConsumed
	out.BonusActionConsumed = d.BonusActionConsumed || next.BonusActionConsumed
	out.ReactionConsumed = d.ReactionConsumed || next.ReactionConsumed
	out.Died = d.Died || next.Died
	return &out, nil
}
