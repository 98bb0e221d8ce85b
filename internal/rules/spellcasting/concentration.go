package spellcasting

import (
	"fmt"
	"log"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/dice"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/action"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/conditions"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	rulebook "github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/rulebook/dnd5e"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/checks"
)

// MinConcentrationDC is the floor of the concentration save DC
const MinConcentrationDC = 10

// ConcentrationCheck is the outcome of a save to keep concentrating
type ConcentrationCheck struct {
	Spell       string                   `json:"spell,omitempty"`
	Maintained  bool                     `json:"maintained"`
	DC          int                      `json:"dc,omitempty"`
	Save        *checks.Result           `json:"save,omitempty"` // nil when no roll was needed
	Roll        *dice.RollResult         `json:"roll,omitempty"`
	Participant *participant.Participant `json:"participant"`
	Delta       *action.Delta            `json:"delta"`
}

// ConcentrationDC is max(10, half the damage rounded down)
func ConcentrationDC(damageTaken int) int {
	return max(MinConcentrationDC, damageTaken/2)
}

// CheckConcentration rolls the constitution save a concentrating caster
// makes after taking damage. No damage, or no concentration, means it holds
// without a roll.
func (m *Manager) CheckConcentration(p *participant.Participant, damageTaken int, opts checks.Options) (*ConcentrationCheck, error) {
	return m.CheckConcentrationFor("", p, damageTaken, opts)
}

// CheckConcentrationFor is CheckConcentration with the delta stamped for an
// action
func (m *Manager) CheckConcentrationFor(actionID string, p *participant.Participant, damageTaken int, opts checks.Options) (*ConcentrationCheck, error) {
	if p == nil {
		return nil, errors.InvalidArgument("participant is required")
	}

	result := &ConcentrationCheck{
		Spell:       p.Concentration,
		Maintained:  true,
		Participant: p.Clone(),
		Delta:       action.NewDelta(actionID, p),
	}
	if !p.IsConcentrating() {
		return result, nil
	}
	if conditions.SelfModifiers(p.Conditions).Incapacitated {
		return m.drop(result, p, "incapacitated")
	}
	if damageTaken <= 0 {
		return result, nil
	}

	result.DC = ConcentrationDC(damageTaken)
	if p.HasFeat(rulebook.FeatWarCaster) {
		opts.Advantage = true
	}

	save, err := checks.Save(m.roller, p, shared.AttributeConstitution, result.DC, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll concentration for %s", p.ID)
	}
	result.Save = save
	result.Roll = save.Roll
	result.Maintained = save.Success

	if !save.Success {
		return m.drop(result, p, fmt.Sprintf("DC %d, rolled %d", result.DC, save.Total))
	}
	return result, nil
}

func (m *Manager) drop(result *ConcentrationCheck, p *participant.Participant, reason string) (*ConcentrationCheck, error) {
	result.Maintained = false
	result.Delta.ConcentrationDropped = true
	after, _, err := action.Apply(p, result.Delta)
	if err != nil {
		return nil, err
	}
	result.Participant = after
	log.Printf("[CONCENTRATION] %s loses concentration on %s (%s)", p.Name, p.Concentration, reason)
	return result, nil
}

// ConcentrationHeld is the yes/no form of CheckConcentration
func (m *Manager) ConcentrationHeld(p *participant.Participant, damageTaken int) (bool, error) {
	check, err := m.CheckConcentration(p, damageTaken, checks.Options{})
	if err != nil {
		return false, err
	}
	return check.Maintained, nil
}

// EndConcentration drops concentration voluntarily
func EndConcentration(p *participant.Participant) (*participant.Participant, *action.Delta, error) {
	if p == nil {
		return nil, nil, errors.InvalidArgument("participant is required")
	}
	delta := action.NewDelta("", p)
	if !p.IsConcentrating() {
		return p.Clone(), delta, nil
	}
	delta.ConcentrationDropped = true
	after, _, err := action.Apply(p, delta)
	if err != nil {
		return nil, nil, err
	}
	return after, delta, nil
}
