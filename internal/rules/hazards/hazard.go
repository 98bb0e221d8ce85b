// Package hazards detects and springs environmental hazards.
package hazards

import (
	"slices"
	"strings"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/conditions"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/damage"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// Trigger is when a hazard takes effect
type Trigger string

const (
	TriggerOnEnter   Trigger = "on_enter"
	TriggerOnEndTurn Trigger = "on_end_turn"
	TriggerOnMove    Trigger = "on_move"
)

func (t Trigger) Valid() bool {
	switch t {
	case TriggerOnEnter, TriggerOnEndTurn, TriggerOnMove:
		return true
	}
	return false
}

// ParseTrigger accepts "on_enter", "on-enter" and friends
func ParseTrigger(s string) (Trigger, error) {
	t := Trigger(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !t.Valid() {
		return "", errors.InvalidArgumentf("unknown hazard trigger %q", s)
	}
	return t, nil
}

// DetectionSkills are the only skills that can find a hidden hazard
var DetectionSkills = []shared.Skill{
	shared.SkillPerception,
	shared.SkillInvestigation,
	shared.SkillSurvival,
}

// SaveSpec is the save a hazard allows
type SaveSpec struct {
	Ability shared.Attribute `json:"ability"`
	DC      int              `json:"dc"`
}

// Definition describes a hazard. A nil Save means its effects are
// automatic.
type Definition struct {
	Key             string                     `json:"key"`
	Name            string                     `json:"name"`
	Hidden          bool                       `json:"hidden"`
	DetectionDC     int                        `json:"detection_dc,omitempty"`
	DetectionSkills []shared.Skill             `json:"detection_skills,omitempty"`
	Save            *SaveSpec                  `json:"save,omitempty"`
	Damage          *damage.Damage             `json:"damage,omitempty"`
	OnSuccess       damage.SuccessPolicy       `json:"on_success,omitempty"`
	Conditions      []conditions.ConditionType `json:"conditions,omitempty"` // on a failed save
	ExhaustionDelta int                        `json:"exhaustion_delta,omitempty"`
	Trigger         Trigger                    `json:"trigger"`
}

// Clone deep copies the definition
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}
	out := *d
	out.DetectionSkills = slices.Clone(d.DetectionSkills)
	out.Conditions = slices.Clone(d.Conditions)
	if d.Save != nil {
		save := *d.Save
		out.Save = &save
	}
	if d.Damage != nil {
		dmg := *d.Damage
		out.Damage = &dmg
	}
	return &out
}

// CanDetectWith reports whether skill is one this hazard can be found with
func (d *Definition) CanDetectWith(skill shared.Skill) bool {
	return slices.Contains(d.DetectionSkills, skill)
}

// Validate checks the definition is complete and uses known enums
func (d *Definition) Validate() error {
	if d == nil {
		return errors.InvalidArgument("hazard is required")
	}
	if d.Key == "" || d.Name == "" {
		return errors.InvalidArgument("hazard key and name are required")
	}
	wrap := func(err error) error {
		return errors.Wrapf(err, "hazard %s", d.Key).WithMeta("hazard", d.Key)
	}

	if !d.Trigger.Valid() {
		return wrap(errors.InvalidArgumentf("unknown trigger %q", d.Trigger))
	}
	if d.Hidden {
		if d.DetectionDC < 1 {
			return wrap(errors.InvalidArgument("hidden hazards need a detection DC"))
		}
		if len(d.DetectionSkills) == 0 {
			return wrap(errors.InvalidArgument("hidden hazards need at least one detection skill"))
		}
	}
	for _, skill := range d.DetectionSkills {
		if !slices.Contains(DetectionSkills, skill) {
			return wrap(errors.InvalidArgumentf("%q cannot detect hazards", skill))
		}
	}
	if d.Save != nil {
		if _, err := shared.ParseAttribute(string(d.Save.Ability)); err != nil {
			return wrap(err)
		}
		if d.Save.DC < 1 {
			return wrap(errors.InvalidArgumentf("save DC must be positive, got %d", d.Save.DC))
		}
		if !d.OnSuccess.Valid() {
			return wrap(errors.InvalidArgumentf("unknown success policy %q", d.OnSuccess))
		}
	}
	if d.Damage != nil {
		if err := d.Damage.Validate(); err != nil {
			return wrap(err)
		}
	}
	for _, c := range d.Conditions {
		if !c.Valid() || c == conditions.Exhaustion {
			return wrap(errors.InvalidArgumentf("hazard cannot apply condition %q", c))
		}
	}
	if d.ExhaustionDelta < 0 || d.ExhaustionDelta > conditions.MaxExhaustion {
		return wrap(errors.InvalidArgumentf("exhaustion delta %d out of range 0-%d", d.ExhaustionDelta, conditions.MaxExhaustion))
	}
	return nil
}
