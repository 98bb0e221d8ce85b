package hazards

import (
	"sort"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/conditions"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/damage"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

func dmg(count, size int, t damage.Type) *damage.Damage {
	return &damage.Damage{DiceCount: count, DiceSize: size, DamageType: t}
}

var standard = map[string]*Definition{
	"spiked-pit": {
		Key: "spiked-pit", Name: "Spiked Pit", Trigger: TriggerOnEnter,
		Hidden: true, DetectionDC: 15, DetectionSkills: []shared.Skill{shared.SkillPerception, shared.SkillInvestigation},
		Save:       &SaveSpec{Ability: shared.AttributeDexterity, DC: 15},
		Damage:     dmg(3, 6, damage.TypePiercing),
		OnSuccess:  damage.SuccessNone,
		Conditions: []conditions.ConditionType{conditions.Prone},
	},
	"poison-dart-trap": {
		Key: "poison-dart-trap", Name: "Poison Dart Trap", Trigger: TriggerOnEnter,
		Hidden: true, DetectionDC: 15, DetectionSkills: []shared.Skill{shared.SkillPerception, shared.SkillInvestigation},
		Save:       &SaveSpec{Ability: shared.AttributeConstitution, DC: 15},
		Damage:     dmg(2, 10, damage.TypePoison),
		OnSuccess:  damage.SuccessHalf,
		Conditions: []conditions.ConditionType{conditions.Poisoned},
	},
	"collapsing-ceiling": {
		Key: "collapsing-ceiling", Name: "Collapsing Ceiling", Trigger: TriggerOnMove,
		Hidden: true, DetectionDC: 15, DetectionSkills: []shared.Skill{shared.SkillInvestigation},
		Save:       &SaveSpec{Ability: shared.AttributeDexterity, DC: 15},
		Damage:     dmg(4, 10, damage.TypeBludgeoning),
		OnSuccess:  damage.SuccessHalf,
		Conditions: []conditions.ConditionType{conditions.Prone, conditions.Restrained},
	},
	"thin-ice": {
		Key: "thin-ice", Name: "Thin Ice", Trigger: TriggerOnMove,
		Hidden: true, DetectionDC: 10, DetectionSkills: []shared.Skill{shared.SkillSurvival, shared.SkillPerception},
		Save:            &SaveSpec{Ability: shared.AttributeDexterity, DC: 10},
		Damage:          dmg(1, 6, damage.TypeCold),
		OnSuccess:       damage.SuccessNone,
		Conditions:      []conditions.ConditionType{conditions.Prone},
		ExhaustionDelta: 1,
	},
	"extreme-cold": {
		Key: "extreme-cold", Name: "Extreme Cold", Trigger: TriggerOnEndTurn,
		Save:            &SaveSpec{Ability: shared.AttributeConstitution, DC: 10},
		OnSuccess:       damage.SuccessNone,
		ExhaustionDelta: 1,
	},
	"quicksand": {
		Key: "quicksand", Name: "Quicksand", Trigger: TriggerOnEnter,
		Hidden: true, DetectionDC: 10, DetectionSkills: []shared.Skill{shared.SkillSurvival},
		Save:       &SaveSpec{Ability: shared.AttributeStrength, DC: 10},
		OnSuccess:  damage.SuccessNone,
		Conditions: []conditions.ConditionType{conditions.Restrained},
	},
	"fire-vent": {
		Key: "fire-vent", Name: "Fire Vent", Trigger: TriggerOnEndTurn,
		Save:      &SaveSpec{Ability: shared.AttributeDexterity, DC: 13},
		Damage:    dmg(2, 6, damage.TypeFire),
		OnSuccess: damage.SuccessHalf,
	},
}

// Lookup returns a copy of a built-in hazard
func Lookup(key string) (*Definition, error) {
	d, ok := standard[key]
	if !ok {
		return nil, errors.NotFoundf("hazard %q not found", key).WithMeta("hazard", key)
	}
	return d.Clone(), nil
}

// Catalog returns copies of every built-in hazard ordered by key
func Catalog() []*Definition {
	out := make([]*Definition, 0, len(standard))
	for _, d := range standard {
		out = append(out, d.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
