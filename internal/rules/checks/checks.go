// Package checks resolves d20 saving throws and ability checks for the
// other rules packages.
package checks

import (
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/dice"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/conditions"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// Options are the extra advantage sources a caller knows about
type Options struct {
	Override     dice.Override
	Advantage    bool
	Disadvantage bool
}

// Result is the outcome of one save or check
type Result struct {
	Ability    shared.Attribute `json:"ability"`
	Skill      shared.Skill     `json:"skill,omitempty"`
	DC         int              `json:"dc"`
	Bonus      int              `json:"bonus"`
	Mode       dice.Mode        `json:"mode"`
	Roll       *dice.RollResult `json:"roll,omitempty"` // nil when the save failed automatically
	Total      int              `json:"total"`
	Success    bool             `json:"success"`
	AutoFailed bool             `json:"auto_failed,omitempty"`
}

// SaveBonus is the ability modifier plus proficiency when proficient
func SaveBonus(p *participant.Participant, ability shared.Attribute) int {
	bonus := p.AbilityModifier(ability)
	if p.IsProficientSave(ability) {
		bonus += p.ProficiencyBonus()
	}
	return bonus
}

// SkillBonus is the skill's ability modifier plus proficiency when proficient
func SkillBonus(p *participant.Participant, skill shared.Skill) int {
	bonus := p.AbilityModifier(skill.Ability())
	if p.IsProficientSkill(skill) {
		bonus += p.ProficiencyBonus()
	}
	return bonus
}

// Save rolls a saving throw. Conditions that fail the save outright skip the
// roll; otherwise condition, option and override flags are pooled before
// advantage and disadvantage cancel.
func Save(roller dice.Roller, p *participant.Participant, ability shared.Attribute, dc int, opts Options) (*Result, error) {
	if roller == nil {
		return nil, errors.InvalidArgument("dice roller is required")
	}
	if p == nil {
		return nil, errors.InvalidArgument("participant is required")
	}
	if _, err := shared.ParseAttribute(string(ability)); err != nil {
		return nil, err
	}

	result := &Result{Ability: ability, DC: dc, Bonus: SaveBonus(p, ability)}

	mods := conditions.SelfModifiers(p.Conditions)
	if mods.AutoFails(ability) {
		result.AutoFailed = true
		return result, nil
	}

	adv, dis := mods.SaveFlags(ability)
	result.Mode = dice.ResolveMode(
		adv || opts.Advantage || opts.Override.Advantage,
		dis || opts.Disadvantage || opts.Override.Disadvantage,
	)

	roll, err := dice.RollD20(roller, result.Bonus, result.Mode)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s save", ability.Name())
	}
	result.Roll = roll
	result.Total = roll.Total
	result.Success = roll.Total >= dc

	return result, nil
}

// Skill rolls an ability check with a skill
func Skill(roller dice.Roller, p *participant.Participant, skill shared.Skill, dc int, opts Options) (*Result, error) {
	if roller == nil {
		return nil, errors.InvalidArgument("dice roller is required")
	}
	if p == nil {
		return nil, errors.InvalidArgument("participant is required")
	}
	if !skill.Valid() {
		return nil, errors.InvalidArgumentf("unknown skill %q", skill)
	}

	result := &Result{Ability: skill.Ability(), Skill: skill, DC: dc, Bonus: SkillBonus(p, skill)}

	mods := conditions.SelfModifiers(p.Conditions)
	result.Mode = dice.ResolveMode(
		opts.Advantage || opts.Override.Advantage,
		mods.CheckDisadvantage || opts.Disadvantage || opts.Override.Disadvantage,
	)

	roll, err := dice.RollD20(roller, result.Bonus, result.Mode)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s check", skill)
	}
	result.Roll = roll
	result.Total = roll.Total
	result.Success = roll.Total >= dc

	return result, nil
}
