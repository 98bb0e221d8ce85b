package conditions

import (
	"slices"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
)

// Modifiers are the effects a participant's own conditions have on the rolls
// it makes and on its movement
type Modifiers struct {
	AttackAdvantage    bool
	AttackDisadvantage bool
	SaveAdvantage      bool
	SaveDisadvantage   bool
	CheckDisadvantage  bool
	SpeedMultiplier    float64
	Incapacitated      bool

	// SaveDisadvantageOn lists abilities with disadvantage beyond SaveDisadvantage
	SaveDisadvantageOn []shared.Attribute
	// AutoFailSaves lists abilities whose saves fail without rolling
	AutoFailSaves []shared.Attribute
}

// SaveFlags returns the advantage and disadvantage flags for a save of the
// given ability
func (m Modifiers) SaveFlags(ability shared.Attribute) (advantage, disadvantage bool) {
	return m.SaveAdvantage, m.SaveDisadvantage || slices.Contains(m.SaveDisadvantageOn, ability)
}

// AutoFails reports whether a save of the given ability fails automatically
func (m Modifiers) AutoFails(ability shared.Attribute) bool {
	return slices.Contains(m.AutoFailSaves, ability)
}

// SelfModifiers derives modifiers from a participant's own conditions
func SelfModifiers(set Set) Modifiers {
	m := Modifiers{SpeedMultiplier: 1}

	slow := func(mult float64) {
		if mult < m.SpeedMultiplier {
			m.SpeedMultiplier = mult
		}
	}

	for _, c := range set {
		switch c.Type {
		case Invisible:
			m.AttackAdvantage = true
		case Blinded:
			m.AttackDisadvantage = true
		case Poisoned:
			m.AttackDisadvantage = true
			m.CheckDisadvantage = true
		case Frightened:
			m.AttackDisadvantage = true
			m.CheckDisadvantage = true
		case Prone:
			m.AttackDisadvantage = true
			slow(0.5)
		case Grappled:
			slow(0)
		case Restrained:
			m.AttackDisadvantage = true
			m.SaveDisadvantageOn = appendOnce(m.SaveDisadvantageOn, shared.AttributeDexterity)
			slow(0)
		case Incapacitated, Surprised:
			m.Incapacitated = true
		case Paralyzed, Petrified, Stunned, Unconscious:
			m.Incapacitated = true
			m.AutoFailSaves = appendOnce(m.AutoFailSaves, shared.AttributeStrength)
			m.AutoFailSaves = appendOnce(m.AutoFailSaves, shared.AttributeDexterity)
			slow(0)
		case Exhaustion:
			if c.Level >= 1 {
				m.CheckDisadvantage = true
			}
			if c.Level >= 2 {
				slow(0.5)
			}
			if c.Level >= 3 {
				m.AttackDisadvantage = true
				m.SaveDisadvantage = true
			}
			if c.Level >= 5 {
				slow(0)
			}
			if c.Level >= MaxExhaustion {
				m.Incapacitated = true
			}
		}
	}

	return m
}

// AttackContext describes the attack being made against a target
type AttackContext struct {
	Melee          bool
	WithinFiveFeet bool
}

// TargetModifiers are what a target's conditions grant the attacker
type TargetModifiers struct {
	Advantage     bool
	Disadvantage  bool
	AutoCritOnHit bool
}

// AgainstTarget derives what the target's conditions mean for an attack
// made against it
func AgainstTarget(target Set, ctx AttackContext) TargetModifiers {
	var m TargetModifiers

	for _, c := range target {
		switch c.Type {
		case Prone:
			if ctx.Melee {
				m.Advantage = true
			}
		case Blinded, Restrained, Petrified:
			m.Advantage = true
		case Paralyzed, Stunned, Unconscious:
			m.Advantage = true
			if ctx.WithinFiveFeet {
				m.AutoCritOnHit = true
			}
		case Invisible:
			m.Disadvantage = true
		}
	}

	return m
}

func appendOnce(list []shared.Attribute, attr shared.Attribute) []shared.Attribute {
	if slices.Contains(list, attr) {
		return list
	}
	return append(list, attr)
}
