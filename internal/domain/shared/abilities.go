package shared

import (
	"fmt"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

const (
	MinAbilityScore = 1
	MaxAbilityScore = 30
)

// AbilityScores holds the six raw scores. Modifiers are always derived.
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// AbilityModifier is floor((score-10)/2)
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 && diff%2 != 0 {
		return diff/2 - 1
	}
	return diff / 2
}

// Get returns the raw score for an attribute
func (a AbilityScores) Get(attr Attribute) int {
	switch attr {
	case AttributeStrength:
		return a.Strength
	case AttributeDexterity:
		return a.Dexterity
	case AttributeConstitution:
		return a.Constitution
	case AttributeIntelligence:
		return a.Intelligence
	case AttributeWisdom:
		return a.Wisdom
	case AttributeCharisma:
		return a.Charisma
	default:
		return 0
	}
}

// Modifier returns the derived modifier for an attribute
func (a AbilityScores) Modifier(attr Attribute) int {
	if attr == AttributeNone {
		return 0
	}
	return AbilityModifier(a.Get(attr))
}

// With returns a copy with one score replaced
func (a AbilityScores) With(attr Attribute, score int) AbilityScores {
	switch attr {
	case AttributeStrength:
		a.Strength = score
	case AttributeDexterity:
		a.Dexterity = score
	case AttributeConstitution:
		a.Constitution = score
	case AttributeIntelligence:
		a.Intelligence = score
	case AttributeWisdom:
		a.Wisdom = score
	case AttributeCharisma:
		a.Charisma = score
	}
	return a
}

// Validate checks every score is within the legal range
func (a AbilityScores) Validate() error {
	for _, attr := range Attributes {
		score := a.Get(attr)
		if score < MinAbilityScore || score > MaxAbilityScore {
			return errors.InvalidArgumentf("%s score %d out of range %d-%d",
				attr.Name(), score, MinAbilityScore, MaxAbilityScore).
				WithMeta("attribute", string(attr))
		}
	}
	return nil
}

func (a AbilityScores) String() string {
	return fmt.Sprintf("STR %d DEX %d CON %d INT %d WIS %d CHA %d",
		a.Strength, a.Dexterity, a.Constitution, a.Intelligence, a.Wisdom, a.Charisma)
}
