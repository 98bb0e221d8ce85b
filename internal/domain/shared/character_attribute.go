package shared

import (
	"strings"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

type Attribute string

var Attributes = []Attribute{AttributeStrength, AttributeDexterity, AttributeConstitution, AttributeIntelligence, AttributeWisdom, AttributeCharisma}

const (
	AttributeNone         Attribute = ""
	AttributeStrength     Attribute = "Str"
	AttributeDexterity    Attribute = "Dex"
	AttributeConstitution Attribute = "Con"
	AttributeIntelligence Attribute = "Int"
	AttributeWisdom       Attribute = "Wis"
	AttributeCharisma     Attribute = "Cha"
)

func (a Attribute) Short() string {
	return string(a)
}

// Name returns the full attribute name
func (a Attribute) Name() string {
	switch a {
	case AttributeStrength:
		return "Strength"
	case AttributeDexterity:
		return "Dexterity"
	case AttributeConstitution:
		return "Constitution"
	case AttributeIntelligence:
		return "Intelligence"
	case AttributeWisdom:
		return "Wisdom"
	case AttributeCharisma:
		return "Charisma"
	default:
		return "None"
	}
}

// ParseAttribute accepts short keys ("dex"), full names ("dexterity") and the
// canonical form ("Dex")
func ParseAttribute(s string) (Attribute, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "str", "strength":
		return AttributeStrength, nil
	case "dex", "dexterity":
		return AttributeDexterity, nil
	case "con", "constitution":
		return AttributeConstitution, nil
	case "int", "intelligence":
		return AttributeIntelligence, nil
	case "wis", "wisdom":
		return AttributeWisdom, nil
	case "cha", "charisma":
		return AttributeCharisma, nil
	default:
		return AttributeNone, errors.InvalidArgumentf("unknown attribute %q", s)
	}
}
