package equipment

import (
	"strings"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// Kind distinguishes weapons from other items that can be held in a hand
type Kind string

const (
	KindWeapon Kind = "weapon"
	KindShield Kind = "shield"
	KindFocus  Kind = "focus" // spellcasting focus
)

// Category is the weapon training category
type Category string

const (
	CategorySimple  Category = "simple"
	CategoryMartial Category = "martial"
)

// RangeType separates melee from ranged weapons
type RangeType string

const (
	RangeMelee  RangeType = "melee"
	RangeRanged RangeType = "ranged"
)

// Property is a closed set of weapon properties
type Property string

const (
	PropertyAmmunition Property = "ammunition"
	PropertyFinesse    Property = "finesse"
	PropertyHeavy      Property = "heavy"
	PropertyLight      Property = "light"
	PropertyLoading    Property = "loading"
	PropertyReach      Property = "reach"
	PropertyThrown     Property = "thrown"
	PropertyTwoHanded  Property = "two-handed"
	PropertyVersatile  Property = "versatile"
	PropertyMonk       Property = "monk"
)

var properties = map[Property]bool{
	PropertyAmmunition: true,
	PropertyFinesse:    true,
	PropertyHeavy:      true,
	PropertyLight:      true,
	PropertyLoading:    true,
	PropertyReach:      true,
	PropertyThrown:     true,
	PropertyTwoHanded:  true,
	PropertyVersatile:  true,
	PropertyMonk:       true,
}

// Valid reports whether p is a known property
func (p Property) Valid() bool {
	return properties[p]
}

// ParseProperty converts an API key to a property. Unknown keys are an
// error so callers can decide whether to skip them.
func ParseProperty(s string) (Property, error) {
	p := Property(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", errors.InvalidArgumentf("unknown weapon property %q", s)
	}
	return p, nil
}

// ParseCategory converts "Simple"/"Martial"
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategorySimple:
		return CategorySimple, nil
	case CategoryMartial:
		return CategoryMartial, nil
	default:
		return "", errors.InvalidArgumentf("unknown weapon category %q", s)
	}
}

// ParseRange converts "Melee"/"Ranged"
func ParseRange(s string) (RangeType, error) {
	switch RangeType(strings.ToLower(strings.TrimSpace(s))) {
	case RangeMelee:
		return RangeMelee, nil
	case RangeRanged:
		return RangeRanged, nil
	default:
		return "", errors.InvalidArgumentf("unknown weapon range %q", s)
	}
}
