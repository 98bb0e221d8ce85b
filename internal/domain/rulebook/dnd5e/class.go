package rulebook

import (
	"strings"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// ClassKey is a closed set of class identifiers
type ClassKey string

const (
	ClassBarbarian ClassKey = "barbarian"
	ClassBard      ClassKey = "bard"
	ClassCleric    ClassKey = "cleric"
	ClassDruid     ClassKey = "druid"
	ClassFighter   ClassKey = "fighter"
	ClassMonk      ClassKey = "monk"
	ClassPaladin   ClassKey = "paladin"
	ClassRanger    ClassKey = "ranger"
	ClassRogue     ClassKey = "rogue"
	ClassSorcerer  ClassKey = "sorcerer"
	ClassWarlock   ClassKey = "warlock"
	ClassWizard    ClassKey = "wizard"
)

// CasterType classifies how a class contributes to spell slots
type CasterType string

const (
	CasterNone CasterType = "none"
	CasterFull CasterType = "full"
	CasterHalf CasterType = "half"
	// CasterPact uses its own short-rest pool and never joins the shared table
	CasterPact CasterType = "pact"
)

// Class holds the static rules for a class
type Class struct {
	Key                 ClassKey           `json:"key"`
	Name                string             `json:"name"`
	HitDie              int                `json:"hit_die"`
	Caster              CasterType         `json:"caster"`
	SpellcastingAbility shared.Attribute   `json:"spellcasting_ability,omitempty"`
	SavingThrows        []shared.Attribute `json:"saving_throws"`
	PrimaryAbility      string             `json:"primary_ability"`
	// Martial classes gain Extra Attack at level 5
	Martial bool `json:"martial"`
}

// IsCaster reports whether the class casts spells at all
func (c *Class) IsCaster() bool {
	return c.Caster != CasterNone
}

// GetPrimaryAbility returns the primary ability for the class
func (c *Class) GetPrimaryAbility() string {
	return c.PrimaryAbility
}

var classes = map[ClassKey]*Class{
	ClassBarbarian: {
		Key: ClassBarbarian, Name: "Barbarian", HitDie: 12, Caster: CasterNone, Martial: true,
		SavingThrows:   []shared.Attribute{shared.AttributeStrength, shared.AttributeConstitution},
		PrimaryAbility: "Strength",
	},
	ClassBard: {
		Key: ClassBard, Name: "Bard", HitDie: 8, Caster: CasterFull,
		SpellcastingAbility: shared.AttributeCharisma,
		SavingThrows:        []shared.Attribute{shared.AttributeDexterity, shared.AttributeCharisma},
		PrimaryAbility:      "Charisma",
	},
	ClassCleric: {
		Key: ClassCleric, Name: "Cleric", HitDie: 8, Caster: CasterFull,
		SpellcastingAbility: shared.AttributeWisdom,
		SavingThrows:        []shared.Attribute{shared.AttributeWisdom, shared.AttributeCharisma},
		PrimaryAbility:      "Wisdom",
	},
	ClassDruid: {
		Key: ClassDruid, Name: "Druid", HitDie: 8, Caster: CasterFull,
		SpellcastingAbility: shared.AttributeWisdom,
		SavingThrows:        []shared.Attribute{shared.AttributeIntelligence, shared.AttributeWisdom},
		PrimaryAbility:      "Wisdom",
	},
	ClassFighter: {
		Key: ClassFighter, Name: "Fighter", HitDie: 10, Caster: CasterNone, Martial: true,
		SavingThrows:   []shared.Attribute{shared.AttributeStrength, shared.AttributeConstitution},
		PrimaryAbility: "Strength or Dexterity",
	},
	ClassMonk: {
		Key: ClassMonk, Name: "Monk", HitDie: 8, Caster: CasterNone, Martial: true,
		SavingThrows:   []shared.Attribute{shared.AttributeStrength, shared.AttributeDexterity},
		PrimaryAbility: "Dexterity and Wisdom",
	},
	ClassPaladin: {
		Key: ClassPaladin, Name: "Paladin", HitDie: 10, Caster: CasterHalf, Martial: true,
		SpellcastingAbility: shared.AttributeCharisma,
		SavingThrows:        []shared.Attribute{shared.AttributeWisdom, shared.AttributeCharisma},
		PrimaryAbility:      "Strength and Charisma",
	},
	ClassRanger: {
		Key: ClassRanger, Name: "Ranger", HitDie: 10, Caster: CasterHalf, Martial: true,
		SpellcastingAbility: shared.AttributeWisdom,
		SavingThrows:        []shared.Attribute{shared.AttributeStrength, shared.AttributeDexterity},
		PrimaryAbility:      "Dexterity and Wisdom",
	},
	ClassRogue: {
		Key: ClassRogue, Name: "Rogue", HitDie: 8, Caster: CasterNone,
		SavingThrows:   []shared.Attribute{shared.AttributeDexterity, shared.AttributeIntelligence},
		PrimaryAbility: "Dexterity",
	},
	ClassSorcerer: {
		Key: ClassSorcerer, Name: "Sorcerer", HitDie: 6, Caster: CasterFull,
		SpellcastingAbility: shared.AttributeCharisma,
		SavingThrows:        []shared.Attribute{shared.AttributeConstitution, shared.AttributeCharisma},
		PrimaryAbility:      "Charisma",
	},
	ClassWarlock: {
		Key: ClassWarlock, Name: "Warlock", HitDie: 8, Caster: CasterPact,
		SpellcastingAbility: shared.AttributeCharisma,
		SavingThrows:        []shared.Attribute{shared.AttributeWisdom, shared.AttributeCharisma},
		PrimaryAbility:      "Charisma",
	},
	ClassWizard: {
		Key: ClassWizard, Name: "Wizard", HitDie: 6, Caster: CasterFull,
		SpellcastingAbility: shared.AttributeIntelligence,
		SavingThrows:        []shared.Attribute{shared.AttributeIntelligence, shared.AttributeWisdom},
		PrimaryAbility:      "Intelligence",
	},
}

// Valid reports whether k is a known class
func (k ClassKey) Valid() bool {
	_, ok := classes[k]
	return ok
}

// GetClass returns the static class record
func GetClass(key ClassKey) (*Class, error) {
	c, ok := classes[key]
	if !ok {
		return nil, errors.NotFoundf("class %q not found", key)
	}
	return c, nil
}

// ParseClass converts an API or user key to a class key
func ParseClass(s string) (ClassKey, error) {
	k := ClassKey(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", errors.InvalidArgumentf("unknown class %q", s)
	}
	return k, nil
}

// ClassLevel is one entry of a participant's class list
type ClassLevel struct {
	Class ClassKey `json:"class"`
	Level int      `json:"level"`
}

// TotalLevel sums the levels of all classes
func TotalLevel(levels []ClassLevel) int {
	total := 0
	for _, cl := range levels {
		total += cl.Level
	}
	return total
}

// ValidateLevels checks each class is known, each level is at least 1,
// no class repeats and the total is 1-20
func ValidateLevels(levels []ClassLevel) error {
	if len(levels) == 0 {
		return errors.InvalidArgument("at least one class is required")
	}
	seen := make(map[ClassKey]bool, len(levels))
	for _, cl := range levels {
		if !cl.Class.Valid() {
			return errors.InvalidArgumentf("unknown class %q", cl.Class)
		}
		if seen[cl.Class] {
			return errors.InvalidArgumentf("class %s listed more than once", cl.Class)
		}
		seen[cl.Class] = true
		if cl.Level < 1 {
			return errors.InvalidArgumentf("%s level must be at least 1, got %d", cl.Class, cl.Level)
		}
	}
	if total := TotalLevel(levels); total > MaxLevel {
		return errors.InvalidArgumentf("total level %d exceeds %d", total, MaxLevel)
	}
	return nil
}
