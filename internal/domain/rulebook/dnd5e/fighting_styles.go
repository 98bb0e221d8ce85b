package rulebook

import (
	"slices"
	"strings"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// FightingStyle is a closed set of combat styles
type FightingStyle string

const (
	StyleArchery           FightingStyle = "archery"
	StyleDefense           FightingStyle = "defense"
	StyleDueling           FightingStyle = "dueling"
	StyleGreatWeapon       FightingStyle = "great_weapon_fighting"
	StyleProtection        FightingStyle = "protection"
	StyleTwoWeaponFighting FightingStyle = "two_weapon_fighting"
)

// FightingStyleInfo describes a combat style that can be chosen by certain classes
type FightingStyleInfo struct {
	Key         FightingStyle `json:"key"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Classes     []ClassKey    `json:"classes"` // Classes that can choose this style
}

var fightingStyles = []FightingStyleInfo{
	{
		Key:         StyleArchery,
		Name:        "Archery",
		Description: "You gain a +2 bonus to attack rolls you make with ranged weapons.",
		Classes:     []ClassKey{ClassFighter, ClassRanger},
	},
	{
		Key:         StyleDefense,
		Name:        "Defense",
		Description: "While you are wearing armor, you gain a +1 bonus to AC.",
		Classes:     []ClassKey{ClassFighter, ClassRanger, ClassPaladin},
	},
	{
		Key:         StyleDueling,
		Name:        "Dueling",
		Description: "+2 damage when wielding a melee weapon in one hand with no other weapons.",
		Classes:     []ClassKey{ClassFighter, ClassRanger, ClassPaladin},
	},
	{
		Key:         StyleGreatWeapon,
		Name:        "Great Weapon Fighting",
		Description: "Reroll 1-2 on damage dice with two-handed or versatile weapons.",
		Classes:     []ClassKey{ClassFighter, ClassPaladin},
	},
	{
		Key:         StyleProtection,
		Name:        "Protection",
		Description: "Use reaction with shield to impose disadvantage on an attack near you.",
		Classes:     []ClassKey{ClassFighter, ClassPaladin},
	},
	{
		Key:         StyleTwoWeaponFighting,
		Name:        "Two-Weapon Fighting",
		Description: "Add ability modifier to off-hand weapon damage.",
		Classes:     []ClassKey{ClassFighter, ClassRanger},
	},
}

// GetFightingStyles returns all available fighting styles
func GetFightingStyles() []FightingStyleInfo {
	return slices.Clone(fightingStyles)
}

// GetFightingStylesForClass returns fighting styles available to a specific class
func GetFightingStylesForClass(class ClassKey) []FightingStyleInfo {
	var out []FightingStyleInfo
	for _, style := range fightingStyles {
		if slices.Contains(style.Classes, class) {
			out = append(out, style)
		}
	}
	return out
}

// Valid reports whether s is a known style
func (s FightingStyle) Valid() bool {
	for _, style := range fightingStyles {
		if style.Key == s {
			return true
		}
	}
	return false
}

// ParseFightingStyle converts a key to a style
func ParseFightingStyle(s string) (FightingStyle, error) {
	style := FightingStyle(strings.ToLower(strings.TrimSpace(s)))
	if !style.Valid() {
		return "", errors.InvalidArgumentf("unknown fighting style %q", s)
	}
	return style, nil
}
