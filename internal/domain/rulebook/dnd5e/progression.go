package rulebook

import (
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
)

// MaxLevel is the highest character level
const MaxLevel = 20

// SpellSlotTable is the shared multiclass spellcaster table. Row i is caster
// level i+1, column j is spell level j+1.
var SpellSlotTable = [MaxLevel][shared.MaxSpellLevel]int{
	{2, 0, 0, 0, 0, 0, 0, 0, 0},
	{3, 0, 0, 0, 0, 0, 0, 0, 0},
	{4, 2, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 2, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 1, 0, 0, 0, 0, 0},
	{4, 3, 3, 2, 0, 0, 0, 0, 0},
	{4, 3, 3, 3, 1, 0, 0, 0, 0},
	{4, 3, 3, 3, 2, 0, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 2, 1, 1},
}

// SlotsForCasterLevel returns the per-level maximums for an effective caster
// level. Levels below 1 have no slots; levels above 20 use the level 20 row.
func SlotsForCasterLevel(level int) [shared.MaxSpellLevel]int {
	if level < 1 {
		return [shared.MaxSpellLevel]int{}
	}
	return SpellSlotTable[min(level, MaxLevel)-1]
}

// PactMagic is one row of the warlock table
type PactMagic struct {
	Slots     int `json:"slots"`
	SlotLevel int `json:"slot_level"`
}

// PactTable is indexed by warlock level minus one
var PactTable = [MaxLevel]PactMagic{
	{1, 1}, {2, 1},
	{2, 2}, {2, 2},
	{2, 3}, {2, 3},
	{2, 4}, {2, 4},
	{2, 5}, {2, 5},
	{3, 5}, {3, 5}, {3, 5}, {3, 5}, {3, 5}, {3, 5},
	{4, 5}, {4, 5}, {4, 5}, {4, 5},
}

// PactMagicForLevel returns the pact pool for a warlock level
func PactMagicForLevel(level int) PactMagic {
	if level < 1 {
		return PactMagic{}
	}
	return PactTable[min(level, MaxLevel)-1]
}

// Attack progression thresholds for martial classes
const (
	ExtraAttackLevel      = 5
	ThirdAttackLevel      = 11
	FighterFourthAttackAt = 20
)

// AttacksForClass is the number of attacks one class grants per Attack action
func AttacksForClass(cl ClassLevel) int {
	class, ok := classes[cl.Class]
	if !ok || !class.Martial {
		return 1
	}
	switch {
	case cl.Class == ClassFighter && cl.Level >= FighterFourthAttackAt:
		return 4
	case cl.Level >= ThirdAttackLevel:
		return 3
	case cl.Level >= ExtraAttackLevel:
		return 2
	default:
		return 1
	}
}

// AttacksPerAction takes the best progression across classes. Extra Attack
// from different classes does not add together.
func AttacksPerAction(levels []ClassLevel) int {
	best := 1
	for _, cl := range levels {
		best = max(best, AttacksForClass(cl))
	}
	return best
}
