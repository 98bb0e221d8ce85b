// Package multiclass combines class levels into caster levels and spell
// resources.
package multiclass

import (
	rulebook "github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/rulebook/dnd5e"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
)

// CasterLevel is the effective level used against the shared slot table:
// full caster levels plus half caster levels halved (rounded down per
// class), capped at 20. Pact magic and non-casters add nothing.
func CasterLevel(levels []rulebook.ClassLevel) int {
	total := 0
	for _, cl := range levels {
		class, err := rulebook.GetClass(cl.Class)
		if err != nil || cl.Level < 1 {
			continue
		}
		switch class.Caster {
		case rulebook.CasterFull:
			total += cl.Level
		case rulebook.CasterHalf:
			total += cl.Level / 2
		}
	}
	return min(total, rulebook.MaxLevel)
}

// PactLevel is the total warlock level
func PactLevel(levels []rulebook.ClassLevel) int {
	total := 0
	for _, cl := range levels {
		class, err := rulebook.GetClass(cl.Class)
		if err != nil || class.Caster != rulebook.CasterPact {
			continue
		}
		total += cl.Level
	}
	return total
}

// SlotMaximums looks up the shared table for the class list
func SlotMaximums(levels []rulebook.ClassLevel) [shared.MaxSpellLevel]int {
	return rulebook.SlotsForCasterLevel(CasterLevel(levels))
}

// CalculateSpellSlots returns the pool with maximums for the class list.
// Spent slots stay spent and current never exceeds the new max.
func CalculateSpellSlots(levels []rulebook.ClassLevel, current shared.SlotPool) shared.SlotPool {
	return current.WithMax(SlotMaximums(levels))
}

// PactSlots returns the pact magic pool for the class list, keeping spent
// slots spent
func PactSlots(levels []rulebook.ClassLevel, current shared.PactSlots) shared.PactSlots {
	row := rulebook.PactMagicForLevel(PactLevel(levels))
	remaining := current.Current
	if gained := row.Slots - current.Max; gained > 0 {
		remaining += gained
	}
	return shared.PactSlots{
		SlotLevel: row.SlotLevel,
		Max:       row.Slots,
		Current:   max(0, min(remaining, row.Slots)),
	}
}
