package shared

import (
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// MaxSpellLevel is the highest spell slot level
const MaxSpellLevel = 9

// HitPoints tracks hit points and temporary HP. Methods return updated
// copies; the receiver is never changed.
type HitPoints struct {
	Current   int `json:"current"`
	Max       int `json:"max"`
	Temporary int `json:"temporary"`
}

// TakeDamage applies damage, using temp HP first. Current never drops
// below 0.
func (hp HitPoints) TakeDamage(amount int) HitPoints {
	if amount <= 0 {
		return hp
	}

	if hp.Temporary > 0 {
		if hp.Temporary >= amount {
			hp.Temporary -= amount
			return hp
		}
		amount -= hp.Temporary
		hp.Temporary = 0
	}

	hp.Current -= amount
	if hp.Current < 0 {
		hp.Current = 0
	}

	return hp
}

// Heal restores hit points up to max
func (hp HitPoints) Heal(amount int) HitPoints {
	if amount <= 0 {
		return hp
	}
	hp.Current = min(hp.Current+amount, hp.Max)
	return hp
}

// AddTemporary grants temporary hit points (doesn't stack)
func (hp HitPoints) AddTemporary(amount int) HitPoints {
	if amount > hp.Temporary {
		hp.Temporary = amount
	}
	return hp
}

// IsDown reports whether the creature is at 0 hit points
func (hp HitPoints) IsDown() bool {
	return hp.Current <= 0
}

// Validate checks 0 <= current <= max and temp >= 0
func (hp HitPoints) Validate() error {
	if hp.Max < 1 {
		return errors.InvalidArgumentf("max hit points must be positive, got %d", hp.Max)
	}
	if hp.Current < 0 || hp.Current > hp.Max {
		return errors.InvalidArgumentf("current hit points %d out of range 0-%d", hp.Current, hp.Max)
	}
	if hp.Temporary < 0 {
		return errors.InvalidArgumentf("temporary hit points cannot be negative, got %d", hp.Temporary)
	}
	return nil
}

// Slot is one spell level's counter
type Slot struct {
	Max     int `json:"max"`
	Current int `json:"current"`
}

// SlotPool holds the nine per-level counters. Index 0 is level 1.
// It is an array so assignment copies it.
type SlotPool [MaxSpellLevel]Slot

// NewSlotPool builds a full pool from per-level maximums
func NewSlotPool(maxes [MaxSpellLevel]int) SlotPool {
	var pool SlotPool
	for i, m := range maxes {
		pool[i] = Slot{Max: m, Current: m}
	}
	return pool
}

// Get returns the counter for a level, zero for out-of-range levels
func (p SlotPool) Get(level int) Slot {
	if level < 1 || level > MaxSpellLevel {
		return Slot{}
	}
	return p[level-1]
}

// Available reports whether a slot of the given level can be spent
func (p SlotPool) Available(level int) bool {
	return p.Get(level).Current > 0
}

// Consume spends one slot at exactly the given level
func (p SlotPool) Consume(level int) (SlotPool, error) {
	if level < 1 || level > MaxSpellLevel {
		return p, errors.InvalidActionf("spell slot level %d out of range 1-%d", level, MaxSpellLevel).
			WithMeta("slot_level", level)
	}
	if p[level-1].Current <= 0 {
		return p, errors.InvalidActionf("no level %d spell slots remaining", level).
			WithMeta("slot_level", level)
	}
	p[level-1].Current--
	return p, nil
}

// RestoreAll refills every level
func (p SlotPool) RestoreAll() SlotPool {
	for i := range p {
		p[i].Current = p[i].Max
	}
	return p
}

// WithMax applies new maximums. Slots gained raise current by the same
// amount, so spent slots stay spent; current is clamped to the new max.
func (p SlotPool) WithMax(maxes [MaxSpellLevel]int) SlotPool {
	for i, m := range maxes {
		gained := m - p[i].Max
		current := p[i].Current
		if gained > 0 {
			current += gained
		}
		p[i] = Slot{Max: m, Current: max(0, min(current, m))}
	}
	return p
}

// Maxes returns the per-level maximums
func (p SlotPool) Maxes() [MaxSpellLevel]int {
	var out [MaxSpellLevel]int
	for i, s := range p {
		out[i] = s.Max
	}
	return out
}

// Total is the number of unspent slots across all levels
func (p SlotPool) Total() int {
	total := 0
	for _, s := range p {
		total += s.Current
	}
	return total
}

// Validate enforces 0 <= current <= max on every level
func (p SlotPool) Validate() error {
	for i, s := range p {
		if s.Max < 0 || s.Current < 0 || s.Current > s.Max {
			return errors.InvalidArgumentf("level %d slots invalid: current %d max %d", i+1, s.Current, s.Max).
				WithMeta("slot_level", i+1)
		}
	}
	return nil
}

// PactSlots is the separate short-rest pool used by pact magic
type PactSlots struct {
	SlotLevel int `json:"slot_level"`
	Max       int `json:"max"`
	Current   int `json:"current"`
}

// Available reports whether a pact slot can be spent
func (p PactSlots) Available() bool {
	return p.Current > 0
}

// Consume spends one pact slot
func (p PactSlots) Consume() (PactSlots, error) {
	if p.Current <= 0 {
		return p, errors.InvalidAction("no pact magic slots remaining").
			WithMeta("slot_level", p.SlotLevel)
	}
	p.Current--
	return p, nil
}

// Restore refills the pool
func (p PactSlots) Restore() PactSlots {
	p.Current = p.Max
	return p
}

// Validate enforces 0 <= current <= max
func (p PactSlots) Validate() error {
	if p.Max < 0 || p.Current < 0 || p.Current > p.Max {
		return errors.InvalidArgumentf("pact slots invalid: current %d max %d", p.Current, p.Max)
	}
	if p.Max > 0 && (p.SlotLevel < 1 || p.SlotLevel > 5) {
		return errors.InvalidArgumentf("pact slot level %d out of range 1-5", p.SlotLevel)
	}
	return nil
}

// ActionEconomy tracks what a participant has spent this turn
type ActionEconomy struct {
	ActionUsed      bool `json:"action_used"`
	BonusActionUsed bool `json:"bonus_action_used"`
	ReactionUsed    bool `json:"reaction_used"`
}

// StartTurn refreshes the action, bonus action and reaction
func (e ActionEconomy) StartTurn() ActionEconomy {
	return ActionEconomy{}
}
