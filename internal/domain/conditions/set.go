package conditions

import (
	"slices"
	"sort"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// Set is a participant's active conditions. It holds at most one entry per
// type. Every method returns a new Set and leaves the receiver alone.
type Set []Condition

// NewSet builds a validated set
func NewSet(conds ...Condition) (Set, error) {
	var s Set
	for _, c := range conds {
		next, err := s.Add(c)
		if err != nil {
			return nil, err
		}
		s = next
	}
	return s, nil
}

// Has reports whether the condition is active
func (s Set) Has(t ConditionType) bool {
	_, ok := s.Get(t)
	return ok
}

// HasAny reports whether any of the conditions is active
func (s Set) HasAny(types ...ConditionType) bool {
	for _, t := range types {
		if s.Has(t) {
			return true
		}
	}
	return false
}

// Get returns the active condition of a type
func (s Set) Get(t ConditionType) (Condition, bool) {
	for _, c := range s {
		if c.Type == t {
			return c, true
		}
	}
	return Condition{}, false
}

// Clone copies the set
func (s Set) Clone() Set {
	return slices.Clone(s)
}

// Types lists the active condition types
func (s Set) Types() []ConditionType {
	out := make([]ConditionType, len(s))
	for i, c := range s {
		out[i] = c.Type
	}
	return out
}

// Add applies a condition. Re-applying an active condition keeps the longer
// duration. Exhaustion adds its level (1 when unset) to the current level.
func (s Set) Add(c Condition) (Set, error) {
	if !c.Type.Valid() {
		return s, errors.InvalidArgumentf("unknown condition %q", c.Type)
	}

	if c.Type == Exhaustion {
		delta := c.Level
		if delta == 0 {
			delta = 1
		}
		return s.AddExhaustion(delta), nil
	}
	c.Level = 0

	out := s.Clone()
	for i, existing := range out {
		if existing.Type != c.Type {
			continue
		}
		if existing.Duration != 0 && (c.Duration == 0 || c.Duration > existing.Duration) {
			out[i].Duration = c.Duration
		}
		return out, nil
	}

	return append(out, c), nil
}

// Remove drops a condition if present
func (s Set) Remove(t ConditionType) Set {
	out := make(Set, 0, len(s))
	for _, c := range s {
		if c.Type != t {
			out = append(out, c)
		}
	}
	return out
}

// ExhaustionLevel returns 0 when not exhausted
func (s Set) ExhaustionLevel() int {
	c, _ := s.Get(Exhaustion)
	return c.Level
}

// AddExhaustion moves the exhaustion level by delta, clamped to 0-6.
// Reaching 0 removes the condition.
func (s Set) AddExhaustion(delta int) Set {
	level := max(0, min(MaxExhaustion, s.ExhaustionLevel()+delta))

	out := s.Remove(Exhaustion)
	if level == 0 {
		return out
	}
	return append(out, Condition{Type: Exhaustion, Level: level})
}

// IsFatal reports exhaustion at level 6
func (s Set) IsFatal() bool {
	return s.ExhaustionLevel() >= MaxExhaustion
}

// TickRound counts down timed conditions and drops the expired ones
func (s Set) TickRound() Set {
	out := make(Set, 0, len(s))
	for _, c := range s {
		if c.Duration > 0 {
			c.Duration--
			if c.Duration == 0 {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// Validate checks types, uniqueness and levels
func (s Set) Validate() error {
	seen := make(map[ConditionType]bool, len(s))
	for _, c := range s {
		if !c.Type.Valid() {
			return errors.InvalidArgumentf("unknown condition %q", c.Type)
		}
		if seen[c.Type] {
			return errors.InvalidArgumentf("duplicate condition %q", c.Type)
		}
		seen[c.Type] = true

		if c.Type == Exhaustion {
			if c.Level < 1 || c.Level > MaxExhaustion {
				return errors.InvalidArgumentf("exhaustion level %d out of range 1-%d", c.Level, MaxExhaustion)
			}
		} else if c.Level != 0 {
			return errors.InvalidArgumentf("condition %q does not take a level", c.Type)
		}
		if c.Duration < 0 {
			return errors.InvalidArgumentf("condition %q has negative duration", c.Type)
		}
	}
	return nil
}

// Sorted orders conditions most severe first
func (s Set) Sorted() Set {
	out := s.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].Type.Priority(), out[j].Type.Priority()
		if pi != pj {
			return pi < pj
		}
		return out[i].Type.order() < out[j].Type.order()
	})
	return out
}

// Primary returns the most severe active condition
func (s Set) Primary() (Condition, bool) {
	if len(s) == 0 {
		return Condition{}, false
	}
	return s.Sorted()[0], true
}
