package conditions

import (
	"strings"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// ConditionType represents a type of condition
type ConditionType string

// Standard D&D 5e conditions plus surprise
const (
	Blinded       ConditionType = "blinded"
	Charmed       ConditionType = "charmed"
	Deafened      ConditionType = "deafened"
	Frightened    ConditionType = "frightened"
	Grappled      ConditionType = "grappled"
	Incapacitated ConditionType = "incapacitated"
	Invisible     ConditionType = "invisible"
	Paralyzed     ConditionType = "paralyzed"
	Petrified     ConditionType = "petrified"
	Poisoned      ConditionType = "poisoned"
	Prone         ConditionType = "prone"
	Restrained    ConditionType = "restrained"
	Stunned       ConditionType = "stunned"
	Unconscious   ConditionType = "unconscious"
	Exhaustion    ConditionType = "exhaustion" // Has levels 1-6
	Surprised     ConditionType = "surprised"
)

// MaxExhaustion is the fatal exhaustion level
const MaxExhaustion = 6

// All lists every condition in canonical order
var All = []ConditionType{
	Blinded, Charmed, Deafened, Frightened, Grappled, Incapacitated, Invisible, Paralyzed,
	Petrified, Poisoned, Prone, Restrained, Stunned, Unconscious, Exhaustion, Surprised,
}

// priorities picks the primary condition for summaries; lower wins
var priorities = map[ConditionType]int{
	Unconscious:   0,
	Paralyzed:     1,
	Petrified:     1,
	Incapacitated: 2,
	Stunned:       2,
	Restrained:    3,
	Exhaustion:    3,
	Frightened:    4,
	Poisoned:      5,
	Blinded:       5,
	Charmed:       6,
	Prone:         6,
	Grappled:      7,
	Deafened:      8,
	Invisible:     9,
	Surprised:     10,
}

// Valid reports whether c is one of the known conditions
func (c ConditionType) Valid() bool {
	_, ok := priorities[c]
	return ok
}

// Priority returns the display priority, lower is more severe
func (c ConditionType) Priority() int {
	if p, ok := priorities[c]; ok {
		return p
	}
	return len(priorities)
}

func (c ConditionType) order() int {
	for i, t := range All {
		if t == c {
			return i
		}
	}
	return len(All)
}

// ParseType converts a key to a condition. Unknown keys are an error.
func ParseType(s string) (ConditionType, error) {
	c := ConditionType(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", errors.InvalidArgumentf("unknown condition %q", s)
	}
	return c, nil
}

// Condition is one active condition on a participant
type Condition struct {
	Type     ConditionType `json:"type"`
	Level    int           `json:"level,omitempty"`    // exhaustion only
	Duration int           `json:"duration,omitempty"` // rounds remaining, 0 until removed
	Source   string        `json:"source,omitempty"`
}
