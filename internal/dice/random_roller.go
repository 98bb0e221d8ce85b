package dice

import (
	"sync"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// randomRoller implements Roller on top of an rpg-toolkit face source
type randomRoller struct {
	source toolkitdice.Roller
}

// NewRandomRoller creates a roller backed by the toolkit's crypto-random source
func NewRandomRoller() Roller {
	return NewRoller(toolkitdice.DefaultRoller)
}

// NewRoller wraps any toolkit face source
func NewRoller(source toolkitdice.Roller) Roller {
	if source == nil {
		source = toolkitdice.DefaultRoller
	}
	return &randomRoller{source: source}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if err := Validate(count, sides); err != nil {
		return nil, err
	}

	rolls := []int{}
	if count > 0 {
		faces, err := r.source.RollN(count, sides)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %dd%d", count, sides)
		}
		rolls = faces
	}

	return NewResult(count, sides, bonus, ModeNormal, rolls), nil
}

// RollWithAdvantage implements Roller.RollWithAdvantage
func (r *randomRoller) RollWithAdvantage(sides, bonus int) (*RollResult, error) {
	return r.rollTwice(sides, bonus, ModeAdvantage)
}

// RollWithDisadvantage implements Roller.RollWithDisadvantage
func (r *randomRoller) RollWithDisadvantage(sides, bonus int) (*RollResult, error) {
	return r.rollTwice(sides, bonus, ModeDisadvantage)
}

func (r *randomRoller) rollTwice(sides, bonus int, mode Mode) (*RollResult, error) {
	if err := Validate(1, sides); err != nil {
		return nil, err
	}

	faces, err := r.source.RollN(2, sides)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll d%d with %s", sides, mode)
	}

	return NewResult(1, sides, bonus, mode, faces), nil
}

// lockedSource serializes access to a source that is not goroutine safe
type lockedSource struct {
	mu     sync.Mutex
	source toolkitdice.Roller
}

func (l *lockedSource) Roll(size int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.source.Roll(size)
}

func (l *lockedSource) RollN(count, size int) ([]int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.source.RollN(count, size)
}
