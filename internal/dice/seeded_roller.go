package dice

import (
	"math/rand"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// SeededSource is a deterministic face source. The same seed always yields
// the same sequence, which makes encounters replayable.
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource creates a deterministic source for the given seed
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // game dice, not crypto
}

// Roll returns one face in [1,size]
func (s *SeededSource) Roll(size int) (int, error) {
	if size < 1 {
		return 0, errors.InvalidArgumentf("invalid dice size %d", size)
	}
	return s.rng.Intn(size) + 1, nil
}

// RollN returns count faces in [1,size]
func (s *SeededSource) RollN(count, size int) ([]int, error) {
	if err := Validate(count, size); err != nil {
		return nil, err
	}
	out := make([]int, count)
	for i := range out {
		out[i] = s.rng.Intn(size) + 1
	}
	return out, nil
}

// NewSeededRoller creates a deterministic roller that is safe to share
// between goroutines
func NewSeededRoller(seed int64) Roller {
	return NewRoller(&lockedSource{source: NewSeededSource(seed)})
}
