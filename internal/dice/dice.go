package dice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// D20 is the primary die for attacks, saves and checks
const D20 = 20

// Mode selects how the primary d20 is kept
type Mode int

const (
	ModeNormal Mode = iota
	ModeAdvantage
	ModeDisadvantage
)

func (m Mode) String() string {
	switch m {
	case ModeAdvantage:
		return "advantage"
	case ModeDisadvantage:
		return "disadvantage"
	default:
		return "normal"
	}
}

// ResolveMode collapses aggregated advantage and disadvantage flags into a
// single mode. Having both always yields a normal roll no matter how many
// sources contributed to either side.
func ResolveMode(advantage, disadvantage bool) Mode {
	switch {
	case advantage && !disadvantage:
		return ModeAdvantage
	case disadvantage && !advantage:
		return ModeDisadvantage
	default:
		return ModeNormal
	}
}

// Override is an explicit advantage/disadvantage request from the caller
type Override struct {
	Advantage    bool
	Disadvantage bool
}

// RollResult is the outcome of a single roll.
// Natural holds the kept face of a lone d20 so critical detection never
// depends on Bonus.
type RollResult struct {
	Count    int
	Sides    int
	Bonus    int
	Mode     Mode
	Rolls    []int // every face rolled
	Kept     []int // faces that count toward the total
	Natural  int
	RawTotal int
	Total    int
	IsCrit   bool
	IsFumble bool
}

// NewResult builds a RollResult from faces that were already rolled.
// For advantage and disadvantage, rolls must hold exactly two faces.
func NewResult(count, sides, bonus int, mode Mode, rolls []int) *RollResult {
	result := &RollResult{
		Count: count,
		Sides: sides,
		Bonus: bonus,
		Mode:  mode,
		Rolls: rolls,
	}

	switch {
	case mode == ModeAdvantage && len(rolls) == 2:
		result.Kept = []int{max(rolls[0], rolls[1])}
	case mode == ModeDisadvantage && len(rolls) == 2:
		result.Kept = []int{min(rolls[0], rolls[1])}
	default:
		result.Mode = ModeNormal
		result.Kept = append([]int(nil), rolls...)
	}

	for _, face := range result.Kept {
		result.RawTotal += face
	}
	result.Total = result.RawTotal + bonus

	if sides == D20 && count == 1 && len(result.Kept) == 1 {
		result.Natural = result.Kept[0]
		result.IsCrit = result.Natural == D20
		result.IsFumble = result.Natural == 1
	}

	return result
}

func (r *RollResult) String() string {
	if r == nil {
		return ""
	}
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", "")
	switch {
	case r.Bonus > 0:
		return fmt.Sprintf("%dd%d+%d %s = %d", r.Count, r.Sides, r.Bonus, compact, r.Total)
	case r.Bonus < 0:
		return fmt.Sprintf("%dd%d%d %s = %d", r.Count, r.Sides, r.Bonus, compact, r.Total)
	default:
		return fmt.Sprintf("%dd%d %s = %d", r.Count, r.Sides, compact, r.Total)
	}
}

// Expression is parsed dice notation such as 2d6+3
type Expression struct {
	Count int
	Sides int
	Bonus int
}

func (e Expression) String() string {
	switch {
	case e.Bonus > 0:
		return fmt.Sprintf("%dd%d+%d", e.Count, e.Sides, e.Bonus)
	case e.Bonus < 0:
		return fmt.Sprintf("%dd%d%d", e.Count, e.Sides, e.Bonus)
	default:
		return fmt.Sprintf("%dd%d", e.Count, e.Sides)
	}
}

// ParseExpression parses "NdS", "NdS+B" and "NdS-B". A bare "dS" means one die.
func ParseExpression(notation string) (Expression, error) {
	s := strings.ToLower(strings.ReplaceAll(notation, " ", ""))
	if s == "" {
		return Expression{}, errors.InvalidArgument("dice notation is empty")
	}

	var expr Expression
	if idx := strings.IndexAny(s, "+-"); idx >= 0 {
		bonus, err := strconv.Atoi(s[idx:])
		if err != nil {
			return Expression{}, errors.InvalidArgumentf("invalid dice bonus in %q", notation)
		}
		expr.Bonus = bonus
		s = s[:idx]
	}

	parts := strings.Split(s, "d")
	if len(parts) != 2 {
		return Expression{}, errors.InvalidArgumentf("invalid dice notation %q", notation)
	}

	expr.Count = 1
	if parts[0] != "" {
		count, err := strconv.Atoi(parts[0])
		if err != nil {
			return Expression{}, errors.InvalidArgumentf("invalid dice count in %q", notation)
		}
		expr.Count = count
	}

	sides, err := strconv.Atoi(parts[1])
	if err != nil {
		return Expression{}, errors.InvalidArgumentf("invalid dice size in %q", notation)
	}
	expr.Sides = sides

	if err := Validate(expr.Count, expr.Sides); err != nil {
		return Expression{}, err
	}

	return expr, nil
}

// Validate rejects dice that cannot be rolled
func Validate(count, sides int) error {
	if count < 0 {
		return errors.InvalidArgumentf("invalid dice count %d", count)
	}
	if sides < 1 {
		return errors.InvalidArgumentf("invalid dice size %d", sides)
	}
	return nil
}
