package damage

import (
	"fmt"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/dice"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// Damage is a dice expression with a damage type, e.g. 1d8 slashing
type Damage struct {
	DiceCount  int  `json:"dice_count"`
	DiceSize   int  `json:"dice_size"`
	Bonus      int  `json:"bonus"`
	DamageType Type `json:"damage_type"`
}

// Parse builds Damage from notation such as "3d6" or "1d4+1"
func Parse(notation string, damageType Type) (*Damage, error) {
	expr, err := dice.ParseExpression(notation)
	if err != nil {
		return nil, err
	}
	d := &Damage{
		DiceCount:  expr.Count,
		DiceSize:   expr.Sides,
		Bonus:      expr.Bonus,
		DamageType: damageType,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks the dice and the damage type
func (d *Damage) Validate() error {
	if d == nil {
		return errors.InvalidArgument("damage is required")
	}
	if err := dice.Validate(d.DiceCount, d.DiceSize); err != nil {
		return err
	}
	if !d.DamageType.Valid() {
		return errors.InvalidArgumentf("unknown damage type %q", d.DamageType)
	}
	return nil
}

// Roll rolls the expression, doubling the dice count when critical. The flat
// bonus is never doubled.
func (d *Damage) Roll(roller dice.Roller, critical bool) (*dice.RollResult, error) {
	count := d.DiceCount
	if critical {
		count *= 2
	}
	return roller.Roll(count, d.DiceSize, d.Bonus)
}

// WithExtraDice returns a copy with more dice of the same size, used for
// upcast spells
func (d *Damage) WithExtraDice(extra int) *Damage {
	out := *d
	out.DiceCount += extra
	return &out
}

func (d *Damage) String() string {
	expr := dice.Expression{Count: d.DiceCount, Sides: d.DiceSize, Bonus: d.Bonus}
	return fmt.Sprintf("%s %s", expr, d.DamageType)
}

// SuccessPolicy is what a successful save does to damage
type SuccessPolicy string

const (
	SuccessHalf SuccessPolicy = "half"
	SuccessNone SuccessPolicy = "none"
	SuccessFull SuccessPolicy = "full"
)

func (p SuccessPolicy) Valid() bool {
	switch p {
	case SuccessHalf, SuccessNone, SuccessFull:
		return true
	}
	return false
}

// Apply returns the damage taken on a successful save. Half rounds down.
func (p SuccessPolicy) Apply(amount int) int {
	switch p {
	case SuccessHalf:
		return amount / 2
	case SuccessFull:
		return amount
	default:
		return 0
	}
}
