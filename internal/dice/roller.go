package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller is the only source of randomness the engine uses. Tests swap in
// scripted rollers; simulations use seeded ones.
type Roller interface {
	// Roll sums count dice of the given size plus bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// RollWithAdvantage rolls one die twice and keeps the higher face
	RollWithAdvantage(sides, bonus int) (*RollResult, error)

	// RollWithDisadvantage rolls one die twice and keeps the lower face
	RollWithDisadvantage(sides, bonus int) (*RollResult, error)
}

// RollD20 rolls the primary die of an attack, save or check in the given mode
func RollD20(r Roller, bonus int, mode Mode) (*RollResult, error) {
	switch mode {
	case ModeAdvantage:
		return r.RollWithAdvantage(D20, bonus)
	case ModeDisadvantage:
		return r.RollWithDisadvantage(D20, bonus)
	default:
		return r.Roll(1, D20, bonus)
	}
}
