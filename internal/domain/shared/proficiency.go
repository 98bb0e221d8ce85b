package shared

// ProficiencyBonus is floor((level-1)/4)+2. Monsters pass their challenge
// rating rounded down; anything below 1 gets the minimum bonus of 2.
func ProficiencyBonus(level int) int {
	if level < 1 {
		return 2
	}
	return (level-1)/4 + 2
}
