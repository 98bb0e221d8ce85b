package damage

// Result describes how defenses changed a raw damage amount
type Result struct {
	Raw        int  `json:"raw"`
	Final      int  `json:"final"`
	Type       Type `json:"type"`
	Immune     bool `json:"immune,omitempty"`
	Resisted   bool `json:"resisted,omitempty"`
	Vulnerable bool `json:"vulnerable,omitempty"`
}

// Calculate applies immunity, resistance and vulnerability for one damage
// type. Immunity wins outright. Resistance and vulnerability together cancel
// to the raw amount. Resistance alone halves rounding down.
func Calculate(amount int, t Type, defenses Defenses) Result {
	result := Result{
		Raw:        max(0, amount),
		Type:       t,
		Immune:     defenses.IsImmune(t),
		Resisted:   defenses.Resists(t),
		Vulnerable: defenses.IsVulnerable(t),
	}

	switch {
	case result.Immune:
		result.Final = 0
	case result.Resisted && result.Vulnerable:
		result.Final = result.Raw
	case result.Resisted:
		result.Final = result.Raw / 2
	case result.Vulnerable:
		result.Final = result.Raw * 2
	default:
		result.Final = result.Raw
	}

	return result
}
