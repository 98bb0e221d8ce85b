package damage

import (
	"slices"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// Defenses are the damage types a creature resists, is vulnerable to, or is
// immune to
type Defenses struct {
	Resistances     []Type `json:"resistances,omitempty"`
	Vulnerabilities []Type `json:"vulnerabilities,omitempty"`
	Immunities      []Type `json:"immunities,omitempty"`
}

func (d Defenses) Resists(t Type) bool      { return slices.Contains(d.Resistances, t) }
func (d Defenses) IsVulnerable(t Type) bool { return slices.Contains(d.Vulnerabilities, t) }
func (d Defenses) IsImmune(t Type) bool     { return slices.Contains(d.Immunities, t) }

// Clone deep copies the slices
func (d Defenses) Clone() Defenses {
	return Defenses{
		Resistances:     slices.Clone(d.Resistances),
		Vulnerabilities: slices.Clone(d.Vulnerabilities),
		Immunities:      slices.Clone(d.Immunities),
	}
}

// Validate rejects unknown damage types
func (d Defenses) Validate() error {
	for _, list := range [][]Type{d.Resistances, d.Vulnerabilities, d.Immunities} {
		for _, t := range list {
			if !t.Valid() {
				return errors.InvalidArgumentf("unknown damage type %q in defenses", t)
			}
		}
	}
	return nil
}
