package damage

import (
	"strings"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// Type is a closed set of damage types
type Type string

const (
	TypeAcid        Type = "acid"
	TypeBludgeoning Type = "bludgeoning"
	TypeCold        Type = "cold"
	TypeFire        Type = "fire"
	TypeForce       Type = "force"
	TypeLightning   Type = "lightning"
	TypeNecrotic    Type = "necrotic"
	TypePiercing    Type = "piercing"
	TypePoison      Type = "poison"
	TypePsychic     Type = "psychic"
	TypeRadiant     Type = "radiant"
	TypeSlashing    Type = "slashing"
	TypeThunder     Type = "thunder"
)

// Types lists every damage type
var Types = []Type{
	TypeAcid, TypeBludgeoning, TypeCold, TypeFire, TypeForce, TypeLightning, TypeNecrotic,
	TypePiercing, TypePoison, TypePsychic, TypeRadiant, TypeSlashing, TypeThunder,
}

// Valid reports whether t is one of the known damage types
func (t Type) Valid() bool {
	switch t {
	case TypeAcid, TypeBludgeoning, TypeCold, TypeFire, TypeForce, TypeLightning, TypeNecrotic,
		TypePiercing, TypePoison, TypePsychic, TypeRadiant, TypeSlashing, TypeThunder:
		return true
	}
	return false
}

// ParseType converts an API or user key to a damage type. Unknown keys are
// an error rather than a silent default.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", errors.InvalidArgumentf("unknown damage type %q", s)
	}
	return t, nil
}
