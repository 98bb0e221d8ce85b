package equipment

import (
	"slices"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/damage"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

const (
	// WeaponKeyShortsword is the key for shortsword weapons
	WeaponKeyShortsword = "shortsword"
)

// Weapon is anything held in a hand. Shields and foci use the same record
// with a non-weapon Kind so off-hand rules can tell them apart.
type Weapon struct {
	Key             string         `json:"key"`
	Name            string         `json:"name"`
	Kind            Kind           `json:"kind"`
	Category        Category       `json:"category,omitempty"`
	Range           RangeType      `json:"range,omitempty"`
	Properties      []Property     `json:"properties,omitempty"`
	Damage          *damage.Damage `json:"damage,omitempty"`
	TwoHandedDamage *damage.Damage `json:"two_handed_damage,omitempty"`
	AttackBonus     int            `json:"attack_bonus,omitempty"` // magic bonus to hit
	DamageBonus     int            `json:"damage_bonus,omitempty"` // magic bonus to damage
}

func (w *Weapon) IsWeapon() bool {
	return w.Kind == KindWeapon || w.Kind == ""
}

func (w *Weapon) IsRanged() bool {
	return w.Range == RangeRanged
}

func (w *Weapon) IsMelee() bool {
	return w.Range == RangeMelee
}

func (w *Weapon) IsSimple() bool {
	return w.Category == CategorySimple
}

func (w *Weapon) IsLight() bool {
	return w.HasProperty(PropertyLight)
}

func (w *Weapon) IsTwoHanded() bool {
	return w.HasProperty(PropertyTwoHanded)
}

func (w *Weapon) IsHeavy() bool {
	return w.HasProperty(PropertyHeavy)
}

func (w *Weapon) IsFinesse() bool {
	return w.HasProperty(PropertyFinesse)
}

// IsMonkWeapon returns true if this weapon can be used with monk Martial Arts
// Monk weapons are shortswords and any simple melee weapons that don't have
// the two-handed or heavy property
func (w *Weapon) IsMonkWeapon() bool {
	if w.Key == WeaponKeyShortsword || w.HasProperty(PropertyMonk) {
		return true
	}
	return w.IsSimple() && w.IsMelee() && !w.IsTwoHanded() && !w.IsHeavy()
}

// HasProperty checks if the weapon has a specific property
func (w *Weapon) HasProperty(prop Property) bool {
	return slices.Contains(w.Properties, prop)
}

// Clone deep copies the weapon
func (w *Weapon) Clone() *Weapon {
	if w == nil {
		return nil
	}
	out := *w
	out.Properties = slices.Clone(w.Properties)
	if w.Damage != nil {
		d := *w.Damage
		out.Damage = &d
	}
	if w.TwoHandedDamage != nil {
		d := *w.TwoHandedDamage
		out.TwoHandedDamage = &d
	}
	return &out
}

// Validate checks the record is complete enough to attack with
func (w *Weapon) Validate() error {
	if w == nil {
		return errors.InvalidArgument("weapon is required")
	}
	if w.Key == "" {
		return errors.InvalidArgument("weapon key is required")
	}
	switch w.Kind {
	case KindShield, KindFocus:
		return nil
	case KindWeapon, "":
	default:
		return errors.InvalidArgumentf("unknown item kind %q", w.Kind)
	}
	if w.Range != RangeMelee && w.Range != RangeRanged {
		return errors.InvalidArgumentf("weapon %s has unknown range %q", w.Key, w.Range)
	}
	for _, p := range w.Properties {
		if !p.Valid() {
			return errors.InvalidArgumentf("weapon %s has unknown property %q", w.Key, p)
		}
	}
	if err := w.Damage.Validate(); err != nil {
		return errors.Wrapf(err, "weapon %s", w.Key)
	}
	return nil
}
