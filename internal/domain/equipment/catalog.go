package equipment

import (
	"sort"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/damage"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

func dmg(count, size int, t damage.Type) *damage.Damage {
	return &damage.Damage{DiceCount: count, DiceSize: size, DamageType: t}
}

func weapon(key, name string, cat Category, rng RangeType, d *damage.Damage, props ...Property) *Weapon {
	return &Weapon{Key: key, Name: name, Kind: KindWeapon, Category: cat, Range: rng, Damage: d, Properties: props}
}

var standard = map[string]*Weapon{
	"club":           weapon("club", "Club", CategorySimple, RangeMelee, dmg(1, 4, damage.TypeBludgeoning), PropertyLight),
	"dagger":         weapon("dagger", "Dagger", CategorySimple, RangeMelee, dmg(1, 4, damage.TypePiercing), PropertyFinesse, PropertyLight, PropertyThrown),
	"handaxe":        weapon("handaxe", "Handaxe", CategorySimple, RangeMelee, dmg(1, 6, damage.TypeSlashing), PropertyLight, PropertyThrown),
	"javelin":        weapon("javelin", "Javelin", CategorySimple, RangeMelee, dmg(1, 6, damage.TypePiercing), PropertyThrown),
	"mace":           weapon("mace", "Mace", CategorySimple, RangeMelee, dmg(1, 6, damage.TypeBludgeoning)),
	"quarterstaff":   withTwoHanded(weapon("quarterstaff", "Quarterstaff", CategorySimple, RangeMelee, dmg(1, 6, damage.TypeBludgeoning), PropertyVersatile), dmg(1, 8, damage.TypeBludgeoning)),
	"light-crossbow": weapon("light-crossbow", "Crossbow, light", CategorySimple, RangeRanged, dmg(1, 8, damage.TypePiercing), PropertyAmmunition, PropertyLoading, PropertyTwoHanded),
	"shortbow":       weapon("shortbow", "Shortbow", CategorySimple, RangeRanged, dmg(1, 6, damage.TypePiercing), PropertyAmmunition, PropertyTwoHanded),
	"battleaxe":      withTwoHanded(weapon("battleaxe", "Battleaxe", CategoryMartial, RangeMelee, dmg(1, 8, damage.TypeSlashing), PropertyVersatile), dmg(1, 10, damage.TypeSlashing)),
	"greataxe":       weapon("greataxe", "Greataxe", CategoryMartial, RangeMelee, dmg(1, 12, damage.TypeSlashing), PropertyHeavy, PropertyTwoHanded),
	"greatsword":     weapon("greatsword", "Greatsword", CategoryMartial, RangeMelee, dmg(2, 6, damage.TypeSlashing), PropertyHeavy, PropertyTwoHanded),
	"longsword":      withTwoHanded(weapon("longsword", "Longsword", CategoryMartial, RangeMelee, dmg(1, 8, damage.TypeSlashing), PropertyVersatile), dmg(1, 10, damage.TypeSlashing)),
	"rapier":         weapon("rapier", "Rapier", CategoryMartial, RangeMelee, dmg(1, 8, damage.TypePiercing), PropertyFinesse),
	"scimitar":       weapon("scimitar", "Scimitar", CategoryMartial, RangeMelee, dmg(1, 6, damage.TypeSlashing), PropertyFinesse, PropertyLight),
	"shortsword":     weapon("shortsword", "Shortsword", CategoryMartial, RangeMelee, dmg(1, 6, damage.TypePiercing), PropertyFinesse, PropertyLight),
	"warhammer":      withTwoHanded(weapon("warhammer", "Warhammer", CategoryMartial, RangeMelee, dmg(1, 8, damage.TypeBludgeoning), PropertyVersatile), dmg(1, 10, damage.TypeBludgeoning)),
	"longbow":        weapon("longbow", "Longbow", CategoryMartial, RangeRanged, dmg(1, 8, damage.TypePiercing), PropertyAmmunition, PropertyHeavy, PropertyTwoHanded),
	"hand-crossbow":  weapon("hand-crossbow", "Crossbow, hand", CategoryMartial, RangeRanged, dmg(1, 6, damage.TypePiercing), PropertyAmmunition, PropertyLight, PropertyLoading),
	"shield":         {Key: "shield", Name: "Shield", Kind: KindShield},
	"arcane-focus":   {Key: "arcane-focus", Name: "Arcane Focus", Kind: KindFocus},
	"holy-symbol":    {Key: "holy-symbol", Name: "Holy Symbol", Kind: KindFocus},
}

func withTwoHanded(w *Weapon, d *damage.Damage) *Weapon {
	w.TwoHandedDamage = d
	return w
}

// Lookup returns a copy of a standard item by key
func Lookup(key string) (*Weapon, error) {
	w, ok := standard[key]
	if !ok {
		return nil, errors.NotFoundf("item %q not found", key).WithMeta("key", key)
	}
	return w.Clone(), nil
}

// Keys lists the standard item keys in sorted order
func Keys() []string {
	keys := make([]string, 0, len(standard))
	for k := range standard {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
