package spells

import (
	"sort"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/conditions"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/damage"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

func dice(count, size int, t damage.Type) *damage.Damage {
	return &damage.Damage{DiceCount: count, DiceSize: size, DamageType: t}
}

func save(ability shared.Attribute, policy damage.SuccessPolicy) *Save {
	return &Save{Ability: ability, OnSuccess: policy}
}

var standard = map[string]*Spell{
	"fire-bolt": {
		Key: "fire-bolt", Name: "Fire Bolt", School: "evocation", CastingTime: CastingAction,
		Attack: AttackRanged, Damage: dice(1, 10, damage.TypeFire),
	},
	"eldritch-blast": {
		Key: "eldritch-blast", Name: "Eldritch Blast", School: "evocation", CastingTime: CastingAction,
		Attack: AttackRanged, Damage: dice(1, 10, damage.TypeForce),
	},
	"shocking-grasp": {
		Key: "shocking-grasp", Name: "Shocking Grasp", School: "evocation", CastingTime: CastingAction,
		Attack: AttackMelee, Damage: dice(1, 8, damage.TypeLightning),
	},
	"sacred-flame": {
		Key: "sacred-flame", Name: "Sacred Flame", School: "evocation", CastingTime: CastingAction,
		Save: save(shared.AttributeDexterity, damage.SuccessNone), Damage: dice(1, 8, damage.TypeRadiant),
	},
	"vicious-mockery": {
		Key: "vicious-mockery", Name: "Vicious Mockery", School: "enchantment", CastingTime: CastingAction,
		Save: save(shared.AttributeWisdom, damage.SuccessNone), Damage: dice(1, 4, damage.TypePsychic),
	},
	"magic-missile": {
		Key: "magic-missile", Name: "Magic Missile", Level: 1, School: "evocation", CastingTime: CastingAction,
		Damage: &damage.Damage{DiceCount: 3, DiceSize: 4, Bonus: 3, DamageType: damage.TypeForce}, UpcastDice: 1,
	},
	"burning-hands": {
		Key: "burning-hands", Name: "Burning Hands", Level: 1, School: "evocation", CastingTime: CastingAction,
		Save: save(shared.AttributeDexterity, damage.SuccessHalf), Damage: dice(3, 6, damage.TypeFire), UpcastDice: 1,
	},
	"guiding-bolt": {
		Key: "guiding-bolt", Name: "Guiding Bolt", Level: 1, School: "evocation", CastingTime: CastingAction,
		Attack: AttackRanged, Damage: dice(4, 6, damage.TypeRadiant), UpcastDice: 1,
	},
	"bless": {
		Key: "bless", Name: "Bless", Level: 1, School: "enchantment", CastingTime: CastingAction,
		Concentration: true,
	},
	"hunters-mark": {
		Key: "hunters-mark", Name: "Hunter's Mark", Level: 1, School: "divination", CastingTime: CastingBonusAction,
		Concentration: true,
	},
	"hex": {
		Key: "hex", Name: "Hex", Level: 1, School: "enchantment", CastingTime: CastingBonusAction,
		Concentration: true,
	},
	"shield": {
		Key: "shield", Name: "Shield", Level: 1, School: "abjuration", CastingTime: CastingReaction,
	},
	"misty-step": {
		Key: "misty-step", Name: "Misty Step", Level: 2, School: "conjuration", CastingTime: CastingBonusAction,
	},
	"shatter": {
		Key: "shatter", Name: "Shatter", Level: 2, School: "evocation", CastingTime: CastingAction,
		Save: save(shared.AttributeConstitution, damage.SuccessHalf), Damage: dice(3, 8, damage.TypeThunder), UpcastDice: 1,
	},
	"hold-person": {
		Key: "hold-person", Name: "Hold Person", Level: 2, School: "enchantment", CastingTime: CastingAction,
		Concentration: true, Save: save(shared.AttributeWisdom, damage.SuccessNone),
		OnFailedSave: []conditions.ConditionType{conditions.Paralyzed},
	},
	"fireball": {
		Key: "fireball", Name: "Fireball", Level: 3, School: "evocation", CastingTime: CastingAction,
		Save: save(shared.AttributeDexterity, damage.SuccessHalf), Damage: dice(8, 6, damage.TypeFire), UpcastDice: 1,
	},
	"spirit-guardians": {
		Key: "spirit-guardians", Name: "Spirit Guardians", Level: 3, School: "conjuration", CastingTime: CastingAction,
		Concentration: true, Save: save(shared.AttributeWisdom, damage.SuccessHalf), Damage: dice(3, 8, damage.TypeRadiant), UpcastDice: 1,
	},
	"haste": {
		Key: "haste", Name: "Haste", Level: 3, School: "transmutation", CastingTime: CastingAction,
		Concentration: true,
	},
	"ice-storm": {
		Key: "ice-storm", Name: "Ice Storm", Level: 4, School: "evocation", CastingTime: CastingAction,
		Save: save(shared.AttributeDexterity, damage.SuccessHalf), Damage: dice(4, 6, damage.TypeCold), UpcastDice: 1,
	},
	"cone-of-cold": {
		Key: "cone-of-cold", Name: "Cone of Cold", Level: 5, School: "evocation", CastingTime: CastingAction,
		Save: save(shared.AttributeConstitution, damage.SuccessHalf), Damage: dice(8, 8, damage.TypeCold), UpcastDice: 1,
	},
}

// Lookup returns a copy of a standard spell by key
func Lookup(key string) (*Spell, error) {
	s, ok := standard[key]
	if !ok {
		return nil, errors.NotFoundf("spell %q not found", key)
	}
	return s.Clone(), nil
}

// Keys lists the standard spells in sorted order
func Keys() []string {
	keys := make([]string, 0, len(standard))
	for k := range standard {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
