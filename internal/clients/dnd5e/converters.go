package dnd5e

import (
	"log"
	"strings"

	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/dice"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/damage"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/equipment"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/spells"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

func apiWeaponToWeapon(input *apiEntities.Weapon) (*equipment.Weapon, error) {
	if input == nil {
		return nil, errors.InvalidArgument("weapon is required")
	}

	category, err := equipment.ParseCategory(input.WeaponCategory)
	if err != nil {
		return nil, errors.Wrapf(err, "weapon %s", input.Key)
	}
	rng, err := equipment.ParseRange(input.WeaponRange)
	if err != nil {
		return nil, errors.Wrapf(err, "weapon %s", input.Key)
	}

	w := &equipment.Weapon{
		Key:      input.Key,
		Name:     input.Name,
		Kind:     equipment.KindWeapon,
		Category: category,
		Range:    rng,
	}

	for _, ref := range input.Properties {
		if ref == nil {
			continue
		}
		prop, err := equipment.ParseProperty(ref.Key)
		if err != nil {
			// special and similar flags carry no combat rule here
			log.Printf("[DND5E] Ignoring property %s on %s", ref.Key, input.Key)
			continue
		}
		w.Properties = append(w.Properties, prop)
	}

	w.Damage, err = apiDamageToDamage(input.Damage)
	if err != nil {
		return nil, errors.Wrapf(err, "weapon %s", input.Key)
	}
	if input.TwoHandedDamage != nil {
		w.TwoHandedDamage, err = apiDamageToDamage(input.TwoHandedDamage)
		if err != nil {
			return nil, errors.Wrapf(err, "weapon %s two-handed", input.Key)
		}
	}

	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

func apiDamageToDamage(input *apiEntities.Damage) (*damage.Damage, error) {
	if input == nil {
		return nil, errors.InvalidArgument("damage is required")
	}
	if input.DamageType == nil {
		return nil, errors.InvalidArgumentf("damage %s has no type", input.DamageDice)
	}

	damageType, err := damage.ParseType(refKey(input.DamageType))
	if err != nil {
		return nil, err
	}
	return damage.Parse(normalizeNotation(input.DamageDice), damageType)
}

// refKey prefers the index key and falls back to the display name
func refKey(ref *apiEntities.ReferenceItem) string {
	if ref.Key != "" {
		return ref.Key
	}
	return ref.Name
}

// normalizeNotation strips the spaces the API puts around bonuses ("3d4 + 3")
func normalizeNotation(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

func apiSpellToSpell(input *apiEntities.Spell) (*spells.Spell, error) {
	if input == nil {
		return nil, errors.InvalidArgument("spell is required")
	}

	castingTime, err := spells.ParseCastingTime(input.CastingTime)
	if err != nil {
		return nil, errors.Wrapf(err, "spell %s", input.Key)
	}

	s := &spells.Spell{
		Key:           input.Key,
		Name:          input.Name,
		Level:         input.SpellLevel,
		CastingTime:   castingTime,
		Concentration: input.Concentration,
		Ritual:        input.Ritual,
	}
	if input.SpellSchool != nil {
		s.School = strings.ToLower(input.SpellSchool.Name)
	}

	if input.SpellDamage != nil {
		d, upcast, err := apiSpellDamage(input.SpellLevel, input.SpellDamage)
		if err != nil {
			return nil, errors.Wrapf(err, "spell %s", input.Key)
		}
		s.Damage = d
		s.UpcastDice = upcast
	}

	switch {
	case input.DC != nil && input.DC.DCType != nil:
		ability, err := shared.ParseAttribute(input.DC.DCType.Name)
		if err != nil {
			return nil, errors.Wrapf(err, "spell %s save", input.Key)
		}
		s.Save = &spells.Save{Ability: ability, OnSuccess: parseSuccess(input.DC.DCSuccess)}
	case s.Damage != nil:
		// The API does not say how a spell targets. Damage without a save
		// is treated as a spell attack.
		s.Attack = spells.AttackRanged
		if strings.EqualFold(strings.TrimSpace(input.Range), "touch") {
			s.Attack = spells.AttackMelee
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// apiSpellDamage reads the damage at the spell's own level and derives how
// many dice each higher slot adds. Cantrips start from the first entry.
func apiSpellDamage(level int, input *apiEntities.SpellDamage) (*damage.Damage, int, error) {
	if input.SpellDamageAtSlotLevel == nil {
		return nil, 0, nil
	}
	if input.SpellDamageType == nil {
		return nil, 0, errors.InvalidArgument("spell damage has no type")
	}
	damageType, err := damage.ParseType(refKey(input.SpellDamageType))
	if err != nil {
		return nil, 0, err
	}

	base := max(level, 1)
	notation := slotNotation(input.SpellDamageAtSlotLevel, base)
	if notation == "" {
		return nil, 0, nil
	}
	d, err := damage.Parse(normalizeNotation(notation), damageType)
	if err != nil {
		return nil, 0, err
	}

	upcast := 0
	if next := slotNotation(input.SpellDamageAtSlotLevel, base+1); next != "" {
		expr, err := dice.ParseExpression(normalizeNotation(next))
		if err == nil && expr.Sides == d.DiceSize && expr.Count > d.DiceCount {
			upcast = expr.Count - d.DiceCount
		}
	}
	return d, upcast, nil
}

func slotNotation(slots *apiEntities.SpellDamageAtSlotLevel, level int) string {
	switch level {
	case 1:
		return slots.FirstLevel
	case 2:
		return slots.SecondLevel
	case 3:
		return slots.ThirdLevel
	case 4:
		return slots.FourthLevel
	case 5:
		return slots.FifthLevel
	case 6:
		return slots.SixthLevel
	case 7:
		return slots.SeventhLevel
	case 8:
		return slots.EighthLevel
	case 9:
		return slots.NinthLevel
	default:
		return ""
	}
}

func parseSuccess(s string) damage.SuccessPolicy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "half":
		return damage.SuccessHalf
	default:
		return damage.SuccessNone
	}
}

// apiMonsterToTemplate keeps the monster's actions that deal damage as
// attacks. Ability scores are not loaded, so each attack's bonus is folded
// into the weapon so the stat block's to-hit is preserved.
func apiMonsterToTemplate(input *apiEntities.Monster) (*participant.Template, error) {
	if input == nil {
		return nil, errors.InvalidArgument("monster is required")
	}

	level := int(input.ChallengeRating)
	t := &participant.Template{
		Key:            input.Key,
		Name:           input.Name,
		ChallengeLevel: level,
		ArmorClass:     int(input.ArmorClass),
		HitPoints:      int(input.HitPoints),
	}

	proficiency := shared.ProficiencyBonus(level)
	for _, action := range input.MonsterActions {
		if action == nil || len(action.Damage) == 0 {
			continue
		}
		d, err := apiDamageToDamage(action.Damage[0])
		if err != nil {
			log.Printf("[DND5E] Skipping action %s on %s: %v", action.Name, input.Key, err)
			continue
		}

		rng := equipment.RangeMelee
		if strings.Contains(strings.ToLower(action.Description), "ranged weapon attack") {
			rng = equipment.RangeRanged
		}
		t.Attacks = append(t.Attacks, &equipment.Weapon{
			Key:         actionKey(action.Name),
			Name:        action.Name,
			Kind:        equipment.KindWeapon,
			Range:       rng,
			Damage:      d,
			AttackBonus: int(action.AttackBonus) - proficiency,
		})
	}

	if t.ArmorClass <= 0 || t.HitPoints <= 0 {
		return nil, errors.InvalidArgumentf("monster %s has no armor class or hit points", input.Key)
	}
	return t, nil
}

func actionKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
