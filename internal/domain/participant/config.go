package participant

import (
	"slices"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/conditions"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/damage"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/equipment"
	rulebook "github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/rulebook/dnd5e"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/multiclass"
)

// DefaultAbilityScore is the "average human" score used when a template or
// caller has no better value
const DefaultAbilityScore = 10

// DefaultAbilityScores is every ability at DefaultAbilityScore
var DefaultAbilityScores = shared.AbilityScores{
	Strength:     DefaultAbilityScore,
	Dexterity:    DefaultAbilityScore,
	Constitution: DefaultAbilityScore,
	Intelligence: DefaultAbilityScore,
	Wisdom:       DefaultAbilityScore,
	Charisma:     DefaultAbilityScore,
}

// DefaultClass is the class NewDefault builds
const DefaultClass = rulebook.ClassFighter

// BaseArmorClass is the unarmored AC before the DEX modifier
const BaseArmorClass = 10

// MaxChallengeLevel is the highest monster challenge rating
const MaxChallengeLevel = 30

// Config holds everything needed to build a participant. Zero values mean
// "derive it": HP from hit dice, AC from DEX, slots from the class table,
// save proficiencies from the first class.
type Config struct {
	ID             string
	Name           string
	Kind           Kind
	Abilities      shared.AbilityScores
	Classes        []rulebook.ClassLevel
	ChallengeLevel int

	HP         *shared.HitPoints
	ArmorClass int
	Defenses   damage.Defenses
	Conditions []conditions.Condition

	// SpellSlots overrides the derived pool, e.g. when restoring a snapshot
	SpellSlots *shared.SlotPool
	PactSlots  *shared.PactSlots

	Concentration      string
	FightingStyles     []rulebook.FightingStyle
	Feats              []rulebook.Feat
	SaveProficiencies  []shared.Attribute // added to the first class saves
	SkillProficiencies []shared.Skill
	SpellAbility       shared.Attribute
	MainHand           *equipment.Weapon
	OffHand            *equipment.Weapon
}

// New validates the config and builds a participant
func New(cfg *Config) (*Participant, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	kind := cfg.Kind
	if kind == "" {
		kind = KindCharacter
	}

	p := &Participant{
		ID:                 cfg.ID,
		Name:               cfg.Name,
		Kind:               kind,
		Abilities:          cfg.Abilities,
		Classes:            append([]rulebook.ClassLevel(nil), cfg.Classes...),
		ChallengeLevel:     cfg.ChallengeLevel,
		ArmorClass:         cfg.ArmorClass,
		Defenses:           cfg.Defenses.Clone(),
		Concentration:      cfg.Concentration,
		FightingStyles:     append([]rulebook.FightingStyle(nil), cfg.FightingStyles...),
		Feats:              append([]rulebook.Feat(nil), cfg.Feats...),
		SkillProficiencies: append([]shared.Skill(nil), cfg.SkillProficiencies...),
		SpellAbility:       cfg.SpellAbility,
		MainHand:           cfg.MainHand.Clone(),
		OffHand:            cfg.OffHand.Clone(),
	}

	// class checks come first so the derivations below can trust the list
	if err := p.validateIdentity(); err != nil {
		return nil, err
	}

	set, err := conditions.NewSet(cfg.Conditions...)
	if err != nil {
		return nil, err
	}
	p.Conditions = set

	p.SaveProficiencies = saveProficiencies(p.Classes, cfg.SaveProficiencies)

	if cfg.HP != nil {
		p.HP = *cfg.HP
	} else {
		maxHP := MaxHitPoints(p.Classes, p.Abilities.Modifier(shared.AttributeConstitution))
		p.HP = shared.HitPoints{Current: maxHP, Max: maxHP}
	}

	if p.ArmorClass == 0 {
		p.ArmorClass = BaseArmorClass + p.Abilities.Modifier(shared.AttributeDexterity)
	}

	if cfg.SpellSlots != nil {
		p.SpellSlots = *cfg.SpellSlots
	} else {
		p.SpellSlots = shared.NewSlotPool(multiclass.SlotMaximums(p.Classes))
	}

	if cfg.PactSlots != nil {
		p.PactSlots = *cfg.PactSlots
	} else {
		p.PactSlots = multiclass.PactSlots(p.Classes, shared.PactSlots{})
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// NewDefault builds a level 1 participant from the supplied scores. Callers
// without scores pass DefaultAbilityScores explicitly.
func NewDefault(id, name string, scores shared.AbilityScores) (*Participant, error) {
	return New(&Config{
		ID:        id,
		Name:      name,
		Kind:      KindCharacter,
		Abilities: scores,
		Classes:   []rulebook.ClassLevel{{Class: DefaultClass, Level: 1}},
	})
}

// MaxHitPoints is the full hit die at first level plus the rounded-up
// average for every level after, each level adding the CON modifier and
// gaining at least 1
func MaxHitPoints(levels []rulebook.ClassLevel, conMod int) int {
	total := 0
	first := true
	for _, cl := range levels {
		class, err := rulebook.GetClass(cl.Class)
		if err != nil {
			continue
		}
		for i := 0; i < cl.Level; i++ {
			gain := class.HitDie/2 + 1
			if first {
				gain = class.HitDie
				first = false
			}
			total += max(1, gain+conMod)
		}
	}
	return max(1, total)
}

func saveProficiencies(levels []rulebook.ClassLevel, extra []shared.Attribute) []shared.Attribute {
	var out []shared.Attribute
	if len(levels) > 0 {
		if class, err := rulebook.GetClass(levels[0].Class); err == nil {
			out = append(out, class.SavingThrows...)
		}
	}
	for _, attr := range extra {
		if !slices.Contains(out, attr) {
			out = append(out, attr)
		}
	}
	return out
}

func (p *Participant) validateIdentity() error {
	if p.ID == "" {
		return errors.InvalidArgument("participant id is required")
	}
	if p.Name == "" {
		return errors.InvalidArgument("participant name is required").WithMeta("participant_id", p.ID)
	}
	if !p.Kind.Valid() {
		return errors.InvalidArgumentf("unknown participant kind %q", p.Kind).WithMeta("participant_id", p.ID)
	}

	switch p.Kind {
	case KindCharacter:
		if err := rulebook.ValidateLevels(p.Classes); err != nil {
			return errors.Wrapf(err, "participant %s", p.ID).WithMeta("participant_id", p.ID)
		}
	case KindMonster:
		if len(p.Classes) > 0 {
			return errors.InvalidArgument("monsters do not take class levels").WithMeta("participant_id", p.ID)
		}
		if p.ChallengeLevel < 0 || p.ChallengeLevel > MaxChallengeLevel {
			return errors.InvalidArgumentf("challenge level %d out of range 0-%d", p.ChallengeLevel, MaxChallengeLevel).
				WithMeta("participant_id", p.ID)
		}
	}
	return nil
}

// Validate checks every field of the record
func (p *Participant) Validate() error {
	if p == nil {
		return errors.InvalidArgument("participant is required")
	}
	if err := p.validateIdentity(); err != nil {
		return err
	}

	wrap := func(err error, what string) error {
		return errors.Wrapf(err, "participant %s %s", p.ID, what).WithMeta("participant_id", p.ID)
	}

	if err := p.Abilities.Validate(); err != nil {
		return wrap(err, "abilities")
	}
	if err := p.HP.Validate(); err != nil {
		return wrap(err, "hit points")
	}
	if p.ArmorClass < 1 {
		return wrap(errors.InvalidArgumentf("armor class must be positive, got %d", p.ArmorClass), "armor class")
	}
	if err := p.Defenses.Validate(); err != nil {
		return wrap(err, "defenses")
	}
	if err := p.Conditions.Validate(); err != nil {
		return wrap(err, "conditions")
	}
	if err := p.SpellSlots.Validate(); err != nil {
		return wrap(err, "spell slots")
	}
	if err := p.PactSlots.Validate(); err != nil {
		return wrap(err, "pact slots")
	}
	for _, s := range p.FightingStyles {
		if !s.Valid() {
			return wrap(errors.InvalidArgumentf("unknown fighting style %q", s), "fighting styles")
		}
	}
	for _, f := range p.Feats {
		if !f.Valid() {
			return wrap(errors.InvalidArgumentf("unknown feat %q", f), "feats")
		}
	}
	for _, a := range p.SaveProficiencies {
		if _, err := shared.ParseAttribute(string(a)); err != nil {
			return wrap(err, "save proficiencies")
		}
	}
	for _, s := range p.SkillProficiencies {
		if !s.Valid() {
			return wrap(errors.InvalidArgumentf("unknown skill %q", s), "skill proficiencies")
		}
	}
	if p.SpellAbility != shared.AttributeNone {
		if _, err := shared.ParseAttribute(string(p.SpellAbility)); err != nil {
			return wrap(err, "spell ability")
		}
	}
	if p.MainHand != nil {
		if err := p.MainHand.Validate(); err != nil {
			return wrap(err, "main hand")
		}
	}
	if p.OffHand != nil {
		if err := p.OffHand.Validate(); err != nil {
			return wrap(err, "off hand")
		}
	}
	return nil
}
