package participant

import (
	"slices"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/conditions"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/damage"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/equipment"
	rulebook "github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/rulebook/dnd5e"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
)

// Kind separates player characters from monsters
type Kind string

const (
	KindCharacter Kind = "character"
	KindMonster   Kind = "monster"
)

func (k Kind) Valid() bool {
	return k == KindCharacter || k == KindMonster
}

// Participant is one combatant. It is a value record: rules code clones it,
// changes the clone and hands the clone back.
type Participant struct {
	ID                 string                   `json:"id"`
	Name               string                   `json:"name"`
	Kind               Kind                     `json:"kind"`
	Abilities          shared.AbilityScores     `json:"abilities"`
	Classes            []rulebook.ClassLevel    `json:"classes,omitempty"`
	ChallengeLevel     int                      `json:"challenge_level,omitempty"` // monsters only
	HP                 shared.HitPoints         `json:"hp"`
	ArmorClass         int                      `json:"armor_class"`
	Defenses           damage.Defenses          `json:"defenses"`
	Conditions         conditions.Set           `json:"conditions,omitempty"`
	SpellSlots         shared.SlotPool          `json:"spell_slots"`
	PactSlots          shared.PactSlots         `json:"pact_slots"`
	Concentration      string                   `json:"concentration,omitempty"` // spell key
	Economy            shared.ActionEconomy     `json:"economy"`
	FightingStyles     []rulebook.FightingStyle `json:"fighting_styles,omitempty"`
	Feats              []rulebook.Feat          `json:"feats,omitempty"`
	SaveProficiencies  []shared.Attribute       `json:"save_proficiencies,omitempty"`
	SkillProficiencies []shared.Skill           `json:"skill_proficiencies,omitempty"`
	SpellAbility       shared.Attribute         `json:"spell_ability,omitempty"` // overrides the class ability
	MainHand           *equipment.Weapon        `json:"main_hand,omitempty"`
	OffHand            *equipment.Weapon        `json:"off_hand,omitempty"`
	Dead               bool                     `json:"dead,omitempty"`
	AppliedActions     []string                 `json:"applied_actions,omitempty"`
}

// GetID implements core.Entity
func (p *Participant) GetID() string {
	return p.ID
}

// GetType implements core.Entity
func (p *Participant) GetType() string {
	return string(p.Kind)
}

func (p *Participant) IsMonster() bool {
	return p.Kind == KindMonster
}

// Level is the total class level. Monsters report their challenge level.
func (p *Participant) Level() int {
	if p.IsMonster() {
		return p.ChallengeLevel
	}
	return rulebook.TotalLevel(p.Classes)
}

// ProficiencyBonus derives from total level, or challenge level for monsters
func (p *Participant) ProficiencyBonus() int {
	return shared.ProficiencyBonus(p.Level())
}

func (p *Participant) AbilityModifier(attr shared.Attribute) int {
	return p.Abilities.Modifier(attr)
}

func (p *Participant) HasFightingStyle(style rulebook.FightingStyle) bool {
	return slices.Contains(p.FightingStyles, style)
}

func (p *Participant) HasFeat(feat rulebook.Feat) bool {
	return slices.Contains(p.Feats, feat)
}

func (p *Participant) IsProficientSave(attr shared.Attribute) bool {
	return slices.Contains(p.SaveProficiencies, attr)
}

func (p *Participant) IsProficientSkill(skill shared.Skill) bool {
	return slices.Contains(p.SkillProficiencies, skill)
}

func (p *Participant) IsConcentrating() bool {
	return p.Concentration != ""
}

// HasApplied reports whether a delta for the action was already applied
func (p *Participant) HasApplied(actionID string) bool {
	return actionID != "" && slices.Contains(p.AppliedActions, actionID)
}

// IsDefeated is true once a monster reaches 0 HP or anyone dies
func (p *Participant) IsDefeated() bool {
	return p.Dead || (p.IsMonster() && p.HP.IsDown())
}

// SpellcastingAbility returns the override if set, otherwise the ability of
// the first casting class. AttributeNone means the participant cannot cast.
func (p *Participant) SpellcastingAbility() shared.Attribute {
	if p.SpellAbility != shared.AttributeNone {
		return p.SpellAbility
	}
	for _, cl := range p.Classes {
		class, err := rulebook.GetClass(cl.Class)
		if err != nil || !class.IsCaster() {
			continue
		}
		return class.SpellcastingAbility
	}
	return shared.AttributeNone
}

// Clone deep copies the participant
func (p *Participant) Clone() *Participant {
	if p == nil {
		return nil
	}
	out := *p
	out.Classes = slices.Clone(p.Classes)
	out.Defenses = p.Defenses.Clone()
	out.Conditions = p.Conditions.Clone()
	out.FightingStyles = slices.Clone(p.FightingStyles)
	out.Feats = slices.Clone(p.Feats)
	out.SaveProficiencies = slices.Clone(p.SaveProficiencies)
	out.SkillProficiencies = slices.Clone(p.SkillProficiencies)
	out.MainHand = p.MainHand.Clone()
	out.OffHand = p.OffHand.Clone()
	out.AppliedActions = slices.Clone(p.AppliedActions)
	return &out
}
