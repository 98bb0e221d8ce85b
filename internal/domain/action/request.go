package action

import (
	"strings"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/dice"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// Type is a closed set of actions the engine resolves
type Type string

const (
	TypeAttack        Type = "attack"
	TypeCastSpell     Type = "cast_spell"
	TypeOffHandAttack Type = "off_hand_attack"
	TypeSave          Type = "save"
	TypeSkillCheck    Type = "skill_check"
)

func (t Type) Valid() bool {
	switch t {
	case TypeAttack, TypeCastSpell, TypeOffHandAttack, TypeSave, TypeSkillCheck:
		return true
	}
	return false
}

// ParseType converts a key such as "attack" or "cast-spell"
func ParseType(s string) (Type, error) {
	t := Type(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !t.Valid() {
		return "", errors.InvalidArgumentf("unknown action type %q", s)
	}
	return t, nil
}

// Request is one discrete action submitted by the orchestrator
type Request struct {
	ID        string           `json:"id"`
	Type      Type             `json:"type"`
	ActorID   string           `json:"actor_id"`
	TargetID  string           `json:"target_id,omitempty"`
	WeaponKey string           `json:"weapon_key,omitempty"`
	SpellKey  string           `json:"spell_key,omitempty"`
	SlotLevel int              `json:"slot_level,omitempty"`
	UsePact   bool             `json:"use_pact,omitempty"`
	Ability   shared.Attribute `json:"ability,omitempty"` // saves
	Skill     shared.Skill     `json:"skill,omitempty"`   // skill checks
	DC        int              `json:"dc,omitempty"`      // saves and skill checks
	Distance  int              `json:"distance,omitempty"`
	Roll      dice.Override    `json:"roll"`
}

// Validate checks the fields each action type needs
func (r *Request) Validate() error {
	if r == nil {
		return errors.InvalidAction("action request is required")
	}
	if !r.Type.Valid() {
		return errors.InvalidActionf("unknown action type %q", r.Type)
	}
	if r.ActorID == "" {
		return errors.InvalidAction("actor is required")
	}

	switch r.Type {
	case TypeAttack, TypeOffHandAttack:
		if r.TargetID == "" {
			return errors.InvalidActionf("%s requires a target", r.Type)
		}
	case TypeCastSpell:
		if r.SpellKey == "" {
			return errors.InvalidAction("cast_spell requires a spell")
		}
		if r.SlotLevel < 0 || r.SlotLevel > shared.MaxSpellLevel {
			return errors.InvalidActionf("slot level %d out of range 0-%d", r.SlotLevel, shared.MaxSpellLevel).
				WithMeta("slot_level", r.SlotLevel)
		}
	case TypeSave:
		if _, err := shared.ParseAttribute(string(r.Ability)); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidAction, "save requires an ability")
		}
		if r.DC < 1 {
			return errors.InvalidAction("save requires a DC")
		}
	case TypeSkillCheck:
		if !r.Skill.Valid() {
			return errors.InvalidActionf("unknown skill %q", r.Skill)
		}
		if r.DC < 1 {
			return errors.InvalidAction("skill check requires a DC")
		}
	}
	return nil
}
