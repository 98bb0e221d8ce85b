package spells

import (
	"slices"
	"strings"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/conditions"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/damage"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// CastingTime is which part of the action economy a spell spends
type CastingTime string

const (
	CastingAction      CastingTime = "action"
	CastingBonusAction CastingTime = "bonus_action"
	CastingReaction    CastingTime = "reaction"
)

// AttackType is how a spell targets
type AttackType string

const (
	AttackNone   AttackType = ""
	AttackMelee  AttackType = "melee"
	AttackRanged AttackType = "ranged"
)

// Save is the saving throw a spell forces
type Save struct {
	Ability   shared.Attribute     `json:"ability"`
	OnSuccess damage.SuccessPolicy `json:"on_success"`
}

// Spell represents a D&D 5e spell as far as combat resolution needs it
type Spell struct {
	Key           string         `json:"key"`
	Name          string         `json:"name"`
	Level         int            `json:"level"` // 0 for cantrips
	School        string         `json:"school"`
	CastingTime   CastingTime    `json:"casting_time"`
	Concentration bool           `json:"concentration"`
	Ritual        bool           `json:"ritual"`
	Attack        AttackType     `json:"attack,omitempty"`
	Save          *Save          `json:"save,omitempty"`
	Damage        *damage.Damage `json:"damage,omitempty"`
	// UpcastDice is the number of extra damage dice per slot level above Level
	UpcastDice int `json:"upcast_dice,omitempty"`
	// OnFailedSave are conditions a target gains when it fails the save
	OnFailedSave []conditions.ConditionType `json:"on_failed_save,omitempty"`
}

func (s *Spell) IsCantrip() bool {
	return s.Level == 0
}

func (s *Spell) IsAttack() bool {
	return s.Attack != AttackNone
}

// DamageAt returns the damage for a cast. Leveled spells add UpcastDice per
// slot level above their base; cantrips gain a die at character levels 5,
// 11 and 17. Returns nil for spells that deal no damage.
func (s *Spell) DamageAt(slotLevel, characterLevel int) *damage.Damage {
	if s.Damage == nil {
		return nil
	}
	if s.IsCantrip() {
		return s.Damage.WithExtraDice((cantripDice(characterLevel) - 1) * s.Damage.DiceCount)
	}
	extra := 0
	if slotLevel > s.Level {
		extra = (slotLevel - s.Level) * s.UpcastDice
	}
	return s.Damage.WithExtraDice(extra)
}

func cantripDice(level int) int {
	switch {
	case level >= 17:
		return 4
	case level >= 11:
		return 3
	case level >= 5:
		return 2
	default:
		return 1
	}
}

// Clone deep copies the spell
func (s *Spell) Clone() *Spell {
	if s == nil {
		return nil
	}
	out := *s
	if s.Save != nil {
		save := *s.Save
		out.Save = &save
	}
	if s.Damage != nil {
		d := *s.Damage
		out.Damage = &d
	}
	out.OnFailedSave = slices.Clone(s.OnFailedSave)
	return &out
}

// Validate checks the spell can be cast and resolved
func (s *Spell) Validate() error {
	if s == nil {
		return errors.InvalidArgument("spell is required")
	}
	if s.Key == "" {
		return errors.InvalidArgument("spell key is required")
	}
	if s.Level < 0 || s.Level > shared.MaxSpellLevel {
		return errors.InvalidArgumentf("spell %s level %d out of range 0-%d", s.Key, s.Level, shared.MaxSpellLevel)
	}
	switch s.CastingTime {
	case CastingAction, CastingBonusAction, CastingReaction:
	default:
		return errors.InvalidArgumentf("spell %s has unknown casting time %q", s.Key, s.CastingTime)
	}
	switch s.Attack {
	case AttackNone, AttackMelee, AttackRanged:
	default:
		return errors.InvalidArgumentf("spell %s has unknown attack type %q", s.Key, s.Attack)
	}
	if s.Save != nil {
		if s.IsAttack() {
			return errors.InvalidArgumentf("spell %s cannot both attack and force a save", s.Key)
		}
		if _, err := shared.ParseAttribute(string(s.Save.Ability)); err != nil {
			return errors.Wrapf(err, "spell %s save", s.Key)
		}
		if !s.Save.OnSuccess.Valid() {
			return errors.InvalidArgumentf("spell %s has unknown save policy %q", s.Key, s.Save.OnSuccess)
		}
	}
	if s.Damage != nil {
		if err := s.Damage.Validate(); err != nil {
			return errors.Wrapf(err, "spell %s", s.Key)
		}
	}
	for _, c := range s.OnFailedSave {
		if !c.Valid() {
			return errors.InvalidArgumentf("spell %s applies unknown condition %q", s.Key, c)
		}
	}
	if len(s.OnFailedSave) > 0 && s.Save == nil {
		return errors.InvalidArgumentf("spell %s applies conditions without a save", s.Key)
	}
	if s.UpcastDice < 0 {
		return errors.InvalidArgumentf("spell %s upcast dice cannot be negative", s.Key)
	}
	return nil
}

// ParseCastingTime maps API strings such as "1 action" or "1 bonus action"
func ParseCastingTime(s string) (CastingTime, error) {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "bonus"):
		return CastingBonusAction, nil
	case strings.Contains(lower, "reaction"):
		return CastingReaction, nil
	case strings.Contains(lower, "action"):
		return CastingAction, nil
	default:
		return "", errors.InvalidArgumentf("unsupported casting time %q", s)
	}
}
