package participant

import (
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/damage"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/equipment"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// Template is a monster stat block as loaded from a catalog. Abilities may be
// partial; FromTemplate fills the gaps with DefaultAbilityScore.
type Template struct {
	Key                string
	Name               string
	ChallengeLevel     int
	ArmorClass         int
	HitPoints          int
	Abilities          map[shared.Attribute]int
	Defenses           damage.Defenses
	SaveProficiencies  []shared.Attribute
	SkillProficiencies []shared.Skill
	// Attacks are natural or wielded weapons; the first one goes in the main hand
	Attacks []*equipment.Weapon
}

// FromTemplate builds a monster participant with the given id
func FromTemplate(t *Template, id string) (*Participant, error) {
	if t == nil {
		return nil, errors.InvalidArgument("template is required")
	}

	scores := DefaultAbilityScores
	for attr, score := range t.Abilities {
		if _, err := shared.ParseAttribute(string(attr)); err != nil {
			return nil, errors.Wrapf(err, "template %s", t.Key)
		}
		scores = scores.With(attr, score)
	}

	name := t.Name
	if name == "" {
		name = t.Key
	}

	cfg := &Config{
		ID:                 id,
		Name:               name,
		Kind:               KindMonster,
		Abilities:          scores,
		ChallengeLevel:     t.ChallengeLevel,
		ArmorClass:         t.ArmorClass,
		Defenses:           t.Defenses,
		SaveProficiencies:  t.SaveProficiencies,
		SkillProficiencies: t.SkillProficiencies,
	}
	if t.HitPoints > 0 {
		cfg.HP = &shared.HitPoints{Current: t.HitPoints, Max: t.HitPoints}
	}
	if len(t.Attacks) > 0 {
		cfg.MainHand = t.Attacks[0]
	}

	p, err := New(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s from template", t.Key)
	}
	return p, nil
}
