package participant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/conditions"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/damage"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/equipment"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	rulebook "github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/rulebook/dnd5e"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

func fighterConfig() *participant.Config {
	longsword, _ := equipment.Lookup("longsword")
	return &participant.Config{
		ID:   "aria",
		Name: "Aria",
		Abilities: shared.AbilityScores{
			Strength: 16, Dexterity: 12, Constitution: 14, Intelligence: 10, Wisdom: 10, Charisma: 8,
		},
		Classes:  []rulebook.ClassLevel{{Class: rulebook.ClassFighter, Level: 5}},
		MainHand: longsword,
	}
}

func TestNew_DerivesDefaults(t *testing.T) {
	p, err := participant.New(fighterConfig())
	require.NoError(t, err)

	assert.Equal(t, participant.KindCharacter, p.Kind)
	assert.Equal(t, 5, p.Level())
	assert.Equal(t, 3, p.ProficiencyBonus())
	assert.Equal(t, 11, p.ArmorClass, "10 + DEX 1")
	// 10 + 2, then 4 levels of 6 + 2
	assert.Equal(t, shared.HitPoints{Current: 44, Max: 44}, p.HP)
	assert.ElementsMatch(t, []shared.Attribute{shared.AttributeStrength, shared.AttributeConstitution}, p.SaveProficiencies)
	assert.Zero(t, p.SpellSlots.Total())
	assert.Equal(t, shared.AttributeNone, p.SpellcastingAbility())
}

func TestNew_CasterGetsSlots(t *testing.T) {
	p, err := participant.New(&participant.Config{
		ID:        "mira",
		Name:      "Mira",
		Abilities: participant.DefaultAbilityScores.With(shared.AttributeIntelligence, 16),
		Classes:   []rulebook.ClassLevel{{Class: rulebook.ClassWizard, Level: 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, shared.Slot{Max: 4, Current: 4}, p.SpellSlots.Get(1))
	assert.Equal(t, shared.Slot{Max: 2, Current: 2}, p.SpellSlots.Get(2))
	assert.Equal(t, shared.AttributeIntelligence, p.SpellcastingAbility())
}

func TestNew_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *participant.Config)
	}{
		{"missing id", func(cfg *participant.Config) { cfg.ID = "" }},
		{"missing name", func(cfg *participant.Config) { cfg.Name = "" }},
		{"unknown kind", func(cfg *participant.Config) { cfg.Kind = "ghost" }},
		{"score too high", func(cfg *participant.Config) { cfg.Abilities.Strength = 31 }},
		{"score too low", func(cfg *participant.Config) { cfg.Abilities.Wisdom = 0 }},
		{"no classes", func(cfg *participant.Config) { cfg.Classes = nil }},
		{"total level above 20", func(cfg *participant.Config) {
			cfg.Classes = append(cfg.Classes, rulebook.ClassLevel{Class: rulebook.ClassWizard, Level: 16})
		}},
		{"current hp above max", func(cfg *participant.Config) {
			cfg.HP = &shared.HitPoints{Current: 12, Max: 10}
		}},
		{"negative temp hp", func(cfg *participant.Config) {
			cfg.HP = &shared.HitPoints{Current: 10, Max: 10, Temporary: -1}
		}},
		{"unknown damage type", func(cfg *participant.Config) {
			cfg.Defenses = damage.Defenses{Resistances: []damage.Type{"sonic"}}
		}},
		{"unknown condition", func(cfg *participant.Config) {
			cfg.Conditions = []conditions.Condition{{Type: "dazed"}}
		}},
		{"unknown fighting style", func(cfg *participant.Config) {
			cfg.FightingStyles = []rulebook.FightingStyle{"berserk"}
		}},
		{"unknown feat", func(cfg *participant.Config) { cfg.Feats = []rulebook.Feat{"sentinel-ish"} }},
		{"slots current above max", func(cfg *participant.Config) {
			pool := shared.SlotPool{{Max: 1, Current: 2}}
			cfg.SpellSlots = &pool
		}},
		{"monster with classes", func(cfg *participant.Config) { cfg.Kind = participant.KindMonster }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := fighterConfig()
			tt.mutate(cfg)

			_, err := participant.New(cfg)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func TestNewDefault_UsesSuppliedScores(t *testing.T) {
	p, err := participant.NewDefault("npc-1", "Villager", participant.DefaultAbilityScores)
	require.NoError(t, err)

	assert.Equal(t, participant.DefaultAbilityScore, p.Abilities.Strength)
	assert.Equal(t, participant.DefaultAbilityScore, p.Abilities.Charisma)
	assert.Equal(t, 0, p.AbilityModifier(shared.AttributeDexterity))
	assert.Equal(t, 1, p.Level())
	assert.Equal(t, 10, p.ArmorClass)
	assert.Equal(t, 10, p.HP.Max, "fighter hit die with +0 CON")
}

func TestFromTemplate_FillsMissingAbilitiesWithDefault(t *testing.T) {
	scimitar, err := equipment.Lookup("scimitar")
	require.NoError(t, err)

	p, err := participant.FromTemplate(&participant.Template{
		Key:            "goblin",
		Name:           "Goblin",
		ChallengeLevel: 0,
		ArmorClass:     15,
		HitPoints:      7,
		Abilities: map[shared.Attribute]int{
			shared.AttributeStrength:  8,
			shared.AttributeDexterity: 14,
		},
		SkillProficiencies: []shared.Skill{shared.SkillStealth},
		Attacks:            []*equipment.Weapon{scimitar},
	}, "goblin-1")
	require.NoError(t, err)

	assert.Equal(t, participant.KindMonster, p.Kind)
	assert.Equal(t, "monster", p.GetType())
	assert.Equal(t, "goblin-1", p.GetID())
	assert.Equal(t, 8, p.Abilities.Strength)
	assert.Equal(t, 14, p.Abilities.Dexterity)
	assert.Equal(t, participant.DefaultAbilityScore, p.Abilities.Constitution)
	assert.Equal(t, participant.DefaultAbilityScore, p.Abilities.Wisdom)
	assert.Equal(t, 2, p.ProficiencyBonus())
	assert.Equal(t, shared.HitPoints{Current: 7, Max: 7}, p.HP)
	assert.Equal(t, "scimitar", p.MainHand.Key)
}

func TestFromTemplate_RejectsBadAbility(t *testing.T) {
	_, err := participant.FromTemplate(&participant.Template{
		Key:       "blob",
		HitPoints: 5,
		Abilities: map[shared.Attribute]int{"Luck": 12},
	}, "blob-1")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestClone_IsDeep(t *testing.T) {
	cfg := fighterConfig()
	cfg.Conditions = []conditions.Condition{{Type: conditions.Poisoned}}
	cfg.FightingStyles = []rulebook.FightingStyle{rulebook.StyleDueling}
	original, err := participant.New(cfg)
	require.NoError(t, err)
	original.AppliedActions = []string{"a1"}

	clone := original.Clone()
	clone.Conditions[0].Duration = 9
	clone.FightingStyles[0] = rulebook.StyleArchery
	clone.MainHand.Damage.DiceCount = 3
	clone.AppliedActions[0] = "changed"
	clone.HP = clone.HP.TakeDamage(5)

	assert.Zero(t, original.Conditions[0].Duration)
	assert.Equal(t, rulebook.StyleDueling, original.FightingStyles[0])
	assert.Equal(t, 1, original.MainHand.Damage.DiceCount)
	assert.Equal(t, "a1", original.AppliedActions[0])
	assert.Equal(t, original.HP.Max, original.HP.Current)
	assert.True(t, original.HasApplied("a1"))
	assert.False(t, original.HasApplied(""))
}

func TestMaxHitPoints(t *testing.T) {
	assert.Equal(t, 6, participant.MaxHitPoints([]rulebook.ClassLevel{{Class: rulebook.ClassWizard, Level: 1}}, 0))
	// wizard 6-1, then 4-1 twice
	assert.Equal(t, 11, participant.MaxHitPoints([]rulebook.ClassLevel{{Class: rulebook.ClassWizard, Level: 3}}, -1))
	// a level never gains less than 1
	assert.Equal(t, 3, participant.MaxHitPoints([]rulebook.ClassLevel{{Class: rulebook.ClassWizard, Level: 3}}, -5))
}

func TestIsDefeated(t *testing.T) {
	p, err := participant.FromTemplate(&participant.Template{Key: "rat", HitPoints: 1}, "rat-1")
	require.NoError(t, err)
	assert.False(t, p.IsDefeated())

	p.HP = p.HP.TakeDamage(1)
	assert.True(t, p.IsDefeated())
}
