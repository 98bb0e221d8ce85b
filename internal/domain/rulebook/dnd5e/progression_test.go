package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rulebook "github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/rulebook/dnd5e"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

func TestSpellSlotTable_IsMonotonic(t *testing.T) {
	for lvl := 1; lvl < rulebook.MaxLevel; lvl++ {
		prev := rulebook.SlotsForCasterLevel(lvl)
		next := rulebook.SlotsForCasterLevel(lvl + 1)
		for i := range prev {
			assert.GreaterOrEqual(t, next[i], prev[i], "caster level %d spell level %d", lvl+1, i+1)
		}
	}
}

func TestSlotsForCasterLevel(t *testing.T) {
	assert.Equal(t, [9]int{}, rulebook.SlotsForCasterLevel(0))
	assert.Equal(t, [9]int{4, 2}, rulebook.SlotsForCasterLevel(3))
	assert.Equal(t, [9]int{4, 3, 3, 3, 2, 1, 1, 1, 1}, rulebook.SlotsForCasterLevel(17))
	assert.Equal(t, [9]int{4, 3, 3, 3, 3, 2, 2, 1, 1}, rulebook.SlotsForCasterLevel(20))
	assert.Equal(t, rulebook.SlotsForCasterLevel(20), rulebook.SlotsForCasterLevel(25))
}

func TestPactMagicForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  rulebook.PactMagic
	}{
		{0, rulebook.PactMagic{}},
		{1, rulebook.PactMagic{Slots: 1, SlotLevel: 1}},
		{2, rulebook.PactMagic{Slots: 2, SlotLevel: 1}},
		{4, rulebook.PactMagic{Slots: 2, SlotLevel: 2}},
		{6, rulebook.PactMagic{Slots: 2, SlotLevel: 3}},
		{8, rulebook.PactMagic{Slots: 2, SlotLevel: 4}},
		{10, rulebook.PactMagic{Slots: 2, SlotLevel: 5}},
		{11, rulebook.PactMagic{Slots: 3, SlotLevel: 5}},
		{16, rulebook.PactMagic{Slots: 3, SlotLevel: 5}},
		{17, rulebook.PactMagic{Slots: 4, SlotLevel: 5}},
		{20, rulebook.PactMagic{Slots: 4, SlotLevel: 5}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rulebook.PactMagicForLevel(tt.level), "warlock %d", tt.level)
	}
}

func TestAttacksPerAction(t *testing.T) {
	tests := []struct {
		name   string
		levels []rulebook.ClassLevel
		want   int
	}{
		{"fighter 4", []rulebook.ClassLevel{{Class: rulebook.ClassFighter, Level: 4}}, 1},
		{"fighter 5", []rulebook.ClassLevel{{Class: rulebook.ClassFighter, Level: 5}}, 2},
		{"fighter 11", []rulebook.ClassLevel{{Class: rulebook.ClassFighter, Level: 11}}, 3},
		{"fighter 20", []rulebook.ClassLevel{{Class: rulebook.ClassFighter, Level: 20}}, 4},
		{"ranger 20", []rulebook.ClassLevel{{Class: rulebook.ClassRanger, Level: 20}}, 3},
		{"monk 5", []rulebook.ClassLevel{{Class: rulebook.ClassMonk, Level: 5}}, 2},
		{"wizard 20", []rulebook.ClassLevel{{Class: rulebook.ClassWizard, Level: 20}}, 1},
		{"rogue 11", []rulebook.ClassLevel{{Class: rulebook.ClassRogue, Level: 11}}, 1},
		{
			name: "extra attacks do not stack across classes",
			levels: []rulebook.ClassLevel{
				{Class: rulebook.ClassFighter, Level: 5},
				{Class: rulebook.ClassPaladin, Level: 5},
			},
			want: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rulebook.AttacksPerAction(tt.levels))
		})
	}
}

func TestValidateLevels(t *testing.T) {
	require.NoError(t, rulebook.ValidateLevels([]rulebook.ClassLevel{
		{Class: rulebook.ClassWizard, Level: 10},
		{Class: rulebook.ClassCleric, Level: 10},
	}))

	err := rulebook.ValidateLevels(nil)
	assert.True(t, errors.IsInvalidArgument(err))

	err = rulebook.ValidateLevels([]rulebook.ClassLevel{{Class: rulebook.ClassWizard, Level: 0}})
	assert.True(t, errors.IsInvalidArgument(err))

	err = rulebook.ValidateLevels([]rulebook.ClassLevel{
		{Class: rulebook.ClassWizard, Level: 15},
		{Class: rulebook.ClassFighter, Level: 6},
	})
	assert.True(t, errors.IsInvalidArgument(err))

	err = rulebook.ValidateLevels([]rulebook.ClassLevel{{Class: "artificer", Level: 1}})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestParsers(t *testing.T) {
	class, err := rulebook.ParseClass(" Wizard ")
	require.NoError(t, err)
	assert.Equal(t, rulebook.ClassWizard, class)

	style, err := rulebook.ParseFightingStyle("TWO_WEAPON_FIGHTING")
	require.NoError(t, err)
	assert.Equal(t, rulebook.StyleTwoWeaponFighting, style)

	feat, err := rulebook.ParseFeat("war_caster")
	require.NoError(t, err)
	assert.Equal(t, "War Caster", feat.Name())

	_, err = rulebook.ParseFightingStyle("berserk")
	assert.True(t, errors.IsInvalidArgument(err))
	_, err = rulebook.ParseFeat("sentinel-ish")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestGetFightingStylesForClass(t *testing.T) {
	styles := rulebook.GetFightingStylesForClass(rulebook.ClassRanger)
	keys := make([]rulebook.FightingStyle, 0, len(styles))
	for _, s := range styles {
		keys = append(keys, s.Key)
	}
	assert.ElementsMatch(t, []rulebook.FightingStyle{
		rulebook.StyleArchery, rulebook.StyleDefense, rulebook.StyleDueling, rulebook.StyleTwoWeaponFighting,
	}, keys)

	assert.Empty(t, rulebook.GetFightingStylesForClass(rulebook.ClassWizard))
}

func TestGetClass(t *testing.T) {
	wizard, err := rulebook.GetClass(rulebook.ClassWizard)
	require.NoError(t, err)
	assert.Equal(t, rulebook.CasterFull, wizard.Caster)
	assert.True(t, wizard.IsCaster())

	fighter, err := rulebook.GetClass(rulebook.ClassFighter)
	require.NoError(t, err)
	assert.False(t, fighter.IsCaster())

	_, err = rulebook.GetClass("artificer")
	assert.True(t, errors.IsNotFound(err))
}
