package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/equipment"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	rulebook "github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/rulebook/dnd5e"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
)

// CreateTestFighter creates a level 5 fighter with STR 16 and a longsword
func CreateTestFighter(t *testing.T, id, name string) *participant.Participant {
	t.Helper()

	sword, err := equipment.Lookup("longsword")
	require.NoError(t, err)

	p, err := participant.New(&participant.Config{
		ID:   id,
		Name: name,
		Abilities: shared.AbilityScores{
			Strength: 16, Dexterity: 12, Constitution: 14, Intelligence: 10, Wisdom: 10, Charisma: 8,
		},
		Classes:  []rulebook.ClassLevel{{Class: rulebook.ClassFighter, Level: 5}},
		MainHand: sword,
	})
	require.NoError(t, err)
	return p
}

// CreateTestWizard creates a level 3 wizard with INT 16
func CreateTestWizard(t *testing.T, id, name string) *participant.Participant {
	t.Helper()

	p, err := participant.New(&participant.Config{
		ID:   id,
		Name: name,
		Abilities: shared.AbilityScores{
			Strength: 8, Dexterity: 14, Constitution: 14, Intelligence: 16, Wisdom: 12, Charisma: 10,
		},
		Classes: []rulebook.ClassLevel{{Class: rulebook.ClassWizard, Level: 3}},
	})
	require.NoError(t, err)
	return p
}

// CreateTestMonster creates a CR 1 monster with average abilities
func CreateTestMonster(t *testing.T, id, name string, hp, ac int) *participant.Participant {
	t.Helper()

	p, err := participant.New(&participant.Config{
		ID:             id,
		Name:           name,
		Kind:           participant.KindMonster,
		Abilities:      participant.DefaultAbilityScores,
		ChallengeLevel: 1,
		HP:             &shared.HitPoints{Current: hp, Max: hp},
		ArmorClass:     ac,
	})
	require.NoError(t, err)
	return p
}
