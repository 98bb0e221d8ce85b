package participants_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/conditions"
	dnderr "github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/repositories/participants"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/testutils"
)

func repositories(t *testing.T) map[string]participants.Repository {
	client, _ := testutils.CreateTestRedisClient(t)
	redisRepo, err := participants.NewRedis(client)
	require.NoError(t, err)

	return map[string]participants.Repository{
		"redis":     redisRepo,
		"in memory": participants.NewInMemory(),
	}
}

func TestRepository_RoundTrip(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			wizard := testutils.CreateTestWizard(t, "mira", "Mira")
			wizard.Concentration = "bless"
			wizard.AppliedActions = []string{"act-1"}
			prone, err := wizard.Conditions.Add(conditions.Condition{Type: conditions.Prone})
			require.NoError(t, err)
			wizard.Conditions = prone

			require.NoError(t, repo.Save(ctx, wizard))

			got, err := repo.Get(ctx, "mira")
			require.NoError(t, err)
			assert.Equal(t, wizard.HP, got.HP)
			assert.Equal(t, wizard.SpellSlots, got.SpellSlots)
			assert.Equal(t, wizard.Classes, got.Classes)
			assert.True(t, got.Conditions.Has(conditions.Prone))
			assert.Equal(t, "bless", got.Concentration)
			assert.True(t, got.HasApplied("act-1"))

			// stored copies are independent of the caller's
			got.HP.Current = 1
			again, err := repo.Get(ctx, "mira")
			require.NoError(t, err)
			assert.Equal(t, wizard.HP.Current, again.HP.Current)
		})
	}
}

func TestRepository_ListAndDelete(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, repo.Save(ctx, testutils.CreateTestMonster(t, "orc-1", "Orc", 15, 13)))
			require.NoError(t, repo.Save(ctx, testutils.CreateTestMonster(t, "goblin-1", "Goblin", 7, 15)))
			require.NoError(t, repo.Save(ctx, testutils.CreateTestFighter(t, "aria", "Aria")))

			list, err := repo.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, 3)
			assert.Equal(t, []string{"aria", "goblin-1", "orc-1"}, []string{list[0].ID, list[1].ID, list[2].ID})

			require.NoError(t, repo.Delete(ctx, "orc-1"))
			assert.True(t, dnderr.IsNotFound(repo.Delete(ctx, "orc-1")))
			_, err = repo.Get(ctx, "orc-1")
			assert.True(t, dnderr.IsNotFound(err))

			list, err = repo.List(ctx)
			require.NoError(t, err)
			assert.Len(t, list, 2)
		})
	}
}
