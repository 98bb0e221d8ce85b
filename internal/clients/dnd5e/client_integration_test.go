//go:build integration
// +build integration

package dnd5e_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/clients/dnd5e"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/equipment"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
)

// These tests require network access to the D&D 5e API

func newLiveClient(t *testing.T) dnd5e.Client {
	t.Helper()
	client, err := dnd5e.New(&dnd5e.Config{
		HTTPClient: http.DefaultClient,
		CacheTTL:   time.Minute,
	})
	require.NoError(t, err)
	return client
}

func TestClient_ListWeapons_Integration(t *testing.T) {
	client := newLiveClient(t)

	weapons, err := client.ListWeapons(context.Background())
	require.NoError(t, err)
	assert.Greater(t, len(weapons), 20, "API should have many weapons")

	foundRanged := false
	for _, w := range weapons {
		assert.NoError(t, w.Validate())
		if w.Range == equipment.RangeRanged {
			foundRanged = true
		}
	}
	assert.True(t, foundRanged, "Should find at least one ranged weapon")
}

func TestClient_GetSpell_Integration(t *testing.T) {
	client := newLiveClient(t)

	fireball, err := client.GetSpell(context.Background(), "fireball")
	require.NoError(t, err)
	require.NotNil(t, fireball.Save)
	assert.Equal(t, 3, fireball.Level)
	assert.Equal(t, 8, fireball.Damage.DiceCount)
	assert.Equal(t, 1, fireball.UpcastDice)
}

func TestClient_ListMonstersByCR_Integration(t *testing.T) {
	client := newLiveClient(t)

	monsters, err := client.ListMonstersByCR(context.Background(), 0, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, monsters, "Should find low CR monsters")

	for _, tpl := range monsters {
		assert.LessOrEqual(t, tpl.ChallengeLevel, 1)
		p, err := participant.FromTemplate(tpl, tpl.Key+"-1")
		require.NoError(t, err, "template %s should build a participant", tpl.Key)
		assert.True(t, p.IsMonster())
	}
}
