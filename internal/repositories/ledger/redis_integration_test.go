//go:build integration
// +build integration

package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/repositories/ledger"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.StartRedisContainer(t)

	repo, err := ledger.NewRedisRepository(&ledger.RedisConfig{Client: client, TTL: time.Minute})
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("claim is exclusive", func(t *testing.T) {
		claimed, err := repo.Claim(ctx, "act-1", "aria")
		require.NoError(t, err)
		assert.True(t, claimed)

		claimed, err = repo.Claim(ctx, "act-1", "aria")
		require.NoError(t, err)
		assert.False(t, claimed)
	})

	t.Run("claim carries a ttl", func(t *testing.T) {
		ttl, err := client.TTL(ctx, "ledger:act-1:aria").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, time.Minute)
	})

	t.Run("release reopens the claim", func(t *testing.T) {
		require.NoError(t, repo.Release(ctx, "act-1", "aria"))

		claimed, err := repo.Claim(ctx, "act-1", "aria")
		require.NoError(t, err)
		assert.True(t, claimed)
	})
}
