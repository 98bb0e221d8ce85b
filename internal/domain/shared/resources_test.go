package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

func TestHitPoints_TakeDamage(t *testing.T) {
	tests := []struct {
		name       string
		hp         shared.HitPoints
		damage     int
		expectedHP shared.HitPoints
	}{
		{
			name:       "damage absorbed by temp HP",
			hp:         shared.HitPoints{Current: 10, Max: 10, Temporary: 5},
			damage:     3,
			expectedHP: shared.HitPoints{Current: 10, Max: 10, Temporary: 2},
		},
		{
			name:       "damage exceeds temp HP",
			hp:         shared.HitPoints{Current: 10, Max: 10, Temporary: 2},
			damage:     5,
			expectedHP: shared.HitPoints{Current: 7, Max: 10},
		},
		{
			name:       "damage reduces to 0",
			hp:         shared.HitPoints{Current: 3, Max: 10},
			damage:     5,
			expectedHP: shared.HitPoints{Current: 0, Max: 10},
		},
		{
			name:       "zero damage",
			hp:         shared.HitPoints{Current: 4, Max: 10, Temporary: 1},
			damage:     0,
			expectedHP: shared.HitPoints{Current: 4, Max: 10, Temporary: 1},
		},
		{
			name:       "negative damage is ignored",
			hp:         shared.HitPoints{Current: 4, Max: 10},
			damage:     -3,
			expectedHP: shared.HitPoints{Current: 4, Max: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.hp
			got := tt.hp.TakeDamage(tt.damage)
			assert.Equal(t, tt.expectedHP, got)
			assert.Equal(t, before, tt.hp, "receiver must not change")
		})
	}
}

func TestHitPoints_HealAndTemporary(t *testing.T) {
	hp := shared.HitPoints{Current: 5, Max: 10}

	assert.Equal(t, 10, hp.Heal(20).Current)
	assert.Equal(t, 8, hp.Heal(3).Current)
	assert.Equal(t, 5, hp.Heal(-1).Current)

	withTemp := hp.AddTemporary(6)
	assert.Equal(t, 6, withTemp.Temporary)
	assert.Equal(t, 6, withTemp.AddTemporary(4).Temporary, "temporary HP doesn't stack")
}

func TestHitPoints_Validate(t *testing.T) {
	assert.NoError(t, shared.HitPoints{Current: 0, Max: 1}.Validate())
	assert.Error(t, shared.HitPoints{Current: 11, Max: 10}.Validate())
	assert.Error(t, shared.HitPoints{Current: -1, Max: 10}.Validate())
	assert.Error(t, shared.HitPoints{Current: 1, Max: 1, Temporary: -1}.Validate())
	assert.Error(t, shared.HitPoints{}.Validate())
}

func TestSlotPool_Consume(t *testing.T) {
	pool := shared.NewSlotPool([shared.MaxSpellLevel]int{2, 1})

	after, err := pool.Consume(1)
	require.NoError(t, err)
	assert.Equal(t, 1, after.Get(1).Current)
	assert.Equal(t, 2, pool.Get(1).Current, "original pool is untouched")

	after, err = after.Consume(2)
	require.NoError(t, err)
	assert.Equal(t, 0, after.Get(2).Current)

	_, err = after.Consume(2)
	assert.True(t, errors.IsInvalidAction(err))
	assert.Equal(t, 2, errors.GetMeta(err)["slot_level"])

	_, err = after.Consume(3)
	assert.True(t, errors.IsInvalidAction(err), "level with no slots at all")

	_, err = after.Consume(10)
	assert.True(t, errors.IsInvalidAction(err))
}

func TestSlotPool_NeverExceedsBounds(t *testing.T) {
	pool := shared.NewSlotPool([shared.MaxSpellLevel]int{4, 3, 2})

	var err error
	for i := 0; i < 4; i++ {
		pool, err = pool.Consume(1)
		require.NoError(t, err)
	}
	_, err = pool.Consume(1)
	require.Error(t, err)
	require.NoError(t, pool.Validate())

	restored := pool.RestoreAll()
	assert.Equal(t, 4, restored.Get(1).Current)
	assert.Equal(t, 9, restored.Total())
	require.NoError(t, restored.Validate())
}

func TestSlotPool_WithMax(t *testing.T) {
	pool := shared.NewSlotPool([shared.MaxSpellLevel]int{3})
	pool, err := pool.Consume(1)
	require.NoError(t, err)

	grown := pool.WithMax([shared.MaxSpellLevel]int{4, 2})
	assert.Equal(t, shared.Slot{Max: 4, Current: 3}, grown.Get(1), "spent slot stays spent")
	assert.Equal(t, shared.Slot{Max: 2, Current: 2}, grown.Get(2))

	shrunk := grown.WithMax([shared.MaxSpellLevel]int{2})
	assert.Equal(t, shared.Slot{Max: 2, Current: 2}, shrunk.Get(1))
	assert.Equal(t, shared.Slot{}, shrunk.Get(2))
}

func TestSlotPool_Validate(t *testing.T) {
	var pool shared.SlotPool
	pool[0] = shared.Slot{Max: 1, Current: 2}
	assert.True(t, errors.IsInvalidArgument(pool.Validate()))
}

func TestPactSlots(t *testing.T) {
	pact := shared.PactSlots{SlotLevel: 3, Max: 2, Current: 2}

	pact, err := pact.Consume()
	require.NoError(t, err)
	pact, err = pact.Consume()
	require.NoError(t, err)
	_, err = pact.Consume()
	assert.True(t, errors.IsInvalidAction(err))

	assert.Equal(t, 2, pact.Restore().Current)
	assert.Error(t, shared.PactSlots{SlotLevel: 6, Max: 1, Current: 1}.Validate())
}
