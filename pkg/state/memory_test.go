package state

import (
	"context"
	"testing"

	gametypes "github.com/DylM0nster22/Tetris/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStateManager(t *testing.T) {
	ctx := context.Background()
	m := NewInMemoryStateManager()

	_, err := m.Get(ctx)
	assert.Error(t, err)
	assert.Error(t, m.Set(ctx, nil))
	assert.Equal(t, uint64(0), m.Version())

	require.NoError(t, m.Set(ctx, &gametypes.Snapshot{Score: 100}))
	require.NoError(t, m.Set(ctx, &gametypes.Snapshot{Score: 300}))

	got, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 300, got.Score)
	assert.Equal(t, uint64(2), m.Version())

	// an identical snapshot does not count as a change
	require.NoError(t, m.Set(ctx, &gametypes.Snapshot{Score: 300}))
	assert.Equal(t, uint64(2), m.Version())
}
