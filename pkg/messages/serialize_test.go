package messages

import (
	"testing"

	gametypes "github.com/DylM0nster22/Tetris/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeDeserializeSnapshot(t *testing.T) {
	board := gametypes.NewBoard(20, 10)
	require.NoError(t, board.SetCell(3, 19, 2))
	require.NoError(t, board.SetCell(4, 19, gametypes.TagGold))

	active := gametypes.NewPiece(gametypes.KindT, 3, 0)
	active.Shape = active.Shape.RotateCW()
	next := gametypes.NewPiece(gametypes.KindI, 3, 0)

	tests := []struct {
		name     string
		snapshot *gametypes.Snapshot
	}{
		{
			name: "running game",
			snapshot: &gametypes.Snapshot{
				Board:     board.Matrix(),
				Active:    &active,
				Next:      &next,
				Score:     1250,
				HighScore: 4000,
				Level:     2,
				Combo:     1,
				Lines:     9,
				State:     "running",
				Mode:      "marathon",
			},
		},
		{
			name: "game over without active piece",
			snapshot: &gametypes.Snapshot{
				Board: board.Matrix(),
				Next:  &next,
				Hold:  &active,
				Score: 300,
				Level: 1,
				State: "gameover",
				Mode:  "sprint",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := SerializeSnapshot(tt.snapshot)
			require.NoError(t, err)

			got, err := DeserializeSnapshot(b)
			require.NoError(t, err)
			assert.Equal(t, tt.snapshot, got)
		})
	}
}

func TestSerializeSnapshot_raggedBoard(t *testing.T) {
	_, err := SerializeSnapshot(&gametypes.Snapshot{
		Board: [][]gametypes.Tag{{0, 0}, {0}},
	})
	assert.Error(t, err)
}

func TestDeserializeSnapshot_garbage(t *testing.T) {
	_, err := DeserializeSnapshot([]byte("not a snapshot"))
	assert.Error(t, err)
}
