package objects

import (
	"testing"

	"github.com/DylM0nster22/Tetris/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func TestBoardObject_SetState(t *testing.T) {
	board := NewBoardObject("board", NewBoardObjectOptions{CellSize: 10, Rows: 20, Cols: 10})
	assert.Equal(t, float32(100), board.Width())
	assert.Equal(t, float32(200), board.Height())

	// an empty matrix keeps the current dimensions
	board.SetState(nil, nil, nil)
	assert.Equal(t, float32(200), board.Height())

	matrix := [][]types.Tag{{0, 1}, {1, 1}}
	piece := types.NewPiece(types.KindO, 0, 0)
	board.SetState(matrix, &piece, nil)
	assert.Equal(t, float32(20), board.Width())
	assert.Equal(t, &piece, board.active)
}

func TestBoardObject_Clear(t *testing.T) {
	board := NewBoardObject("board", NewBoardObjectOptions{CellSize: 10, Rows: 2, Cols: 2})
	matrix := [][]types.Tag{{0, 1}, {1, 1}}
	piece := types.NewPiece(types.KindO, 0, 0)
	board.SetState(matrix, &piece, &piece)

	board.Clear()

	assert.Equal(t, [][]types.Tag{{0, 0}, {0, 0}}, board.board)
	assert.Nil(t, board.active)
	assert.Nil(t, board.shadow)
	assert.Equal(t, [][]types.Tag{{0, 1}, {1, 1}}, matrix, "cleared boards must not share rows with the snapshot")
}

func TestTagColor(t *testing.T) {
	for _, kind := range types.Kinds() {
		_, ok := tagColors[kind.Tag()]
		assert.True(t, ok, "kind %s has no color", kind)
	}
	for _, tag := range []types.Tag{types.TagBomb, types.TagLine, types.TagGhost, types.TagGold} {
		_, ok := tagColors[tag]
		assert.True(t, ok, "power-up %d has no color", tag)
	}
	assert.Equal(t, uint8(70), ShadowColor(types.KindT.Tag()).A)
}
