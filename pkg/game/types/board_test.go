package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(t *testing.T, b *Board, y int, tag Tag) {
	t.Helper()
	for x := 0; x < b.Cols(); x++ {
		require.NoError(t, b.SetCell(x, y, tag))
	}
}

func TestBoard_IsOccupied(t *testing.T) {
	b := NewBoard(20, 10)
	require.NoError(t, b.SetCell(4, 10, TagEmpty+1))

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "empty cell", x: 0, y: 0, want: false},
		{name: "filled cell", x: 4, y: 10, want: true},
		{name: "left wall", x: -1, y: 5, want: true},
		{name: "right wall", x: 10, y: 5, want: true},
		{name: "floor", x: 3, y: 20, want: true},
		{name: "above top edge", x: 3, y: -2, want: false},
		{name: "above top edge outside walls", x: -1, y: -1, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.IsOccupied(tt.x, tt.y))
		})
	}
}

func TestBoard_SetCell(t *testing.T) {
	b := NewBoard(4, 4)

	assert.NoError(t, b.SetCell(1, -1, 3), "writes above the board are discarded")
	assert.NoError(t, b.SetCell(9, 9, 3), "writes outside the board are discarded")
	assert.Equal(t, NewBoard(4, 4).Matrix(), b.Matrix())

	err := b.SetCell(0, 0, 12)
	assert.True(t, IsInvalidTag(err))
	assert.Equal(t, TagEmpty, b.Cell(0, 0))

	assert.NoError(t, b.SetCell(0, 0, TagGold))
	assert.Equal(t, TagGold, b.Cell(0, 0))
}

func TestBoard_RemoveRows(t *testing.T) {
	b := NewBoard(4, 3)
	require.NoError(t, b.SetCell(0, 0, 1))
	fillRow(t, b, 1, 2)
	require.NoError(t, b.SetCell(2, 2, 3))
	fillRow(t, b, 3, 4)

	removed := b.RemoveRows([]int{3, 1, 1, 7, -1})
	assert.Equal(t, 2, removed)
	assert.Equal(t, [][]Tag{
		{0, 0, 0},
		{0, 0, 0},
		{1, 0, 0},
		{0, 0, 3},
	}, b.Matrix())
	assert.Equal(t, 4, b.Rows())
	assert.Equal(t, 3, b.Cols())
}

func TestBoard_IsRowComplete(t *testing.T) {
	b := NewBoard(3, 3)
	fillRow(t, b, 2, 5)
	require.NoError(t, b.SetCell(0, 1, 5))

	assert.True(t, b.IsRowComplete(2))
	assert.False(t, b.IsRowComplete(1))
	assert.False(t, b.IsRowComplete(3))
}

func TestBoard_LoadMatrix(t *testing.T) {
	b := NewBoard(2, 2)

	assert.Error(t, b.LoadMatrix([][]Tag{{0, 0}}))
	assert.Error(t, b.LoadMatrix([][]Tag{{0, 0}, {0}}))
	assert.True(t, IsInvalidTag(b.LoadMatrix([][]Tag{{0, 0}, {0, 42}})))

	m := [][]Tag{{1, 0}, {0, 2}}
	require.NoError(t, b.LoadMatrix(m))
	m[0][0] = 7
	assert.Equal(t, Tag(1), b.Cell(0, 0), "the board keeps its own copy")
}

func TestBoard_Clone(t *testing.T) {
	b := NewBoard(2, 2)
	clone := b.Clone()
	require.NoError(t, clone.SetCell(0, 0, 1))
	assert.Equal(t, TagEmpty, b.Cell(0, 0))
}
