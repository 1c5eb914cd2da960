package game

import (
	"testing"
	"time"

	"github.com/DylM0nster22/Tetris/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCompletedRows(t *testing.T) {
	board := types.NewBoard(20, 10)
	fillRows(t, board, 12, 12, -1)
	fillRows(t, board, 15, 15, 4)
	fillRows(t, board, 18, 19, -1)

	rows := DetectCompletedRows(board)
	assert.Equal(t, []int{12, 18, 19}, rows)

	before := board.Matrix()
	assert.Equal(t, 3, ApplyClear(board, rows))
	assert.Equal(t, 20, board.Rows())
	after := board.Matrix()
	for y := 0; y < 3; y++ {
		assert.Equal(t, make([]types.Tag, 10), after[y])
	}
	assert.Equal(t, before[15], after[17], "the partial row shifts down by the two rows cleared below it")
}

func TestDetectCompletedRows_singleRow(t *testing.T) {
	board := types.NewBoard(20, 10)
	fillRows(t, board, 7, 7, -1)

	rows := DetectCompletedRows(board)
	require.Equal(t, []int{7}, rows)
	ApplyClear(board, rows)
	assert.Equal(t, types.NewBoard(20, 10).Matrix(), board.Matrix())
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, 1, LevelFor(0))
	assert.Equal(t, 1, LevelFor(999))
	assert.Equal(t, 2, LevelFor(1000))
	assert.Equal(t, 11, LevelFor(10500))
}

func TestDropInterval(t *testing.T) {
	assert.Equal(t, 950*time.Millisecond, DropInterval(1))
	assert.Equal(t, 500*time.Millisecond, DropInterval(10))
	assert.Equal(t, 100*time.Millisecond, DropInterval(18))
	assert.Equal(t, 100*time.Millisecond, DropInterval(40))
}

func TestScorer_Apply(t *testing.T) {
	tests := []struct {
		name       string
		locks      []int
		wantScores []int
		wantCombos []int
	}{
		{
			name:       "single clears",
			locks:      []int{1, 0, 2, 0, 3, 0},
			wantScores: []int{100, 100, 400, 400, 900, 900},
			wantCombos: []int{0, 0, 0, 0, 0, 0},
		},
		{
			name:       "quad at level one",
			locks:      []int{4},
			wantScores: []int{800},
			wantCombos: []int{0},
		},
		{
			name:       "consecutive clears build a combo",
			locks:      []int{1, 1, 2},
			wantScores: []int{100, 250, 650},
			wantCombos: []int{0, 1, 2},
		},
		{
			name:       "an empty lock resets the combo",
			locks:      []int{1, 1, 0, 1},
			wantScores: []int{100, 250, 250, 350},
			wantCombos: []int{0, 1, 0, 0},
		},
		{
			name:       "a clear after a quad continues the combo",
			locks:      []int{4, 1},
			wantScores: []int{800, 950},
			wantCombos: []int{0, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := NewScorer(nil, 0)
			for i, lines := range tt.locks {
				scorer.Apply(lines, 0)
				assert.Equal(t, tt.wantScores[i], scorer.Score(), "score after lock %d", i)
				assert.Equal(t, tt.wantCombos[i], scorer.Combo(), "combo after lock %d", i)
			}
		})
	}
}

func TestScorer_levelMultiplier(t *testing.T) {
	scorer := NewScorer(nil, 0)
	scorer.Apply(4, 0)
	scorer.Apply(0, 0)
	scorer.Apply(4, 0)
	require.Equal(t, 1600, scorer.Score())
	require.Equal(t, 2, scorer.Level())

	delta := scorer.Apply(1, 0)
	assert.Equal(t, 200, delta.Base)
	assert.Equal(t, 50, delta.ComboBonus)
	assert.False(t, delta.Quad)
}

func TestScorer_HighScore(t *testing.T) {
	scorer := NewScorer(nil, 500)
	scorer.Apply(1, 0)
	assert.Equal(t, 500, scorer.HighScore())
	scorer.Apply(3, 0)
	assert.Equal(t, 650, scorer.HighScore())

	scorer.Reset()
	assert.Equal(t, 0, scorer.Score())
	assert.Equal(t, 0, scorer.Lines())
	assert.Equal(t, 650, scorer.HighScore())
}

func TestTimedCombo(t *testing.T) {
	combo := NewTimedCombo(0)
	assert.Equal(t, 2*time.Second, combo.Window)

	assert.Equal(t, 0, combo.Register(1, 0))
	assert.Equal(t, 1, combo.Register(1, time.Second))
	assert.Equal(t, 1, combo.Register(0, 1500*time.Millisecond), "empty locks are ignored")
	assert.Equal(t, 2, combo.Register(2, 2500*time.Millisecond))
	assert.Equal(t, 0, combo.Register(1, 5*time.Second), "window expired")

	combo.Reset()
	assert.Equal(t, 0, combo.Register(1, 5*time.Second))
}

func TestNewComboPolicy(t *testing.T) {
	policy, err := NewComboPolicy("", 0)
	require.NoError(t, err)
	assert.IsType(t, &ConsecutiveCombo{}, policy)

	policy, err = NewComboPolicy("timed", time.Second)
	require.NoError(t, err)
	assert.Equal(t, time.Second, policy.(*TimedCombo).Window)

	_, err = NewComboPolicy("fuzzy", 0)
	assert.Error(t, err)
}
