package game

import (
	"time"

	"github.com/DylM0nster22/Tetris/pkg/game/constants"
	"github.com/DylM0nster22/Tetris/pkg/game/types"
)

// DetectCompletedRows returns the indices of all full rows, top to bottom.
func DetectCompletedRows(board *types.Board) []int {
	var rows []int
	for y := 0; y < board.Rows(); y++ {
		if board.IsRowComplete(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ApplyClear removes rows from the board and returns how many were removed.
func ApplyClear(board *types.Board, rows []int) int {
	return board.RemoveRows(rows)
}

// LevelFor derives the level from a score.
func LevelFor(score int) int {
	return score/constants.PointsPerLevel + 1
}

// DropInterval is the gravity interval for a level.
func DropInterval(level int) time.Duration {
	interval := constants.BaseDropInterval - time.Duration(level)*constants.DropIntervalStep
	if interval < constants.MinDropInterval {
		return constants.MinDropInterval
	}
	return interval
}

// BaseScore returns the classic table value for a clear at the given level.
func BaseScore(lines, level int) int {
	switch lines {
	case 1:
		return constants.ScoreSingle * level
	case 2:
		return constants.ScoreDouble * level
	case 3:
		return constants.ScoreTriple * level
	case 4:
		return constants.ScoreQuad * level
	default:
		return 0
	}
}

// ScoreDelta describes the result of scoring one lock.
type ScoreDelta struct {
	Lines      int
	Base       int
	ComboBonus int
	Combo      int
	Quad       bool
}

// Points is the total awarded by the lock.
func (d ScoreDelta) Points() int {
	return d.Base + d.ComboBonus
}

// Scorer tracks score, combo and cleared lines for one session.
type Scorer struct {
	policy    ComboPolicy
	score     int
	highScore int
	combo     int
	lines     int
}

// NewScorer creates a scorer. A nil policy selects ConsecutiveCombo.
func NewScorer(policy ComboPolicy, highScore int) *Scorer {
	if policy == nil {
		policy = &ConsecutiveCombo{}
	}
	return &Scorer{
		policy:    policy,
		highScore: highScore,
	}
}

// Apply scores a lock that removed the given number of rows at play time at.
func (s *Scorer) Apply(cleared int, at time.Duration) ScoreDelta {
	delta := ScoreDelta{
		Lines: cleared,
		Base:  BaseScore(cleared, s.Level()),
		Quad:  cleared == 4,
	}

	s.combo = s.policy.Register(cleared, at)
	delta.Combo = s.combo
	if cleared > 0 && s.combo > 0 {
		delta.ComboBonus = s.combo * constants.ComboBonus
	}

	s.lines += cleared
	s.score += delta.Points()
	if s.score > s.highScore {
		s.highScore = s.score
	}

	return delta
}

// Reset clears the score for a new game. The high score is kept.
func (s *Scorer) Reset() {
	s.score = 0
	s.combo = 0
	s.lines = 0
	s.policy.Reset()
}

func (s *Scorer) Score() int {
	return s.score
}

func (s *Scorer) HighScore() int {
	return s.highScore
}

func (s *Scorer) Combo() int {
	return s.combo
}

func (s *Scorer) Lines() int {
	return s.lines
}

// Level is derived from the score on every call.
func (s *Scorer) Level() int {
	return LevelFor(s.score)
}
