package constants

import "time"

const (
	// BoardRows is the number of rows on the canonical board
	BoardRows int = 20
	// BoardCols is the number of columns on the canonical board
	BoardCols int = 10

	// SpawnX is the column of the top-left corner of a newly spawned piece
	SpawnX int = 3
	// SpawnY is the row of the top-left corner of a newly spawned piece
	SpawnY int = 0

	// ScoreSingle is the base score for clearing one line
	ScoreSingle int = 100
	// ScoreDouble is the base score for clearing two lines
	ScoreDouble int = 300
	// ScoreTriple is the base score for clearing three lines
	ScoreTriple int = 500
	// ScoreQuad is the base score for clearing four lines
	ScoreQuad int = 800
	// ComboBonus is multiplied by the combo counter on every consecutive clear
	ComboBonus int = 50

	// PointsPerLevel is the score needed to advance one level
	PointsPerLevel int = 1000

	// BaseDropInterval is the gravity interval before any level adjustment
	BaseDropInterval time.Duration = 1000 * time.Millisecond
	// DropIntervalStep is subtracted from the base interval per level
	DropIntervalStep time.Duration = 50 * time.Millisecond
	// MinDropInterval is the fastest gravity interval
	MinDropInterval time.Duration = 100 * time.Millisecond

	// TimedComboWindow is the default window for the timed combo policy
	TimedComboWindow time.Duration = 2 * time.Second

	// SprintTargetLines is the default number of lines for a sprint game
	SprintTargetLines int = 40
	// UltraTimeLimit is the default length of an ultra game
	UltraTimeLimit time.Duration = 2 * time.Minute
)
