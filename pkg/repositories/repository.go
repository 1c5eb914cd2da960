package repositories

import (
	"context"
	"time"
)

// Repository persists finished games.
type Repository interface {
	Close(ctx context.Context) error
	SaveScore(ctx context.Context, record *ScoreRecord) error
	GetScore(ctx context.Context, id int64) (*ScoreRecord, error)
	// TopScores returns at most limit records ordered by score, highest first.
	TopScores(ctx context.Context, limit int) ([]*ScoreRecord, error)
	// HighScore returns 0 when no score has been saved.
	HighScore(ctx context.Context) (int, error)
}

// ScoreRecord is a finished game.
type ScoreRecord struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Level int    `json:"level"`
	Lines int    `json:"lines"`
	Mode  string `json:"mode"`
	// Board is the serialized final snapshot, if any
	Board     []byte    `json:"board,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
