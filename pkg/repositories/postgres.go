package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/DylM0nster22/Tetris/pkg/log"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	conn *pgx.Conn
}

// NewPostgresRepository creates a new PostgresRepository.
// The schema is expected to exist already (see migrations/postgres).
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}
	return &PostgresRepository{
		conn: conn,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) SaveScore(ctx context.Context, record *ScoreRecord) error {
	if err := ValidateScoreRecord(record); err != nil {
		return fmt.Errorf("invalid score record: %v", err)
	}

	q := `
	INSERT INTO scores (name, score, level, lines, mode, board) VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at;
	`
	err := r.conn.QueryRow(ctx, q, record.Name, record.Score, record.Level, record.Lines, record.Mode, record.Board).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert score: %v", err)
	}

	return nil
}

func (r *PostgresRepository) GetScore(ctx context.Context, id int64) (*ScoreRecord, error) {
	q := `
	SELECT id, name, score, level, lines, mode, board, created_at FROM scores WHERE id = $1;
	`
	record := &ScoreRecord{}
	err := r.conn.QueryRow(ctx, q, id).Scan(&record.ID, &record.Name, &record.Score, &record.Level, &record.Lines, &record.Mode, &record.Board, &record.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan score: %v", err)
	}

	return record, nil
}

func (r *PostgresRepository) TopScores(ctx context.Context, limit int) ([]*ScoreRecord, error) {
	q := `
	SELECT id, name, score, level, lines, mode, board, created_at FROM scores
	ORDER BY score DESC, created_at ASC
	LIMIT $1;
	`
	rows, err := r.conn.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %v", err)
	}
	defer rows.Close()

	records := make([]*ScoreRecord, 0)
	for rows.Next() {
		record := &ScoreRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.Score, &record.Level, &record.Lines, &record.Mode, &record.Board, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan score: %v", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scores: %v", err)
	}

	return records, nil
}

func (r *PostgresRepository) HighScore(ctx context.Context) (int, error) {
	var score int
	if err := r.conn.QueryRow(ctx, "SELECT COALESCE(MAX(score), 0) FROM scores").Scan(&score); err != nil {
		return 0, fmt.Errorf("failed to query high score: %v", err)
	}
	return score, nil
}
