package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at path and runs every migration
// file found in the migrations directory, in name order.
func NewSQLiteRepository(ctx context.Context, path string, migrations string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	dir, err := os.ReadDir(migrations)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}
	sort.Slice(dir, func(i, j int) bool { return dir[i].Name() < dir[j].Name() })

	for _, entry := range dir {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".sql" {
			continue
		}

		migrationPath := filepath.Join(migrations, entry.Name())
		migration, err := os.ReadFile(migrationPath)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}

		if _, err := db.ExecContext(ctx, string(migration)); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %s: %v", migrationPath, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveScore(ctx context.Context, record *ScoreRecord) error {
	if err := ValidateScoreRecord(record); err != nil {
		return fmt.Errorf("invalid score record: %v", err)
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	q := `
	INSERT INTO scores (name, score, level, lines, mode, board, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	res, err := r.db.ExecContext(ctx, q, record.Name, record.Score, record.Level, record.Lines, record.Mode, record.Board, record.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert score: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get score id: %v", err)
	}
	record.ID = id

	return nil
}

func (r *SQLiteRepository) GetScore(ctx context.Context, id int64) (*ScoreRecord, error) {
	q := `
	SELECT id, name, score, level, lines, mode, board, created_at FROM scores WHERE id = ?;
	`
	record, err := scanSQLiteScore(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan score: %v", err)
	}

	return record, nil
}

func (r *SQLiteRepository) TopScores(ctx context.Context, limit int) ([]*ScoreRecord, error) {
	q := `
	SELECT id, name, score, level, lines, mode, board, created_at FROM scores
	ORDER BY score DESC, created_at ASC
	LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %v", err)
	}
	defer rows.Close()

	records := make([]*ScoreRecord, 0)
	for rows.Next() {
		record, err := scanSQLiteScore(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan score: %v", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scores: %v", err)
	}

	return records, nil
}

func (r *SQLiteRepository) HighScore(ctx context.Context) (int, error) {
	var score int
	if err := r.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(score), 0) FROM scores;").Scan(&score); err != nil {
		return 0, fmt.Errorf("failed to query high score: %v", err)
	}
	return score, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSQLiteScore(row scanner) (*ScoreRecord, error) {
	record := &ScoreRecord{}
	var createdAt int64
	if err := row.Scan(&record.ID, &record.Name, &record.Score, &record.Level, &record.Lines, &record.Mode, &record.Board, &createdAt); err != nil {
		return nil, err
	}
	record.CreatedAt = time.UnixMilli(createdAt).UTC()
	return record, nil
}
