package repositories

import (
	"context"
	"fmt"
	"net/url"
)

// Open picks a repository by the scheme of connStr: sqlite://path opens a
// SQLite file and postgres:// or postgresql:// connects to Postgres.
// migrationsDir is only used by SQLite.
func Open(ctx context.Context, connStr string, migrationsDir string) (Repository, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %v", err)
	}

	switch u.Scheme {
	case "sqlite":
		repository, err := NewSQLiteRepository(ctx, u.Host+u.Path, migrationsDir)
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite repository: %v", err)
		}
		return repository, nil
	case "postgresql", "postgres":
		repository, err := NewPostgresRepository(ctx, u.String())
		if err != nil {
			return nil, fmt.Errorf("failed to create Postgres repository: %v", err)
		}
		return repository, nil
	default:
		return nil, fmt.Errorf("unknown database type %s", u.Scheme)
	}
}
