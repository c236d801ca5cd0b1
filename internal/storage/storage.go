// Package storage opens the message repository named by a database URL.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/terzeron/rogue-kr/internal/db"
	"github.com/terzeron/rogue-kr/internal/db/postgres"
	"github.com/terzeron/rogue-kr/internal/db/sqlite"
)

// Open connects to PostgreSQL for postgres:// and postgresql:// URLs and
// opens a SQLite file (optionally prefixed sqlite://) for anything else.
func Open(ctx context.Context, databaseURL string) (db.Repository, error) {
	if databaseURL == "" {
		return nil, errors.New("database URL is empty")
	}
	if db.IsPostgresURL(databaseURL) {
		repo, err := postgres.New(ctx, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		return repo, nil
	}
	repo, err := sqlite.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}
	return repo, nil
}
