package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/terzeron/rogue-kr/internal/db"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository implements db.Repository using SQLite
type Repository struct {
	db   *sql.DB
	conn dbtx
}

// New opens (and if needed creates) a SQLite catalog database. ":memory:"
// gives a private in-memory database.
func New(ctx context.Context, dbPath string) (*Repository, error) {
	// Strip sqlite:// prefix if present
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")

	isNew := false
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		isNew = true
	}

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}
	if dbPath == ":memory:" {
		// each pooled connection would otherwise see its own empty database
		sqliteDB.SetMaxOpenConns(1)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	if isNew {
		slog.Info("created new SQLite database", "path", dbPath)
	}

	return &Repository{db: sqliteDB, conn: sqliteDB}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&Repository{db: r.db, conn: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *Repository) UpsertMessage(ctx context.Context, arg db.UpsertMessageParams) (db.Message, error) {
	_, err := r.conn.ExecContext(ctx, `
		INSERT INTO messages (locale, key, value)
		VALUES (?, ?, ?)
		ON CONFLICT (locale, key) DO UPDATE SET
			value = excluded.value,
			updated_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')
	`, arg.Locale, arg.Key, arg.Value)
	if err != nil {
		return db.Message{}, err
	}

	return r.GetMessage(ctx, db.GetMessageParams{Locale: arg.Locale, Key: arg.Key})
}

func (r *Repository) GetMessage(ctx context.Context, arg db.GetMessageParams) (db.Message, error) {
	row := r.conn.QueryRowContext(ctx, `
		SELECT locale, key, value, updated_at
		FROM messages
		WHERE locale = ? AND key = ?
	`, arg.Locale, arg.Key)

	var m db.Message
	var updatedAtStr string
	err := row.Scan(&m.Locale, &m.Key, &m.Value, &updatedAtStr)
	if err == sql.ErrNoRows {
		return db.Message{}, db.ErrNoRows
	}
	if err != nil {
		return db.Message{}, err
	}
	m.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
	return m, nil
}

func (r *Repository) ListMessages(ctx context.Context, locale string) ([]db.Message, error) {
	rows, err := r.conn.QueryContext(ctx, `
		SELECT locale, key, value, updated_at
		FROM messages
		WHERE locale = ?
		ORDER BY key
	`, locale)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []db.Message
	for rows.Next() {
		var m db.Message
		var updatedAtStr string
		if err := rows.Scan(&m.Locale, &m.Key, &m.Value, &updatedAtStr); err != nil {
			return nil, err
		}
		m.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *Repository) ListLocales(ctx context.Context) ([]string, error) {
	rows, err := r.conn.QueryContext(ctx, `SELECT DISTINCT locale FROM messages ORDER BY locale`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locales []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, err
		}
		locales = append(locales, l)
	}
	return locales, rows.Err()
}

func (r *Repository) DeleteLocale(ctx context.Context, locale string) (int64, error) {
	result, err := r.conn.ExecContext(ctx, `DELETE FROM messages WHERE locale = ?`, locale)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
