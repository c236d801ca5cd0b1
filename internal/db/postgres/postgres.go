package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/terzeron/rogue-kr/internal/db"
)

//go:embed schema.sql
var schemaSQL string

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository implements db.Repository using PostgreSQL via pgx
type Repository struct {
	pool *pgxpool.Pool
	q    querier
}

// New connects to databaseURL and makes sure the messages table exists.
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	pool, err := db.NewPool(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{pool: pool, q: pool}, nil
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	// A panic in fn skips the rollback below, so release the connection here.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback(ctx)
			panic(r)
		}
	}()

	err = fn(&Repository{pool: r.pool, q: tx})
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (r *Repository) UpsertMessage(ctx context.Context, arg db.UpsertMessageParams) (db.Message, error) {
	row := r.q.QueryRow(ctx, `
		INSERT INTO messages (locale, key, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (locale, key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
		RETURNING locale, key, value, updated_at
	`, arg.Locale, arg.Key, arg.Value)
	return scanMessage(row)
}

func (r *Repository) GetMessage(ctx context.Context, arg db.GetMessageParams) (db.Message, error) {
	row := r.q.QueryRow(ctx, `
		SELECT locale, key, value, updated_at
		FROM messages
		WHERE locale = $1 AND key = $2
	`, arg.Locale, arg.Key)
	return scanMessage(row)
}

func (r *Repository) ListMessages(ctx context.Context, locale string) ([]db.Message, error) {
	rows, err := r.q.Query(ctx, `
		SELECT locale, key, value, updated_at
		FROM messages
		WHERE locale = $1
		ORDER BY key
	`, locale)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (db.Message, error) {
		return scanMessage(row)
	})
}

func (r *Repository) ListLocales(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT locale FROM messages ORDER BY locale`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (r *Repository) DeleteLocale(ctx context.Context, locale string) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM messages WHERE locale = $1`, locale)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanMessage(row pgx.Row) (db.Message, error) {
	var m db.Message
	err := row.Scan(&m.Locale, &m.Key, &m.Value, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Message{}, db.ErrNoRows
	}
	if err != nil {
		return db.Message{}, err
	}
	return m, nil
}
