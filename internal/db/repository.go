package db

import (
	"context"
	"time"
)

// Message is one catalog entry stored for a locale.
type Message struct {
	Locale    string
	Key       string
	Value     string
	UpdatedAt time.Time
}

type UpsertMessageParams struct {
	Locale string
	Key    string
	Value  string
}

type GetMessageParams struct {
	Locale string
	Key    string
}

// Repository stores message catalogs. Implementations: sqlite, postgres.
type Repository interface {
	UpsertMessage(ctx context.Context, arg UpsertMessageParams) (Message, error)
	GetMessage(ctx context.Context, arg GetMessageParams) (Message, error)
	ListMessages(ctx context.Context, locale string) ([]Message, error)
	ListLocales(ctx context.Context) ([]string, error)
	DeleteLocale(ctx context.Context, locale string) (int64, error)

	// WithTx runs fn against a repository bound to one transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(repo Repository) error) error
	Close() error
}
