package catalog

import (
	"context"
	"fmt"

	"github.com/terzeron/rogue-kr/internal/db"
)

// FromRepository builds the catalog stored for lang. A locale with no rows
// yields an error wrapping ErrNotFound.
func FromRepository(ctx context.Context, repo db.Repository, lang string) (*Catalog, error) {
	messages, err := repo.ListMessages(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("listing messages for %s: %w", lang, err)
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("locale %q: %w", lang, ErrNotFound)
	}

	c := Empty()
	for _, m := range messages {
		if !c.set(m.Key, m.Value) {
			break
		}
	}
	return c, nil
}

// Store replaces everything stored for lang with the entries of c in one
// transaction, returning the number of rows written.
func Store(ctx context.Context, repo db.Repository, lang string, c *Catalog) (int, error) {
	var written int
	err := repo.WithTx(ctx, func(tx db.Repository) error {
		if _, err := tx.DeleteLocale(ctx, lang); err != nil {
			return fmt.Errorf("clearing %s: %w", lang, err)
		}
		for _, key := range c.Keys() {
			if _, err := tx.UpsertMessage(ctx, db.UpsertMessageParams{
				Locale: lang,
				Key:    key,
				Value:  c.entries[key],
			}); err != nil {
				return fmt.Errorf("storing %s: %w", key, err)
			}
			written++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}
