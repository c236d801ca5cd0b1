package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terzeron/rogue-kr/internal/db"
	"github.com/terzeron/rogue-kr/internal/db/sqlite"
)

func TestOpenSQLite(t *testing.T) {
	ctx := context.Background()
	repo, err := Open(ctx, "sqlite://"+filepath.Join(t.TempDir(), "rogue.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	assert.IsType(t, &sqlite.Repository{}, repo)

	_, err = repo.UpsertMessage(ctx, db.UpsertMessageParams{Locale: "ko", Key: "MSG_MORE", Value: "--계속--"})
	require.NoError(t, err)
}

func TestOpenEmpty(t *testing.T) {
	_, err := Open(context.Background(), "")
	assert.Error(t, err)
}
