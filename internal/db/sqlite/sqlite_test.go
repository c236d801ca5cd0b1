package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terzeron/rogue-kr/internal/db"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestMessageCRUD(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	msg, err := repo.UpsertMessage(ctx, db.UpsertMessageParams{
		Locale: "ko",
		Key:    "MSG_WEAPON_MACE",
		Value:  "철퇴",
	})
	require.NoError(t, err)
	assert.Equal(t, "ko", msg.Locale)
	assert.Equal(t, "철퇴", msg.Value)
	assert.False(t, msg.UpdatedAt.IsZero())

	got, err := repo.GetMessage(ctx, db.GetMessageParams{Locale: "ko", Key: "MSG_WEAPON_MACE"})
	require.NoError(t, err)
	assert.Equal(t, msg.Value, got.Value)

	// Upsert replaces the value in place
	_, err = repo.UpsertMessage(ctx, db.UpsertMessageParams{Locale: "ko", Key: "MSG_WEAPON_MACE", Value: "메이스"})
	require.NoError(t, err)

	all, err := repo.ListMessages(ctx, "ko")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "메이스", all[0].Value)

	// Missing key returns ErrNoRows
	_, err = repo.GetMessage(ctx, db.GetMessageParams{Locale: "ko", Key: "MSG_NOPE"})
	assert.True(t, db.IsNoRows(err))
	_, err = repo.GetMessage(ctx, db.GetMessageParams{Locale: "en", Key: "MSG_WEAPON_MACE"})
	assert.ErrorIs(t, err, db.ErrNoRows)
}

func TestListMessagesOrderedByKey(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, k := range []string{"MSG_C", "MSG_A", "MSG_B"} {
		_, err := repo.UpsertMessage(ctx, db.UpsertMessageParams{Locale: "ko", Key: k, Value: k})
		require.NoError(t, err)
	}

	all, err := repo.ListMessages(ctx, "ko")
	require.NoError(t, err)
	keys := make([]string, len(all))
	for i, m := range all {
		keys[i] = m.Key
	}
	assert.Equal(t, []string{"MSG_A", "MSG_B", "MSG_C"}, keys)

	none, err := repo.ListMessages(ctx, "fr")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLocales(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, p := range []db.UpsertMessageParams{
		{Locale: "ko", Key: "MSG_A", Value: "가"},
		{Locale: "ko", Key: "MSG_B", Value: "나"},
		{Locale: "en", Key: "MSG_A", Value: "a"},
	} {
		_, err := repo.UpsertMessage(ctx, p)
		require.NoError(t, err)
	}

	locales, err := repo.ListLocales(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "ko"}, locales)

	n, err := repo.DeleteLocale(ctx, "ko")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	locales, err = repo.ListLocales(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"en"}, locales)
}

func TestWithTxRollback(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := repo.WithTx(ctx, func(tx db.Repository) error {
		if _, err := tx.UpsertMessage(ctx, db.UpsertMessageParams{Locale: "ko", Key: "MSG_A", Value: "가"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repo.GetMessage(ctx, db.GetMessageParams{Locale: "ko", Key: "MSG_A"})
	assert.ErrorIs(t, err, db.ErrNoRows)
}

func TestWithTxCommit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	err := repo.WithTx(ctx, func(tx db.Repository) error {
		if _, err := tx.DeleteLocale(ctx, "ko"); err != nil {
			return err
		}
		_, err := tx.UpsertMessage(ctx, db.UpsertMessageParams{Locale: "ko", Key: "MSG_A", Value: "가"})
		return err
	})
	require.NoError(t, err)

	got, err := repo.GetMessage(ctx, db.GetMessageParams{Locale: "ko", Key: "MSG_A"})
	require.NoError(t, err)
	assert.Equal(t, "가", got.Value)
}

func TestNewFileDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	repo, err := New(ctx, "sqlite://"+path)
	require.NoError(t, err)
	_, err = repo.UpsertMessage(ctx, db.UpsertMessageParams{Locale: "ko", Key: "MSG_A", Value: "가"})
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	// Reopening keeps existing rows
	repo, err = New(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	got, err := repo.GetMessage(ctx, db.GetMessageParams{Locale: "ko", Key: "MSG_A"})
	require.NoError(t, err)
	assert.Equal(t, "가", got.Value)
}
