package db

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestIsNoRows(t *testing.T) {
	assert.False(t, IsNoRows(nil))
	assert.False(t, IsNoRows(errors.New("boom")))
	assert.True(t, IsNoRows(ErrNoRows))
	assert.True(t, IsNoRows(sql.ErrNoRows))
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(fmt.Errorf("getting message: %w", ErrNoRows)))
}

func TestIsPostgresURL(t *testing.T) {
	assert.True(t, IsPostgresURL("postgres://rogue@localhost/rogue"))
	assert.True(t, IsPostgresURL("postgresql://localhost"))
	assert.False(t, IsPostgresURL("./rogue.db"))
	assert.False(t, IsPostgresURL("sqlite://rogue.db"))
}
