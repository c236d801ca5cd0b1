package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyHandlerWritesAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, slog.LevelInfo)).With("lang", "ko")

	log.Info("loaded catalog", "entries", 3)

	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "loaded catalog")
	assert.Contains(t, out, "lang")
	assert.Contains(t, out, "entries")
}

func TestPrettyHandlerFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, slog.LevelWarn))

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WRN")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
