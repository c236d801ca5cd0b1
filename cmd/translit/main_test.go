package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunArgs(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"--lang", "ko_KR.UTF-8", "alpha", "beta"}, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Equal(t, "알파 베타\n", out.String())
}

func TestRunStdin(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("tang\nexdi\n\nvitae lumen\n")
	err := run(context.Background(), []string{"--force", "--workers", "2"}, in, &out)
	require.NoError(t, err)
	assert.Equal(t, "탕\n엑스디\n\n비타에 루멘\n", out.String())
}

func TestRunEnglishLocaleIsIdentity(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"--lang", "en_US.UTF-8", "alpha"}, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Equal(t, "alpha\n", out.String())
}

func TestRunExplain(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"--force", "--explain", "tang"}, strings.NewReader(""), &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "탕", lines[0])
	assert.Contains(t, lines[1], "ㅌ ㅏ ㅇ")
	assert.Contains(t, lines[1], "tang")
}

func TestRunRejectsBadWorkers(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"--workers", "0", "a"}, strings.NewReader(""), &out)
	assert.Error(t, err)
}
