// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   LogLevel
		want zerolog.Level
	}{
		{LevelDebug, zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{LevelWarn, zerolog.WarnLevel},
		{LevelError, zerolog.ErrorLevel},
		{"verbose", zerolog.WarnLevel},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseLevel(tc.in), string(tc.in))
	}
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("ICV_LOG_LEVEL", "")
	t.Setenv("DEBUG", "")
	assert.Equal(t, LevelWarn, LevelFromEnv(LevelWarn))

	t.Setenv("DEBUG", "true")
	assert.Equal(t, LevelDebug, LevelFromEnv(LevelWarn))

	t.Setenv("ICV_LOG_LEVEL", "error")
	assert.Equal(t, LevelError, LevelFromEnv(LevelWarn))
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelWarn, false)

	logger.Info().Msg("hidden")
	logger.Warn().Str("command", "help").Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"command":"help"`)
}

func TestOpen(t *testing.T) {
	logger, closer, err := Open("", LevelInfo)
	require.NoError(t, err)
	logger.Warn().Msg("discarded")
	require.NoError(t, closer.Close())

	path := filepath.Join(t.TempDir(), "icv.log")
	logger, closer, err = Open(path, LevelInfo)
	require.NoError(t, err)
	logger.Info().Msg("written")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written")

	_, _, err = Open(filepath.Join(t.TempDir(), "missing", "x.log"), LevelInfo)
	assert.Error(t, err)
}
