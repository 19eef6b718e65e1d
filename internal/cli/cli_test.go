// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/interactive-cv/internal/config"
)

// isolate points the config search at an empty home and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"ICV_PROMPT", "ICV_THEME", "ICV_WELCOME", "ICV_TITLE", "ICV_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	return home
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cv.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "interactive-cv dev (commit unknown, built unknown)\n", out)
}

func TestThemesMarksCurrent(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "[terminal]\ndefault_theme = \"latte\"\n\n[themes.ocean]\ndark = true\n")

	out, err := execute(t, "", "themes", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "  mocha        dunkel\n* latte        hell\n  ocean        dunkel\n", out)

	out, err = execute(t, "", "themes", "--config", path, "--theme", "OCEAN")
	require.NoError(t, err)
	assert.Contains(t, out, "* ocean")

	// unknown --theme keeps the configured default
	out, err = execute(t, "", "themes", "--config", path, "--theme", "neon")
	require.NoError(t, err)
	assert.Contains(t, out, "* latte")
}

func TestUnknownConfiguredThemeStartsWithMocha(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "[terminal]\ndefault_theme = \"dracula\"\n")

	out, err := execute(t, "", "themes", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "* mocha")

	t.Setenv("ICV_THEME", "nope")
	out, err = execute(t, "", "exec", "--config", path, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "Aktuelles Theme: mocha.")
}

func TestInitWritesSample(t *testing.T) {
	home := isolate(t)

	out, err := execute(t, "", "init")
	require.NoError(t, err)
	path := filepath.Join(home, ".interactive-cv", "config.toml")
	assert.Contains(t, out, path)

	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, config.Sample().Profile.Name, cfg.Profile.Name)

	_, err = execute(t, "", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "", "init", "--force")
	assert.NoError(t, err)
}

func TestInitExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "cv.toml")

	_, err := execute(t, "", "init", path)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestExecArgs(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "[terminal]\nprompt = \"$\"\n\n[[commands]]\nname = \"hobbies\"\ndescription = \"Hobbys\"\noutput = \"Klettern\"\n")

	out, err := execute(t, "", "exec", "--config", path, "hobbies", "nope")
	require.NoError(t, err)
	assert.Contains(t, out, "$ hobbies\nKlettern\n")
	assert.Contains(t, out, "$ nope\n")
	assert.Contains(t, out, `Befehl nicht gefunden: nope. Tippe "help".`)
}

func TestExecStdin(t *testing.T) {
	isolate(t)

	out, err := execute(t, "help\nclear\ntheme latte\n", "exec")
	require.NoError(t, err)
	assert.NotContains(t, out, "> help")
	assert.Contains(t, out, "> theme latte\nTheme gewechselt zu: latte\n")
}

func TestExecInvalidConfig(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "[terminal]\nwidth = 3\n")

	_, err := execute(t, "", "exec", "--config", path, "help")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal.width")
}

func TestLogFile(t *testing.T) {
	isolate(t)
	logPath := filepath.Join(t.TempDir(), "cv.log")

	_, err := execute(t, "", "exec", "--log-file", logPath, "--log-level", "debug", "help")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "terminal created")
}

func TestHelpRendersMarkdown(t *testing.T) {
	isolate(t)
	out, err := execute(t, "", "--help")
	require.NoError(t, err)
	for _, want := range []string{"interactive-cv", "Befehle", "exec", "themes", "init", "version"} {
		assert.Contains(t, out, want)
	}
}
