// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile(t *testing.T) {
	large := make([]byte, 1024*1024)
	for i := range large {
		large[i] = byte(i % 256)
	}

	tests := []struct {
		name string
		rel  string
		data []byte
	}{
		{"basic", "config.toml", []byte("[terminal]\nprompt = \">\"\n")},
		{"creates parent dirs", filepath.Join("a", "b", "config.toml"), []byte("x")},
		{"empty", "empty.toml", []byte{}},
		{"large", "large.bin", large},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.rel)
			require.NoError(t, AtomicWriteFile(path, tt.data, 0644))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, len(tt.data), len(got))
			assert.Equal(t, tt.data, got)
		})
	}
}

func TestAtomicWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, AtomicWriteFile(path, []byte("initial"), 0644))
	require.NoError(t, AtomicWriteFile(path, []byte("updated"), 0644))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "updated", string(got))

	// no temp files are left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAtomicWriteFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "newdir", "config.toml")
	require.NoError(t, AtomicWriteFile(path, []byte("test"), 0600))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestAtomicWriteFileCleansUpOnFailure(t *testing.T) {
	dir := t.TempDir()
	// a directory in the way makes the final rename fail
	target := filepath.Join(dir, "config.toml")
	require.NoError(t, os.Mkdir(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), nil, 0644))

	assert.Error(t, AtomicWriteFile(target, []byte("x"), 0644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config.toml", entries[0].Name())
}

func TestAtomicWriteFileIntoFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	assert.Error(t, AtomicWriteFile(filepath.Join(blocker, "config.toml"), []byte("x"), 0644))
}

// =============================================================================
// PATH TESTS
// =============================================================================

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/.interactive-cv/config.toml", filepath.Join(home, ".interactive-cv", "config.toml")},
		{"/etc/config.toml", "/etc/config.toml"},
		{"relative/config.toml", "relative/config.toml"},
		{"~other/config.toml", "~other/config.toml"},
	}

	for _, tt := range tests {
		got, err := ExpandHome(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
