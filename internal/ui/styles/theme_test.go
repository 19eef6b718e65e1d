// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// THEME TABLE TESTS
// =============================================================================

func TestNewTableBuiltins(t *testing.T) {
	table := NewTable()
	assert.Equal(t, []string{MochaName, LatteName}, table.Names())

	p, ok := table.Get("MOCHA")
	require.True(t, ok)
	assert.Equal(t, Mocha, p)
}

func TestNewTableCustomThemes(t *testing.T) {
	table := NewTable(
		Named{Name: "Dracula", Palette: Palette{Dark: true, Accent: "#BD93F9"}},
		Named{Name: "latte", Palette: Palette{Accent: "#000000"}},
		Named{Name: "", Palette: Palette{}},
	)

	assert.Equal(t, []string{"mocha", "latte", "dracula"}, table.Names())

	dracula, ok := table.Get("dracula")
	require.True(t, ok)
	assert.Equal(t, "#BD93F9", dracula.Accent)
	assert.Equal(t, Mocha.Background, dracula.Background, "missing tokens come from mocha")

	latte, _ := table.Get("latte")
	assert.Equal(t, "#000000", latte.Accent)
	assert.Equal(t, Latte.Background, latte.Background)
}

func TestTableNextWraps(t *testing.T) {
	table := NewTable(Named{Name: "nord", Palette: Palette{Dark: true}})

	assert.Equal(t, "latte", table.Next("mocha"))
	assert.Equal(t, "nord", table.Next("latte"))
	assert.Equal(t, "mocha", table.Next("nord"))
	assert.Equal(t, "mocha", table.Next("unknown"))
}

func TestTableResolve(t *testing.T) {
	table := NewTable()
	assert.Equal(t, "latte", table.Resolve("Latte"))
	assert.Equal(t, MochaName, table.Resolve("solarized"))
	assert.Equal(t, MochaName, table.Resolve(""))
}

// =============================================================================
// PALETTE TESTS
// =============================================================================

func TestValidateColor(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"", false},
		{"#fff", false},
		{"#1E1E2E", false},
		{"212", false},
		{"0", false},
		{"256", true},
		{"red", true},
		{"#12345", true},
	}
	for _, tc := range tests {
		err := ValidateColor(tc.value)
		if (err != nil) != tc.wantErr {
			t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tc.value, err, tc.wantErr)
		}
	}
}

func TestPaletteTokens(t *testing.T) {
	tokens := Mocha.Tokens()
	require.Len(t, tokens, 10)
	assert.Equal(t, Token{"background", Mocha.Background}, tokens[0])
	for _, tok := range tokens {
		assert.NoError(t, ValidateColor(tok.Value), tok.Name)
	}
}

func TestMarkdownStyle(t *testing.T) {
	assert.Equal(t, "dark", Mocha.MarkdownStyle())
	assert.Equal(t, "light", Latte.MarkdownStyle())
}

// =============================================================================
// STYLES TESTS
// =============================================================================

func TestNewStyles(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyles(NewRenderer(&buf), Latte)

	assert.Equal(t, Latte, s.Palette)
	assert.Contains(t, s.Prompt.Render(">"), ">")
	assert.Contains(t, s.Window.Render("body"), "body")

	s = NewStyles(nil, Mocha)
	assert.Contains(t, s.Output.Render("x"), "x")
}
