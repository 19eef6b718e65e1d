// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// PARSER TESTS
// =============================================================================

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantArgs []string
		wantRaw  string
	}{
		{"help", "help", nil, "help"},
		{"  theme   latte ", "theme", []string{"latte"}, "theme   latte"},
		{"projects a b\tc", "projects", []string{"a", "b", "c"}, "projects a b\tc"},
		{"", "", nil, ""},
		{"   \t ", "", nil, ""},
	}

	for _, tc := range tests {
		got := Parse(tc.input)
		if got.CommandName != tc.wantName {
			t.Errorf("Parse(%q).CommandName = %q, want %q", tc.input, got.CommandName, tc.wantName)
		}
		if !equalStrings(got.Args, tc.wantArgs) {
			t.Errorf("Parse(%q).Args = %v, want %v", tc.input, got.Args, tc.wantArgs)
		}
		if got.RawInput != tc.wantRaw {
			t.Errorf("Parse(%q).RawInput = %q, want %q", tc.input, got.RawInput, tc.wantRaw)
		}
	}
}

func TestIsClear(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"clear", true},
		{"CLEAR", true},
		{"  Clear  ", true},
		{"clear now", false},
		{"clea", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := IsClear(tc.input); got != tc.want {
			t.Errorf("IsClear(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestExtractCommandName(t *testing.T) {
	assert.Equal(t, "theme", ExtractCommandName("theme latte"))
	assert.Equal(t, "", ExtractCommandName("   "))
}

// =============================================================================
// OUTPUT TESTS
// =============================================================================

func TestOutputVariants(t *testing.T) {
	lit := Literal("hallo")
	assert.Equal(t, OutputLiteral, lit.Kind())
	assert.Equal(t, "hallo", lit.Text())

	comp := Computed(func(args []string) (string, error) {
		return strings.Join(args, "+"), nil
	})
	assert.Equal(t, OutputComputed, comp.Kind())
	out, err := comp.Call([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a+b", out)

	out, err = Computed(nil).Call(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

// =============================================================================
// TABLE TESTS
// =============================================================================

func TestResolveIsCaseInsensitive(t *testing.T) {
	table := Build(nil, []Command{{Name: "Skills", Description: "x", Output: Literal("go")}})

	for _, name := range []string{"help", "HELP", "Help"} {
		cmd, ok := table.Resolve(name)
		require.True(t, ok, name)
		assert.Equal(t, HelpName, cmd.Name)
	}
	for _, name := range []string{"skills", "SKILLS", "sKiLlS"} {
		cmd, ok := table.Resolve(name)
		require.True(t, ok, name)
		assert.Equal(t, "go", cmd.Output.Text())
	}

	_, ok := table.Resolve("missing")
	assert.False(t, ok)
}

func TestBuildKeepsProtectedBuiltins(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	overrides := []Command{
		{Name: "HELP", Description: "hijacked", Output: Literal("nope")},
		{Name: "clear", Description: "hijacked", Output: Literal("nope")},
		{Name: "whoami", Description: "me", Output: Literal("ich")},
	}
	table := Build(nil, overrides, WithLogger(logger))

	help, ok := table.Resolve("help")
	require.True(t, ok)
	assert.Equal(t, Help.Description, help.Description)
	assert.Equal(t, OutputComputed, help.Output.Kind())

	clear, ok := table.Resolve("clear")
	require.True(t, ok)
	assert.Equal(t, Clear.Description, clear.Description)

	assert.Equal(t, []string{"help", "clear", "whoami"}, table.Names())
	assert.Equal(t, 2, strings.Count(buf.String(), "protected command cannot be overridden"))
}

func TestBuildOverridesWinForOtherKeys(t *testing.T) {
	builtins := []Command{
		Help,
		Clear,
		{Name: "whoami", Description: "builtin", Output: Literal("builtin")},
		{Name: "contact", Description: "contact", Output: Literal("mail")},
	}
	overrides := []Command{
		{Name: "WhoAmI", Description: "custom", Output: Literal("custom")},
		{Name: "blog", Description: "blog", Output: Literal("posts")},
	}
	table := Build(builtins, overrides)

	cmd, ok := table.Resolve("whoami")
	require.True(t, ok)
	assert.Equal(t, "custom", cmd.Output.Text())

	// An overridden key keeps its builtin position.
	assert.Equal(t, []string{"help", "clear", "whoami", "contact", "blog"}, table.Names())
}

func TestBuildAlwaysHasOneHelpAndClear(t *testing.T) {
	cases := [][]Command{
		nil,
		{{Name: "help"}, {Name: "Help"}, {Name: "CLEAR"}},
		{{Name: "x", Output: Literal("x")}},
	}
	for _, overrides := range cases {
		table := Build(nil, overrides)
		names := table.Names()
		assert.Equal(t, 1, countOf(names, "help"))
		assert.Equal(t, 1, countOf(names, "clear"))
	}
}

func TestBuildSkipsBlankNames(t *testing.T) {
	table := Build(nil, []Command{{Name: "   ", Output: Literal("x")}})
	assert.Equal(t, 2, table.Len())
}

// =============================================================================
// HELP TESTS
// =============================================================================

func TestHelpListsEveryCommand(t *testing.T) {
	builtins := []Command{
		Help,
		Clear,
		{Name: "theme", Description: "Wechselt das Farbschema ({themes})"},
	}
	themes := "mocha, latte"
	table := Build(builtins, []Command{{Name: "blog", Description: "Artikel"}},
		WithPlaceholder("themes", func() string { return themes }))

	help, _ := table.Resolve("help")
	out, err := help.Output.Call(nil)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "help   → Zeigt alle verfügbaren Befehle an", lines[0])
	assert.Equal(t, "clear  → Leert das Terminal", lines[1])
	assert.Equal(t, "theme  → Wechselt das Farbschema (mocha, latte)", lines[2])
	assert.Equal(t, "blog   → Artikel", lines[3])
	assert.Equal(t, 1, strings.Count(out, Clear.Description))

	// Placeholders are resolved at call time.
	themes = "mocha, latte, dracula"
	out, err = help.Output.Call(nil)
	require.NoError(t, err)
	assert.Contains(t, out, "(mocha, latte, dracula)")
}

func TestDescribeWithoutPlaceholders(t *testing.T) {
	table := Build(nil, nil)
	cmd := Command{Name: "x", Description: "{unknown} bleibt"}
	assert.Equal(t, "{unknown} bleibt", table.Describe(cmd))
}

// =============================================================================
// COMPLETION TESTS
// =============================================================================

func TestComplete(t *testing.T) {
	table := Build(nil, []Command{
		{Name: "contact"},
		{Name: "projects"},
		{Name: "cv"},
	})

	tests := []struct {
		input string
		want  []string
	}{
		{"c", []string{"clear", "contact", "cv"}},
		{"CO", []string{"contact"}},
		{"pro", []string{"projects"}},
		{"zzz", nil},
		{"projects ", nil},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, table.Complete(tc.input), tc.input)
	}
}

func TestCommonPrefix(t *testing.T) {
	assert.Equal(t, "c", CommonPrefix([]string{"clear", "contact", "cv"}))
	assert.Equal(t, "pro", CommonPrefix([]string{"projects", "profile"}))
	assert.Equal(t, "help", CommonPrefix([]string{"help"}))
	assert.Equal(t, "", CommonPrefix(nil))

	// names sharing only a leading byte share no rune
	assert.Equal(t, "", CommonPrefix([]string{"ä", "ö"}))
	assert.Equal(t, "grü", CommonPrefix([]string{"grüße", "grün"}))
	prefix := CommonPrefix([]string{"über", "ökologie"})
	assert.True(t, utf8.ValidString(prefix))
}

func TestComputedErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	cmd := Command{Name: "x", Output: Computed(func([]string) (string, error) { return "", boom })}
	_, err := cmd.Output.Call(nil)
	assert.ErrorIs(t, err, boom)
}

// =============================================================================
// HELPERS
// =============================================================================

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func countOf(names []string, name string) int {
	n := 0
	for _, s := range names {
		if s == name {
			n++
		}
	}
	return n
}
