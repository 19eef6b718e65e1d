// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/text/cases"
)

// =============================================================================
// THEME TABLE
// =============================================================================

// Named pairs a theme name with its palette.
type Named struct {
	Name    string
	Palette Palette
}

// Table holds the available themes in cycle order: mocha, latte, then
// custom themes in the order given.
type Table struct {
	themes *orderedmap.OrderedMap[string, Palette]
}

// NewTable merges custom themes over the built-in ones. A custom theme
// named like a built-in replaces it in place. Missing tokens are filled from
// Mocha (dark) or Latte (light).
func NewTable(custom ...Named) *Table {
	t := &Table{themes: orderedmap.New[string, Palette]()}
	t.themes.Set(MochaName, Mocha)
	t.themes.Set(LatteName, Latte)

	for _, n := range custom {
		key := themeKey(n.Name)
		if key == "" {
			continue
		}
		base := Latte
		if n.Palette.Dark {
			base = Mocha
		}
		t.themes.Set(key, n.Palette.WithDefaults(base))
	}
	return t
}

func themeKey(name string) string {
	return cases.Fold().String(name)
}

// Get returns the palette for name (case-insensitive).
func (t *Table) Get(name string) (Palette, bool) {
	return t.themes.Get(themeKey(name))
}

// Has reports whether name is a known theme.
func (t *Table) Has(name string) bool {
	_, ok := t.Get(name)
	return ok
}

// Resolve returns the key for name, or mocha if name is unknown.
func (t *Table) Resolve(name string) string {
	if key := themeKey(name); t.Has(key) {
		return key
	}
	return MochaName
}

// Names returns the theme keys in cycle order.
func (t *Table) Names() []string {
	names := make([]string, 0, t.themes.Len())
	for pair := t.themes.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Len returns the number of themes.
func (t *Table) Len() int {
	return t.themes.Len()
}

// Next returns the theme after current, wrapping from the last to the first.
// An unknown current yields the first theme.
func (t *Table) Next(current string) string {
	names := t.Names()
	if len(names) == 0 {
		return ""
	}
	key := themeKey(current)
	for i, name := range names {
		if name == key {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// =============================================================================
// RENDERER
// =============================================================================

// NewRenderer returns a Lip Gloss renderer for w with the color profile
// detected from the environment.
func NewRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.EnvColorProfile())
	return r
}

// =============================================================================
// STYLES
// =============================================================================

// Styles holds the styled components for one palette.
type Styles struct {
	Palette Palette

	// ==========================================================================
	// WINDOW
	// ==========================================================================

	Window      lipgloss.Style
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	Body        lipgloss.Style

	// ==========================================================================
	// TRANSCRIPT
	// ==========================================================================

	Welcome lipgloss.Style
	Prompt  lipgloss.Style
	Command lipgloss.Style
	Output  lipgloss.Style

	// ==========================================================================
	// INPUT LINE
	// ==========================================================================

	InputLine   lipgloss.Style
	InputText   lipgloss.Style
	Placeholder lipgloss.Style
	Completion  lipgloss.Style

	// ==========================================================================
	// SEMANTIC
	// ==========================================================================

	Accent  lipgloss.Style
	Muted   lipgloss.Style
	Link    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style

	// Launcher is shown while the window is closed
	Launcher lipgloss.Style
}

// NewStyles builds the styles for p using renderer r.
// A nil renderer uses the default Lip Gloss renderer.
func NewStyles(r *lipgloss.Renderer, p Palette) *Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	s := &Styles{Palette: p}

	s.Window = r.NewStyle().
		Foreground(color(p.Foreground)).
		Background(color(p.Background)).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color(p.Border))

	s.Header = r.NewStyle().
		Foreground(color(p.Muted)).
		Background(color(p.Surface)).
		Padding(0, 1)

	s.HeaderTitle = r.NewStyle().
		Bold(true).
		Foreground(color(p.Foreground)).
		Background(color(p.Surface))

	s.Body = r.NewStyle().
		Foreground(color(p.Foreground)).
		Padding(0, 1)

	s.Welcome = r.NewStyle().
		Foreground(color(p.Accent)).
		Bold(true)

	s.Prompt = r.NewStyle().
		Foreground(color(p.Prompt)).
		Bold(true)

	s.Command = r.NewStyle().
		Foreground(color(p.Foreground))

	s.Output = r.NewStyle().
		Foreground(color(p.Foreground))

	s.InputLine = r.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(color(p.Border)).
		Padding(0, 1)

	s.InputText = r.NewStyle().
		Foreground(color(p.Foreground))

	s.Placeholder = r.NewStyle().
		Foreground(color(p.Muted)).
		Italic(true)

	s.Completion = r.NewStyle().
		Foreground(color(p.Muted))

	s.Accent = r.NewStyle().Foreground(color(p.Accent)).Bold(true)
	s.Muted = r.NewStyle().Foreground(color(p.Muted))
	s.Link = r.NewStyle().Foreground(color(p.Link)).Underline(true)
	s.Success = r.NewStyle().Foreground(color(p.Success))
	s.Error = r.NewStyle().Foreground(color(p.Error))

	s.Launcher = r.NewStyle().
		Foreground(color(p.Accent)).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color(p.Border)).
		Padding(0, 2)

	return s
}

// MarkdownStyle returns the Glamour standard style matching the palette.
func (p Palette) MarkdownStyle() string {
	if p.Dark {
		return "dark"
	}
	return "light"
}
