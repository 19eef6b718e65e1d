// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/jeranaias/interactive-cv/internal/commands"
	"github.com/jeranaias/interactive-cv/internal/portfolio"
	"github.com/jeranaias/interactive-cv/internal/ui/styles"
)

// ThemeCommandName is the built-in that lists and switches themes.
const ThemeCommandName = "theme"

// Theme returns the active theme key.
func (t *Terminal) Theme() string {
	return t.theme
}

// Themes returns the theme table.
func (t *Terminal) Themes() *styles.Table {
	return t.themes
}

// SetTheme activates name. An unknown name is ignored with a warning and
// false is returned.
func (t *Terminal) SetTheme(name string) bool {
	if !t.themes.Has(name) {
		t.logger.Warn().Str("theme", name).Msg("unknown theme, keeping current")
		return false
	}
	t.theme = t.themes.Resolve(name)
	t.logger.Debug().Str("theme", t.theme).Msg("theme changed")
	return true
}

// CycleTheme advances to the next theme in table order, wrapping around,
// and returns the new key.
func (t *Terminal) CycleTheme() string {
	t.theme = t.themes.Next(t.theme)
	t.logger.Debug().Str("theme", t.theme).Msg("theme cycled")
	return t.theme
}

// Styles returns the styles of the active theme. They are built once per
// theme and cached until the next reload.
func (t *Terminal) Styles() *styles.Styles {
	if s, ok := t.styles[t.theme]; ok {
		return s
	}
	palette, _ := t.themes.Get(t.theme)
	s := styles.NewStyles(t.renderer, palette)
	t.styles[t.theme] = s
	return s
}

// Markdown returns the renderer for project descriptions: the configured
// one, or a Glamour renderer matching the active theme.
func (t *Terminal) Markdown() portfolio.MarkdownRenderer {
	if t.opts.Markdown != nil {
		return t.opts.Markdown
	}
	if md, ok := t.markdown[t.theme]; ok {
		return md
	}

	style := "notty"
	if t.renderer.ColorProfile() != termenv.Ascii {
		palette, _ := t.themes.Get(t.theme)
		style = palette.MarkdownStyle()
	}
	md, err := portfolio.NewGlamour(style, t.opts.Width-4)
	if err != nil {
		t.logger.Warn().Err(err).Msg("markdown disabled")
		md = portfolio.PlainMarkdown{}
	}
	t.markdown[t.theme] = md
	return md
}

func (t *Terminal) themeCommand() commands.Command {
	return commands.Command{
		Name:        ThemeCommandName,
		Description: "Farbschema wechseln ({themes})",
		Output: commands.Computed(func(args []string) (string, error) {
			names := strings.Join(t.themes.Names(), ", ")
			if len(args) == 0 {
				return fmt.Sprintf("Aktuelles Theme: %s. Verfügbar: %s", t.theme, names), nil
			}
			if !t.SetTheme(args[0]) {
				return fmt.Sprintf("Unbekanntes Theme: %s. Verfügbar: %s", args[0], names), nil
			}
			return fmt.Sprintf("Theme gewechselt zu: %s", t.theme), nil
		}),
	}
}
