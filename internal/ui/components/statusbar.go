// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/interactive-cv/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT - Key hints and completion candidates
// =============================================================================

// StatusBar is the line below the input.
type StatusBar struct {
	Bindings    []key.Binding // Hints, shown when there are no candidates
	Completions []string      // Tab completion candidates
	Notice      string        // One-shot feedback, e.g. after copying
	Width       int
}

// View renders the completion candidates if any, then the notice, otherwise
// the key hints. The result is truncated to Width.
func (s StatusBar) View(st *styles.Styles) string {
	switch {
	case len(s.Completions) > 0:
		return st.Completion.Render(s.truncate(strings.Join(s.Completions, "  ")))
	case s.Notice != "":
		return st.Accent.Render(s.truncate(s.Notice))
	default:
		return st.Muted.Render(s.truncate(s.hints()))
	}
}

func (s StatusBar) hints() string {
	parts := make([]string, 0, len(s.Bindings))
	for _, b := range s.Bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

func (s StatusBar) truncate(text string) string {
	if s.Width <= 0 {
		return text
	}
	return runewidth.Truncate(text, s.Width, "…")
}
