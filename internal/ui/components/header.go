// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/interactive-cv/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT - Title bar of the terminal window
// =============================================================================

// windowDots mimics the close/minimize/maximize buttons.
const windowDots = "● ● ●"

// Header is the title bar.
type Header struct {
	Title string // Window title, e.g. "rene@bewerbung: ~"
	Theme string // Active theme key
	Width int    // Available width
}

// View renders the header: dots on the left, the title centered and the
// theme on the right. Narrow widths drop the theme first, then the dots.
func (h Header) View(st *styles.Styles) string {
	width := h.Width
	if width < 20 {
		width = 20
	}
	inner := width - 2 // Header padding

	left := st.Accent.Render(windowDots)
	right := st.Muted.Render(h.Theme)
	title := runewidth.Truncate(h.Title, inner, "…")

	leftW := runewidth.StringWidth(windowDots)
	rightW := runewidth.StringWidth(h.Theme)
	titleW := runewidth.StringWidth(title)

	if leftW+titleW+rightW+4 > inner {
		right, rightW = "", 0
	}
	if leftW+titleW+2 > inner {
		left, leftW = "", 0
	}

	// center the title in the full width, then fit the sides around it
	pad := inner - titleW
	before := pad / 2
	after := pad - before

	var sb strings.Builder
	sb.WriteString(left)
	sb.WriteString(strings.Repeat(" ", max(before-leftW, 0)))
	sb.WriteString(st.HeaderTitle.Render(title))
	sb.WriteString(strings.Repeat(" ", max(after-rightW, 0)))
	sb.WriteString(right)

	return st.Header.Width(width).Render(sb.String())
}

// ViewPlain renders the header without styling, for line mode.
func (h Header) ViewPlain() string {
	if h.Theme == "" {
		return h.Title
	}
	return h.Title + " [" + h.Theme + "]"
}
