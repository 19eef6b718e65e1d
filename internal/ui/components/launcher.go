// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/interactive-cv/internal/ui/styles"
)

// LauncherLabel is the caption of the closed-window button.
const LauncherLabel = ">_ Terminal öffnen"

// Launcher is shown while the window is closed.
type Launcher struct {
	Hint   string // e.g. "enter"
	Width  int
	Height int
}

// View renders the launcher button centered in the available space.
func (l Launcher) View(st *styles.Styles) string {
	button := st.Launcher.Render(LauncherLabel)
	if l.Hint != "" {
		button = lipgloss.JoinVertical(lipgloss.Center, button, st.Muted.Render(l.Hint))
	}
	if l.Width <= 0 || l.Height <= 0 {
		return button
	}
	return lipgloss.Place(l.Width, l.Height, lipgloss.Center, lipgloss.Center, button)
}
