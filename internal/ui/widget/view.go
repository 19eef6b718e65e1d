// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/interactive-cv/internal/ui/components"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.term.Styles()
	frame := m.term.Frame()

	if !m.term.IsOpen() {
		return components.Launcher{
			Hint:   m.keys.Open.Help().Key,
			Width:  m.width,
			Height: m.height,
		}.View(st)
	}

	inner := m.viewport.Width

	header := components.Header{
		Title: frame.Title,
		Theme: frame.Theme,
		Width: inner,
	}.View(st)

	input := st.InputLine.Width(inner).Render(m.input.View())

	status := components.StatusBar{
		Bindings:    m.keys.ShortHelp(),
		Completions: m.completions,
		Notice:      m.notice,
		Width:       inner,
	}.View(st)

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		input,
		status,
	)
	return st.Window.Render(body)
}

func (m Model) transcript() string {
	frame := m.term.Frame()
	return components.Transcript{
		Welcome: frame.Welcome,
		Prompt:  frame.Prompt,
		Entries: frame.Entries,
		Width:   m.viewport.Width,
	}.View(m.term.Styles())
}
