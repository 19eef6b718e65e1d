// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package widget is the Bubble Tea presentation surface of a terminal
// session: a window with a header, the scrollable transcript, an input line
// and a status bar, or a launcher button while the session is closed.
package widget

import (
	"errors"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jeranaias/interactive-cv/internal/commands"
	"github.com/jeranaias/interactive-cv/internal/dispatch"
	"github.com/jeranaias/interactive-cv/internal/terminal"
)

// =============================================================================
// MESSAGES
// =============================================================================

// ReloadMsg replaces the session options, e.g. after the config file
// changed. Transcript and recall buffer are kept.
type ReloadMsg struct {
	Options terminal.Options
}

// =============================================================================
// MODEL
// =============================================================================

// Layout constants. They must match the rendered heights in view.go.
const (
	windowFrame     = 2 // Window border, top and bottom
	headerHeight    = 1
	inputAreaHeight = 2 // Top border + input line
	statusBarHeight = 1
)

// Model is the Bubble Tea model of one terminal window.
type Model struct {
	term *terminal.Terminal
	keys KeyMap

	input    textinput.Model
	viewport viewport.Model

	// Dimensions
	width  int
	height int

	completions []string
	notice      string
	quitting    bool

	// copyText writes to the system clipboard
	copyText func(string) error
}

// New creates the model for term. The window starts in term's state.
func New(term *terminal.Terminal) Model {
	opts := term.Options()

	input := textinput.New()
	input.Placeholder = `"help" eingeben`
	input.Prompt = opts.Prompt + " "

	m := Model{
		term:     term,
		keys:     DefaultKeyMap(),
		input:    input,
		viewport: viewport.New(opts.Width, opts.Height),
		width:    opts.Width,
		height:   opts.Height,
		copyText: clipboard.WriteAll,
	}
	m.applyStyles()
	m.layout()
	if term.IsOpen() {
		m.input.Focus()
	}
	m.updateViewport()
	return m
}

// Terminal returns the session the model presents.
func (m Model) Terminal() *terminal.Terminal {
	return m.term
}

// Input returns the current input line.
func (m Model) Input() string {
	return m.input.Value()
}

// WithClipboard returns a copy of m that copies output with fn instead of
// the system clipboard.
func (m Model) WithClipboard(fn func(string) error) Model {
	m.copyText = fn
	return m
}

// Notice returns the feedback shown in the status bar, if any.
func (m Model) Notice() string {
	return m.notice
}

// Completions returns the candidates of the last tab completion.
func (m Model) Completions() []string {
	return m.completions
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.term.IsOpen() {
		return textinput.Blink
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.updateViewport()
		return m, nil

	case tea.KeyMsg:
		if m.term.IsOpen() {
			return m.handleKey(msg)
		}
		return m.handleClosedKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case ReloadMsg:
		if err := m.term.Reload(msg.Options); err != nil {
			return m, nil
		}
		m.input.Prompt = m.term.Options().Prompt + " "
		m.applyStyles()
		m.layout()
		m.updateViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleClosedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Open):
		if err := m.term.Open(); err != nil {
			return m.quit()
		}
		m.updateViewport()
		return m, m.input.Focus()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Close):
		_ = m.term.Close()
		m.input.Blur()
		m.completions = nil
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.RecallUp):
		m.setInput(m.term.RecallUp())
		return m, nil

	case key.Matches(msg, m.keys.RecallDown):
		m.setInput(m.term.RecallDown())
		return m, nil

	case key.Matches(msg, m.keys.Complete):
		m.complete()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.term.CycleTheme()
		m.applyStyles()
		m.updateViewport()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		m.copyLast()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
		return m, nil
	}

	m.completions = nil
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.completions = nil

	instr, err := m.term.Submit(line)
	if errors.Is(err, terminal.ErrDestroyed) {
		return m.quit()
	}
	if instr != dispatch.NoOp {
		m.updateViewport()
	}
	return m, nil
}

func (m *Model) complete() {
	value := m.input.Value()
	matches := m.term.Complete(value)
	switch len(matches) {
	case 0:
		m.completions = nil
	case 1:
		m.setInput(matches[0] + " ")
		m.completions = nil
	default:
		if prefix := commands.CommonPrefix(matches); len(prefix) > len(value) {
			m.setInput(prefix)
		}
		m.completions = matches
	}
}

// copyLast copies the newest output without styling to the clipboard.
func (m *Model) copyLast() {
	entry, ok := m.term.Transcript().Last()
	if !ok || entry.Output == "" {
		m.notice = "Nichts zu kopieren"
		return
	}
	if err := m.copyText(ansi.Strip(entry.Output)); err != nil {
		m.term.Logger().Warn().Err(err).Msg("clipboard write failed")
		m.notice = "Kopieren fehlgeschlagen"
		return
	}
	m.notice = "Ausgabe kopiert"
}

func (m *Model) setInput(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.term.State() != terminal.StateDestroyed {
		_ = m.term.Destroy()
	}
	m.quitting = true
	return m, tea.Quit
}

// =============================================================================
// LAYOUT
// =============================================================================

func (m *Model) layout() {
	vpHeight := m.height - windowFrame - headerHeight - inputAreaHeight - statusBarHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	vpWidth := m.width - windowFrame
	if vpWidth < 1 {
		vpWidth = 1
	}
	m.viewport.Width = vpWidth
	m.viewport.Height = vpHeight

	inputWidth := vpWidth - 2 - len(m.input.Prompt) // InputLine padding
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.input.Width = inputWidth
}

func (m *Model) applyStyles() {
	st := m.term.Styles()
	m.input.PromptStyle = st.Prompt
	m.input.TextStyle = st.InputText
	m.input.PlaceholderStyle = st.Placeholder
}

// updateViewport re-renders the transcript and follows the newest entry.
func (m *Model) updateViewport() {
	m.viewport.SetContent(m.transcript())
	m.viewport.GotoBottom()
}
