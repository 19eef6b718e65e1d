// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the keyboard bindings of the terminal window.
type KeyMap struct {
	Open       key.Binding
	Submit     key.Binding
	RecallUp   key.Binding
	RecallDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Complete   key.Binding
	CycleTheme key.Binding
	Copy       key.Binding
	Close      key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "öffnen"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ausführen"),
		),
		RecallUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "vorheriger Befehl"),
		),
		RecallDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "nächster Befehl"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "hoch"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "runter"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "vervollständigen"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "Theme"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "Ausgabe kopieren"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "schließen"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "beenden"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Complete, k.RecallUp, k.CycleTheme, k.Close, k.Quit}
}

// FullHelp returns all bindings of the open window, grouped.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Complete, k.RecallUp, k.RecallDown},
		{k.PageUp, k.PageDown},
		{k.CycleTheme, k.Copy, k.Close, k.Quit},
	}
}
