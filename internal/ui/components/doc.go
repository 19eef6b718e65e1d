// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components renders the pieces of the terminal window.

# Components

Header (header.go) - Title bar with window dots, title and active theme.
Transcript (transcript.go) - Welcome banner followed by every entry as a
prompt line and its output.
StatusBar (statusbar.go) - Key hints and completion candidates.
Launcher (launcher.go) - The button shown while the window is closed.

# Usage

All components take the active *styles.Styles so a theme switch restyles
everything on the next render:

	st := term.Styles()
	header := components.Header{Title: frame.Title, Theme: frame.Theme, Width: 80}
	view := header.View(st)
*/
package components
