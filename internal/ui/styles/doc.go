// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the themes of the terminal widget.

# Palettes (colors.go)

A Palette is a flat set of color tokens. Two palettes are built in, both
taken from Catppuccin:

	mocha - dark, the default
	latte - light

Custom palettes only need the tokens they change; the rest are filled from
Mocha (when Dark is set) or Latte.

# Theme Table (theme.go)

Table keeps themes in cycle order. Next wraps from the last theme back to
the first:

	themes := styles.NewTable(styles.Named{Name: "dracula", Palette: p})
	themes.Names()        // [mocha latte dracula]
	themes.Next("dracula") // mocha

# Styles

NewStyles turns a palette into Lip Gloss styles for one renderer:

	r := styles.NewRenderer(os.Stdout)
	s := styles.NewStyles(r, styles.Mocha)
	fmt.Println(s.Prompt.Render(">"))
*/
package styles
