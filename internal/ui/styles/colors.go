// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the themes of the terminal widget.
package styles

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// PALETTE
// =============================================================================

// Palette is the set of color tokens that make up one theme.
// Values are hex colors ("#1E1E2E") or ANSI color numbers ("212").
type Palette struct {
	// Dark selects dark variants for rendered Markdown
	Dark bool `toml:"dark" json:"dark" yaml:"dark"`

	Background string `toml:"background" json:"background" yaml:"background"`
	Surface    string `toml:"surface" json:"surface" yaml:"surface"`
	Foreground string `toml:"foreground" json:"foreground" yaml:"foreground"`
	Muted      string `toml:"muted" json:"muted" yaml:"muted"`
	Border     string `toml:"border" json:"border" yaml:"border"`
	Prompt     string `toml:"prompt" json:"prompt" yaml:"prompt"`
	Accent     string `toml:"accent" json:"accent" yaml:"accent"`
	Link       string `toml:"link" json:"link" yaml:"link"`
	Success    string `toml:"success" json:"success" yaml:"success"`
	Error      string `toml:"error" json:"error" yaml:"error"`
}

// =============================================================================
// BUILT-IN PALETTES (Catppuccin Mocha/Latte)
// =============================================================================

const (
	MochaName = "mocha"
	LatteName = "latte"
)

// Mocha is the dark default theme.
var Mocha = Palette{
	Dark:       true,
	Background: "#1E1E2E", // Base
	Surface:    "#181825", // Mantle
	Foreground: "#CDD6F4", // Text
	Muted:      "#6C7086", // Overlay0
	Border:     "#313244", // Surface0
	Prompt:     "#A6E3A1", // Green
	Accent:     "#CBA6F7", // Mauve
	Link:       "#89B4FA", // Blue
	Success:    "#A6E3A1", // Green
	Error:      "#F38BA8", // Red
}

// Latte is the light theme.
var Latte = Palette{
	Dark:       false,
	Background: "#EFF1F5",
	Surface:    "#E6E9EF",
	Foreground: "#4C4F69",
	Muted:      "#9CA0B0",
	Border:     "#CCD0DA",
	Prompt:     "#40A02B",
	Accent:     "#8839EF",
	Link:       "#1E66F5",
	Success:    "#40A02B",
	Error:      "#D20F39",
}

// WithDefaults fills every empty token from base.
func (p Palette) WithDefaults(base Palette) Palette {
	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	fill(&p.Background, base.Background)
	fill(&p.Surface, base.Surface)
	fill(&p.Foreground, base.Foreground)
	fill(&p.Muted, base.Muted)
	fill(&p.Border, base.Border)
	fill(&p.Prompt, base.Prompt)
	fill(&p.Accent, base.Accent)
	fill(&p.Link, base.Link)
	fill(&p.Success, base.Success)
	fill(&p.Error, base.Error)
	return p
}

// Tokens returns the color tokens by name, in declaration order.
func (p Palette) Tokens() []Token {
	return []Token{
		{"background", p.Background},
		{"surface", p.Surface},
		{"foreground", p.Foreground},
		{"muted", p.Muted},
		{"border", p.Border},
		{"prompt", p.Prompt},
		{"accent", p.Accent},
		{"link", p.Link},
		{"success", p.Success},
		{"error", p.Error},
	}
}

// Token is one named color of a palette.
type Token struct {
	Name  string
	Value string
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor reports whether v is a hex color or an ANSI color number.
// Empty values are accepted and filled from a base palette.
func ValidateColor(v string) error {
	if v == "" || hexColor.MatchString(v) {
		return nil
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 255 {
		return nil
	}
	return fmt.Errorf("invalid color %q, want #RRGGBB or 0-255", v)
}

func color(v string) lipgloss.Color {
	return lipgloss.Color(v)
}
