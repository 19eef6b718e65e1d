// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package portfolio provides the CV records and the informational commands
// that present them.
package portfolio

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/interactive-cv/internal/ui/styles"
)

// =============================================================================
// RECORDS
// =============================================================================

// Profile describes the person behind the terminal.
type Profile struct {
	Name     string       `toml:"name" json:"name" yaml:"name"`
	Role     string       `toml:"role" json:"role" yaml:"role"`
	Location string       `toml:"location" json:"location" yaml:"location"`
	Summary  string       `toml:"summary" json:"summary" yaml:"summary"`
	Email    string       `toml:"email" json:"email" yaml:"email"`
	Skills   []SkillGroup `toml:"skills" json:"skills" yaml:"skills"`
	Links    []Link       `toml:"links" json:"links" yaml:"links"`
}

// SkillGroup is a category of skills, e.g. "Sprachen: Go, TypeScript".
type SkillGroup struct {
	Category string   `toml:"category" json:"category" yaml:"category"`
	Items    []string `toml:"items" json:"items" yaml:"items"`
}

// Link is a labeled URL.
type Link struct {
	Label string `toml:"label" json:"label" yaml:"label"`
	URL   string `toml:"url" json:"url" yaml:"url"`
}

// Project is one entry of the projects command.
type Project struct {
	Name         string   `toml:"name" json:"name" yaml:"name"`
	Description  string   `toml:"description" json:"description" yaml:"description"` // Markdown
	Technologies []string `toml:"technologies" json:"technologies" yaml:"technologies"`
	URL          string   `toml:"url" json:"url" yaml:"url"`
	GithubURL    string   `toml:"github_url" json:"github_url" yaml:"github_url"`
}

// =============================================================================
// RENDERING
// =============================================================================

// MarkdownRenderer renders Markdown to terminal text.
// *glamour.TermRenderer satisfies it.
type MarkdownRenderer interface {
	Render(md string) (string, error)
}

// PlainMarkdown returns Markdown unchanged.
type PlainMarkdown struct{}

// Render implements MarkdownRenderer.
func (PlainMarkdown) Render(md string) (string, error) {
	return md, nil
}

// NewGlamour returns a Glamour renderer using the named standard style
// ("dark", "light", "notty") and word wrap width.
func NewGlamour(style string, width int) (MarkdownRenderer, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r, nil
}

// Options wires the commands to the presentation layer.
type Options struct {
	// Markdown renders project descriptions. Nil keeps them verbatim.
	Markdown func() MarkdownRenderer

	// Styles returns the active theme styles. Nil renders unstyled text.
	Styles func() *styles.Styles
}

func (o Options) markdown() MarkdownRenderer {
	if o.Markdown == nil {
		return PlainMarkdown{}
	}
	if r := o.Markdown(); r != nil {
		return r
	}
	return PlainMarkdown{}
}

// style applies pick to the active styles, or returns s unchanged.
func (o Options) style(s string, pick func(*styles.Styles) lipgloss.Style) string {
	if o.Styles == nil {
		return s
	}
	st := o.Styles()
	if st == nil {
		return s
	}
	return pick(st).Render(s)
}

func accent(s *styles.Styles) lipgloss.Style { return s.Accent }
func muted(s *styles.Styles) lipgloss.Style  { return s.Muted }
func link(s *styles.Styles) lipgloss.Style   { return s.Link }
