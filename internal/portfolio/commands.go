// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package portfolio

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/interactive-cv/internal/commands"
)

// Commands returns the informational built-ins in display order:
// whoami, skills, projects, contact.
func Commands(profile Profile, projects []Project, opts Options) []commands.Command {
	return []commands.Command{
		{
			Name:        "whoami",
			Description: "Wer bin ich?",
			Output: commands.Computed(func([]string) (string, error) {
				return renderIdentity(profile, opts), nil
			}),
		},
		{
			Name:        "skills",
			Description: "Meine Fähigkeiten",
			Output: commands.Computed(func([]string) (string, error) {
				return renderSkills(profile, opts), nil
			}),
		},
		{
			Name:        "projects",
			Description: "Meine Projekte (projects <name> für Details)",
			Output: commands.Computed(func(args []string) (string, error) {
				return renderProjects(projects, args, opts)
			}),
		},
		{
			Name:        "contact",
			Description: "Kontaktmöglichkeiten",
			Output: commands.Computed(func([]string) (string, error) {
				return renderContact(profile, opts), nil
			}),
		},
	}
}

// =============================================================================
// RENDERERS
// =============================================================================

func renderIdentity(p Profile, opts Options) string {
	var lines []string
	heading := p.Name
	if p.Role != "" {
		heading += " · " + p.Role
	}
	if heading != "" {
		lines = append(lines, opts.style(heading, accent))
	}
	if p.Location != "" {
		lines = append(lines, opts.style(p.Location, muted))
	}
	if p.Summary != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, p.Summary)
	}
	if len(lines) == 0 {
		return "Noch kein Profil hinterlegt."
	}
	return strings.Join(lines, "\n")
}

func renderSkills(p Profile, opts Options) string {
	if len(p.Skills) == 0 {
		return "Noch keine Fähigkeiten eingetragen."
	}
	width := 0
	for _, g := range p.Skills {
		if n := runewidth.StringWidth(g.Category); n > width {
			width = n
		}
	}
	lines := make([]string, 0, len(p.Skills))
	for _, g := range p.Skills {
		label := runewidth.FillRight(g.Category+":", width+2)
		lines = append(lines, opts.style(label, accent)+strings.Join(g.Items, ", "))
	}
	return strings.Join(lines, "\n")
}

func renderProjects(projects []Project, args []string, opts Options) (string, error) {
	if len(projects) == 0 {
		return "Noch keine Projekte eingetragen.", nil
	}

	selected := projects
	if len(args) > 0 {
		query := strings.Join(args, " ")
		selected = nil
		for _, p := range projects {
			if strings.EqualFold(p.Name, query) {
				selected = append(selected, p)
			}
		}
		if len(selected) == 0 {
			names := make([]string, len(projects))
			for i, p := range projects {
				names[i] = p.Name
			}
			return fmt.Sprintf("Kein Projekt gefunden: %s. Verfügbar: %s", query, strings.Join(names, ", ")), nil
		}
	}

	md := opts.markdown()
	blocks := make([]string, 0, len(selected))
	for _, p := range selected {
		block, err := renderProject(p, md, opts)
		if err != nil {
			return "", fmt.Errorf("project %q: %w", p.Name, err)
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n"), nil
}

func renderProject(p Project, md MarkdownRenderer, opts Options) (string, error) {
	lines := []string{opts.style(p.Name, accent)}

	if p.Description != "" {
		desc, err := md.Render(p.Description)
		if err != nil {
			return "", err
		}
		lines = append(lines, strings.Trim(desc, "\n"))
	}
	if len(p.Technologies) > 0 {
		lines = append(lines, opts.style("Technologien: ", muted)+strings.Join(p.Technologies, ", "))
	}
	if p.URL != "" {
		lines = append(lines, opts.style("Web:    ", muted)+opts.style(p.URL, link))
	}
	if p.GithubURL != "" {
		lines = append(lines, opts.style("GitHub: ", muted)+opts.style(p.GithubURL, link))
	}
	return strings.Join(lines, "\n"), nil
}

func renderContact(p Profile, opts Options) string {
	var lines []string
	if p.Email != "" {
		lines = append(lines, opts.style("E-Mail: ", muted)+opts.style(p.Email, link))
	}
	for _, l := range p.Links {
		label := l.Label
		if label == "" {
			label = "Link"
		}
		lines = append(lines, opts.style(label+": ", muted)+opts.style(l.URL, link))
	}
	if len(lines) == 0 {
		return "Noch keine Kontaktdaten hinterlegt."
	}
	return strings.Join(lines, "\n")
}
