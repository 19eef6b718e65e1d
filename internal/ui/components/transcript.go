// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/interactive-cv/internal/history"
	"github.com/jeranaias/interactive-cv/internal/ui/styles"
)

// =============================================================================
// TRANSCRIPT COMPONENT - Welcome banner and command history
// =============================================================================

// Transcript is the scrollable body of the window.
type Transcript struct {
	Welcome string
	Prompt  string
	Entries []history.Entry
	Width   int
}

// View renders the welcome banner followed by each entry as a prompt line
// and its output. Output is trusted and passed through unchanged.
func (t Transcript) View(st *styles.Styles) string {
	body := st.Body
	if t.Width > 0 {
		body = body.Width(t.Width)
	}

	blocks := make([]string, 0, len(t.Entries)+1)
	if t.Welcome != "" {
		blocks = append(blocks, st.Welcome.Render(t.Welcome))
	}
	for _, e := range t.Entries {
		line := st.Prompt.Render(t.Prompt) + " " + st.Command.Render(e.Command)
		if e.Output == "" {
			blocks = append(blocks, line)
			continue
		}
		blocks = append(blocks, line+"\n"+st.Output.Render(e.Output))
	}
	return body.Render(strings.Join(blocks, "\n"))
}

// ViewPlain renders the transcript without styling.
func (t Transcript) ViewPlain() string {
	var sb strings.Builder
	if t.Welcome != "" {
		sb.WriteString(t.Welcome)
		sb.WriteByte('\n')
	}
	for _, e := range t.Entries {
		sb.WriteString(PromptLine(t.Prompt, e.Command))
		sb.WriteByte('\n')
		if e.Output != "" {
			sb.WriteString(e.Output)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// PromptLine formats an input line the way the transcript shows it.
func PromptLine(prompt, command string) string {
	return prompt + " " + command
}
