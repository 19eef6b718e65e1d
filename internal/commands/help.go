// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// helpGap is the number of columns between the widest key and the arrow.
const helpGap = 2

// renderHelp lists every command as "<key><padding>→ <description>".
func (t *Table) renderHelp(_ []string) (string, error) {
	cmds := t.Commands()

	width := 0
	for _, cmd := range cmds {
		if w := runewidth.StringWidth(cmd.Name); w > width {
			width = w
		}
	}

	var sb strings.Builder
	for i, cmd := range cmds {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(runewidth.FillRight(cmd.Name, width+helpGap))
		sb.WriteString("→ ")
		sb.WriteString(t.Describe(cmd))
	}
	return sb.String(), nil
}
