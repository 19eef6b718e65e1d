// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"
	"unicode"
)

// =============================================================================
// PARSE RESULT
// =============================================================================

// ParseResult contains the result of splitting one input line.
type ParseResult struct {
	// RawInput is the input with surrounding whitespace removed
	RawInput string

	// CommandName is the first token as typed (not case-folded)
	CommandName string

	// Args are the remaining tokens in order
	Args []string
}

// Parse splits input on whitespace into a command name and its arguments.
func Parse(input string) ParseResult {
	input = strings.TrimSpace(input)
	result := ParseResult{RawInput: input}

	parts := strings.FieldsFunc(input, unicode.IsSpace)
	if len(parts) == 0 {
		return result
	}
	result.CommandName = parts[0]
	if len(parts) > 1 {
		result.Args = parts[1:]
	}
	return result
}

// Empty reports whether the line held no command.
func (r ParseResult) Empty() bool {
	return r.CommandName == ""
}

// IsClear reports whether input, trimmed and case-insensitively, is exactly
// the clear command.
func IsClear(input string) bool {
	return Key(input) == ClearName
}

// ExtractCommandName returns the first token of input.
// e.g., "theme latte" -> "theme"
func ExtractCommandName(input string) string {
	return Parse(input).CommandName
}
