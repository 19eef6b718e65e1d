// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// =============================================================================
// COMPLETER
// =============================================================================

// Complete returns the command names that start with the partial name being
// typed, in table order. Once the input contains a space the name is
// considered complete and nothing is returned.
func (t *Table) Complete(input string) []string {
	input = strings.TrimLeftFunc(input, unicode.IsSpace)
	if strings.IndexFunc(input, unicode.IsSpace) >= 0 {
		return nil
	}

	prefix := Key(input)
	var matches []string
	for _, name := range t.Names() {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}

// CommonPrefix returns the longest prefix shared by all names. It never
// splits a multi-byte rune.
func CommonPrefix(names []string) string {
	if len(names) == 0 {
		return ""
	}
	prefix := names[0]
	for _, name := range names[1:] {
		for !strings.HasPrefix(name, prefix) {
			_, size := utf8.DecodeLastRuneInString(prefix)
			prefix = prefix[:len(prefix)-size]
		}
	}
	return prefix
}
