// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the command table of the terminal.
//
// A Table maps case-insensitive names to Commands. Each Command's Output is
// either a Literal string or a Computed function of the call arguments.
//
// # Key Types
//
//   - Command: name, description and output of one command
//   - Output: tagged Literal/Computed variant
//   - Table: ordered command table built from builtins and overrides
//   - ParseResult: a line split into command name and arguments
//
// # Protected Commands
//
// help and clear always come from the builtins. Build drops any override
// with one of these names and logs a warning.
//
// # Usage
//
//	table := commands.Build(builtins, custom,
//	    commands.WithPlaceholder("themes", themeNames))
//	if cmd, ok := table.Resolve("HELP"); ok {
//	    out, err := cmd.Output.Call(nil)
//	}
package commands
