// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the interactive-cv command line.
//
// Without a subcommand the binary opens an interactive session: the Bubble
// Tea window when stdin and stdout are terminals, the line shell otherwise
// (or with --plain).
//
// # Commands
//
//   - exec: run lines without a window and print the transcript
//   - themes: list the available themes
//   - init: write a sample config file
//   - version: print build information
//
// # Global Flags
//
//	--config, -c   config file
//	--log-file     diagnostics log (nothing is logged without it)
//	--log-level    debug, info, warn or error
//	--theme, -t    initial theme
//
// # Usage
//
//	func main() {
//	    cli.Execute()
//	}
package cli
