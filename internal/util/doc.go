// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides file helpers shared by the config and cli packages.
//
// # Key Functions
//
//   - AtomicWriteFile: crash-safe file writing with fsync
//   - ExpandHome: "~/" expansion for paths given on the command line
//
// # Usage
//
//	path, err := util.ExpandHome("~/.interactive-cv/config.toml")
//	err = util.AtomicWriteFile(path, data, 0644)
package util
