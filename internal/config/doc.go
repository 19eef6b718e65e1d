// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for interactive-cv.
//
// Supports TOML, JSON and YAML configuration files, with defaults,
// environment variable overrides and validation.
//
// # Key Types
//
//   - Config: the complete configuration
//   - TerminalConfig: window settings (prompt, welcome message, title, theme)
//   - CommandConfig: a static custom command
//
// Profile and project records are portfolio types, themes are
// styles.Palette values keyed by name.
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (ICV_*)
//   - ~/.interactive-cv/config.toml
//   - ~/.interactive-cv/config.json
//   - ~/.interactive-cv/config.yaml
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	opts := cfg.TerminalOptions()
//	opts.MountPoint = os.Stdout
//	term, err := terminal.New(opts)
//
// Watch a file for changes:
//
//	go config.Watch(ctx, path, func(cfg *config.Config, err error) {
//	    // rebuild the command table
//	})
package config
