// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeranaias/interactive-cv/internal/config"
	"github.com/jeranaias/interactive-cv/internal/terminal"
	"github.com/jeranaias/interactive-cv/internal/ui/lineshell"
	"github.com/jeranaias/interactive-cv/internal/ui/styles"
	"github.com/jeranaias/interactive-cv/internal/util"
)

// =============================================================================
// EXEC
// =============================================================================

func newExecCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exec [zeile...]",
		Short: "Befehle ohne Fenster ausführen und das Protokoll ausgeben",
		Long: `# exec

Führt jede Zeile wie eine Eingabe im Fenster aus und gibt danach das
Protokoll aus. Ohne Argumente werden die Zeilen von stdin gelesen.

` + "```" + `
interactive-cv exec whoami "projects terminal"
echo help | interactive-cv exec
` + "```",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := a.loadConfig()
			if err != nil {
				return err
			}

			lines := args
			if len(lines) == 0 {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					lines = append(lines, scanner.Text())
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			term, err := terminal.New(a.options(cfg, out))
			if err != nil {
				return err
			}
			defer term.Destroy()
			return lineshell.RunScript(term, lines, out)
		},
	}
}

// =============================================================================
// THEMES
// =============================================================================

func newThemesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "Verfügbare Farbschemata auflisten",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := a.loadConfig()
			if err != nil {
				return err
			}

			table := styles.NewTable(cfg.CustomThemes()...)
			current := table.Resolve(cfg.Terminal.DefaultTheme)
			if a.theme != "" && table.Has(a.theme) {
				current = table.Resolve(a.theme)
			}

			out := cmd.OutOrStdout()
			for _, name := range table.Names() {
				palette, _ := table.Get(name)
				kind := "hell"
				if palette.Dark {
					kind = "dunkel"
				}
				marker := " "
				if name == current {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-12s %s\n", marker, name, kind)
			}
			return nil
		},
	}
}

// =============================================================================
// INIT
// =============================================================================

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [pfad]",
		Short: "Eine Beispielkonfiguration schreiben",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				p, err := util.ExpandHome(args[0])
				if err != nil {
					return err
				}
				path = p
			} else {
				p, err := config.ConfigPath(".toml")
				if err != nil {
					return err
				}
				path = p
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := config.SaveTOML(config.Sample(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Konfiguration geschrieben: %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

// =============================================================================
// VERSION
// =============================================================================

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Versionsinformationen anzeigen",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "interactive-cv %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		},
	}
}
