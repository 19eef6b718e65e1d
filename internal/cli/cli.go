// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jeranaias/interactive-cv/internal/config"
	"github.com/jeranaias/interactive-cv/internal/logging"
	"github.com/jeranaias/interactive-cv/internal/terminal"
	"github.com/jeranaias/interactive-cv/internal/util"
)

// Version information (set at build time)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// APP
// =============================================================================

// app carries the global flags and the resources opened from them.
type app struct {
	configPath string
	logFile    string
	logLevel   string
	theme      string
	plain      bool
	watch      bool
	open       bool

	logger zerolog.Logger
	closer io.Closer
}

// NewRootCmd builds the command tree. Running the root command without a
// subcommand starts an interactive session.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop(), closer: io.NopCloser(nil)}

	root := &cobra.Command{
		Use:   "interactive-cv",
		Short: "Ein Lebenslauf als Terminal",
		Long: `# interactive-cv

**Ein Bewerbungs-Portfolio, das sich wie eine Shell bedienen lässt.**

- **help** listet alle Befehle
- **whoami**, **skills**, **projects** und **contact** zeigen das Profil
- **theme** wechselt das Farbschema
- **clear** leert das Fenster

Ohne Unterbefehl startet eine interaktive Sitzung. Auf einem echten Terminal
ist das ein Vollbild-Fenster, sonst eine einfache Eingabeschleife.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { a.teardown() },
		RunE:              a.run,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		renderMarkdownHelp(cmd)
	})

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (default ~/.interactive-cv/config.{toml,json,yaml})")
	flags.StringVar(&a.logFile, "log-file", "", "append diagnostics to this file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default $ICV_LOG_LEVEL or warn)")
	flags.StringVarP(&a.theme, "theme", "t", "", "initial theme")

	root.Flags().BoolVar(&a.plain, "plain", false, "use the line shell even on a terminal")
	root.Flags().BoolVarP(&a.watch, "watch", "w", false, "reload the config file when it changes")
	root.Flags().BoolVar(&a.open, "open", false, "skip the launcher and open the window immediately")

	root.AddCommand(
		newExecCmd(a),
		newThemesCmd(a),
		newInitCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup opens the diagnostics log. Flags win over the environment.
func (a *app) setup(*cobra.Command, []string) error {
	level := logging.LevelFromEnv(logging.LevelWarn)
	if a.logLevel != "" {
		level = logging.LogLevel(a.logLevel)
	}

	path, err := util.ExpandHome(a.logFile)
	if err != nil {
		return err
	}
	logger, closer, err := logging.Open(path, level)
	if err != nil {
		return err
	}
	a.logger = logger
	a.closer = closer
	return nil
}

func (a *app) teardown() {
	_ = a.closer.Close()
}

// loadConfig loads the --config file or searches the config directory. The
// returned path is empty when the defaults were used.
func (a *app) loadConfig() (*config.Config, string, error) {
	if a.configPath != "" {
		path, err := util.ExpandHome(a.configPath)
		if err != nil {
			return nil, "", err
		}
		cfg, err := config.LoadFromPath(path)
		return cfg, path, err
	}

	path, _ := config.Find()
	cfg, err := config.Load()
	return cfg, path, err
}

// options turns cfg into terminal options mounted on out.
func (a *app) options(cfg *config.Config, out io.Writer) terminal.Options {
	opts := cfg.TerminalOptions()
	opts.MountPoint = out
	opts.Logger = &a.logger
	if a.theme != "" {
		opts.DefaultTheme = a.theme
	}
	return opts
}

// =============================================================================
// HELP
// =============================================================================

// renderMarkdownHelp renders command help as Markdown with glamour.
func renderMarkdownHelp(cmd *cobra.Command) {
	var b strings.Builder

	if cmd.Long != "" {
		b.WriteString(cmd.Long)
	} else {
		b.WriteString("# " + cmd.Short)
	}
	b.WriteString("\n\n## Aufruf\n\n```\n")
	b.WriteString(cmd.UseLine())
	b.WriteString("\n```\n\n")

	if cmd.HasAvailableSubCommands() {
		b.WriteString("## Befehle\n\n")
		for _, sub := range cmd.Commands() {
			if sub.IsAvailableCommand() {
				fmt.Fprintf(&b, "- **%s** - %s\n", sub.Name(), sub.Short)
			}
		}
		b.WriteString("\n")
	}

	if usages := cmd.LocalFlags().FlagUsages(); usages != "" {
		b.WriteString("## Optionen\n\n```\n" + usages + "```\n\n")
	}
	if cmd.HasParent() && cmd.InheritedFlags().HasFlags() {
		b.WriteString("## Globale Optionen\n\n```\n" + cmd.InheritedFlags().FlagUsages() + "```\n\n")
	}

	out := cmd.OutOrStdout()
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Fprint(out, b.String())
		return
	}
	rendered, err := renderer.Render(b.String())
	if err != nil {
		fmt.Fprint(out, b.String())
		return
	}
	fmt.Fprint(out, rendered)
}
