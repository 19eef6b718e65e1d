// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jeranaias/interactive-cv/internal/config"
	"github.com/jeranaias/interactive-cv/internal/terminal"
	"github.com/jeranaias/interactive-cv/internal/ui/lineshell"
	"github.com/jeranaias/interactive-cv/internal/ui/widget"
)

// =============================================================================
// RUN
// =============================================================================

// run starts an interactive session on stdin and stdout.
func (a *app) run(cmd *cobra.Command, _ []string) error {
	cfg, path, err := a.loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.watch && path == "" {
		a.logger.Warn().Msg("--watch without a config file, nothing to watch")
	}

	out := cmd.OutOrStdout()
	if a.plain || !Interactive() {
		return a.runLineShell(ctx, cfg, path, out)
	}
	return a.runWidget(ctx, cfg, path, out)
}

// runWidget runs the full-screen window until the user quits.
func (a *app) runWidget(ctx context.Context, cfg *config.Config, path string, out io.Writer) error {
	term, err := terminal.New(a.options(cfg, out))
	if err != nil {
		return err
	}
	if a.open {
		if err := term.Open(); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	p := tea.NewProgram(
		widget.New(term),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(out),
		tea.WithContext(ctx),
	)

	if a.watch && path != "" {
		g.Go(func() error {
			a.watchConfig(ctx, path, func(cfg *config.Config) {
				p.Send(widget.ReloadMsg{Options: a.options(cfg, out)})
			})
			return nil
		})
	}

	g.Go(func() error {
		// the watcher stops with the program
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})
	return g.Wait()
}

// runLineShell runs the plain read-eval-print loop.
func (a *app) runLineShell(ctx context.Context, cfg *config.Config, path string, out io.Writer) error {
	opts := a.options(cfg, out)
	opts.Width = TerminalWidth(opts.Width)

	term, err := terminal.New(opts)
	if err != nil {
		return err
	}
	shell := lineshell.New(term, lineshell.NewLiner(term), out)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if a.watch && path != "" {
		reloads := make(chan terminal.Options, 1)
		shell.SetReloads(reloads)
		g.Go(func() error {
			a.watchConfig(ctx, path, func(cfg *config.Config) {
				opts := a.options(cfg, out)
				opts.Width = TerminalWidth(opts.Width)
				// keep only the newest pending reload
				select {
				case <-reloads:
				default:
				}
				reloads <- opts
			})
			return nil
		})
	}

	g.Go(func() error {
		defer cancel()
		return shell.Run(ctx)
	})
	return g.Wait()
}

// watchConfig watches path until ctx is done. Invalid configs are logged and
// skipped so the session keeps its last good options.
func (a *app) watchConfig(ctx context.Context, path string, apply func(*config.Config)) {
	err := config.Watch(ctx, path, func(cfg *config.Config, err error) {
		if err != nil {
			a.logger.Warn().Err(err).Str("path", path).Msg("config reload failed")
			return
		}
		a.logger.Info().Str("path", path).Msg("config changed")
		apply(cfg)
	})
	if err != nil {
		a.logger.Error().Err(err).Str("path", path).Msg("config watcher stopped")
	}
}
