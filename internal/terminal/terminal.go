// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terminal provides one fake shell session: its command table,
// transcript, recall buffer, theme and open/closed state.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jeranaias/interactive-cv/internal/commands"
	"github.com/jeranaias/interactive-cv/internal/dispatch"
	"github.com/jeranaias/interactive-cv/internal/history"
	"github.com/jeranaias/interactive-cv/internal/portfolio"
	"github.com/jeranaias/interactive-cv/internal/ui/styles"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrMountPointMissing is returned by New when Options.MountPoint is nil.
	ErrMountPointMissing = errors.New("mount point is required")

	// ErrDestroyed is returned by operations on a destroyed terminal.
	ErrDestroyed = errors.New("terminal has been destroyed")
)

// FailureMessage is shown in place of the output of a failing command.
func FailureMessage(name string) string {
	return fmt.Sprintf("Fehler beim Ausführen von %q.", name)
}

// =============================================================================
// OPTIONS
// =============================================================================

const (
	DefaultWelcome = `Willkommen! Tippe "help" für eine Liste aller Befehle.`
	DefaultPrompt  = ">"
	DefaultTitle   = "rene@bewerbung: ~"
	DefaultWidth   = 80
	DefaultHeight  = 24
)

// Options configures a Terminal.
type Options struct {
	// MountPoint is the output the widget attaches to. Required.
	MountPoint io.Writer

	// CustomCommands are overlaid onto the built-ins. help and clear
	// cannot be overridden.
	CustomCommands []commands.Command

	WelcomeMessage string
	Prompt         string
	Title          string
	Width          int
	Height         int

	// Profile and Projects feed the informational built-ins
	Profile  portfolio.Profile
	Projects []portfolio.Project

	// CustomThemes are merged with mocha and latte
	CustomThemes []styles.Named

	// DefaultTheme falls back to mocha when empty or unknown
	DefaultTheme string

	// Logger receives diagnostics. Nil discards them.
	Logger *zerolog.Logger

	// Markdown overrides the Glamour renderer used for project descriptions
	Markdown portfolio.MarkdownRenderer
}

func (o *Options) applyDefaults() {
	if o.WelcomeMessage == "" {
		o.WelcomeMessage = DefaultWelcome
	}
	if o.Prompt == "" {
		o.Prompt = DefaultPrompt
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
}

// =============================================================================
// STATE
// =============================================================================

// State is the session-level state of the widget.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Detacher is implemented by mount points that need to release the widget
// on Destroy.
type Detacher interface {
	Detach() error
}

// =============================================================================
// TERMINAL
// =============================================================================

// Terminal is one widget instance. It is not safe for concurrent use; all
// calls are expected from the single UI event loop.
type Terminal struct {
	id     string
	opts   Options
	logger zerolog.Logger
	state  State

	log        *history.Log
	recall     *history.Recall
	dispatcher *dispatch.Dispatcher

	themes   *styles.Table
	theme    string
	renderer *lipgloss.Renderer
	styles   map[string]*styles.Styles
	markdown map[string]portfolio.MarkdownRenderer
}

// New creates a closed terminal attached to opts.MountPoint.
func New(opts Options) (*Terminal, error) {
	if opts.MountPoint == nil {
		return nil, ErrMountPointMissing
	}
	opts.applyDefaults()

	id := uuid.NewString()
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	logger = logger.With().Str("session", id).Logger()

	t := &Terminal{
		id:       id,
		logger:   logger,
		state:    StateClosed,
		log:      history.NewLog(),
		recall:   history.NewRecall(),
		renderer: styles.NewRenderer(opts.MountPoint),
	}
	t.dispatcher = dispatch.New(nil, t.log, t.recall)
	t.configure(opts)

	t.logger.Debug().
		Int("commands", t.dispatcher.Table().Len()).
		Str("theme", t.theme).
		Msg("terminal created")
	return t, nil
}

// configure (re)builds the theme and command tables from opts.
func (t *Terminal) configure(opts Options) {
	t.opts = opts
	t.themes = styles.NewTable(opts.CustomThemes...)
	t.styles = make(map[string]*styles.Styles)
	t.markdown = make(map[string]portfolio.MarkdownRenderer)

	switch {
	case t.theme != "" && t.themes.Has(t.theme):
		// keep the active theme across reloads
	case opts.DefaultTheme != "" && !t.themes.Has(opts.DefaultTheme):
		t.logger.Warn().Str("theme", opts.DefaultTheme).Msg("unknown default theme, using mocha")
		t.theme = styles.MochaName
	default:
		t.theme = t.themes.Resolve(opts.DefaultTheme)
	}

	t.dispatcher.SetTable(commands.Build(
		t.builtins(),
		opts.CustomCommands,
		commands.WithLogger(t.logger),
		commands.WithPlaceholder("themes", func() string {
			return strings.Join(t.themes.Names(), ", ")
		}),
	))
}

// Reload applies new options while keeping the transcript, the recall
// buffer and the active theme (if it still exists). The mount point and
// logger of the original options are kept.
func (t *Terminal) Reload(opts Options) error {
	if t.state == StateDestroyed {
		return ErrDestroyed
	}
	opts.MountPoint = t.opts.MountPoint
	opts.Logger = t.opts.Logger
	opts.applyDefaults()
	t.configure(opts)
	t.logger.Info().Int("commands", t.dispatcher.Table().Len()).Msg("terminal reloaded")
	return nil
}

func (t *Terminal) builtins() []commands.Command {
	cmds := []commands.Command{commands.Help, commands.Clear}
	cmds = append(cmds, portfolio.Commands(t.opts.Profile, t.opts.Projects, portfolio.Options{
		Markdown: t.Markdown,
		Styles:   t.Styles,
	})...)
	return append(cmds, t.themeCommand())
}

// Logger returns the session logger, tagged with the session id.
func (t *Terminal) Logger() *zerolog.Logger {
	return &t.logger
}

// ID returns the session id.
func (t *Terminal) ID() string {
	return t.id
}

// Options returns the effective options.
func (t *Terminal) Options() Options {
	return t.opts
}

// Commands returns the current command table.
func (t *Terminal) Commands() *commands.Table {
	return t.dispatcher.Table()
}

// =============================================================================
// STATE MACHINE
// =============================================================================

// State returns the current state.
func (t *Terminal) State() State {
	return t.state
}

// IsOpen reports whether the window is open.
func (t *Terminal) IsOpen() bool {
	return t.state == StateOpen
}

// Open shows the window. Opening an open window is a no-op.
func (t *Terminal) Open() error {
	if t.state == StateDestroyed {
		return ErrDestroyed
	}
	t.state = StateOpen
	return nil
}

// Close hides the window. Closing a closed window is a no-op.
func (t *Terminal) Close() error {
	if t.state == StateDestroyed {
		return ErrDestroyed
	}
	t.state = StateClosed
	return nil
}

// Destroy detaches the widget from its mount point. It is terminal.
func (t *Terminal) Destroy() error {
	if t.state == StateDestroyed {
		return ErrDestroyed
	}
	t.state = StateDestroyed
	t.logger.Debug().Int("entries", t.log.Len()).Msg("terminal destroyed")
	if d, ok := t.opts.MountPoint.(Detacher); ok {
		if err := d.Detach(); err != nil {
			return fmt.Errorf("failed to detach: %w", err)
		}
	}
	return nil
}

// =============================================================================
// INPUT
// =============================================================================

// Submit dispatches one input line. A failing command is logged and
// recorded with a generic failure message; the session stays usable.
func (t *Terminal) Submit(line string) (dispatch.Instruction, error) {
	if t.state == StateDestroyed {
		return dispatch.NoOp, ErrDestroyed
	}

	instr, err := t.dispatcher.Execute(line)
	if err != nil {
		if !errors.Is(err, dispatch.ErrCommandFailed) {
			return dispatch.NoOp, err
		}
		parsed := commands.Parse(line)
		t.logger.Error().Err(err).Str("command", parsed.CommandName).Msg("command failed")
		t.log.Append(history.Entry{
			Command: parsed.RawInput,
			Output:  FailureMessage(parsed.CommandName),
		})
		return dispatch.Redraw, nil
	}
	return instr, nil
}

// RecallUp returns the previous input line for the input field.
func (t *Terminal) RecallUp() string {
	return t.recall.Up()
}

// RecallDown returns the next input line, or "" past the newest one.
func (t *Terminal) RecallDown() string {
	return t.recall.Down()
}

// Recall returns the recall buffer.
func (t *Terminal) Recall() *history.Recall {
	return t.recall
}

// Complete returns command names matching the partial input.
func (t *Terminal) Complete(input string) []string {
	return t.dispatcher.Table().Complete(input)
}

// =============================================================================
// PRESENTATION
// =============================================================================

// Frame is what the presentation surface draws: the welcome banner followed
// by every transcript entry, in order.
type Frame struct {
	Title   string
	Welcome string
	Prompt  string
	Theme   string
	Entries []history.Entry
}

// Frame returns the current frame.
func (t *Terminal) Frame() Frame {
	return Frame{
		Title:   t.opts.Title,
		Welcome: t.opts.WelcomeMessage,
		Prompt:  t.opts.Prompt,
		Theme:   t.theme,
		Entries: t.log.Entries(),
	}
}

// Transcript returns the transcript log.
func (t *Terminal) Transcript() *history.Log {
	return t.log
}
