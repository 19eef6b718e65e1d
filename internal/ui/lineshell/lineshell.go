// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package lineshell presents a terminal session as a plain read-eval-print
// loop, for pipes and dumb terminals where the full-screen widget cannot run.
package lineshell

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/peterh/liner"

	"github.com/jeranaias/interactive-cv/internal/dispatch"
	"github.com/jeranaias/interactive-cv/internal/terminal"
	"github.com/jeranaias/interactive-cv/internal/ui/components"
)

// =============================================================================
// LINE READER
// =============================================================================

// LineReader reads input lines. *liner.State implements it.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// NewLiner returns a liner state that aborts on ctrl+c and completes
// command names of term.
func NewLiner(term *terminal.Terminal) *liner.State {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetTabCompletionStyle(liner.TabPrints)
	line.SetCompleter(term.Complete)
	return line
}

// =============================================================================
// SHELL
// =============================================================================

// Shell runs a session against a LineReader.
type Shell struct {
	term   *terminal.Terminal
	reader LineReader
	out    io.Writer
	color  *termenv.Output

	reloads <-chan terminal.Options
}

// New creates a shell writing to out.
func New(term *terminal.Terminal, reader LineReader, out io.Writer) *Shell {
	return &Shell{
		term:   term,
		reader: reader,
		out:    out,
		color:  termenv.NewOutput(out),
	}
}

// SetReloads makes the shell apply options received on ch before each
// prompt. Reload errors keep the previous options.
func (s *Shell) SetReloads(ch <-chan terminal.Options) {
	s.reloads = ch
}

// applyReloads drains pending reloads without blocking.
func (s *Shell) applyReloads() {
	for {
		select {
		case opts := <-s.reloads:
			_ = s.term.Reload(opts)
		default:
			return
		}
	}
}

// Run opens the session and loops until EOF, ctrl+c or ctx is done. The
// session is destroyed and the reader closed on return.
func (s *Shell) Run(ctx context.Context) error {
	defer s.reader.Close()
	defer func() {
		if s.term.State() != terminal.StateDestroyed {
			_ = s.term.Destroy()
		}
	}()

	if err := s.term.Open(); err != nil {
		return err
	}
	s.printBanner()

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		s.applyReloads()

		line, err := s.reader.Prompt(s.term.Options().Prompt + " ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if err := s.Submit(line); err != nil {
			return err
		}
	}
}

// Submit dispatches one line and prints its result.
func (s *Shell) Submit(line string) error {
	recalled := s.term.Recall().Len()

	instr, err := s.term.Submit(line)
	if err != nil {
		return err
	}

	if lines := s.term.Recall().Lines(); len(lines) > recalled {
		s.reader.AppendHistory(lines[len(lines)-1])
	}

	switch instr {
	case dispatch.Reset:
		s.color.ClearScreen()
		s.printBanner()
	case dispatch.Redraw:
		if entry, ok := s.term.Transcript().Last(); ok && entry.Output != "" {
			fmt.Fprintln(s.out, entry.Output)
		}
	}
	return nil
}

func (s *Shell) printBanner() {
	frame := s.term.Frame()
	fmt.Fprintln(s.out, components.Header{Title: frame.Title, Theme: frame.Theme}.ViewPlain())
	fmt.Fprintln(s.out, frame.Welcome)
}

// =============================================================================
// SCRIPT
// =============================================================================

// RunScript dispatches lines in order without a reader and writes the final
// transcript to out.
func RunScript(term *terminal.Terminal, lines []string, out io.Writer) error {
	if err := term.Open(); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := term.Submit(line); err != nil {
			return fmt.Errorf("line %q: %w", line, err)
		}
	}

	frame := term.Frame()
	_, err := io.WriteString(out, components.Transcript{
		Welcome: frame.Welcome,
		Prompt:  frame.Prompt,
		Entries: frame.Entries,
	}.ViewPlain())
	return err
}
