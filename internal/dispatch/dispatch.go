// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dispatch turns input lines into transcript entries.
package dispatch

import (
	"errors"
	"fmt"

	"github.com/jeranaias/interactive-cv/internal/commands"
	"github.com/jeranaias/interactive-cv/internal/history"
)

// ErrCommandFailed wraps errors and panics raised by a computed command.
var ErrCommandFailed = errors.New("command execution failed")

// Instruction tells the presentation surface what to do after a dispatch.
type Instruction int

const (
	// NoOp leaves the view untouched (blank input).
	NoOp Instruction = iota

	// Redraw renders the welcome banner followed by the full transcript.
	Redraw

	// Reset renders only the welcome banner; the transcript was cleared.
	Reset
)

func (i Instruction) String() string {
	switch i {
	case NoOp:
		return "noop"
	case Redraw:
		return "redraw"
	case Reset:
		return "reset"
	default:
		return fmt.Sprintf("instruction(%d)", int(i))
	}
}

// NotFoundMessage is the output for a name missing from the table.
func NotFoundMessage(name string) string {
	return fmt.Sprintf("Befehl nicht gefunden: %s. Tippe \"help\".", name)
}

// =============================================================================
// DISPATCHER
// =============================================================================

// Dispatcher resolves lines against a command table and records the results.
type Dispatcher struct {
	table  *commands.Table
	log    *history.Log
	recall *history.Recall
}

// New creates a dispatcher over the given session state.
func New(table *commands.Table, log *history.Log, recall *history.Recall) *Dispatcher {
	return &Dispatcher{
		table:  table,
		log:    log,
		recall: recall,
	}
}

// SetTable swaps the command table; transcript and recall are kept.
func (d *Dispatcher) SetTable(table *commands.Table) {
	d.table = table
}

// Table returns the current command table.
func (d *Dispatcher) Table() *commands.Table {
	return d.table
}

// Execute runs one input line.
//
// A bare "clear" (any case) empties the transcript without being recorded.
// Blank input does nothing. Unknown names produce a not-found entry. Only a
// failing computed command returns an error, wrapped in ErrCommandFailed;
// the transcript is left untouched in that case.
func (d *Dispatcher) Execute(raw string) (Instruction, error) {
	line := commands.Parse(raw)

	d.recall.Push(line.RawInput)

	if commands.IsClear(line.RawInput) {
		d.log.Clear()
		return Reset, nil
	}

	if line.Empty() {
		return NoOp, nil
	}

	output := NotFoundMessage(line.CommandName)
	if cmd, ok := d.table.Resolve(line.CommandName); ok {
		out, err := invoke(cmd, line.Args)
		if err != nil {
			return NoOp, err
		}
		output = out
	}

	d.log.Append(history.Entry{Command: line.RawInput, Output: output})
	return Redraw, nil
}

// invoke produces the output of cmd, converting panics into errors.
func invoke(cmd commands.Command, args []string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = ""
			err = fmt.Errorf("%w: %s: panic: %v", ErrCommandFailed, cmd.Name, r)
		}
	}()

	switch cmd.Output.Kind() {
	case commands.OutputComputed:
		out, err = cmd.Output.Call(args)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrCommandFailed, cmd.Name, err)
		}
		return out, nil
	default:
		return cmd.Output.Text(), nil
	}
}
