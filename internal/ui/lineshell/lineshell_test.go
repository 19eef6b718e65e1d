// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package lineshell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/interactive-cv/internal/commands"
	"github.com/jeranaias/interactive-cv/internal/portfolio"
	"github.com/jeranaias/interactive-cv/internal/terminal"
)

type fakeReader struct {
	lines   []string
	end     error
	prompts []string
	history []string
	closed  bool
}

func (f *fakeReader) Prompt(prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if len(f.lines) == 0 {
		return "", f.end
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func (f *fakeReader) AppendHistory(item string) {
	f.history = append(f.history, item)
}

func (f *fakeReader) Close() error {
	f.closed = true
	return nil
}

func newTerminal(t *testing.T) *terminal.Terminal {
	t.Helper()
	term, err := terminal.New(terminal.Options{
		MountPoint: io.Discard,
		Markdown:   portfolio.PlainMarkdown{},
		CustomCommands: []commands.Command{
			{Name: "hello", Description: "Gruß", Output: commands.Literal("Hallo Welt")},
		},
	})
	require.NoError(t, err)
	return term
}

func TestRunUntilEOF(t *testing.T) {
	term := newTerminal(t)
	reader := &fakeReader{lines: []string{"hello", "hello", "", "nope"}, end: io.EOF}
	var out bytes.Buffer

	require.NoError(t, New(term, reader, &out).Run(context.Background()))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, terminal.DefaultTitle))
	assert.Contains(t, text, terminal.DefaultWelcome)
	assert.Equal(t, 2, strings.Count(text, "Hallo Welt"))
	assert.Contains(t, text, `Befehl nicht gefunden: nope. Tippe "help".`)

	assert.Equal(t, []string{"hello", "nope"}, reader.history)
	assert.Equal(t, "> ", reader.prompts[0])
	assert.True(t, reader.closed)
	assert.Equal(t, terminal.StateDestroyed, term.State())
}

func TestRunAborted(t *testing.T) {
	term := newTerminal(t)
	reader := &fakeReader{end: liner.ErrPromptAborted}
	require.NoError(t, New(term, reader, io.Discard).Run(context.Background()))
	assert.Equal(t, terminal.StateDestroyed, term.State())
}

func TestRunReadError(t *testing.T) {
	term := newTerminal(t)
	reader := &fakeReader{end: errors.New("tty gone")}
	err := New(term, reader, io.Discard).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
}

func TestRunCancelled(t *testing.T) {
	term := newTerminal(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reader := &fakeReader{lines: []string{"hello"}, end: io.EOF}
	require.NoError(t, New(term, reader, io.Discard).Run(ctx))
	assert.Empty(t, reader.prompts)
}

func TestRunAppliesReloads(t *testing.T) {
	term := newTerminal(t)
	reader := &fakeReader{lines: []string{"hello"}, end: io.EOF}
	var out bytes.Buffer
	shell := New(term, reader, &out)

	reloads := make(chan terminal.Options, 1)
	reloads <- terminal.Options{
		Prompt:   "$",
		Markdown: portfolio.PlainMarkdown{},
		CustomCommands: []commands.Command{
			{Name: "hello", Description: "Gruß", Output: commands.Literal("Servus")},
		},
	}
	shell.SetReloads(reloads)

	require.NoError(t, shell.Run(context.Background()))
	assert.Equal(t, "$ ", reader.prompts[0])
	assert.Contains(t, out.String(), "Servus")
}

func TestSubmitClearReprintsBanner(t *testing.T) {
	term := newTerminal(t)
	require.NoError(t, term.Open())
	reader := &fakeReader{}
	var out bytes.Buffer
	shell := New(term, reader, &out)

	require.NoError(t, shell.Submit("hello"))
	out.Reset()
	require.NoError(t, shell.Submit("clear"))

	assert.Contains(t, out.String(), terminal.DefaultWelcome)
	assert.Equal(t, 0, term.Transcript().Len())
	assert.Equal(t, []string{"hello", "clear"}, reader.history)
}

func TestRunScript(t *testing.T) {
	term := newTerminal(t)
	var out bytes.Buffer

	require.NoError(t, RunScript(term, []string{"hello", "clear", "hello", "theme latte"}, &out))

	want := terminal.DefaultWelcome + "\n" +
		"> hello\nHallo Welt\n" +
		"> theme latte\nTheme gewechselt zu: latte\n"
	assert.Equal(t, want, out.String())
}

func TestRunScriptDestroyed(t *testing.T) {
	term := newTerminal(t)
	require.NoError(t, term.Destroy())
	assert.ErrorIs(t, RunScript(term, []string{"help"}, io.Discard), terminal.ErrDestroyed)
}
