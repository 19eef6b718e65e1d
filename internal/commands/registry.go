// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the command table of the terminal.
package commands

import (
	"strings"

	"github.com/rs/zerolog"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/text/cases"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Func computes the output of a command from its call arguments.
type Func func(args []string) (string, error)

// OutputKind tags the variant held by an Output.
type OutputKind int

const (
	OutputLiteral  OutputKind = iota // Fixed text, returned as-is
	OutputComputed                   // Produced by a Func at call time
)

// Output is either literal text or a computed function.
type Output struct {
	kind OutputKind
	text string
	fn   Func
}

// Literal returns an Output that always yields text.
func Literal(text string) Output {
	return Output{kind: OutputLiteral, text: text}
}

// Computed returns an Output produced by fn at call time.
// A nil fn yields an empty string.
func Computed(fn Func) Output {
	return Output{kind: OutputComputed, fn: fn}
}

// Kind reports which variant the Output holds.
func (o Output) Kind() OutputKind {
	return o.kind
}

// Text returns the literal text. Empty for computed outputs.
func (o Output) Text() string {
	return o.text
}

// Call invokes the computed function with args.
func (o Output) Call(args []string) (string, error) {
	if o.fn == nil {
		return "", nil
	}
	return o.fn(args)
}

// Command is a named unit that produces textual output.
type Command struct {
	// Name is the lookup key. Matching is case-insensitive.
	Name string

	// Description is shown in help. It may contain {placeholder} tokens
	// which are substituted when help is rendered.
	Description string

	// Output is the literal or computed result of the command
	Output Output
}

// =============================================================================
// PROTECTED BUILT-INS
// =============================================================================

const (
	HelpName  = "help"
	ClearName = "clear"
)

// Help is the canonical help definition. Its output is bound to the table
// by Build.
var Help = Command{
	Name:        HelpName,
	Description: "Zeigt alle verfügbaren Befehle an",
}

// Clear is the canonical clear definition. The dispatcher intercepts a bare
// "clear" before lookup; the entry exists so help lists it.
var Clear = Command{
	Name:        ClearName,
	Description: "Leert das Terminal",
	Output:      Literal(`Tippe "clear" ohne Argumente, um das Terminal zu leeren.`),
}

// Key folds a command name into its lookup key.
func Key(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// IsProtected reports whether name refers to help or clear.
func IsProtected(name string) bool {
	key := Key(name)
	return key == HelpName || key == ClearName
}

// =============================================================================
// COMMAND TABLE
// =============================================================================

// Table maps lookup keys to commands, preserving registration order.
type Table struct {
	entries      *orderedmap.OrderedMap[string, Command]
	placeholders map[string]func() string
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	logger       zerolog.Logger
	placeholders map[string]func() string
}

// WithLogger sets the logger that receives build diagnostics.
func WithLogger(logger zerolog.Logger) BuildOption {
	return func(c *buildConfig) {
		c.logger = logger
	}
}

// WithPlaceholder registers a {name} token for descriptions. fn is called
// every time help is rendered.
func WithPlaceholder(name string, fn func() string) BuildOption {
	return func(c *buildConfig) {
		c.placeholders[name] = fn
	}
}

// Build overlays overrides onto builtins. Overrides win for every key except
// help and clear, which always come from builtins (or from the canonical
// definitions when builtins omit them). Dropped overrides are logged.
func Build(builtins, overrides []Command, opts ...BuildOption) *Table {
	cfg := buildConfig{
		logger:       zerolog.Nop(),
		placeholders: make(map[string]func() string),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Table{
		entries:      orderedmap.New[string, Command](),
		placeholders: cfg.placeholders,
	}

	// help and clear lead the table unless builtins place them explicitly
	if !containsKey(builtins, HelpName) {
		t.entries.Set(HelpName, Help)
	}
	if !containsKey(builtins, ClearName) {
		t.entries.Set(ClearName, Clear)
	}
	for _, cmd := range builtins {
		key := Key(cmd.Name)
		if key == "" {
			continue
		}
		cmd.Name = key
		t.entries.Set(key, cmd)
	}

	for _, cmd := range FilterProtected(overrides, cfg.logger) {
		key := Key(cmd.Name)
		if key == "" {
			continue
		}
		cmd.Name = key
		t.entries.Set(key, cmd)
	}

	help, _ := t.entries.Get(HelpName)
	help.Output = Computed(t.renderHelp)
	t.entries.Set(HelpName, help)

	return t
}

// FilterProtected returns overrides without entries named help or clear,
// logging a warning for each entry it drops.
func FilterProtected(overrides []Command, logger zerolog.Logger) []Command {
	kept := make([]Command, 0, len(overrides))
	for _, cmd := range overrides {
		if IsProtected(cmd.Name) {
			logger.Warn().
				Str("command", cmd.Name).
				Msg("protected command cannot be overridden, override dropped")
			continue
		}
		kept = append(kept, cmd)
	}
	return kept
}

func containsKey(cmds []Command, key string) bool {
	for _, cmd := range cmds {
		if Key(cmd.Name) == key {
			return true
		}
	}
	return false
}

// Resolve looks up name case-insensitively.
func (t *Table) Resolve(name string) (Command, bool) {
	return t.entries.Get(Key(name))
}

// Len returns the number of commands in the table.
func (t *Table) Len() int {
	return t.entries.Len()
}

// Names returns all keys in table order.
func (t *Table) Names() []string {
	names := make([]string, 0, t.entries.Len())
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Commands returns all commands in table order.
func (t *Table) Commands() []Command {
	cmds := make([]Command, 0, t.entries.Len())
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		cmds = append(cmds, pair.Value)
	}
	return cmds
}

// Describe returns the description of cmd with placeholders substituted.
func (t *Table) Describe(cmd Command) string {
	if len(t.placeholders) == 0 || !strings.Contains(cmd.Description, "{") {
		return cmd.Description
	}
	pairs := make([]string, 0, 2*len(t.placeholders))
	for name, fn := range t.placeholders {
		pairs = append(pairs, "{"+name+"}", fn())
	}
	return strings.NewReplacer(pairs...).Replace(cmd.Description)
}
