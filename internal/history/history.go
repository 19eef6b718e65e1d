// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history holds the session transcript and the input recall buffer.
package history

// =============================================================================
// TRANSCRIPT
// =============================================================================

// Entry is one executed line and its rendered output.
type Entry struct {
	Command string
	Output  string
}

// Log is the append-only transcript of the current session.
type Log struct {
	entries []Entry
}

// NewLog creates an empty transcript.
func NewLog() *Log {
	return &Log{}
}

// Append adds e after all existing entries.
func (l *Log) Append(e Entry) {
	l.entries = append(l.entries, e)
}

// Entries returns a copy of the transcript in dispatch order.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Last returns the most recent entry.
func (l *Log) Last() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Clear removes every entry.
func (l *Log) Clear() {
	l.entries = nil
}

// =============================================================================
// RECALL BUFFER
// =============================================================================

// Recall is the up/down navigation buffer of past input lines.
// The cursor ranges over [0, Len()]; Len() means a fresh, empty input line.
type Recall struct {
	lines  []string
	cursor int
}

// NewRecall creates an empty recall buffer.
func NewRecall() *Recall {
	return &Recall{}
}

// Push appends line unless it is empty or equal to the last line, then
// resets the cursor past the end. Reports whether line was appended.
func (r *Recall) Push(line string) bool {
	appended := false
	if line != "" && (len(r.lines) == 0 || r.lines[len(r.lines)-1] != line) {
		r.lines = append(r.lines, line)
		appended = true
	}
	r.Reset()
	return appended
}

// Reset moves the cursor past the last line.
func (r *Recall) Reset() {
	r.cursor = len(r.lines)
}

// Up moves to the previous line, stopping at the oldest one.
func (r *Recall) Up() string {
	if r.cursor > 0 {
		r.cursor--
	}
	return r.Current()
}

// Down moves to the next line, stopping at the fresh input line.
func (r *Recall) Down() string {
	if r.cursor < len(r.lines) {
		r.cursor++
	}
	return r.Current()
}

// Current returns the line under the cursor, or "" past the end.
func (r *Recall) Current() string {
	if r.cursor >= 0 && r.cursor < len(r.lines) {
		return r.lines[r.cursor]
	}
	return ""
}

// Cursor returns the cursor index.
func (r *Recall) Cursor() int {
	return r.cursor
}

// Len returns the number of recalled lines.
func (r *Recall) Len() int {
	return len(r.lines)
}

// Lines returns a copy of the buffer, oldest first.
func (r *Recall) Lines() []string {
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}
