// promptkit - Line Editing Toolkit for Serial Consoles
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package prompt implements the line editor every interactive widget is
// built on. It owns the edit buffer and cursor, decodes keys from the port
// and redraws only what changed using relative cursor movement.
package prompt

import (
	"fmt"
	"strings"

	"github.com/cloud-exit/promptkit/internal/ansi"
	"github.com/cloud-exit/promptkit/internal/autocomplete"
	"github.com/cloud-exit/promptkit/internal/history"
	"github.com/cloud-exit/promptkit/internal/keys"
	"github.com/cloud-exit/promptkit/internal/serialio"
)

// DefaultMaxLength is the default buffer limit.
const DefaultMaxLength = 120

// State is the editor session state.
type State int

const (
	// AwaitingPrompt means the next Poll writes the prompt string.
	AwaitingPrompt State = iota
	// Editing means the prompt is on screen and keys edit the buffer.
	Editing
)

// Result is the outcome of one Poll.
type Result struct {
	// Key is the decoded key; zero when nothing was pending.
	Key keys.Event
	// Unhandled is set when the editor did not use Key, so the caller may.
	Unhandled bool
	// Submitted is set when Enter completed a line.
	Submitted bool
	Line      string
}

// Prompt is a single-line editor over a serial port.
type Prompt struct {
	out  *serialio.IO
	keys *keys.Reader

	History  *history.Log
	Complete *autocomplete.Engine

	buf       []byte
	cursor    int
	maxLength int

	state        State
	promptString string

	copyText string
	lastKey  string

	trim        bool
	commands    bool
	clearScreen bool
}

// New returns an editor writing to out and reading keys from its port.
func New(out *serialio.IO) *Prompt {
	return &Prompt{
		out:         out,
		keys:        keys.NewReader(out.Port()),
		History:     history.New(),
		Complete:    autocomplete.New(),
		maxLength:   DefaultMaxLength,
		trim:        true,
		commands:    true,
		clearScreen: true,
	}
}

// SetMaxLength bounds the buffer length. Negative lengths panic.
func (p *Prompt) SetMaxLength(n int) {
	if n < 0 {
		panic(fmt.Sprintf("prompt: max length %d must not be negative", n))
	}
	p.maxLength = n
}

// MaxLength returns the buffer limit.
func (p *Prompt) MaxLength() int {
	return p.maxLength
}

// EnableCommands toggles the built-in line commands, Tab completion and
// history keys.
func (p *Prompt) EnableCommands(v bool) {
	p.commands = v
}

// EnableClearScreen toggles Ctrl-L and the clear command.
func (p *Prompt) EnableClearScreen(v bool) {
	p.clearScreen = v
}

// EnableHistory toggles history recording and navigation.
func (p *Prompt) EnableHistory(v bool) {
	p.History.SetEnabled(v)
}

// EnableAutocomplete toggles Tab completion.
func (p *Prompt) EnableAutocomplete(v bool) {
	p.Complete.SetEnabled(v)
}

// SetTrim controls whether submitted lines are trimmed of surrounding
// whitespace.
func (p *Prompt) SetTrim(v bool) {
	p.trim = v
}

// SetBuffer pre-seeds the buffer shown when the next prompt is written.
func (p *Prompt) SetBuffer(s string) {
	if len(s) > p.maxLength {
		s = s[:p.maxLength]
	}
	p.buf = []byte(s)
	p.cursor = len(p.buf)
}

// Buffer returns the current edit buffer.
func (p *Prompt) Buffer() string {
	return string(p.buf)
}

// Cursor returns the cursor index into the buffer.
func (p *Prompt) Cursor() int {
	return p.cursor
}

// State returns the session state.
func (p *Prompt) State() State {
	return p.state
}

// Poll performs one non-blocking step: it writes the prompt when a new
// session starts, then decodes and applies at most one key.
func (p *Prompt) Poll(promptString string) Result {
	if p.state == AwaitingPrompt {
		p.begin(promptString)
	}

	ev, ok := p.keys.ReadKey()
	if !ok {
		return Result{}
	}
	if p.processKey(ev) {
		return Result{Key: ev}
	}
	if ev.Kind == keys.KindCtrl && ev.Name == keys.Enter {
		return p.submit(ev)
	}
	return Result{Key: ev, Unhandled: true}
}

// Interrupt abandons the current line and returns to AwaitingPrompt.
func (p *Prompt) Interrupt() {
	p.out.Write("\r\n")
	p.clear()
	p.lastKey = ""
	p.Complete.Reset()
	p.History.ResetCursor()
	p.state = AwaitingPrompt
}

func (p *Prompt) begin(promptString string) {
	p.state = Editing
	p.promptString = promptString
	p.out.Write(promptString)
	if len(p.buf) == 0 {
		p.clear()
		return
	}
	p.out.Write(string(p.buf))
	p.out.Write(ansi.Horizontal(p.cursor - len(p.buf)))
}

func (p *Prompt) clear() {
	p.buf = p.buf[:0]
	p.cursor = 0
}

func (p *Prompt) submit(ev keys.Event) Result {
	p.out.Write("\r\n")
	line := string(p.buf)
	if p.trim {
		line = strings.TrimSpace(line)
	}

	if p.commands && p.runBuiltin(strings.TrimSpace(string(p.buf))) {
		p.begin(p.promptString)
		return Result{Key: ev}
	}

	p.History.Append(line)
	p.clear()
	p.lastKey = ""
	p.state = AwaitingPrompt
	return Result{Key: ev, Submitted: true, Line: line}
}

// runBuiltin executes the line commands handled by the editor itself and
// reports whether line was one of them.
func (p *Prompt) runBuiltin(line string) bool {
	switch {
	case line == "":
		return false

	case line == "clear" && p.clearScreen:
		p.out.Write(ansi.ClearScreen)
		p.clear()
		return true

	case line == "history" && p.History.Enabled():
		for i, entry := range p.History.Entries() {
			p.out.Write(fmt.Sprintf("%3d: %s\r\n", i, entry))
		}
		p.clear()
		return true

	case len(line) > 1 && line[0] == '!' && p.History.Enabled():
		entry, ok := p.History.Recall(line)
		p.clear()
		if !ok {
			p.out.WriteLine(line + ": event not found")
			return true
		}
		// The recalled line is echoed and offered for editing; Enter
		// submits it.
		p.out.WriteLine(entry)
		p.SetBuffer(entry)
		return true
	}
	return false
}
