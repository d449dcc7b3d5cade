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

package prompt

import (
	"strings"
	"testing"

	"github.com/cloud-exit/promptkit/internal/keys"
	"github.com/cloud-exit/promptkit/internal/serialio"
)

const (
	up        = "\x1b[A"
	down      = "\x1b[B"
	left      = "\x1b[D"
	right     = "\x1b[C"
	home      = "\x1b[H"
	del       = "\x1b[3~"
	backspace = "\x7f"
	enter     = "\r"
	tab       = "\t"
	ctrlK     = "\x0b"
	ctrlL     = "\x0c"
	ctrlU     = "\x15"
	ctrlW     = "\x17"
	ctrlY     = "\x19"
	altD      = "\x1bd"
)

func newTestPrompt() (*Prompt, *serialio.Buffer) {
	b := serialio.NewBuffer()
	return New(serialio.New(b)), b
}

// feed queues input and polls until the port is drained.
func feed(p *Prompt, b *serialio.Buffer, input string) []Result {
	b.Feed(input)
	var results []Result
	for b.Buffered() > 0 {
		results = append(results, p.Poll("> "))
	}
	return results
}

func submitted(results []Result) []string {
	var lines []string
	for _, r := range results {
		if r.Submitted {
			lines = append(lines, r.Line)
		}
	}
	return lines
}

func TestPoll_WritesPromptOnce(t *testing.T) {
	p, b := newTestPrompt()
	p.Poll("> ")
	p.Poll("> ")
	if got := b.Output(); got != "> " {
		t.Errorf("Output() = %q, want a single prompt", got)
	}
	if p.State() != Editing {
		t.Errorf("State() = %v, want Editing", p.State())
	}
}

func TestPoll_BackspaceAfterLeft(t *testing.T) {
	p, b := newTestPrompt()
	feed(p, b, "abc"+left+left+backspace)
	if p.Buffer() != "bc" {
		t.Errorf("Buffer() = %q, want %q", p.Buffer(), "bc")
	}
	if p.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", p.Cursor())
	}
}

func TestPoll_InsertMiddleRedrawsTail(t *testing.T) {
	p, b := newTestPrompt()
	feed(p, b, "ac"+left+"b")
	if p.Buffer() != "abc" || p.Cursor() != 2 {
		t.Errorf("Buffer(), Cursor() = %q, %d, want %q, 2", p.Buffer(), p.Cursor(), "abc")
	}
	want := "> ac\x1b[1Dbc\x1b[1D"
	if got := b.Output(); got != want {
		t.Errorf("Output() = %q, want %q", got, want)
	}
}

func TestPoll_Backspace(t *testing.T) {
	p, b := newTestPrompt()
	feed(p, b, "ab"+backspace)
	want := "> ab\x1b[1D\x1b[1P"
	if got := b.Output(); got != want {
		t.Errorf("Output() = %q, want %q", got, want)
	}
}

func TestPoll_BackspaceAtStartIsNoop(t *testing.T) {
	p, b := newTestPrompt()
	feed(p, b, "ab"+home)
	b.Reset()
	feed(p, b, backspace)
	if b.Output() != "" || p.Buffer() != "ab" {
		t.Errorf("Backspace at 0 wrote %q, buffer %q", b.Output(), p.Buffer())
	}
}

func TestPoll_DeleteAtCursor(t *testing.T) {
	p, b := newTestPrompt()
	feed(p, b, "abc"+home+del)
	if p.Buffer() != "bc" || p.Cursor() != 0 {
		t.Errorf("Buffer(), Cursor() = %q, %d, want bc, 0", p.Buffer(), p.Cursor())
	}

	b.Reset()
	feed(p, b, "\x05"+del) // Ctrl-E then Delete at end
	if p.Buffer() != "bc" {
		t.Errorf("Delete at end changed buffer to %q", p.Buffer())
	}
	if strings.Contains(b.Output(), "P") {
		t.Errorf("Delete at end wrote %q", b.Output())
	}
}

func TestPoll_MoveClamped(t *testing.T) {
	p, b := newTestPrompt()
	feed(p, b, "ab"+left+left+left)
	if p.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", p.Cursor())
	}
	if strings.Count(b.Output(), "\x1b[1D") != 2 {
		t.Errorf("Output() = %q, want exactly two left moves", b.Output())
	}
}

func TestPoll_MaxLength(t *testing.T) {
	p, b := newTestPrompt()
	p.SetMaxLength(2)
	feed(p, b, "abc")
	if p.Buffer() != "ab" {
		t.Errorf("Buffer() = %q, want ab", p.Buffer())
	}
}

func TestPoll_Submit(t *testing.T) {
	p, b := newTestPrompt()
	results := feed(p, b, "  hi  "+enter)
	lines := submitted(results)
	if len(lines) != 1 || lines[0] != "hi" {
		t.Fatalf("submitted = %v, want [hi]", lines)
	}
	if p.State() != AwaitingPrompt || p.Buffer() != "" {
		t.Errorf("after submit State() = %v, Buffer() = %q", p.State(), p.Buffer())
	}
	if got := p.History.Entries(); len(got) != 1 || got[0] != "hi" {
		t.Errorf("History = %v, want [hi]", got)
	}
	if !strings.HasSuffix(b.Output(), "\r\n") {
		t.Errorf("Output() = %q, want trailing CRLF", b.Output())
	}
}

func TestPoll_SubmitWithoutTrim(t *testing.T) {
	p, b := newTestPrompt()
	p.SetTrim(false)
	lines := submitted(feed(p, b, " x "+enter))
	if len(lines) != 1 || lines[0] != " x " {
		t.Errorf("submitted = %q, want [\" x \"]", lines)
	}
}

func TestPoll_KillWordAndYank(t *testing.T) {
	p, b := newTestPrompt()
	feed(p, b, "one two three"+ctrlW+ctrlW)
	if p.Buffer() != "one " {
		t.Fatalf("Buffer() = %q, want %q", p.Buffer(), "one ")
	}
	feed(p, b, ctrlY)
	if p.Buffer() != "one two three" {
		t.Errorf("Buffer() after yank = %q, want %q", p.Buffer(), "one two three")
	}
}

func TestPoll_ForwardKillsAppend(t *testing.T) {
	p, b := newTestPrompt()
	feed(p, b, "abc def"+home+altD+altD)
	if p.Buffer() != "" {
		t.Fatalf("Buffer() = %q, want empty", p.Buffer())
	}
	feed(p, b, ctrlY)
	if p.Buffer() != "abc def" {
		t.Errorf("Buffer() after yank = %q, want %q", p.Buffer(), "abc def")
	}
}

func TestPoll_KillsSeparatedByOtherKeyDoNotCoalesce(t *testing.T) {
	p, b := newTestPrompt()
	feed(p, b, "abc"+left+ctrlK+"x"+left+ctrlK)
	if p.Buffer() != "ab" {
		t.Fatalf("Buffer() = %q, want ab", p.Buffer())
	}
	feed(p, b, ctrlY)
	if p.Buffer() != "abx" {
		t.Errorf("Buffer() after yank = %q, want abx", p.Buffer())
	}
}

func TestPoll_KillToStart(t *testing.T) {
	p, b := newTestPrompt()
	feed(p, b, "abc def")
	b.Reset()
	feed(p, b, ctrlU)
	if p.Buffer() != "" || p.Cursor() != 0 {
		t.Fatalf("Buffer(), Cursor() = %q, %d; want empty, 0", p.Buffer(), p.Cursor())
	}
	if got, want := b.Output(), "\x1b[7D\x1b[7P"; got != want {
		t.Errorf("Output() = %q, want %q", got, want)
	}
	feed(p, b, ctrlY)
	if p.Buffer() != "abc def" {
		t.Errorf("Buffer() after yank = %q, want %q", p.Buffer(), "abc def")
	}
}

func TestPoll_KillToStartSeparatedByMoveDoesNotCoalesce(t *testing.T) {
	p, b := newTestPrompt()
	feed(p, b, "hello"+left+left+ctrlU+right+ctrlU)
	if p.Buffer() != "o" {
		t.Fatalf("Buffer() = %q, want %q", p.Buffer(), "o")
	}
	feed(p, b, ctrlY)
	if p.Buffer() != "lo" {
		t.Errorf("Buffer() after yank = %q, want %q (only the last kill)", p.Buffer(), "lo")
	}
}

func TestPoll_KillToStartAfterWordKillStartsFresh(t *testing.T) {
	p, b := newTestPrompt()
	feed(p, b, "aa bb cc"+ctrlW+ctrlW+ctrlU)
	if p.Buffer() != "" {
		t.Fatalf("Buffer() = %q, want empty", p.Buffer())
	}
	feed(p, b, ctrlY)
	if p.Buffer() != "aa " {
		t.Errorf("Buffer() after yank = %q, want %q", p.Buffer(), "aa ")
	}
}

func TestPoll_KillWordAtStartWritesNothing(t *testing.T) {
	p, b := newTestPrompt()
	feed(p, b, "ab"+home)
	b.Reset()
	feed(p, b, ctrlW)
	if b.Output() != "" {
		t.Errorf("Ctrl-W at start wrote %q", b.Output())
	}
}

func TestPoll_WordMotion(t *testing.T) {
	p, b := newTestPrompt()
	feed(p, b, "foo bar baz"+"\x1bb")
	if p.Cursor() != 8 {
		t.Errorf("Alt-B Cursor() = %d, want 8", p.Cursor())
	}
	feed(p, b, "\x1bb\x1bb")
	if p.Cursor() != 0 {
		t.Errorf("Alt-B x3 Cursor() = %d, want 0", p.Cursor())
	}
	feed(p, b, "\x1bf")
	if p.Cursor() != 3 {
		t.Errorf("Alt-F Cursor() = %d, want 3", p.Cursor())
	}
}

func TestPoll_HistoryNavigation(t *testing.T) {
	p, b := newTestPrompt()
	feed(p, b, "first"+enter+"second"+enter+"dr")

	steps := []struct {
		key  string
		want string
	}{
		{up, "second"},
		{up, "first"},
		{down, "second"},
		{down, "dr"},
	}
	for _, s := range steps {
		feed(p, b, s.key)
		if p.Buffer() != s.want {
			t.Errorf("Buffer() = %q, want %q", p.Buffer(), s.want)
		}
	}
}

func TestPoll_HistoryDisabled(t *testing.T) {
	p, b := newTestPrompt()
	p.EnableHistory(false)
	feed(p, b, "first"+enter)
	results := feed(p, b, up)
	if len(results) != 1 || !results[0].Unhandled {
		t.Errorf("UP with history disabled = %+v, want unhandled", results)
	}
	if p.History.Len() != 0 {
		t.Errorf("History.Len() = %d, want 0", p.History.Len())
	}
}

func TestPoll_Autocomplete(t *testing.T) {
	p, b := newTestPrompt()
	p.Complete.SetCandidates([]string{"help", "history", "get"})
	feed(p, b, "h"+tab)
	if p.Buffer() != "help" {
		t.Fatalf("Buffer() after Tab = %q, want help", p.Buffer())
	}
	feed(p, b, tab)
	if p.Buffer() != "history" {
		t.Errorf("Buffer() after second Tab = %q, want history", p.Buffer())
	}
	if !strings.Contains(b.Output(), "\x1b[K") {
		t.Errorf("Output() = %q, want an erase-line on replacement", b.Output())
	}

	// Any other key starts a fresh completion session.
	feed(p, b, "\x01\x0b"+"g"+tab)
	if p.Buffer() != "get" {
		t.Errorf("Buffer() = %q, want get", p.Buffer())
	}
}

func TestPoll_AutocompleteUnchangedWritesNothing(t *testing.T) {
	p, b := newTestPrompt()
	p.Complete.SetCandidates([]string{"help"})
	feed(p, b, "x")
	b.Reset()
	feed(p, b, tab)
	if b.Output() != "" {
		t.Errorf("Tab without a match wrote %q", b.Output())
	}
}

func TestPoll_HistoryCommand(t *testing.T) {
	p, b := newTestPrompt()
	feed(p, b, "a"+enter+"b"+enter)
	b.Reset()
	results := feed(p, b, "history"+enter)
	if lines := submitted(results); len(lines) != 0 {
		t.Errorf("history command was submitted: %v", lines)
	}
	want := "\r\n  0: a\r\n  1: b\r\n> "
	if got := b.Output(); !strings.HasSuffix(got, want) {
		t.Errorf("Output() = %q, want suffix %q", got, want)
	}
}

func TestPoll_ClearCommand(t *testing.T) {
	p, b := newTestPrompt()
	b.Feed("x")
	p.Poll("> ")
	b.Reset()
	feed(p, b, "\x7fclear"+enter)
	if !strings.HasSuffix(b.Output(), "\x1b[2J\x1b[1;1H> ") {
		t.Errorf("Output() = %q, want clear screen followed by prompt", b.Output())
	}
}

func TestPoll_BangRecall(t *testing.T) {
	p, b := newTestPrompt()
	feed(p, b, "ls -la"+enter)
	results := feed(p, b, "!!"+enter)
	if lines := submitted(results); len(lines) != 0 {
		t.Fatalf("bang recall submitted %v, want re-prompt", lines)
	}
	if p.Buffer() != "ls -la" {
		t.Fatalf("Buffer() = %q, want recalled entry", p.Buffer())
	}
	if want := "!!\r\nls -la\r\n> ls -la"; !strings.HasSuffix(b.Output(), want) {
		t.Errorf("Output() = %q, want suffix %q", b.Output(), want)
	}
	lines := submitted(feed(p, b, enter))
	if len(lines) != 1 || lines[0] != "ls -la" {
		t.Errorf("submitted = %v, want [ls -la]", lines)
	}
}

func TestPoll_BangRecallNotFound(t *testing.T) {
	p, b := newTestPrompt()
	feed(p, b, "ls"+enter)
	feed(p, b, "!zz"+enter)
	if !strings.Contains(b.Output(), "!zz: event not found\r\n") {
		t.Errorf("Output() = %q, want not-found message", b.Output())
	}
	if p.Buffer() != "" {
		t.Errorf("Buffer() = %q, want empty", p.Buffer())
	}
}

func TestPoll_CommandsDisabled(t *testing.T) {
	p, b := newTestPrompt()
	p.EnableCommands(false)
	lines := submitted(feed(p, b, "clear"+enter))
	if len(lines) != 1 || lines[0] != "clear" {
		t.Errorf("submitted = %v, want [clear]", lines)
	}
}

func TestPoll_ClearScreenKey(t *testing.T) {
	p, b := newTestPrompt()
	feed(p, b, "ab"+left)
	b.Reset()
	feed(p, b, ctrlL)
	want := "\x1b[2J\x1b[1;1H> ab\x1b[1D"
	if got := b.Output(); got != want {
		t.Errorf("Output() = %q, want %q", got, want)
	}
}

func TestPoll_UnhandledKey(t *testing.T) {
	p, b := newTestPrompt()
	results := feed(p, b, "\x1b[15~")
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if !r.Unhandled || r.Key.Name != "F5" || r.Key.Kind != keys.KindEscape {
		t.Errorf("Result = %+v, want unhandled F5", r)
	}
}

func TestPoll_PreseededBuffer(t *testing.T) {
	p, b := newTestPrompt()
	p.SetBuffer("42")
	p.Poll("? ")
	if got := b.Output(); got != "? 42" {
		t.Errorf("Output() = %q, want %q", got, "? 42")
	}
	if p.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", p.Cursor())
	}
}

func TestInterrupt(t *testing.T) {
	p, b := newTestPrompt()
	feed(p, b, "abc"+left)
	p.Interrupt()
	if p.Buffer() != "" || p.Cursor() != 0 {
		t.Errorf("after Interrupt Buffer(), Cursor() = %q, %d", p.Buffer(), p.Cursor())
	}
	if p.State() != AwaitingPrompt {
		t.Errorf("State() = %v, want AwaitingPrompt", p.State())
	}
	b.Reset()
	p.Poll("> ")
	if b.Output() != "> " {
		t.Errorf("Output() after interrupt = %q, want fresh prompt", b.Output())
	}
}

func TestSetMaxLength_Negative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetMaxLength(-1) did not panic")
		}
	}()
	p, _ := newTestPrompt()
	p.SetMaxLength(-1)
}
