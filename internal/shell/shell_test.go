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

package shell

import (
	"reflect"
	"strings"
	"testing"

	"github.com/cloud-exit/promptkit/internal/serialio"
	"github.com/cloud-exit/promptkit/internal/tokenizer"
)

func newTestShell() (*Shell, *serialio.Buffer) {
	b := serialio.NewBuffer()
	s := New(serialio.New(b))
	s.SetCommands([]string{"set", "get", "reset"})
	return s, b
}

type polled struct {
	cmd    tokenizer.Command
	tokens []tokenizer.Token
}

func run(s *Shell, b *serialio.Buffer, input string) []polled {
	b.Feed(input)
	var out []polled
	for b.Buffered() > 0 {
		if cmd, tokens, ok := s.Poll("$ "); ok {
			out = append(out, polled{cmd, tokens})
		}
	}
	return out
}

func TestPoll_ReturnsParsedCommand(t *testing.T) {
	s, b := newTestShell()
	got := run(s, b, "set --name=value -ab pos1\r")
	if len(got) != 1 {
		t.Fatalf("got %d commands, want 1", len(got))
	}
	cmd := got[0].cmd
	if cmd.Name != "set" || !reflect.DeepEqual(cmd.Positional, []string{"pos1"}) {
		t.Errorf("Command = %+v", cmd)
	}
	if cmd.Options["name"] != "value" || !cmd.Flag("a") || !cmd.Flag("b") {
		t.Errorf("Options = %v", cmd.Options)
	}
	if s := tokenizer.String(got[0].tokens); s != "set --name=value -ab pos1" {
		t.Errorf("tokens joined = %q", s)
	}
}

func TestPoll_EmptyLineNotReturned(t *testing.T) {
	s, b := newTestShell()
	if got := run(s, b, "\r   \r"); len(got) != 0 {
		t.Errorf("got %+v, want nothing", got)
	}
}

func TestPoll_AliasExpansion(t *testing.T) {
	s, b := newTestShell()
	run(s, b, "alias ll=get --all\r")
	exp, ok := s.Aliases.Get("ll")
	if !ok || exp != "get --all" {
		t.Fatalf("Aliases.Get(ll) = %q, %v", exp, ok)
	}

	got := run(s, b, "ll extra\r")
	if len(got) != 1 {
		t.Fatalf("got %d commands, want 1", len(got))
	}
	cmd := got[0].cmd
	if cmd.Name != "get" || !cmd.Flag("all") || !reflect.DeepEqual(cmd.Positional, []string{"extra"}) {
		t.Errorf("Command = %+v", cmd)
	}
}

func TestExpand_NestedAndCyclic(t *testing.T) {
	s, _ := newTestShell()
	s.Aliases.Add("a", "b -x")
	s.Aliases.Add("b", "get")
	if got := tokenizer.String(s.Expand("a 1")); got != "get -x 1" {
		t.Errorf("Expand(a 1) = %q, want %q", got, "get -x 1")
	}

	s.Aliases.Add("loop", "loop y")
	got := tokenizer.String(s.Expand("loop"))
	if want := "loop" + strings.Repeat(" y", MaxAliasDepth); got != want {
		t.Errorf("Expand(loop) = %q, want %q", got, want)
	}
}

func TestExpand_QuotedNameNotExpanded(t *testing.T) {
	s, _ := newTestShell()
	s.Aliases.Add("ll", "get")
	tokens := s.Expand(`"ll"`)
	if cmd := tokenizer.Parse(tokens); cmd.Name != "ll" {
		t.Errorf("Name = %q, want ll", cmd.Name)
	}
}

func TestAliasBuiltins(t *testing.T) {
	s, b := newTestShell()
	run(s, b, "alias zz=reset\ralias aa=get\r")
	b.Reset()
	run(s, b, "alias\r")
	out := b.Output()
	if !strings.Contains(out, "Aliases:\r\n  aa = get\r\n  zz = reset\r\n") {
		t.Errorf("alias listing = %q", out)
	}

	run(s, b, "unalias zz\r")
	if _, ok := s.Aliases.Get("zz"); ok {
		t.Error("unalias did not remove zz")
	}

	b.Reset()
	run(s, b, "unalias\ralias x\r")
	out = b.Output()
	if !strings.Contains(out, "Invalid unalias arguments\r\n") || !strings.Contains(out, "Invalid alias arguments\r\n") {
		t.Errorf("Output() = %q, want both usage errors", out)
	}
}

func TestHelp(t *testing.T) {
	s, b := newTestShell()
	s.SetHelp("Device console")
	run(s, b, "help\r")
	want := "Device console\r\nCommands: \r\n  alias, clear, get, help, history, reset, set, unalias\r\n"
	if !strings.Contains(b.Output(), want) {
		t.Errorf("Output() = %q, want %q", b.Output(), want)
	}
}

func TestFree(t *testing.T) {
	s, b := newTestShell()
	if got := run(s, b, "free\r"); len(got) != 1 {
		t.Fatalf("free without a hook should reach the caller, got %+v", got)
	}

	s.SetMemory(func() (uint64, uint64) { return 1, 2 })
	if got := run(s, b, "free\r"); len(got) != 0 {
		t.Errorf("free with a hook returned %+v", got)
	}
	if !strings.Contains(b.Output(), " Allocated memory : 1\r\n") {
		t.Errorf("Output() = %q, want memory report", b.Output())
	}
	if !contains(s.Commands(), "free") {
		t.Errorf("Commands() = %v, want free listed", s.Commands())
	}
}

func TestTabCompletesCommands(t *testing.T) {
	s, b := newTestShell()
	run(s, b, "se\t")
	if s.Prompt.Buffer() != "set" {
		t.Errorf("Buffer() = %q, want set", s.Prompt.Buffer())
	}
}

func TestAliases_Names(t *testing.T) {
	a := NewAliases()
	a.Add("b", "1")
	a.Add("a", "2")
	a.Remove("missing")
	if got := a.Names(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Names() = %v", got)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
