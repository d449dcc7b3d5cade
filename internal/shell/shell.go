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

// Package shell implements a command line on top of the line editor:
// lines are tokenized, aliases expanded and a few built-in commands
// handled before the parsed command is handed to the caller.
package shell

import (
	"slices"
	"strings"

	"github.com/cloud-exit/promptkit/internal/memstat"
	"github.com/cloud-exit/promptkit/internal/prompt"
	"github.com/cloud-exit/promptkit/internal/serialio"
	"github.com/cloud-exit/promptkit/internal/tokenizer"
)

// MaxAliasDepth bounds recursive alias expansion.
const MaxAliasDepth = 5

// builtins are handled by the shell or its prompt. "free" is added when a
// memory hook is set.
var builtins = []string{"alias", "clear", "help", "history", "unalias"}

// Shell is an interactive command line.
type Shell struct {
	Prompt  *prompt.Prompt
	Aliases *Aliases

	out       *serialio.IO
	tokenizer *tokenizer.Tokenizer
	commands  []string
	help      string
	memory    memstat.Func
}

// New returns a shell on out with no registered commands.
func New(out *serialio.IO) *Shell {
	s := &Shell{
		Prompt:    prompt.New(out),
		Aliases:   NewAliases(),
		out:       out,
		tokenizer: tokenizer.New(),
	}
	s.updateCandidates()
	return s
}

// SetCommands registers the caller's command names for help and Tab
// completion.
func (s *Shell) SetCommands(commands []string) {
	s.commands = append([]string(nil), commands...)
	s.updateCandidates()
}

// SetHelp sets the message printed before the command list by help.
func (s *Shell) SetHelp(message string) {
	s.help = message
}

// SetMemory installs the hook behind the free command.
func (s *Shell) SetMemory(fn memstat.Func) {
	s.memory = fn
	s.updateCandidates()
}

// Tokenizer returns the tokenizer used to split lines.
func (s *Shell) Tokenizer() *tokenizer.Tokenizer {
	return s.tokenizer
}

// Commands returns the built-in and registered commands, sorted.
func (s *Shell) Commands() []string {
	all := append(slices.Clone(builtins), s.commands...)
	if s.memory != nil {
		all = append(all, "free")
	}
	slices.Sort(all)
	return slices.Compact(all)
}

func (s *Shell) updateCandidates() {
	s.Prompt.Complete.SetCandidates(s.Commands())
}

// Poll runs one editor step. When a non-empty line is submitted and it is
// not a built-in, the parsed command and its tokens are returned.
func (s *Shell) Poll(promptString string) (tokenizer.Command, []tokenizer.Token, bool) {
	res := s.Prompt.Poll(promptString)
	if !res.Submitted {
		return tokenizer.Command{}, nil, false
	}

	tokens := s.Expand(res.Line)
	if len(tokens) == 0 {
		return tokenizer.Command{}, nil, false
	}
	cmd := tokenizer.Parse(tokens)
	if s.builtin(cmd) {
		return tokenizer.Command{}, nil, false
	}
	return cmd, tokens, true
}

// Expand tokenizes line, replacing a leading alias with its expansion.
func (s *Shell) Expand(line string) []tokenizer.Token {
	return s.expand(line, 0)
}

func (s *Shell) expand(line string, depth int) []tokenizer.Token {
	tokens := s.tokenizer.Tokenize(strings.TrimLeft(line, " "), tokenizer.Options{KeyValue: true})
	if depth >= MaxAliasDepth || len(tokens) == 0 {
		return tokens
	}
	first := tokens[0]
	if first.Type != tokenizer.Text || first.Quote != 0 {
		return tokens
	}
	exp, ok := s.Aliases.Get(first.Content)
	if !ok {
		return tokens
	}
	return s.expand(exp+tokenizer.String(tokens[1:]), depth+1)
}

// builtin runs cmd when it is a shell built-in and reports whether it was.
func (s *Shell) builtin(cmd tokenizer.Command) bool {
	switch cmd.Name {
	case "alias":
		switch {
		case len(cmd.KeyValue) == 0 && len(cmd.Positional) == 0 && len(cmd.Options) == 0:
			s.out.WriteLine("Aliases:")
			for _, name := range s.Aliases.Names() {
				exp, _ := s.Aliases.Get(name)
				s.out.WriteLine("  " + name + " = " + exp)
			}
		case len(cmd.KeyValue) > 0 && len(cmd.Positional) == 0 && len(cmd.Options) == 0:
			for name, exp := range cmd.KeyValue {
				s.Aliases.Add(name, exp)
			}
		default:
			s.out.WriteLine("Invalid alias arguments")
		}
		return true

	case "unalias":
		if len(cmd.Positional) == 0 {
			s.out.WriteLine("Invalid unalias arguments")
			return true
		}
		s.Aliases.Remove(cmd.Positional[0])
		return true

	case "help":
		if s.help != "" {
			s.out.WriteLine(s.help)
		}
		s.out.WriteLine("Commands: ")
		s.out.WriteLine("  " + strings.Join(s.Commands(), ", "))
		return true

	case "free":
		if s.memory == nil {
			return false
		}
		memstat.Write(s.out, s.memory)
		return true
	}
	return false
}

// Interrupt abandons the line being edited.
func (s *Shell) Interrupt() {
	s.Prompt.Interrupt()
}
