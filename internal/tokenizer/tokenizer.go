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

// Package tokenizer splits a command line into text, option, key=value
// and whitespace tokens, and joins them back.
package tokenizer

import (
	"fmt"
	"strings"
	"unicode"
)

// Type classifies a token.
type Type int

const (
	Text Type = iota
	Space
	Option
	LongOption
	KeyValue
)

func (t Type) String() string {
	switch t {
	case Text:
		return "text"
	case Space:
		return "space"
	case Option:
		return "option"
	case LongOption:
		return "long_option"
	case KeyValue:
		return "key_value"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Token is one lexical element of a command line.
type Token struct {
	Type    Type
	Name    string
	Content string
	// Flag marks an option given without a value.
	Flag bool
	// Quote is the quote character that enclosed Content, or 0.
	Quote byte
	// Delimiter separates a long option name from its value.
	Delimiter string
	// Group holds all letters of a short option group such as "ab" in -ab.
	Group string
}

// Options adjust a Tokenize call.
type Options struct {
	// Limit stops after this many tokens; the rest of the line becomes a
	// single text token. Zero means no limit.
	Limit int
	// KeyValue enables name=value tokens.
	KeyValue bool
}

// Tokenizer splits command lines.
type Tokenizer struct {
	delimiters string
}

// New returns a Tokenizer using "=" between long option names and values.
func New() *Tokenizer {
	return &Tokenizer{delimiters: "="}
}

// SetLongOptionDelimiters sets the characters that may separate a long
// option name from its value.
func (t *Tokenizer) SetLongOptionDelimiters(delimiters string) {
	t.delimiters = delimiters
}

// Tokenize splits text. A negative limit panics.
func (t *Tokenizer) Tokenize(text string, opts Options) []Token {
	if opts.Limit < 0 {
		panic(fmt.Sprintf("tokenizer: limit %d must be positive", opts.Limit))
	}

	var tokens []Token
	count := 0
	for i := 0; i < len(text); {
		switch c := text[i]; {
		case c == '"' || c == '\'':
			tokens, i = quoted(tokens, text, i+1, c)
		case c == '-' && i+1 < len(text) && text[i+1] == '-':
			tokens, i = t.longOption(tokens, text, i+2)
		case c == '-':
			tokens, i = shortOption(tokens, text, i+1)
		case c == ' ':
			tokens, i = space(tokens, text, i)
		default:
			tokens, i = plain(tokens, text, i, opts.KeyValue)
		}

		count++
		if opts.Limit > 0 && count >= opts.Limit {
			if i < len(text) {
				tokens = append(tokens, Token{Type: Text, Content: text[i:]})
			}
			break
		}
	}
	return tokens
}

// until returns the index of the first byte at or after pos found in chars.
func until(text string, pos int, chars string) int {
	for pos < len(text) && !strings.ContainsRune(chars, rune(text[pos])) {
		pos++
	}
	return pos
}

func quoted(tokens []Token, text string, start int, quote byte) ([]Token, int) {
	pos := until(text, start, string(quote))
	tokens = append(tokens, Token{Type: Text, Content: text[start:pos], Quote: quote})
	return tokens, pos + 1
}

func (t *Tokenizer) longOption(tokens []Token, text string, start int) ([]Token, int) {
	pos := until(text, start, t.delimiters+" ")
	tok := Token{Type: LongOption, Name: text[start:pos]}

	if pos >= len(text) || text[pos] == ' ' {
		tok.Flag = true
		return append(tokens, tok), pos
	}

	tok.Delimiter = text[pos : pos+1]
	start = pos + 1
	if start < len(text) && (text[start] == '"' || text[start] == '\'') {
		tok.Quote = text[start]
		pos = until(text, start+1, string(tok.Quote))
		tok.Content = text[start+1 : pos]
		return append(tokens, tok), pos + 1
	}

	pos = until(text, start, " ")
	tok.Content = text[start:pos]
	return append(tokens, tok), pos
}

func shortOption(tokens []Token, text string, start int) ([]Token, int) {
	pos := until(text, start, " ")
	group := text[start:pos]
	for _, name := range group {
		tokens = append(tokens, Token{Type: Option, Name: string(name), Flag: true, Group: group})
	}
	return tokens, pos
}

func space(tokens []Token, text string, start int) ([]Token, int) {
	pos := start
	for pos < len(text) && text[pos] == ' ' {
		pos++
	}
	return append(tokens, Token{Type: Space, Content: text[start:pos]}), pos
}

func plain(tokens []Token, text string, start int, keyValue bool) ([]Token, int) {
	if keyValue {
		pos := until(text, start, " =")
		name := text[start:pos]
		if pos < len(text) && text[pos] == '=' && isAlpha(name) {
			tokens = append(tokens, Token{Type: KeyValue, Name: name, Content: text[pos+1:]})
			return tokens, len(text)
		}
	}
	pos := until(text, start, " ")
	return append(tokens, Token{Type: Text, Content: text[start:pos]}), pos
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// String joins tokens back into a command line.
func String(tokens []Token) string {
	var sb strings.Builder
	var last Type = -1
	for _, tok := range tokens {
		content := tok.Content
		if tok.Quote != 0 {
			q := string(tok.Quote)
			content = q + content + q
		}

		switch tok.Type {
		case Text, Space:
			sb.WriteString(content)
		case Option:
			if last != Option {
				sb.WriteByte('-')
			}
			sb.WriteString(tok.Name)
		case LongOption:
			sb.WriteString("--" + tok.Name + tok.Delimiter)
			if !tok.Flag {
				sb.WriteString(content)
			}
		case KeyValue:
			sb.WriteString(tok.Name + "=" + content)
		}
		last = tok.Type
	}
	return sb.String()
}

// Command is a parsed command line.
type Command struct {
	Name       string
	Positional []string
	// Options maps option names to values; flags map to "".
	Options  map[string]string
	KeyValue map[string]string
}

// Parse groups tokens into a command: the first text token is the name,
// later ones are positional arguments.
func Parse(tokens []Token) Command {
	cmd := Command{
		Positional: []string{},
		Options:    map[string]string{},
		KeyValue:   map[string]string{},
	}
	named := false
	for _, tok := range tokens {
		switch tok.Type {
		case Text:
			if !named {
				cmd.Name = tok.Content
				named = true
				continue
			}
			cmd.Positional = append(cmd.Positional, tok.Content)
		case Option, LongOption:
			cmd.Options[tok.Name] = tok.Content
		case KeyValue:
			cmd.KeyValue[tok.Name] = tok.Content
		}
	}
	return cmd
}

// Flag reports whether the option name was given, with or without a value.
func (c Command) Flag(name string) bool {
	_, ok := c.Options[name]
	return ok
}
