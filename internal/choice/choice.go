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

// Package choice implements single and multiple selection lists drawn
// inline on the console. Each option occupies one line; the cursor rests
// on the mark column of the highlighted line.
package choice

import (
	"github.com/cloud-exit/promptkit/internal/ansi"
	"github.com/cloud-exit/promptkit/internal/keys"
	"github.com/cloud-exit/promptkit/internal/serialio"
)

// markColumn is the column of the mark inside " [x] label".
const markColumn = 3

// Option is one selectable entry.
type Option struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// list holds what Single and Multi share: the options, the highlighted
// line and the rendering state.
type list struct {
	out  *serialio.IO
	keys *keys.Reader

	label    string
	options  []Option
	line     int
	rendered bool
}

func newList(out *serialio.IO) list {
	return list{out: out, keys: keys.NewReader(out.Port())}
}

// SetLabel sets the line written above the options.
func (l *list) SetLabel(label string) {
	l.label = label
	l.rendered = false
}

// Label returns the line written above the options.
func (l *list) Label() string {
	return l.label
}

// Options returns a copy of the options.
func (l *list) Options() []Option {
	return append([]Option(nil), l.options...)
}

func (l *list) setOptions(options []Option) {
	l.options = append([]Option(nil), options...)
	l.rendered = false
}

// Line returns the highlighted option index.
func (l *list) Line() int {
	return l.line
}

func (l *list) render(marked func(i int) bool) {
	if l.label != "" {
		l.out.WriteLine(l.label)
	}
	for i, o := range l.options {
		mark := " "
		if marked(i) {
			mark = "x"
		}
		l.out.Write(ansi.FirstColumn + " [" + mark + "] " + o.Label + "\r\n")
	}
	l.jump(l.line - len(l.options))
	l.rendered = true
}

// jump moves the cursor n lines, down when positive, onto the mark column.
func (l *list) jump(n int) {
	switch {
	case n < 0:
		l.out.Write(ansi.PrevLine(-n) + ansi.Column(markColumn))
	case n > 0:
		l.out.Write(ansi.NextLine(n) + ansi.Column(markColumn))
	}
}

// navigate handles the movement keys and reports whether ev was one.
func (l *list) navigate(ev keys.Event) bool {
	if ev.Kind != keys.KindEscape {
		return false
	}
	last := len(l.options) - 1
	switch ev.Name {
	case keys.Home:
		if l.line > 0 {
			l.jump(-l.line)
			l.line = 0
		}
	case keys.End:
		if l.line < last {
			l.jump(last - l.line)
			l.line = last
		}
	case keys.Up:
		if l.line > 0 {
			l.jump(-1)
			l.line--
		}
	case keys.Down:
		if l.line < last {
			l.jump(1)
			l.line++
		}
	default:
		return false
	}
	return true
}

// finish leaves the cursor below the list.
func (l *list) finish() {
	if n := len(l.options); n > 0 {
		l.jump(n - l.line - 1)
	}
	l.out.Write("\r\n")
	l.rendered = false
}

// Interrupt abandons the selection; the list is drawn again on the next
// poll.
func (l *list) Interrupt() {
	if l.rendered {
		l.finish()
	}
}

func isToggle(ev keys.Event) bool {
	return ev.Kind == keys.KindChar && (ev.Name == " " || ev.Name == "x")
}

func isEnter(ev keys.Event) bool {
	return ev.Kind == keys.KindCtrl && ev.Name == keys.Enter
}
