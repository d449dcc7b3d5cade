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

package choice

import (
	"github.com/cloud-exit/promptkit/internal/ansi"
	"github.com/cloud-exit/promptkit/internal/serialio"
)

// Single selects exactly one option.
type Single struct {
	list

	active      string
	activeIndex int
}

// NewSingle returns an empty single-select list on out.
func NewSingle(out *serialio.IO) *Single {
	return &Single{list: newList(out)}
}

// SetOptions replaces the options.
func (s *Single) SetOptions(options []Option) {
	s.setOptions(options)
}

// SetActive marks the option with value as selected. An unknown value
// selects the first option.
func (s *Single) SetActive(value string) {
	s.active = value
	s.rendered = false
}

// Active returns the selected value.
func (s *Single) Active() string {
	return s.active
}

// resolve finds the active option, falling back to the first.
func (s *Single) resolve() {
	s.activeIndex = 0
	for i, o := range s.options {
		if o.Value == s.active {
			s.activeIndex = i
			return
		}
	}
	if len(s.options) > 0 {
		s.active = s.options[0].Value
	}
}

// Poll draws the list when needed and handles at most one key. It returns
// the selected value once Enter is pressed.
func (s *Single) Poll() (string, bool) {
	if !s.rendered {
		s.resolve()
		s.line = s.activeIndex
		s.render(func(i int) bool { return i == s.activeIndex })
	}

	ev, ok := s.keys.ReadKey()
	if !ok || s.navigate(ev) {
		return "", false
	}

	switch {
	case isToggle(ev):
		s.mark()
	case isEnter(ev):
		if len(s.options) == 0 {
			s.finish()
			return "", true
		}
		s.mark()
		s.finish()
		return s.active, true
	}
	return "", false
}

// mark moves the selection mark to the highlighted line.
func (s *Single) mark() {
	if len(s.options) == 0 {
		return
	}
	diff := s.activeIndex - s.line
	if diff == 0 {
		return
	}
	s.out.Write(ansi.SaveCursor + "x" + ansi.Back)
	s.jump(diff)
	s.out.Write(" " + ansi.Back + ansi.RestoreCursor)

	s.activeIndex = s.line
	s.active = s.options[s.line].Value
}
