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
	"slices"

	"github.com/cloud-exit/promptkit/internal/ansi"
	"github.com/cloud-exit/promptkit/internal/serialio"
)

// Multi selects any number of options.
type Multi struct {
	list

	active []string
}

// NewMulti returns an empty multi-select list on out.
func NewMulti(out *serialio.IO) *Multi {
	return &Multi{list: newList(out)}
}

// SetOptions replaces the options.
func (m *Multi) SetOptions(options []Option) {
	m.setOptions(options)
}

// SetActive replaces the selected values. The slice is copied.
func (m *Multi) SetActive(values []string) {
	m.active = append([]string(nil), values...)
	m.rendered = false
}

// Active returns the selected values in option order.
func (m *Multi) Active() []string {
	values := []string{}
	for _, o := range m.options {
		if slices.Contains(m.active, o.Value) {
			values = append(values, o.Value)
		}
	}
	return values
}

// Poll draws the list when needed and handles at most one key. It returns
// the selected values once Enter is pressed.
func (m *Multi) Poll() ([]string, bool) {
	if !m.rendered {
		m.line = 0
		m.render(func(i int) bool { return slices.Contains(m.active, m.options[i].Value) })
	}

	ev, ok := m.keys.ReadKey()
	if !ok || m.navigate(ev) {
		return nil, false
	}

	switch {
	case isToggle(ev):
		m.toggle()
	case isEnter(ev):
		m.finish()
		return m.Active(), true
	}
	return nil, false
}

func (m *Multi) toggle() {
	if len(m.options) == 0 {
		return
	}
	value := m.options[m.line].Value
	if i := slices.Index(m.active, value); i >= 0 {
		m.active = slices.Delete(m.active, i, i+1)
		m.out.Write(" " + ansi.Back)
		return
	}
	m.active = append(m.active, value)
	m.out.Write("x" + ansi.Back)
}
