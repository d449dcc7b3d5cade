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

// Package autocomplete cycles through candidates sharing a prefix.
package autocomplete

import "strings"

// Engine completes a buffer against a candidate list. The prefix is
// captured on the first Process call after Reset, so repeated calls rotate
// through every candidate matching what the user originally typed.
type Engine struct {
	enabled    bool
	candidates []string
	prefix     *string
	index      int
}

// New returns an enabled engine with no candidates.
func New() *Engine {
	return &Engine{enabled: true}
}

// SetEnabled turns completion on or off.
func (e *Engine) SetEnabled(v bool) {
	e.enabled = v
}

// Enabled reports whether completion is on.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// SetCandidates replaces the candidate list. Ignored while disabled.
func (e *Engine) SetCandidates(candidates []string) {
	if !e.enabled {
		return
	}
	e.candidates = append([]string(nil), candidates...)
}

// Reset forgets the captured prefix and rotation.
func (e *Engine) Reset() {
	e.prefix = nil
	e.index = 0
}

// Process returns the next candidate matching the captured prefix, or
// buffer unchanged when nothing matches.
func (e *Engine) Process(buffer string) string {
	if !e.enabled || len(e.candidates) == 0 {
		return buffer
	}
	if e.prefix == nil {
		p := buffer
		e.prefix = &p
	}

	var matches []string
	for _, c := range e.candidates {
		if strings.HasPrefix(c, *e.prefix) {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return buffer
	}
	next := matches[e.index%len(matches)]
	e.index++
	return next
}
