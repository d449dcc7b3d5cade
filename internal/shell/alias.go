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
	"maps"
	"slices"
)

// Aliases maps command names to the text they expand to.
type Aliases struct {
	m map[string]string
}

// NewAliases returns an empty alias table.
func NewAliases() *Aliases {
	return &Aliases{m: make(map[string]string)}
}

// Add defines or replaces an alias.
func (a *Aliases) Add(name, expansion string) {
	a.m[name] = expansion
}

// Remove deletes an alias. Unknown names are ignored.
func (a *Aliases) Remove(name string) {
	delete(a.m, name)
}

// Get returns the expansion of name.
func (a *Aliases) Get(name string) (string, bool) {
	exp, ok := a.m[name]
	return exp, ok
}

// Names returns the alias names in sorted order.
func (a *Aliases) Names() []string {
	return slices.Sorted(maps.Keys(a.m))
}

// Len returns the number of aliases.
func (a *Aliases) Len() int {
	return len(a.m)
}
