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

package menu

import "github.com/cloud-exit/promptkit/internal/config"

// Bindings attach callbacks to configured nodes by ID. Nodes sharing an ID
// share the callback; the path argument tells them apart.
type Bindings struct {
	Values  map[string]ValueFunc
	Actions map[string]ActionFunc
}

// FromConfig builds a tree from its YAML description. Levels below
// MaxDepth are dropped.
func FromConfig(cfg config.MenuNode, b Bindings) *Node {
	return fromConfig(cfg, b, 0)
}

func fromConfig(cfg config.MenuNode, b Bindings, depth int) *Node {
	n := &Node{
		ID:     cfg.ID,
		Label:  cfg.Label,
		Hotkey: cfg.Hotkey,
		Value:  b.Values[cfg.ID],
		Action: b.Actions[cfg.ID],
	}
	if depth+1 >= MaxDepth {
		return n
	}
	for _, c := range cfg.Children {
		n.Children = append(n.Children, fromConfig(c, b, depth+1))
	}
	return n
}
