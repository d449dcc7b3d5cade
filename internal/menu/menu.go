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

// Package menu implements a numbered tree menu driven from the line
// editor. Each node lists its children with a hotkey; entering a hotkey
// runs the child's action and descends into it when it has children.
package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cloud-exit/promptkit/internal/memstat"
	"github.com/cloud-exit/promptkit/internal/prompt"
	"github.com/cloud-exit/promptkit/internal/serialio"
)

// MaxDepth bounds path resolution and hotkey assignment.
const MaxDepth = 16

const width = 50

var (
	// ErrEmptyPath is returned for an empty menu path.
	ErrEmptyPath = errors.New("menu: path is empty")
	// ErrNotFound is returned when a path names no node.
	ErrNotFound = errors.New("menu: node not found")
)

// ValueFunc returns the value displayed next to a node.
type ValueFunc func(m *Menu, path []string, n *Node) string

// ActionFunc runs when a node's hotkey is entered.
type ActionFunc func(m *Menu, path []string, n *Node)

// Node is one entry of the menu tree.
type Node struct {
	ID       string
	Label    string
	Hotkey   string
	Children []*Node
	Value    ValueFunc
	Action   ActionFunc
}

func (n *Node) child(match func(*Node) bool) *Node {
	for _, c := range n.Children {
		if match(c) {
			return c
		}
	}
	return nil
}

// Menu navigates a Node tree.
type Menu struct {
	Prompt *prompt.Prompt
	// Memory backs the "free" command; nil disables it.
	Memory memstat.Func

	out     *serialio.IO
	root    *Node
	current *Node
	path    []string
	exit    bool
}

// New returns an empty menu on out.
func New(out *serialio.IO) *Menu {
	return &Menu{Prompt: prompt.New(out), out: out}
}

// SetConfig installs the tree and moves to its root. Children without a
// hotkey get their position (1, 2, 3, ...).
func (m *Menu) SetConfig(root *Node) {
	assignHotkeys(root, 0)
	m.root = root
	m.ActionReset()
}

func assignHotkeys(n *Node, depth int) {
	if n == nil || depth >= MaxDepth {
		return
	}
	for i, c := range n.Children {
		if c.Hotkey == "" {
			c.Hotkey = strconv.Itoa(i + 1)
		}
		assignHotkeys(c, depth+1)
	}
}

// EnableExit makes "0" at the root end the menu.
func (m *Menu) EnableExit(v bool) {
	m.exit = v
}

// Path returns a copy of the current path, root ID first.
func (m *Menu) Path() []string {
	return append([]string(nil), m.path...)
}

// Current returns the node being displayed.
func (m *Menu) Current() *Node {
	return m.current
}

// Out returns the writer callbacks may use.
func (m *Menu) Out() *serialio.IO {
	return m.out
}

// resolve walks path from the root. A leading root ID is optional.
func (m *Menu) resolve(path []string) (*Node, error) {
	if len(path) == 0 || (len(path) == 1 && path[0] == "") {
		return nil, ErrEmptyPath
	}
	if m.root == nil {
		return nil, ErrNotFound
	}
	if len(path) > MaxDepth {
		return nil, fmt.Errorf("menu: path %q deeper than %d", strings.Join(path, "."), MaxDepth)
	}

	n := m.root
	if path[0] == n.ID {
		path = path[1:]
	}
	for _, id := range path {
		n = n.child(func(c *Node) bool { return c.ID == id })
		if n == nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
	}
	return n, nil
}

// InitPath moves to the node named by a dot separated path such as
// "main.brightness".
func (m *Menu) InitPath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	parts := strings.Split(path, ".")
	n, err := m.resolve(parts)
	if err != nil {
		return err
	}
	if parts[0] != m.root.ID {
		parts = append([]string{m.root.ID}, parts...)
	}
	m.current = n
	m.path = parts
	return nil
}

// ActionHotkey runs the child with hotkey and descends into it when it has
// children. Unknown hotkeys are ignored.
func (m *Menu) ActionHotkey(hotkey string) {
	if m.current == nil {
		return
	}
	n := m.current.child(func(c *Node) bool { return c.Hotkey == hotkey })
	if n == nil {
		return
	}
	if n.Action != nil {
		n.Action(m, m.Path(), n)
	}
	if len(n.Children) > 0 && len(m.path) < MaxDepth {
		m.current = n
		m.path = append(m.path, n.ID)
	}
	m.Render()
}

// ActionBack moves to the parent node. It reports true, without moving,
// when already at the root.
func (m *Menu) ActionBack() bool {
	if len(m.path) <= 1 {
		return true
	}
	m.path = m.path[:len(m.path)-1]
	n, err := m.resolve(m.path)
	if err != nil {
		m.ActionReset()
	} else {
		m.current = n
	}
	m.Render()
	return false
}

// ActionReset returns to the root.
func (m *Menu) ActionReset() {
	m.current = m.root
	m.path = nil
	if m.root != nil {
		m.path = []string{m.root.ID}
	}
}

// labels returns the labels along the current path.
func (m *Menu) labels() []string {
	var labels []string
	n := m.root
	for i, id := range m.path {
		if i > 0 {
			n = n.child(func(c *Node) bool { return c.ID == id })
		}
		if n == nil {
			break
		}
		labels = append(labels, n.Label)
	}
	return labels
}

// PromptLabel prefixes prompt with the breadcrumb of the current path.
func (m *Menu) PromptLabel(prompt string) string {
	return strings.Join(m.labels(), " / ") + " " + prompt
}

func (m *Menu) value(n *Node, format string) string {
	if n.Value == nil {
		return ""
	}
	return fmt.Sprintf(format, n.Value(m, m.Path(), n))
}

func (m *Menu) line(s string) {
	m.out.WriteLine(fmt.Sprintf("|%-*s|", width, s))
}

// Render draws the current node and its children.
func (m *Menu) Render() {
	if m.current == nil {
		return
	}
	delimiter := "+" + strings.Repeat("-", width) + "+"

	m.out.WriteLine(delimiter)
	m.line(" " + strings.Join(m.labels(), " / ") + m.value(m.current, ", value: %s"))
	m.out.WriteLine(delimiter)

	for _, c := range m.current.Children {
		more := ""
		if len(c.Children) > 0 {
			more = " >> "
		}
		m.line(fmt.Sprintf(" %2s. %-20s %s%s", c.Hotkey, c.Label, more, m.value(c, " val: %s")))
	}

	switch {
	case len(m.path) > 1:
		m.line(fmt.Sprintf(" %2d. %s", 0, "Back"))
	case m.exit:
		m.line(fmt.Sprintf(" %2d. %s", 0, "Exit"))
	}
	m.out.WriteLine(delimiter)
}

// Poll runs one editor step and handles a submitted line: "0" goes back,
// "reset" returns to the root, "menu" redraws, "free" prints memory usage
// and anything else is a hotkey. It reports true when the user exits.
func (m *Menu) Poll(promptString string) bool {
	res := m.Prompt.Poll(promptString)
	if !res.Submitted {
		return false
	}

	switch input := strings.TrimSpace(res.Line); {
	case input == "0":
		if m.ActionBack() && m.exit {
			m.out.Write("\r\n")
			return true
		}
	case input == "reset":
		m.ActionReset()
		m.Render()
	case input == "menu":
		m.Render()
	case input == "free" && m.Memory != nil:
		memstat.Write(m.out, m.Memory)
	default:
		m.ActionHotkey(input)
	}
	return false
}

// Interrupt abandons the line being edited.
func (m *Menu) Interrupt() {
	m.Prompt.Interrupt()
}
