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

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/cloud-exit/promptkit/internal/config"
	"github.com/cloud-exit/promptkit/internal/serialio"
)

// display is a small model the menu callbacks act on.
type display struct {
	brightness int
	contrast   int
}

func (d *display) value(_ *Menu, _ []string, n *Node) string {
	switch n.ID {
	case "brightness":
		return strconv.Itoa(d.brightness)
	case "contrast":
		return strconv.Itoa(d.contrast)
	}
	return ""
}

func (d *display) action(_ *Menu, path []string, n *Node) {
	target := &d.brightness
	if path[len(path)-1] == "contrast" {
		target = &d.contrast
	}
	switch n.ID {
	case "increase":
		*target++
	case "decrease":
		*target--
	}
}

func newTestMenu() (*Menu, *display, *serialio.Buffer) {
	d := &display{brightness: 50, contrast: 50}
	b := serialio.NewBuffer()
	m := New(serialio.New(b))
	m.SetConfig(FromConfig(config.DefaultMenu(), Bindings{
		Values: map[string]ValueFunc{
			"brightness": d.value,
			"contrast":   d.value,
		},
		Actions: map[string]ActionFunc{
			"increase": d.action,
			"decrease": d.action,
		},
	}))
	return m, d, b
}

func enter(m *Menu, b *serialio.Buffer, lines ...string) bool {
	for _, line := range lines {
		b.Feed(line + "\r")
		for b.Buffered() > 0 {
			if m.Poll("#> ") {
				return true
			}
		}
	}
	return false
}

func TestSetConfig_AssignsHotkeys(t *testing.T) {
	m, _, _ := newTestMenu()
	var hotkeys []string
	for _, c := range m.Current().Children {
		hotkeys = append(hotkeys, c.Hotkey)
	}
	if want := []string{"1", "2", "3"}; !reflect.DeepEqual(hotkeys, want) {
		t.Errorf("hotkeys = %v, want %v", hotkeys, want)
	}
}

func TestSetConfig_KeepsExplicitHotkey(t *testing.T) {
	b := serialio.NewBuffer()
	m := New(serialio.New(b))
	m.SetConfig(&Node{ID: "root", Children: []*Node{{ID: "a", Hotkey: "x"}, {ID: "b"}}})
	if got := m.Current().Children[0].Hotkey; got != "x" {
		t.Errorf("Hotkey = %q, want x", got)
	}
	if got := m.Current().Children[1].Hotkey; got != "2" {
		t.Errorf("Hotkey = %q, want 2", got)
	}
}

func TestPoll_Navigation(t *testing.T) {
	m, _, b := newTestMenu()

	enter(m, b, "2")
	if want := []string{"main", "brightness"}; !reflect.DeepEqual(m.Path(), want) {
		t.Fatalf("Path() = %v, want %v", m.Path(), want)
	}
	if m.Current().ID != "brightness" {
		t.Errorf("Current() = %q, want brightness", m.Current().ID)
	}

	enter(m, b, "0")
	if want := []string{"main"}; !reflect.DeepEqual(m.Path(), want) {
		t.Errorf("Path() after back = %v, want %v", m.Path(), want)
	}

	// At the root with exit disabled, "0" does nothing.
	b.Reset()
	if enter(m, b, "0") {
		t.Error("Poll() reported exit with exit disabled")
	}
	if strings.Contains(b.Output(), "+---") {
		t.Errorf("back at root redrew the menu: %q", b.Output())
	}
}

func TestPoll_Exit(t *testing.T) {
	m, _, b := newTestMenu()
	m.EnableExit(true)
	if !enter(m, b, "0") {
		t.Error("Poll() did not report exit")
	}
}

func TestPoll_Actions(t *testing.T) {
	m, d, b := newTestMenu()
	enter(m, b, "2", "1", "1", "0", "3", "2")
	if d.brightness != 52 {
		t.Errorf("brightness = %d, want 52", d.brightness)
	}
	if d.contrast != 49 {
		t.Errorf("contrast = %d, want 49", d.contrast)
	}
}

func TestPoll_Reset(t *testing.T) {
	m, _, b := newTestMenu()
	enter(m, b, "3", "reset")
	if want := []string{"main"}; !reflect.DeepEqual(m.Path(), want) {
		t.Errorf("Path() = %v, want %v", m.Path(), want)
	}
}

func TestPoll_Free(t *testing.T) {
	m, _, b := newTestMenu()
	m.Memory = func() (uint64, uint64) { return 10, 20 }
	enter(m, b, "free")
	if !strings.Contains(b.Output(), " Allocated memory : 10\r\n Free memory      : 20\r\n") {
		t.Errorf("Output() = %q, want memory report", b.Output())
	}
}

func TestRender(t *testing.T) {
	m, _, b := newTestMenu()
	if err := m.InitPath("main.brightness"); err != nil {
		t.Fatal(err)
	}
	m.Render()

	delim := "+" + strings.Repeat("-", 50) + "+\r\n"
	want := delim +
		"| Main / Brightness, value: 50                     |\r\n" +
		delim +
		"|  1. Increase                                     |\r\n" +
		"|  2. Decrease                                     |\r\n" +
		"|  0. Back                                         |\r\n" +
		delim
	if got := b.Output(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_Root(t *testing.T) {
	m, _, b := newTestMenu()
	m.EnableExit(true)
	m.Render()
	out := b.Output()
	for _, line := range []string{
		"| Main                                             |",
		"|  1. Memory                                       |",
		"|  2. Brightness            >>  val: 50            |",
		"|  0. Exit                                         |",
	} {
		if !strings.Contains(out, line+"\r\n") {
			t.Errorf("Render() missing line %q in\n%s", line, out)
		}
	}
}

func TestInitPath(t *testing.T) {
	m, _, _ := newTestMenu()

	if err := m.InitPath(""); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("InitPath(\"\") error = %v, want ErrEmptyPath", err)
	}
	if err := m.InitPath("main.nowhere"); !errors.Is(err, ErrNotFound) {
		t.Errorf("InitPath(main.nowhere) error = %v, want ErrNotFound", err)
	}
	if err := m.InitPath("contrast"); err != nil {
		t.Fatalf("InitPath(contrast) error = %v", err)
	}
	if want := []string{"main", "contrast"}; !reflect.DeepEqual(m.Path(), want) {
		t.Errorf("Path() = %v, want %v", m.Path(), want)
	}
	deep := strings.Repeat("x.", MaxDepth) + "x"
	if err := m.InitPath(deep); err == nil {
		t.Error("InitPath accepted a path deeper than MaxDepth")
	}
}

func TestPromptLabel(t *testing.T) {
	m, _, b := newTestMenu()
	enter(m, b, "3")
	if got := m.PromptLabel("#> "); got != "Main / Contrast #> " {
		t.Errorf("PromptLabel() = %q", got)
	}
}

func TestActionBack_AtRoot(t *testing.T) {
	m, _, _ := newTestMenu()
	if !m.ActionBack() {
		t.Error("ActionBack() at root = false, want true")
	}
}

func TestPoll_UnknownHotkeyIgnored(t *testing.T) {
	m, _, b := newTestMenu()
	enter(m, b, "9")
	if want := []string{"main"}; !reflect.DeepEqual(m.Path(), want) {
		t.Errorf("Path() = %v, want %v", m.Path(), want)
	}
}
