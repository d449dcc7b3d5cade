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

// Package keys decodes raw console bytes into key events.
package keys

// Kind classifies a decoded key.
type Kind uint8

const (
	KindNone   Kind = iota
	KindChar        // printable character, Name holds the character
	KindCtrl        // control code such as CTRL_A or BACKSPACE
	KindEscape      // escape sequence: named key or raw fallback
	KindData
)

// Event is one decoded key.
type Event struct {
	Kind Kind
	Name string
}

// IsZero reports whether no key was decoded.
func (e Event) IsZero() bool {
	return e.Kind == KindNone
}

func (e Event) String() string {
	switch e.Kind {
	case KindChar:
		return "char " + e.Name
	case KindCtrl:
		return "ctrl " + e.Name
	case KindEscape:
		return "escape " + e.Name
	case KindData:
		return "data " + e.Name
	}
	return "none"
}

// Key names produced by the decoder and understood by the widgets.
const (
	Esc       = "ESC"
	Backspace = "BACKSPACE"

	Up     = "UP"
	Down   = "DOWN"
	Right  = "RIGHT"
	Left   = "LEFT"
	Home   = "HOME"
	End    = "END"
	Insert = "INSERT"
	Delete = "DELETE"
	PgUp   = "PGUP"
	PgDown = "PGDW"

	CtrlA = "CTRL_A"
	CtrlB = "CTRL_B"
	CtrlC = "CTRL_C"
	CtrlD = "CTRL_D"
	CtrlE = "CTRL_E"
	CtrlF = "CTRL_F"
	CtrlH = "CTRL_H"
	CtrlI = "CTRL_I"
	CtrlK = "CTRL_K"
	CtrlL = "CTRL_L"
	CtrlM = "CTRL_M"
	CtrlN = "CTRL_N"
	CtrlP = "CTRL_P"
	CtrlU = "CTRL_U"
	CtrlW = "CTRL_W"
	CtrlY = "CTRL_Y"

	AltB = "ALT_B"
	AltD = "ALT_D"
	AltF = "ALT_F"

	Tab   = CtrlI
	Enter = CtrlM
)

// finalKeys maps a CSI or SS3 final byte to a key.
var finalKeys = map[byte]string{
	'A': Up,
	'B': Down,
	'C': Right,
	'D': Left,
	'F': End,
	'H': Home,
	'P': "F1",
	'Q': "F2",
	'R': "F3",
	'S': "F4",
}

// parameterKeys maps the numeric parameter of "ESC [ n ~" sequences.
var parameterKeys = map[string]string{
	"1":  Home,
	"2":  Insert,
	"3":  Delete,
	"4":  End,
	"5":  PgUp,
	"6":  PgDown,
	"7":  Home,
	"8":  End,
	"15": "F5",
	"17": "F6",
	"18": "F7",
	"19": "F8",
	"20": "F9",
	"21": "F10",
	"23": "F11",
	"24": "F12",
}

// modifiers maps the xterm modifier parameter to a key name prefix.
var modifiers = map[string]string{
	"2": "SHIFT",
	"3": "ALT",
	"4": "ALT_SHIFT",
	"5": "CONTROL",
	"6": "CONTROL_SHIFT",
	"7": "CONTROL_ALT",
	"8": "CONTROL_ALT_SHIFT",
}
