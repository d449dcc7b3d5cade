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

package keys

import (
	"errors"
	"strings"

	"github.com/cloud-exit/promptkit/internal/serialio"
	"github.com/cloud-exit/promptkit/internal/ui"
)

const esc = 0x1b

var errNotASCII = errors.New("keys: non-ASCII byte")

// Reader decodes keys from a port. It never blocks on an empty port; inside
// an escape sequence each byte waits at most the port timeout.
type Reader struct {
	port serialio.Port
}

// NewReader returns a Reader on port.
func NewReader(port serialio.Port) *Reader {
	return &Reader{port: port}
}

// ReadKey decodes one key. It returns false when no byte is pending or the
// pending bytes do not form a key (partial or non-ASCII input).
func (r *Reader) ReadKey() (Event, bool) {
	if r.port.Buffered() == 0 {
		return Event{}, false
	}
	b, err := r.port.ReadByte()
	if err != nil {
		return Event{}, false
	}

	var ev Event
	switch {
	case b == esc:
		if r.port.Buffered() == 0 {
			ev = Event{Kind: KindEscape, Name: Esc}
			break
		}
		name, err := r.readEscape()
		if err != nil {
			ui.Debugf("keys: dropped escape sequence: %v", err)
			return Event{}, false
		}
		ev = Event{Kind: KindEscape, Name: name}
	case b < 32:
		ev = Event{Kind: KindCtrl, Name: "CTRL_" + string(rune(b+64))}
	case b < 127:
		ev = Event{Kind: KindChar, Name: string(rune(b))}
	case b == 127:
		ev = Event{Kind: KindCtrl, Name: Backspace}
	default:
		return Event{}, false
	}

	ui.Debugf("keys: %s", ev)
	return ev, true
}

func (r *Reader) next() (byte, error) {
	b, err := r.port.ReadByte()
	if err != nil {
		return 0, err
	}
	if b >= 0x80 {
		return 0, errNotASCII
	}
	return b, nil
}

// readRange collects bytes in [lo, hi] starting with c and returns the
// first byte outside the range.
func (r *Reader) readRange(lo, hi, c byte) (string, byte, error) {
	var sb strings.Builder
	for c >= lo && c <= hi {
		sb.WriteByte(c)
		var err error
		if c, err = r.next(); err != nil {
			return "", 0, err
		}
	}
	return sb.String(), c, nil
}

// readEscape decodes the bytes following ESC.
func (r *Reader) readEscape() (string, error) {
	code, err := r.next()
	if err != nil {
		return "", err
	}

	switch {
	case code == '[':
		// CSI: parameter bytes 0x30-0x3F, intermediate bytes 0x20-0x2F,
		// then a single final byte 0x40-0x7E.
		c, err := r.next()
		if err != nil {
			return "", err
		}
		parameter, c, err := r.readRange(0x30, 0x3f, c)
		if err != nil {
			return "", err
		}
		intermediate, c, err := r.readRange(0x20, 0x2f, c)
		if err != nil {
			return "", err
		}
		final := ""
		if c >= 0x40 && c <= 0x7e {
			final = string(rune(c))
		}
		if name := decodeCSI(parameter, intermediate, final); name != "" {
			return name, nil
		}
		return "[" + parameter + intermediate + final, nil

	case code > 0 && code < 32:
		return "CTRL_ALT_" + string(rune(code+64)), nil

	case code == 'O':
		// SS3, sent by some keypads for arrows and F1-F4.
		ext, err := r.next()
		if err != nil {
			return "", err
		}
		if name, ok := finalKeys[ext]; ok {
			return name, nil
		}
		return "O" + string(rune(ext)), nil

	case code > 96 && code < 123:
		return "ALT_" + string(rune(code-32)), nil
	}

	return string([]byte{esc, code}), nil
}

// decodeCSI names a CSI sequence, or returns "" when it is not recognised.
func decodeCSI(parameter, intermediate, final string) string {
	key := ""
	if final != "~" && final != "" {
		key = finalKeys[final[0]]
	}
	if parameter == "" && intermediate == "" {
		return key
	}

	modifier := ""
	if base, mod, ok := strings.Cut(parameter, ";"); ok {
		parameter = base
		modifier = modifiers[mod]
	}

	if parameter == "1" && modifier != "" && key != "" {
		return modifier + "_" + key
	}

	if parameter != "" && intermediate == "" && final == "~" {
		if name, ok := parameterKeys[parameter]; ok {
			if modifier != "" {
				return modifier + "_" + name
			}
			return name
		}
	}
	return ""
}
