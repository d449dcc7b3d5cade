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

package prompt

import (
	"github.com/cloud-exit/promptkit/internal/ansi"
	"github.com/cloud-exit/promptkit/internal/history"
	"github.com/cloud-exit/promptkit/internal/keys"
)

// processKey applies an editing key and reports whether it was used.
func (p *Prompt) processKey(ev keys.Event) bool {
	if !(ev.Kind == keys.KindCtrl && ev.Name == keys.Tab) {
		p.Complete.Reset()
	}

	if ev.Kind == keys.KindChar {
		p.insert(ev.Name)
		p.lastKey = ev.Name
		return true
	}

	switch ev.Name {
	case keys.Left, keys.CtrlB:
		p.move(-1)
	case keys.Right, keys.CtrlF:
		p.move(1)
	case keys.Home, keys.CtrlA:
		p.move(-p.cursor)
	case keys.End, keys.CtrlE:
		p.move(len(p.buf) - p.cursor)
	case keys.Backspace, keys.CtrlH:
		p.remove(-1, "")
	case keys.Delete:
		p.remove(1, "")
	case keys.CtrlK:
		p.remove(len(p.buf)-p.cursor, ev.Name)
	case keys.CtrlU:
		p.remove(-p.cursor, ev.Name)
	case keys.AltB:
		p.move(p.wordStart())
	case keys.AltF:
		p.move(p.wordEnd())
	case keys.CtrlW:
		p.remove(p.wordStart(), ev.Name)
	case keys.AltD:
		p.remove(p.wordEnd(), ev.Name)

	case keys.Tab:
		if !p.Complete.Enabled() || !p.commands {
			return false
		}
		p.replace(p.Complete.Process(string(p.buf)))

	case keys.CtrlL:
		if !p.clearScreen {
			return false
		}
		p.redraw()

	case keys.CtrlY:
		if p.copyText == "" {
			return false
		}
		p.insert(p.copyText)

	case keys.Up, keys.CtrlP:
		if !p.History.Enabled() || !p.commands {
			return false
		}
		p.replace(p.History.Navigate(history.Prev, string(p.buf)))

	case keys.Down, keys.CtrlN:
		if !p.History.Enabled() || !p.commands {
			return false
		}
		p.replace(p.History.Navigate(history.Next, string(p.buf)))

	default:
		return false
	}

	p.lastKey = ev.Name
	return true
}

// move shifts the cursor by count, clamped to the buffer, and returns the
// distance actually moved.
func (p *Prompt) move(count int) int {
	if count < 0 && count < -p.cursor {
		count = -p.cursor
	}
	if rest := len(p.buf) - p.cursor; count > rest {
		count = rest
	}
	p.out.Write(ansi.Horizontal(count))
	p.cursor += count
	return count
}

// insert writes chars at the cursor followed by the shifted tail, then
// walks the cursor back over the tail.
func (p *Prompt) insert(chars string) {
	if len(p.buf)+len(chars) > p.maxLength {
		return
	}
	if p.cursor == len(p.buf) {
		p.buf = append(p.buf, chars...)
		p.cursor += len(chars)
		p.out.Write(chars)
		return
	}

	rest := string(p.buf[p.cursor:])
	p.buf = append(p.buf[:p.cursor], chars+rest...)
	p.cursor += len(chars) + len(rest)
	p.out.Write(chars + rest)
	p.move(-len(rest))
}

// remove deletes count characters after the cursor, or -count before it.
// killKey names the kill command storing the text in the copy buffer.
func (p *Prompt) remove(count int, killKey string) {
	backward := count < 0
	if backward {
		if p.cursor == 0 {
			return
		}
		count = -p.move(count)
	} else if rest := len(p.buf) - p.cursor; count > rest {
		count = rest
	}
	if count == 0 {
		return
	}

	removed := string(p.buf[p.cursor : p.cursor+count])
	if killKey != "" {
		p.kill(killKey, removed, backward)
	}
	p.buf = append(p.buf[:p.cursor], p.buf[p.cursor+count:]...)
	p.out.Write(ansi.DeleteChars(count))
}

// kill stores text in the copy buffer. Repeated kills with the same key
// accumulate: backward kills prepend, forward kills append.
func (p *Prompt) kill(key, text string, backward bool) {
	if p.lastKey != key {
		p.copyText = text
		return
	}
	if backward {
		p.copyText = text + p.copyText
	} else {
		p.copyText += text
	}
}

// replace swaps the whole buffer, redrawing only when it changed.
func (p *Prompt) replace(text string) {
	if text == string(p.buf) {
		return
	}
	p.move(-p.cursor)
	p.clear()
	p.out.Write(ansi.EraseLine)
	if len(text) > p.maxLength {
		text = text[:p.maxLength]
	}
	p.insert(text)
}

// redraw clears the screen and rewrites prompt and buffer.
func (p *Prompt) redraw() {
	p.out.Write(ansi.ClearScreen)
	p.out.Write(p.promptString + string(p.buf))
	p.out.Write(ansi.Horizontal(p.cursor - len(p.buf)))
}

// wordStart returns the (non-positive) offset to the start of the word
// before the cursor. Words are runs of non-space characters.
func (p *Prompt) wordStart() int {
	i := p.cursor - 1
	for i >= 0 && p.buf[i] == ' ' {
		i--
	}
	for i >= 0 && p.buf[i] != ' ' {
		i--
	}
	return i - p.cursor + 1
}

// wordEnd returns the (non-negative) offset to the end of the word after
// the cursor.
func (p *Prompt) wordEnd() int {
	i := p.cursor
	for i < len(p.buf) && p.buf[i] == ' ' {
		i++
	}
	for i < len(p.buf) && p.buf[i] != ' ' {
		i++
	}
	return i - p.cursor
}
