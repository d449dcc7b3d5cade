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

// Package ansi builds the escape sequences written to the console.
package ansi

import (
	"fmt"
	"strconv"
)

// Fixed sequences.
const (
	EraseLine     = "\x1b[K"
	ClearScreen   = "\x1b[2J\x1b[1;1H"
	SaveCursor    = "\x1b[s"
	RestoreCursor = "\x1b[u"
	Reset         = "\x1b[0m"
	FirstColumn   = "\x1b[G"
	Back          = "\x1b[D"
)

func csi(n int, final byte) string {
	return "\x1b[" + strconv.Itoa(n) + string(final)
}

// Right moves the cursor n columns right.
func Right(n int) string { return csi(n, 'C') }

// Left moves the cursor n columns left.
func Left(n int) string { return csi(n, 'D') }

// NextLine moves the cursor to the start of the line n lines down.
func NextLine(n int) string { return csi(n, 'E') }

// PrevLine moves the cursor to the start of the line n lines up.
func PrevLine(n int) string { return csi(n, 'F') }

// Column moves the cursor to the absolute column n (1-based).
func Column(n int) string { return csi(n, 'G') }

// DeleteChars deletes n characters at the cursor, shifting the tail left.
func DeleteChars(n int) string { return csi(n, 'P') }

// Horizontal moves the cursor n columns, left when n is negative. A zero
// move writes nothing: terminals treat a zero count as one.
func Horizontal(n int) string {
	switch {
	case n < 0:
		return Left(-n)
	case n > 0:
		return Right(n)
	}
	return ""
}

// Cursor shapes for CursorShape (DECSCUSR).
const (
	CursorDefault = iota
	CursorBlockBlinking
	CursorBlockSteady
	CursorUnderlineBlinking
	CursorUnderlineSteady
	CursorBarBlinking
	CursorBarSteady
)

// CursorShape selects the cursor style. Shapes outside 0..6 panic.
func CursorShape(shape int) string {
	if shape < CursorDefault || shape > CursorBarSteady {
		panic(fmt.Sprintf("ansi: cursor shape %d out of range 0..6", shape))
	}
	return "\x1b[" + strconv.Itoa(shape) + " q"
}
