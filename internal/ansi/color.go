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

package ansi

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an index into the 16 base colours of the 256-colour palette.
type Color int

// NoColor leaves a channel unchanged.
const NoColor Color = -1

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	LightGray
	DarkGray
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightMagenta
	LightCyan
	White
)

var colorNames = []string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "light_gray",
	"dark_gray", "light_red", "light_green", "light_yellow", "light_blue",
	"light_magenta", "light_cyan", "white",
}

// ParseColor looks up a colour by name, e.g. "green" or "light_blue".
// The empty string and "none" are NoColor.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "none" {
		return NoColor, nil
	}
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return NoColor, fmt.Errorf("unknown colour %q", name)
}

// Level colours used by ColorizeLevel.
const (
	LevelNormal  = NoColor
	LevelError   = Red
	LevelWarning = Yellow
	LevelInfo    = Green
	LevelDebug   = Magenta
	LevelTrace   = DarkGray
)

func (c Color) check(channel string) {
	if c != NoColor && (c < Black || c > White) {
		panic(fmt.Sprintf("ansi: %s colour %d out of range %d..%d", channel, c, Black, White))
	}
}

// Foreground returns the SGR sequence selecting c as foreground.
func Foreground(c Color) string {
	return "\x1b[38;5;" + strconv.Itoa(int(c)) + "m"
}

// Background returns the SGR sequence selecting c as background.
func Background(c Color) string {
	return "\x1b[48;5;" + strconv.Itoa(int(c)) + "m"
}

// Colorize wraps text in colour sequences. With both channels NoColor the
// text is returned unchanged.
func Colorize(text string, bg, fg Color) string {
	bg.check("background")
	fg.check("foreground")

	if bg == NoColor && fg == NoColor {
		return text
	}
	s := Reset
	if bg != NoColor {
		s += Background(bg)
	}
	if fg != NoColor {
		s += Foreground(fg)
	}
	return s + text + Reset
}

// ColorizeLevel colours text with a level colour such as LevelError.
func ColorizeLevel(text string, level Color) string {
	return Colorize(text, NoColor, level)
}
