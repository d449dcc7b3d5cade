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

import "testing"

func TestMoves(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{Right(3), "\x1b[3C"},
		{Left(1), "\x1b[1D"},
		{NextLine(2), "\x1b[2E"},
		{PrevLine(4), "\x1b[4F"},
		{Column(3), "\x1b[3G"},
		{DeleteChars(5), "\x1b[5P"},
		{Horizontal(-2), "\x1b[2D"},
		{Horizontal(2), "\x1b[2C"},
		{Horizontal(0), ""},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("got %q, want %q", tc.got, tc.want)
		}
	}
}

func TestCursorShape(t *testing.T) {
	if got := CursorShape(CursorBarSteady); got != "\x1b[6 q" {
		t.Errorf("CursorShape(6) = %q, want %q", got, "\x1b[6 q")
	}
}

func TestCursorShape_OutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("CursorShape(7) did not panic")
		}
	}()
	CursorShape(7)
}

func TestColorize(t *testing.T) {
	if got := Colorize("x", NoColor, NoColor); got != "x" {
		t.Errorf("Colorize without colours = %q, want %q", got, "x")
	}
	want := "\x1b[0m\x1b[48;5;4m\x1b[38;5;2mok\x1b[0m"
	if got := Colorize("ok", Blue, Green); got != want {
		t.Errorf("Colorize(ok, Blue, Green) = %q, want %q", got, want)
	}
	want = "\x1b[0m\x1b[38;5;1merr\x1b[0m"
	if got := ColorizeLevel("err", LevelError); got != want {
		t.Errorf("ColorizeLevel(err, LevelError) = %q, want %q", got, want)
	}
}

func TestColorize_BadColor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Colorize with colour 16 did not panic")
		}
	}()
	Colorize("x", NoColor, 16)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		want Color
	}{
		{"green", Green},
		{" Light_Blue ", LightBlue},
		{"white", White},
		{"", NoColor},
		{"none", NoColor},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("ParseColor(%q) = %v, %v, want %v", tt.name, got, err, tt.want)
		}
	}
	if _, err := ParseColor("mauve"); err == nil {
		t.Error("ParseColor(mauve) error = nil, want unknown colour")
	}
}
