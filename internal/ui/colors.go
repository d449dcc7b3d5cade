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

// Package ui provides host-side terminal output: colours, leveled logging
// and the logo.
package ui

import (
	"os"

	"golang.org/x/term"

	"github.com/cloud-exit/promptkit/internal/ansi"
)

// Colour sequences, empty when colour is disabled.
var (
	Red    string
	Green  string
	Yellow string
	Cyan   string
	Dim    string
	NC     string // No Color / Reset
)

func init() {
	SetColor(isTerminal())
}

// SetColor turns the colour sequences on or off.
func SetColor(enabled bool) {
	if !enabled {
		Red, Green, Yellow, Cyan, Dim, NC = "", "", "", "", "", ""
		return
	}
	Red = ansi.Foreground(ansi.Red)
	Green = ansi.Foreground(ansi.Green)
	Yellow = ansi.Foreground(ansi.Yellow)
	Cyan = ansi.Foreground(ansi.Cyan)
	Dim = "\x1b[2m"
	NC = ansi.Reset
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
