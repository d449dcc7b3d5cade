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

package ui

import (
	"fmt"
	"io"
	"os"
)

// Verbose controls whether debug messages are printed.
var Verbose bool

// Raw is set while the terminal is in raw mode, where a bare line feed
// does not return the carriage.
var Raw bool

// Destinations for normal and diagnostic output.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func eol() string {
	if Raw {
		return "\r\n"
	}
	return "\n"
}

func logTo(w io.Writer, color, tag, msg string) {
	fmt.Fprintf(w, "%s[%s]%s %s%s", color, tag, NC, msg, eol())
}

// Info prints an informational message to stdout.
func Info(msg string) {
	logTo(Stdout, Cyan, "INFO", msg)
}

// Infof prints a formatted informational message to stdout.
func Infof(format string, a ...any) {
	Info(fmt.Sprintf(format, a...))
}

// Success prints a success message to stdout.
func Success(msg string) {
	logTo(Stdout, Green, "OK", msg)
}

// Successf prints a formatted success message to stdout.
func Successf(format string, a ...any) {
	Success(fmt.Sprintf(format, a...))
}

// Warn prints a warning message to stderr.
func Warn(msg string) {
	logTo(Stderr, Yellow, "WARN", msg)
}

// Warnf prints a formatted warning message to stderr.
func Warnf(format string, a ...any) {
	Warn(fmt.Sprintf(format, a...))
}

// ErrorNoExit prints an error message to stderr without exiting.
func ErrorNoExit(msg string) {
	logTo(Stderr, Red, "ERROR", msg)
}

// Debug prints a debug message to stderr (only when Verbose is true).
func Debug(msg string) {
	if Verbose {
		logTo(Stderr, Dim, "DEBUG", msg)
	}
}

// Debugf prints a formatted debug message to stderr.
func Debugf(format string, a ...any) {
	if Verbose {
		Debug(fmt.Sprintf(format, a...))
	}
}

// Cecho prints coloured text to stdout.
func Cecho(msg, color string) {
	fmt.Fprintf(Stdout, "%s%s%s%s", color, msg, NC, eol())
}
