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

// Package serialio defines the byte stream widgets read keys from and write
// escape sequences to.
package serialio

import (
	"errors"
	"time"
)

// DefaultTimeout bounds how long a single ReadByte may block.
const DefaultTimeout = 30 * time.Millisecond

// ErrTimeout is returned by ReadByte when no byte arrived within the timeout.
var ErrTimeout = errors.New("serialio: read timeout")

// Port is a raw, half-duplex byte stream such as a serial console.
type Port interface {
	// Buffered returns the number of bytes that can be read without waiting.
	Buffered() int
	// ReadByte reads one byte, blocking at most the port timeout.
	ReadByte() (byte, error)
	Write(p []byte) (int, error)
}

// IO writes text to a Port. The first write error sticks: later writes are
// dropped and the error is reported by Err.
type IO struct {
	port Port
	err  error
}

// New wraps a port.
func New(port Port) *IO {
	return &IO{port: port}
}

// Port returns the underlying port.
func (o *IO) Port() Port {
	return o.port
}

// Write writes s verbatim.
func (o *IO) Write(s string) {
	if o.err != nil || s == "" {
		return
	}
	if _, err := o.port.Write([]byte(s)); err != nil {
		o.err = err
	}
}

// WriteLine writes s followed by CRLF.
func (o *IO) WriteLine(s string) {
	o.Write(s + "\r\n")
}

// Err returns the first write error, if any.
func (o *IO) Err() error {
	return o.err
}
