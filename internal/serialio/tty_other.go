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

//go:build !unix

package serialio

import (
	"errors"
	"os"
	"time"
)

// TTY is unavailable on this platform.
type TTY struct{}

// OpenTTY always fails on non-unix platforms.
func OpenTTY(in, out *os.File, interceptInterrupt bool) (*TTY, error) {
	return nil, errors.New("raw terminal input is only supported on unix")
}

func (t *TTY) Close() error { return nil }
func (t *TTY) SetTimeout(d time.Duration) {}
func (t *TTY) Wait(d time.Duration) {}
func (t *TTY) Buffered() int { return 0 }
func (t *TTY) ReadByte() (byte, error) { return 0, ErrTimeout }
func (t *TTY) Write(p []byte) (int, error) { return len(p), nil }
func (t *TTY) TakeInterrupt() bool { return false }
func (t *TTY) Err() error { return nil }
