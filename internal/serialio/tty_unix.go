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

//go:build unix

package serialio

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TTY is a Port over a local terminal in raw mode.
type TTY struct {
	in      *os.File
	out     *os.File
	inFd    int
	oldTerm *term.State
	timeout time.Duration

	pending []byte
	err     error

	// Raw mode turns Ctrl-C into a plain 0x03 byte. When intercept is set
	// the byte is swallowed and reported through TakeInterrupt instead.
	intercept   bool
	interrupted bool
}

// OpenTTY switches in to raw mode. Close restores it.
func OpenTTY(in, out *os.File, interceptInterrupt bool) (*TTY, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("stdin is not a terminal")
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	return &TTY{
		in:        in,
		out:       out,
		inFd:      fd,
		oldTerm:   old,
		timeout:   DefaultTimeout,
		intercept: interceptInterrupt,
	}, nil
}

// Close restores the terminal state.
func (t *TTY) Close() error {
	if t.oldTerm == nil {
		return nil
	}
	err := term.Restore(t.inFd, t.oldTerm)
	t.oldTerm = nil
	return err
}

// SetTimeout changes the ReadByte timeout.
func (t *TTY) SetTimeout(d time.Duration) {
	t.timeout = d
}

// Buffered implements Port.
func (t *TTY) Buffered() int {
	if len(t.pending) == 0 {
		t.fill(0)
	}
	return len(t.pending)
}

// ReadByte implements Port.
func (t *TTY) ReadByte() (byte, error) {
	if len(t.pending) == 0 {
		if err := t.fill(int(t.timeout / time.Millisecond)); err != nil {
			return 0, err
		}
	}
	if len(t.pending) == 0 {
		return 0, ErrTimeout
	}
	c := t.pending[0]
	t.pending = t.pending[1:]
	return c, nil
}

// Wait blocks until input is pending or d elapses. Hosts call it between
// polls so an idle loop does not spin.
func (t *TTY) Wait(d time.Duration) {
	if len(t.pending) == 0 {
		t.fill(int(d / time.Millisecond))
	}
}

// Write implements Port.
func (t *TTY) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// TakeInterrupt reports whether Ctrl-C arrived since the last call.
func (t *TTY) TakeInterrupt() bool {
	if len(t.pending) == 0 {
		t.fill(0)
	}
	v := t.interrupted
	t.interrupted = false
	return v
}

// Err returns the error that closed the input, if any.
func (t *TTY) Err() error {
	return t.err
}

// fill polls the input for at most timeout milliseconds and appends what
// is readable to the pending queue.
func (t *TTY) fill(timeout int) error {
	if t.err != nil {
		return t.err
	}
	fds := []unix.PollFd{
		{Fd: int32(t.inFd), Events: unix.POLLIN},
	}
	n, err := unix.Poll(fds, timeout)
	if err != nil {
		if err == unix.EINTR {
			return nil
		}
		t.err = err
		return err
	}
	if n == 0 {
		return nil
	}

	buf := make([]byte, 256)
	rn, err := unix.Read(t.inFd, buf)
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return nil
		}
		t.err = err
		return err
	}
	if rn == 0 {
		t.err = io.EOF
		return t.err
	}

	for _, c := range buf[:rn] {
		if c == 0x03 && t.intercept {
			t.interrupted = true
			continue
		}
		t.pending = append(t.pending, c)
	}
	return nil
}
