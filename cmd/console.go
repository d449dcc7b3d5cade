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

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cloud-exit/promptkit/internal/ansi"
	"github.com/cloud-exit/promptkit/internal/config"
	"github.com/cloud-exit/promptkit/internal/prompt"
	"github.com/cloud-exit/promptkit/internal/serialio"
	"github.com/cloud-exit/promptkit/internal/ui"
)

// idleWait is how long the host loop sleeps on the terminal when no input
// is pending.
const idleWait = 50 * time.Millisecond

// abortWindow is the time within which a second Ctrl-C aborts the command.
const abortWindow = time.Second

var errAborted = errors.New("aborted")

// terminal is the part of the TTY the host loop drives.
type terminal interface {
	TakeInterrupt() bool
	Err() error
	Wait(d time.Duration)
}

// interrupter is a widget that can abandon its current session.
type interrupter interface {
	Interrupt()
}

// console is a raw-mode terminal wrapped for the widgets.
type console struct {
	tty *serialio.TTY
	io  *serialio.IO
	cfg *config.Config
}

// openConsole puts stdin into raw mode. Callers must Close it before
// printing results.
func openConsole(cfg *config.Config) (*console, error) {
	if _, err := promptString(cfg.Prompt); err != nil {
		return nil, err
	}
	tty, err := serialio.OpenTTY(os.Stdin, os.Stdout, true)
	if err != nil {
		return nil, err
	}
	if cfg.Prompt.TimeoutMS > 0 {
		tty.SetTimeout(time.Duration(cfg.Prompt.TimeoutMS) * time.Millisecond)
	}
	ui.Raw = true
	ui.Debugf("console open: timeout=%dms max_length=%d history=%d",
		cfg.Prompt.TimeoutMS, cfg.Prompt.MaxLength, cfg.Prompt.HistorySize)
	return &console{tty: tty, io: serialio.New(tty), cfg: cfg}, nil
}

// Close restores the cursor shape and the terminal mode.
func (c *console) Close() error {
	if c.cfg.Prompt.CursorShape != ansi.CursorDefault {
		c.io.Write(ansi.CursorShape(ansi.CursorDefault))
	}
	ui.Raw = false
	return c.tty.Close()
}

// Prompt returns the configured, coloured prompt string.
func (c *console) Prompt() string {
	s, _ := promptString(c.cfg.Prompt)
	return s
}

// setup applies the shared editor settings to p.
func (c *console) setup(p *prompt.Prompt) {
	p.SetMaxLength(c.cfg.Prompt.MaxLength)
	p.History.SetCapacity(c.cfg.Prompt.HistorySize)
	if c.cfg.Prompt.HistorySize == 0 {
		p.EnableHistory(false)
	}
}

// Run drives step until it reports done. See runLoop.
func (c *console) Run(w interrupter, step func() bool) error {
	return runLoop(c.tty, c.io, w, step)
}

// promptString colours the prompt and appends the cursor shape sequence.
func promptString(pc config.PromptConfig) (string, error) {
	fg, err := ansi.ParseColor(pc.Color)
	if err != nil {
		return "", fmt.Errorf("prompt color: %w", err)
	}
	s := ansi.Colorize(pc.String, ansi.NoColor, fg)
	if pc.CursorShape != ansi.CursorDefault {
		s += ansi.CursorShape(pc.CursorShape)
	}
	return s, nil
}

// runLoop polls step until it returns true. Ctrl-C interrupts w; a second
// Ctrl-C within abortWindow aborts with errAborted. End of input also
// aborts.
func runLoop(t terminal, out *serialio.IO, w interrupter, step func() bool) error {
	var last time.Time
	for {
		if t.TakeInterrupt() {
			now := time.Now()
			if !last.IsZero() && now.Sub(last) < abortWindow {
				out.Write("\r\n")
				return errAborted
			}
			last = now
			w.Interrupt()
			continue
		}

		if step() {
			return nil
		}
		if err := out.Err(); err != nil {
			return fmt.Errorf("writing to terminal: %w", err)
		}
		if err := t.Err(); err != nil {
			if errors.Is(err, io.EOF) {
				return errAborted
			}
			return fmt.Errorf("reading from terminal: %w", err)
		}
		t.Wait(idleWait)
	}
}

// finish maps errAborted to a quiet exit code and passes other errors up.
func finish(err error) error {
	if errors.Is(err, errAborted) {
		ui.Warn("Aborted")
		os.Exit(130)
	}
	return err
}
