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

// Package history keeps a bounded log of submitted lines with cursor
// navigation and bang-style recall.
package history

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultCapacity is the capacity of a new Log.
const DefaultCapacity = 30

// Direction selects the way Navigate moves.
type Direction int

const (
	Prev Direction = iota + 1
	Next
)

// Log is a bounded history. Consecutive duplicates are collapsed and the
// oldest entry is evicted once capacity is reached.
type Log struct {
	entries  []string
	capacity int
	enabled  bool

	// cursor ranges over [0, len(entries)]; len(entries) is the fresh-edit
	// position, i.e. not browsing.
	cursor int
	// stash holds the line being edited when browsing started.
	stash string
}

// New returns an enabled, empty log with DefaultCapacity.
func New() *Log {
	return &Log{capacity: DefaultCapacity, enabled: true}
}

// SetEnabled turns recording and navigation on or off.
func (l *Log) SetEnabled(v bool) {
	l.enabled = v
}

// Enabled reports whether the log records entries.
func (l *Log) Enabled() bool {
	return l.enabled
}

// Capacity returns the maximum number of entries.
func (l *Log) Capacity() int {
	return l.capacity
}

// SetCapacity changes the capacity, keeping the newest entries. Negative
// capacities panic.
func (l *Log) SetCapacity(n int) {
	if n < 0 {
		panic(fmt.Sprintf("history: capacity %d must not be negative", n))
	}
	if len(l.entries) > n {
		l.entries = append([]string(nil), l.entries[len(l.entries)-n:]...)
	}
	l.capacity = n
	l.cursor = len(l.entries)
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries, oldest first.
func (l *Log) Entries() []string {
	return append([]string(nil), l.entries...)
}

// SetEntries replaces the log contents. Ignored when capacity is zero.
func (l *Log) SetEntries(entries []string) {
	if l.capacity == 0 {
		return
	}
	if len(entries) > l.capacity {
		entries = entries[len(entries)-l.capacity:]
	}
	l.entries = append([]string(nil), entries...)
	l.cursor = len(l.entries)
}

// Clear removes every entry.
func (l *Log) Clear() {
	l.entries = nil
	l.cursor = 0
	l.stash = ""
}

// ResetCursor returns to the fresh-edit position.
func (l *Log) ResetCursor() {
	l.cursor = len(l.entries)
}

// Append records entry.
func (l *Log) Append(entry string) {
	if strings.TrimSpace(entry) == "" {
		return
	}
	if !l.enabled || l.capacity == 0 {
		return
	}
	if n := len(l.entries); n == 0 || l.entries[n-1] != entry {
		l.entries = append(l.entries, entry)
		if len(l.entries) > l.capacity {
			l.entries = l.entries[1:]
		}
	}
	l.cursor = len(l.entries)
}

// Navigate moves the browse cursor and returns the line to show. current
// is the line being edited; it is restored when navigating back past the
// newest entry.
func (l *Log) Navigate(dir Direction, current string) string {
	size := len(l.entries)
	if !l.enabled || size == 0 {
		return current
	}
	if l.cursor == size {
		l.stash = current
	}

	switch dir {
	case Prev:
		if l.cursor > 0 {
			l.cursor--
			return l.entries[l.cursor]
		}
	case Next:
		if l.cursor < size-1 {
			l.cursor++
			return l.entries[l.cursor]
		}
		if l.cursor == size-1 {
			l.cursor++
			return l.stash
		}
	}
	return current
}

// Recall resolves a bang token: "!!" is the newest entry, "!N" the entry
// numbered N in the history listing, "!-N" the Nth newest, and "!prefix"
// the newest entry starting with prefix.
func (l *Log) Recall(token string) (string, bool) {
	if len(token) < 2 || token[0] != '!' || len(l.entries) == 0 {
		return "", false
	}
	if token == "!!" {
		token = "!-1"
	}

	rest := token[1:]
	if rest[0] == '-' || (rest[0] >= '0' && rest[0] <= '9') {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return "", false
		}
		if n < 0 {
			n += len(l.entries)
		}
		if n < 0 || n >= len(l.entries) {
			return "", false
		}
		return l.entries[n], true
	}

	for i := len(l.entries) - 1; i >= 0; i-- {
		if strings.HasPrefix(l.entries[i], rest) {
			return l.entries[i], true
		}
	}
	return "", false
}
