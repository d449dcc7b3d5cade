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

// Package memstat reports memory usage for the menu and shell "free"
// command.
package memstat

import (
	"fmt"
	"runtime"

	"github.com/cloud-exit/promptkit/internal/serialio"
)

// Func returns allocated and free byte counts.
type Func func() (allocated, free uint64)

// Runtime reports the Go heap: bytes in live objects and bytes held by the
// heap but not in use.
func Runtime() (allocated, free uint64) {
	runtime.GC()
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.HeapAlloc, ms.HeapSys - ms.HeapInuse
}

// Write prints the two counters reported by fn.
func Write(out *serialio.IO, fn Func) {
	allocated, free := fn()
	out.WriteLine(fmt.Sprintf(" Allocated memory : %d", allocated))
	out.WriteLine(fmt.Sprintf(" Free memory      : %d", free))
}
