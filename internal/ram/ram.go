/*
 * SimCpuCycle - Flat word-addressed RAM.
 *
 * Copyright 2026, SimCpuCycle Contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package ram implements the machine's main memory: a fixed-capacity,
// zero-initialized, word-addressed store. There is no trap mechanism in
// this ISA, so out-of-range accesses degrade gracefully rather than
// aborting the simulation.
package ram

import (
	"log/slog"

	"github.com/HENQ42/SimCpuCycle/internal/logging"
	"github.com/HENQ42/SimCpuCycle/internal/types"
)

// DefaultSize is the reference capacity used when none is given.
const DefaultSize = 1024

// RAM is a flat array of Words, fixed at construction.
type RAM struct {
	cells []types.Word
	log   *slog.Logger
}

// New returns RAM with capacity size words, all zero.
func New(size int, log *slog.Logger) *RAM {
	if log == nil {
		log = logging.Default()
	}
	if size <= 0 {
		size = DefaultSize
	}
	return &RAM{cells: make([]types.Word, size), log: log}
}

// Size reports the capacity in words.
func (r *RAM) Size() int {
	return len(r.cells)
}

// Read returns the word at addr, or 0 and a logged warning if addr is
// out of range.
func (r *RAM) Read(addr types.Address) types.Word {
	if int(addr) >= len(r.cells) {
		r.log.Warn("bus-range: read out of bounds", "addr", addr, "size", len(r.cells))
		return 0
	}
	return r.cells[addr]
}

// Write stores value at addr. Out-of-range writes are dropped (with a
// logged warning) rather than aborting the simulation.
func (r *RAM) Write(addr types.Address, value types.Word) {
	if int(addr) >= len(r.cells) {
		r.log.Warn("bus-range: write out of bounds", "addr", addr, "size", len(r.cells))
		return
	}
	r.cells[addr] = value
}

// LoadProgram copies up to Size() words from program into RAM starting at
// address 0, the boot-time firmware load.
func (r *RAM) LoadProgram(program []types.Word) {
	n := copy(r.cells, program)
	if n < len(program) {
		r.log.Warn("firmware truncated to RAM capacity", "words", len(program), "loaded", n)
	}
}
