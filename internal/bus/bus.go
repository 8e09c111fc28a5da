/*
 * SimCpuCycle - Address-decoding system bus.
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

// Package bus implements the address decoder that routes every access to
// exactly one device: the keyboard, the display, or main memory (which
// may itself be a Cache wrapping RAM). The bus adds no latency,
// reordering or error semantics of its own.
package bus

import (
	"github.com/HENQ42/SimCpuCycle/internal/display"
	"github.com/HENQ42/SimCpuCycle/internal/keyboard"
	"github.com/HENQ42/SimCpuCycle/internal/memdev"
	"github.com/HENQ42/SimCpuCycle/internal/types"
)

// Memory map boundaries, per the system's memory map.
const (
	DisplayBase  = 0xE000
	KeyboardBase = 0xF000
)

// Bus holds borrowed references to its devices; none outlives it, and it
// outlives none of them.
type Bus struct {
	mainMemory memdev.Device
	display    *display.Display
	keyboard   *keyboard.Keyboard
}

// New builds a Bus routing non-MMIO addresses to mainMemory (RAM or a
// Cache fronting it).
func New(mainMemory memdev.Device, disp *display.Display, kbd *keyboard.Keyboard) *Bus {
	return &Bus{mainMemory: mainMemory, display: disp, keyboard: kbd}
}

// Read routes by the decision ladder: keyboard, then display, then main
// memory.
func (b *Bus) Read(addr types.Address) types.Word {
	switch {
	case addr >= KeyboardBase:
		return b.keyboard.Read(addr)
	case addr >= DisplayBase:
		return b.display.Read(addr)
	default:
		return b.mainMemory.Read(addr)
	}
}

// Write routes by the same decision ladder as Read.
func (b *Bus) Write(addr types.Address, value types.Word) {
	switch {
	case addr >= KeyboardBase:
		b.keyboard.Write(addr, value)
	case addr >= DisplayBase:
		b.display.Write(addr, value)
	default:
		b.mainMemory.Write(addr, value)
	}
}
