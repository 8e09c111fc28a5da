/*
 * SimCpuCycle - Memory-mapped keyboard device.
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

// Package keyboard implements the memory-mapped character source. It is
// driven by an external tick() once per simulated cycle and raises an
// IRQ through the PIC when input is available.
package keyboard

import "github.com/HENQ42/SimCpuCycle/internal/pic"

// Memory-mapped register addresses, per the system memory map.
const (
	DataAddr   = 0xF000
	StatusAddr = 0xF001
)

// IRQVector is the vector the keyboard raises on the PIC.
const IRQVector = 1

// ByteSource is polled non-blockingly once per tick.
type ByteSource interface {
	TryReadByte() (b byte, ok bool)
}

// Keyboard enqueues bytes drawn from a ByteSource and signals the PIC
// when the queue has data and no IRQ is already pending.
type Keyboard struct {
	source ByteSource
	pic    *pic.PIC
	queue  []byte
}

// New builds a Keyboard polling source and raising IRQs on p.
func New(source ByteSource, p *pic.PIC) *Keyboard {
	return &Keyboard{source: source, pic: p}
}

// Tick polls the host source for at most one byte and, if the queue is
// non-empty and the PIC is not already pending, requests an IRQ. It must
// be called before cpu.Step in the same cycle (see the main loop's
// ordering guarantee).
func (k *Keyboard) Tick(currentCycle uint64) {
	if b, ok := k.source.TryReadByte(); ok {
		k.queue = append(k.queue, b)
	}
	if len(k.queue) > 0 && !k.pic.IsPending() {
		k.pic.RequestIRQ(IRQVector, currentCycle)
	}
}

// Read dequeues and returns the next byte at DataAddr (0 if empty), or
// reports queue non-emptiness at StatusAddr.
func (k *Keyboard) Read(addr uint32) uint32 {
	switch addr {
	case DataAddr:
		if len(k.queue) == 0 {
			return 0
		}
		b := k.queue[0]
		k.queue = k.queue[1:]
		return uint32(b)
	case StatusAddr:
		if len(k.queue) > 0 {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// Write is a no-op: the keyboard has no writable register.
func (k *Keyboard) Write(addr uint32, value uint32) {}
