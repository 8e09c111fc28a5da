/*
 * SimCpuCycle - Single-vector programmable interrupt controller.
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

// Package pic implements the machine's sole interrupt latch: the only
// synchronization point between devices and the CPU.
package pic

import "github.com/HENQ42/SimCpuCycle/internal/stats"

// PIC is a two-state latch: idle or pending a single vector.
type PIC struct {
	pending      bool
	vector       uint8
	requestCycle uint64
	counters     *stats.Counters
}

// New builds a PIC sharing the machine's Counters (used to record the
// cycle an IRQ was requested).
func New(counters *stats.Counters) *PIC {
	return &PIC{counters: counters}
}

// RequestIRQ latches vector as pending. If a request is already pending,
// this silently overwrites it (devices are expected to check IsPending
// first; see the keyboard, the only device in this system that raises
// IRQs).
func (p *PIC) RequestIRQ(vector uint8, currentCycle uint64) {
	p.pending = true
	p.vector = vector
	p.requestCycle = currentCycle
	if p.counters != nil {
		p.counters.IRQRequestStamp = currentCycle
	}
}

// IsPending is side-effect-free.
func (p *PIC) IsPending() bool {
	return p.pending
}

// AckIRQ clears the pending bit and returns the latched vector.
func (p *PIC) AckIRQ() uint8 {
	p.pending = false
	return p.vector
}

// RequestCycle returns the cycle the currently pending request (if any)
// was latched at, used by the CPU to compute IRQ latency on entry.
func (p *PIC) RequestCycle() uint64 {
	return p.requestCycle
}
