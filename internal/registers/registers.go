/*
 * SimCpuCycle - CPU register file and stack discipline.
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

// Package registers holds the CPU's PC, IR, ACC, SP and status flags.
// Setting ACC is the only operation that touches the flags: reads never
// do, and PC/SP writes never do either.
package registers

import (
	"github.com/HENQ42/SimCpuCycle/internal/memdev"
	"github.com/HENQ42/SimCpuCycle/internal/types"
)

// Registers is the machine's full visible register state.
type Registers struct {
	PC types.Address
	IR types.Word
	ACC int32
	SP types.Address
	Z  bool
	N  bool

	stackTop types.Address
}

// New builds Registers reset to their power-on state, with SP starting
// at stackTop (the reference value is RAM size - 1).
func New(stackTop types.Address) *Registers {
	r := &Registers{stackTop: stackTop}
	r.Reset()
	return r
}

// Reset restores power-on state: PC=0, IR=0, ACC=0, flags clear, SP at
// the top of usable RAM.
func (r *Registers) Reset() {
	r.PC = 0
	r.IR = 0
	r.ACC = 0
	r.Z = false
	r.N = false
	r.SP = r.stackTop
}

// SetACC assigns ACC and recomputes Z/N from the new value, the
// invariant this type exists to enforce.
func (r *Registers) SetACC(value int32) {
	r.ACC = value
	r.Z = value == 0
	r.N = value < 0
}

// Push stores value at the current SP, then decrements SP (stack grows
// downward).
func (r *Registers) Push(mem memdev.Device, value types.Word) {
	mem.Write(r.SP, value)
	r.SP--
}

// Pop increments SP first, then loads from the new SP.
func (r *Registers) Pop(mem memdev.Device) types.Word {
	r.SP++
	return mem.Read(r.SP)
}
