/*
 * SimCpuCycle - Fetch/decode/execute engine with interrupts.
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

// Package cpu implements the fetch/decode/execute loop, the stack-based
// call/return and interrupt-entry handshake, and the HALT state. A Step
// is the machine's single unit of forward progress; the caller (the
// machine driver, or a test) decides how many cycles to run and when to
// tick external devices between steps.
package cpu

import (
	"log/slog"

	"github.com/HENQ42/SimCpuCycle/internal/alu"
	"github.com/HENQ42/SimCpuCycle/internal/bus"
	"github.com/HENQ42/SimCpuCycle/internal/logging"
	"github.com/HENQ42/SimCpuCycle/internal/pic"
	"github.com/HENQ42/SimCpuCycle/internal/registers"
	"github.com/HENQ42/SimCpuCycle/internal/stats"
	"github.com/HENQ42/SimCpuCycle/internal/types"
)

// InterruptState names the three states the CPU's interrupt/halt
// machinery can be in: enabled, disabled (between ack and RET), or
// halted (terminal).
type InterruptState int

const (
	Enabled InterruptState = iota
	Disabled
	Halted
)

// VectorTable maps an IRQ vector to its ISR entry address. Only vector 1
// (the keyboard) is defined by the reference memory map; others are
// implementation-defined.
type VectorTable map[uint8]types.Address

// DefaultVectorTable matches the reference: vector 1 -> address 500.
func DefaultVectorTable() VectorTable {
	return VectorTable{1: 500}
}

// CPU is the fetch/decode/execute engine. It borrows its bus, PIC,
// registers and counters; it owns none of them.
type CPU struct {
	bus      *bus.Bus
	pic      *pic.PIC
	regs     *registers.Registers
	counters *stats.Counters
	vectors  VectorTable
	log      *slog.Logger

	state InterruptState
}

// New builds a CPU. regs should already be reset (see registers.New).
func New(b *bus.Bus, p *pic.PIC, regs *registers.Registers, counters *stats.Counters, vectors VectorTable, log *slog.Logger) *CPU {
	if log == nil {
		log = logging.Default()
	}
	if vectors == nil {
		vectors = DefaultVectorTable()
	}
	return &CPU{bus: b, pic: p, regs: regs, counters: counters, vectors: vectors, log: log}
}

// Registers exposes the CPU's register file for inspection (by the
// monitor, by tests, by Stats reporting).
func (c *CPU) Registers() *registers.Registers {
	return c.regs
}

// State reports the interrupt/halt state machine's current state.
func (c *CPU) State() InterruptState {
	return c.state
}

// IsHalted reports whether HALT has been executed.
func (c *CPU) IsHalted() bool {
	return c.state == Halted
}

// Step advances the machine by exactly one instruction, first checking
// for a pending interrupt. currentCycle is used only to compute IRQ
// latency; it should be the same counter the driver's main loop
// increments before calling Step.
func (c *CPU) Step(currentCycle uint64) {
	if c.IsHalted() {
		return
	}

	if c.state == Enabled && c.pic.IsPending() {
		c.enterInterrupt(currentCycle)
	}

	c.regs.IR = c.bus.Read(c.regs.PC)
	c.regs.PC++
	c.counters.TotalInstructions++

	decoded := types.Decode(c.regs.IR)
	c.execute(decoded)
}

// enterInterrupt performs the context switch: acknowledge the PIC,
// record latency, disable interrupts, push PC, and jump to the ISR. The
// fetch that follows in the same Step call executes the ISR's first
// instruction.
func (c *CPU) enterInterrupt(currentCycle uint64) {
	vector := c.pic.AckIRQ()
	latency := currentCycle - c.pic.RequestCycle()
	c.counters.TotalIRQLatency += latency
	c.counters.IRQCount++

	c.state = Disabled
	c.regs.Push(c.bus, c.regs.PC)

	isr, ok := c.vectors[vector]
	if !ok {
		c.log.Warn("opcode-unknown: no ISR for IRQ vector", "vector", vector)
		return
	}
	c.regs.PC = isr
}

// execute dispatches a decoded instruction. Operand resolution happens
// here, ahead of the switch, for every opcode except the jump-like set
// (STORE, JUMP, JEQ, CALL, PUSH), which keep the raw operand to avoid a
// spurious, cache-polluting bus read of code-as-data.
func (c *CPU) execute(d types.Decoded) {
	operand := int32(d.Operand)
	if !types.JumpLike(d.Opcode) && d.IsAddressMode {
		operand = int32(c.bus.Read(d.Operand))
	}

	switch d.Opcode {
	case types.HALT:
		c.state = Halted

	case types.ADD, types.SUB, types.AND, types.XOR, types.SLT, types.LOAD:
		c.regs.SetACC(alu.Execute(d.Opcode, c.regs.ACC, operand))

	case types.STORE:
		c.bus.Write(d.Operand, types.Word(c.regs.ACC))

	case types.JUMP:
		c.regs.PC = d.Operand

	case types.JEQ:
		if c.regs.Z {
			c.regs.PC = d.Operand
		}

	case types.PUSH:
		c.regs.Push(c.bus, types.Word(c.regs.ACC))

	case types.POP:
		c.regs.SetACC(int32(c.regs.Pop(c.bus)))

	case types.CALL:
		c.regs.Push(c.bus, c.regs.PC)
		c.regs.PC = d.Operand

	case types.RET:
		c.regs.PC = c.regs.Pop(c.bus)
		c.state = Enabled

	default:
		c.log.Warn("opcode-unknown: skipped", "opcode", d.Opcode)
	}
}
