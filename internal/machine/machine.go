/*
 * SimCpuCycle - Machine composition and main run loop.
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

// Package machine wires RAM, the cache, the display, the keyboard, the PIC,
// the bus and the CPU into a single runnable unit, and drives the main
// cycle loop. It is the one place that knows about every other package;
// nothing downstream of it (the CLI, the monitor) reaches into the
// individual components directly except through the accessors here.
package machine

import (
	"io"
	"log/slog"

	"github.com/HENQ42/SimCpuCycle/internal/bus"
	"github.com/HENQ42/SimCpuCycle/internal/cache"
	"github.com/HENQ42/SimCpuCycle/internal/config"
	"github.com/HENQ42/SimCpuCycle/internal/cpu"
	"github.com/HENQ42/SimCpuCycle/internal/display"
	"github.com/HENQ42/SimCpuCycle/internal/hostio"
	"github.com/HENQ42/SimCpuCycle/internal/keyboard"
	"github.com/HENQ42/SimCpuCycle/internal/logging"
	"github.com/HENQ42/SimCpuCycle/internal/pic"
	"github.com/HENQ42/SimCpuCycle/internal/ram"
	"github.com/HENQ42/SimCpuCycle/internal/registers"
	"github.com/HENQ42/SimCpuCycle/internal/stats"
	"github.com/HENQ42/SimCpuCycle/internal/types"
)

// Machine owns every component of a single simulator instance.
type Machine struct {
	RAM      *ram.RAM
	Cache    *cache.Cache
	Display  *display.Display
	Keyboard *keyboard.Keyboard
	PIC      *pic.PIC
	Bus      *bus.Bus
	CPU      *cpu.CPU
	Counters *stats.Counters

	log *slog.Logger
}

// New builds a Machine from p, writing display output to out and polling
// source for keyboard input. A nil source leaves the keyboard permanently
// idle (useful for headless batch runs with no interactive input).
func New(p config.Params, out io.Writer, source keyboard.ByteSource, log *slog.Logger) *Machine {
	if log == nil {
		log = logging.Default()
	}
	if source == nil {
		source = hostio.NewQueueSource()
	}

	counters := &stats.Counters{}

	mem := ram.New(p.RAMWords, log)
	c := cache.New(mem, p.CacheLines, p.CacheBlockWords, counters)
	disp := display.New(out)
	ctrl := pic.New(counters)
	kbd := keyboard.New(source, ctrl)
	b := bus.New(c, disp, kbd)

	stackTop := types.Address(p.RAMWords - 1)
	regs := registers.New(stackTop)

	cp := cpu.New(b, ctrl, regs, counters, p.VectorTable(), log)

	return &Machine{
		RAM:      mem,
		Cache:    c,
		Display:  disp,
		Keyboard: kbd,
		PIC:      ctrl,
		Bus:      b,
		CPU:      cp,
		Counters: counters,
		log:      log,
	}
}

// LoadProgram installs program at RAM address 0 and resets the register
// file, ready for a fresh Run.
func (m *Machine) LoadProgram(program []types.Word) {
	m.RAM.LoadProgram(program)
	m.CPU.Registers().Reset()
}

// Step advances the machine by exactly one cycle: the keyboard is ticked
// first so a byte arriving this cycle can raise its IRQ before the CPU
// checks for one, then the CPU executes one instruction. TotalCycles is
// incremented unconditionally, even once halted, since cycles keep
// elapsing in real hardware whether or not the CPU is doing anything.
func (m *Machine) Step() {
	m.Counters.TotalCycles++
	m.Keyboard.Tick(m.Counters.TotalCycles)
	m.CPU.Step(m.Counters.TotalCycles)
}

// Run steps the machine until HALT, or until maxCycles is reached (0 means
// unbounded). It returns the number of cycles actually executed.
func (m *Machine) Run(maxCycles uint64) uint64 {
	var executed uint64
	for !m.CPU.IsHalted() {
		if maxCycles != 0 && executed >= maxCycles {
			m.log.Warn("run: cycle budget exhausted before HALT", "maxCycles", maxCycles)
			break
		}
		m.Step()
		executed++
	}
	return executed
}
