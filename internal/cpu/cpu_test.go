package cpu

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HENQ42/SimCpuCycle/internal/bus"
	"github.com/HENQ42/SimCpuCycle/internal/display"
	"github.com/HENQ42/SimCpuCycle/internal/keyboard"
	"github.com/HENQ42/SimCpuCycle/internal/pic"
	"github.com/HENQ42/SimCpuCycle/internal/ram"
	"github.com/HENQ42/SimCpuCycle/internal/registers"
	"github.com/HENQ42/SimCpuCycle/internal/stats"
	"github.com/HENQ42/SimCpuCycle/internal/types"
)

type idleSource struct{}

func (idleSource) TryReadByte() (byte, bool) { return 0, false }

func newTestCPU(program []types.Word) (*CPU, *ram.RAM, *pic.PIC) {
	mem := ram.New(600, nil)
	mem.LoadProgram(program)
	counters := &stats.Counters{}
	p := pic.New(counters)
	kbd := keyboard.New(idleSource{}, p)
	disp := display.New(&bytes.Buffer{})
	b := bus.New(mem, disp, kbd)
	regs := registers.New(599)
	c := New(b, p, regs, counters, DefaultVectorTable(), nil)
	return c, mem, p
}

func TestArithmeticAndStore(t *testing.T) {
	program := []types.Word{
		types.Encode(types.LOAD, false, 5),
		types.Encode(types.ADD, false, 7),
		types.Encode(types.STORE, true, 50),
		types.Encode(types.HALT, false, 0),
	}
	c, mem, _ := newTestCPU(program)

	for !c.IsHalted() {
		c.Step(0)
	}

	assert.Equal(t, int32(12), c.Registers().ACC)
	assert.Equal(t, types.Word(12), mem.Read(50))
	assert.False(t, c.Registers().Z)
	assert.False(t, c.Registers().N)
}

func TestConditionalLoop(t *testing.T) {
	program := []types.Word{
		types.Encode(types.LOAD, false, 3),     // 0
		types.Encode(types.STORE, true, 50),    // 1 LOOP
		types.Encode(types.SUB, false, 1),      // 2
		types.Encode(types.JEQ, true, 5),       // 3
		types.Encode(types.JUMP, true, 1),      // 4
		types.Encode(types.HALT, false, 0),     // 5 END
	}
	c, mem, _ := newTestCPU(program)

	for !c.IsHalted() {
		c.Step(0)
	}

	assert.Equal(t, types.Word(1), mem.Read(50))
	assert.Equal(t, int32(0), c.Registers().ACC)
	assert.True(t, c.Registers().Z)
}

func TestStackRoundTrip(t *testing.T) {
	program := []types.Word{
		types.Encode(types.LOAD, false, 42),
		types.Encode(types.PUSH, true, 0),
		types.Encode(types.LOAD, false, 0),
		types.Encode(types.POP, true, 0),
		types.Encode(types.HALT, false, 0),
	}
	c, _, _ := newTestCPU(program)
	startSP := c.Registers().SP

	for !c.IsHalted() {
		c.Step(0)
	}

	assert.Equal(t, int32(42), c.Registers().ACC)
	assert.Equal(t, startSP, c.Registers().SP)
}

func TestCallAndReturn(t *testing.T) {
	program := []types.Word{
		types.Encode(types.LOAD, false, 10), // 0
		types.Encode(types.CALL, true, 4),   // 1
		types.Encode(types.STORE, true, 200), // 2
		types.Encode(types.HALT, false, 0),  // 3
		types.Encode(types.ADD, false, 5),   // 4 SUB
		types.Encode(types.RET, false, 0),   // 5
	}
	c, mem, _ := newTestCPU(program)
	startSP := c.Registers().SP

	for !c.IsHalted() {
		c.Step(0)
	}

	assert.Equal(t, types.Word(15), mem.Read(200))
	assert.Equal(t, startSP, c.Registers().SP)
	assert.Equal(t, Enabled, c.State())
}

func TestInterruptEntryRunsISRAndRecordsLatency(t *testing.T) {
	program := []types.Word{
		types.Encode(types.JUMP, true, 0), // 0: spin forever until interrupted
	}
	c, mem, p := newTestCPU(program)
	mem.Write(500, types.Encode(types.HALT, false, 0)) // minimal ISR body for this test

	p.RequestIRQ(1, 3)
	c.Step(5)

	assert.Equal(t, Halted, c.State())
	assert.Equal(t, uint64(1), c.counters.IRQCount)
	assert.Equal(t, uint64(2), c.counters.TotalIRQLatency)
}

func TestUnmappedVectorLogsAndContinues(t *testing.T) {
	program := []types.Word{types.Encode(types.HALT, false, 0)}
	c, _, p := newTestCPU(program)
	c.vectors = VectorTable{}

	p.RequestIRQ(9, 0)
	assert.NotPanics(t, func() { c.Step(0) })
}
