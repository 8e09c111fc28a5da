package machine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HENQ42/SimCpuCycle/internal/assembler"
	"github.com/HENQ42/SimCpuCycle/internal/config"
	"github.com/HENQ42/SimCpuCycle/internal/hostio"
	"github.com/HENQ42/SimCpuCycle/internal/types"
)

func newMachine(t *testing.T, out *bytes.Buffer, source *hostio.QueueSource) *Machine {
	t.Helper()
	p := config.Default()
	if source == nil {
		source = hostio.NewQueueSource()
	}
	return New(p, out, source, nil)
}

func assembleAndLoad(t *testing.T, m *Machine, lines []string) {
	t.Helper()
	words := assembler.New(nil).Assemble(lines)
	m.LoadProgram(words)
}

func TestScenarioArithmetic(t *testing.T) {
	m := newMachine(t, &bytes.Buffer{}, nil)
	assembleAndLoad(t, m, []string{
		"LOAD #5",
		"ADD #7",
		"STORE 100",
		"HALT",
	})

	m.Run(0)

	assert.Equal(t, int32(12), m.CPU.Registers().ACC)
	assert.Equal(t, types.Word(12), m.RAM.Read(100))
	assert.False(t, m.CPU.Registers().Z)
	assert.False(t, m.CPU.Registers().N)
}

func TestScenarioConditionalLoop(t *testing.T) {
	m := newMachine(t, &bytes.Buffer{}, nil)
	assembleAndLoad(t, m, []string{
		"      LOAD #3",
		"LOOP: STORE 50",
		"      SUB  #1",
		"      JEQ  END",
		"      JUMP LOOP",
		"END:  HALT",
	})

	m.Run(0)

	assert.Equal(t, types.Word(1), m.RAM.Read(50))
	assert.Equal(t, int32(0), m.CPU.Registers().ACC)
	assert.True(t, m.CPU.Registers().Z)
}

func TestScenarioStackRoundTrip(t *testing.T) {
	m := newMachine(t, &bytes.Buffer{}, nil)
	startSP := m.CPU.Registers().SP
	assembleAndLoad(t, m, []string{
		"LOAD #42",
		"PUSH",
		"LOAD #0",
		"POP",
		"HALT",
	})

	m.Run(0)

	assert.Equal(t, int32(42), m.CPU.Registers().ACC)
	assert.Equal(t, startSP, m.CPU.Registers().SP)
}

func TestScenarioCallReturn(t *testing.T) {
	m := newMachine(t, &bytes.Buffer{}, nil)
	startSP := m.CPU.Registers().SP
	assembleAndLoad(t, m, []string{
		"      LOAD #10",
		"      CALL SUB",
		"      STORE 200",
		"      HALT",
		"SUB:  ADD  #5",
		"      RET",
	})

	m.Run(0)

	assert.Equal(t, types.Word(15), m.RAM.Read(200))
	assert.Equal(t, startSP, m.CPU.Registers().SP)
}

func TestScenarioKeyboardInterrupt(t *testing.T) {
	source := hostio.NewQueueSource('A')
	m := newMachine(t, &bytes.Buffer{}, source)

	words := assembler.New(nil).Assemble([]string{
		"LOOP: JUMP LOOP",
	})
	m.RAM.LoadProgram(words)
	m.RAM.Write(500, types.Encode(types.LOAD, true, 0xF000))
	m.RAM.Write(501, types.Encode(types.STORE, true, 100))
	m.RAM.Write(502, types.Encode(types.RET, false, 0))
	m.CPU.Registers().Reset()

	for i := 0; i < 5 && m.RAM.Read(100) == 0; i++ {
		m.Step()
	}

	assert.Equal(t, types.Word(65), m.RAM.Read(100))
	assert.Equal(t, uint64(1), m.Counters.IRQCount)
}

func TestCacheAccountingScenario(t *testing.T) {
	p := config.Params{RAMWords: 64, CacheLines: 2, CacheBlockWords: 4, KeyboardVector: 1, ISRAddress: 500}
	m := New(p, &bytes.Buffer{}, nil, nil)

	for _, a := range []types.Address{0, 1, 2, 3, 0, 4, 8} {
		m.Bus.Read(a)
	}

	assert.Equal(t, uint64(3), m.Counters.CacheMisses)
	assert.Equal(t, uint64(4), m.Counters.CacheHits)
	assert.Equal(t, uint64(30), m.Counters.BusWaitCycles)
}
