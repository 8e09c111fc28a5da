package registers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HENQ42/SimCpuCycle/internal/ram"
	"github.com/HENQ42/SimCpuCycle/internal/types"
)

func TestNewStartsAtStackTop(t *testing.T) {
	r := New(100)
	assert.Equal(t, types.Address(100), r.SP)
	assert.Equal(t, types.Address(0), r.PC)
}

func TestSetACCUpdatesFlags(t *testing.T) {
	r := New(10)

	r.SetACC(0)
	assert.True(t, r.Z)
	assert.False(t, r.N)

	r.SetACC(-5)
	assert.False(t, r.Z)
	assert.True(t, r.N)

	r.SetACC(5)
	assert.False(t, r.Z)
	assert.False(t, r.N)
}

func TestPushThenPopRoundTrips(t *testing.T) {
	mem := ram.New(16, nil)
	r := New(15)

	r.Push(mem, 0xABCD)
	assert.Equal(t, types.Address(14), r.SP)

	v := r.Pop(mem)
	assert.Equal(t, types.Word(0xABCD), v)
	assert.Equal(t, types.Address(15), r.SP)
}

func TestResetRestoresPowerOnState(t *testing.T) {
	r := New(100)
	r.PC = 5
	r.SetACC(-1)
	r.SP = 0

	r.Reset()
	assert.Equal(t, types.Address(0), r.PC)
	assert.Equal(t, int32(0), r.ACC)
	assert.False(t, r.N)
	assert.False(t, r.Z)
	assert.Equal(t, types.Address(100), r.SP)
}
