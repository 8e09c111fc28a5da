package alu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HENQ42/SimCpuCycle/internal/types"
)

func TestArithmetic(t *testing.T) {
	assert.Equal(t, int32(7), Execute(types.ADD, 3, 4))
	assert.Equal(t, int32(-1), Execute(types.SUB, 3, 4))
	assert.Equal(t, int32(0b1000), Execute(types.AND, 0b1100, 0b1010))
	assert.Equal(t, int32(0b0110), Execute(types.XOR, 0b1100, 0b1010))
}

func TestSLT(t *testing.T) {
	assert.Equal(t, int32(1), Execute(types.SLT, 1, 5))
	assert.Equal(t, int32(0), Execute(types.SLT, 5, 1))
	assert.Equal(t, int32(0), Execute(types.SLT, 5, 5))
}

func TestLoadReplacesACC(t *testing.T) {
	assert.Equal(t, int32(99), Execute(types.LOAD, 1, 99))
}

func TestPassThroughOpcodesLeaveACCUnchanged(t *testing.T) {
	for _, op := range []types.Opcode{types.HALT, types.STORE, types.JUMP, types.JEQ, types.PUSH, types.POP, types.CALL, types.RET} {
		assert.Equal(t, int32(42), Execute(op, 42, 999), op)
	}
}
