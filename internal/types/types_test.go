package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	w := Encode(ADD, true, 0x1234)
	d := Decode(w)
	assert.Equal(t, ADD, d.Opcode)
	assert.True(t, d.IsAddressMode)
	assert.Equal(t, uint32(0x1234), d.Operand)
}

func TestEncodeImmediateModeBitClear(t *testing.T) {
	w := Encode(LOAD, false, 42)
	d := Decode(w)
	assert.False(t, d.IsAddressMode)
	assert.Equal(t, uint32(42), d.Operand)
}

func TestEncodeOperandMasksToLow23Bits(t *testing.T) {
	w := Encode(LOAD, false, 0xFFFFFFFF)
	d := Decode(w)
	assert.Equal(t, uint32(0x7FFFFF), d.Operand)
}

func TestJumpLike(t *testing.T) {
	for _, op := range []Opcode{STORE, JUMP, JEQ, CALL, PUSH} {
		assert.True(t, JumpLike(op), op)
	}
	for _, op := range []Opcode{HALT, LOAD, ADD, SUB, AND, XOR, SLT, POP, RET} {
		assert.False(t, JumpLike(op), op)
	}
}

func TestMnemonicsCoversEveryOpcode(t *testing.T) {
	for op, name := range Mnemonics {
		assert.NotEmpty(t, name, "opcode %v", op)
	}
	assert.Equal(t, 14, len(Mnemonics))
}
