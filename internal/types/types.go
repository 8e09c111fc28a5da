/*
 * SimCpuCycle - Core word, address and instruction encoding types.
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

// Package types defines the machine's fundamental word size, address space
// and 32-bit instruction encoding shared by every other package.
package types

// Word is the machine's native cell size: every memory location and every
// instruction is exactly one Word wide.
type Word = uint32

// Address names a word cell. The machine is word-addressed: incrementing
// the program counter by one advances by one instruction, not one byte.
type Address = uint32

// Opcode identifies an instruction. Only the low 8 bits are significant.
type Opcode uint8

// Instruction set, per the bits 31..24 field of an encoded Word.
const (
	HALT  Opcode = 0x00
	LOAD  Opcode = 0x01
	STORE Opcode = 0x02
	ADD   Opcode = 0x03
	SUB   Opcode = 0x04
	AND   Opcode = 0x05
	XOR   Opcode = 0x06
	SLT   Opcode = 0x07
	JUMP  Opcode = 0x08
	JEQ   Opcode = 0x09
	PUSH  Opcode = 0x0A
	POP   Opcode = 0x0B
	CALL  Opcode = 0x0C
	RET   Opcode = 0x0D
)

// Mnemonics maps every known opcode to its assembler mnemonic, and is the
// inverse of the assembler's opcode table.
var Mnemonics = map[Opcode]string{
	HALT:  "HALT",
	LOAD:  "LOAD",
	STORE: "STORE",
	ADD:   "ADD",
	SUB:   "SUB",
	AND:   "AND",
	XOR:   "XOR",
	SLT:   "SLT",
	JUMP:  "JUMP",
	JEQ:   "JEQ",
	PUSH:  "PUSH",
	POP:   "POP",
	CALL:  "CALL",
	RET:   "RET",
}

const (
	operandMask  = 0x7FFFFF // low 23 bits
	modeBitShift = 23
	opcodeShift  = 24
)

// Encode packs an opcode, addressing mode bit and operand into one Word:
// bits 31..24 opcode, bit 23 mode, bits 22..0 operand.
func Encode(op Opcode, isAddressMode bool, operand uint32) Word {
	var mode Word
	if isAddressMode {
		mode = 1
	}
	return (Word(op) << opcodeShift) | (mode << modeBitShift) | (operand & operandMask)
}

// Decoded holds the three fields extracted from a raw instruction Word.
type Decoded struct {
	Opcode        Opcode
	IsAddressMode bool
	Operand       uint32
}

// Decode splits a raw instruction Word into opcode, addressing mode and
// operand. It performs no validation: an unrecognized opcode is returned
// as-is for the caller to handle.
func Decode(word Word) Decoded {
	return Decoded{
		Opcode:        Opcode((word >> opcodeShift) & 0xFF),
		IsAddressMode: (word>>modeBitShift)&0x1 != 0,
		Operand:       word & operandMask,
	}
}

// JumpLike reports whether an opcode's operand is always used raw (as an
// address or literal target) rather than resolved through the bus before
// execute. Resolving these early would issue a spurious bus read of
// code-as-data and pollute the cache.
func JumpLike(op Opcode) bool {
	switch op {
	case STORE, JUMP, JEQ, CALL, PUSH:
		return true
	default:
		return false
	}
}
