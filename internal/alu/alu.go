/*
 * SimCpuCycle - Arithmetic/logic unit.
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

// Package alu is a pure function over opcode, accumulator and operand.
// It holds no state and has no side effects; the caller is responsible
// for committing its result to ACC (and thereby updating flags).
package alu

import "github.com/HENQ42/SimCpuCycle/internal/types"

// Execute computes the new ACC value for op given the current acc and a
// resolved operand. Wraparound on ADD/SUB is the normal two's-complement
// behavior of Go's int32 arithmetic.
func Execute(op types.Opcode, acc int32, operand int32) int32 {
	switch op {
	case types.ADD:
		return acc + operand
	case types.SUB:
		return acc - operand
	case types.AND:
		return acc & operand
	case types.XOR:
		return acc ^ operand
	case types.SLT:
		if acc < operand {
			return 1
		}
		return 0
	case types.LOAD:
		return operand
	case types.HALT, types.STORE, types.JUMP, types.JEQ,
		types.PUSH, types.POP, types.CALL, types.RET:
		return acc
	default:
		return acc
	}
}
