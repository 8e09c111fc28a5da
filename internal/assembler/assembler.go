/*
 * SimCpuCycle - Two-pass symbolic assembler.
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

// Package assembler turns the mnemonic source language into a flat
// firmware image: a two-pass lexer/encoder with a symbol table and an
// ORG directive, using a char-scanning cursor (skipSpace/getName over
// a raw string) rather than a regexp or text/scanner based lexer.
package assembler

import (
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/HENQ42/SimCpuCycle/internal/logging"
	"github.com/HENQ42/SimCpuCycle/internal/types"
)

// opcodeTable maps mnemonics (always compared upper-cased) to opcodes.
var opcodeTable = map[string]types.Opcode{
	"HALT":  types.HALT,
	"LOAD":  types.LOAD,
	"STORE": types.STORE,
	"ADD":   types.ADD,
	"SUB":   types.SUB,
	"AND":   types.AND,
	"XOR":   types.XOR,
	"SLT":   types.SLT,
	"JUMP":  types.JUMP,
	"JEQ":   types.JEQ,
	"PUSH":  types.PUSH,
	"POP":   types.POP,
	"CALL":  types.CALL,
	"RET":   types.RET,
}

// Assembler holds the symbol table built up across the two passes of a
// single Assemble call. It is not safe to reuse concurrently for
// different programs.
type Assembler struct {
	log     *slog.Logger
	symbols map[string]types.Address
}

// New builds an Assembler. A nil logger falls back to logging.Default.
func New(log *slog.Logger) *Assembler {
	if log == nil {
		log = logging.Default()
	}
	return &Assembler{log: log, symbols: map[string]types.Address{}}
}

// Symbols returns the symbol table built by the most recent Assemble
// call (label name -> address).
func (a *Assembler) Symbols() map[string]types.Address {
	return a.symbols
}

// cleanLine strips a ';' comment and surrounding whitespace. An empty
// result means the line should be dropped entirely.
func cleanLine(raw string) string {
	if i := strings.IndexByte(raw, ';'); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSpace(raw)
}

const orgPrefix = "ORG "

// Assemble runs both passes over source and returns the flat Word
// vector ready to be loaded at RAM address 0. Errors are never returned
// for malformed source lines: per the error-handling design, a bad
// mnemonic, unresolved label or malformed integer is logged and the
// offending word is emitted as 0.
func (a *Assembler) Assemble(source []string) []types.Word {
	lines := make([]string, 0, len(source))
	for _, raw := range source {
		if line := cleanLine(raw); line != "" {
			lines = append(lines, line)
		}
	}

	a.symbols = map[string]types.Address{}
	a.firstPass(lines)
	return a.secondPass(lines)
}

// splitLabel recognizes a leading "NAME:" token, as produced by a label
// definition that shares its line with an instruction (e.g. "LOOP: STORE
// 50"). It returns the label (without the colon), whether one was found,
// and whatever remains of the line (possibly empty, for a label with no
// instruction on the same line).
func splitLabel(line string) (label string, hasLabel bool, rest string) {
	first, tail := getName(line)
	if strings.HasSuffix(first, ":") {
		return strings.TrimSuffix(first, ":"), true, strings.TrimSpace(tail)
	}
	return "", false, line
}

// firstPass assigns every label an address and tracks ORG repositioning.
// A label occupies zero words; an instruction (whether alone on its line
// or following a label on the same line) advances the cursor by exactly
// one word.
func (a *Assembler) firstPass(lines []string) {
	var cur types.Address
	for _, line := range lines {
		if strings.HasPrefix(line, orgPrefix) {
			if k, ok := parseOrgTarget(line); ok {
				cur = k
			} else {
				a.log.Warn("source-syntax: malformed ORG", "line", line)
			}
			continue
		}

		label, hasLabel, rest := splitLabel(line)
		if hasLabel {
			a.symbols[label] = cur
			if rest == "" {
				continue
			}
		}
		cur++
	}
}

// secondPass emits the output word vector, zero-padding on ORG and
// encoding each instruction line.
func (a *Assembler) secondPass(lines []string) []types.Word {
	var out []types.Word
	for _, line := range lines {
		if strings.HasPrefix(line, orgPrefix) {
			if k, ok := parseOrgTarget(line); ok {
				for types.Address(len(out)) < k {
					out = append(out, 0)
				}
			}
			continue
		}

		_, hasLabel, rest := splitLabel(line)
		if hasLabel {
			if rest == "" {
				continue
			}
			out = append(out, a.assembleLine(rest))
			continue
		}
		out = append(out, a.assembleLine(line))
	}
	return out
}

func parseOrgTarget(line string) (types.Address, bool) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, orgPrefix))
	n, err := strconv.ParseUint(rest, 10, 32)
	if err != nil {
		return 0, false
	}
	return types.Address(n), true
}

// assembleLine encodes a single instruction line. Unknown mnemonics are
// logged and emitted as 0.
func (a *Assembler) assembleLine(line string) types.Word {
	mnemonic, rest := getName(line)
	mnemonic = strings.ToUpper(mnemonic)

	op, ok := opcodeTable[mnemonic]
	if !ok {
		a.log.Warn("source-syntax: unknown mnemonic", "mnemonic", mnemonic)
		return 0
	}

	if op == types.HALT {
		return types.Encode(op, false, 0)
	}

	operandTok := strings.TrimSpace(rest)
	mode, value := a.resolveOperand(operandTok)
	return types.Encode(op, mode, value)
}

// resolveOperand classifies and resolves an operand token per the three
// forms: #LIT (immediate), NUM (direct address, decimal or 0x-prefixed
// hex), NAME (label reference).
func (a *Assembler) resolveOperand(tok string) (isAddressMode bool, value uint32) {
	switch {
	case strings.HasPrefix(tok, "#"):
		n, err := strconv.ParseUint(tok[1:], 0, 32)
		if err != nil {
			a.log.Warn("source-syntax: malformed immediate", "operand", tok)
			return false, 0
		}
		return false, uint32(n)

	case tok != "" && unicode.IsDigit(rune(tok[0])):
		n, err := strconv.ParseUint(tok, 0, 32)
		if err != nil {
			a.log.Warn("source-syntax: malformed address", "operand", tok)
			return true, 0
		}
		return true, uint32(n)

	default:
		addr, ok := a.symbols[tok]
		if !ok {
			a.log.Warn("source-syntax: unresolved label", "label", tok)
			return true, 0
		}
		return true, uint32(addr)
	}
}

// getName splits off the first whitespace-delimited token using a raw
// cursor rather than strings.Fields, so a missing operand yields an
// empty remainder instead of an error.
func getName(str string) (string, string) {
	str = skipSpace(str)
	for i := range str {
		if unicode.IsSpace(rune(str[i])) {
			return str[:i], str[i+1:]
		}
	}
	return str, ""
}

func skipSpace(str string) string {
	for i := range str {
		if !unicode.IsSpace(rune(str[i])) {
			return str[i:]
		}
	}
	return ""
}
