/*
 * SimCpuCycle - Boot-time configuration file parser.
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

// Package config parses the simulator's optional boot-time configuration
// file: a flat "key = value" format, '#' comments, one setting per line.
// Any key the file omits keeps its Default() value, so the zero-config
// path reproduces the reference parameters exactly.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/HENQ42/SimCpuCycle/internal/cache"
	"github.com/HENQ42/SimCpuCycle/internal/cpu"
	"github.com/HENQ42/SimCpuCycle/internal/ram"
)

// Params are the boot-time parameters for a machine instance.
type Params struct {
	RAMWords        int
	CacheLines      int
	CacheBlockWords int
	KeyboardVector  uint8
	ISRAddress      uint32
	Quiet           bool
}

// Default returns the reference configuration: 1024-word RAM, an 8-line
// 4-word cache, and the keyboard on vector 1 -> ISR 500.
func Default() Params {
	return Params{
		RAMWords:        ram.DefaultSize,
		CacheLines:      cache.DefaultNumLines,
		CacheBlockWords: cache.DefaultBlockSize,
		KeyboardVector:  1,
		ISRAddress:      500,
		Quiet:           false,
	}
}

// VectorTable renders these Params into a cpu.VectorTable.
func (p Params) VectorTable() cpu.VectorTable {
	return cpu.VectorTable{p.KeyboardVector: p.ISRAddress}
}

// Load reads path and overlays any recognized keys onto Default(). An
// unknown key, a malformed line or a bad value stops the parse and is
// returned as an error; a missing or unreadable file is an I/O error the
// caller should treat as fatal.
func Load(path string) (Params, error) {
	p := Default()

	f, err := os.Open(path)
	if err != nil {
		return p, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return p, fmt.Errorf("config: malformed line %q", line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if err := p.apply(key, value); err != nil {
			return p, err
		}
	}
	if err := scanner.Err(); err != nil {
		return p, fmt.Errorf("config: %w", err)
	}
	return p, nil
}

func (p *Params) apply(key, value string) error {
	switch key {
	case "ram_words":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("config: bad ram_words %q: %w", value, err)
		}
		p.RAMWords = n
	case "cache_lines":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("config: bad cache_lines %q: %w", value, err)
		}
		p.CacheLines = n
	case "cache_block_words":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("config: bad cache_block_words %q: %w", value, err)
		}
		p.CacheBlockWords = n
	case "keyboard_vector":
		n, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			return fmt.Errorf("config: bad keyboard_vector %q: %w", value, err)
		}
		p.KeyboardVector = uint8(n)
	case "isr_address":
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return fmt.Errorf("config: bad isr_address %q: %w", value, err)
		}
		p.ISRAddress = uint32(n)
	case "quiet":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config: bad quiet %q: %w", value, err)
		}
		p.Quiet = b
	default:
		return fmt.Errorf("config: unknown key %q", key)
	}
	return nil
}
