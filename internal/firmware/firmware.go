/*
 * SimCpuCycle - Firmware image file I/O.
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

// Package firmware reads and writes the flat, header-less, little-endian
// 32-bit word stream the simulator boots from. This is the one place the
// core touches a real filesystem; I/O errors here abort the simulation
// early (see the error-handling design).
package firmware

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/HENQ42/SimCpuCycle/internal/types"
)

// Load reads a firmware image from path: a sequence of little-endian
// Words with no header or checksum.
func Load(path string) ([]types.Word, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("firmware: %w", err)
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("firmware: %s is not a whole number of 32-bit words", path)
	}
	words := make([]types.Word, len(raw)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}
	return words, nil
}

// Save writes words to path as a flat little-endian word stream.
func Save(path string, words []types.Word) error {
	raw := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(raw[i*4:], w)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("firmware: %w", err)
	}
	return nil
}
