/*
 * SimCpuCycle - Memory-mapped character display.
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

// Package display implements the memory-mapped character sink: a DATA
// register that appends to a line buffer, and a COMMAND register that
// flushes, clears, or emits a bare newline.
package display

import (
	"bufio"
	"io"
)

// Memory-mapped register addresses, per the system memory map.
const (
	DataAddr    = 0xE000
	CommandAddr = 0xE001
)

// Command codes written to CommandAddr.
const (
	CmdFlush = 1
	CmdClear = 2
	CmdNewline = 3
)

// Display appends bytes written to DataAddr into a line buffer, flushed
// to the writer given to New on command.
type Display struct {
	buf []byte
	out *bufio.Writer
}

// New builds a Display writing flushed lines to out.
func New(out io.Writer) *Display {
	return &Display{out: bufio.NewWriter(out)}
}

// Read always returns 0: the display has no readable state.
func (d *Display) Read(addr uint32) uint32 {
	return 0
}

// Write dispatches to DataAddr (append) or CommandAddr (command); any
// other address is a no-op, matching the bus's address-decoded routing.
func (d *Display) Write(addr uint32, value uint32) {
	switch addr {
	case DataAddr:
		d.buf = append(d.buf, byte(value))
	case CommandAddr:
		d.command(byte(value))
	}
}

func (d *Display) command(cmd byte) {
	switch cmd {
	case CmdFlush:
		if len(d.buf) == 0 {
			return
		}
		_, _ = d.out.Write(d.buf)
		_, _ = d.out.WriteString("\n")
		_ = d.out.Flush()
		d.buf = d.buf[:0]
	case CmdClear:
		d.buf = d.buf[:0]
	case CmdNewline:
		_, _ = d.out.WriteString("\n")
		_ = d.out.Flush()
	}
}
