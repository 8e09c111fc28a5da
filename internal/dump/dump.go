/*
 * SimCpuCycle - Human-readable state dumps.
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

// Package dump renders register, memory and statistics state as
// human-readable text for the monitor and for end-of-run reporting.
// Registers and Stats lean on go-spew for a quick, complete struct dump;
// Memory is hand-formatted since spew's default struct rendering is the
// wrong shape for a word-addressed hex listing.
package dump

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/HENQ42/SimCpuCycle/internal/registers"
	"github.com/HENQ42/SimCpuCycle/internal/stats"
	"github.com/HENQ42/SimCpuCycle/internal/types"
)

var spewConfig = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}

// Registers renders the full register file.
func Registers(r *registers.Registers) string {
	return spewConfig.Sdump(r)
}

// Stats renders the raw counters alongside the derived metrics, since the
// derived values aren't fields spew would otherwise show.
func Stats(c *stats.Counters) string {
	var b strings.Builder
	b.WriteString(spewConfig.Sdump(c))
	fmt.Fprintf(&b, "IPC:          %.4f\n", c.IPC())
	fmt.Fprintf(&b, "HitRate:      %.2f%%\n", c.HitRate())
	fmt.Fprintf(&b, "MPKI:         %.4f\n", c.MPKI())
	fmt.Fprintf(&b, "AMAT:         %.4f\n", c.AMAT())
	fmt.Fprintf(&b, "AvgIRQLatency: %.4f\n", c.AverageIRQLatency())
	return b.String()
}

// memReader is the subset of ram.RAM that Memory needs; defined here
// rather than imported so dump does not need to know RAM's concrete type.
type memReader interface {
	Read(addr types.Address) types.Word
	Size() int
}

// Memory renders count words starting at addr, eight words per line in
// hex, clipped to the device's capacity.
func Memory(m memReader, addr uint32, count int) string {
	var b strings.Builder
	end := int(addr) + count
	if end > m.Size() {
		end = m.Size()
	}
	for a := int(addr); a < end; a++ {
		if (a-int(addr))%8 == 0 {
			if a != int(addr) {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%04X:", a)
		}
		fmt.Fprintf(&b, " %08X", m.Read(types.Address(a)))
	}
	return b.String()
}
