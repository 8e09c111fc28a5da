/*
 * SimCpuCycle - Direct-mapped, write-through, block-fill cache.
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

// Package cache wraps a backing memdev.Device with a direct-mapped,
// write-through cache with block fill. Reads are not logically const:
// a miss fills a line and updates hit/miss counters.
package cache

import (
	"github.com/HENQ42/SimCpuCycle/internal/memdev"
	"github.com/HENQ42/SimCpuCycle/internal/stats"
	"github.com/HENQ42/SimCpuCycle/internal/types"
)

// Reference defaults, per the cache's parameterization contract.
const (
	DefaultNumLines  = 8
	DefaultBlockSize = 4

	// missPenalty is added to stats.BusWaitCycles on every miss, and is
	// the MissPenalty term AMAT is computed against.
	missPenalty = 10
)

type line struct {
	valid bool
	tag   uint32
	data  []types.Word
}

// Cache sits between the bus and a backing memdev.Device (RAM).
type Cache struct {
	backing   memdev.Device
	lines     []line
	numLines  uint32
	blockSize uint32
	counters  *stats.Counters
}

// New builds a Cache fronting backing with the given geometry. counters
// must not be nil; every Cache shares the machine's single Counters.
func New(backing memdev.Device, numLines, blockSize int, counters *stats.Counters) *Cache {
	if numLines <= 0 {
		numLines = DefaultNumLines
	}
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	lines := make([]line, numLines)
	for i := range lines {
		lines[i].data = make([]types.Word, blockSize)
	}
	return &Cache{
		backing:   backing,
		lines:     lines,
		numLines:  uint32(numLines),
		blockSize: uint32(blockSize),
		counters:  counters,
	}
}

func (c *Cache) decompose(addr types.Address) (blockAddr, offset, index, tag uint32) {
	blockAddr = uint32(addr) / c.blockSize
	offset = uint32(addr) % c.blockSize
	index = blockAddr % c.numLines
	tag = blockAddr / c.numLines
	return
}

// Read returns the word at addr, filling the owning line on a miss. The
// entire block is fetched even for a single-word read (spatial locality).
func (c *Cache) Read(addr types.Address) types.Word {
	blockAddr, offset, index, tag := c.decompose(addr)
	ln := &c.lines[index]

	if ln.valid && ln.tag == tag {
		c.counters.CacheHits++
		return ln.data[offset]
	}

	c.counters.CacheMisses++
	c.counters.BusWaitCycles += missPenalty

	base := blockAddr * c.blockSize
	for i := uint32(0); i < c.blockSize; i++ {
		ln.data[i] = c.backing.Read(base + i)
	}
	ln.valid = true
	ln.tag = tag

	return ln.data[offset]
}

// Write always reaches the backing memory (write-through). If the
// addressed line currently holds the matching tag, it is updated in
// place; otherwise the cache is left unchanged (no allocate-on-write).
func (c *Cache) Write(addr types.Address, value types.Word) {
	c.backing.Write(addr, value)

	_, offset, index, tag := c.decompose(addr)
	ln := &c.lines[index]
	if ln.valid && ln.tag == tag {
		ln.data[offset] = value
	}
}
