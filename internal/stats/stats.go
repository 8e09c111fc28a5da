/*
 * SimCpuCycle - Performance counters and derived metrics.
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

// Package stats holds the shared, monotonically non-decreasing counters
// that the PIC, Cache and CPU update on the hot path, plus the derived
// metrics computed from them. It is passed around by pointer; nothing in
// this simulator mutates a Counters concurrently (see the single-actor
// concurrency model), so no locking is needed.
package stats

// Counters is owned by the driver and borrowed (by pointer) by every
// component that needs to record an event.
type Counters struct {
	TotalCycles       uint64
	TotalInstructions uint64
	CacheHits         uint64
	CacheMisses       uint64
	BusWaitCycles     uint64
	IRQRequestStamp   uint64
	TotalIRQLatency   uint64
	IRQCount          uint64
	DMABytesCopied    uint64
	CPUBytesCopied    uint64
}

// Hit time and miss penalty for AMAT, matching the cache's fixed fill
// penalty (10 cycles, see the cache's miss handling).
const (
	HitTime    = 1
	MissPenalty = 10
)

// IPC is instructions retired per cycle elapsed; 0 when no cycles have
// run yet.
func (c *Counters) IPC() float64 {
	if c.TotalCycles == 0 {
		return 0
	}
	return float64(c.TotalInstructions) / float64(c.TotalCycles)
}

// HitRate is the cache hit rate as a percentage; 0 when no cache read has
// been attempted.
func (c *Counters) HitRate() float64 {
	total := c.CacheHits + c.CacheMisses
	if total == 0 {
		return 0
	}
	return 100 * float64(c.CacheHits) / float64(total)
}

// MPKI is cache misses per thousand instructions.
func (c *Counters) MPKI() float64 {
	if c.TotalInstructions == 0 {
		return 0
	}
	return (float64(c.CacheMisses) / float64(c.TotalInstructions)) * 1000
}

// AMAT is the average memory access time: hit time plus the miss rate
// times the miss penalty.
func (c *Counters) AMAT() float64 {
	total := c.CacheHits + c.CacheMisses
	if total == 0 {
		return HitTime
	}
	missRate := float64(c.CacheMisses) / float64(total)
	return HitTime + missRate*MissPenalty
}

// AverageIRQLatency is the mean cycles between an IRQ request and its
// acknowledgement; 0 if no interrupt has ever been serviced.
func (c *Counters) AverageIRQLatency() float64 {
	if c.IRQCount == 0 {
		return 0
	}
	return float64(c.TotalIRQLatency) / float64(c.IRQCount)
}
