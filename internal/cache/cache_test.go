package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HENQ42/SimCpuCycle/internal/ram"
	"github.com/HENQ42/SimCpuCycle/internal/stats"
	"github.com/HENQ42/SimCpuCycle/internal/types"
)

// TestMissCountScenario walks the classic two-line, four-word-block trace:
// addresses 0,1,2,3,0,4,8 against a backing store of distinct values,
// expecting exactly 3 misses and 4 hits, with 30 bus-wait cycles charged.
func TestMissCountScenario(t *testing.T) {
	mem := ram.New(16, nil)
	for i := 0; i < 16; i++ {
		mem.Write(types.Address(i), types.Word(i*10))
	}
	counters := &stats.Counters{}
	c := New(mem, 2, 4, counters)

	addrs := []types.Address{0, 1, 2, 3, 0, 4, 8}
	for _, a := range addrs {
		c.Read(a)
	}

	assert.Equal(t, uint64(3), counters.CacheMisses)
	assert.Equal(t, uint64(4), counters.CacheHits)
	assert.Equal(t, uint64(30), counters.BusWaitCycles)
}

func TestReadReturnsCorrectValueAfterFill(t *testing.T) {
	mem := ram.New(16, nil)
	mem.Write(5, 999)
	counters := &stats.Counters{}
	c := New(mem, 2, 4, counters)

	assert.Equal(t, types.Word(999), c.Read(5))
}

func TestWriteIsAlwaysThrough(t *testing.T) {
	mem := ram.New(16, nil)
	counters := &stats.Counters{}
	c := New(mem, 2, 4, counters)

	c.Write(3, 77)
	assert.Equal(t, types.Word(77), mem.Read(3))
}

func TestWriteUpdatesCachedLineInPlace(t *testing.T) {
	mem := ram.New(16, nil)
	counters := &stats.Counters{}
	c := New(mem, 2, 4, counters)

	c.Read(3) // fills the line
	c.Write(3, 55)
	assert.Equal(t, types.Word(55), c.Read(3))
	assert.Equal(t, uint64(1), counters.CacheHits)
}

func TestWriteToUncachedLineDoesNotAllocate(t *testing.T) {
	mem := ram.New(16, nil)
	counters := &stats.Counters{}
	c := New(mem, 2, 4, counters)

	c.Write(3, 55)
	c.Read(3)
	assert.Equal(t, uint64(0), counters.CacheHits)
	assert.Equal(t, uint64(1), counters.CacheMisses)
}

func TestDefaultsUsedForNonPositiveGeometry(t *testing.T) {
	mem := ram.New(16, nil)
	c := New(mem, 0, 0, &stats.Counters{})
	assert.Equal(t, uint32(DefaultNumLines), c.numLines)
	assert.Equal(t, uint32(DefaultBlockSize), c.blockSize)
}
