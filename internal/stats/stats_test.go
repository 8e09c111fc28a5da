package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroValueMetricsAreZeroNotNaN(t *testing.T) {
	c := &Counters{}
	assert.Equal(t, 0.0, c.IPC())
	assert.Equal(t, 0.0, c.HitRate())
	assert.Equal(t, 0.0, c.MPKI())
	assert.Equal(t, float64(HitTime), c.AMAT())
	assert.Equal(t, 0.0, c.AverageIRQLatency())
}

func TestIPC(t *testing.T) {
	c := &Counters{TotalCycles: 100, TotalInstructions: 50}
	assert.Equal(t, 0.5, c.IPC())
}

func TestHitRate(t *testing.T) {
	c := &Counters{CacheHits: 3, CacheMisses: 1}
	assert.Equal(t, 75.0, c.HitRate())
}

func TestMPKI(t *testing.T) {
	c := &Counters{TotalInstructions: 1000, CacheMisses: 5}
	assert.Equal(t, 5.0, c.MPKI())
}

func TestAMAT(t *testing.T) {
	c := &Counters{CacheHits: 9, CacheMisses: 1}
	assert.InDelta(t, 2.0, c.AMAT(), 0.0001)
}

func TestAverageIRQLatency(t *testing.T) {
	c := &Counters{TotalIRQLatency: 30, IRQCount: 3}
	assert.Equal(t, 10.0, c.AverageIRQLatency())
}
