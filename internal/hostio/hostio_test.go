package hostio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueSourceDeliversInOrder(t *testing.T) {
	q := NewQueueSource('a', 'b')
	q.Push('c')

	for _, want := range []byte{'a', 'b', 'c'} {
		b, ok := q.TryReadByte()
		assert.True(t, ok)
		assert.Equal(t, want, b)
	}

	_, ok := q.TryReadByte()
	assert.False(t, ok)
}

func TestEmptyQueueSourceNeverBlocks(t *testing.T) {
	q := NewQueueSource()
	_, ok := q.TryReadByte()
	assert.False(t, ok)
}
