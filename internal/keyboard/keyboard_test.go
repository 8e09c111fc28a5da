package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HENQ42/SimCpuCycle/internal/pic"
	"github.com/HENQ42/SimCpuCycle/internal/stats"
)

type fakeSource struct {
	bytes []byte
}

func (f *fakeSource) TryReadByte() (byte, bool) {
	if len(f.bytes) == 0 {
		return 0, false
	}
	b := f.bytes[0]
	f.bytes = f.bytes[1:]
	return b, true
}

func TestTickEnqueuesAndRaisesIRQ(t *testing.T) {
	src := &fakeSource{bytes: []byte{'a'}}
	p := pic.New(&stats.Counters{})
	k := New(src, p)

	k.Tick(1)
	assert.True(t, p.IsPending())
	assert.Equal(t, uint32(1), k.Read(StatusAddr))
}

func TestTickRaisesAgainAfterAck(t *testing.T) {
	src := &fakeSource{bytes: []byte{'a', 'b'}}
	p := pic.New(&stats.Counters{})
	k := New(src, p)

	k.Tick(1)
	p.AckIRQ()
	k.Tick(2)
	assert.True(t, p.IsPending())
}

func TestReadDataDequeues(t *testing.T) {
	src := &fakeSource{bytes: []byte{'x'}}
	p := pic.New(&stats.Counters{})
	k := New(src, p)

	k.Tick(1)
	assert.Equal(t, uint32('x'), k.Read(DataAddr))
	assert.Equal(t, uint32(0), k.Read(StatusAddr))
}

func TestReadDataEmptyReturnsZero(t *testing.T) {
	p := pic.New(&stats.Counters{})
	k := New(&fakeSource{}, p)
	assert.Equal(t, uint32(0), k.Read(DataAddr))
}
