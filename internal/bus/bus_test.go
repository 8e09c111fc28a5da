package bus

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HENQ42/SimCpuCycle/internal/display"
	"github.com/HENQ42/SimCpuCycle/internal/keyboard"
	"github.com/HENQ42/SimCpuCycle/internal/pic"
	"github.com/HENQ42/SimCpuCycle/internal/ram"
	"github.com/HENQ42/SimCpuCycle/internal/stats"
	"github.com/HENQ42/SimCpuCycle/internal/types"
)

type zeroSource struct{}

func (zeroSource) TryReadByte() (byte, bool) { return 0, false }

func newBus() *Bus {
	mem := ram.New(64, nil)
	disp := display.New(&bytes.Buffer{})
	kbd := keyboard.New(zeroSource{}, pic.New(&stats.Counters{}))
	return New(mem, disp, kbd)
}

func TestRoutesBelowDisplayBaseToMemory(t *testing.T) {
	b := newBus()
	b.Write(10, 42)
	assert.Equal(t, types.Word(42), b.Read(10))
}

func TestRoutesDisplayRangeToDisplay(t *testing.T) {
	b := newBus()
	b.Write(DisplayBase, 'h')
	assert.Equal(t, types.Word(0), b.Read(DisplayBase))
}

func TestRoutesKeyboardRangeToKeyboard(t *testing.T) {
	b := newBus()
	assert.Equal(t, types.Word(0), b.Read(KeyboardBase))
}
