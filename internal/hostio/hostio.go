/*
 * SimCpuCycle - Host byte sources for the keyboard device.
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

// Package hostio supplies the non-blocking byte source the keyboard
// device polls once per cycle. The simulator core only ever sees the
// ByteSource interface; raw terminal handling lives entirely here, kept
// out of the core the same way the bus never owns the devices it
// borrows.
package hostio

import (
	"os"

	"golang.org/x/term"
)

// ByteSource is polled once per simulated cycle by the keyboard's tick().
// TryReadByte must never block.
type ByteSource interface {
	TryReadByte() (b byte, ok bool)
}

// QueueSource is an in-memory ByteSource, used by tests and by any run
// that feeds the keyboard from a scripted byte stream instead of a live
// terminal.
type QueueSource struct {
	queue []byte
}

// NewQueueSource builds a QueueSource pre-seeded with initial bytes.
func NewQueueSource(initial ...byte) *QueueSource {
	q := &QueueSource{}
	q.queue = append(q.queue, initial...)
	return q
}

// Push enqueues additional bytes to be delivered on future ticks.
func (q *QueueSource) Push(b ...byte) {
	q.queue = append(q.queue, b...)
}

// TryReadByte dequeues the next byte, if any.
func (q *QueueSource) TryReadByte() (byte, bool) {
	if len(q.queue) == 0 {
		return 0, false
	}
	b := q.queue[0]
	q.queue = q.queue[1:]
	return b, true
}

// TerminalSource reads raw, unbuffered keystrokes from the host terminal
// without blocking. It toggles the terminal into raw mode on construction
// and restores it on Close, the one piece of this system that actually
// talks to the host TTY.
type TerminalSource struct {
	fd       int
	oldState *term.State
	pending  chan byte
	done     chan struct{}
}

// NewTerminalSource puts fd (typically os.Stdin's descriptor) into raw
// mode and starts a background reader that feeds a small internal
// channel, so TryReadByte itself never blocks.
func NewTerminalSource(fd int) (*TerminalSource, error) {
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	t := &TerminalSource{
		fd:       fd,
		oldState: old,
		pending:  make(chan byte, 256),
		done:     make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

func (t *TerminalSource) pump() {
	buf := make([]byte, 1)
	f := os.NewFile(uintptr(t.fd), "/dev/stdin")
	for {
		n, err := f.Read(buf)
		if n > 0 {
			select {
			case t.pending <- buf[0]:
			case <-t.done:
				return
			}
		}
		if err != nil {
			return
		}
		select {
		case <-t.done:
			return
		default:
		}
	}
}

// TryReadByte returns the next buffered keystroke, if any, without
// blocking.
func (t *TerminalSource) TryReadByte() (byte, bool) {
	select {
	case b := <-t.pending:
		return b, true
	default:
		return 0, false
	}
}

// Close restores the terminal's original mode and stops the background
// reader.
func (t *TerminalSource) Close() error {
	close(t.done)
	return term.Restore(t.fd, t.oldState)
}
