// SPDX-License-Identifier: EPL-2.0

package framebuffer

import "sync/atomic"

// Writer is the producer side of a frame buffer. A Writer must only be used
// from one goroutine, and at most one Writer may exist per Context.
type Writer struct {
	ring       ring
	used       *uint32
	total      *uint64
	frameIndex int
}

// NewWriter returns the producer side of c.
func NewWriter(c *Context) *Writer {
	return &Writer{
		ring:  c.ring(),
		used:  c.UsedFrames,
		total: c.TotalWriteFrames,
	}
}

// AvailableFrames returns the number of frames that can be written before
// the buffer is full.
func (w *Writer) AvailableFrames() int {
	return w.ring.frames - int(atomic.LoadUint32(w.used))
}

// TotalFrames returns the number of frames written so far.
func (w *Writer) TotalFrames() uint64 {
	return atomic.LoadUint64(w.total)
}

// Capacity returns the buffer size in frames.
func (w *Writer) Capacity() int { return w.ring.frames }

// Channels returns the number of samples per frame.
func (w *Writer) Channels() int { return w.ring.channels }

// Write hands the free frames to fn as one or two segments and returns the
// number of frames fn filled. Filled frames are published to the Reader. If
// fn violates its contract, Write returns ErrSegmentOverrun and publishes
// nothing.
func (w *Writer) Write(fn SegmentFunc) (int, error) {
	n, next, err := w.ring.enumerate(w.frameIndex, w.AvailableFrames(), fn)
	if err != nil {
		return 0, err
	}
	w.frameIndex = next
	if n > 0 {
		atomic.AddUint32(w.used, uint32(n))
		atomic.AddUint64(w.total, uint64(n))
	}
	return n, nil
}

// WriteFrom copies as many whole frames from src as there is room for, and
// returns the number of frames copied.
func (w *Writer) WriteFrom(src []float32) (int, error) {
	if len(src)%w.ring.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	return w.Write(func(seg Segment, offset int) int {
		start := offset * seg.Channels
		if start >= len(src) {
			return 0
		}
		return copy(seg.Samples, src[start:]) / seg.Channels
	})
}
