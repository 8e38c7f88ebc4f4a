// SPDX-License-Identifier: EPL-2.0

package framebuffer

import "sync/atomic"

// Reader is the consumer side of a frame buffer. A Reader must only be used
// from one goroutine, and at most one Reader may exist per Context.
type Reader struct {
	ring       ring
	used       *uint32
	total      *uint64
	frameIndex int
}

// NewReader returns the consumer side of c.
func NewReader(c *Context) *Reader {
	return &Reader{
		ring:  c.ring(),
		used:  c.UsedFrames,
		total: c.TotalReadFrames,
	}
}

// AvailableFrames returns the number of frames ready to be read.
func (r *Reader) AvailableFrames() int {
	return int(atomic.LoadUint32(r.used))
}

// TotalFrames returns the number of frames read so far.
func (r *Reader) TotalFrames() uint64 {
	return atomic.LoadUint64(r.total)
}

// Capacity returns the buffer size in frames.
func (r *Reader) Capacity() int { return r.ring.frames }

// Channels returns the number of samples per frame.
func (r *Reader) Channels() int { return r.ring.channels }

// Read hands the readable frames to fn as one or two segments and returns
// the number of frames fn consumed. Consumed frames are released to the
// Writer. If fn violates its contract, Read returns ErrSegmentOverrun and
// releases nothing.
func (r *Reader) Read(fn SegmentFunc) (int, error) {
	n, next, err := r.ring.enumerate(r.frameIndex, r.AvailableFrames(), fn)
	if err != nil {
		return 0, err
	}
	r.frameIndex = next
	if n > 0 {
		atomic.AddUint32(r.used, ^uint32(n-1))
		atomic.AddUint64(r.total, uint64(n))
	}
	return n, nil
}

// ReadInto copies as many whole frames as fit in dst and are available, and
// returns the number of frames copied.
func (r *Reader) ReadInto(dst []float32) (int, error) {
	if len(dst)%r.ring.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	return r.Read(func(seg Segment, offset int) int {
		start := offset * seg.Channels
		if start >= len(dst) {
			return 0
		}
		return copy(dst[start:], seg.Samples) / seg.Channels
	})
}
