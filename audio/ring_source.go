// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync/atomic"

	"github.com/ik5/audfb/framebuffer"
)

// RingSource is a Source that pulls frames out of a frame buffer. It is
// meant for the consumer goroutine and copies frames into the caller's dst.
//
// ReadFrames returns (0, nil) when the buffer is momentarily empty, and
// io.EOF once the producer has called CloseWrite and every frame has been
// read.
type RingSource struct {
	r          *framebuffer.Reader
	sampleRate int
	done       atomic.Bool
}

// NewRingSource wraps the consumer side of a frame buffer.
func NewRingSource(r *framebuffer.Reader, sampleRate int) *RingSource {
	return &RingSource{r: r, sampleRate: sampleRate}
}

func (s *RingSource) SampleRate() int { return s.sampleRate }
func (s *RingSource) Channels() int   { return s.r.Channels() }
func (s *RingSource) Close() error    { return nil }

// CloseWrite marks the end of the stream. It is called by the producer after
// its last write.
func (s *RingSource) CloseWrite() { s.done.Store(true) }

func (s *RingSource) ReadFrames(dst []float32) (int, error) {
	if len(dst)%s.r.Channels() != 0 {
		return 0, ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	// Observe the end marker before reading: frames written before
	// CloseWrite are then guaranteed to be visible to the read below.
	finished := s.done.Load()
	n, err := s.r.ReadInto(dst)
	if err != nil {
		return n, err
	}
	if n == 0 && finished {
		return 0, io.EOF
	}
	return n, nil
}
