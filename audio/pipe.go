// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ik5/audfb/framebuffer"
)

// Sink consumes interleaved frames. samples always holds whole frames and is
// only valid during the call.
type Sink interface {
	WriteFrames(samples []float32) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(samples []float32) error

func (f SinkFunc) WriteFrames(samples []float32) error { return f(samples) }

// Fill decodes from src straight into the free segments of w. It never
// blocks on the buffer: when w is full it returns 0. The returned error is
// the one reported by src, io.EOF included.
func Fill(w *framebuffer.Writer, src Source) (int, error) {
	if src.Channels() != w.Channels() {
		return 0, fmt.Errorf("source has %d channels, buffer %d: %w", src.Channels(), w.Channels(), ErrChannelMismatch)
	}

	var srcErr error
	n, err := w.Write(func(seg framebuffer.Segment, _ int) int {
		if srcErr != nil {
			return 0
		}
		frames, err := src.ReadFrames(seg.Samples)
		srcErr = err
		return frames
	})
	if err != nil {
		return 0, fmt.Errorf("fill frame buffer: %w", err)
	}

	return n, srcErr
}

// Drain hands up to limit readable frames of r to sink, one segment at a
// time. limit <= 0 means everything available. Frames are released only
// when sink accepts them; on a sink error the segment stays in the buffer.
func Drain(r *framebuffer.Reader, sink Sink, limit int) (int, error) {
	var sinkErr error
	n, err := r.Read(func(seg framebuffer.Segment, offset int) int {
		frames := seg.FrameCount
		if limit > 0 {
			frames = min(frames, limit-offset)
		}
		if frames <= 0 || sinkErr != nil {
			return 0
		}
		if sinkErr = sink.WriteFrames(seg.Samples[:frames*seg.Channels]); sinkErr != nil {
			return 0
		}
		return frames
	})
	if err != nil {
		return 0, fmt.Errorf("drain frame buffer: %w", err)
	}
	if sinkErr != nil {
		return n, fmt.Errorf("sink: %w", sinkErr)
	}
	return n, nil
}

// Pump feeds src into w until src is exhausted or ctx is done, sleeping for
// backoff whenever the buffer has no room. It returns the number of frames
// written; a clean end of stream returns a nil error.
func Pump(ctx context.Context, src Source, w *framebuffer.Writer, backoff time.Duration) (int64, error) {
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		n, err := Fill(w, src)
		total += int64(n)
		switch {
		case errors.Is(err, io.EOF):
			return total, nil
		case err != nil:
			return total, err
		case n > 0:
			continue
		}

		if err := Sleep(ctx, backoff); err != nil {
			return total, err
		}
	}
}

// Sleep waits for d or until ctx is done, whichever comes first. It returns
// ctx.Err() when ctx ended the wait. A non-positive d only checks ctx.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
