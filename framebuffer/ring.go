// SPDX-License-Identifier: EPL-2.0

package framebuffer

import "fmt"

// SegmentFunc processes one segment and returns how many of its frames it
// consumed. offset is the number of frames already processed earlier in the
// same Read or Write call.
//
// Returning fewer frames than seg.FrameCount ends the call; the next call
// resumes at the first unprocessed frame. Returning more is a contract
// violation reported as ErrSegmentOverrun.
type SegmentFunc func(seg Segment, offset int) int

// ring walks the sample storage as a circular sequence of frames. It holds
// no positions of its own; callers pass their cursor in and get it back.
type ring struct {
	storage  []float32
	channels int
	frames   int
}

// enumerate offers up to available frames starting at cursor to fn, split
// into at most two non-wrapping segments. It returns the frames processed
// and the cursor that follows them. On error the caller must discard both.
func (r ring) enumerate(cursor, available int, fn SegmentFunc) (int, int, error) {
	processed := 0
	for processed < available {
		run := min(r.frames-cursor, available-processed)

		n := fn(newSegment(r.storage, r.channels, cursor, run), processed)
		if n > run || n < 0 {
			return 0, 0, fmt.Errorf("processed %d of %d frames: %w", n, run, ErrSegmentOverrun)
		}

		processed += n
		cursor = (cursor + n) % r.frames
		if n < run {
			break
		}
	}
	return processed, cursor, nil
}
