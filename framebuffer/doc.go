// SPDX-License-Identifier: EPL-2.0

// Package framebuffer provides a fixed-capacity ring of interleaved float32
// audio frames shared by exactly one producer and one consumer without locks.
//
// # Overview
//
// A Context holds the sample storage and three counters in one contiguous
// region. It is created once and handed to one Writer and one Reader, each
// owned by its own goroutine:
//
//	ctx, err := framebuffer.NewContext(framebuffer.Params{FrameCount: 1024, ChannelCount: 2})
//	if err != nil {
//	    // Handle error
//	}
//	w := framebuffer.NewWriter(ctx)
//	r := framebuffer.NewReader(ctx)
//
// # Segments
//
// Data is never copied through an intermediate buffer. Write and Read offer
// the free (or filled) part of the ring as at most two Segments, one ending
// at the end of the storage and one starting at its beginning, and a
// SegmentFunc works on the shared samples in place:
//
//	written, err := w.Write(func(seg framebuffer.Segment, offset int) int {
//	    n := min(seg.FrameCount, len(pending)/seg.Channels)
//	    copy(seg.Samples, pending[:n*seg.Channels])
//	    pending = pending[n*seg.Channels:]
//	    return n
//	})
//
// A SegmentFunc that returns less than the segment length ends the call, and
// the next call starts at the first frame it did not take. Frames are never
// skipped or handed out twice.
//
// # Concurrency
//
// The only shared mutable state is the used-frames counter and the two
// totals, changed through sync/atomic after the processed amount is known.
// Samples written before a Write returns are visible to a Reader that
// observes the new count. Nothing blocks: when AvailableFrames returns zero
// the caller decides whether to poll, sleep or give up.
//
// # Errors
//
//   - ErrInvalidParams: non-positive frame or channel count
//   - ErrSegmentOverrun: a SegmentFunc returned more frames than offered;
//     no counter or cursor changes
//   - ErrOutOfRange: Segment.Get/Set/Frame with a bad index
package framebuffer
