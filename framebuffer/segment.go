// SPDX-License-Identifier: EPL-2.0

package framebuffer

import "fmt"

// Segment is a contiguous run of frames inside the shared sample storage.
//
// Segments are handed out by Reader.Read and Writer.Write and are only valid
// for the duration of the SegmentFunc call that received them. A segment
// never wraps around the end of the buffer.
type Segment struct {
	// Samples aliases the shared storage for the frames of this segment.
	// When the interleaving is known, Samples[frame*Channels+channel] can be
	// used directly instead of Get and Set.
	Samples []float32
	// Channels is the number of samples per frame.
	Channels int
	// FrameCount is the length of the segment in frames.
	FrameCount int
	// StartFrame is the position of the first frame in the buffer.
	StartFrame int
}

func newSegment(storage []float32, channels, start, frames int) Segment {
	return Segment{
		Samples:    storage[start*channels : (start+frames)*channels],
		Channels:   channels,
		FrameCount: frames,
		StartFrame: start,
	}
}

func (s Segment) check(frame, channel int) error {
	if frame < 0 || frame >= s.FrameCount || channel < 0 || channel >= s.Channels {
		return fmt.Errorf("frame %d, channel %d: %w", frame, channel, ErrOutOfRange)
	}
	return nil
}

// Get returns the sample of channel in frame.
func (s Segment) Get(frame, channel int) (float32, error) {
	if err := s.check(frame, channel); err != nil {
		return 0, err
	}
	return s.Samples[frame*s.Channels+channel], nil
}

// Set stores v as the sample of channel in frame.
func (s Segment) Set(frame, channel int, v float32) error {
	if err := s.check(frame, channel); err != nil {
		return err
	}
	s.Samples[frame*s.Channels+channel] = v
	return nil
}

// Frame returns the samples of one frame, one per channel.
func (s Segment) Frame(frame int) ([]float32, error) {
	if err := s.check(frame, 0); err != nil {
		return nil, err
	}
	base := frame * s.Channels
	return s.Samples[base : base+s.Channels : base+s.Channels], nil
}
