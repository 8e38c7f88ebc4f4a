// SPDX-License-Identifier: EPL-2.0

package framebuffer

import (
	"fmt"
	"math"
)

// Params describes the shape of a frame buffer.
// The buffer holds FrameCount * ChannelCount samples.
type Params struct {
	// FrameCount is the capacity of the buffer in frames.
	FrameCount int
	// ChannelCount is the number of samples per frame.
	ChannelCount int
}

// Validate reports whether p can back a frame buffer.
func (p Params) Validate() error {
	if p.FrameCount <= 0 {
		return fmt.Errorf("frame count %d: %w", p.FrameCount, ErrInvalidParams)
	}
	if p.ChannelCount <= 0 {
		return fmt.Errorf("channel count %d: %w", p.ChannelCount, ErrInvalidParams)
	}
	// The usage counter is 32-bit.
	if uint64(p.FrameCount) > math.MaxUint32 {
		return fmt.Errorf("frame count %d exceeds %d: %w", p.FrameCount, uint64(math.MaxUint32), ErrInvalidParams)
	}
	if p.FrameCount > math.MaxInt/4/p.ChannelCount {
		return fmt.Errorf("%d frames of %d channels: %w", p.FrameCount, p.ChannelCount, ErrInvalidParams)
	}
	return nil
}

// SampleCount is the total number of samples in the buffer.
func (p Params) SampleCount() int { return p.FrameCount * p.ChannelCount }
