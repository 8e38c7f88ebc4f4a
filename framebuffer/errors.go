// SPDX-License-Identifier: EPL-2.0

package framebuffer

import "errors"

var (
	// ErrInvalidParams reports a non-positive frame or channel count.
	ErrInvalidParams = errors.New("invalid frame buffer parameters")
	// ErrOutOfRange reports a frame or channel index outside a segment.
	ErrOutOfRange = errors.New("frame or channel index is out of bounds")
	// ErrSegmentOverrun reports a SegmentFunc that claimed more frames than it was offered.
	ErrSegmentOverrun = errors.New("processed frames exceed segment frames")
	// ErrInvalidDstSize reports a copy buffer that is not a whole number of frames.
	ErrInvalidDstSize = errors.New("buffer size must be multiple of channels")
	// ErrRegionTooSmall reports a region shorter than RegionSize.
	ErrRegionTooSmall = errors.New("shared region too small for frame buffer")
	// ErrMisaligned reports a region whose base address is not 8-byte aligned.
	ErrMisaligned = errors.New("shared region is not 8-byte aligned")
)
