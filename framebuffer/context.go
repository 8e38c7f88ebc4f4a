// SPDX-License-Identifier: EPL-2.0

package framebuffer

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/ik5/audfb/internal/partition"
)

// Field names of the shared layout, in layout order.
const (
	fieldSamples    = "samples"
	fieldUsed       = "usedFrames"
	fieldTotalRead  = "totalReadFrames"
	fieldTotalWrite = "totalWriteFrames"
)

// Context is the state shared by one Reader and one Writer.
//
// All of it lives in a single region laid out as
//
//	samples     float32 x FrameCount*ChannelCount
//	usedFrames  uint32
//	totalRead   uint64
//	totalWrite  uint64
//
// so that the region can be handed to another goroutine, or mapped by
// another process, as one piece of memory.
type Context struct {
	// Samples is the interleaved sample storage.
	Samples []float32
	// SamplesPerFrame is the channel count.
	SamplesPerFrame int
	// UsedFrames counts frames written but not yet read.
	UsedFrames *uint32
	// TotalReadFrames counts every frame ever read.
	TotalReadFrames *uint64
	// TotalWriteFrames counts every frame ever written.
	TotalWriteFrames *uint64

	region []byte
}

func plan(p Params) (partition.Plan, error) {
	if err := p.Validate(); err != nil {
		return partition.Plan{}, err
	}
	return partition.Layout(
		partition.Field{Name: fieldSamples, Kind: partition.Float32, Count: p.SampleCount()},
		partition.Field{Name: fieldUsed, Kind: partition.Uint32, Count: 1},
		partition.Field{Name: fieldTotalRead, Kind: partition.Uint64, Count: 1},
		partition.Field{Name: fieldTotalWrite, Kind: partition.Uint64, Count: 1},
	)
}

// RegionSize returns the number of bytes a region must have to hold a
// buffer described by p.
func RegionSize(p Params) (int, error) {
	pl, err := plan(p)
	if err != nil {
		return 0, err
	}
	return pl.Size, nil
}

// NewContext allocates a region in process memory and lays out an empty
// frame buffer in it.
func NewContext(p Params) (*Context, error) {
	pl, err := plan(p)
	if err != nil {
		return nil, err
	}
	return bind(partition.Alloc(pl.Size), p, pl)
}

// NewContextOver lays out an empty frame buffer in mem, which must be at
// least RegionSize(p) bytes long and 8-byte aligned. Counters are reset.
func NewContextOver(mem []byte, p Params) (*Context, error) {
	c, err := AttachContext(mem, p)
	if err != nil {
		return nil, err
	}
	atomic.StoreUint32(c.UsedFrames, 0)
	atomic.StoreUint64(c.TotalReadFrames, 0)
	atomic.StoreUint64(c.TotalWriteFrames, 0)
	return c, nil
}

// AttachContext binds to a region that already holds a frame buffer laid out
// for p, keeping its counters and samples as they are.
func AttachContext(mem []byte, p Params) (*Context, error) {
	pl, err := plan(p)
	if err != nil {
		return nil, err
	}
	return bind(mem, p, pl)
}

func bind(mem []byte, p Params, pl partition.Plan) (*Context, error) {
	views, err := partition.Apply(mem, pl)
	switch {
	case errors.Is(err, partition.ErrRegionTooSmall):
		return nil, fmt.Errorf("%w: %w", ErrRegionTooSmall, err)
	case errors.Is(err, partition.ErrMisaligned):
		return nil, fmt.Errorf("%w: %w", ErrMisaligned, err)
	case err != nil:
		return nil, fmt.Errorf("partition region: %w", err)
	}

	c := &Context{SamplesPerFrame: p.ChannelCount, region: views.Region()}
	if c.Samples, err = views.Float32s(fieldSamples); err != nil {
		return nil, err
	}
	if c.UsedFrames, err = views.Uint32(fieldUsed); err != nil {
		return nil, err
	}
	if c.TotalReadFrames, err = views.Uint64(fieldTotalRead); err != nil {
		return nil, err
	}
	if c.TotalWriteFrames, err = views.Uint64(fieldTotalWrite); err != nil {
		return nil, err
	}

	return c, nil
}

// FrameCount is the capacity of the buffer in frames.
func (c *Context) FrameCount() int { return len(c.Samples) / c.SamplesPerFrame }

// Region returns the memory backing the context.
func (c *Context) Region() []byte { return c.region }

func (c *Context) ring() ring {
	return ring{storage: c.Samples, channels: c.SamplesPerFrame, frames: c.FrameCount()}
}
