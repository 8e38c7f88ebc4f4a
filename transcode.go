// SPDX-License-Identifier: EPL-2.0

package audfb

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ik5/audfb/audio"
	"github.com/ik5/audfb/framebuffer"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultCapacityFrames = 4096
	DefaultChunkFrames    = 512
	DefaultBackoff        = time.Millisecond
)

// Options tune Transcode. Zero values select the defaults.
type Options struct {
	// CapacityFrames is the frame buffer size.
	CapacityFrames int
	// ChunkFrames caps the frames handed to the sink per call.
	ChunkFrames int
	// Backoff is how long either side sleeps when it cannot make progress.
	Backoff time.Duration
	// Region, when set, backs the frame buffer instead of a heap allocation.
	// It must be at least framebuffer.RegionSize bytes and 8-byte aligned.
	Region []byte
}

func (o Options) withDefaults() Options {
	if o.CapacityFrames <= 0 {
		o.CapacityFrames = DefaultCapacityFrames
	}
	if o.ChunkFrames <= 0 {
		o.ChunkFrames = DefaultChunkFrames
	}
	if o.Backoff <= 0 {
		o.Backoff = DefaultBackoff
	}
	return o
}

// Stats reports what a Transcode run moved through the buffer.
type Stats struct {
	Capacity int
	Channels int
	Written  uint64
	Read     uint64
}

// Transcode decodes src on one goroutine and feeds sink from another, with a
// frame buffer between them. It returns when src is exhausted and every
// frame reached sink, or on the first error.
func Transcode(ctx context.Context, src audio.Source, sink audio.Sink, opts Options) (Stats, error) {
	opts = opts.withDefaults()
	params := framebuffer.Params{FrameCount: opts.CapacityFrames, ChannelCount: src.Channels()}

	var (
		c   *framebuffer.Context
		err error
	)
	if opts.Region != nil {
		c, err = framebuffer.NewContextOver(opts.Region, params)
	} else {
		c, err = framebuffer.NewContext(params)
	}
	if err != nil {
		return Stats{}, fmt.Errorf("frame buffer: %w", err)
	}

	r, w := framebuffer.NewReader(c), framebuffer.NewWriter(c)

	var done atomic.Bool
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer done.Store(true)

		if _, err := audio.Pump(gctx, src, w, opts.Backoff); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		for {
			// Loaded before draining so that an empty buffer after the
			// producer finished really is the end.
			finished := done.Load()

			n, err := audio.Drain(r, sink, opts.ChunkFrames)
			if err != nil {
				return err
			}
			if n > 0 {
				continue
			}
			if finished {
				return nil
			}
			if err := audio.Sleep(gctx, opts.Backoff); err != nil {
				return err
			}
		}
	})

	err = g.Wait()
	return Stats{
		Capacity: c.FrameCount(),
		Channels: src.Channels(),
		Written:  w.TotalFrames(),
		Read:     r.TotalFrames(),
	}, err
}
