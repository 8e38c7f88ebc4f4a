// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides audio.Source and audio.Sink doubles for tests.
// It does not import the audio package so that audio's own tests can use it.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrDstSize mirrors audio.ErrInvalidDstSize for mock sources.
var ErrDstSize = errors.New("dst size must be multiple of channels")

// MockSource generates a fixed number of frames from a waveform function.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	maxChunk    int // frames per ReadFrames call, 0 = unlimited
	failAfter   int // frames before returning FailErr, -1 = never
	FailErr     error
	Closed      bool
	waveform    func(frame int, channel int) float32
}

// NewMockSource creates a mock source producing totalFrames frames.
// waveform returns the sample for a frame index and channel.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		failAfter:   -1,
		waveform:    waveform,
	}
}

// NewRampSource produces frame*channels+channel scaled by step, so every
// sample of the stream is distinct and its position can be recomputed.
func NewRampSource(sampleRate, channels, totalFrames int, step float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		return float32(frame*channels+channel) * step
	})
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// WithChunk limits every ReadFrames call to at most frames frames, the way
// real decoders hand out one packet at a time.
func (m *MockSource) WithChunk(frames int) *MockSource {
	m.maxChunk = frames
	return m
}

// WithFailure makes ReadFrames return err once frames frames were produced.
func (m *MockSource) WithFailure(frames int, err error) *MockSource {
	m.failAfter = frames
	m.FailErr = err
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { m.Closed = true; return nil }

// Generated reports how many frames were produced so far.
func (m *MockSource) Generated() int { return m.generated }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadFrames(dst []float32) (int, error) {
	if len(dst)%m.channels != 0 {
		return 0, ErrDstSize
	}
	if m.failAfter >= 0 && m.generated >= m.failAfter {
		return 0, m.FailErr
	}
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalFrames-m.generated)
	if m.maxChunk > 0 {
		frames = min(frames, m.maxChunk)
	}
	if m.failAfter >= 0 {
		frames = min(frames, m.failAfter-m.generated)
	}

	for frame := range frames {
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(m.generated+frame, ch)
		}
	}
	m.generated += frames

	return frames, nil
}

// CollectSink records every frame written to it.
type CollectSink struct {
	Samples []float32
	Calls   int
	Err     error // returned by WriteFrames when set
}

func (c *CollectSink) WriteFrames(samples []float32) error {
	if c.Err != nil {
		return c.Err
	}
	c.Calls++
	c.Samples = append(c.Samples, samples...)
	return nil
}
