// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/audfb/internal/pcmsource"
	"github.com/ik5/audfb/utils"
)

// Encoder writes interleaved float32 frames as integer PCM WAV. It is an
// audio.Sink, so a frame buffer can be drained straight into it.
type Encoder struct {
	enc      *gowav.Encoder
	buf      *goaudio.IntBuffer
	channels int
	bitDepth int
	frames   int64
	closed   bool
}

// NewEncoder starts a WAV stream on w. The header is patched with the final
// sizes by Close, which is why w must be seekable.
func NewEncoder(w io.WriteSeeker, sampleRate, channels, bitDepth int) (*Encoder, error) {
	if !pcmsource.Supported(bitDepth) {
		return nil, fmt.Errorf("%d bits: %w", bitDepth, ErrUnsupportedBitDepth)
	}
	if channels <= 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("%d Hz, %d channels: %w", sampleRate, channels, ErrUnsupportedWavLayout)
	}

	return &Encoder{
		enc: gowav.NewEncoder(w, sampleRate, bitDepth, channels, wavFormatPCM),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: bitDepth,
		},
		channels: channels,
		bitDepth: bitDepth,
	}, nil
}

// WriteFrames encodes samples, which must hold whole frames.
func (e *Encoder) WriteFrames(samples []float32) error {
	if e.closed {
		return ErrEncoderClosed
	}
	if len(samples)%e.channels != 0 {
		return fmt.Errorf("%d samples, %d channels: %w", len(samples), e.channels, ErrInvalidFrame)
	}

	if cap(e.buf.Data) < len(samples) {
		e.buf.Data = make([]int, len(samples))
	}
	e.buf.Data = e.buf.Data[:len(samples)]
	for i, s := range samples {
		e.buf.Data[i] = utils.Float32ToInt(s, e.bitDepth)
	}

	if err := e.enc.Write(e.buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	e.frames += int64(len(samples) / e.channels)
	return nil
}

// Frames returns the number of frames written so far.
func (e *Encoder) Frames() int64 { return e.frames }

// Close finalizes the header. It does not close the underlying writer.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	if e.frames == 0 {
		// The header is emitted on the first write.
		e.buf.Data = e.buf.Data[:0]
		if err := e.enc.Write(e.buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	if err := e.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
