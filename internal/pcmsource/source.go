// SPDX-License-Identifier: EPL-2.0

// Package pcmsource adapts the go-audio integer PCM decoders to
// audio.Source.
package pcmsource

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audfb/audio"
	"github.com/ik5/audfb/utils"
)

// ErrUnsupportedBitDepth is returned for bit depths other than 16, 24 and 32.
var ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")

// PCMReader is the part of the go-audio wav and aiff decoders used here.
type PCMReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source reads integer PCM and hands out normalized float32 frames.
// Samples of a frame split across two PCMBuffer calls are kept until the
// frame is complete.
type Source struct {
	dec        PCMReader
	closer     io.Closer
	sampleRate int
	channels   int
	bitDepth   int

	intBuf  *goaudio.IntBuffer
	pending []float32
	eof     bool
	err     error
}

// Supported reports whether bitDepth can be normalized.
func Supported(bitDepth int) bool {
	switch bitDepth {
	case 16, 24, 32:
		return true
	}
	return false
}

// New wraps dec. closer may be nil.
func New(dec PCMReader, closer io.Closer, sampleRate, channels, bitDepth int) (*Source, error) {
	if !Supported(bitDepth) {
		return nil, fmt.Errorf("%d bits: %w", bitDepth, ErrUnsupportedBitDepth)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("%d channels: %w", channels, audio.ErrInvalidChannels)
	}
	return &Source{
		dec:        dec,
		closer:     closer,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
		intBuf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: bitDepth,
		},
		pending: make([]float32, 0, channels),
	}, nil
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BitDepth() int   { return s.bitDepth }

func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *Source) ReadFrames(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	filled := 0
	for filled < s.channels && !s.eof && s.err == nil {
		// Leftover samples of an incomplete frame go first.
		filled += copy(dst[filled:], s.pending)
		s.pending = s.pending[:0]

		want := len(dst) - filled
		if cap(s.intBuf.Data) < want {
			s.intBuf.Data = make([]int, want)
		}
		s.intBuf.Data = s.intBuf.Data[:want]

		n, err := s.dec.PCMBuffer(s.intBuf)
		switch {
		case errors.Is(err, io.EOF), n == 0 && err == nil:
			s.eof = true
		case err != nil:
			s.err = err
		}

		for _, v := range s.intBuf.Data[:n] {
			dst[filled] = utils.IntToFloat32(v, s.bitDepth)
			filled++
		}

		// Hold back a trailing partial frame. One left at the end of the
		// stream is dropped.
		if rem := filled % s.channels; rem > 0 {
			if !s.eof && s.err == nil {
				s.pending = append(s.pending, dst[filled-rem:filled]...)
			}
			filled -= rem
		}
	}

	frames := filled / s.channels
	if frames > 0 {
		return frames, nil
	}
	if s.err != nil {
		return 0, s.err
	}
	return 0, io.EOF
}
