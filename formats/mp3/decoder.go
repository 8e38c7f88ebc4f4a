// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audfb/audio"
)

// go-mp3 always decodes to interleaved stereo signed 16-bit little-endian.
const (
	channels      = 2
	bytesPerFrame = channels * 2

	maxEmptyReads = 100
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// carry holds the first bytes of a frame the decoder has not finished.
	carry int
	err   error
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadFrames(dst []float32) (int, error) {
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	bytesNeeded := len(dst) / channels * bytesPerFrame
	if cap(s.buf) < bytesNeeded {
		buf := make([]byte, bytesNeeded)
		copy(buf, s.buf[:s.carry])
		s.buf = buf
	}
	s.buf = s.buf[:bytesNeeded]

	have := s.carry
	for empty := 0; have < bytesPerFrame && s.err == nil; {
		n, err := s.dec.Read(s.buf[have:])
		have += n
		switch {
		case err != nil:
			s.err = err
		case n > 0:
			empty = 0
		default:
			empty++
			if empty >= maxEmptyReads {
				s.err = io.ErrNoProgress
			}
		}
	}

	frames := have / bytesPerFrame
	for i := range frames * channels {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = float32(v) / 32768.0
	}

	// Move the partial frame to the front for the next call.
	s.carry = copy(s.buf, s.buf[frames*bytesPerFrame:have])

	if frames > 0 {
		return frames, nil
	}
	if s.err != nil && !errors.Is(s.err, io.EOF) {
		return 0, s.err
	}
	return 0, io.EOF
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
