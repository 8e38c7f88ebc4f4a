package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audfb/audio"
	"github.com/jfreymuth/oggvorbis"
)

const maxEmptyReads = 100

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// source decodes straight into dst; oggvorbis already produces float32.
type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	pending    []float32 // samples of an incomplete frame
	err        error
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadFrames(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	// Read returns a count of values, which is normally a whole number
	// of frames. The carry covers readers that stop mid-frame.
	filled := copy(dst, s.pending)
	s.pending = s.pending[:0]

	for empty := 0; filled < s.channels && s.err == nil; {
		n, err := s.dec.Read(dst[filled:])
		filled += n
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

	if rem := filled % s.channels; rem > 0 {
		if s.err == nil {
			s.pending = append(s.pending, dst[filled-rem:filled]...)
		}
		filled -= rem
	}

	// Vorbis synthesis can overshoot full scale slightly.
	for i, v := range dst[:filled] {
		if v > 1 {
			dst[i] = 1
		} else if v < -1 {
			dst[i] = -1
		}
	}

	if frames := filled / s.channels; frames > 0 {
		return frames, nil
	}
	if s.err != nil && !errors.Is(s.err, io.EOF) {
		return 0, s.err
	}
	return 0, io.EOF
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return newSource(dec)
}

func newSource(dec oggReader) (*source, error) {
	if dec.Channels() <= 0 {
		return nil, fmt.Errorf("%d channels: %w", dec.Channels(), audio.ErrInvalidChannels)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		pending:    make([]float32, 0, dec.Channels()),
	}, nil
}
