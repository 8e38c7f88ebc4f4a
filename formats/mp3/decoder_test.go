package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audfb/audio"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate   int
	samples      []int16 // PCM samples (16-bit stereo)
	offset       int     // in bytes
	chunk        int     // max bytes per Read, 0 = unlimited
	returnErrors bool
	emptyReads   int // Read calls returning 0, nil before data flows
}

func (m *mockMP3Reader) SampleRate() int {
	return m.sampleRate
}

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}
	if m.emptyReads > 0 {
		m.emptyReads--
		return 0, nil
	}

	raw := make([]byte, len(m.samples)*2)
	for i, s := range m.samples {
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(s))
	}
	if m.offset >= len(raw) {
		return 0, io.EOF
	}

	// Unlike a real file, chunk boundaries may split samples and frames.
	n := len(buf)
	if m.chunk > 0 {
		n = min(n, m.chunk)
	}
	n = copy(buf[:n], raw[m.offset:])
	m.offset += n

	if m.offset >= len(raw) {
		return n, io.EOF
	}
	return n, nil
}

func newTestSource(m *mockMP3Reader) *source {
	return &source{dec: m, sampleRate: m.sampleRate}
}

func readAll(t *testing.T, s *source, bufFrames int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, bufFrames*channels)
	for range 100000 {
		n, err := s.ReadFrames(buf)
		out = append(out, buf[:n*channels]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadFrames() error = %v", err)
		}
	}
	t.Fatal("ReadFrames() never reached EOF")
	return nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	// Invalid MP3 data
	invalidData := []byte("This is not MP3 data")

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader(invalidData))

	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte{}))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockMP3Reader{sampleRate: 44100})

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestSource_ReadFrames(t *testing.T) {
	t.Parallel()

	testSamples := []int16{0, 16384, -16384, -32768, 32767, 100}
	src := newTestSource(&mockMP3Reader{sampleRate: 44100, samples: testSamples})

	dst := make([]float32, 8)
	n, err := src.ReadFrames(dst)
	if err != nil {
		t.Fatalf("ReadFrames() error = %v", err)
	}
	if n != 3 {
		t.Fatalf("ReadFrames() n = %d, want 3", n)
	}

	for i, s := range testSamples {
		if want := float32(s) / 32768; dst[i] != want {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}

	if n, err := src.ReadFrames(dst); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadFrames() at end = %d, %v; want 0, EOF", n, err)
	}
}

// TestSource_SplitFrames feeds the decoder output in chunks that cut
// through samples and frames.
func TestSource_SplitFrames(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 2*257)
	for i := range samples {
		samples[i] = int16(i*97 - 20000)
	}

	for _, chunk := range []int{1, 3, 5, 6, 7, 4096} {
		for _, bufFrames := range []int{1, 2, 64} {
			src := newTestSource(&mockMP3Reader{sampleRate: 48000, samples: samples, chunk: chunk})

			got := readAll(t, src, bufFrames)
			if len(got) != len(samples) {
				t.Fatalf("chunk %d, buf %d: read %d samples, want %d", chunk, bufFrames, len(got), len(samples))
			}
			for i, s := range samples {
				if want := float32(s) / 32768; got[i] != want {
					t.Fatalf("chunk %d, buf %d: sample %d = %v, want %v", chunk, bufFrames, i, got[i], want)
				}
			}
		}
	}
}

func TestSource_TrailingPartialFrameDropped(t *testing.T) {
	t.Parallel()

	// Three samples: one whole stereo frame and half of the next.
	src := newTestSource(&mockMP3Reader{sampleRate: 8000, samples: []int16{1, 2, 3}})

	if got := len(readAll(t, src, 4)); got != 2 {
		t.Errorf("read %d samples, want 2", got)
	}
}

func TestSource_ReadFrames_Error(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockMP3Reader{sampleRate: 8000, returnErrors: true})

	_, err := src.ReadFrames(make([]float32, 4))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadFrames() error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestSource_ReadFrames_EmptyReads(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockMP3Reader{sampleRate: 8000, samples: []int16{5, 6}, emptyReads: 3})
	if n, err := src.ReadFrames(make([]float32, 2)); n != 1 || err != nil {
		t.Errorf("ReadFrames() = %d, %v; want 1, nil", n, err)
	}

	stuck := newTestSource(&mockMP3Reader{sampleRate: 8000, samples: []int16{5, 6}, emptyReads: 1000})
	if _, err := stuck.ReadFrames(make([]float32, 2)); !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("ReadFrames() error = %v, want ErrNoProgress", err)
	}
}

func TestSource_ReadFrames_InvalidDst(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockMP3Reader{sampleRate: 8000, samples: []int16{1, 2}})

	if _, err := src.ReadFrames(make([]float32, 3)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadFrames() error = %v, want ErrInvalidDstSize", err)
	}
	if n, err := src.ReadFrames(nil); n != 0 || err != nil {
		t.Errorf("ReadFrames(nil) = %d, %v", n, err)
	}
}

func TestSource_BufferGrowsWithCarry(t *testing.T) {
	t.Parallel()

	samples := []int16{1, 2, 3, 4, 5, 6, 7, 8}
	src := newTestSource(&mockMP3Reader{sampleRate: 8000, samples: samples, chunk: 6})
	src.buf = make([]byte, 8)

	// 6 bytes: one frame plus half a frame carried over.
	if n, err := src.ReadFrames(make([]float32, 4)); n != 1 || err != nil {
		t.Fatalf("ReadFrames() = %d, %v; want 1, nil", n, err)
	}

	// A larger dst forces a new buffer; the carried bytes must survive.
	dst := make([]float32, 64)
	n, err := src.ReadFrames(dst)
	if n != 2 || err != nil {
		t.Fatalf("ReadFrames() = %d, %v; want 2, nil", n, err)
	}
	if dst[0] != 3.0/32768 || dst[3] != 6.0/32768 {
		t.Errorf("frames = %v", dst[:4])
	}
}

func BenchmarkSource_ReadFrames(b *testing.B) {
	samples := make([]int16, 8192)
	dst := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		src := newTestSource(&mockMP3Reader{sampleRate: 44100, samples: samples})
		for {
			if _, err := src.ReadFrames(dst); err != nil {
				break
			}
		}
	}
}
