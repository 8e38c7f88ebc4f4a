// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"sync"
	"testing"
)

func TestRingSource_EOFAfterCloseWrite(t *testing.T) {
	t.Parallel()

	r, w := newPipe(t, 8, 2)
	src := NewRingSource(r, 22050)

	if src.SampleRate() != 22050 || src.Channels() != 2 {
		t.Fatalf("format = %d Hz/%d ch", src.SampleRate(), src.Channels())
	}

	buf := make([]float32, 4)
	if n, err := src.ReadFrames(buf); n != 0 || err != nil {
		t.Fatalf("empty ReadFrames() = %d, %v; want 0, nil", n, err)
	}

	if _, err := w.WriteFrom([]float32{1, 2, 3, 4, 5, 6}); err != nil {
		t.Fatal(err)
	}
	src.CloseWrite()

	n, err := src.ReadFrames(buf)
	if n != 2 || err != nil {
		t.Fatalf("ReadFrames() = %d, %v; want 2, nil", n, err)
	}
	n, err = src.ReadFrames(buf)
	if n != 1 || err != nil {
		t.Fatalf("ReadFrames() = %d, %v; want 1, nil", n, err)
	}
	if !slices.Equal(buf[:2], []float32{5, 6}) {
		t.Errorf("last frame = %v", buf[:2])
	}

	n, err = src.ReadFrames(buf)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Fatalf("ReadFrames() = %d, %v; want 0, EOF", n, err)
	}
}

func TestRingSource_InvalidDst(t *testing.T) {
	t.Parallel()

	r, _ := newPipe(t, 8, 2)
	src := NewRingSource(r, 8000)

	if _, err := src.ReadFrames(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadFrames() error = %v, want ErrInvalidDstSize", err)
	}
	if n, err := src.ReadFrames(nil); n != 0 || err != nil {
		t.Errorf("ReadFrames(nil) = %d, %v", n, err)
	}
}

func TestRingSource_ConcurrentProducer(t *testing.T) {
	t.Parallel()

	const frames = 20000
	r, w := newPipe(t, 128, 1)
	src := NewRingSource(r, 8000)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer src.CloseWrite()

		next := 0
		chunk := make([]float32, 37)
		for next < frames {
			k := min(len(chunk), frames-next)
			for i := range k {
				chunk[i] = float32(next + i)
			}
			n, err := w.WriteFrom(chunk[:k])
			if err != nil {
				t.Error(err)
				return
			}
			next += n
		}
	}()

	got := make([]float32, 0, frames)
	buf := make([]float32, 50)
	for {
		n, err := src.ReadFrames(buf)
		got = append(got, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	wg.Wait()

	if len(got) != frames {
		t.Fatalf("read %d frames, want %d", len(got), frames)
	}
	for i, v := range got {
		if v != float32(i) {
			t.Fatalf("frame %d = %v", i, v)
		}
	}
}
