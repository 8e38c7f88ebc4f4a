// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"testing"

	"github.com/ik5/audfb/internal/audiotest"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}
	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}
	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}

	// Format keys are case insensitive.
	if _, ok := registry.Get("WAV"); !ok {
		t.Error("Registry.Get(\"WAV\") did not find \"wav\"")
	}

	if _, ok := registry.Get("flac"); ok {
		t.Error("Registry.Get() found an unregistered format")
	}
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	mp3 := &mockDecoder{name: "mp3"}
	registry.Register("mp3", mp3)
	registry.Register("ogg", &mockDecoder{name: "ogg"})

	tests := []struct {
		path    string
		want    Decoder
		wantErr bool
	}{
		{path: "song.mp3", want: mp3},
		{path: "/music/Song.MP3", want: mp3},
		{path: "take.flac", wantErr: true},
		{path: "noextension", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := registry.Lookup(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("Lookup(%q) error = %v, want ErrUnknownFormat", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) returned the wrong decoder", tt.path)
			}
		})
	}

	var fe *FormatError
	if _, err := registry.Lookup("x.aac"); !errors.As(err, &fe) || fe.Format != "aac" {
		t.Errorf("Lookup(x.aac) error = %v, want *FormatError{aac}", err)
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	if got := registry.Formats(); len(got) != 0 {
		t.Errorf("empty Formats() = %v", got)
	}

	for _, f := range []string{"wav", "ogg", "AIFF", "mp3"} {
		registry.Register(f, &mockDecoder{name: f})
	}

	want := []string{"aiff", "mp3", "ogg", "wav"}
	if got := registry.Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			format := fmt.Sprintf("fmt%d", i%4)
			registry.Register(format, &mockDecoder{name: format})
			_, _ = registry.Get(format)
			_ = registry.Formats()
		}(i)
	}
	wg.Wait()

	if got := len(registry.Formats()); got != 4 {
		t.Errorf("len(Formats()) = %d, want 4", got)
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{name: "wav"})

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_, _ = registry.Get("wav")
	}
}
