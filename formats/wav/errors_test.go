package wav

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrNotWavFile", ErrNotWavFile, "not a WAV file"},
		{"ErrUnsupportedWavLayout", ErrUnsupportedWavLayout, "unsupported WAV layout"},
		{"ErrNotPCM", ErrNotPCM, "only integer PCM WAV is supported"},
		{"ErrUnsupportedBitDepth", ErrUnsupportedBitDepth, "only 16, 24 and 32-bit PCM supported"},
		{"ErrInvalidFrame", ErrInvalidFrame, "sample count is not a multiple of channels"},
		{"ErrEncoderClosed", ErrEncoderClosed, "encoder closed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.want)
			}
		})
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	allErrors := []error{
		ErrNotWavFile,
		ErrUnsupportedWavLayout,
		ErrNotPCM,
		ErrUnsupportedBitDepth,
		ErrInvalidFrame,
		ErrEncoderClosed,
	}

	for i, err := range allErrors {
		wrapped := fmt.Errorf("decode input.wav: %w", err)
		for j, other := range allErrors {
			if got := errors.Is(wrapped, other); got != (i == j) {
				t.Errorf("errors.Is(wrapped %v, %v) = %v", err, other, got)
			}
		}
	}
}
