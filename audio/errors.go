// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize  = errors.New("dst size must be multiple of channels")
	ErrInvalidChannels = errors.New("channel count must be positive")
	ErrChannelMismatch = errors.New("source and frame buffer channel counts differ")
	ErrUnknownFormat   = errors.New("unknown audio format")
)

// FormatError reports a format key with no registered decoder.
type FormatError struct {
	Format string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unsupported format: %q", e.Format)
}

func (e *FormatError) Unwrap() error { return ErrUnknownFormat }
