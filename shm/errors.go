// SPDX-License-Identifier: EPL-2.0

package shm

import "errors"

var (
	ErrInvalidSize = errors.New("shared memory size must be positive")
	ErrEmptyFile   = errors.New("shared memory file has zero size")
	ErrClosed      = errors.New("shared memory region is closed")
)
