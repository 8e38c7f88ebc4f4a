//go:build unix

// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/ik5/audfb/shm"
)

// sharedRegion maps a fresh shared memory file of size bytes. release
// unmaps and unlinks it.
func sharedRegion(dir string, size int) ([]byte, func(), error) {
	region, err := shm.Create(shm.Options{Dir: dir, Size: size})
	if err != nil {
		return nil, nil, fmt.Errorf("shared memory: %w", err)
	}
	return region.Bytes(), func() { _ = region.Remove() }, nil
}
