//go:build unix

// SPDX-License-Identifier: EPL-2.0

package shm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"
)

// Options configures Create.
type Options struct {
	// Dir holds the backing file. Defaults to DefaultDir().
	Dir string
	// Name of the backing file. Defaults to "audfb-<uuid>".
	Name string
	// Size in bytes, required.
	Size int
}

// Region is a mapped shared memory file.
type Region struct {
	mu   sync.Mutex
	path string
	file *os.File
	data []byte
}

// DefaultDir returns /dev/shm when available, the temporary directory
// otherwise.
func DefaultDir() string {
	if info, err := os.Stat("/dev/shm"); err == nil && info.IsDir() {
		return "/dev/shm"
	}
	return os.TempDir()
}

// Create creates (or truncates) the backing file and maps it. The mapping is
// zero filled.
func Create(opts Options) (*Region, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("size %d: %w", opts.Size, ErrInvalidSize)
	}
	if opts.Dir == "" {
		opts.Dir = DefaultDir()
	}
	if opts.Name == "" {
		opts.Name = "audfb-" + uuid.NewString()
	}

	path := filepath.Join(opts.Dir, opts.Name)
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create shared memory file: %w", err)
	}

	if err := unix.Ftruncate(int(file.Fd()), int64(opts.Size)); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("truncate shared memory file: %w", err)
	}

	r, err := mapFile(path, file, opts.Size)
	if err != nil {
		_ = os.Remove(path)
		return nil, err
	}
	return r, nil
}

// Open maps an existing backing file in full.
func Open(path string) (*Region, error) {
	path = filepath.Clean(path)
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open shared memory file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("stat shared memory file: %w", err)
	}
	if info.Size() == 0 {
		_ = file.Close()
		return nil, ErrEmptyFile
	}

	return mapFile(path, file, int(info.Size()))
}

func mapFile(path string, file *os.File, size int) (*Region, error) {
	data, err := unix.Mmap(int(file.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("mmap shared memory file: %w", err)
	}

	return &Region{path: path, file: file, data: data}, nil
}

// Bytes returns the mapped memory. It is page aligned.
func (r *Region) Bytes() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.data
}

// Path returns the backing file path, which another party passes to Open.
func (r *Region) Path() string { return r.path }

// Size returns the mapped length in bytes.
func (r *Region) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.data)
}

// Close unmaps the memory and closes the backing file. The file itself is
// left in place. Every view derived from Bytes becomes invalid.
func (r *Region) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return ErrClosed
	}

	var err error
	if r.data != nil {
		if unmapErr := unix.Munmap(r.data); unmapErr != nil {
			err = fmt.Errorf("munmap shared memory: %w", unmapErr)
		}
		r.data = nil
	}
	if closeErr := r.file.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("close shared memory file: %w", closeErr)
	}
	r.file = nil

	return err
}

// Remove closes the region and deletes the backing file. Only the owner of
// the region should call it.
func (r *Region) Remove() error {
	err := r.Close()
	if err != nil && !errors.Is(err, ErrClosed) {
		return err
	}
	if rmErr := os.Remove(r.path); rmErr != nil && !os.IsNotExist(rmErr) {
		return fmt.Errorf("remove shared memory file: %w", rmErr)
	}
	return nil
}
