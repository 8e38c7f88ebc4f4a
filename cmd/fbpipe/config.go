// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ik5/audfb"
	"gopkg.in/yaml.v3"
)

var errInvalidConfig = errors.New("invalid configuration")

// config holds the tunables that may come from a YAML file. Flags given on
// the command line win over the file.
type config struct {
	Capacity int           `yaml:"capacity"`  // frame buffer size in frames
	Chunk    int           `yaml:"chunk"`     // frames per sink call
	BitDepth int           `yaml:"bit_depth"` // output WAV sample width
	Backoff  time.Duration `yaml:"backoff"`   // idle sleep, e.g. "500us"
	Shm      bool          `yaml:"shm"`       // back the buffer with a shared memory file
	ShmDir   string        `yaml:"shm_dir"`
}

func defaultConfig() config {
	return config{
		Capacity: audfb.DefaultCapacityFrames,
		Chunk:    audfb.DefaultChunkFrames,
		BitDepth: 16,
		Backoff:  audfb.DefaultBackoff,
	}
}

// loadConfig reads path over the defaults. An empty path yields the
// defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func (c config) validate() error {
	switch {
	case c.Capacity <= 0:
		return fmt.Errorf("capacity %d: %w", c.Capacity, errInvalidConfig)
	case c.Chunk <= 0:
		return fmt.Errorf("chunk %d: %w", c.Chunk, errInvalidConfig)
	case c.BitDepth != 16 && c.BitDepth != 24 && c.BitDepth != 32:
		return fmt.Errorf("bit depth %d: %w", c.BitDepth, errInvalidConfig)
	case c.Backoff <= 0:
		return fmt.Errorf("backoff %s: %w", c.Backoff, errInvalidConfig)
	}
	return nil
}

func (c config) options() audfb.Options {
	return audfb.Options{
		CapacityFrames: c.Capacity,
		ChunkFrames:    c.Chunk,
		Backoff:        c.Backoff,
	}
}
