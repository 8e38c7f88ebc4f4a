// SPDX-License-Identifier: EPL-2.0

// Command fbpipe decodes an audio file into a frame buffer on one goroutine
// and drains it into a WAV file on another.
//
// Usage:
//
//	fbpipe -in song.mp3 -out song.wav [-config fbpipe.yaml] [-capacity 4096]
//	       [-chunk 512] [-bits 16] [-backoff 1ms] [-shm] [-v]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ik5/audfb"
	"github.com/ik5/audfb/audio"
	"github.com/ik5/audfb/formats/aiff"
	"github.com/ik5/audfb/formats/mp3"
	"github.com/ik5/audfb/formats/vorbis"
	"github.com/ik5/audfb/formats/wav"
	"github.com/ik5/audfb/framebuffer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errUsage = errors.New("usage: fbpipe -in <input.{wav|mp3|ogg|aiff}> -out <output.wav>")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stderr)
	stop()

	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "fbpipe:", err)
		}
		os.Exit(1)
	}
}

type cliArgs struct {
	in, out    string
	configPath string
	verbose    bool
}

// parseArgs applies flags over the configuration file.
func parseArgs(args []string, stderr io.Writer) (cliArgs, config, error) {
	var a cliArgs
	fs := flag.NewFlagSet("fbpipe", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&a.in, "in", "", "input audio file")
	fs.StringVar(&a.out, "out", "", "output WAV file")
	fs.StringVar(&a.configPath, "config", "", "YAML configuration file")
	fs.BoolVar(&a.verbose, "v", false, "debug logging")

	def := defaultConfig()
	capacity := fs.Int("capacity", def.Capacity, "frame buffer capacity in frames")
	chunk := fs.Int("chunk", def.Chunk, "frames handed to the encoder per call")
	bits := fs.Int("bits", def.BitDepth, "output bit depth (16, 24 or 32)")
	backoff := fs.Duration("backoff", def.Backoff, "sleep when the buffer is full or empty")
	useShm := fs.Bool("shm", false, "back the frame buffer with a shared memory file")

	if err := fs.Parse(args); err != nil {
		return a, config{}, err
	}
	if a.in == "" || a.out == "" {
		return a, config{}, errUsage
	}

	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return a, cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "capacity":
			cfg.Capacity = *capacity
		case "chunk":
			cfg.Chunk = *chunk
		case "bits":
			cfg.BitDepth = *bits
		case "backoff":
			cfg.Backoff = *backoff
		case "shm":
			cfg.Shm = *useShm
		}
	})

	return a, cfg, cfg.validate()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zc.Build()
}

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	return reg
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	a, cfg, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	logger, err := newLogger(a.verbose)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return pipe(ctx, logger, a, cfg)
}

func pipe(ctx context.Context, logger *zap.Logger, a cliArgs, cfg config) error {
	reg := newRegistry()
	dec, err := reg.Lookup(a.in)
	if err != nil {
		return fmt.Errorf("%w (supported: %s)", err, strings.Join(reg.Formats(), ", "))
	}

	inFile, err := os.Open(a.in)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer inFile.Close()

	src, err := dec.Decode(inFile)
	if err != nil {
		return fmt.Errorf("decode %s: %w", a.in, err)
	}
	defer src.Close()

	logger.Info("input opened",
		zap.String("path", a.in),
		zap.Int("sample_rate", src.SampleRate()),
		zap.Int("channels", src.Channels()),
	)

	outFile, err := os.Create(a.out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer outFile.Close()

	enc, err := wav.NewEncoder(outFile, src.SampleRate(), src.Channels(), cfg.BitDepth)
	if err != nil {
		return fmt.Errorf("encoder: %w", err)
	}

	opts := cfg.options()
	if cfg.Shm {
		size, err := framebuffer.RegionSize(framebuffer.Params{FrameCount: cfg.Capacity, ChannelCount: src.Channels()})
		if err != nil {
			return fmt.Errorf("region size: %w", err)
		}
		mem, release, err := sharedRegion(cfg.ShmDir, size)
		if err != nil {
			return err
		}
		defer release()
		opts.Region = mem
		logger.Debug("shared memory region mapped", zap.Int("bytes", size))
	}

	logger.Debug("starting pipeline",
		zap.Int("capacity", opts.CapacityFrames),
		zap.Int("chunk", opts.ChunkFrames),
		zap.Duration("backoff", opts.Backoff),
		zap.Int("bit_depth", cfg.BitDepth),
	)

	start := time.Now()
	stats, err := audfb.Transcode(ctx, src, enc, opts)
	if cerr := enc.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.Error("pipeline failed",
			zap.Error(err),
			zap.Uint64("frames_written", stats.Written),
			zap.Uint64("frames_read", stats.Read),
		)
		return err
	}

	logger.Info("done",
		zap.String("path", a.out),
		zap.Uint64("frames", stats.Read),
		zap.Duration("audio", time.Duration(stats.Read)*time.Second/time.Duration(src.SampleRate())),
		zap.Duration("elapsed", time.Since(start)),
	)
	if stats.Written != stats.Read {
		return fmt.Errorf("wrote %d frames but read %d", stats.Written, stats.Read)
	}
	return nil
}
