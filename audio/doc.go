// SPDX-License-Identifier: EPL-2.0

// Package audio connects decoders to frame buffers.
//
// # Source Interface
//
// A Source produces interleaved float32 frames:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadFrames(dst []float32) (int, error)
//	    Close() error
//	}
//
// ReadFrames counts frames, not samples, and never returns a partial frame.
// All decoders under formats/ implement it.
//
// # Filling and Draining
//
// Fill decodes straight into the free segments of a framebuffer.Writer, so
// samples are written once and never copied through a staging slice:
//
//	n, err := audio.Fill(w, source)
//
// Drain hands readable segments of a framebuffer.Reader to a Sink. Frames
// stay in the buffer until the sink accepts them:
//
//	n, err := audio.Drain(r, sink, 1024)
//
// Pump runs Fill in a loop on the producer goroutine until the source ends
// or the context is canceled. RingSource turns the consumer side back into
// a Source for code that wants a pull API.
//
// # Format Registry
//
// The registry maps format keys to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.Lookup("input.wav")
//
// # Sample Format
//
// Samples are float32 in the range [-1.0, 1.0], interleaved by channel:
//
//	[L0 R0 L1 R1 L2 R2 ...]
//
// # Error Handling
//
// Sources return io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadFrames(buf)
//	    // process n frames from buf
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
