// SPDX-License-Identifier: EPL-2.0

// Package audfb moves decoded audio between a producer and a consumer
// through a lock-free frame buffer.
//
// The frame buffer itself lives in the framebuffer subpackage: one region
// of memory holding interleaved float32 frames and three counters, shared
// by exactly one Writer and one Reader. Segments of the buffer are handed
// out in place, so a decoder writes straight into it and a renderer reads
// straight out of it.
//
// # Supported Formats
//
// The package supports decoding the following audio formats:
//   - WAV (PCM 16, 24 and 32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16, 24 and 32-bit) via formats/aiff
//
// WAV is also supported as output through wav.Encoder.
//
// # Quick Start
//
// Transcode runs the whole pipeline with a producer and a consumer
// goroutine:
//
//	file, _ := os.Open("audio.mp3")
//	src, _ := mp3.Decoder{}.Decode(file)
//
//	out, _ := os.Create("audio.wav")
//	enc, _ := wav.NewEncoder(out, src.SampleRate(), src.Channels(), 16)
//
//	stats, err := audfb.Transcode(ctx, src, enc, audfb.Options{})
//	_ = enc.Close()
//
// # Building Your Own Pipeline
//
// For more control, drive the buffer with the audio subpackage:
//
//	fb, _ := framebuffer.NewContext(framebuffer.Params{FrameCount: 4096, ChannelCount: 2})
//	r, w := framebuffer.NewReader(fb), framebuffer.NewWriter(fb)
//
//	go audio.Pump(context.Background(), src, w, time.Millisecond) // producer
//	n, err := audio.Drain(r, sink, 512)                          // consumer
//
// # Shared Memory
//
// On unix systems the shm subpackage maps a file so that the same buffer
// layout can be attached from a second mapping:
//
//	size, _ := framebuffer.RegionSize(params)
//	region, _ := shm.Create(shm.Options{Size: size})
//	fb, _ := framebuffer.NewContextOver(region.Bytes(), params)
//
// See the individual subpackages for more detailed documentation.
package audfb
