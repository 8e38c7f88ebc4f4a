// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
// Vorbis is a free, open-source lossy audio compression format.
//
// # Decoding Vorbis Files
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096*source.Channels())
//	n, err := source.ReadFrames(buf)
//
// The decoder writes float32 samples straight into buf, so filling a frame
// buffer segment with audio.Fill involves no intermediate copy. Samples are
// clamped to [-1.0, 1.0].
//
// # Output Format
//
//   - Channels: as encoded in the stream
//   - Sample rate: as encoded in the stream
//
// Vorbis is decode-only here; encoding is not supported.
package vorbis
