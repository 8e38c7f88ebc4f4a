// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// # Supported Formats
//
//   - PCM 16, 24 and 32-bit
//   - Any channel count
//   - Any sample rate
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("audio.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096*source.Channels())
//	n, err := source.ReadFrames(buf)
//
// Samples come out as float32 normalized to [-1.0, 1.0]. A sample frame
// split across two reads of the underlying decoder is held back until it is
// complete, so ReadFrames never returns a partial frame.
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: 8-bit and compressed AIFF-C are rejected
//   - ErrUnsupportedAiffLayout: the COMM chunk is missing or empty
package aiff
