// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
//
// # Decoding MP3 Files
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096*source.Channels())
//	n, err := source.ReadFrames(buf)
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: always 2, mono files are duplicated by go-mp3
//   - Sample rate: that of the file (typically 44.1kHz or 48kHz)
//
// go-mp3 hands out bytes, not frames. When a read ends inside a frame the
// leftover bytes are kept and completed by the next read.
//
// # Limitations
//
//   - MP3 writing is not supported (decoding only)
//   - A decoder that keeps returning no data fails with io.ErrNoProgress
package mp3
