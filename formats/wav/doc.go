// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Both directions use the github.com/go-audio/wav library for RIFF
// handling. Integer PCM at 16, 24 and 32 bits is supported, with any
// channel count and sample rate.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096*source.Channels())
//	n, err := source.ReadFrames(buf)
//
// Inputs that cannot seek are read into memory first.
//
// # Writing WAV Files
//
// Encoder is an audio.Sink, so a frame buffer drains straight into it:
//
//	file, _ := os.Create("output.wav")
//	enc, err := wav.NewEncoder(file, 48000, 2, 24)
//	_, err = audio.Drain(reader, enc, 0)
//	err = enc.Close()
//
// Close patches the RIFF sizes into the header and leaves the file open.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrNotPCM: the data is compressed or floating point
//   - ErrUnsupportedBitDepth: the sample width is not 16, 24 or 32 bits
//   - ErrUnsupportedWavLayout: the header is missing required fields
package wav
