// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/audfb/formats/vorbis"
)

// ExampleDecoder_Decode shows how to decode an Ogg Vorbis file.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := vorbis.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	buf := make([]float32, 4096*src.Channels())
	n, err := src.ReadFrames(buf)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Read %d frames of %d channels at %d Hz\n", n, src.Channels(), src.SampleRate())
}
