// SPDX-License-Identifier: EPL-2.0

package audfb_test

import (
	"context"
	"fmt"

	"github.com/ik5/audfb"
	"github.com/ik5/audfb/audio"
	"github.com/ik5/audfb/internal/audiotest"
)

// Example_transcode streams one second of stereo audio through a small
// frame buffer to a sink that measures the peak level.
func Example_transcode() {
	src := audiotest.NewSineSource(8000, 2, 8000, 440.0)

	var peak float32
	sink := audio.SinkFunc(func(samples []float32) error {
		for _, s := range samples {
			peak = max(peak, s)
		}
		return nil
	})

	stats, err := audfb.Transcode(context.Background(), src, sink, audfb.Options{
		CapacityFrames: 1024,
		ChunkFrames:    256,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Frames written: %d\n", stats.Written)
	fmt.Printf("Frames read: %d\n", stats.Read)
	fmt.Printf("Peak: %.2f\n", peak)
	// Output:
	// Frames written: 8000
	// Frames read: 8000
	// Peak: 1.00
}
