// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/audfb/formats/aiff"
)

// Example_errorHandling shows how to detect non-AIFF input.
func Example_errorHandling() {
	decoder := aiff.Decoder{}

	_, err := decoder.Decode(bytes.NewReader([]byte("RIFF....WAVEfmt ")))
	if errors.Is(err, aiff.ErrNotAiffFile) {
		fmt.Println("Not an AIFF file")
	}
	// Output:
	// Not an AIFF file
}
