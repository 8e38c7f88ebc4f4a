// SPDX-License-Identifier: EPL-2.0

// Package utils holds the sample conversions shared by decoders and encoders.
package utils

func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Float32ToInt scales x to a signed PCM integer of bitDepth bits (8 to 32).
// Values outside [-1, 1] are clamped.
func Float32ToInt(x float32, bitDepth int) int {
	if bitDepth == 16 {
		return int(Float32ToInt16(x))
	}
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// float64 keeps the full 32-bit range exact.
	return int(float64(x) * float64(maxInt(bitDepth)))
}

// IntToFloat32 normalizes a signed PCM integer of bitDepth bits to [-1, 1].
func IntToFloat32(v int, bitDepth int) float32 {
	f := float64(v) / float64(maxInt(bitDepth)+1)
	if f < -1 {
		f = -1
	} else if f > 1 {
		f = 1
	}
	return float32(f)
}

func maxInt(bitDepth int) int64 {
	return int64(1)<<(bitDepth-1) - 1
}
