// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// fullScale is 2^(bitDepth-1). Unknown depths fall back to 16-bit.
func fullScale(bitDepth int) float64 {
	if bitDepth < 8 || bitDepth > 32 {
		bitDepth = 16
	}
	return float64(int64(1) << (bitDepth - 1))
}

// FloatToInt converts a sample in [-1, 1] to signed PCM of the given bit
// depth, rounding to nearest and clamping to the representable range.
func FloatToInt(x float64, bitDepth int) int {
	scale := fullScale(bitDepth)

	if math.IsNaN(x) {
		return 0
	}

	v := math.Round(x * scale)
	if v > scale-1 {
		v = scale - 1
	} else if v < -scale {
		v = -scale
	}
	return int(v)
}

// IntToFloat converts signed PCM of the given bit depth to [-1, 1).
func IntToFloat(v int, bitDepth int) float64 {
	return float64(v) / fullScale(bitDepth)
}
