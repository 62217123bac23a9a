package utils

import "math"

// FullScale returns the largest positive sample value for a signed
// fixed-point representation of the given bit depth: (1 << (bitDepth-1)) - 1.
func FullScale(bitDepth int) float64 {
	return float64(int64(1)<<(bitDepth-1) - 1)
}

// FloatToInt converts one normalized float sample to its fixed-point value
// at the given bit depth. Input is clamped to [-1, 1] before scaling.
func FloatToInt(x float32, bitDepth int) int {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int(math.Round(float64(x) * FullScale(bitDepth)))
}

// IntToFloat converts one fixed-point sample at the given bit depth back to
// a normalized float. Inverse of FloatToInt up to half a scale step.
func IntToFloat(v int, bitDepth int) float32 {
	return float32(float64(v) / FullScale(bitDepth))
}
