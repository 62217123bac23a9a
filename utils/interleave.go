// SPDX-License-Identifier: EPL-2.0

package utils

// Interleave copies frames [from, from+frames) of a planar buffer into dst
// in frame-major order. dst must hold at least frames*len(planar) values.
func Interleave(dst []float32, planar [][]float32, from, frames int) {
	channels := len(planar)

	for f := range frames {
		for ch := range channels {
			dst[f*channels+ch] = planar[ch][from+f]
		}
	}
}

// Deinterleave copies frames from a frame-major buffer into a planar buffer
// starting at frame position at. src must hold at least frames*len(planar)
// values.
func Deinterleave(planar [][]float32, at int, src []float32, frames int) {
	channels := len(planar)

	for f := range frames {
		for ch := range channels {
			planar[ch][at+f] = src[f*channels+ch]
		}
	}
}
