// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFullScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		want     float64
	}{
		{bitDepth: 8, want: 127},
		{bitDepth: 16, want: 32767},
		{bitDepth: 24, want: 8388607},
		{bitDepth: 32, want: 2147483647},
	}

	for _, tt := range tests {
		got := FullScale(tt.bitDepth)
		if got != tt.want {
			t.Errorf("FullScale(%d) = %v, want %v", tt.bitDepth, got, tt.want)
		}
	}
}

func TestFloatToInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    float32
		bitDepth int
		want     int
	}{
		{
			name:     "zero",
			input:    0.0,
			bitDepth: 16,
			want:     0,
		},
		{
			name:     "max positive 16",
			input:    1.0,
			bitDepth: 16,
			want:     math.MaxInt16,
		},
		{
			name:     "max negative 16",
			input:    -1.0,
			bitDepth: 16,
			want:     -math.MaxInt16,
		},
		{
			name:     "half positive 16",
			input:    0.5,
			bitDepth: 16,
			want:     16384, // round(32767 * 0.5)
		},
		{
			name:     "clamp over max",
			input:    1.5,
			bitDepth: 16,
			want:     math.MaxInt16,
		},
		{
			name:     "clamp under min",
			input:    -100.0,
			bitDepth: 16,
			want:     -math.MaxInt16,
		},
		{
			name:     "max positive 8",
			input:    1.0,
			bitDepth: 8,
			want:     127,
		},
		{
			name:     "max positive 24",
			input:    1.0,
			bitDepth: 24,
			want:     8388607,
		},
		{
			name:     "max positive 32",
			input:    1.0,
			bitDepth: 32,
			want:     math.MaxInt32,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FloatToInt(tt.input, tt.bitDepth)
			if got != tt.want {
				t.Errorf("FloatToInt(%v, %d) = %v, want %v",
					tt.input, tt.bitDepth, got, tt.want)
			}
		})
	}
}

// TestScaleRoundTrip verifies the quantization error stays within one scale
// step for every supported bit depth.
func TestScaleRoundTrip(t *testing.T) {
	t.Parallel()

	depths := []int{8, 16, 24, 32}

	for _, depth := range depths {
		step := 1.0 / FullScale(depth)

		for f := -1.0; f <= 1.0; f += 0.01 {
			in := float32(f)
			out := IntToFloat(FloatToInt(in, depth), depth)

			if diff := math.Abs(float64(out - in)); diff > step {
				t.Errorf("depth %d: round trip of %v drifted by %v, want <= %v",
					depth, in, diff, step)
			}
		}
	}
}

// TestFloatToIntSymmetry tests that conversion is symmetric around zero.
func TestFloatToIntSymmetry(t *testing.T) {
	t.Parallel()

	testVals := []float32{0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 1.0}

	for _, val := range testVals {
		pos := FloatToInt(val, 16)
		neg := FloatToInt(-val, 16)

		if pos+neg != 0 {
			t.Errorf("FloatToInt not symmetric: +%v=%v, -%v=%v",
				val, pos, val, neg)
		}
	}
}

// TestFloatToIntMonotonic tests that conversion is monotonic.
func TestFloatToIntMonotonic(t *testing.T) {
	t.Parallel()

	prev := FloatToInt(-1.0, 24)

	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := FloatToInt(float32(f), 24)
		if curr < prev {
			t.Errorf("FloatToInt not monotonic: f=%v gives %v, but previous was %v",
				f, curr, prev)
		}
		prev = curr
	}
}

// BenchmarkFloatToInt tests performance and allocations.
func BenchmarkFloatToInt(b *testing.B) {
	var result int
	input := float32(0.5)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		result = FloatToInt(input, 16)
	}

	_ = result
}

// TestFloatToInt_ZeroAllocs verifies no heap allocations.
func TestFloatToInt_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = FloatToInt(0.5, 16)
	})

	if allocs > 0 {
		t.Errorf("FloatToInt allocated %v times, want 0", allocs)
	}
}
