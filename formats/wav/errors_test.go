package wav

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrNotWavFile", ErrNotWavFile, "not a WAV file"},
		{"ErrUnsupportedWavFormat", ErrUnsupportedWavFormat, "unsupported WAV sample format"},
		{"ErrUnsupportedBitDepth", ErrUnsupportedBitDepth, "unsupported WAV bit depth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.want)
			}
		})
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	t.Parallel()

	all := []error{ErrNotWavFile, ErrUnsupportedWavFormat, ErrUnsupportedBitDepth}

	for i := range all {
		for j := range all {
			if i != j && errors.Is(all[i], all[j]) {
				t.Errorf("errors %d and %d compare equal", i, j)
			}
		}
	}
}

func TestErrorWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: format tag 7", ErrUnsupportedWavFormat)

	if !errors.Is(wrapped, ErrUnsupportedWavFormat) {
		t.Error("errors.Is(wrapped, ErrUnsupportedWavFormat) = false, want true")
	}

	if errors.Is(wrapped, ErrNotWavFile) {
		t.Error("errors.Is(wrapped, ErrNotWavFile) = true, want false")
	}
}
