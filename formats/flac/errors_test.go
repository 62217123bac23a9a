package flac

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
		{"ErrNotFlacStream", ErrNotFlacStream, "not a FLAC stream"},
		{"ErrUnknownLength", ErrUnknownLength, "unknown stream length"},
		{"ErrUnsupportedBitDepth", ErrUnsupportedBitDepth, "unsupported bit depth"},
		{"ErrUnsupportedChannels", ErrUnsupportedChannels, "unsupported channel count"},
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

func TestErrorWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: bad stream marker", ErrNotFlacStream)

	if !errors.Is(wrapped, ErrNotFlacStream) {
		t.Error("errors.Is(wrapped, ErrNotFlacStream) = false, want true")
	}

	if errors.Is(wrapped, ErrUnknownLength) {
		t.Error("errors.Is(wrapped, ErrUnknownLength) = true, want false")
	}
}
