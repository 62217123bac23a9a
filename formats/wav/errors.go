package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavFormat = errors.New("unsupported WAV sample format")
	ErrUnsupportedBitDepth  = errors.New("unsupported WAV bit depth")
)
