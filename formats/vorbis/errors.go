package vorbis

import "errors"

// ErrUnknownLength is returned when the codec cannot report the stream
// length in frames, which happens when the source does not support seeking
// or the stream carries no audio.
var ErrUnknownLength = errors.New("unknown stream length")
