// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidHeader reports a header violating the stream invariants.
	ErrInvalidHeader = errors.New("invalid header")
	// ErrHeaderNotWritten reports frames arriving at a sink before its header.
	ErrHeaderNotWritten = errors.New("header not written yet")
	// ErrHeaderAlreadyWritten reports a second header write on one sink.
	ErrHeaderAlreadyWritten = errors.New("header already written")
	// ErrFrameOutOfRange reports a frame position beyond the header frame count.
	ErrFrameOutOfRange = errors.New("frame position out of range")
	// ErrInvalidBufSize reports a sample buffer whose length is not a
	// multiple of the channel count.
	ErrInvalidBufSize = errors.New("buffer size must be multiple of channels")
)
