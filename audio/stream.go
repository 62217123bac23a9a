// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// ByteReader is the byte-level source contract handed to decoder backends.
// It is io.ReadSeeker so codec libraries can consume it directly; the
// extensions cover what those libraries cannot express:
//
//   - Pos reports the current offset without seeking.
//   - Len reports the total length, when it is knowable without consuming
//     the stream.
//   - UnreadByte steps back one byte, so a backend can sniff magic bytes
//     and leave the stream where it found it.
//
// Format probing is destructive: a failed open may have read or sought
// anywhere in the stream. Callers that retry must seek back to the start
// themselves.
type ByteReader interface {
	io.ReadSeeker
	io.Closer

	// Pos returns the current read offset.
	Pos() int64
	// Len returns the total byte length. ok is false when the length
	// cannot be known without consuming the stream.
	Len() (size int64, ok bool)
	// UnreadByte un-reads the most recently read byte. It may be called
	// repeatedly to step further back, as long as every stepped-over byte
	// was previously read.
	UnreadByte() error
}

// ByteWriter is the byte-level sink contract handed to encoder backends.
// Writes are not observable at the final destination until Commit.
type ByteWriter interface {
	io.WriteSeeker

	// Commit finalizes the destination. Calling it again after the first
	// success is a no-op.
	Commit() error
}

// FrameReader is a source of interleaved float32 frames.
type FrameReader interface {
	// ReadFrames fills dst with interleaved samples and returns the
	// number of frames read. See Decoder.ReadFrames for the contract.
	ReadFrames(dst []float32) (int, error)
}

// FrameWriter is a sink for interleaved float32 frames. The header must be
// written exactly once, before any frames.
type FrameWriter interface {
	// WriteHeader validates and records the stream header, sizing the
	// sink if it needs to allocate.
	WriteHeader(h Header) error
	// WriteFrames stores interleaved samples at the current frame
	// position and returns the number of frames written.
	WriteFrames(src []float32) (int, error)
	// SeekFrame repositions the sink. Format resolution rewinds the sink
	// to frame zero between failed candidates.
	SeekFrame(frame uint64) error
	// Commit finalizes the sink. No-op for in-memory sinks.
	Commit() error
}
