// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Format identifies one of the supported container formats. The declaration
// order below is the canonical retry order used by format resolution.
type Format uint8

const (
	FormatFLAC Format = iota
	FormatMP3
	FormatWAV
	FormatOggVorbis

	formatCount // sentinel, keep last
)

func (f Format) String() string {
	switch f {
	case FormatFLAC:
		return "flac"
	case FormatMP3:
		return "mp3"
	case FormatWAV:
		return "wav"
	case FormatOggVorbis:
		return "ogg vorbis"
	}

	return fmt.Sprintf("format(%d)", uint8(f))
}

// StorageType selects the on-disk numeric representation for encoding.
// Decoders ignore it.
type StorageType uint8

const (
	// StorageInt stores fixed-point samples scaled by the header bit depth.
	StorageInt StorageType = iota
	// StorageFloat stores floating-point samples as-is.
	StorageFloat
	// StorageNormFloat stores floating-point samples normalized to full scale.
	StorageNormFloat
)

// Strategy controls how a FormatHint expands into a candidate list.
type Strategy uint8

const (
	// TryOnly resolves to the hinted format alone.
	TryOnly Strategy = iota
	// TryFirst resolves to the hinted format followed by every other
	// format in canonical order.
	TryFirst
)

// FormatHint is a resolution policy: which format to try, and whether to
// fall back to the others when it does not match. Hints are never persisted.
type FormatHint struct {
	Format   Format
	Strategy Strategy
}

// Only returns a hint that tries f and nothing else.
func Only(f Format) FormatHint {
	return FormatHint{Format: f, Strategy: TryOnly}
}

// First returns a hint that tries f first, then the remaining formats in
// canonical order.
func First(f Format) FormatHint {
	return FormatHint{Format: f, Strategy: TryFirst}
}

// Candidates expands the hint into the ordered format list resolution will
// attempt. The list never contains duplicates.
func (h FormatHint) Candidates() []Format {
	if h.Strategy == TryOnly {
		return []Format{h.Format}
	}

	out := make([]Format, 0, formatCount)
	out = append(out, h.Format)

	for f := Format(0); f < formatCount; f++ {
		if f != h.Format {
			out = append(out, f)
		}
	}

	return out
}

// Header describes one audio stream. A header is produced once per
// successful decoder open and never mutated; on the output side it must be
// written exactly once, before any frames.
type Header struct {
	Format       Format
	ChannelCount int
	FrameCount   uint64
	SampleRate   int
	BitDepth     int
}

// Validate reports whether the header satisfies the stream invariants:
// at least one channel, a positive sample rate and a bit depth of
// 8, 16, 24 or 32.
func (h Header) Validate() error {
	if h.ChannelCount <= 0 {
		return fmt.Errorf("%w: channel count %d", ErrInvalidHeader, h.ChannelCount)
	}

	if h.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidHeader, h.SampleRate)
	}

	switch h.BitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: bit depth %d", ErrInvalidHeader, h.BitDepth)
	}

	return nil
}

// Decoder is the uniform read-side capability over one open codec stream.
// Implementations carry their Format tag in the Header from the moment they
// open; the tag is never inferred from codec internals. A Decoder is bound
// to a single operation and is not safe for concurrent use. Decoders do not
// close the byte stream they read from.
type Decoder interface {
	// Header describes the open stream.
	Header() Header
	// ReadFrames fills dst with interleaved float32 samples in [-1,1].
	// dst must hold a multiple of the channel count; the frame count
	// requested is len(dst) divided by channels. Returns the number of
	// frames read. A short count with a nil error means end of stream.
	ReadFrames(dst []float32) (int, error)
	// SeekFrame positions the stream at the given frame index.
	SeekFrame(frame uint64) error
	// Close releases codec state. It does not close the byte stream.
	Close() error
}

// Encoder is the uniform write-side capability over one open codec stream.
type Encoder interface {
	// WriteFrames encodes interleaved float32 samples. len(src) must be a
	// multiple of the channel count. Returns the number of frames written.
	WriteFrames(src []float32) (int, error)
	// Finish flushes trailing codec state. The byte stream is not
	// committed; that remains the caller's job.
	Finish() error
}
