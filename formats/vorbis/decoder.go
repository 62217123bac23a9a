package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/colugomusic/audiorw/audio"
)

// vorbisBitDepth is the reported depth. Vorbis is a floating-point codec
// with no integer representation, so samples pass through unscaled and the
// header advertises full float precision.
const vorbisBitDepth = 32

// oggStream is the slice of oggvorbis.Reader this package uses, narrowed
// so tests can substitute their own streams. Read returns the number of
// float values decoded, not frames.
type oggStream interface {
	SampleRate() int
	Channels() int
	Length() int64
	SetPosition(pos int64) error
	Read(p []float32) (int, error)
}

// Decoder reads one Ogg Vorbis stream, presenting the uniform frame-stream
// capability. Ogg Vorbis is decode-only; there is no matching encoder.
type Decoder struct {
	dec    oggStream
	header audio.Header
	pos    uint64
}

// Open probes the stream for an Ogg Vorbis container. A failed probe is a
// recoverable signal for format resolution; the stream position is
// unspecified afterwards.
func Open(in audio.ByteReader) (*Decoder, error) {
	dec, err := oggvorbis.NewReader(in)
	if err != nil {
		return nil, fmt.Errorf("open ogg vorbis stream: %w", err)
	}

	return newDecoder(dec)
}

// newDecoder wires a parsed codec stream, separated from Open so tests can
// inject their own oggStream.
func newDecoder(dec oggStream) (*Decoder, error) {
	// The codec reports zero both for an unknown length and for a stream
	// with no audio; neither can satisfy a frame-exact header.
	length := dec.Length()
	if length <= 0 {
		return nil, ErrUnknownLength
	}

	header := audio.Header{
		Format:       audio.FormatOggVorbis,
		ChannelCount: dec.Channels(),
		FrameCount:   uint64(length),
		SampleRate:   dec.SampleRate(),
		BitDepth:     vorbisBitDepth,
	}

	if err := header.Validate(); err != nil {
		return nil, err
	}

	return &Decoder{dec: dec, header: header}, nil
}

// Header describes the open stream.
func (d *Decoder) Header() audio.Header {
	return d.header
}

// ReadFrames fills dst with interleaved float32 samples. Samples arrive
// from the codec already normalized; no scaling is applied. A short count
// with a nil error means the stream is exhausted.
func (d *Decoder) ReadFrames(dst []float32) (int, error) {
	channels := d.header.ChannelCount
	want := len(dst) / channels * channels

	total := 0

	for total < want {
		n, err := d.dec.Read(dst[total:want])
		total += n

		if err == io.EOF {
			break
		}
		if err != nil {
			return total / channels, fmt.Errorf("read ogg vorbis samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	frames := total / channels
	d.pos += uint64(frames)

	return frames, nil
}

// SeekFrame positions the stream at the given frame. The codec seeks in
// sample positions per channel, which map one-to-one onto frames.
func (d *Decoder) SeekFrame(frame uint64) error {
	if frame > d.header.FrameCount {
		return fmt.Errorf("%w: frame %d of %d", audio.ErrFrameOutOfRange, frame, d.header.FrameCount)
	}

	if err := d.dec.SetPosition(int64(frame)); err != nil {
		return fmt.Errorf("seek ogg vorbis stream: %w", err)
	}

	d.pos = frame

	return nil
}

// Close releases codec state. The byte stream stays open.
func (d *Decoder) Close() error {
	d.dec = nil

	return nil
}
