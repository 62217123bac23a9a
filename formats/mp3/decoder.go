// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/colugomusic/audiorw/audio"
	"github.com/colugomusic/audiorw/utils"
)

// The codec always emits 16-bit stereo PCM, so one frame is four bytes
// regardless of what the source stream carried.
const (
	mp3Channels      = 2
	mp3BitDepth      = 16
	mp3BytesPerFrame = 4
)

// mp3Stream is the slice of gomp3.Decoder this package uses, narrowed so
// tests can substitute their own streams.
type mp3Stream interface {
	Read([]byte) (int, error)
	Seek(offset int64, whence int) (int64, error)
	SampleRate() int
	Length() int64
}

// Decoder reads one MP3 stream, presenting the uniform frame-stream
// capability. MP3 is decode-only; there is no matching encoder.
type Decoder struct {
	dec    mp3Stream
	header audio.Header
	pos    uint64
	buf    []byte
}

// Open probes the stream for MP3 frames. The codec scans the whole stream
// at open to index frame starts, which is what makes the frame count and
// seeking available. A failed probe is a recoverable signal for format
// resolution; the stream position is unspecified afterwards.
func Open(in audio.ByteReader) (*Decoder, error) {
	dec, err := gomp3.NewDecoder(in)
	if err != nil {
		return nil, fmt.Errorf("open mp3 stream: %w", err)
	}

	return newDecoder(dec)
}

// newDecoder wires a parsed codec stream, separated from Open so tests can
// inject their own mp3Stream.
func newDecoder(dec mp3Stream) (*Decoder, error) {
	length := dec.Length()
	if length < 0 {
		return nil, ErrUnknownLength
	}

	header := audio.Header{
		Format:       audio.FormatMP3,
		ChannelCount: mp3Channels,
		FrameCount:   uint64(length) / mp3BytesPerFrame,
		SampleRate:   dec.SampleRate(),
		BitDepth:     mp3BitDepth,
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

// ReadFrames fills dst with interleaved float32 samples. A short count with
// a nil error means the stream is exhausted. Ragged trailing bytes that do
// not fill a whole frame are dropped.
func (d *Decoder) ReadFrames(dst []float32) (int, error) {
	frames := len(dst) / mp3Channels
	want := frames * mp3BytesPerFrame

	if cap(d.buf) < want {
		d.buf = make([]byte, want)
	}

	buf := d.buf[:want]
	total := 0

	for total < want {
		n, err := d.dec.Read(buf[total:])
		total += n

		if err == io.EOF {
			break
		}
		if err != nil {
			return total / mp3BytesPerFrame, fmt.Errorf("read mp3 samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	got := total / mp3BytesPerFrame
	for i := range got * mp3Channels {
		v := int16(uint16(buf[2*i]) | uint16(buf[2*i+1])<<8)
		dst[i] = utils.IntToFloat(int(v), mp3BitDepth)
	}

	d.pos += uint64(got)

	return got, nil
}

// SeekFrame positions the stream at the given frame. The codec seeks over
// decoded bytes, so the target maps directly to a byte offset.
func (d *Decoder) SeekFrame(frame uint64) error {
	if frame > d.header.FrameCount {
		return fmt.Errorf("%w: frame %d of %d", audio.ErrFrameOutOfRange, frame, d.header.FrameCount)
	}

	if _, err := d.dec.Seek(int64(frame)*mp3BytesPerFrame, io.SeekStart); err != nil {
		return fmt.Errorf("seek mp3 stream: %w", err)
	}

	d.pos = frame

	return nil
}

// Close releases codec state. The byte stream stays open.
func (d *Decoder) Close() error {
	d.dec = nil
	d.buf = nil

	return nil
}
