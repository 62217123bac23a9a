// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	goflac "github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/colugomusic/audiorw/audio"
	"github.com/colugomusic/audiorw/utils"
)

// flacMagic is the stream marker every FLAC stream leads with.
var flacMagic = [4]byte{'f', 'L', 'a', 'C'}

// sniffMagic reads the stream marker one byte at a time, unreading the
// byte that disagrees so the stream stops at the first non-matching
// position.
func sniffMagic(in audio.ByteReader) error {
	var b [1]byte

	for i := 0; i < len(flacMagic); i++ {
		if _, err := io.ReadFull(in, b[:]); err != nil {
			return fmt.Errorf("%w: %v", ErrNotFlacStream, err)
		}

		if b[0] != flacMagic[i] {
			if err := in.UnreadByte(); err != nil {
				return fmt.Errorf("%w: %v", ErrNotFlacStream, err)
			}

			return fmt.Errorf("%w: bad stream marker", ErrNotFlacStream)
		}
	}

	return nil
}

// Decoder reads one FLAC stream, presenting the uniform frame-stream
// capability.
type Decoder struct {
	stream *goflac.Stream
	header audio.Header
	pos    uint64
	// pending holds decoded samples from the last parsed frame that have
	// not been delivered yet. It aliases scratch.
	pending []float32
	scratch []float32
}

// Open probes the stream for a FLAC container: first the stream marker,
// then the metadata blocks. A failed probe is a recoverable signal for
// format resolution; the stream position is unspecified afterwards.
func Open(in audio.ByteReader) (*Decoder, error) {
	if err := sniffMagic(in); err != nil {
		return nil, err
	}

	// The codec wants to read the marker itself.
	if _, err := in.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind flac stream: %w", err)
	}

	stream, err := goflac.NewSeek(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFlacStream, err)
	}

	info := stream.Info

	switch info.BitsPerSample {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, info.BitsPerSample)
	}

	if info.NSamples == 0 {
		return nil, ErrUnknownLength
	}

	header := audio.Header{
		Format:       audio.FormatFLAC,
		ChannelCount: int(info.NChannels),
		FrameCount:   info.NSamples,
		SampleRate:   int(info.SampleRate),
		BitDepth:     int(info.BitsPerSample),
	}

	if err := header.Validate(); err != nil {
		return nil, err
	}

	return &Decoder{stream: stream, header: header}, nil
}

// Header describes the open stream.
func (d *Decoder) Header() audio.Header {
	return d.header
}

// ReadFrames fills dst with interleaved float32 samples. The codec decodes
// in whole blocks; leftovers stay pending for the next call. A short count
// with a nil error means the stream is exhausted.
func (d *Decoder) ReadFrames(dst []float32) (int, error) {
	channels := d.header.ChannelCount
	want := len(dst) / channels * channels

	total := 0

	for total < want {
		if len(d.pending) > 0 {
			n := copy(dst[total:want], d.pending)
			d.pending = d.pending[n:]
			total += n

			continue
		}

		f, err := d.stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return total / channels, fmt.Errorf("parse flac frame: %w", err)
		}

		d.bufferFrame(f)
	}

	frames := total / channels
	d.pos += uint64(frames)

	return frames, nil
}

// bufferFrame interleaves and scales one parsed frame into the pending
// buffer. The codec has already undone inter-channel decorrelation, so the
// subframes hold plain channel samples.
func (d *Decoder) bufferFrame(f *frame.Frame) {
	channels := d.header.ChannelCount
	samples := len(f.Subframes[0].Samples)
	need := samples * channels

	if cap(d.scratch) < need {
		d.scratch = make([]float32, need)
	}

	buf := d.scratch[:need]
	for ch, sub := range f.Subframes {
		// A malformed frame can disagree with the stream info block.
		if ch >= channels {
			break
		}

		for i, s := range sub.Samples {
			buf[i*channels+ch] = utils.IntToFloat(int(s), d.header.BitDepth)
		}
	}

	d.pending = buf
}

// SeekFrame positions the stream at the given frame. The codec lands on
// the boundary of the containing block; the remainder is decoded and
// dropped to make the seek frame-accurate.
func (d *Decoder) SeekFrame(frame uint64) error {
	if frame > d.header.FrameCount {
		return fmt.Errorf("%w: frame %d of %d", audio.ErrFrameOutOfRange, frame, d.header.FrameCount)
	}

	target := frame
	if target == d.header.FrameCount {
		// Land inside the final block and drain it.
		target--
	}

	got, err := d.stream.Seek(target)
	if err != nil {
		return fmt.Errorf("seek flac stream: %w", err)
	}

	d.pending = nil
	d.pos = got

	channels := d.header.ChannelCount
	skip := frame - got

	if skip == 0 {
		return nil
	}

	discard := make([]float32, min(skip, 4096)*uint64(channels))

	for d.pos < frame {
		chunk := min(frame-d.pos, 4096)

		n, err := d.ReadFrames(discard[:chunk*uint64(channels)])
		if err != nil {
			return err
		}

		if uint64(n) != chunk {
			return fmt.Errorf("%w: seek ended at frame %d of %d", audio.ErrFrameOutOfRange, d.pos, frame)
		}
	}

	return nil
}

// Close releases codec state. The codec's own Close would close the byte
// stream with it, so the decoder just drops its references.
func (d *Decoder) Close() error {
	d.stream = nil
	d.pending = nil
	d.scratch = nil

	return nil
}
