// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/colugomusic/audiorw/audio"
	"github.com/colugomusic/audiorw/utils"
)

// WAVE format tags. Anything else in the container is rejected at open.
const (
	wavFormatPCM       = 1
	wavFormatIEEEFloat = 3
)

// Decoder reads one WAV stream through the RIFF codec, presenting the
// uniform frame-stream capability. It does not close the byte stream.
type Decoder struct {
	in     audio.ByteReader
	dec    *gowav.Decoder
	header audio.Header
	// floatMode is the backend-reported mode flag: the container carries
	// IEEE float samples and integer scaling must be bypassed.
	floatMode bool
	pos       uint64
	scratch   []int
}

// Open probes the stream for a WAV container. A failed probe is a
// recoverable signal for format resolution; the stream position is
// unspecified afterwards.
func Open(in audio.ByteReader) (*Decoder, error) {
	dec := gowav.NewDecoder(in)

	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotWavFile, err)
	}

	channels := int(dec.NumChans)
	bitDepth := int(dec.BitDepth)

	floatMode := false

	switch dec.WavAudioFormat {
	case wavFormatPCM:
	case wavFormatIEEEFloat:
		if bitDepth != 32 {
			return nil, fmt.Errorf("%w: %d-bit float", ErrUnsupportedWavFormat, bitDepth)
		}

		floatMode = true
	default:
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedWavFormat, dec.WavAudioFormat)
	}

	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	if channels <= 0 {
		return nil, fmt.Errorf("%w: channel count %d", ErrNotWavFile, channels)
	}

	header := audio.Header{
		Format:       audio.FormatWAV,
		ChannelCount: channels,
		FrameCount:   uint64(dec.PCMLen()) / uint64(channels*bitDepth/8),
		SampleRate:   int(dec.SampleRate),
		BitDepth:     bitDepth,
	}

	if err := header.Validate(); err != nil {
		return nil, err
	}

	return &Decoder{
		in:        in,
		dec:       dec,
		header:    header,
		floatMode: floatMode,
	}, nil
}

// Header describes the open stream.
func (d *Decoder) Header() audio.Header {
	return d.header
}

// ReadFrames fills dst with interleaved float32 samples. A short count with
// a nil error means the PCM chunk is exhausted.
func (d *Decoder) ReadFrames(dst []float32) (int, error) {
	channels := d.header.ChannelCount
	want := len(dst) / channels * channels

	if cap(d.scratch) < want {
		d.scratch = make([]int, want)
	}

	total := 0

	// The codec may return short counts mid-chunk; keep pulling until the
	// buffer is full or the chunk genuinely ends.
	for total < want {
		window := &goaudio.IntBuffer{Data: d.scratch[total:want]}

		n, err := d.dec.PCMBuffer(window)
		if err != nil {
			return total / channels, fmt.Errorf("read wav samples: %w", err)
		}

		if n == 0 {
			break
		}

		total += n
	}

	frames := total / channels
	for i := 0; i < frames*channels; i++ {
		dst[i] = d.sampleToFloat(d.scratch[i])
	}

	d.pos += uint64(frames)

	return frames, nil
}

func (d *Decoder) sampleToFloat(v int) float32 {
	if d.floatMode {
		return math.Float32frombits(uint32(int32(v)))
	}

	// WAV stores 8-bit PCM unsigned, centered on 128.
	if d.header.BitDepth == 8 {
		v -= 128
	}

	return utils.IntToFloat(v, d.header.BitDepth)
}

// SeekFrame positions the stream at the given frame. The codec exposes no
// sample-accurate seek, so the decoder reopens the container and discards
// frames up to the target.
func (d *Decoder) SeekFrame(frame uint64) error {
	if frame > d.header.FrameCount {
		return fmt.Errorf("%w: frame %d of %d", audio.ErrFrameOutOfRange, frame, d.header.FrameCount)
	}

	if frame == d.pos {
		return nil
	}

	if _, err := d.in.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek wav stream: %w", err)
	}

	dec := gowav.NewDecoder(d.in)
	if !dec.IsValidFile() {
		return ErrNotWavFile
	}

	if err := dec.FwdToPCM(); err != nil {
		return fmt.Errorf("%w: %v", ErrNotWavFile, err)
	}

	d.dec = dec
	d.pos = 0

	channels := d.header.ChannelCount
	discard := make([]float32, min(frame, 4096)*uint64(channels))

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

// Close releases codec state. The byte stream stays open.
func (d *Decoder) Close() error {
	d.dec = nil
	d.scratch = nil

	return nil
}
