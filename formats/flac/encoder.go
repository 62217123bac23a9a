// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"

	goflac "github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"

	"github.com/colugomusic/audiorw/audio"
	"github.com/colugomusic/audiorw/utils"
)

// Encoded frames carry up to encBlockSize samples per channel. The stream
// info advertises a variable block size so the trailing short block stays
// legal.
const (
	encBlockSize    = 4096
	encBlockSizeMin = 16
)

// encShim hides the byte stream's lifecycle methods from the codec, which
// closes any io.Closer handed to it. Keeping the stream open is what lets
// the caller choose between commit and abandon afterwards.
type encShim struct {
	w audio.ByteWriter
}

func (s encShim) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

func (s encShim) Seek(offset int64, whence int) (int64, error) {
	return s.w.Seek(offset, whence)
}

// Encoder writes one FLAC stream. The codec stores integers only, so every
// storage type quantizes samples to the header bit depth; the storage
// argument exists for symmetry with encoders that distinguish them.
type Encoder struct {
	enc      *goflac.Encoder
	header   audio.Header
	channels frame.Channels
	num      uint64 // first sample index of the next block
}

// NewEncoder opens a FLAC encoder over w. The stream marker and metadata
// are written immediately; the codec patches the stream info when Finish
// seeks back over it.
func NewEncoder(w audio.ByteWriter, h audio.Header, _ audio.StorageType) (*Encoder, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	channels, err := channelAssignment(h.ChannelCount)
	if err != nil {
		return nil, err
	}

	info := &meta.StreamInfo{
		BlockSizeMin:  encBlockSizeMin,
		BlockSizeMax:  encBlockSize,
		SampleRate:    uint32(h.SampleRate),
		NChannels:     uint8(h.ChannelCount),
		BitsPerSample: uint8(h.BitDepth),
		NSamples:      h.FrameCount,
	}

	enc, err := goflac.NewEncoder(encShim{w}, info)
	if err != nil {
		return nil, fmt.Errorf("open flac encoder: %w", err)
	}

	return &Encoder{enc: enc, header: h, channels: channels}, nil
}

// channelAssignment maps a channel count onto the container's fixed
// layouts.
func channelAssignment(count int) (frame.Channels, error) {
	switch count {
	case 1:
		return frame.ChannelsMono, nil
	case 2:
		return frame.ChannelsLR, nil
	case 3:
		return frame.ChannelsLRC, nil
	case 4:
		return frame.ChannelsLRLsRs, nil
	case 5:
		return frame.ChannelsLRCLsRs, nil
	case 6:
		return frame.ChannelsLRCLfeLsRs, nil
	case 7:
		return frame.ChannelsLRCLfeCsSlSr, nil
	case 8:
		return frame.ChannelsLRCLfeLsRsSlSr, nil
	}

	return 0, fmt.Errorf("%w: %d", ErrUnsupportedChannels, count)
}

// WriteFrames encodes interleaved float32 samples, splitting them into
// blocks of at most encBlockSize frames. len(src) must be a multiple of
// the channel count.
func (e *Encoder) WriteFrames(src []float32) (int, error) {
	channels := e.header.ChannelCount
	frames := len(src) / channels

	done := 0
	for done < frames {
		n := min(frames-done, encBlockSize)

		if err := e.writeBlock(src[done*channels:(done+n)*channels], n); err != nil {
			return done, err
		}

		done += n
	}

	return frames, nil
}

// writeBlock deinterleaves, quantizes and encodes one block. Samples go in
// verbatim; compression is the lossless family's concern, exactness is
// ours.
func (e *Encoder) writeBlock(src []float32, frames int) error {
	channels := e.header.ChannelCount

	subframes := make([]*frame.Subframe, channels)
	for ch := range channels {
		samples := make([]int32, frames)
		for i := range frames {
			samples[i] = int32(utils.FloatToInt(src[i*channels+ch], e.header.BitDepth))
		}

		subframes[ch] = &frame.Subframe{
			SubHeader: frame.SubHeader{Pred: frame.PredVerbatim},
			Samples:   samples,
			NSamples:  frames,
		}
	}

	f := &frame.Frame{
		Header: frame.Header{
			HasFixedBlockSize: false,
			BlockSize:         uint16(frames),
			SampleRate:        uint32(e.header.SampleRate),
			Channels:          e.channels,
			BitsPerSample:     uint8(e.header.BitDepth),
			Num:               e.num,
		},
		Subframes: subframes,
	}

	if err := e.enc.WriteFrame(f); err != nil {
		return fmt.Errorf("write flac frame: %w", err)
	}

	e.num += uint64(frames)

	return nil
}

// Finish closes the codec, which seeks back to patch the stream info with
// the final sample count and checksum. The byte stream is not committed.
func (e *Encoder) Finish() error {
	if err := e.enc.Close(); err != nil {
		return fmt.Errorf("finish flac stream: %w", err)
	}

	return nil
}
