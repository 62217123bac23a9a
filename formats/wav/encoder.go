// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/colugomusic/audiorw/audio"
	"github.com/colugomusic/audiorw/utils"
)

// Encoder writes one WAV stream. Integer storage produces PCM samples
// scaled to the header bit depth; a float storage type with 32-bit depth
// produces IEEE float samples. Other depths quantize to PCM regardless of
// storage type, which is all the container supports.
type Encoder struct {
	enc     *gowav.Encoder
	header  audio.Header
	float   bool
	scratch []int
	frame   []float32
}

// NewEncoder opens a WAV encoder over w. The header is written lazily by
// the codec on the first frame write and finalized by Finish; w must stay
// valid until then.
func NewEncoder(w audio.ByteWriter, h audio.Header, st audio.StorageType) (*Encoder, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	float := h.BitDepth == 32 && st != audio.StorageInt

	format := wavFormatPCM
	if float {
		format = wavFormatIEEEFloat
	}

	enc := gowav.NewEncoder(w, h.SampleRate, h.BitDepth, h.ChannelCount, format)

	return &Encoder{
		enc:    enc,
		header: h,
		float:  float,
	}, nil
}

// WriteFrames encodes interleaved float32 samples. len(src) must be a
// multiple of the channel count.
func (e *Encoder) WriteFrames(src []float32) (int, error) {
	channels := e.header.ChannelCount
	frames := len(src) / channels
	count := frames * channels

	if e.float {
		if e.frame == nil {
			e.frame = make([]float32, channels)
		}

		// The codec counts one frame per call, so each call must carry a
		// whole frame or the patched chunk sizes come out wrong.
		for f := 0; f < frames; f++ {
			copy(e.frame, src[f*channels:(f+1)*channels])
			if err := e.enc.WriteFrame(e.frame); err != nil {
				return f, fmt.Errorf("write wav frame: %w", err)
			}
		}

		return frames, nil
	}

	if cap(e.scratch) < count {
		e.scratch = make([]int, count)
	}

	data := e.scratch[:count]
	for i, s := range src[:count] {
		data[i] = pcmValue(s, e.header.BitDepth)
	}

	buf := &goaudio.IntBuffer{
		Data: data,
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  e.header.SampleRate,
		},
		SourceBitDepth: e.header.BitDepth,
	}

	if err := e.enc.Write(buf); err != nil {
		return 0, fmt.Errorf("write wav samples: %w", err)
	}

	return frames, nil
}

// pcmValue scales one normalized sample to its container representation.
func pcmValue(s float32, bitDepth int) int {
	v := utils.FloatToInt(s, bitDepth)

	// WAV stores 8-bit PCM unsigned, centered on 128.
	if bitDepth == 8 {
		v += 128
	}

	return v
}

// Finish patches the RIFF sizes and closes the codec. The byte stream is
// not committed.
func (e *Encoder) Finish() error {
	if err := e.enc.Close(); err != nil {
		return fmt.Errorf("finish wav stream: %w", err)
	}

	return nil
}
