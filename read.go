// SPDX-License-Identifier: EPL-2.0

package audiorw

import (
	"fmt"
	"io"

	"github.com/colugomusic/audiorw/audio"
	"github.com/colugomusic/audiorw/formats/flac"
	"github.com/colugomusic/audiorw/formats/mp3"
	"github.com/colugomusic/audiorw/formats/vorbis"
	"github.com/colugomusic/audiorw/formats/wav"
)

// Read decodes one audio stream from in into out.
//
// Format resolution follows hint: each candidate format is tried in order
// until one opens the stream. A candidate that fails to open is not fatal;
// the next one is tried. Once a decoder is open, the stream's header is
// written to out and every frame the header promises is transferred, so any
// later failure is final and surfaces immediately.
//
// shouldAbort, when non-nil, is polled between chunks; reporting true stops
// the transfer with ErrAborted and leaves out uncommitted. When every
// candidate fails to open, Read returns ErrUnrecognizedFormat wrapping the
// last candidate's error.
func Read(in audio.ByteReader, out audio.FrameWriter, hint audio.FormatHint, shouldAbort func() bool) error {
	dec, err := resolveDecoder(in, out, hint)
	if err != nil {
		return err
	}
	defer dec.Close()

	h := dec.Header()

	if err := out.WriteHeader(h); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	return pump(out, dec, h, shouldAbort)
}

// ReadHeader resolves the stream's format per hint and returns its header
// without decoding any frames.
func ReadHeader(in audio.ByteReader, hint audio.FormatHint) (audio.Header, error) {
	dec, err := resolveDecoder(in, nil, hint)
	if err != nil {
		return audio.Header{}, err
	}

	h := dec.Header()

	if err := dec.Close(); err != nil {
		return audio.Header{}, fmt.Errorf("close decoder: %w", err)
	}

	return h, nil
}

// ReadBytes decodes an in-memory encoded stream into a new Item.
func ReadBytes(data []byte, hint audio.FormatHint, shouldAbort func() bool) (*audio.Item, error) {
	in := audio.NewBytesReader(data)
	defer in.Close()

	var item audio.Item
	if err := Read(in, audio.NewItemWriter(&item), hint, shouldAbort); err != nil {
		return nil, err
	}

	return &item, nil
}

// ReadFile decodes the file at path into a new Item. The hint still decides
// which formats to try; see HintForPath for deriving one from the file name.
func ReadFile(path string, hint audio.FormatHint, shouldAbort func() bool) (*audio.Item, error) {
	in, err := audio.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	var item audio.Item
	if err := Read(in, audio.NewItemWriter(&item), hint, shouldAbort); err != nil {
		return nil, err
	}

	return &item, nil
}

// resolveDecoder tries each candidate format in hint order until one opens.
// Probing is destructive, so the byte stream rewinds before every attempt;
// sink, when non-nil, rewinds to frame zero alongside it. Open failures are
// the only recoverable signal; everything after a successful open is the
// caller's problem.
func resolveDecoder(in audio.ByteReader, sink audio.FrameWriter, hint audio.FormatHint) (audio.Decoder, error) {
	var lastErr error

	for _, f := range hint.Candidates() {
		if _, err := in.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("rewind stream: %w", err)
		}

		if sink != nil {
			if err := sink.SeekFrame(0); err != nil {
				return nil, fmt.Errorf("rewind sink: %w", err)
			}
		}

		dec, err := openDecoder(in, f)
		if err == nil {
			return dec, nil
		}

		lastErr = err
	}

	return nil, fmt.Errorf("%w: %w", ErrUnrecognizedFormat, lastErr)
}

// openDecoder dispatches to the format's codec package. The format set is
// closed; there is no registry.
func openDecoder(in audio.ByteReader, f audio.Format) (audio.Decoder, error) {
	switch f {
	case audio.FormatFLAC:
		return flac.Open(in)
	case audio.FormatMP3:
		return mp3.Open(in)
	case audio.FormatWAV:
		return wav.Open(in)
	case audio.FormatOggVorbis:
		return vorbis.Open(in)
	}

	return nil, fmt.Errorf("no decoder for %v", f)
}
