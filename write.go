// SPDX-License-Identifier: EPL-2.0

package audiorw

import (
	"fmt"
	"path/filepath"

	"github.com/colugomusic/audiorw/audio"
	"github.com/colugomusic/audiorw/formats/flac"
	"github.com/colugomusic/audiorw/formats/wav"
)

// Write encodes h.FrameCount frames from in into out as h.Format.
//
// st selects the on-disk numeric representation for formats that support
// more than one. Encoding exists for WAV and FLAC; the other formats return
// ErrNoEncoder. The byte sink is committed only after the final frame, so
// an aborted or failed encode never publishes partial output through an
// atomic writer.
func Write(h audio.Header, in audio.FrameReader, out audio.ByteWriter, st audio.StorageType, shouldAbort func() bool) error {
	if err := h.Validate(); err != nil {
		return err
	}

	enc, err := openEncoder(out, h, st)
	if err != nil {
		return err
	}

	return pump(&encodeSink{enc: enc, out: out}, in, h, shouldAbort)
}

// WriteFile encodes item to path, picking the format from the file
// extension. The file is written through a temporary sibling and renamed
// into place on success, so path never holds a partial stream.
func WriteFile(item *audio.Item, path string, st audio.StorageType, shouldAbort func() bool) error {
	hint, ok := HintForPath(path, false)
	if !ok {
		return fmt.Errorf("%w: extension %q", ErrNoEncoder, filepath.Ext(path))
	}

	out, err := audio.NewFileWriter(path)
	if err != nil {
		return err
	}
	defer out.Close()

	h := item.Header
	h.Format = hint.Format

	return Write(h, audio.NewItemReader(item), out, st, shouldAbort)
}

// Transcode is a high-level convenience function that re-encodes one audio
// file as another format without buffering the whole stream in memory.
//
// The pipeline:
//  1. Opens srcPath with a streaming decoder, resolving its format per hint
//  2. Picks the destination format from dstPath's file extension
//  3. Pumps frames straight from the decoder into the encoder
//  4. Commits the destination atomically once the final frame lands
//
// Parameters:
//   - srcPath: the file to decode (any supported format)
//   - dstPath: the file to produce; its extension selects the encoder,
//     so only .wav and .flac destinations work
//   - hint: how to resolve the source format; HintForPath(srcPath, true)
//     is the usual choice
//   - st: the numeric representation for the destination samples
//   - shouldAbort: optional cancellation check, polled between chunks;
//     nil means never abort
//
// The stream description carries over: channel count, sample rate and bit
// depth of the destination match the source header.
//
// Example:
//
//	hint, _ := audiorw.HintForPath("in.mp3", true)
//	err := audiorw.Transcode("in.mp3", "out.flac", hint, audio.StorageInt, nil)
func Transcode(srcPath, dstPath string, hint audio.FormatHint, st audio.StorageType, shouldAbort func() bool) error {
	dstHint, ok := HintForPath(dstPath, false)
	if !ok {
		return fmt.Errorf("%w: extension %q", ErrNoEncoder, filepath.Ext(dstPath))
	}

	src, err := Open(srcPath, hint)
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := audio.NewFileWriter(dstPath)
	if err != nil {
		return err
	}
	defer out.Close()

	h := src.Header()
	h.Format = dstHint.Format

	return Write(h, src, out, st, shouldAbort)
}

// openEncoder dispatches to the format's codec package. Decode support is
// wider than encode support; the formats with no encoder fail here.
func openEncoder(out audio.ByteWriter, h audio.Header, st audio.StorageType) (audio.Encoder, error) {
	switch h.Format {
	case audio.FormatFLAC:
		return flac.NewEncoder(out, h, st)
	case audio.FormatWAV:
		return wav.NewEncoder(out, h, st)
	}

	return nil, fmt.Errorf("%w: %v", ErrNoEncoder, h.Format)
}

// encodeSink adapts an open encoder and its byte sink to the FrameWriter
// contract, so the same pump drives decodes and encodes.
type encodeSink struct {
	enc audio.Encoder
	out audio.ByteWriter
}

// WriteHeader rejects late headers. Encoders take theirs at construction.
func (s *encodeSink) WriteHeader(audio.Header) error {
	return audio.ErrHeaderAlreadyWritten
}

func (s *encodeSink) WriteFrames(src []float32) (int, error) {
	return s.enc.WriteFrames(src)
}

// SeekFrame accepts only the rewind to zero used by format resolution.
// Encoded output is otherwise append-only.
func (s *encodeSink) SeekFrame(frame uint64) error {
	if frame == 0 {
		return nil
	}

	return fmt.Errorf("%w: encoded output is append-only", audio.ErrFrameOutOfRange)
}

// Commit flushes trailing codec state, then makes the bytes observable.
func (s *encodeSink) Commit() error {
	if err := s.enc.Finish(); err != nil {
		return err
	}

	return s.out.Commit()
}
