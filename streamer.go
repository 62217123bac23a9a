// SPDX-License-Identifier: EPL-2.0

package audiorw

import "github.com/colugomusic/audiorw/audio"

// Streamer is an open decoder with random access over its frames. Unlike
// Read it does not buffer the stream: frames decode on demand, so a
// Streamer suits incremental consumption and seeking within large files.
//
// A Streamer owns its byte stream; Close releases both the decoder and the
// stream. It is not safe for concurrent use.
type Streamer struct {
	in  audio.ByteReader
	dec audio.Decoder
}

// Open opens the file at path for streaming decode, resolving its format
// per hint.
func Open(path string, hint audio.FormatHint) (*Streamer, error) {
	in, err := audio.OpenFile(path)
	if err != nil {
		return nil, err
	}

	dec, err := resolveDecoder(in, nil, hint)
	if err != nil {
		in.Close()

		return nil, err
	}

	return &Streamer{in: in, dec: dec}, nil
}

// OpenBytes opens an in-memory encoded stream for streaming decode,
// resolving its format per hint.
func OpenBytes(data []byte, hint audio.FormatHint) (*Streamer, error) {
	in := audio.NewBytesReader(data)

	dec, err := resolveDecoder(in, nil, hint)
	if err != nil {
		in.Close()

		return nil, err
	}

	return &Streamer{in: in, dec: dec}, nil
}

// Header describes the open stream.
func (s *Streamer) Header() audio.Header {
	return s.dec.Header()
}

// ReadFrames fills dst with interleaved samples from the current position.
// See Decoder.ReadFrames for the contract.
func (s *Streamer) ReadFrames(dst []float32) (int, error) {
	return s.dec.ReadFrames(dst)
}

// SeekFrame positions the stream at the given frame index.
func (s *Streamer) SeekFrame(frame uint64) error {
	return s.dec.SeekFrame(frame)
}

// Close releases the decoder and the underlying byte stream.
func (s *Streamer) Close() error {
	decErr := s.dec.Close()

	if err := s.in.Close(); err != nil {
		return err
	}

	return decErr
}
