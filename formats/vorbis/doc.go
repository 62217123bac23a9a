// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio stream decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// streams. It adapts the codec to the uniform frame-stream capability of
// the audio package.
//
// # Decoding Vorbis Streams
//
// Use Open to probe a byte stream:
//
//	in, _ := audio.OpenFile("audio.ogg")
//	defer in.Close()
//
//	dec, err := vorbis.Open(in)
//	if err != nil {
//	    // Handle error
//	}
//	defer dec.Close()
//
//	buf := make([]float32, 4096)
//	n, err := dec.ReadFrames(buf)
//
// # Output Format
//
// Vorbis is a floating-point codec. Samples pass through from the codec
// unscaled, and the header reports a bit depth of 32 to describe their
// precision. Channel count and sample rate come from the stream.
//
// The frame count and SeekFrame both rely on the codec's sample-position
// index, which needs a seekable source. Every byte stream in this module
// is seekable, so the index is always available.
//
// # Limitations
//
// Note:
//   - Ogg Vorbis writing is not supported (decoding only)
//   - Streams with no audio are rejected at open
package vorbis
