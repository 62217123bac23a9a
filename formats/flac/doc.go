// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio stream decoding and encoding.
//
// This package uses github.com/mewkiz/flac to parse and emit FLAC
// streams. It adapts the codec to the uniform frame-stream capability of
// the audio package.
//
// # Decoding FLAC Streams
//
// Use Open to probe a byte stream:
//
//	in, _ := audio.OpenFile("audio.flac")
//	defer in.Close()
//
//	dec, err := flac.Open(in)
//	if err != nil {
//	    // Handle error
//	}
//	defer dec.Close()
//
//	buf := make([]float32, 4096)
//	n, err := dec.ReadFrames(buf)
//
// Open sniffs the 4-byte stream marker before handing the stream to the
// codec, so a mismatched stream fails fast. The stream info block supplies
// the full header upfront, including the exact frame count.
//
// # Encoding FLAC Streams
//
// Use NewEncoder to write a stream:
//
//	out, _ := audio.NewFileWriter("audio.flac")
//	defer out.Close()
//
//	enc, err := flac.NewEncoder(out, header, audio.StorageInt)
//	if err != nil {
//	    // Handle error
//	}
//
//	enc.WriteFrames(samples)
//	enc.Finish()
//	out.Commit()
//
// Samples are encoded verbatim in blocks of up to 4096 frames. FLAC stores
// integers only, so float storage types quantize to the header bit depth.
//
// # Seeking
//
// SeekFrame is frame-accurate. The codec indexes block boundaries on the
// first seek, lands on the boundary at or before the target, and the
// decoder drops the remainder.
//
// # Sample Format
//
// Samples convert between the codec's integers and float32 in [-1.0, 1.0]
// using the full-scale value of the stream's bit depth. Depths 8, 16, 24
// and 32 are supported; up to 8 channels map onto the container's channel
// assignments.
package flac
