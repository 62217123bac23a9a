// SPDX-License-Identifier: EPL-2.0

// Package wav adapts the RIFF/WAVE codec to the uniform decoder and
// encoder capabilities.
//
// This package supports PCM WAV at 8, 16, 24 and 32 bits plus 32-bit IEEE
// float WAV, any channel count, any sample rate. It uses the
// github.com/go-audio libraries for container handling.
//
// # Decoding
//
//	in, _ := audio.OpenFile("audio.wav")
//	dec, err := wav.Open(in)
//	if err != nil {
//	    // not a WAV stream; try another format
//	}
//
//	buf := make([]float32, 4096*dec.Header().ChannelCount)
//	n, err := dec.ReadFrames(buf)
//
// Samples come back as float32 in [-1.0, 1.0]. When the container carries
// IEEE float samples the values pass through untouched; fixed-point
// containers are scaled by (1 << (bitDepth-1)) - 1, with 8-bit unsigned
// samples re-centered first.
//
// # Encoding
//
//	enc, err := wav.NewEncoder(out, header, audio.StorageInt)
//	if err != nil {
//	    // invalid header
//	}
//	_, err = enc.WriteFrames(samples)
//	err = enc.Finish() // patches RIFF sizes
//
// Finish must run before the byte sink is committed; the codec seeks back
// to patch the chunk sizes it wrote.
//
// # Error Handling
//
// Open failures are recoverable probe signals:
//   - ErrNotWavFile: the stream is not a RIFF/WAVE container
//   - ErrUnsupportedWavFormat: a format tag other than PCM or IEEE float
//   - ErrUnsupportedBitDepth: a PCM depth outside {8, 16, 24, 32}
//
// Errors from ReadFrames and WriteFrames are fatal for the operation.
package wav
