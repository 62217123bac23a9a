// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio stream decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 streams.
// It adapts the codec to the uniform frame-stream capability of the audio
// package.
//
// # Decoding MP3 Streams
//
// Use Open to probe a byte stream:
//
//	in, _ := audio.OpenFile("audio.mp3")
//	defer in.Close()
//
//	dec, err := mp3.Open(in)
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
// The codec always emits:
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: 2 (stereo)
//   - Bit depth: reported as 16, the codec's PCM precision
//   - Sample rate: taken from the stream (typically 44.1kHz or 48kHz)
//
// The frame count is known upfront because the codec indexes every frame
// start when the stream opens. The same index makes SeekFrame cheap: the
// target frame maps directly to an offset in decoded bytes.
//
// # Limitations
//
// Note:
//   - MP3 writing is not supported (decoding only)
//   - Output is always stereo, whatever the source carried
//   - Open scans the whole stream before the first frame is read
package mp3
