// SPDX-License-Identifier: EPL-2.0

// Package audiorw reads and writes audio streams independently of their
// container format.
//
// This package offers one decode surface and one encode surface over several
// codec backends. Callers work with interleaved float32 samples in [-1, 1]
// and a small stream header; which codec produced or consumes those samples
// is a value in the header, never a separate code path on the caller's side.
//
// # Supported Formats
//
// The package decodes the following formats:
//   - FLAC via formats/flac
//   - MP3 via formats/mp3
//   - WAV via formats/wav
//   - Ogg Vorbis via formats/vorbis
//
// WAV and FLAC can also be encoded. The remaining formats are decode-only
// and writing them returns ErrNoEncoder.
//
// # Quick Start
//
// The simplest way to load a file is ReadFile:
//
//	hint, _ := audiorw.HintForPath("take.flac", true)
//	item, err := audiorw.ReadFile("take.flac", hint, nil)
//
//	// item.Frames[channel][frame] now holds the decoded samples
//
// And WriteFile goes the other way, picking the encoder from the extension:
//
//	err := audiorw.WriteFile(item, "take.wav", audio.StorageInt, nil)
//
// # Format Resolution
//
// Decoding never trusts a file extension alone. A FormatHint names the
// format to try and whether to fall back to the others:
//
//	audio.Only(audio.FormatWAV)   // WAV or fail
//	audio.First(audio.FormatWAV)  // WAV first, then the rest
//
// Each candidate backend gets to open the stream; the first one that
// recognizes it wins. When every candidate refuses, the operation fails
// with ErrUnrecognizedFormat wrapping the last backend's error.
//
// # Streaming
//
// Read and ReadFile buffer the whole stream. For incremental access, a
// Streamer decodes on demand and seeks by frame:
//
//	s, err := audiorw.Open("take.flac", hint)
//	defer s.Close()
//
//	s.SeekFrame(44100)
//	buf := make([]float32, 4096*s.Header().ChannelCount)
//	n, err := s.ReadFrames(buf)
//
// # Cancellation and Atomic Output
//
// Long transfers take an optional shouldAbort func() bool, polled between
// chunks; returning true stops the operation with ErrAborted. File output
// goes through a temporary sibling that is renamed over the destination
// only after the final frame, so an aborted or failed write never leaves a
// partial file at the destination path.
//
// # Performance
//
// Transfers move fixed-size chunks through one reused buffer, so decoding
// a file allocates the destination and little else. Seeking positions the
// codec instead of re-decoding from the start wherever the backend allows.
//
// See the individual subpackages for more detailed documentation.
package audiorw
