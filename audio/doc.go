// SPDX-License-Identifier: EPL-2.0

// Package audio provides the data model and stream contracts shared by the
// format backends and the top-level read/write operations.
//
// This package contains:
//   - Header, Item, Format, StorageType and FormatHint types
//   - ByteReader/ByteWriter byte-stream contracts with memory and file
//     backings
//   - FrameReader/FrameWriter frame-stream contracts with in-memory Item
//     adapters
//   - Decoder/Encoder capability interfaces implemented by the format
//     packages
//   - FileWriter, an atomic-commit file sink
//
// # Byte Streams
//
// A ByteReader is an io.ReadSeeker with position, length and byte push-back
// extensions. Codec backends consume it directly; the same stream works
// whether it is backed by memory or by a file:
//
//	in := audio.NewBytesReader(data)   // memory
//	in, err := audio.OpenFile(path)    // file
//
// Both backings share exact seek semantics: current-relative seeks apply a
// signed delta to the position, end-relative seeks a signed delta to the
// length.
//
// # Atomic Commit
//
// FileWriter never exposes a partially written destination. Writes go to a
// sibling temporary file, and Commit atomically renames it into place:
//
//	w, err := audio.NewFileWriter(path)
//	if err != nil {
//	    return err
//	}
//	defer w.Close() // removes the temp file unless Commit succeeded
//	// ... write ...
//	return w.Commit()
//
// # Frame Streams
//
// FrameReader and FrameWriter move interleaved float32 frames. An Item is
// the in-memory decoded form (planar, one buffer per channel); ItemReader
// and ItemWriter adapt it to the same frame contracts used by codec
// backends, so a decode into memory and a decode into a re-encoder are the
// same loop.
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0] everywhere above the codec boundary.
// Fixed-point scaling happens inside the format packages, using the
// full-scale factor (1 << (bitDepth-1)) - 1.
//
// # Headers
//
// A Header is produced once per successful open and never mutated. Output
// sinks require the header exactly once, before any frames; Validate
// enforces channel count >= 1 and bit depth in {8, 16, 24, 32}.
//
// # Error Handling
//
// Frame sources return a short count with nil error (or io.EOF on a
// subsequent call) at end of stream. Sentinel errors in this package are
// matched with errors.Is.
package audio
