// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// BytesReader is a ByteReader over a fixed in-memory byte range.
type BytesReader struct {
	data []byte
	pos  int64
}

// NewBytesReader returns a ByteReader reading from data. The slice is not
// copied; the caller must not mutate it while the reader is in use.
func NewBytesReader(data []byte) *BytesReader {
	return &BytesReader{data: data}
}

func (r *BytesReader) Read(p []byte) (int, error) {
	if r.pos >= int64(len(r.data)) {
		return 0, io.EOF
	}

	n := copy(p, r.data[r.pos:])
	r.pos += int64(n)

	return n, nil
}

func (r *BytesReader) Seek(offset int64, whence int) (int64, error) {
	var abs int64

	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = r.pos + offset
	case io.SeekEnd:
		abs = int64(len(r.data)) + offset
	default:
		return 0, fmt.Errorf("invalid seek whence %d", whence)
	}

	if abs < 0 {
		return 0, fmt.Errorf("negative seek position %d", abs)
	}

	r.pos = abs

	return abs, nil
}

// Pos returns the current read offset.
func (r *BytesReader) Pos() int64 {
	return r.pos
}

// Len returns the total byte length. Always knowable for memory backings.
func (r *BytesReader) Len() (int64, bool) {
	return int64(len(r.data)), true
}

// UnreadByte steps the position back one byte.
func (r *BytesReader) UnreadByte() error {
	if r.pos <= 0 {
		return fmt.Errorf("unread byte at start of stream")
	}

	r.pos--

	return nil
}

// Close releases nothing; memory backings have no OS resources.
func (r *BytesReader) Close() error {
	return nil
}

// BytesWriter is a ByteWriter over a growable in-memory buffer. Seeking
// backward overwrites in place; seeking past the end zero-fills the gap on
// the next write, matching file semantics.
type BytesWriter struct {
	buf []byte
	pos int64
}

// NewBytesWriter returns an empty in-memory byte sink.
func NewBytesWriter() *BytesWriter {
	return &BytesWriter{}
}

func (w *BytesWriter) Write(p []byte) (int, error) {
	end := w.pos + int64(len(p))

	// Growing to the write end also zero-fills any gap left by a seek
	// past the end, matching file semantics.
	if end > int64(len(w.buf)) {
		grown := make([]byte, end)
		copy(grown, w.buf)
		w.buf = grown
	}

	copy(w.buf[w.pos:end], p)
	w.pos = end

	return len(p), nil
}

func (w *BytesWriter) Seek(offset int64, whence int) (int64, error) {
	var abs int64

	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = w.pos + offset
	case io.SeekEnd:
		abs = int64(len(w.buf)) + offset
	default:
		return 0, fmt.Errorf("invalid seek whence %d", whence)
	}

	if abs < 0 {
		return 0, fmt.Errorf("negative seek position %d", abs)
	}

	w.pos = abs

	return abs, nil
}

// Commit finalizes the buffer. Nothing to do for memory backings.
func (w *BytesWriter) Commit() error {
	return nil
}

// Bytes returns the written content. The slice aliases the internal buffer.
func (w *BytesWriter) Bytes() []byte {
	return w.buf
}
