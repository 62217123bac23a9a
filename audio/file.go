// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"os"
)

// tmpSuffix is appended to the destination path for the atomic writer's
// temporary file.
const tmpSuffix = ".tmp"

// FileReader is a ByteReader over an OS file handle.
type FileReader struct {
	f *os.File
}

// OpenFile opens path for reading.
func OpenFile(path string) (*FileReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return &FileReader{f: f}, nil
}

func (r *FileReader) Read(p []byte) (int, error) {
	return r.f.Read(p)
}

func (r *FileReader) Seek(offset int64, whence int) (int64, error) {
	return r.f.Seek(offset, whence)
}

// Pos returns the current read offset.
func (r *FileReader) Pos() int64 {
	pos, err := r.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0
	}

	return pos
}

// Len returns the file size, or ok=false if it cannot be determined.
func (r *FileReader) Len() (int64, bool) {
	info, err := r.f.Stat()
	if err != nil {
		return 0, false
	}

	return info.Size(), true
}

// UnreadByte steps the read offset back one byte.
func (r *FileReader) UnreadByte() error {
	if _, err := r.f.Seek(-1, io.SeekCurrent); err != nil {
		return fmt.Errorf("unread byte: %w", err)
	}

	return nil
}

// Close closes the underlying file.
func (r *FileReader) Close() error {
	return r.f.Close()
}

// FileWriter is a ByteWriter with atomic-commit semantics: all writes go to
// a sibling temporary file (destination path plus ".tmp"), and only Commit
// promotes it to the destination. Readers of the destination never observe
// a partially written file.
//
// The usual pattern of use is
//
//	w, err := audio.NewFileWriter(path)
//	if err != nil { ... }
//	defer w.Close()
//	// ... write ...
//	return w.Commit()
//
// Close before a successful Commit removes the temporary file; after one it
// is a no-op.
type FileWriter struct {
	f         *os.File
	dst       string
	tmp       string
	committed bool
}

// NewFileWriter creates the temporary file for destination path dst.
func NewFileWriter(dst string) (*FileWriter, error) {
	tmp := dst + tmpSuffix

	f, err := os.Create(tmp)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", tmp, err)
	}

	return &FileWriter{f: f, dst: dst, tmp: tmp}, nil
}

func (w *FileWriter) Write(p []byte) (int, error) {
	if w.f == nil {
		return 0, fmt.Errorf("write %s: writer is finished", w.dst)
	}

	return w.f.Write(p)
}

func (w *FileWriter) Seek(offset int64, whence int) (int64, error) {
	if w.f == nil {
		return 0, fmt.Errorf("seek %s: writer is finished", w.dst)
	}

	return w.f.Seek(offset, whence)
}

// Commit flushes and closes the temporary file, then renames it over the
// destination. The rename is atomic with respect to other processes
// observing the destination path. Repeated calls after the first success
// are no-ops.
func (w *FileWriter) Commit() error {
	if w.committed {
		return nil
	}

	if err := w.f.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", w.tmp, err)
	}

	if err := w.f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", w.tmp, err)
	}

	w.f = nil

	if err := os.Rename(w.tmp, w.dst); err != nil {
		return fmt.Errorf("rename %s: %w", w.tmp, err)
	}

	w.committed = true

	return nil
}

// Close abandons the write if Commit has not succeeded: the temporary file
// is closed and removed, best effort, with cleanup errors suppressed.
func (w *FileWriter) Close() error {
	if w.committed {
		return nil
	}

	if w.f != nil {
		w.f.Close()
		w.f = nil
	}

	os.Remove(w.tmp)

	return nil
}
