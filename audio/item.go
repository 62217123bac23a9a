// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/colugomusic/audiorw/utils"
)

// Item is a fully decoded audio stream held in memory: a header plus one
// planar float32 buffer per channel, each FrameCount long. An Item is owned
// by its caller: created empty, populated incrementally through an
// ItemWriter, and read-only thereafter.
type Item struct {
	Header Header
	Frames [][]float32
}

// NewItem allocates an Item sized from h.
func NewItem(h Header) (*Item, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	item := &Item{Header: h}
	item.alloc()

	return item, nil
}

func (it *Item) alloc() {
	it.Frames = make([][]float32, it.Header.ChannelCount)
	for ch := range it.Frames {
		it.Frames[ch] = make([]float32, it.Header.FrameCount)
	}
}

// ItemReader adapts an Item to the FrameReader contract by interleaving
// planar channel data on the fly.
type ItemReader struct {
	item *Item
	pos  uint64
}

// NewItemReader returns a FrameReader over item, positioned at frame zero.
func NewItemReader(item *Item) *ItemReader {
	return &ItemReader{item: item}
}

// ReadFrames fills dst with interleaved samples from the current position.
// Returns io.EOF only once the item is exhausted and no frames were read.
func (r *ItemReader) ReadFrames(dst []float32) (int, error) {
	channels := r.item.Header.ChannelCount
	if len(dst)%channels != 0 {
		return 0, ErrInvalidBufSize
	}

	want := uint64(len(dst) / channels)

	remaining := r.item.Header.FrameCount - r.pos
	if remaining == 0 && want > 0 {
		return 0, io.EOF
	}

	n := min(want, remaining)
	utils.Interleave(dst, r.item.Frames, int(r.pos), int(n))
	r.pos += n

	return int(n), nil
}

// SeekFrame repositions the reader.
func (r *ItemReader) SeekFrame(frame uint64) error {
	if frame > r.item.Header.FrameCount {
		return fmt.Errorf("%w: frame %d of %d", ErrFrameOutOfRange, frame, r.item.Header.FrameCount)
	}

	r.pos = frame

	return nil
}

// ItemWriter adapts an Item to the FrameWriter contract: WriteHeader sizes
// the planar buffer once, and WriteFrames deinterleaves incoming samples
// into it by position.
type ItemWriter struct {
	item        *Item
	pos         uint64
	wroteHeader bool
}

// NewItemWriter returns a FrameWriter populating item.
func NewItemWriter(item *Item) *ItemWriter {
	return &ItemWriter{item: item}
}

// WriteHeader validates h, stores it on the item and allocates the frame
// buffer. It must be called exactly once, before any frames.
func (w *ItemWriter) WriteHeader(h Header) error {
	if w.wroteHeader {
		return ErrHeaderAlreadyWritten
	}

	if err := h.Validate(); err != nil {
		return err
	}

	w.item.Header = h
	w.item.alloc()
	w.wroteHeader = true

	return nil
}

// WriteFrames deinterleaves src into the item at the current position.
func (w *ItemWriter) WriteFrames(src []float32) (int, error) {
	if !w.wroteHeader {
		return 0, ErrHeaderNotWritten
	}

	channels := w.item.Header.ChannelCount
	if len(src)%channels != 0 {
		return 0, ErrInvalidBufSize
	}

	frames := uint64(len(src) / channels)
	if w.pos+frames > w.item.Header.FrameCount {
		return 0, fmt.Errorf("%w: frame %d of %d", ErrFrameOutOfRange,
			w.pos+frames, w.item.Header.FrameCount)
	}

	utils.Deinterleave(w.item.Frames, int(w.pos), src, int(frames))
	w.pos += frames

	return int(frames), nil
}

// SeekFrame repositions the writer. Format resolution rewinds failed
// candidates to frame zero through this.
func (w *ItemWriter) SeekFrame(frame uint64) error {
	if !w.wroteHeader {
		if frame == 0 {
			return nil
		}

		return ErrHeaderNotWritten
	}

	if frame > w.item.Header.FrameCount {
		return fmt.Errorf("%w: frame %d of %d", ErrFrameOutOfRange, frame, w.item.Header.FrameCount)
	}

	w.pos = frame

	return nil
}

// Commit finalizes the sink. Nothing to flush for in-memory items.
func (w *ItemWriter) Commit() error {
	return nil
}
