// SPDX-License-Identifier: EPL-2.0

package audiorw

import (
	"errors"
	"io"
	"testing"

	"github.com/colugomusic/audiorw/audio"
	"github.com/colugomusic/audiorw/internal/audiotest"
)

func pumpHeader(channels, frames int) audio.Header {
	return audio.Header{
		Format:       audio.FormatWAV,
		ChannelCount: channels,
		FrameCount:   uint64(frames),
		SampleRate:   44100,
		BitDepth:     16,
	}
}

func TestPump_Delivery(t *testing.T) {
	t.Parallel()

	h := pumpHeader(2, 300)
	src := audiotest.NewSineReader(2, 300, 64)
	dst := audiotest.NewMockWriter()

	if err := dst.WriteHeader(h); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}

	if err := pump(dst, src, h, nil); err != nil {
		t.Fatalf("pump() error = %v", err)
	}

	if got := dst.FrameCount(); got != 300 {
		t.Fatalf("pump() delivered %d frames, want 300", got)
	}

	if !dst.Committed() {
		t.Error("pump() did not commit the sink")
	}

	for frame := range 300 {
		for ch := range 2 {
			if got, want := dst.Sample(frame, ch), src.At(frame, ch); got != want {
				t.Fatalf("sample[%d][%d] = %v, want %v", frame, ch, got, want)
			}
		}
	}
}

func TestPump_AbortBetweenChunks(t *testing.T) {
	t.Parallel()

	// More than two chunks of data, aborting on the second poll: exactly
	// one chunk must land.
	total := 3 * chunkFrames
	h := pumpHeader(1, total)
	src := audiotest.NewSineReader(1, total, 64)
	dst := audiotest.NewMockWriter()

	if err := dst.WriteHeader(h); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}

	polls := 0
	abort := func() bool {
		polls++

		return polls == 2
	}

	err := pump(dst, src, h, abort)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("pump() error = %v, want ErrAborted", err)
	}

	if got := dst.FrameCount(); got != chunkFrames {
		t.Errorf("pump() delivered %d frames before abort, want %d", got, chunkFrames)
	}

	if dst.Committed() {
		t.Error("aborted pump committed the sink")
	}
}

func TestPump_AbortImmediately(t *testing.T) {
	t.Parallel()

	h := pumpHeader(1, 100)
	src := audiotest.NewSineReader(1, 100, 64)
	dst := audiotest.NewMockWriter()

	if err := dst.WriteHeader(h); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}

	err := pump(dst, src, h, func() bool { return true })
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("pump() error = %v, want ErrAborted", err)
	}

	if got := dst.FrameCount(); got != 0 {
		t.Errorf("pump() delivered %d frames, want 0", got)
	}
}

func TestPump_ShortRead(t *testing.T) {
	t.Parallel()

	h := pumpHeader(2, 100)
	src := audiotest.NewSineReader(2, 100, 64)
	src.ShortBy = 30
	dst := audiotest.NewMockWriter()

	if err := dst.WriteHeader(h); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}

	err := pump(dst, src, h, nil)
	if !errors.Is(err, ErrIncompleteTransfer) {
		t.Fatalf("pump() error = %v, want ErrIncompleteTransfer", err)
	}

	if dst.Committed() {
		t.Error("failed pump committed the sink")
	}
}

func TestPump_ShortWrite(t *testing.T) {
	t.Parallel()

	h := pumpHeader(2, 100)
	src := audiotest.NewSineReader(2, 100, 64)
	dst := audiotest.NewMockWriter()
	dst.MaxFrames = 40

	if err := dst.WriteHeader(h); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}

	err := pump(dst, src, h, nil)
	if !errors.Is(err, ErrIncompleteTransfer) {
		t.Fatalf("pump() error = %v, want ErrIncompleteTransfer", err)
	}

	if dst.Committed() {
		t.Error("failed pump committed the sink")
	}
}

func TestPump_ReadFault(t *testing.T) {
	t.Parallel()

	total := 2 * chunkFrames
	h := pumpHeader(1, total)
	src := audiotest.NewSineReader(1, total, 64)
	src.FailAt = 1
	dst := audiotest.NewMockWriter()

	if err := dst.WriteHeader(h); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}

	err := pump(dst, src, h, nil)
	if !errors.Is(err, audiotest.ErrReadFault) {
		t.Fatalf("pump() error = %v, want the injected read fault", err)
	}

	if errors.Is(err, ErrIncompleteTransfer) {
		t.Errorf("pump() reported a hard read fault as ErrIncompleteTransfer: %v", err)
	}

	// The first chunk precedes the fault position.
	if got := dst.FrameCount(); got != chunkFrames {
		t.Errorf("pump() delivered %d frames before the fault, want %d", got, chunkFrames)
	}
}

func TestPump_WriteFault(t *testing.T) {
	t.Parallel()

	total := 2 * chunkFrames
	h := pumpHeader(1, total)
	src := audiotest.NewSineReader(1, total, 64)
	dst := audiotest.NewMockWriter()
	dst.FailAt = 1

	if err := dst.WriteHeader(h); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}

	err := pump(dst, src, h, nil)
	if !errors.Is(err, audiotest.ErrWriteFault) {
		t.Fatalf("pump() error = %v, want the injected write fault", err)
	}

	if dst.Committed() {
		t.Error("failed pump committed the sink")
	}
}

func TestPump_ZeroFrames(t *testing.T) {
	t.Parallel()

	h := pumpHeader(1, 0)
	src := audiotest.NewSilentReader(1, 0)
	dst := audiotest.NewMockWriter()

	if err := dst.WriteHeader(h); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}

	if err := pump(dst, src, h, nil); err != nil {
		t.Fatalf("pump() error = %v", err)
	}

	if got := dst.FrameCount(); got != 0 {
		t.Errorf("pump() delivered %d frames, want 0", got)
	}

	if !dst.Committed() {
		t.Error("pump() did not commit the empty sink")
	}
}

// eofTailReader delivers its frames with io.EOF attached to the final read,
// the way many io sources behave.
type eofTailReader struct {
	left int
}

func (r *eofTailReader) ReadFrames(dst []float32) (int, error) {
	n := min(len(dst), r.left)
	r.left -= n

	if r.left == 0 {
		return n, io.EOF
	}

	return n, nil
}

func TestPump_FinalReadEOF(t *testing.T) {
	t.Parallel()

	h := pumpHeader(1, 500)
	dst := audiotest.NewMockWriter()

	if err := dst.WriteHeader(h); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}

	if err := pump(dst, &eofTailReader{left: 500}, h, nil); err != nil {
		t.Fatalf("pump() error = %v, want io.EOF on the final frames tolerated", err)
	}

	if got := dst.FrameCount(); got != 500 {
		t.Errorf("pump() delivered %d frames, want 500", got)
	}

	if !dst.Committed() {
		t.Error("pump() did not commit the sink")
	}
}

func BenchmarkPump(b *testing.B) {
	h := pumpHeader(2, 4*chunkFrames)
	src := audiotest.NewSineReader(2, 4*chunkFrames, 64)
	dst := audiotest.NewMockWriter()

	if err := dst.WriteHeader(h); err != nil {
		b.Fatalf("WriteHeader() error = %v", err)
	}

	b.ReportAllocs()

	for b.Loop() {
		src.Reset()

		if err := dst.SeekFrame(0); err != nil {
			b.Fatalf("SeekFrame() error = %v", err)
		}

		if err := pump(dst, src, h, nil); err != nil {
			b.Fatalf("pump() error = %v", err)
		}
	}
}
