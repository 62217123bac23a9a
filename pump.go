// SPDX-License-Identifier: EPL-2.0

package audiorw

import (
	"fmt"
	"io"

	"github.com/colugomusic/audiorw/audio"
)

// chunkFrames is the fixed transfer granularity. The abort check runs once
// per chunk, so it also bounds cancellation latency.
const chunkFrames = 1 << 14

// pump copies h.FrameCount frames from src to dst in chunks, then finalizes
// dst. Both sides run under an exact-count contract: the frame count comes
// from an authoritative header, so any shortfall means the stream is corrupt
// or a backend misbehaved, and the transfer stops with ErrIncompleteTransfer
// rather than padding or truncating. An io.EOF arriving alongside the final
// frames is not a fault; only the count matters.
//
// shouldAbort may be nil. When it reports true the pump returns ErrAborted
// without committing, so an atomic destination is discarded, not published.
func pump(dst audio.FrameWriter, src audio.FrameReader, h audio.Header, shouldAbort func() bool) error {
	buf := make([]float32, chunkFrames*h.ChannelCount)

	remaining := h.FrameCount
	for remaining > 0 {
		if shouldAbort != nil && shouldAbort() {
			return ErrAborted
		}

		frames := chunkFrames
		if remaining < chunkFrames {
			frames = int(remaining)
		}

		chunk := buf[:frames*h.ChannelCount]

		n, err := src.ReadFrames(chunk)
		if err != nil && err != io.EOF {
			return fmt.Errorf("read frames: %w", err)
		}

		if n != frames {
			return fmt.Errorf("%w: read %d of %d frames", ErrIncompleteTransfer, n, frames)
		}

		if n, err = dst.WriteFrames(chunk); err != nil {
			return fmt.Errorf("write frames: %w", err)
		}

		if n != frames {
			return fmt.Errorf("%w: wrote %d of %d frames", ErrIncompleteTransfer, n, frames)
		}

		remaining -= uint64(frames)
	}

	return dst.Commit()
}
