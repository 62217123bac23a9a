// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"math"

	"github.com/colugomusic/audiorw/audio"
)

// Injected failure sentinels, so tests can tell a deliberate fault from a
// real one.
var (
	ErrReadFault  = errors.New("injected read fault")
	ErrWriteFault = errors.New("injected write fault")
)

// MockReader is a test helper that generates interleaved frames on demand.
// Samples come from a waveform function, so tests can assert exact values
// without fixture files. It implements the audio.FrameReader contract:
// short counts appear only at the end of the stream.
type MockReader struct {
	channels    int
	totalFrames int
	pos         int
	waveform    func(frame int, channel int) float32

	// ShortBy removes frames from the end of the stream without changing
	// totalFrames, so the reader under-delivers against any header built
	// from TotalFrames.
	ShortBy int
	// FailAt injects a read error once the position reaches the given
	// frame. Zero disables it.
	FailAt int
}

// NewMockReader creates a mock frame source.
// totalFrames is the number of frames to generate; waveform produces the
// sample value for a given frame index and channel.
func NewMockReader(channels, totalFrames int, waveform func(frame int, channel int) float32) *MockReader {
	return &MockReader{
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentReader creates a mock source that generates silence.
func NewSilentReader(channels, totalFrames int) *MockReader {
	return NewMockReader(channels, totalFrames, func(frame int, channel int) float32 {
		return 0.0
	})
}

// NewSineReader creates a mock source that generates one sine cycle every
// period frames, scaled down on the higher channels so channels are
// distinguishable.
func NewSineReader(channels, totalFrames, period int) *MockReader {
	return NewMockReader(channels, totalFrames, func(frame int, channel int) float32 {
		phase := 2 * math.Pi * float64(frame) / float64(period)
		return float32(0.8 / float64(channel+1) * math.Sin(phase))
	})
}

// NewConstantReader creates a mock source with constant value.
func NewConstantReader(channels, totalFrames int, value float32) *MockReader {
	return NewMockReader(channels, totalFrames, func(frame int, channel int) float32 {
		return value
	})
}

// TotalFrames returns the nominal stream length, not reduced by ShortBy.
func (m *MockReader) TotalFrames() int { return m.totalFrames }

// Channels returns the channel count.
func (m *MockReader) Channels() int { return m.channels }

// At returns the waveform value for one frame and channel, for asserting
// delivered samples against the source.
func (m *MockReader) At(frame, channel int) float32 {
	return m.waveform(frame, channel)
}

// Reset rewinds the reader to frame zero to allow re-reading.
func (m *MockReader) Reset() {
	m.pos = 0
}

// ReadFrames fills dst from the waveform at the current position.
func (m *MockReader) ReadFrames(dst []float32) (int, error) {
	if m.FailAt > 0 && m.pos >= m.FailAt {
		return 0, ErrReadFault
	}

	end := m.totalFrames - m.ShortBy
	if end < 0 {
		end = 0
	}

	frames := len(dst) / m.channels
	if avail := end - m.pos; frames > avail {
		frames = avail
	}

	for frame := range frames {
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(m.pos+frame, ch)
		}
	}

	m.pos += frames

	return frames, nil
}

// MockWriter is a frame sink that records everything it receives, plus the
// order of header, seek and commit calls.
type MockWriter struct {
	header      audio.Header
	wroteHeader bool
	samples     []float32
	pos         int
	seeks       []uint64
	committed   bool

	// MaxFrames caps how many frames the sink accepts in total; writes
	// beyond the cap report short counts. Zero means unlimited.
	MaxFrames int
	// FailAt injects a write error once the position reaches the given
	// frame. Zero disables it.
	FailAt int
}

// NewMockWriter creates an empty recording sink.
func NewMockWriter() *MockWriter {
	return &MockWriter{}
}

// WriteHeader records the header. A second call is an error, matching the
// frame sink contract.
func (m *MockWriter) WriteHeader(h audio.Header) error {
	if m.wroteHeader {
		return audio.ErrHeaderAlreadyWritten
	}

	m.header = h
	m.wroteHeader = true

	return nil
}

// WriteFrames records src at the current position, growing the backing
// buffer as needed.
func (m *MockWriter) WriteFrames(src []float32) (int, error) {
	if !m.wroteHeader {
		return 0, audio.ErrHeaderNotWritten
	}

	if m.FailAt > 0 && m.pos >= m.FailAt {
		return 0, ErrWriteFault
	}

	channels := m.header.ChannelCount
	frames := len(src) / channels

	if m.MaxFrames > 0 {
		if avail := m.MaxFrames - m.pos; frames > avail {
			frames = avail
		}
	}

	if need := (m.pos + frames) * channels; need > len(m.samples) {
		m.samples = append(m.samples, make([]float32, need-len(m.samples))...)
	}

	copy(m.samples[m.pos*channels:], src[:frames*channels])
	m.pos += frames

	return frames, nil
}

// SeekFrame records and applies the new position.
func (m *MockWriter) SeekFrame(frame uint64) error {
	m.seeks = append(m.seeks, frame)
	m.pos = int(frame)

	return nil
}

// Commit marks the sink finalized.
func (m *MockWriter) Commit() error {
	m.committed = true

	return nil
}

// Header returns the recorded header.
func (m *MockWriter) Header() audio.Header { return m.header }

// HeaderWritten reports whether a header arrived.
func (m *MockWriter) HeaderWritten() bool { return m.wroteHeader }

// Committed reports whether Commit was called.
func (m *MockWriter) Committed() bool { return m.committed }

// SeekCalls returns every SeekFrame argument in call order.
func (m *MockWriter) SeekCalls() []uint64 { return m.seeks }

// FrameCount returns the number of frames recorded so far.
func (m *MockWriter) FrameCount() int {
	if !m.wroteHeader {
		return 0
	}

	return len(m.samples) / m.header.ChannelCount
}

// Sample returns the recorded value at one frame and channel.
func (m *MockWriter) Sample(frame, channel int) float32 {
	return m.samples[frame*m.header.ChannelCount+channel]
}

// Samples returns the recorded interleaved buffer.
func (m *MockWriter) Samples() []float32 { return m.samples }
