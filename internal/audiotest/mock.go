// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrMock is returned by the failing helpers.
var ErrMock = errors.New("audiotest: injected failure")

// MockSource is a test helper that generates planar audio data.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float64

	// FailAfter makes ReadFrames fail with ErrMock once this many samples
	// per channel were produced. Zero disables it.
	FailAfter int
	// HideLength makes Length report -1.
	HideLength bool
	Closed     bool
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float64) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalSamples, 0)
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float64 {
		t := float64(sample) / float64(sampleRate)
		return math.Sin(2 * math.Pi * frequency * t)
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float64 {
		return value
	})
}

// NewRampSource creates a mock source where each sample encodes its own
// position: Ramp(sample, channel). Handy for checking ordering and delay.
func NewRampSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, Ramp)
}

// Ramp is the waveform of NewRampSource.
func Ramp(sample, channel int) float64 {
	return float64(sample) + float64(channel)/10
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { m.Closed = true; return nil }

func (m *MockSource) Length() int64 {
	if m.HideLength {
		return -1
	}
	return int64(m.totalSamples)
}

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadFrames(dst [][]float64) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}
	if m.FailAfter > 0 && m.generated >= m.FailAfter {
		return 0, ErrMock
	}
	if len(dst) != m.channels {
		return 0, errors.New("audiotest: channel count mismatch")
	}

	n := min(len(dst[0]), m.totalSamples-m.generated)
	if m.FailAfter > 0 {
		n = min(n, m.FailAfter-m.generated)
	}

	for ch := range m.channels {
		for i := range n {
			dst[ch][i] = m.waveform(m.generated+i, ch)
		}
	}
	m.generated += n

	if m.generated >= m.totalSamples {
		return n, io.EOF
	}
	return n, nil
}

// MemorySink collects planar output in memory.
// It implements the audio.Sink interface.
type MemorySink struct {
	Samples [][]float64
	Writes  int
	Closed  bool

	// FailOnWrite makes the given (1-based) WriteFrames call fail with ErrMock.
	FailOnWrite int
}

func NewMemorySink(channels int) *MemorySink {
	return &MemorySink{Samples: make([][]float64, channels)}
}

func (s *MemorySink) WriteFrames(src [][]float64, n int) error {
	s.Writes++
	if s.FailOnWrite > 0 && s.Writes == s.FailOnWrite {
		return ErrMock
	}
	if len(src) != len(s.Samples) {
		return errors.New("audiotest: channel count mismatch")
	}
	for c := range s.Samples {
		s.Samples[c] = append(s.Samples[c], src[c][:n]...)
	}
	return nil
}

func (s *MemorySink) Close() error {
	s.Closed = true
	return nil
}

// Len is the number of samples per channel collected so far.
func (s *MemorySink) Len() int {
	if len(s.Samples) == 0 {
		return 0
	}
	return len(s.Samples[0])
}
