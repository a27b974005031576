// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
)

// mockSource generates interleaved samples from a waveform function.
type mockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to generate
	generated  int
	waveform   func(frame, channel int) float32
}

func newMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

func newConstantSource(sampleRate, channels, frames int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// newRampSource produces frame/frames on every channel.
func newRampSource(sampleRate, channels, frames int) *mockSource {
	return newMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		return float32(frame) / float32(frames)
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) Close() error    { return nil }
func (m *mockSource) Reset()          { m.generated = 0 }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.frames-m.generated)
	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += frames

	if m.generated >= m.frames {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}

var errBrokenSource = errors.New("broken source")

// brokenSource yields one chunk and then fails.
type brokenSource struct {
	calls int
}

func (b *brokenSource) SampleRate() int { return 8000 }
func (b *brokenSource) Channels() int   { return 1 }
func (b *brokenSource) Close() error    { return errBrokenSource }

func (b *brokenSource) ReadSamples(dst []float32) (int, error) {
	b.calls++
	if b.calls == 1 {
		return len(dst), nil
	}

	return 0, errBrokenSource
}

// stalledSource never produces data and never reports EOF.
type stalledSource struct{}

func (stalledSource) SampleRate() int                    { return 8000 }
func (stalledSource) Channels() int                      { return 1 }
func (stalledSource) Close() error                       { return nil }
func (stalledSource) ReadSamples([]float32) (int, error) { return 0, nil }
