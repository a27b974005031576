// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer down-mixes an interleaved multi-channel Source to mono by
// averaging the channels of every frame.
type MonoMixer struct {
	src Source
	tmp []float32
	// values of a frame split across two source reads
	carry []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 8192),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("close mono source: %w", err)
	}

	return nil
}

// ReadSamples fills dst with up to len(dst) mono frames. A source read that
// ends inside a frame keeps the partial frame for the next call; a partial
// frame still pending at the end of the stream is dropped.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels <= 0 {
		return 0, ErrNoChannels
	}
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	need := len(dst) * channels
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}
	m.tmp = m.tmp[:need]

	held := copy(m.tmp, m.carry)
	m.carry = m.carry[:0]

	n, err := m.src.ReadSamples(m.tmp[held:])
	total := held + n
	frames := total / channels
	m.carry = append(m.carry, m.tmp[frames*channels:total]...)
	if frames == 0 {
		return 0, err
	}

	scale := 1 / float32(channels)
	if channels == 2 {
		for f := range frames {
			dst[f] = (m.tmp[2*f] + m.tmp[2*f+1]) * 0.5
		}
		return frames, err
	}

	for f := range frames {
		var sum float32
		for _, s := range m.tmp[f*channels : (f+1)*channels] {
			sum += s
		}
		dst[f] = sum * scale
	}

	return frames, err
}
