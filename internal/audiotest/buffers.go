// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"
	"sync"

	"github.com/ik5/voxedit/audio"
)

// Constant returns n samples of value.
func Constant(rate, n int, value float32) *audio.Buffer {
	s := make([]float32, n)
	for i := range s {
		s[i] = value
	}

	return audio.FromSlice(rate, s)
}

// Sine returns n samples of a sine wave with the given peak amplitude.
func Sine(rate, n int, frequency float64, amplitude float32) *audio.Buffer {
	s := make([]float32, n)
	for i := range s {
		t := float64(i) / float64(rate)
		s[i] = amplitude * float32(math.Sin(2*math.Pi*frequency*t))
	}

	return audio.FromSlice(rate, s)
}

// Ramp returns n samples rising linearly from 0 towards 1.
func Ramp(rate, n int) *audio.Buffer {
	s := make([]float32, n)
	for i := range s {
		s[i] = float32(i) / float32(n)
	}

	return audio.FromSlice(rate, s)
}

// Part is one stretch of a Pattern: n samples of a square wave with the
// given amplitude. Amplitude 0 is digital silence.
type Part struct {
	N         int
	Amplitude float32
}

// Pattern concatenates parts into one buffer. Loud parts alternate sign on
// every sample so that every window has the same RMS.
func Pattern(rate int, parts ...Part) *audio.Buffer {
	total := 0
	for _, p := range parts {
		total += p.N
	}

	s := make([]float32, 0, total)
	for _, p := range parts {
		for i := range p.N {
			v := p.Amplitude
			if i%2 == 1 {
				v = -v
			}
			s = append(s, v)
		}
	}

	return audio.FromSlice(rate, s)
}

// Player records every buffer it is asked to play.
type Player struct {
	mu     sync.Mutex
	played []*audio.Buffer
	Err    error
}

func (p *Player) Play(buf *audio.Buffer) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.Err != nil {
		return p.Err
	}
	p.played = append(p.played, buf)

	return nil
}

// Played returns the buffers played so far, oldest first.
func (p *Player) Played() []*audio.Buffer {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*audio.Buffer(nil), p.played...)
}
