// SPDX-License-Identifier: EPL-2.0

package edit

import (
	"math"

	"github.com/ik5/voxedit/audio"
	"github.com/ik5/voxedit/utils"
)

const (
	// NormalizeTarget is the peak level Normalize scales to.
	NormalizeTarget = 0.98

	DefaultFadeSeconds = 0.5

	DefaultEchoDelay    = 0.4
	DefaultEchoFeedback = 0.4

	DefaultReverbDelay = 0.15
	DefaultReverbDecay = 0.35
)

// Direction selects which end of the buffer a fade shapes.
type Direction int

const (
	FadeIn Direction = iota
	FadeOut
)

func (d Direction) String() string {
	switch d {
	case FadeIn:
		return "in"
	case FadeOut:
		return "out"
	default:
		return "unknown"
	}
}

// Normalize scales buf so its peak sits at NormalizeTarget. Silent and
// already normalized buffers are returned unchanged.
func Normalize(buf *audio.Buffer) *audio.Buffer {
	peak := buf.Peak()
	if peak == 0 || peak == float32(NormalizeTarget) {
		return buf
	}

	factor := NormalizeTarget / float64(peak)

	return mapSamples(buf, func(s float32) float32 {
		return float32(float64(s) * factor)
	})
}

func Reverse(buf *audio.Buffer) *audio.Buffer {
	src := buf.Samples()
	out := make([]float32, len(src))
	for i, s := range src {
		out[len(src)-1-i] = s
	}

	return audio.FromSlice(buf.SampleRate(), out)
}

// Invert flips the phase of every sample.
func Invert(buf *audio.Buffer) *audio.Buffer {
	return mapSamples(buf, func(s float32) float32 { return -s })
}

// Gain scales buf by db decibels. The result is not clamped.
func Gain(buf *audio.Buffer, db float64) *audio.Buffer {
	if db == 0 {
		return buf
	}

	factor := float32(utils.DBToLinear(db))

	return mapSamples(buf, func(s float32) float32 { return s * factor })
}

// Fade applies a linear ramp over the first (FadeIn) or last (FadeOut)
// seconds of buf. The ramp is i/fadeSamples, so a fade longer than the
// buffer never reaches full level.
func Fade(buf *audio.Buffer, dir Direction, seconds float64) *audio.Buffer {
	fadeSamples := int(math.Floor(seconds * float64(buf.SampleRate())))
	if fadeSamples <= 0 || buf.IsEmpty() {
		return buf
	}

	out := buf.CopySamples()
	n := min(fadeSamples, len(out))

	for i := range n {
		g := float32(i) / float32(fadeSamples)
		if dir == FadeOut {
			out[len(out)-1-i] *= g
		} else {
			out[i] *= g
		}
	}

	return audio.FromSlice(buf.SampleRate(), out)
}

// Echo adds one delayed copy of the input, scaled by feedback.
func Echo(buf *audio.Buffer, delaySeconds, feedback float64) *audio.Buffer {
	d := delaySamples(buf, delaySeconds)
	src := buf.Samples()
	out := make([]float32, len(src))
	fb := float32(feedback)

	for i, s := range src {
		if i > d {
			s += src[i-d] * fb
		}
		out[i] = s
	}

	return audio.FromSlice(buf.SampleRate(), out)
}

// Reverb feeds the delayed output back into itself, producing a decaying
// train of repeats.
func Reverb(buf *audio.Buffer, delaySeconds, decay float64) *audio.Buffer {
	d := delaySamples(buf, delaySeconds)
	src := buf.Samples()
	out := make([]float32, len(src))
	k := float32(decay)

	for i, s := range src {
		if i > d {
			s += out[i-d] * k
		}
		out[i] = s
	}

	return audio.FromSlice(buf.SampleRate(), out)
}

func delaySamples(buf *audio.Buffer, seconds float64) int {
	return max(0, int(math.Floor(seconds*float64(buf.SampleRate()))))
}

func mapSamples(buf *audio.Buffer, fn func(float32) float32) *audio.Buffer {
	src := buf.Samples()
	out := make([]float32, len(src))
	for i, s := range src {
		out[i] = fn(s)
	}

	return audio.FromSlice(buf.SampleRate(), out)
}
