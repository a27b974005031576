// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"time"
)

// Buffer is an owned, fixed-length, single-channel block of float32 samples at
// a known sample rate.
//
// A Buffer never changes after construction. Transforms allocate a new Buffer
// for their output, which makes it safe to keep old buffers around as history
// snapshots or to paste the same clipboard buffer many times.
type Buffer struct {
	sampleRate int
	samples    []float32
}

// NewBuffer copies samples into a new Buffer.
func NewBuffer(sampleRate int, samples []float32) *Buffer {
	return &Buffer{
		sampleRate: sampleRate,
		samples:    append([]float32(nil), samples...),
	}
}

// FromSlice wraps samples without copying and takes ownership of the slice.
// The caller must not modify samples afterwards.
func FromSlice(sampleRate int, samples []float32) *Buffer {
	return &Buffer{
		sampleRate: sampleRate,
		samples:    samples,
	}
}

// NewSilence returns a zero-filled Buffer of n samples.
func NewSilence(sampleRate, n int) *Buffer {
	if n < 0 {
		n = 0
	}

	return &Buffer{
		sampleRate: sampleRate,
		samples:    make([]float32, n),
	}
}

func (b *Buffer) SampleRate() int {
	if b == nil {
		return 0
	}
	return b.sampleRate
}

// Channels is always 1.
func (b *Buffer) Channels() int { return 1 }

func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.samples)
}

func (b *Buffer) IsEmpty() bool { return b.Len() == 0 }

// Seconds is the buffer length in seconds.
func (b *Buffer) Seconds() float64 {
	if b.SampleRate() <= 0 {
		return 0
	}
	return float64(b.Len()) / float64(b.sampleRate)
}

func (b *Buffer) Duration() time.Duration {
	return time.Duration(b.Seconds() * float64(time.Second))
}

// At returns sample i. It panics when i is out of range, like a slice index.
func (b *Buffer) At(i int) float32 { return b.samples[i] }

// Samples returns the backing slice for reading. It must not be modified.
func (b *Buffer) Samples() []float32 {
	if b == nil {
		return nil
	}
	return b.samples
}

// CopySamples returns a copy of the samples that the caller may modify.
func (b *Buffer) CopySamples() []float32 {
	return append([]float32(nil), b.Samples()...)
}

// Peak is the largest absolute sample value, 0 for an empty buffer.
func (b *Buffer) Peak() float32 {
	var peak float32
	for _, s := range b.Samples() {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}

	return peak
}

// RMS is the root mean square over all samples.
func (b *Buffer) RMS() float64 {
	if b.Len() == 0 {
		return 0
	}

	var sum float64
	for _, s := range b.samples {
		sum += float64(s) * float64(s)
	}

	return math.Sqrt(sum / float64(len(b.samples)))
}

// Equal reports whether both buffers share the sample rate and every sample.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.SampleRate() != o.SampleRate() || b.Len() != o.Len() {
		return false
	}

	for i, s := range b.Samples() {
		if o.samples[i] != s {
			return false
		}
	}

	return true
}
