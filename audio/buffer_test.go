// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"
	"time"
)

func TestNewBuffer_Copies(t *testing.T) {
	t.Parallel()

	src := []float32{0.1, 0.2, 0.3}
	buf := NewBuffer(8000, src)
	src[0] = 9

	if buf.At(0) != 0.1 {
		t.Errorf("At(0) = %v, want 0.1 (input slice must be copied)", buf.At(0))
	}

	cp := buf.CopySamples()
	cp[1] = 9
	if buf.At(1) != 0.2 {
		t.Errorf("At(1) = %v, want 0.2 (CopySamples must not alias)", buf.At(1))
	}
}

func TestBuffer_Metadata(t *testing.T) {
	t.Parallel()

	buf := NewSilence(24000, 36000)

	if buf.SampleRate() != 24000 {
		t.Errorf("SampleRate() = %d, want 24000", buf.SampleRate())
	}
	if buf.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", buf.Channels())
	}
	if buf.Len() != 36000 {
		t.Errorf("Len() = %d, want 36000", buf.Len())
	}
	if buf.Seconds() != 1.5 {
		t.Errorf("Seconds() = %v, want 1.5", buf.Seconds())
	}
	if buf.Duration() != 1500*time.Millisecond {
		t.Errorf("Duration() = %v, want 1.5s", buf.Duration())
	}
	if buf.Peak() != 0 {
		t.Errorf("Peak() = %v, want 0", buf.Peak())
	}
}

func TestBuffer_NilSafe(t *testing.T) {
	t.Parallel()

	var buf *Buffer

	if buf.Len() != 0 || buf.SampleRate() != 0 || !buf.IsEmpty() {
		t.Error("nil buffer should report zero length and rate")
	}
	if buf.Samples() != nil {
		t.Error("nil buffer Samples() should be nil")
	}
	if buf.Seconds() != 0 {
		t.Error("nil buffer Seconds() should be 0")
	}
	if !buf.Equal(nil) {
		t.Error("nil buffers should be equal")
	}
}

func TestBuffer_PeakAndRMS(t *testing.T) {
	t.Parallel()

	buf := FromSlice(8000, []float32{0.5, -0.8, 0.2, 0})
	if buf.Peak() != 0.8 {
		t.Errorf("Peak() = %v, want 0.8", buf.Peak())
	}

	sq := FromSlice(8000, []float32{0.5, -0.5, 0.5, -0.5})
	if math.Abs(sq.RMS()-0.5) > 1e-9 {
		t.Errorf("RMS() = %v, want 0.5", sq.RMS())
	}
}

func TestBuffer_Equal(t *testing.T) {
	t.Parallel()

	a := NewBuffer(8000, []float32{1, 2, 3})

	tests := []struct {
		name string
		b    *Buffer
		want bool
	}{
		{name: "same samples", b: NewBuffer(8000, []float32{1, 2, 3}), want: true},
		{name: "other rate", b: NewBuffer(16000, []float32{1, 2, 3}), want: false},
		{name: "other length", b: NewBuffer(8000, []float32{1, 2}), want: false},
		{name: "other value", b: NewBuffer(8000, []float32{1, 2, 4}), want: false},
		{name: "nil", b: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewSilence_NegativeLength(t *testing.T) {
	t.Parallel()

	if got := NewSilence(8000, -3).Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}
