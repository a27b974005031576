// SPDX-License-Identifier: EPL-2.0

package audio

// Resample converts buf to rate using Catmull-Rom interpolation. When
// downsampling, a one-pole low-pass runs first to tame aliasing.
// buf is returned unchanged when the rates already match or rate is not
// positive.
func Resample(buf *Buffer, rate int) *Buffer {
	if rate <= 0 || buf.SampleRate() <= 0 || rate == buf.SampleRate() || buf.IsEmpty() {
		return buf
	}

	src := buf.Samples()
	ratio := float64(buf.SampleRate()) / float64(rate)
	if ratio > 1 {
		src = lowPass(src, 0.5)
	}

	n := int(int64(len(src)) * int64(rate) / int64(buf.SampleRate()))
	out := make([]float32, n)
	last := len(src) - 1

	at := func(i int) float32 {
		if i < 0 {
			return src[0]
		}
		if i > last {
			return src[last]
		}
		return src[i]
	}

	for i := range out {
		pos := float64(i) * ratio
		idx := int(pos)
		frac := float32(pos - float64(idx))
		out[i] = catmullRom(at(idx-1), at(idx), at(idx+1), at(idx+2), frac)
	}

	return FromSlice(rate, out)
}

// lowPass applies y[n] = alpha*x[n] + (1-alpha)*y[n-1], seeded with x[0].
func lowPass(x []float32, alpha float32) []float32 {
	y := make([]float32, len(x))
	prev := x[0]
	for i, s := range x {
		prev = alpha*s + (1-alpha)*prev
		y[i] = prev
	}

	return y
}

// catmullRom interpolates between y1 and y2; x is the fractional position in [0, 1].
func catmullRom(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}
