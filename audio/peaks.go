// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// Peak is the sample range drawn for one waveform column.
type Peak struct {
	Min float32
	Max float32
}

// Peaks reduces buf to columns min/max pairs for waveform drawing. zoom > 1
// narrows every column to 1/zoom of the samples, so only the start of the
// buffer fits the view; columns past the end of the data are zero.
func Peaks(buf *Buffer, columns int, zoom float64) []Peak {
	if columns <= 0 || buf.IsEmpty() {
		return nil
	}
	if zoom <= 0 {
		zoom = 1
	}

	data := buf.Samples()
	step := int(math.Ceil(float64(len(data)) / float64(columns) / zoom))
	if step < 1 {
		step = 1
	}

	peaks := make([]Peak, columns)
	for col := range peaks {
		start := col * step
		if start >= len(data) {
			break
		}
		end := min(start+step, len(data))

		p := Peak{Min: data[start], Max: data[start]}
		for _, s := range data[start+1 : end] {
			p.Min = min(p.Min, s)
			p.Max = max(p.Max, s)
		}
		peaks[col] = p
	}

	return peaks
}
