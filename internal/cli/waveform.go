// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"strings"

	"github.com/ik5/voxedit/audio"
)

var bars = []rune("▁▂▃▄▅▆▇█")

// WaveformRenderer draws a buffer as one line of block characters, one per
// column, scaled by the column's absolute peak. It satisfies
// audio.WaveformRenderer.
type WaveformRenderer struct {
	Columns int
	Zoom    float64
}

// Bars returns the unstyled waveform.
func (r WaveformRenderer) Bars(buf *audio.Buffer) string {
	columns := r.Columns
	if columns <= 0 {
		columns = 64
	}

	peaks := audio.Peaks(buf, columns, r.Zoom)
	if len(peaks) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, p := range peaks {
		level := max(-p.Min, p.Max)
		if level <= 0 {
			sb.WriteRune(' ')
			continue
		}
		idx := int(level*float32(len(bars))+0.999) - 1
		sb.WriteRune(bars[min(max(idx, 0), len(bars)-1)])
	}

	return sb.String()
}

func (r WaveformRenderer) Render(buf *audio.Buffer) string {
	return WaveStyle.Render(r.Bars(buf))
}
