// SPDX-License-Identifier: EPL-2.0

package restore

import (
	"github.com/ik5/voxedit/audio"
	"github.com/ik5/voxedit/utils"
)

// DefaultWindowSize is the detection window in samples.
const DefaultWindowSize = 512

// Segment is a half-open range [Start, End) of active samples.
type Segment struct {
	Start int
	End   int
}

func (s Segment) Len() int { return s.End - s.Start }

type DetectParams struct {
	// ThresholdDB is the level below which a window counts as silent.
	ThresholdDB float64
	// WindowSize in samples; DefaultWindowSize when zero or negative.
	WindowSize int
}

// Detect splits buf into active segments. buf is scanned in
// non-overlapping windows; a window is silent when its peak magnitude is
// below the threshold. A segment starts at the first loud window and ends
// at the start of the next silent one. The result is ordered and may be
// empty.
func Detect(buf *audio.Buffer, p DetectParams) []Segment {
	window := p.WindowSize
	if window <= 0 {
		window = DefaultWindowSize
	}
	threshold := float32(utils.DBToLinear(p.ThresholdDB))
	data := buf.Samples()

	var (
		segments []Segment
		inside   bool
		start    int
	)

	for at := 0; at < len(data); at += window {
		silent := peak(data[at:min(at+window, len(data))]) < threshold

		switch {
		case !inside && !silent:
			inside, start = true, at
		case inside && silent:
			inside = false
			segments = append(segments, Segment{Start: start, End: at})
		}
	}

	if inside {
		segments = append(segments, Segment{Start: start, End: len(data)})
	}

	return segments
}

// Merge joins neighbouring segments separated by fewer than minSilence
// samples.
func Merge(segments []Segment, minSilence int) []Segment {
	if len(segments) == 0 {
		return nil
	}

	merged := make([]Segment, 0, len(segments))
	cur := segments[0]

	for _, next := range segments[1:] {
		if next.Start-cur.End < minSilence {
			cur.End = next.End
			continue
		}
		merged = append(merged, cur)
		cur = next
	}

	return append(merged, cur)
}

func peak(data []float32) float32 {
	var p float32
	for _, s := range data {
		if s < 0 {
			s = -s
		}
		p = max(p, s)
	}

	return p
}
