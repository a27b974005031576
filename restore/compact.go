// SPDX-License-Identifier: EPL-2.0

package restore

import (
	"math"

	"github.com/ik5/voxedit/audio"
)

// crossfadeSeconds is the blend length at every rejoined seam.
const crossfadeSeconds = 0.005

// CompactParams controls Compact. Lengths are in samples.
type CompactParams struct {
	ThresholdDB float64
	WindowSize  int

	// MinSilenceSamples merges segments separated by shorter gaps.
	MinSilenceSamples int
	// ReductionFactor is the share of each gap to remove, clamped to [0, 1].
	ReductionFactor float64
	// MaxGapSamples caps every resulting gap.
	MaxGapSamples int
	// FloorSamples is the shortest gap a long pause is reduced to.
	FloorSamples int
	Crossfade    bool
}

// Plan is a compaction layout: each segment followed by its retimed gap.
// The last gap is always zero.
type Plan struct {
	Segments []Segment
	Gaps     []int
}

// Len is the length of the rendered output.
func (p Plan) Len() int {
	n := 0
	for i, s := range p.Segments {
		n += s.Len() + p.Gaps[i]
	}

	return n
}

// PlanGaps retimes the gaps between segments. Every gap is reduced by
// ReductionFactor, raised back to the floor when the original pause was
// longer than the floor, and capped at MaxGapSamples.
func PlanGaps(segments []Segment, p CompactParams) Plan {
	reduction := max(0, min(1, p.ReductionFactor))
	floor := min(p.FloorSamples, p.MaxGapSamples)
	gaps := make([]int, len(segments))

	for i := range len(segments) - 1 {
		orig := segments[i+1].Start - segments[i].End
		gap := int(math.Floor(float64(orig) * (1 - reduction)))

		if gap < floor && orig > floor {
			gap = floor
		}
		gaps[i] = max(0, min(gap, p.MaxGapSamples))
	}

	return Plan{Segments: segments, Gaps: gaps}
}

// Compact shortens the pauses in buf. Segments are detected, merged and
// laid out again with retimed gaps of silence. A buffer without active
// segments is returned unchanged.
func Compact(buf *audio.Buffer, p CompactParams) *audio.Buffer {
	segments := Detect(buf, DetectParams{ThresholdDB: p.ThresholdDB, WindowSize: p.WindowSize})
	if len(segments) == 0 {
		return buf
	}

	plan := PlanGaps(Merge(segments, p.MinSilenceSamples), p)

	return Render(buf, plan, p.Crossfade)
}

// Render writes the planned segments of buf into a new buffer. With
// crossfade set, the first few milliseconds of every segment after the
// first are blended into the samples just before its offset.
func Render(buf *audio.Buffer, plan Plan, crossfade bool) *audio.Buffer {
	src := buf.Samples()
	out := make([]float32, plan.Len())
	fade := int(math.Floor(float64(buf.SampleRate()) * crossfadeSeconds))
	offset := 0

	for idx, seg := range plan.Segments {
		data := src[seg.Start:seg.End]

		if crossfade && idx > 0 && offset > 0 {
			for i := 0; i < fade && i < len(data); i++ {
				pos := offset - fade + i
				if pos < 0 {
					continue
				}
				g := float32(i) / float32(fade)
				out[pos] = out[pos]*(1-g) + data[i]*g
			}
		}

		copy(out[offset:], data)
		offset += len(data) + plan.Gaps[idx]
	}

	return audio.FromSlice(buf.SampleRate(), out)
}
