// SPDX-License-Identifier: EPL-2.0

package restore

import (
	"math"

	"github.com/ik5/voxedit/audio"
	"github.com/ik5/voxedit/utils"
)

// GateParams controls Gate.
type GateParams struct {
	ThresholdDB float64 `json:"threshold_db"`
	// DurationSeconds of continuous quiet before attenuation starts.
	DurationSeconds float64 `json:"duration_seconds"`
	// ReductionPercent of level removed from gated samples, 0..100.
	ReductionPercent float64 `json:"reduction_percent"`
	// MaxSeconds ends attenuation once a quiet run grows this long.
	// Zero or less means no limit.
	MaxSeconds float64 `json:"max_seconds"`
}

// Gate attenuates sustained quiet stretches. It counts consecutive samples
// below the threshold, the current one included; a quiet sample is scaled
// once the run is longer than DurationSeconds and, when MaxSeconds is set,
// not yet longer than MaxSeconds. Loud samples are never touched.
//
// buf is returned unchanged when no sample needed scaling.
func Gate(buf *audio.Buffer, p GateParams) *audio.Buffer {
	rate := float64(buf.SampleRate())
	threshold := float32(utils.DBToLinear(p.ThresholdDB))
	duration := int(math.Floor(p.DurationSeconds * rate))
	limit := int(math.Floor(p.MaxSeconds * rate))
	bounded := p.MaxSeconds > 0
	factor := float32(1 - max(0, min(100, p.ReductionPercent))/100)

	if factor == 1 || buf.IsEmpty() {
		return buf
	}

	src := buf.Samples()
	var out []float32
	run := 0

	for i, s := range src {
		if s >= threshold || s <= -threshold {
			run = 0
			continue
		}

		run++
		if run <= duration || (bounded && run > limit) {
			continue
		}

		if g := s * factor; g != s {
			if out == nil {
				out = buf.CopySamples()
			}
			out[i] = g
		}
	}

	if out == nil {
		return buf
	}

	return audio.FromSlice(buf.SampleRate(), out)
}
