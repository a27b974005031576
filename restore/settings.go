// SPDX-License-Identifier: EPL-2.0

package restore

import "math"

// SilenceSettings is the seconds based form of CompactParams used by the
// silence panel, presets and config files.
type SilenceSettings struct {
	ThresholdDB       float64 `json:"threshold_db"`
	MinSilenceSeconds float64 `json:"min_silence_seconds"`
	ReductionPercent  float64 `json:"reduction_percent"`
	MaxGapSeconds     float64 `json:"max_gap_seconds"`
	FloorSeconds      float64 `json:"floor_seconds"`
	Crossfade         bool    `json:"crossfade"`
}

var (
	// DefaultGateSettings are the noise gate panel defaults.
	DefaultGateSettings = GateParams{
		ThresholdDB:      -44,
		DurationSeconds:  0.10,
		ReductionPercent: 30,
		MaxSeconds:       1.0,
	}

	// DefaultSilenceSettings are the silence panel defaults.
	DefaultSilenceSettings = SilenceSettings{
		ThresholdDB:       -46,
		MinSilenceSeconds: 0.30,
		ReductionPercent:  100,
		MaxGapSeconds:     0.10,
		FloorSeconds:      0.15,
	}

	// AutoSilenceSettings close every pause completely and smooth the seams.
	AutoSilenceSettings = SilenceSettings{
		ThresholdDB:       -40,
		MinSilenceSeconds: 0.20,
		ReductionPercent:  0,
		MaxGapSeconds:     0,
		FloorSeconds:      0.15,
		Crossfade:         true,
	}
)

// CompactParamsFromSeconds converts s to sample counts at rate.
func CompactParamsFromSeconds(rate int, s SilenceSettings) CompactParams {
	samples := func(sec float64) int {
		return max(0, int(math.Floor(sec*float64(rate))))
	}

	return CompactParams{
		ThresholdDB:       s.ThresholdDB,
		WindowSize:        DefaultWindowSize,
		MinSilenceSamples: samples(s.MinSilenceSeconds),
		ReductionFactor:   s.ReductionPercent / 100,
		MaxGapSamples:     samples(s.MaxGapSeconds),
		FloorSamples:      samples(s.FloorSeconds),
		Crossfade:         s.Crossfade,
	}
}
