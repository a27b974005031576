// SPDX-License-Identifier: EPL-2.0

package restore

import (
	"github.com/ik5/voxedit/audio"
	"github.com/ik5/voxedit/edit"
)

// Stage names one step of Enhance.
type Stage int

const (
	StageNormalize Stage = iota
	StageGate
	StageCompact
)

func (s Stage) String() string {
	switch s {
	case StageNormalize:
		return "normalize"
	case StageGate:
		return "gate"
	case StageCompact:
		return "compact"
	default:
		return "unknown"
	}
}

// ProgressFunc is told when each stage starts and finishes. done counts the
// stages completed so far out of total.
type ProgressFunc func(stage Stage, done, total int)

// EnhanceProfile holds the fixed parameters of an Enhance run.
type EnhanceProfile struct {
	Gate    GateParams
	Silence SilenceSettings
}

// SmartProfile is the SmartEnhance pipeline: a gentle gate followed by
// compaction that sets every remaining pause to 110 ms.
var SmartProfile = EnhanceProfile{
	Gate: GateParams{
		ThresholdDB:      -44,
		DurationSeconds:  0.10,
		ReductionPercent: 35,
	},
	Silence: SilenceSettings{
		ThresholdDB:       -45,
		MinSilenceSeconds: 0.18,
		ReductionPercent:  100,
		MaxGapSeconds:     0.11,
		FloorSeconds:      0.11,
		Crossfade:         true,
	},
}

const enhanceStages = 3

// Enhance runs Normalize, Gate and Compact in order, each on the output of
// the previous one. progress may be nil.
func Enhance(buf *audio.Buffer, profile EnhanceProfile, progress ProgressFunc) *audio.Buffer {
	if progress == nil {
		progress = func(Stage, int, int) {}
	}

	steps := []struct {
		stage Stage
		run   func(*audio.Buffer) *audio.Buffer
	}{
		{StageNormalize, edit.Normalize},
		{StageGate, func(b *audio.Buffer) *audio.Buffer { return Gate(b, profile.Gate) }},
		{StageCompact, func(b *audio.Buffer) *audio.Buffer {
			return Compact(b, CompactParamsFromSeconds(b.SampleRate(), profile.Silence))
		}},
	}

	for i, step := range steps {
		progress(step.stage, i, enhanceStages)
		buf = step.run(buf)
		progress(step.stage, i+1, enhanceStages)
	}

	return buf
}
