// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/ik5/voxedit/audio"
	"github.com/ik5/voxedit/edit"
	"github.com/ik5/voxedit/internal/cli"
	"github.com/ik5/voxedit/restore"
	"github.com/ik5/voxedit/utils"
)

type InfoCmd struct {
	File      string   `arg:"" type:"existingfile" help:"Audio file to inspect"`
	Threshold *float64 `help:"Silence threshold in dBFS for segment detection; negative values need the = form, e.g. --threshold=-40"`
	Width     int      `default:"64" help:"Waveform width in columns"`
}

func (c *InfoCmd) Run(a *app) error {
	s, err := a.open(c.File)
	if err != nil {
		return err
	}
	buf := s.Buffer()

	threshold := a.cfg.Silence.ThresholdDB
	if c.Threshold != nil {
		threshold = *c.Threshold
	}
	minSilence := restore.CompactParamsFromSeconds(buf.SampleRate(), a.cfg.Silence).MinSilenceSamples
	segments := restore.Merge(restore.Detect(buf, restore.DetectParams{ThresholdDB: threshold}), minSilence)

	cli.PrintKV(a.out, "File", c.File)
	cli.PrintKV(a.out, "Rate", fmt.Sprintf("%d Hz", buf.SampleRate()))
	cli.PrintKV(a.out, "Samples", buf.Len())
	cli.PrintKV(a.out, "Duration", buf.Duration())
	cli.PrintKV(a.out, "Peak", fmt.Sprintf("%.1f dBFS", utils.LinearToDB(float64(buf.Peak()))))
	cli.PrintKV(a.out, "RMS", fmt.Sprintf("%.1f dBFS", utils.LinearToDB(buf.RMS())))
	cli.PrintKV(a.out, "Segments", len(segments))

	rate := float64(buf.SampleRate())
	for i, seg := range segments {
		cli.PrintKV(a.out, fmt.Sprintf("  #%d", i+1),
			fmt.Sprintf("%.3fs - %.3fs", float64(seg.Start)/rate, float64(seg.End)/rate))
	}

	var r audio.WaveformRenderer = cli.WaveformRenderer{Columns: c.Width}
	fmt.Fprintln(a.out, r.Render(buf))

	return nil
}

type FxCmd struct {
	In  string `arg:"" type:"existingfile" help:"Input audio file"`
	Out string `arg:"" type:"path" help:"Output WAV file"`

	From    float64 `help:"Selection start as a fraction of the length" default:"0"`
	To      float64 `help:"Selection end as a fraction of the length" default:"0"`
	Delete  bool    `help:"Delete the selection"`
	Dup     bool    `help:"Copy the selection and paste it right after itself"`
	Gain    float64 `help:"Gain in dB; negative values need the = form, e.g. --gain=-6"`
	Norm    bool    `name:"normalize" help:"Normalize the peak to -0.18 dBFS"`
	Reverse bool    `help:"Reverse the recording"`
	Invert  bool    `help:"Flip the phase"`
	FadeIn  float64 `help:"Fade-in length in seconds"`
	FadeOut float64 `help:"Fade-out length in seconds"`
	Echo    bool    `help:"Add a single echo"`
	Reverb  bool    `help:"Add a feedback reverb"`
}

// Run applies the edits first, then the effects in flag order.
func (c *FxCmd) Run(a *app) error {
	s, err := a.open(c.In)
	if err != nil {
		return err
	}

	s.Select(c.From, c.To)

	steps := []struct {
		on bool
		fn func() error
	}{
		{c.Dup, func() error {
			if err := s.Copy(); err != nil {
				return err
			}
			sel, ok := s.Selection()
			if !ok {
				return nil
			}
			return s.PasteAt(sel.End)
		}},
		{c.Delete, s.Delete},
		{c.Gain != 0, func() error { return s.Gain(c.Gain) }},
		{c.Norm, s.Normalize},
		{c.Reverse, s.Reverse},
		{c.Invert, s.Invert},
		{c.FadeIn > 0, func() error { return s.Fade(edit.FadeIn, c.FadeIn) }},
		{c.FadeOut > 0, func() error { return s.Fade(edit.FadeOut, c.FadeOut) }},
		{c.Echo, func() error { return s.Echo(edit.DefaultEchoDelay, edit.DefaultEchoFeedback) }},
		{c.Reverb, func() error { return s.Reverb(edit.DefaultReverbDelay, edit.DefaultReverbDecay) }},
	}

	for _, step := range steps {
		if !step.on {
			continue
		}
		if err := step.fn(); err != nil {
			return err
		}
	}

	return a.save(s, c.Out)
}

type GateCmd struct {
	In  string `arg:"" type:"existingfile" help:"Input audio file"`
	Out string `arg:"" type:"path" help:"Output WAV file"`

	Threshold *float64 `help:"Threshold in dBFS; negative values need the = form, e.g. --threshold=-40"`
	Duration  *float64 `help:"Seconds of quiet before the gate closes"`
	Reduction *float64 `help:"Level removed from gated samples, in percent"`
	Max       *float64 `help:"Longest gated run in seconds, 0 for no limit"`
}

func (c *GateCmd) Run(a *app) error {
	p := a.cfg.Gate
	override(&p.ThresholdDB, c.Threshold)
	override(&p.DurationSeconds, c.Duration)
	override(&p.ReductionPercent, c.Reduction)
	override(&p.MaxSeconds, c.Max)

	s, err := a.open(c.In)
	if err != nil {
		return err
	}
	if err := s.Gate(p); err != nil {
		return err
	}

	return a.save(s, c.Out)
}

type CompactCmd struct {
	In  string `arg:"" type:"existingfile" help:"Input audio file"`
	Out string `arg:"" type:"path" help:"Output WAV file"`

	Preset     string   `short:"p" help:"Named settings from the preset file (default, auto, smart, ...)"`
	Threshold  *float64 `help:"Silence threshold in dBFS; negative values need the = form, e.g. --threshold=-46"`
	MinSilence *float64 `help:"Shortest pause in seconds that is compacted"`
	Reduction  *float64 `help:"Share of each pause kept, in percent"`
	MaxGap     *float64 `help:"Longest pause kept in seconds"`
	Floor      *float64 `help:"Shortest pause kept in seconds"`
	Crossfade  *bool    `help:"Crossfade across every seam"`
}

func (c *CompactCmd) Run(a *app) error {
	settings, ok := a.cfg.Preset(c.Preset)
	if !ok {
		return fmt.Errorf("unknown preset %q", c.Preset)
	}
	override(&settings.ThresholdDB, c.Threshold)
	override(&settings.MinSilenceSeconds, c.MinSilence)
	override(&settings.ReductionPercent, c.Reduction)
	override(&settings.MaxGapSeconds, c.MaxGap)
	override(&settings.FloorSeconds, c.Floor)
	override(&settings.Crossfade, c.Crossfade)

	s, err := a.open(c.In)
	if err != nil {
		return err
	}
	before := s.Buffer().Duration()
	if err := s.Compact(settings); err != nil {
		return err
	}
	a.log.Info("compacted", "before", before, "after", s.Buffer().Duration())

	return a.save(s, c.Out)
}

type EnhanceCmd struct {
	In  string `arg:"" type:"existingfile" help:"Input audio file"`
	Out string `arg:"" type:"path" help:"Output WAV file"`
}

func (c *EnhanceCmd) Run(a *app) error {
	s, err := a.open(c.In)
	if err != nil {
		return err
	}

	err = s.Enhance(func(stage restore.Stage, done, total int) {
		a.log.Debug("enhance", "stage", stage, "done", done, "total", total)
	})
	if err != nil {
		return err
	}

	return a.save(s, c.Out)
}

func override[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
