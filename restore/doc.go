// SPDX-License-Identifier: EPL-2.0

// Package restore implements the speech restoration passes: windowed
// segment detection, silence compaction, a sustained-quiet noise gate and
// the SmartEnhance pipeline that chains them.
//
// The manual panels and SmartEnhance share the same Gate and Compact
// functions; SmartEnhance only fixes their parameters (see SmartProfile).
//
//	segments := restore.Detect(buf, restore.DetectParams{ThresholdDB: -40})
//	gated := restore.Gate(buf, restore.DefaultGateSettings)
//	params := restore.CompactParamsFromSeconds(buf.SampleRate(), restore.DefaultSilenceSettings)
//	compact := restore.Compact(gated, params)
package restore
