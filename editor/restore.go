// SPDX-License-Identifier: EPL-2.0

package editor

import (
	"time"

	"github.com/ik5/voxedit/audio"
	"github.com/ik5/voxedit/restore"
)

func (s *Session) Gate(p restore.GateParams) error {
	return s.applyWhole("gate", func(b *audio.Buffer) *audio.Buffer { return restore.Gate(b, p) })
}

// Compact shortens the pauses of the current buffer. When it changes the
// buffer the selection is dropped.
func (s *Session) Compact(settings restore.SilenceSettings) error {
	return s.apply("compact", true, func(st snapshot) (*audio.Buffer, error) {
		b := st.buf
		return restore.Compact(b, restore.CompactParamsFromSeconds(b.SampleRate(), settings)), nil
	})
}

// Enhance runs restore.SmartProfile over the current buffer. The whole run
// is one history entry and, like Compact, drops the selection. progress
// may be nil and may call Busy.
func (s *Session) Enhance(progress restore.ProgressFunc) error {
	return s.EnhanceWith(restore.SmartProfile, progress)
}

func (s *Session) EnhanceWith(profile restore.EnhanceProfile, progress restore.ProgressFunc) error {
	started := time.Now()

	err := s.apply("enhance", true, func(st snapshot) (*audio.Buffer, error) {
		return restore.Enhance(st.buf, profile, progress), nil
	})
	if err == nil {
		s.log.Info("enhance finished", "elapsed", time.Since(started))
	}

	return err
}
