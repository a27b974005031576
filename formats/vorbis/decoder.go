// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/voxedit/audio"
)

// oggReader is the part of oggvorbis.Reader used by source.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec oggReader
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) Close() error    { return nil }

// ReadSamples decodes straight into dst. oggvorbis counts interleaved
// values, not frames, and always returns whole frames.
func (s *source) ReadSamples(dst []float32) (int, error) {
	n := len(dst) - len(dst)%s.dec.Channels()
	if n == 0 {
		return 0, nil
	}

	return s.dec.Read(dst[:n])
}

type Decoder struct{}

// Decode reads the Vorbis headers from r.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}
	if dec.Channels() <= 0 {
		return nil, fmt.Errorf("%w: no channels", ErrNotVorbisFile)
	}

	return &source{dec: dec}, nil
}
