// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/voxedit/audio"
	"github.com/ik5/voxedit/utils"
)

// go-mp3 always produces interleaved 16-bit little-endian stereo.
const (
	channels       = 2
	bytesPerSample = 2
	bytesPerFrame  = channels * bytesPerSample
)

// pcmReader is the part of gomp3.Decoder used by source.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec pcmReader
	raw []byte
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	// whole frames only, so a read never splits left from right
	size := len(dst) / channels * bytesPerFrame
	if size == 0 {
		return 0, nil
	}
	if cap(s.raw) < size {
		s.raw = make([]byte, size)
	}
	raw := s.raw[:size]

	n, err := io.ReadFull(s.dec, raw)
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}

	samples := n / bytesPerSample
	for i := range samples {
		dst[i] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(raw[i*2:])))
	}

	return samples, err
}

type Decoder struct{}

// Decode prepares an MP3 stream for reading. go-mp3 parses the first frame
// up front, so foreign data fails here rather than on the first read.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return &source{dec: dec}, nil
}
