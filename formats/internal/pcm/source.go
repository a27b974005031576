// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts the go-audio integer PCM decoders to audio.Source.
package pcm

import (
	"bytes"
	"errors"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/voxedit/utils"
)

// Reader is the part of the go-audio wav and aiff decoders that Source uses.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source converts interleaved integer PCM to float32 samples.
type Source struct {
	r        Reader
	format   *goaudio.Format
	bitDepth int
	// bias is subtracted from every raw value before scaling; unsigned
	// 8-bit WAV data is centred on 128.
	bias int
	ints *goaudio.IntBuffer
}

// NewSource wraps r. bitDepth selects the full-scale value; unsigned marks
// 8-bit data stored without sign.
func NewSource(r Reader, format *goaudio.Format, bitDepth int, unsigned bool) *Source {
	s := &Source{r: r, format: format, bitDepth: bitDepth}
	if unsigned && bitDepth == 8 {
		s.bias = 128
	}

	return s
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.ints == nil || cap(s.ints.Data) < len(dst) {
		s.ints = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.format,
			SourceBitDepth: s.bitDepth,
		}
	}
	s.ints.Data = s.ints.Data[:len(dst)]

	n, err := s.r.PCMBuffer(s.ints)
	if n <= 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		return 0, io.EOF
	}

	for i, v := range s.ints.Data[:n] {
		dst[i] = utils.IntToFloat32(v-s.bias, s.bitDepth)
	}

	// go-audio reports the end of data as an empty read without an error,
	// so a short read is not treated as the end
	return n, err
}

// Seekable returns r itself when it can seek, otherwise a reader over all
// of its data. The go-audio decoders jump between chunks.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}
