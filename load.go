// SPDX-License-Identifier: EPL-2.0

package voxedit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/voxedit/audio"
	"github.com/ik5/voxedit/formats/aiff"
	"github.com/ik5/voxedit/formats/mp3"
	"github.com/ik5/voxedit/formats/vorbis"
	"github.com/ik5/voxedit/formats/wav"
)

// DefaultSampleRate is the editing rate imports are converted to.
const DefaultSampleRate = 24000

var defaultRegistry = NewRegistry()

// NewRegistry returns a registry with every decoder this module ships,
// keyed by file extension.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})

	return r
}

// Formats lists the extensions Decode understands.
func Formats() []string { return defaultRegistry.Formats() }

// Load reads src to the end, mixes it down to mono and resamples it to
// rate. A rate of 0 or less means DefaultSampleRate. src is not closed.
func Load(src audio.Source, rate int) (*audio.Buffer, error) {
	if rate <= 0 {
		rate = DefaultSampleRate
	}

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, err
	}
	if buf.IsEmpty() {
		return audio.NewSilence(rate, 0), nil
	}

	return audio.Resample(buf, rate), nil
}

// Decode decodes r with the decoder registered for format and loads it at
// rate.
func Decode(r io.Reader, format string, rate int) (*audio.Buffer, error) {
	dec, ok := defaultRegistry.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	defer src.Close()

	buf, err := Load(src, rate)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", format, err)
	}

	return buf, nil
}

// DecodeFile picks the decoder from the extension of path.
func DecodeFile(path string, rate int) (*audio.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	return Decode(f, filepath.Ext(path), rate)
}
