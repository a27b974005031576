// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

const (
	readChunk = 4096
	// consecutive empty reads tolerated before giving up on a source
	maxEmptyReads = 100
)

// ReadAll drains src, down-mixes it to mono and returns the result as a Buffer.
// It does not close src.
func ReadAll(src Source) (*Buffer, error) {
	rate := src.SampleRate()
	if rate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	mono := NewMonoMixer(src)
	samples := make([]float32, 0, rate)
	chunk := make([]float32, readChunk)
	empty := 0

	for {
		n, err := mono.ReadSamples(chunk)
		samples = append(samples, chunk[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}

		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return nil, io.ErrNoProgress
			}
			continue
		}
		empty = 0
	}

	return FromSlice(rate, samples), nil
}
