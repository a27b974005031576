// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/ik5/voxedit/audio"
	"github.com/ik5/voxedit/internal/audiotest"
)

// Example_readAll decodes a stereo stream into a mono buffer.
func Example_readAll() {
	source := audiotest.NewConstantSource(48000, 2, 48000, 0.5)

	buf, err := audio.ReadAll(source)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", buf.SampleRate())
	fmt.Printf("Channels: %d\n", buf.Channels())
	fmt.Printf("Samples: %d\n", buf.Len())
	fmt.Printf("Peak: %.1f\n", buf.Peak())
	// Output:
	// Sample rate: 48000 Hz
	// Channels: 1
	// Samples: 48000
	// Peak: 0.5
}

// Example_resample brings a decoded buffer to the editing rate.
func Example_resample() {
	buf, _ := audio.ReadAll(audiotest.NewSineSource(44100, 1, 44100, 440.0))

	out := audio.Resample(buf, 24000)

	fmt.Printf("Input: %d samples at %d Hz\n", buf.Len(), buf.SampleRate())
	fmt.Printf("Output: %d samples at %d Hz\n", out.Len(), out.SampleRate())
	fmt.Printf("Duration: %.2f seconds\n", out.Seconds())
	// Output:
	// Input: 44100 samples at 44100 Hz
	// Output: 24000 samples at 24000 Hz
	// Duration: 1.00 seconds
}

// Example_monoMixer demonstrates converting stereo to mono.
func Example_monoMixer() {
	source := audiotest.NewMockSource(16000, 2, 16000, func(_, ch int) float32 {
		if ch == 0 {
			return 0.25
		}
		return 0.75
	})

	mono := audio.NewMonoMixer(source)

	fmt.Printf("Input channels: %d\n", source.Channels())
	fmt.Printf("Output channels: %d\n", mono.Channels())

	buf := make([]float32, 100)
	n, _ := mono.ReadSamples(buf)

	fmt.Printf("Read %d mono samples, first = %.2f\n", n, buf[0])
	// Output:
	// Input channels: 2
	// Output channels: 1
	// Read 100 mono samples, first = 0.50
}

type mockDecoder struct{}

func (mockDecoder) Decode(io.Reader) (audio.Source, error) {
	return audiotest.NewSilentSource(16000, 1, 1000), nil
}

// Example_registry demonstrates the format registry.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("mock", mockDecoder{})

	decoder, ok := registry.Get(".MOCK")
	if !ok {
		fmt.Println("Decoder not found")
		return
	}
	fmt.Printf("Retrieved decoder: %T\n", decoder)

	if _, ok = registry.Get("unknown"); !ok {
		fmt.Println("Unknown format not found in registry")
	}
	// Output:
	// Retrieved decoder: audio_test.mockDecoder
	// Unknown format not found in registry
}

// Example_peaks reduces a buffer to waveform columns.
func Example_peaks() {
	buf := audio.NewBuffer(8000, []float32{0.1, -0.4, 0.9, 0.2, -0.1, -0.3})

	for i, p := range audio.Peaks(buf, 3, 1) {
		fmt.Printf("column %d: %+.1f .. %+.1f\n", i, p.Min, p.Max)
	}
	// Output:
	// column 0: -0.4 .. +0.1
	// column 1: +0.2 .. +0.9
	// column 2: -0.3 .. -0.1
}
