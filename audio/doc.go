// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample buffer and the low-level primitives the
// editor is built on.
//
// # Buffers
//
// A Buffer is an immutable block of mono float32 samples in [-1.0, 1.0] at a
// known sample rate:
//
//	buf := audio.NewBuffer(24000, samples)
//	fmt.Println(buf.Len(), buf.Seconds(), buf.Peak())
//
// Every transform in the module returns a new Buffer, so older buffers stay
// valid as undo snapshots or clipboard contents.
//
// # Sources
//
// Decoders produce a streaming Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// ReadAll drains a Source through a MonoMixer into a Buffer, and Resample
// brings the result to the editing rate:
//
//	buf, err := audio.ReadAll(src)
//	if err != nil {
//	    return err
//	}
//	buf = audio.Resample(buf, 24000)
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get(".WAV")
//
// # Waveforms
//
// Peaks reduces a buffer to per-column min/max pairs for drawing. Rendering
// and playback are left to implementations of WaveformRenderer and Player.
//
// # Error Handling
//
// ReadSamples returns io.EOF at the end of the stream, possibly together
// with the final samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n] first
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
