// SPDX-License-Identifier: EPL-2.0

package audio

// Player plays a buffer through some output device. Playback itself lives
// outside this module.
type Player interface {
	Play(buf *Buffer) error
}

// WaveformRenderer turns a buffer into a drawable waveform representation.
type WaveformRenderer interface {
	Render(buf *Buffer) string
}
