// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/voxedit/audio"
	"github.com/ik5/voxedit/utils"
)

const (
	headerSize = 44
	// samples converted per Write call
	writeChunk = 8192
)

// Export writes buf as a mono 16-bit PCM WAV at the buffer's sample rate.
// Samples are clamped to [-1, 1] first.
func Export(w io.Writer, buf *audio.Buffer) error {
	samples := make([]int16, buf.Len())
	for i, s := range buf.Samples() {
		samples[i] = utils.Float32ToInt16(s)
	}

	return WriteWAV16(w, buf.SampleRate(), samples)
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	const (
		channels      = 1
		bitsPerSample = 16
		blockAlign    = channels * bitsPerSample / 8
	)
	dataSize := uint32(len(samples) * blockAlign)

	header := make([]byte, headerSize)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], channels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("write wav header: %w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	out := make([]byte, min(len(samples), writeChunk)*blockAlign)
	for i := 0; i < len(samples); i += writeChunk {
		chunk := samples[i:min(i+writeChunk, len(samples))]
		b := out[:len(chunk)*blockAlign]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(b[j*2:], uint16(s))
		}

		if _, err := w.Write(b); err != nil {
			return fmt.Errorf("write wav data: %w", err)
		}
	}

	return nil
}
