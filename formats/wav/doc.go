// SPDX-License-Identifier: EPL-2.0

// Package wav decodes WAV files and exports buffers as 16-bit PCM WAV.
//
// Decoding goes through github.com/go-audio/wav and accepts 8, 16, 24 and
// 32-bit integer PCM with any channel count:
//
//	f, _ := os.Open("take.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	buf, err := audio.ReadAll(src)
//
// Export writes a mono RIFF/WAVE file at the buffer's rate. Each sample is
// clamped to [-1, 1] and scaled by 32768 when negative and 32767 otherwise:
//
//	out, _ := os.Create("clean.wav")
//	err := wav.Export(out, buf)
//
// WriteWAV16 is the lower level writer for callers that already hold int16
// samples.
package wav
