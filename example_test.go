// SPDX-License-Identifier: EPL-2.0

package voxedit_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/voxedit"
	"github.com/ik5/voxedit/editor"
	"github.com/ik5/voxedit/formats/wav"
)

// Example_decode decodes an in-memory WAV file at the default editing rate.
func Example_decode() {
	samples := make([]int16, 8000) // 1 second at 8 kHz
	data := new(bytes.Buffer)
	if err := wav.WriteWAV16(data, 8000, samples); err != nil {
		fmt.Printf("write error: %v\n", err)
		return
	}

	buf, err := voxedit.Decode(data, "wav", voxedit.DefaultSampleRate)
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}

	fmt.Printf("%d samples at %d Hz (%v)\n", buf.Len(), buf.SampleRate(), buf.Duration())
	// Output: 24000 samples at 24000 Hz (1s)
}

// Example_formats lists the registered extensions.
func Example_formats() {
	fmt.Println(voxedit.Formats())
	// Output: [aif aiff mp3 ogg wav]
}

// Example_unsupportedFormat shows the error for an unknown extension.
func Example_unsupportedFormat() {
	_, err := voxedit.Decode(bytes.NewReader(nil), ".flac", 0)
	fmt.Println(errors.Is(err, voxedit.ErrUnsupportedFormat))
	// Output: true
}

// Example_session decodes, edits and exports a recording.
func Example_session() {
	samples := make([]int16, 2400)
	for i := range samples {
		samples[i] = 8000
	}
	data := new(bytes.Buffer)
	_ = wav.WriteWAV16(data, 24000, samples)

	buf, err := voxedit.Decode(data, "wav", 0)
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}

	s := editor.New()
	_ = s.Load(buf)
	s.Select(0.5, 1)
	_ = s.Delete()
	_ = s.Normalize()

	out := new(bytes.Buffer)
	_ = s.Export(out)

	fmt.Printf("%d samples, peak %.2f, %d bytes\n", s.Buffer().Len(), s.Buffer().Peak(), out.Len())
	// Output: 1200 samples, peak 0.98, 2444 bytes
}
