// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
// Signed 8, 16, 24 and 32-bit PCM with any channel count is supported:
//
//	f, _ := os.Open("take.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // try another decoder
//	}
package aiff
