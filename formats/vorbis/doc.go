// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams through
// github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to float32 natively, so samples are handed through
// without conversion:
//
//	f, _ := os.Open("voice.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	buf, err := audio.ReadAll(src)
package vorbis
