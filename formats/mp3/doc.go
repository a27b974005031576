// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio through
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always decodes to interleaved 16-bit stereo, so every source from
// this package reports two channels; mono files carry the same signal on
// both. audio.ReadAll folds them back to one channel:
//
//	f, _ := os.Open("memo.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	buf, err := audio.ReadAll(src)
package mp3
