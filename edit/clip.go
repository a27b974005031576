// SPDX-License-Identifier: EPL-2.0

package edit

import "github.com/ik5/voxedit/audio"

// Copy returns the selected samples as a new buffer, or nil when the
// selection covers no samples.
func Copy(buf *audio.Buffer, sel Selection) *audio.Buffer {
	s, e := sel.Indices(buf.Len())
	if e == s {
		return nil
	}

	return audio.NewBuffer(buf.SampleRate(), buf.Samples()[s:e])
}

// Delete removes the selected samples.
func Delete(buf *audio.Buffer, sel Selection) *audio.Buffer {
	s, e := sel.Indices(buf.Len())
	if e == s {
		return buf
	}

	src := buf.Samples()
	out := make([]float32, 0, len(src)-(e-s))
	out = append(out, src[:s]...)
	out = append(out, src[e:]...)

	return audio.FromSlice(buf.SampleRate(), out)
}

// Cut returns the selected samples and the buffer without them.
// clip is nil and rest is buf when the selection covers no samples.
func Cut(buf *audio.Buffer, sel Selection) (clip, rest *audio.Buffer) {
	clip = Copy(buf, sel)
	if clip == nil {
		return nil, buf
	}

	return clip, Delete(buf, sel)
}

// Paste inserts clip before sample index at. at is clamped to the buffer.
// A nil or empty clip leaves buf unchanged.
func Paste(buf, clip *audio.Buffer, at int) *audio.Buffer {
	if clip.IsEmpty() {
		return buf
	}

	src := buf.Samples()
	at = max(0, min(at, len(src)))

	out := make([]float32, 0, len(src)+clip.Len())
	out = append(out, src[:at]...)
	out = append(out, clip.Samples()...)
	out = append(out, src[at:]...)

	return audio.FromSlice(buf.SampleRate(), out)
}

// InsertionPoint is where Paste puts the clipboard: the start of the
// selection when there is one, otherwise the end of the buffer.
func InsertionPoint(buf *audio.Buffer, sel Selection, ok bool) int {
	if !ok {
		return buf.Len()
	}

	s, _ := sel.Indices(buf.Len())

	return s
}
