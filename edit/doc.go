// SPDX-License-Identifier: EPL-2.0

// Package edit implements the buffer editing operations: clipboard style
// copy, cut, delete and paste over a fractional Selection, and the classic
// effects (normalize, reverse, invert, gain, fades, echo, reverb).
//
// Every operation is a pure function from an *audio.Buffer (plus
// parameters) to a new *audio.Buffer. Inputs are never modified. When an
// operation has nothing to do, for example normalizing a silent buffer or
// deleting an empty range, the input pointer is returned as is so callers
// can detect the no-op with a pointer comparison:
//
//	out := edit.Normalize(buf)
//	if out == buf {
//	    // nothing changed
//	}
package edit
