// SPDX-License-Identifier: EPL-2.0

package edit

import "math"

// SelectionEpsilon is the smallest selection width, as a fraction of the
// buffer, that still counts as a selection.
const SelectionEpsilon = 0.005

// Selection is a range over a buffer expressed as fractions of its duration.
// Start and End may be given in any order.
type Selection struct {
	Start float64
	End   float64
}

// Normalized orders the bounds and clamps both into [0, 1].
func (s Selection) Normalized() Selection {
	lo, hi := clamp01(s.Start), clamp01(s.End)
	if lo > hi {
		lo, hi = hi, lo
	}

	return Selection{Start: lo, End: hi}
}

func (s Selection) Width() float64 {
	n := s.Normalized()
	return n.End - n.Start
}

// IsDegenerate reports whether the selection is too narrow to act on.
func (s Selection) IsDegenerate() bool {
	return s.Width() < SelectionEpsilon
}

// Indices converts the selection to a half-open sample range [start, end)
// over a buffer of length samples.
func (s Selection) Indices(length int) (start, end int) {
	if length <= 0 {
		return 0, 0
	}

	a := int(math.Floor(clamp01(s.Start) * float64(length)))
	b := int(math.Floor(clamp01(s.End) * float64(length)))

	return min(a, b), max(a, b)
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
