// SPDX-License-Identifier: EPL-2.0

package edit_test

import (
	"fmt"

	"github.com/ik5/voxedit/audio"
	"github.com/ik5/voxedit/edit"
)

// Example_cutAndPaste moves the first half of a buffer to its end.
func Example_cutAndPaste() {
	buf := audio.NewBuffer(8, []float32{1, 2, 3, 4, 5, 6, 7, 8})
	sel := edit.Selection{Start: 0, End: 0.5}

	clip, rest := edit.Cut(buf, sel)
	fmt.Println("clip:", clip.Samples())
	fmt.Println("rest:", rest.Samples())

	out := edit.Paste(rest, clip, edit.InsertionPoint(rest, edit.Selection{}, false))
	fmt.Println("out: ", out.Samples())
	// Output:
	// clip: [1 2 3 4]
	// rest: [5 6 7 8]
	// out:  [5 6 7 8 1 2 3 4]
}

// Example_normalize shows the no-op case on silence.
func Example_normalize() {
	loud := edit.Normalize(audio.NewBuffer(8000, []float32{0.1, -0.49, 0.2}))
	fmt.Printf("peak: %.2f\n", loud.Peak())

	silence := audio.NewSilence(8000, 4)
	fmt.Println("unchanged:", edit.Normalize(silence) == silence)
	// Output:
	// peak: 0.98
	// unchanged: true
}
