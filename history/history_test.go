// SPDX-License-Identifier: EPL-2.0

package history

import (
	"testing"

	"github.com/ik5/voxedit/audio"
)

// step returns a one-sample buffer tagged with v.
func step(v float32) *audio.Buffer {
	return audio.NewBuffer(8000, []float32{v})
}

func TestHistory_ElevenOpsTenUndos(t *testing.T) {
	t.Parallel()

	h := New(DefaultCapacity)
	current := step(0)

	for i := 1; i <= 11; i++ {
		h.Record(current)
		current = step(float32(i))
	}

	for i := range 10 {
		var ok bool
		current, ok = h.Undo(current)
		if !ok {
			t.Fatalf("Undo #%d failed", i+1)
		}
	}

	// the pre-op-1 snapshot was evicted, so the earliest state is op 1
	if current.At(0) != 1 {
		t.Errorf("after 10 undos At(0) = %v, want 1", current.At(0))
	}
	if _, ok := h.Undo(current); ok {
		t.Error("11th Undo should fail")
	}
}

func TestHistory_UndoRedo(t *testing.T) {
	t.Parallel()

	h := New(0)
	a, b, c := step(1), step(2), step(3)

	h.Record(a) // a -> b
	h.Record(b) // b -> c
	current := c

	current, _ = h.Undo(current)
	if current != b {
		t.Fatalf("Undo() = %v, want b", current.At(0))
	}
	current, _ = h.Undo(current)
	if current != a {
		t.Fatalf("Undo() = %v, want a", current.At(0))
	}

	current, _ = h.Redo(current)
	if current != b {
		t.Fatalf("Redo() = %v, want b", current.At(0))
	}
	current, _ = h.Redo(current)
	if current != c {
		t.Fatalf("Redo() = %v, want c", current.At(0))
	}
	if h.CanRedo() {
		t.Error("redo stack should be empty")
	}
}

func TestHistory_RecordClearsRedo(t *testing.T) {
	t.Parallel()

	h := New(3)
	h.Record(step(1))
	current, _ := h.Undo(step(2))

	if !h.CanRedo() {
		t.Fatal("expected a redo entry")
	}

	h.Record(current)
	if h.CanRedo() {
		t.Error("Record should clear redo")
	}
	if h.UndoLen() != 1 {
		t.Errorf("UndoLen() = %d, want 1", h.UndoLen())
	}
}

func TestHistory_EmptyStacks(t *testing.T) {
	t.Parallel()

	h := New(2)
	cur := step(5)

	if got, ok := h.Undo(cur); ok || got != cur {
		t.Error("Undo on empty history should return current, false")
	}
	if got, ok := h.Redo(cur); ok || got != cur {
		t.Error("Redo on empty history should return current, false")
	}
}

func BenchmarkHistory_Record(b *testing.B) {
	h := New(DefaultCapacity)
	buf := step(1)

	b.ReportAllocs()

	for b.Loop() {
		h.Record(buf)
	}
}
