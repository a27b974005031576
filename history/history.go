// SPDX-License-Identifier: EPL-2.0

package history

import "github.com/ik5/voxedit/audio"

// DefaultCapacity is the number of snapshots kept on each stack.
const DefaultCapacity = 10

// History tracks undo and redo snapshots of whole buffers. Buffers are
// immutable, so snapshots are stored by reference.
//
// History is not safe for concurrent use.
type History struct {
	undo *Ring[*audio.Buffer]
	redo *Ring[*audio.Buffer]
}

// New creates a History keeping capacity snapshots per stack. A capacity
// of zero or less selects DefaultCapacity.
func New(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &History{
		undo: NewRing[*audio.Buffer](capacity),
		redo: NewRing[*audio.Buffer](capacity),
	}
}

// Record saves prev, the buffer about to be replaced by a new edit, and
// clears the redo stack.
func (h *History) Record(prev *audio.Buffer) {
	h.undo.Push(prev)
	h.redo.Clear()
}

// Undo returns the most recent snapshot and remembers current for Redo.
func (h *History) Undo(current *audio.Buffer) (*audio.Buffer, bool) {
	prev, ok := h.undo.Pop()
	if !ok {
		return current, false
	}
	h.redo.Push(current)

	return prev, true
}

// Redo reapplies the most recently undone buffer and remembers current for
// Undo.
func (h *History) Redo(current *audio.Buffer) (*audio.Buffer, bool) {
	next, ok := h.redo.Pop()
	if !ok {
		return current, false
	}
	h.undo.Push(current)

	return next, true
}

func (h *History) CanUndo() bool { return h.undo.Len() > 0 }
func (h *History) CanRedo() bool { return h.redo.Len() > 0 }
func (h *History) UndoLen() int  { return h.undo.Len() }
func (h *History) RedoLen() int  { return h.redo.Len() }

// Clear forgets every snapshot.
func (h *History) Clear() {
	h.undo.Clear()
	h.redo.Clear()
}
