// SPDX-License-Identifier: EPL-2.0

package editor

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ik5/voxedit/audio"
	"github.com/ik5/voxedit/edit"
	"github.com/ik5/voxedit/formats/wav"
	"github.com/ik5/voxedit/history"
)

// Session is safe for concurrent use.
type Session struct {
	id     uuid.UUID
	log    *slog.Logger
	player audio.Player

	busy atomic.Bool

	mu           sync.Mutex
	current      *audio.Buffer
	selection    edit.Selection
	hasSelection bool
	clipboard    *audio.Buffer
	history      *history.History
}

type Option func(*Session)

// WithLogger sets the logger. The session adds its ID as the "session"
// attribute.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

func WithPlayer(p audio.Player) Option {
	return func(s *Session) { s.player = p }
}

// WithHistoryCapacity bounds the undo and redo stacks. Values below 1 keep
// history.DefaultCapacity.
func WithHistoryCapacity(n int) Option {
	return func(s *Session) { s.history = history.New(n) }
}

func New(opts ...Option) *Session {
	s := &Session{
		id:      uuid.New(),
		log:     slog.New(slog.DiscardHandler),
		history: history.New(history.DefaultCapacity),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("session", s.id.String())

	return s
}

func (s *Session) ID() uuid.UUID { return s.id }

// Busy reports whether a mutating operation is running.
func (s *Session) Busy() bool { return s.busy.Load() }

// Buffer returns the current buffer, or nil before Load.
func (s *Session) Buffer() *audio.Buffer {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// Load installs buf as the current buffer and starts a fresh history. The
// selection is dropped, the clipboard is kept.
func (s *Session) Load(buf *audio.Buffer) error {
	if buf == nil {
		return ErrNoBuffer
	}
	if !s.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer s.busy.Store(false)

	s.mu.Lock()
	s.current = buf
	s.hasSelection = false
	s.history.Clear()
	s.mu.Unlock()

	s.log.Debug("buffer loaded", "samples", buf.Len(), "rate", buf.SampleRate())

	return nil
}

// Select sets the selection from two timeline fractions in any order. A
// span narrower than edit.SelectionEpsilon clears the selection instead.
func (s *Session) Select(start, end float64) {
	sel := edit.Selection{Start: start, End: end}.Normalized()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection = sel
	s.hasSelection = !sel.IsDegenerate()
}

func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hasSelection = false
}

// Selection returns the active selection and whether there is one.
func (s *Session) Selection() (edit.Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selection, s.hasSelection
}

// Clipboard returns the last copied or cut clip, or nil.
func (s *Session) Clipboard() *audio.Buffer {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.clipboard
}

// Copy puts the selected samples on the clipboard. Without a selection, or
// when it maps to no samples, the clipboard is left alone.
func (s *Session) Copy() error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer s.busy.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNoBuffer
	}
	if !s.hasSelection {
		return nil
	}
	if clip := edit.Copy(s.current, s.selection); clip != nil {
		s.clipboard = clip
		s.log.Debug("copied", "samples", clip.Len())
	}

	return nil
}

// Cut moves the selected samples to the clipboard and drops the selection.
func (s *Session) Cut() error {
	return s.apply("cut", true, func(st snapshot) (*audio.Buffer, error) {
		if !st.hasSelection {
			return st.buf, nil
		}
		clip, rest := edit.Cut(st.buf, st.sel)
		if clip == nil {
			return st.buf, nil
		}

		s.mu.Lock()
		s.clipboard = clip
		s.mu.Unlock()

		return rest, nil
	})
}

// Delete removes the selected samples and drops the selection.
func (s *Session) Delete() error {
	return s.apply("delete", true, func(st snapshot) (*audio.Buffer, error) {
		if !st.hasSelection {
			return st.buf, nil
		}
		return edit.Delete(st.buf, st.sel), nil
	})
}

// Paste inserts the clipboard at the selection start, or appends it when
// nothing is selected.
func (s *Session) Paste() error {
	return s.paste(func(st snapshot) int {
		return edit.InsertionPoint(st.buf, st.sel, st.hasSelection)
	})
}

// PasteAt inserts the clipboard at floor(pos*len), pos clamped to [0,1].
// The selection is not consulted.
func (s *Session) PasteAt(pos float64) error {
	return s.paste(func(st snapshot) int {
		return edit.InsertionPoint(st.buf, edit.Selection{Start: pos, End: pos}, true)
	})
}

func (s *Session) paste(at func(snapshot) int) error {
	return s.apply("paste", false, func(st snapshot) (*audio.Buffer, error) {
		if st.clip.IsEmpty() {
			return st.buf, nil
		}
		if st.clip.SampleRate() != st.buf.SampleRate() {
			return nil, fmt.Errorf("paste %d Hz clip into %d Hz buffer: %w",
				st.clip.SampleRate(), st.buf.SampleRate(), audio.ErrSampleRateMismatch)
		}
		return edit.Paste(st.buf, st.clip, at(st)), nil
	})
}

func (s *Session) Normalize() error { return s.applyWhole("normalize", edit.Normalize) }
func (s *Session) Reverse() error   { return s.applyWhole("reverse", edit.Reverse) }
func (s *Session) Invert() error    { return s.applyWhole("invert", edit.Invert) }

func (s *Session) Gain(db float64) error {
	return s.applyWhole("gain", func(b *audio.Buffer) *audio.Buffer { return edit.Gain(b, db) })
}

func (s *Session) Fade(dir edit.Direction, seconds float64) error {
	return s.applyWhole("fade", func(b *audio.Buffer) *audio.Buffer { return edit.Fade(b, dir, seconds) })
}

func (s *Session) Echo(delaySeconds, feedback float64) error {
	return s.applyWhole("echo", func(b *audio.Buffer) *audio.Buffer {
		return edit.Echo(b, delaySeconds, feedback)
	})
}

func (s *Session) Reverb(delaySeconds, decay float64) error {
	return s.applyWhole("reverb", func(b *audio.Buffer) *audio.Buffer {
		return edit.Reverb(b, delaySeconds, decay)
	})
}

// Undo swaps the current buffer with the newest undo snapshot. It reports
// false when there is nothing to undo.
func (s *Session) Undo() (bool, error) {
	return s.step("undo", s.history.Undo)
}

func (s *Session) Redo() (bool, error) {
	return s.step("redo", s.history.Redo)
}

func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.history.CanUndo()
}

func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.history.CanRedo()
}

func (s *Session) step(name string, fn func(*audio.Buffer) (*audio.Buffer, bool)) (bool, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return false, ErrBusy
	}
	defer s.busy.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return false, ErrNoBuffer
	}
	prev, ok := fn(s.current)
	if !ok {
		return false, nil
	}
	s.replace(prev)
	s.log.Debug(name, "samples", prev.Len(), "undo", s.history.UndoLen(), "redo", s.history.RedoLen())

	return true, nil
}

// Play hands the current buffer to the configured player.
func (s *Session) Play() error {
	if s.player == nil {
		return ErrNoPlayer
	}
	if !s.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer s.busy.Store(false)

	buf := s.Buffer()
	if buf == nil {
		return ErrNoBuffer
	}
	if err := s.player.Play(buf); err != nil {
		return fmt.Errorf("play: %w", err)
	}

	return nil
}

// Export writes the current buffer as 16-bit mono WAV.
func (s *Session) Export(w io.Writer) error {
	buf := s.Buffer()
	if buf == nil {
		return ErrNoBuffer
	}
	if err := wav.Export(w, buf); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return nil
}

// snapshot is the state a transform sees, taken after the busy flag is set.
type snapshot struct {
	buf          *audio.Buffer
	sel          edit.Selection
	hasSelection bool
	clip         *audio.Buffer
}

type transform func(st snapshot) (*audio.Buffer, error)

func (s *Session) applyWhole(name string, fn func(*audio.Buffer) *audio.Buffer) error {
	return s.apply(name, false, func(st snapshot) (*audio.Buffer, error) {
		return fn(st.buf), nil
	})
}

// apply runs fn on a snapshot of the state with the busy flag held and the
// lock released. The result is committed only when it differs from the
// input buffer; consume then clears the selection.
func (s *Session) apply(name string, consume bool, fn transform) error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer s.busy.Store(false)

	s.mu.Lock()
	st := snapshot{
		buf:          s.current,
		sel:          s.selection,
		hasSelection: s.hasSelection,
		clip:         s.clipboard,
	}
	s.mu.Unlock()

	if st.buf == nil {
		return ErrNoBuffer
	}

	started := time.Now()
	out, err := fn(st)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if out == nil || out == st.buf {
		s.log.Debug("no change", "op", name)
		return nil
	}

	s.mu.Lock()
	s.history.Record(st.buf)
	s.replace(out)
	if consume {
		s.hasSelection = false
	}
	s.mu.Unlock()

	s.log.Debug("applied", "op", name, "samples", out.Len(), "elapsed", time.Since(started))

	return nil
}

// replace installs buf. A change in length invalidates the selection.
// Callers hold mu.
func (s *Session) replace(buf *audio.Buffer) {
	if buf.Len() != s.current.Len() {
		s.hasSelection = false
	}
	s.current = buf
}
