// SPDX-License-Identifier: EPL-2.0

// Package editor keeps the state of one editing session: the current
// buffer, the selection, the clipboard and the undo/redo history.
//
// Every operation that replaces the current buffer goes through the same
// path. The session is marked busy, the transform runs without holding
// the state lock, and on success the previous buffer is recorded in the
// history in the same critical section that installs the new one.
// Operations that change nothing leave no history entry.
//
// A second mutating call while the session is busy fails with ErrBusy.
// Calls are rejected, never queued:
//
//	s := editor.New(editor.WithLogger(logger))
//	s.Load(buf)
//	_ = s.Enhance(func(stage restore.Stage, done, total int) {
//	    fmt.Printf("%s %d/%d\n", stage, done, total)
//	})
//	if err := s.Export(w); err != nil {
//	    return err
//	}
//
// Busy reports the flag at any time, including from inside a progress
// callback.
package editor
