// SPDX-License-Identifier: EPL-2.0

// Package voxedit is an in-memory editor and restoration engine for mono
// speech recordings.
//
// Audio lives in an audio.Buffer: one channel of float32 samples at a fixed
// rate, never modified after it is built. Every operation takes buffers and
// returns a new one, so old buffers are safe to keep as undo snapshots or
// clipboard contents.
//
// # Packages
//
//   - audio: Buffer, streaming sources and decoders, mono mixing,
//     resampling and waveform peaks
//   - edit: selections, cut/copy/paste and classic effects
//   - restore: silence detection, pause compaction, noise gate and the
//     SmartEnhance pipeline
//   - history: bounded undo/redo
//   - editor: a Session tying buffer, selection, clipboard and history
//     together behind a busy guard
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff: decoders,
//     plus the 16-bit WAV exporter in formats/wav
//
// # Loading
//
// This package wires the decoders into a registry keyed by file extension
// and converts whatever they produce to the editing rate:
//
//	buf, err := voxedit.DecodeFile("take3.mp3", voxedit.DefaultSampleRate)
//	if err != nil {
//	    return err
//	}
//
// Sources from elsewhere go through Load:
//
//	buf, err := voxedit.Load(src, 0) // 0 means DefaultSampleRate
//
// # Editing
//
//	s := editor.New()
//	s.Load(buf)
//	s.Select(0.25, 0.5)
//	s.Cut()
//	s.Enhance(nil)
//	s.Export(w)
package voxedit
