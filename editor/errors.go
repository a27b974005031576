// SPDX-License-Identifier: EPL-2.0

package editor

import "errors"

var (
	ErrBusy     = errors.New("session is busy")
	ErrNoBuffer = errors.New("no buffer loaded")
	ErrNoPlayer = errors.New("no player configured")
)
