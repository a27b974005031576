// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidSampleRate  = errors.New("sample rate must be positive")
	ErrNoChannels         = errors.New("source reports no channels")
	ErrSampleRateMismatch = errors.New("buffers have different sample rates")
)
