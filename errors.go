// SPDX-License-Identifier: EPL-2.0

package voxedit

import "errors"

var ErrUnsupportedFormat = errors.New("unsupported audio format")
