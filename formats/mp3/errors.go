// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrUnknownLength is returned when the codec cannot report the decoded
// stream length, which happens when the source does not support seeking.
var ErrUnknownLength = errors.New("unknown stream length")
