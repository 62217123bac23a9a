// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

// ErrNotFlacStream is returned when the input does not carry the FLAC
// stream marker or the metadata blocks fail to parse.
var ErrNotFlacStream = errors.New("not a FLAC stream")

// ErrUnknownLength is returned when the stream info block does not declare
// a total sample count.
var ErrUnknownLength = errors.New("unknown stream length")

// ErrUnsupportedBitDepth is returned for streams whose sample size is not
// 8, 16, 24 or 32 bits.
var ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

// ErrUnsupportedChannels is returned when the channel count has no FLAC
// channel assignment, which caps at 8 channels.
var ErrUnsupportedChannels = errors.New("unsupported channel count")
