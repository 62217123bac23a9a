// SPDX-License-Identifier: EPL-2.0

package audiorw

import "errors"

var (
	// ErrAborted reports that the caller's abort check stopped an
	// operation at a chunk boundary. Nothing was committed.
	ErrAborted = errors.New("operation aborted")

	// ErrUnrecognizedFormat reports that every candidate format refused
	// to open the stream. It wraps the last candidate's error.
	ErrUnrecognizedFormat = errors.New("unrecognized audio format")

	// ErrIncompleteTransfer reports a frame shortfall against the header
	// frame count mid-transfer.
	ErrIncompleteTransfer = errors.New("incomplete transfer")

	// ErrNoEncoder reports a format or file extension with no encode
	// support.
	ErrNoEncoder = errors.New("no encoder for format")
)
