// SPDX-License-Identifier: EPL-2.0

package frame

import "errors"

var (
	// ErrInvalidShape indicates a non-positive channel count, frame length or frame count.
	ErrInvalidShape = errors.New("channels, frame length and frame count must be positive")

	// ErrNegative indicates a negative offset or length.
	ErrNegative = errors.New("offset and length must not be negative")

	// ErrChannelMismatch indicates an external buffer with the wrong number of channels.
	ErrChannelMismatch = errors.New("channel count mismatch")

	// ErrChannelOutOfRange indicates a channel index outside the block.
	ErrChannelOutOfRange = errors.New("channel index out of range")

	// ErrOutOfRange indicates offset+length past the end of a block or buffer.
	ErrOutOfRange = errors.New("offset plus length out of range")

	// ErrCapacityExceeded indicates a stream put or get larger than what is left.
	ErrCapacityExceeded = errors.New("stream capacity exceeded")

	// ErrShapeMismatch indicates a stream whose channels or frame length differ from the queue.
	ErrShapeMismatch = errors.New("stream shape does not match queue")

	// ErrPartialFrame indicates a stream that does not hold exactly one full frame.
	ErrPartialFrame = errors.New("stream does not hold a full frame")

	// ErrStreamNotEmpty indicates a destination stream that was not reset before GetFrame.
	ErrStreamNotEmpty = errors.New("destination stream is not empty")
)
