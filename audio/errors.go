// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidInterleavedSize = errors.New("interleaved size must be multiple of channels")
	ErrChannelMismatch        = errors.New("buffer channel count does not match stream")
	ErrShortBuffer            = errors.New("buffer shorter than requested sample count")
	ErrNilProcessor           = errors.New("processor must not be nil")
	ErrInvalidGain            = errors.New("gain must be finite and non-negative")
	ErrPipelineStalled        = errors.New("pipeline could not move a frame")
	ErrFlushing               = errors.New("pipeline is flushing; drain it or Reset first")
)
