// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"

	"github.com/ik5/audframe/internal/pcm"
)

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedFormat    = errors.New("only PCM WAV supported")
	ErrUnsupportedBitDepth  = errors.New("only 16, 24 and 32-bit PCM supported")
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")
	ErrInvalidEncoderConfig = errors.New("invalid WAV encoder configuration")

	// ErrSinkClosed is returned by WriteFrames after the sink was closed.
	ErrSinkClosed = pcm.ErrSinkClosed
)
