// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/audframe/audio"
	"github.com/ik5/audframe/internal/pcm"
)

// Encoder writes big-endian PCM AIFF. Zero BitDepth means 16.
type Encoder struct {
	BitDepth int
}

func (e Encoder) Encode(w io.WriteSeeker, sampleRate, channels int) (audio.Sink, error) {
	bitDepth := e.BitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}

	switch {
	case w == nil:
		return nil, fmt.Errorf("%w: nil writer", ErrInvalidEncoderConfig)
	case !supportedBitDepth(bitDepth):
		return nil, fmt.Errorf("%w: %d-bit", ErrUnsupportedBitDepth, bitDepth)
	case sampleRate < 1 || channels < 1:
		return nil, fmt.Errorf("%w: %d Hz, %d channels", ErrInvalidEncoderConfig, sampleRate, channels)
	}

	return pcm.NewSink(aiff.NewEncoder(w, sampleRate, bitDepth, channels), sampleRate, channels, bitDepth), nil
}
