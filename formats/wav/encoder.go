// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/ik5/audframe/audio"
	"github.com/ik5/audframe/internal/pcm"
)

// DefaultBitDepth is used when Encoder.BitDepth is zero.
const DefaultBitDepth = 16

// Encoder writes PCM WAV files. BitDepth may be 16, 24 or 32; zero means
// DefaultBitDepth.
type Encoder struct {
	BitDepth int
}

func (e Encoder) Encode(w io.WriteSeeker, sampleRate, channels int) (audio.Sink, error) {
	bitDepth := e.BitDepth
	if bitDepth == 0 {
		bitDepth = DefaultBitDepth
	}

	switch {
	case w == nil:
		return nil, fmt.Errorf("%w: nil writer", ErrInvalidEncoderConfig)
	case !supportedBitDepth(bitDepth):
		return nil, fmt.Errorf("%w: %d-bit", ErrUnsupportedBitDepth, bitDepth)
	case sampleRate < 1 || channels < 1:
		return nil, fmt.Errorf("%w: %d Hz, %d channels", ErrInvalidEncoderConfig, sampleRate, channels)
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, channels, wavPCMFormat)
	return pcm.NewSink(enc, sampleRate, channels, bitDepth), nil
}

// WriteFile encodes planes[c][:n] as a complete WAV stream in one go.
func WriteFile(w io.WriteSeeker, sampleRate, bitDepth int, planes [][]float64, n int) error {
	s, err := Encoder{BitDepth: bitDepth}.Encode(w, sampleRate, len(planes))
	if err != nil {
		return err
	}
	if err := s.WriteFrames(planes, n); err != nil {
		_ = s.Close()
		return err
	}
	return s.Close()
}
