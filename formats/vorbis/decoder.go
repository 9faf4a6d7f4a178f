// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/audframe/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	buf        []float32 // interleaved values straight from the decoder
	carry      int       // values of an incomplete frame kept at the front of buf
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

// Length is in samples per channel; oggvorbis can only tell when the input
// is seekable, otherwise -1.
func (s *source) Length() int64 {
	if n := s.dec.Length(); n > 0 {
		return n
	}
	return -1
}

func (s *source) ReadFrames(dst [][]float64) (int, error) {
	if len(dst) != s.channels {
		return 0, fmt.Errorf("%w: got %d planes, want %d", audio.ErrChannelMismatch, len(dst), s.channels)
	}
	frames := len(dst[0])
	if frames == 0 {
		return 0, nil
	}

	need := frames * s.channels
	if cap(s.buf) < need {
		grown := make([]float32, need)
		copy(grown, s.buf[:s.carry])
		s.buf = grown
	}
	s.buf = s.buf[:need]

	// oggvorbis.Reader.Read returns the number of interleaved values written
	n, err := s.dec.Read(s.buf[s.carry:])
	total := s.carry + n
	got := total / s.channels
	if got == 0 {
		s.carry = total
		return 0, err
	}

	if _, derr := audio.Deinterleave(dst, s.buf[:got*s.channels]); derr != nil {
		return 0, derr
	}

	s.carry = copy(s.buf, s.buf[got*s.channels:total])
	return got, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("decoding vorbis headers: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		buf:        make([]float32, 4096*dec.Channels()),
	}, nil
}
