// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audframe/audio"
	"github.com/ik5/audframe/utils"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	channels      = 2
	bytesPerFrame = 4
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
	Length() int64
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	carry      int // bytes of an incomplete frame kept at the front of buf
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }

// Length is the stream length in samples per channel, -1 when the input
// could not be scanned.
func (s *source) Length() int64 {
	n := s.dec.Length()
	if n < 0 {
		return -1
	}
	return n / bytesPerFrame
}

func (s *source) ReadFrames(dst [][]float64) (int, error) {
	if len(dst) != channels {
		return 0, fmt.Errorf("%w: got %d planes, want %d", audio.ErrChannelMismatch, len(dst), channels)
	}
	frames := len(dst[0])
	if frames == 0 {
		return 0, nil
	}

	need := frames * bytesPerFrame
	if cap(s.buf) < need {
		grown := make([]byte, need)
		copy(grown, s.buf[:s.carry])
		s.buf = grown
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf[s.carry:])
	total := s.carry + n
	got := total / bytesPerFrame
	if got == 0 {
		s.carry = total
		return 0, err
	}

	left, right := dst[0], dst[1]
	for i := range got {
		b := s.buf[i*bytesPerFrame:]
		left[i] = utils.IntToFloat(int(int16(binary.LittleEndian.Uint16(b[0:2]))), 16)
		right[i] = utils.IntToFloat(int(int16(binary.LittleEndian.Uint16(b[2:4]))), 16)
	}

	s.carry = copy(s.buf, s.buf[got*bytesPerFrame:total])
	return got, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3 header: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 4096*bytesPerFrame),
	}, nil
}
