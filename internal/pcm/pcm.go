// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer PCM codecs to the planar audio.Source
// and audio.Sink interfaces.
package pcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audframe/audio"
)

// ErrSinkClosed is returned by WriteFrames after Close.
var ErrSinkClosed = errors.New("sink closed")

// Reader is the read half of a go-audio decoder (wav.Decoder, aiff.Decoder).
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Writer is the write half of a go-audio encoder (wav.Encoder, aiff.Encoder).
type Writer interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

// Source reads interleaved integer PCM and hands it out as planes.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	bitDepth   int
	length     int64
	intBuf     *goaudio.IntBuffer
}

// NewSource wraps dec. length is in samples per channel, -1 when unknown.
func NewSource(dec Reader, sampleRate, channels, bitDepth int, length int64) *Source {
	return &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
		length:     length,
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) Length() int64   { return s.length }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadFrames(dst [][]float64) (int, error) {
	if len(dst) != s.channels {
		return 0, fmt.Errorf("%w: got %d planes, want %d", audio.ErrChannelMismatch, len(dst), s.channels)
	}
	frames := len(dst[0])
	if frames == 0 {
		return 0, nil
	}

	want := frames * s.channels
	if s.intBuf == nil || cap(s.intBuf.Data) < want {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, want),
			Format:         s.dec.Format(),
			SourceBitDepth: s.bitDepth,
		}
	}
	s.intBuf.Data = s.intBuf.Data[:want]

	n, err := s.dec.PCMBuffer(s.intBuf)
	// drop a dangling partial frame from a truncated file
	n -= n % s.channels
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	got, derr := audio.DeinterleaveInt(dst, s.intBuf.Data[:n], s.bitDepth)
	if derr != nil {
		return 0, derr
	}

	if n < want && err == nil {
		return got, io.EOF
	}
	return got, err
}

// Sink interleaves planes into integer PCM for a go-audio encoder.
type Sink struct {
	enc      Writer
	channels int
	bitDepth int
	buf      *goaudio.IntBuffer
	closed   bool
}

func NewSink(enc Writer, sampleRate, channels, bitDepth int) *Sink {
	return &Sink{
		enc:      enc,
		channels: channels,
		bitDepth: bitDepth,
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: bitDepth,
		},
	}
}

func (s *Sink) WriteFrames(src [][]float64, n int) error {
	if s.closed {
		return ErrSinkClosed
	}
	if len(src) != s.channels {
		return fmt.Errorf("%w: got %d planes, want %d", audio.ErrChannelMismatch, len(src), s.channels)
	}
	if n == 0 {
		return nil
	}

	want := n * s.channels
	if cap(s.buf.Data) < want {
		s.buf.Data = make([]int, want)
	}
	s.buf.Data = s.buf.Data[:want]

	if err := audio.InterleaveInt(s.buf.Data, src, n, s.bitDepth); err != nil {
		return err
	}
	if err := s.enc.Write(s.buf); err != nil {
		return fmt.Errorf("writing frames: %w", err)
	}
	return nil
}

// Close finalizes the encoder. The underlying writer is left open.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.enc.Close(); err != nil {
		return fmt.Errorf("finalizing: %w", err)
	}
	return nil
}

// SeekableReader returns r as an io.ReadSeeker, buffering it in memory when
// it cannot seek. go-audio decoders need to seek.
func SeekableReader(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}
