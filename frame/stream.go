// SPDX-License-Identifier: EPL-2.0

package frame

import "fmt"

// Stream adapts one Block into a single-frame write-then-read buffer.
// Producers append at the put cursor, consumers drain from the get cursor;
// once the frame is full nothing more can be put until Reset.
type Stream struct {
	_ noCopy

	block  *Block
	putPos int
	getPos int
}

// NewStream creates a stream holding one frame of channels x frameLength samples.
func NewStream(channels, frameLength int) (*Stream, error) {
	b, err := NewBlock(channels, frameLength)
	if err != nil {
		return nil, err
	}
	return &Stream{block: b}, nil
}

func (s *Stream) Channels() int    { return s.block.channels }
func (s *Stream) FrameLength() int { return s.block.length }

// Writable is the number of samples per channel that can still be put.
func (s *Stream) Writable() int { return s.block.length - s.putPos }

// Readable is the number of samples per channel put but not yet taken.
func (s *Stream) Readable() int { return s.putPos - s.getPos }

// Full reports whether a whole frame has been put.
func (s *Stream) Full() bool { return s.putPos == s.block.length }

// Block returns the owned block for in-place processing. The stream keeps
// ownership; callers must not retain it past the next Reset.
func (s *Stream) Block() *Block { return s.block }

// PutSamples appends length samples per channel from src starting at srcOffset.
func (s *Stream) PutSamples(src [][]float64, srcOffset, length int) error {
	if err := s.checkPut(length); err != nil {
		return err
	}
	if err := s.block.Write(src, srcOffset, s.putPos, length); err != nil {
		return err
	}
	s.putPos += length
	return nil
}

// PutBlock appends length samples per channel from src starting at srcOffset.
func (s *Stream) PutBlock(src *Block, srcOffset, length int) error {
	if err := s.checkPut(length); err != nil {
		return err
	}
	if err := s.block.WriteBlock(src, srcOffset, s.putPos, length); err != nil {
		return err
	}
	s.putPos += length
	return nil
}

// GetSamples takes length samples per channel into dst starting at dstOffset.
func (s *Stream) GetSamples(dst [][]float64, dstOffset, length int) error {
	if err := s.checkGet(length); err != nil {
		return err
	}
	if err := s.block.Read(dst, dstOffset, s.getPos, length); err != nil {
		return err
	}
	s.getPos += length
	return nil
}

// GetBlock takes length samples per channel into dst starting at dstOffset.
func (s *Stream) GetBlock(dst *Block, dstOffset, length int) error {
	if err := s.checkGet(length); err != nil {
		return err
	}
	if err := s.block.ReadBlock(dst, dstOffset, s.getPos, length); err != nil {
		return err
	}
	s.getPos += length
	return nil
}

// Pad fills the remaining writable samples with silence and marks them as
// put, so that a trailing partial frame can travel through a Queue.
// It returns how many samples of padding were added.
func (s *Stream) Pad() int {
	n := s.Writable()
	if n == 0 {
		return 0
	}
	for _, plane := range s.block.planes {
		clear(plane[s.putPos:])
	}
	s.putPos += n
	return n
}

// Reset rewinds both cursors. With clear set the frame is zero-filled too.
func (s *Stream) Reset(clear bool) {
	s.putPos = 0
	s.getPos = 0
	if clear {
		s.block.Clear()
	}
}

func (s *Stream) checkPut(length int) error {
	if length < 0 {
		return fmt.Errorf("%w: length=%d", ErrNegative, length)
	}
	if length > s.Writable() {
		return fmt.Errorf("%w: put %d, %d writable", ErrCapacityExceeded, length, s.Writable())
	}
	return nil
}

func (s *Stream) checkGet(length int) error {
	if length < 0 {
		return fmt.Errorf("%w: length=%d", ErrNegative, length)
	}
	if length > s.Readable() {
		return fmt.Errorf("%w: get %d, %d readable", ErrCapacityExceeded, length, s.Readable())
	}
	return nil
}
