// SPDX-License-Identifier: EPL-2.0

package frame

import "fmt"

// Queue is a bounded circular queue of whole frames. All frame slots are
// allocated by NewQueue and reused for the lifetime of the queue.
//
// A full queue makes PutFrame report false, an empty one makes GetFrame
// report false; neither is an error. Queue is not safe for concurrent use.
type Queue struct {
	_ noCopy

	channels    int
	frameLength int

	frames []*Block

	free   int
	used   int
	putPos int
	getPos int
}

// NewQueue allocates frameCount frames of channels x frameLength samples.
func NewQueue(channels, frameLength, frameCount int) (*Queue, error) {
	if frameCount <= 0 {
		return nil, fmt.Errorf("%w: frameCount=%d", ErrInvalidShape, frameCount)
	}

	q := &Queue{
		channels:    channels,
		frameLength: frameLength,
		frames:      make([]*Block, frameCount),
		free:        frameCount,
	}

	for i := range q.frames {
		b, err := NewBlock(channels, frameLength)
		if err != nil {
			return nil, err
		}
		q.frames[i] = b
	}

	return q, nil
}

func (q *Queue) Channels() int    { return q.channels }
func (q *Queue) FrameLength() int { return q.frameLength }
func (q *Queue) FrameCount() int  { return len(q.frames) }
func (q *Queue) FramesFree() int  { return q.free }
func (q *Queue) FramesUsed() int  { return q.used }

// PutFrame moves the full frame held by src into the queue. src must hold
// exactly one unread frame. It returns false, leaving both src and the queue
// untouched, when no slot is free.
func (q *Queue) PutFrame(src *Stream) (bool, error) {
	if err := q.checkShape(src); err != nil {
		return false, err
	}
	if src.Readable() != q.frameLength {
		return false, fmt.Errorf("%w: %d of %d readable", ErrPartialFrame, src.Readable(), q.frameLength)
	}
	if q.free == 0 {
		return false, nil
	}

	if err := src.GetBlock(q.frames[q.putPos], 0, q.frameLength); err != nil {
		return false, err
	}

	q.putPos = (q.putPos + 1) % len(q.frames)
	q.free--
	q.used++
	return true, nil
}

// GetFrame moves the oldest queued frame into dst, which must be empty
// (freshly reset). It returns false, leaving both untouched, when the queue
// holds no frame.
func (q *Queue) GetFrame(dst *Stream) (bool, error) {
	if err := q.checkShape(dst); err != nil {
		return false, err
	}
	if dst.Writable() != q.frameLength {
		return false, fmt.Errorf("%w: %d of %d writable", ErrStreamNotEmpty, dst.Writable(), q.frameLength)
	}
	if q.used == 0 {
		return false, nil
	}

	if err := dst.PutBlock(q.frames[q.getPos], 0, q.frameLength); err != nil {
		return false, err
	}

	q.getPos = (q.getPos + 1) % len(q.frames)
	q.used--
	q.free++
	return true, nil
}

// Peek returns the i-th oldest queued frame, 0 being the one the next
// GetFrame returns. The block stays owned by the queue.
func (q *Queue) Peek(i int) (*Block, bool) {
	if i < 0 || i >= q.used {
		return nil, false
	}
	return q.frames[(q.getPos+i)%len(q.frames)], true
}

// Reset empties the queue without touching the frame storage.
func (q *Queue) Reset() {
	q.free = len(q.frames)
	q.used = 0
	q.putPos = 0
	q.getPos = 0
}

func (q *Queue) checkShape(s *Stream) error {
	if s.Channels() != q.channels || s.FrameLength() != q.frameLength {
		return fmt.Errorf("%w: stream %dx%d, queue %dx%d",
			ErrShapeMismatch, s.Channels(), s.FrameLength(), q.channels, q.frameLength)
	}
	return nil
}
