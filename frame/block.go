// SPDX-License-Identifier: EPL-2.0

package frame

import "fmt"

// Block is a fixed-size multichannel frame of samples: frameLength samples
// for each of channels channels. Storage is allocated once and never grows.
//
// A Block is exclusively owned by whoever created it (a Stream, a Queue slot or
// a caller of NewBlock) and must only be passed around by pointer.
type Block struct {
	_ noCopy

	channels int
	length   int

	data   []float64   // channel c lives at data[c*length : (c+1)*length]
	planes [][]float64 // capped views into data, one per channel
}

// NewBlock allocates a zeroed block of channels x frameLength samples.
func NewBlock(channels, frameLength int) (*Block, error) {
	if channels <= 0 || frameLength <= 0 {
		return nil, fmt.Errorf("%w: channels=%d frameLength=%d", ErrInvalidShape, channels, frameLength)
	}

	b := &Block{
		channels: channels,
		length:   frameLength,
		data:     make([]float64, channels*frameLength),
		planes:   make([][]float64, channels),
	}

	for c := range channels {
		lo := c * frameLength
		hi := lo + frameLength
		b.planes[c] = b.data[lo:hi:hi]
	}

	return b, nil
}

func (b *Block) Channels() int { return b.channels }
func (b *Block) Len() int      { return b.length }

// Channel returns the samples of channel c. The slice aliases the block.
func (b *Block) Channel(c int) ([]float64, error) {
	if c < 0 || c >= b.channels {
		return nil, fmt.Errorf("%w: %d of %d", ErrChannelOutOfRange, c, b.channels)
	}
	return b.planes[c], nil
}

// Planes returns one slice per channel, each exactly Len() samples long.
// The slices alias the block; the outer slice is shared and must not be modified.
func (b *Block) Planes() [][]float64 {
	return b.planes
}

// Clear zero-fills every channel.
func (b *Block) Clear() {
	clear(b.data)
}

// ClearRange zero-fills [offset, offset+length) in every channel.
func (b *Block) ClearRange(offset, length int) error {
	if err := b.checkRange(offset, length); err != nil {
		return err
	}
	for _, p := range b.planes {
		clear(p[offset : offset+length])
	}
	return nil
}

// Write copies length samples per channel from src[c][srcOffset:] into this
// block at dstOffset. Nothing is copied unless the whole request is valid.
func (b *Block) Write(src [][]float64, srcOffset, dstOffset, length int) error {
	if err := b.checkRange(dstOffset, length); err != nil {
		return err
	}
	if err := b.checkExternal(src, srcOffset, length); err != nil {
		return err
	}

	for c, p := range b.planes {
		copy(p[dstOffset:dstOffset+length], src[c][srcOffset:srcOffset+length])
	}
	return nil
}

// WriteBlock is Write with another block as the source.
func (b *Block) WriteBlock(src *Block, srcOffset, dstOffset, length int) error {
	if src.channels != b.channels {
		return fmt.Errorf("%w: got %d, want %d", ErrChannelMismatch, src.channels, b.channels)
	}
	if err := src.checkRange(srcOffset, length); err != nil {
		return err
	}
	return b.Write(src.planes, srcOffset, dstOffset, length)
}

// Read copies length samples per channel from this block at srcOffset into
// dst[c][dstOffset:]. Nothing is copied unless the whole request is valid.
func (b *Block) Read(dst [][]float64, dstOffset, srcOffset, length int) error {
	if err := b.checkRange(srcOffset, length); err != nil {
		return err
	}
	if err := b.checkExternal(dst, dstOffset, length); err != nil {
		return err
	}

	for c, p := range b.planes {
		copy(dst[c][dstOffset:dstOffset+length], p[srcOffset:srcOffset+length])
	}
	return nil
}

// ReadBlock is Read with another block as the destination.
func (b *Block) ReadBlock(dst *Block, dstOffset, srcOffset, length int) error {
	if dst.channels != b.channels {
		return fmt.Errorf("%w: got %d, want %d", ErrChannelMismatch, dst.channels, b.channels)
	}
	if err := dst.checkRange(dstOffset, length); err != nil {
		return err
	}
	return b.Read(dst.planes, dstOffset, srcOffset, length)
}

func (b *Block) checkRange(offset, length int) error {
	if offset < 0 || length < 0 {
		return fmt.Errorf("%w: offset=%d length=%d", ErrNegative, offset, length)
	}
	if length > b.length-offset {
		return fmt.Errorf("%w: %d+%d > %d", ErrOutOfRange, offset, length, b.length)
	}
	return nil
}

// checkExternal validates a caller-owned per-channel buffer.
func (b *Block) checkExternal(buf [][]float64, offset, length int) error {
	if len(buf) != b.channels {
		return fmt.Errorf("%w: got %d, want %d", ErrChannelMismatch, len(buf), b.channels)
	}
	if offset < 0 || length < 0 {
		return fmt.Errorf("%w: offset=%d length=%d", ErrNegative, offset, length)
	}
	for c, ch := range buf {
		if length > len(ch)-offset {
			return fmt.Errorf("%w: channel %d: %d+%d > %d", ErrOutOfRange, c, offset, length, len(ch))
		}
	}
	return nil
}
