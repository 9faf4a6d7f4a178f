// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/audframe/frame"
)

// Pipeline chops a planar sample stream into frames, holds them in a
// frame.Queue for look-ahead, runs a Processor on each frame as it leaves the
// queue and hands the result back out. Output lags input by up to Delay()
// samples; concatenated output equals processed input, sample for sample.
//
// Data path: caller -> in (frame.Stream) -> queue (frame.Queue) -> out (frame.Stream) -> caller.
//
// A Pipeline is not safe for concurrent use.
type Pipeline struct {
	in    *frame.Stream
	queue *frame.Queue
	out   *frame.Stream
	proc  Processor

	// buffered counts real (non padding) samples per channel held anywhere in
	// the pipeline.
	buffered int
	padded   bool
	flushing bool

	logger *slog.Logger
}

type Option func(*Pipeline)

// WithLogger sets the logger used for debug output. Default discards.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPipeline creates a pipeline for channels x frameLength frames with a
// queue depth of frameCount frames.
func NewPipeline(channels, frameLength, frameCount int, proc Processor, opts ...Option) (*Pipeline, error) {
	if proc == nil {
		return nil, ErrNilProcessor
	}

	in, err := frame.NewStream(channels, frameLength)
	if err != nil {
		return nil, fmt.Errorf("input stream: %w", err)
	}
	out, err := frame.NewStream(channels, frameLength)
	if err != nil {
		return nil, fmt.Errorf("output stream: %w", err)
	}
	queue, err := frame.NewQueue(channels, frameLength, frameCount)
	if err != nil {
		return nil, fmt.Errorf("frame queue: %w", err)
	}

	p := &Pipeline{
		in:     in,
		queue:  queue,
		out:    out,
		proc:   proc,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

func (p *Pipeline) Channels() int    { return p.in.Channels() }
func (p *Pipeline) FrameLength() int { return p.in.FrameLength() }
func (p *Pipeline) FrameCount() int  { return p.queue.FrameCount() }

// Delay is the most samples per channel the pipeline holds back. The actual
// lag lies between (FrameCount()-1)*FrameLength() and Delay(), depending on
// how input is chunked.
func (p *Pipeline) Delay() int { return p.queue.FrameCount() * p.in.FrameLength() }

// Buffered is the number of input samples per channel not yet handed back.
func (p *Pipeline) Buffered() int { return p.buffered }

// ProcessInPlace consumes buf[c][:n] and overwrites the front of buf with as
// much delayed output as is available, returning the number of output
// samples per channel. Output never overtakes input, so only already
// consumed samples are overwritten.
//
// Once Flush has started handing out samples, ProcessInPlace fails with
// ErrFlushing until the flush completes or Reset is called.
func (p *Pipeline) ProcessInPlace(buf [][]float64, n int) (int, error) {
	if p.flushing {
		return 0, fmt.Errorf("%w: %d samples still buffered", ErrFlushing, p.buffered)
	}
	if err := p.checkBuffer(buf, n); err != nil {
		return 0, err
	}

	inPos, outPos := 0, 0
	for inPos < n {
		chunk := min(n-inPos, p.in.Writable())
		if err := p.in.PutSamples(buf, inPos, chunk); err != nil {
			return outPos, err
		}
		inPos += chunk
		p.buffered += chunk

		drained, err := p.drain(buf, outPos, inPos-outPos)
		if err != nil {
			return outPos, err
		}
		outPos += drained

		if p.in.Full() {
			if err := p.advance(); err != nil {
				return outPos, err
			}
			drained, err := p.drain(buf, outPos, inPos-outPos)
			if err != nil {
				return outPos, err
			}
			outPos += drained
		}
	}

	return outPos, nil
}

// Flush writes the remaining buffered samples into dst[c][:n] and returns
// how many were written. Call it repeatedly until it returns 0; a
// ProcessInPlace call in between fails with ErrFlushing. A trailing partial frame is padded
// with silence that is processed but never emitted. Once everything has been
// handed out the pipeline is reset and ready for a new stream.
func (p *Pipeline) Flush(dst [][]float64, n int) (int, error) {
	if err := p.checkBuffer(dst, n); err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	if p.buffered > 0 {
		p.flushing = true
	}

	outPos := 0
	for outPos < n && p.buffered > 0 {
		if p.out.Readable() == 0 {
			if err := p.refill(); err != nil {
				return outPos, err
			}
		}

		want := min(n-outPos, p.buffered, p.out.Readable())
		if err := p.out.GetSamples(dst, outPos, want); err != nil {
			return outPos, err
		}
		outPos += want
		p.buffered -= want
	}

	if p.buffered == 0 && (outPos > 0 || p.padded) {
		p.logger.Debug("pipeline flushed")
		p.Reset()
	}

	return outPos, nil
}

// Reset drops everything buffered without reallocating.
func (p *Pipeline) Reset() {
	p.in.Reset(true)
	p.out.Reset(true)
	p.queue.Reset()
	p.buffered = 0
	p.padded = false
	p.flushing = false
	p.logger.Debug("pipeline reset",
		"channels", p.Channels(),
		"frame_length", p.FrameLength(),
		"frame_count", p.FrameCount(),
	)
}

// advance moves the full input frame into the queue and, once the queue is
// full, moves the oldest frame out through the processor.
func (p *Pipeline) advance() error {
	ok, err := p.queue.PutFrame(p.in)
	if err != nil {
		return err
	}
	if !ok {
		// the queue always keeps a free slot between calls
		return fmt.Errorf("%w: queue full with %d frames", ErrPipelineStalled, p.queue.FramesUsed())
	}
	p.in.Reset(true)

	if p.queue.FramesFree() == 0 {
		return p.emit()
	}
	return nil
}

// refill is advance for the end of the stream: any partial input frame is
// padded and queued, then the next frame is emitted regardless of depth.
func (p *Pipeline) refill() error {
	if !p.padded && p.in.Readable() > 0 {
		pad := p.in.Pad()
		p.padded = true
		p.logger.Debug("padded final frame", "samples", pad)

		ok, err := p.queue.PutFrame(p.in)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: no slot for final frame", ErrPipelineStalled)
		}
		p.in.Reset(true)
	}
	return p.emit()
}

func (p *Pipeline) emit() error {
	if p.out.Readable() != 0 {
		return fmt.Errorf("%w: %d output samples pending", ErrPipelineStalled, p.out.Readable())
	}

	p.out.Reset(false)
	ok, err := p.queue.GetFrame(p.out)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: queue empty with %d samples buffered", ErrPipelineStalled, p.buffered)
	}

	return p.proc.Process(p.out.Block(), p.queue)
}

// drain copies up to room pending output samples into buf at offset.
func (p *Pipeline) drain(buf [][]float64, offset, room int) (int, error) {
	k := min(room, p.out.Readable())
	if k <= 0 {
		return 0, nil
	}
	if err := p.out.GetSamples(buf, offset, k); err != nil {
		return 0, err
	}
	p.buffered -= k
	return k, nil
}

func (p *Pipeline) checkBuffer(buf [][]float64, n int) error {
	if len(buf) != p.Channels() {
		return fmt.Errorf("%w: got %d, want %d", ErrChannelMismatch, len(buf), p.Channels())
	}
	if n < 0 {
		return fmt.Errorf("%w: n=%d", ErrShortBuffer, n)
	}
	return checkPlanes(buf, n)
}
