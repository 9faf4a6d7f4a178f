// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/ik5/audframe/frame"
)

// Lookahead gives read access to the frames still queued behind the one
// being processed. *frame.Queue implements it.
type Lookahead interface {
	FramesUsed() int
	Peek(i int) (*frame.Block, bool)
}

// Processor transforms one frame in place right before the Pipeline emits it.
// ahead holds the frames that follow cur in the stream, oldest first.
type Processor interface {
	Process(cur *frame.Block, ahead Lookahead) error
}

// ProcessorFunc adapts a plain function to Processor.
type ProcessorFunc func(cur *frame.Block, ahead Lookahead) error

func (f ProcessorFunc) Process(cur *frame.Block, ahead Lookahead) error { return f(cur, ahead) }

// Passthrough leaves frames untouched; the Pipeline then acts as a pure delay line.
type Passthrough struct{}

func (Passthrough) Process(*frame.Block, Lookahead) error { return nil }

// Gain multiplies every sample by a fixed linear factor.
type Gain struct {
	factor float64
}

// NewGain builds a Gain from a linear factor.
func NewGain(factor float64) (*Gain, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGain, factor)
	}
	return &Gain{factor: factor}, nil
}

// NewGainDB builds a Gain from decibels (0 dB is unity).
func NewGainDB(db float64) (*Gain, error) {
	return NewGain(math.Pow(10, db/20))
}

func (g *Gain) Factor() float64 { return g.factor }

func (g *Gain) Process(cur *frame.Block, _ Lookahead) error {
	if g.factor == 1 {
		return nil
	}
	for _, ch := range cur.Planes() {
		for i := range ch {
			ch[i] *= g.factor
		}
	}
	return nil
}
