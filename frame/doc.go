// SPDX-License-Identifier: EPL-2.0

// Package frame buffers multichannel float64 audio into fixed-size frames.
//
// It provides three layered types:
//   - Block: a fixed channels x frameLength sample block with bounds-checked
//     bulk copies against raw per-channel slices or other blocks
//   - Stream: a single-frame put/get adapter around one Block that turns
//     arbitrarily sized writes and reads into whole frames
//   - Queue: a bounded circular queue of preallocated Blocks that accepts and
//     returns whole frames, giving look-ahead/delay buffering between stages
//
// # Samples
//
// Audio is handled planar: one []float64 per channel. The raw forms accepted
// by Block.Write and Stream.PutSamples are [][]float64 with exactly one slice
// per channel.
//
// # Accumulating frames
//
//	in, _ := frame.NewStream(2, 4096)
//	q, _ := frame.NewQueue(2, 4096, 8)
//
//	n := min(len(samples[0]), in.Writable())
//	if err := in.PutSamples(samples, 0, n); err != nil {
//	    return err
//	}
//	if in.Full() {
//	    ok, err := q.PutFrame(in)
//	    if err != nil {
//	        return err
//	    }
//	    if !ok {
//	        // queue full: drain with GetFrame first
//	    }
//	    in.Reset(true)
//	}
//
// # Errors
//
// Two kinds of failure are kept apart:
//   - Flow control: PutFrame on a full queue and GetFrame on an empty one
//     return false with a nil error. Callers drain or wait.
//   - Misuse: out of range offsets, channel mismatches, partial frames, and
//     puts/gets beyond a stream's remaining capacity return an error wrapping
//     one of the Err values of this package. The call has no effect.
//
// Capacity checks are always on; a rejected call never writes partially.
//
// # Ownership
//
// Every Block is owned by exactly one Stream, Queue slot or caller and is
// used through a pointer only; go vet reports accidental value copies.
// Nothing here allocates after construction, blocks, or takes a lock: a
// Queue is meant to be driven from a single goroutine.
package frame
