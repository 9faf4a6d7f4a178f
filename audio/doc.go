// SPDX-License-Identifier: EPL-2.0

// Package audio provides the planar audio plumbing around the frame package.
//
// This package contains:
//   - Source and Sink interfaces for planar float64 audio
//   - Decoder/Encoder interfaces and a Registry keyed by format name
//   - Processor, the per-frame hook with look-ahead
//   - Pipeline, which turns an arbitrary chunked stream into processed frames
//   - Helpers to convert between interleaved PCM and planes
//
// # Source and Sink
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    Length() int64
//	    ReadFrames(dst [][]float64) (int, error)
//	    Close() error
//	}
//
// ReadFrames fills dst[c][:n] for every channel and returns n. Sinks take the
// same layout through WriteFrames(src, n).
//
// # Pipeline
//
// A Pipeline accepts chunks of any size and hands back the same samples,
// delayed and processed a frame at a time:
//
//	gain, _ := audio.NewGainDB(-6)
//	p, _ := audio.NewPipeline(2, 4096, 8, gain)
//
//	n, err := p.ProcessInPlace(buf, got) // buf[c][:n] now holds output
//	...
//	for {
//	    n, err := p.Flush(buf, len(buf[0]))
//	    if n == 0 || err != nil {
//	        break
//	    }
//	}
//
// The Processor sees the frame about to leave the queue plus the frames
// queued behind it, so frameCount sets how far ahead it can look.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, format, ok := registry.ForPath("take.WAV")
//
// Format names are case-insensitive.
//
// # Sample Format
//
// Samples are float64, nominally in [-1.0, 1.0]. Values outside that range
// survive processing and are only clamped when converted back to integer PCM.
//
// # Error Handling
//
// ReadFrames returns io.EOF when the stream is exhausted, possibly together
// with the final samples:
//
//	for {
//	    n, err := source.ReadFrames(buf)
//	    // use buf[c][:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
