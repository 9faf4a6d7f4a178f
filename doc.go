// SPDX-License-Identifier: EPL-2.0

// Package audframe buffers multichannel audio into fixed-size frames so that
// a frame-based processor can look ahead while the caller keeps pushing
// chunks of any size.
//
// The package is layered:
//   - frame: SampleBlock storage (Block), the accumulating Stream and the
//     FIFO Queue of frames
//   - audio: planar Source/Sink interfaces, the Processor hook and the
//     Pipeline that wires Stream -> Queue -> Stream around it
//   - formats/*: WAV, AIFF, MP3 and Ogg Vorbis codecs
//   - audframe: Process, the streaming loop tying the pieces together
//
// # Supported Formats
//
//   - WAV (PCM 16/24/32-bit) decode and encode via formats/wav
//   - AIFF (PCM 16/24/32-bit) decode and encode via formats/aiff
//   - MP3 decode via formats/mp3
//   - Ogg Vorbis decode via formats/vorbis
//
// # Quick Start
//
//	in, _ := os.Open("input.mp3")
//	src, _ := mp3.Decoder{}.Decode(in)
//
//	out, _ := os.Create("output.wav")
//	sink, _ := wav.Encoder{}.Encode(out, src.SampleRate(), src.Channels())
//
//	gain, _ := audio.NewGainDB(-3)
//	p, _ := audio.NewPipeline(src.Channels(), 4096, 8, gain)
//
//	stats, err := audframe.Process(ctx, src, sink, p)
//	...
//	sink.Close()
//
// Process reads chunks, hands them to the pipeline, writes whatever comes
// out and finally flushes the frames still held for look-ahead, so the
// output has exactly as many samples as the input.
//
// # Sample Format
//
// Samples are float64, one slice per channel. Integer PCM is converted with
// utils.FloatToInt and utils.IntToFloat at the codec boundary.
//
// # Thread Safety
//
// Nothing here is safe for concurrent use except audio.Registry. Run one
// Pipeline per goroutine.
package audframe
