// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// It uses the github.com/go-audio/wav library for the RIFF handling and
// exposes the result through the planar audio.Source and audio.Sink
// interfaces.
//
// # Supported Formats
//
//   - PCM 16, 24 and 32-bit
//   - Any channel count
//   - Any sample rate
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := audio.NewPlanes(source.Channels(), 4096)
//	n, err := source.ReadFrames(buf)
//
// Samples come out as float64 in [-1.0, 1.0). Readers that cannot seek are
// buffered in memory first, since go-audio needs an io.ReadSeeker.
//
// # Writing WAV Files
//
//	file, _ := os.Create("output.wav")
//	sink, err := wav.Encoder{BitDepth: 24}.Encode(file, 48000, 2)
//	...
//	err = sink.WriteFrames(planes, n)
//	...
//	err = sink.Close() // writes the final header sizes
//
// Out of range samples are clipped. WriteFile does the whole dance for a
// buffer already held in memory.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrUnsupportedFormat: compressed or floating point WAV
//   - ErrUnsupportedBitDepth: anything but 16, 24 or 32-bit
//   - ErrUnsupportedWavChunks: no data chunk could be found
//
// All of them may come wrapped; test with errors.Is.
package wav
