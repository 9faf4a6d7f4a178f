// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding and
// encoding.
//
// This package uses github.com/go-audio/aiff. AIFF is Apple's standard audio
// file format, commonly used on macOS.
//
// # Supported Formats
//
//   - PCM 16, 24 and 32-bit (big-endian, as AIFF stores it)
//   - Any channel count
//   - Any sample rate
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("audio.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := audio.NewPlanes(source.Channels(), 4096)
//	n, err := source.ReadFrames(buf)
//
// Length comes straight from the COMM chunk.
//
// # Encoding
//
//	sink, err := aiff.Encoder{BitDepth: 24}.Encode(file, 48000, 2)
//
// Close the sink to write the final chunk sizes.
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: sample size is not 16, 24 or 32 bits
//   - ErrUnsupportedAiffLayout: the COMM chunk is unusable
package aiff
