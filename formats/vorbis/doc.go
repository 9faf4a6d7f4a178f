// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, a pure Go decoder.
//
// # Decoding Ogg Vorbis Files
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := audio.NewPlanes(source.Channels(), 4096)
//	n, err := source.ReadFrames(buf)
//
// # Output Format
//
//   - Sample format: float64, as decoded (nominally [-1.0, 1.0])
//   - Channels: as stored, in Vorbis channel order
//   - Sample rate: as stored
//
// Length is known only for seekable input.
//
// # Limitations
//
// Vorbis encoding is not supported (decoding only).
package vorbis
