// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
//
// # Decoding MP3 Files
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := audio.NewPlanes(2, 4096)
//	n, err := source.ReadFrames(buf)
//
// # Output Format
//
//   - Sample format: float64 in range [-1.0, 1.0)
//   - Channels: always 2, go-mp3 duplicates mono streams
//   - Sample rate: as stored in the file
//
// Length is only known when the reader passed to Decode is an io.Seeker;
// otherwise it reports -1.
//
// # Limitations
//
// MP3 writing is not supported (decoding only).
package mp3
