// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ik5/audframe/audio"
	"github.com/ik5/audframe/formats/mp3"
	"github.com/ik5/audframe/formats/wav"
)

// ExampleDecoder_Decode_convertToWav converts an MP3 file to 16-bit WAV.
func ExampleDecoder_Decode_convertToWav() {
	in, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	src, err := mp3.Decoder{}.Decode(in)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	out, err := os.Create("output.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	sink, err := wav.Encoder{}.Encode(out, src.SampleRate(), src.Channels())
	if err != nil {
		log.Fatal(err)
	}

	buf := audio.NewPlanes(src.Channels(), 4096)
	for {
		n, err := src.ReadFrames(buf)
		if n > 0 {
			if werr := sink.WriteFrames(buf, n); werr != nil {
				log.Fatal(werr)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	if err := sink.Close(); err != nil {
		log.Fatal(err)
	}
}

// ExampleDecoder_Decode_errorHandling shows what a non-MP3 stream produces.
func ExampleDecoder_Decode_errorHandling() {
	_, err := mp3.Decoder{}.Decode(bytes.NewReader([]byte("not an mp3")))
	fmt.Println(err != nil)
	// Output:
	// true
}
