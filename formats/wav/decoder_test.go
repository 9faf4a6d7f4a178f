// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audframe/audio"
)

// createWAVFile builds a canonical 44-byte-header WAV holding 16-bit samples.
func createWAVFile(sampleRate, channels, formatTag int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(16)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := numChannels * (bits / 8)
	dataSize := uint32(len(samples) * 2)
	riffSize := 36 + dataSize

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(formatTag))
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

func TestDecoder_ValidWAVFile(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, 200, -100, -200, 0}
	src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(8000, 1, 1, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}
	defer src.Close()

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}
	if src.Length() != int64(len(samples)) {
		t.Errorf("Length() = %d, want %d", src.Length(), len(samples))
	}
}

func TestDecoder_StereoWAVFile(t *testing.T) {
	t.Parallel()

	samples := []int16{100, 200, 300, 400, 500, 600}
	src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(44100, 2, 1, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.Length() != 3 {
		t.Errorf("Length() = %d, want 3", src.Length())
	}

	dst := audio.NewPlanes(2, 8)
	n, err := src.ReadFrames(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadFrames() error = %v", err)
	}
	if n != 3 {
		t.Fatalf("ReadFrames() n = %d, want 3", n)
	}
	for i, want := range []int16{100, 300, 500} {
		if got := dst[0][i] * 32768; got != float64(want) {
			t.Errorf("left[%d] = %v, want %d", i, got, want)
		}
	}
	for i, want := range []int16{200, 400, 600} {
		if got := dst[1][i] * 32768; got != float64(want) {
			t.Errorf("right[%d] = %v, want %d", i, got, want)
		}
	}
}

func TestDecoder_NotWAVFile(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("NOT A WAV FILE DATA AT ALL, SORRY")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecoder_TruncatedHeader(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("RIFF\x00"))); err == nil {
		t.Error("Decode() error = nil, want error for truncated header")
	}
}

func TestDecoder_NonPCMFormat(t *testing.T) {
	t.Parallel()

	// IEEE float tag with 16-bit payload is not something we read
	data := createWAVFile(8000, 1, 3, []int16{1, 2, 3, 4})

	_, err := Decoder{}.Decode(bytes.NewReader(data))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Decode() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	data := createWAVFile(16000, 1, 1, []int16{1, 2, 3})

	// bytes.Buffer has no Seek, so the decoder has to buffer it
	src, err := Decoder{}.Decode(bytes.NewBuffer(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", src.SampleRate())
	}
}

func TestSource_ReadFrames(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, 32767, -16384, -32768}
	src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(8000, 1, 1, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	dst := audio.NewPlanes(1, 8)
	n, err := src.ReadFrames(dst)
	if err != io.EOF {
		t.Errorf("ReadFrames() error = %v, want io.EOF with the short read", err)
	}
	if n != 5 {
		t.Fatalf("ReadFrames() n = %d, want 5", n)
	}

	expected := []float64{0.0, 0.5, 32767.0 / 32768.0, -0.5, -1.0}
	for i, want := range expected {
		if math.Abs(dst[0][i]-want) > 1e-12 {
			t.Errorf("sample[%d] = %v, want %v", i, dst[0][i], want)
		}
	}

	n, err = src.ReadFrames(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadFrames() after end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_ReadFrames_PartialReads(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 20)
	for i := range samples {
		samples[i] = int16(i * 100)
	}
	src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(8000, 2, 1, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	dst := audio.NewPlanes(2, 3)
	total := 0
	for {
		n, err := src.ReadFrames(dst)
		for i := range n {
			want := float64((total+i)*2*100) / 32768
			if dst[0][i] != want {
				t.Fatalf("left[%d] = %v, want %v", total+i, dst[0][i], want)
			}
		}
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadFrames() error = %v", err)
		}
	}

	if total != 10 {
		t.Errorf("read %d frames in total, want 10", total)
	}
}

func TestSource_ReadFrames_ChannelMismatch(t *testing.T) {
	t.Parallel()

	src, _ := Decoder{}.Decode(bytes.NewReader(createWAVFile(8000, 2, 1, []int16{1, 2})))

	if _, err := src.ReadFrames(audio.NewPlanes(1, 4)); !errors.Is(err, audio.ErrChannelMismatch) {
		t.Errorf("ReadFrames(mono) error = %v, want audio.ErrChannelMismatch", err)
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	src, _ := Decoder{}.Decode(bytes.NewReader(createWAVFile(8000, 1, 1, []int16{1})))
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestDecoder_VariousSampleRates(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{8000, 11025, 16000, 22050, 44100, 48000, 96000} {
		src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(rate, 1, 1, []int16{0, 1, 2, 3})))
		if err != nil {
			t.Errorf("Decode(%d Hz) error = %v", rate, err)
			continue
		}
		if src.SampleRate() != rate {
			t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), rate)
		}
	}
}

func BenchmarkDecoder_Decode(b *testing.B) {
	data := createWAVFile(16000, 1, 1, make([]int16, 16000))

	b.ReportAllocs()

	for b.Loop() {
		_, _ = Decoder{}.Decode(bytes.NewReader(data))
	}
}

func BenchmarkSource_ReadFrames(b *testing.B) {
	data := createWAVFile(16000, 2, 1, make([]int16, 32000))
	dst := audio.NewPlanes(2, 4096)

	b.ReportAllocs()

	for b.Loop() {
		src, _ := Decoder{}.Decode(bytes.NewReader(data))
		for {
			if _, err := src.ReadFrames(dst); err != nil {
				break
			}
		}
	}
}
