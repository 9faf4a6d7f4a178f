// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"strings"
	"sync"
)

// Source is a decoded, planar float64 audio stream.
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// Length is the total number of samples per channel, or -1 when unknown.
	Length() int64
	// ReadFrames fills dst[c][:n] for every channel, n <= len(dst[0]).
	// len(dst) must equal Channels(). When n == 0 with err == io.EOF, the stream is finished.
	ReadFrames(dst [][]float64) (n int, err error)

	// Close releases any resources.
	Close() error
}

// Sink consumes planar float64 audio.
type Sink interface {
	// WriteFrames writes src[c][:n] for every channel.
	WriteFrames(src [][]float64, n int) error

	// Close flushes and finalises the output. It does not close the underlying writer.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Encoder constructs a Sink writing to w.
type Encoder interface {
	Encode(w io.WriteSeeker, sampleRate, channels int) (Sink, error)
}

// Registry for decoders and encoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	decoders map[string]Decoder
	encoders map[string]Encoder

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[string]Decoder),
		encoders: make(map[string]Encoder),
		mtx:      &sync.RWMutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.decoders[normalizeFormat(format)] = d
}

func (r *Registry) RegisterEncoder(format string, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.encoders[normalizeFormat(format)] = e
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.decoders[normalizeFormat(format)]
	return d, ok
}

func (r *Registry) GetEncoder(format string) (Encoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	e, ok := r.encoders[normalizeFormat(format)]
	return e, ok
}

// ForPath picks the decoder registered for the extension of path.
// It returns the format key it looked up as well.
func (r *Registry) ForPath(path string) (Decoder, string, bool) {
	format := FormatOf(path)
	d, ok := r.Get(format)
	return d, format, ok
}

// FormatOf returns the lower-cased file extension of path without the dot.
func FormatOf(path string) string {
	return normalizeFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

func normalizeFormat(format string) string {
	return strings.ToLower(format)
}
