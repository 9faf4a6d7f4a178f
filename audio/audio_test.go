// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	"github.com/ik5/audframe/internal/audiotest"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

// failingDecoder always returns an error
type failingDecoder struct{}

func (d *failingDecoder) Decode(r io.Reader) (Source, error) {
	return nil, errors.New("decode failed")
}

type mockEncoder struct{}

func (mockEncoder) Encode(w io.WriteSeeker, sampleRate, channels int) (Sink, error) {
	return audiotest.NewMemorySink(channels), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	if _, ok := registry.Get("nonexistent"); ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
	if _, ok := registry.GetEncoder("nonexistent"); ok {
		t.Error("Registry.GetEncoder() returned ok=true for non-existent format")
	}
}

func TestRegistry_MultipleFormats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &mockDecoder{name: "wav"}
	mp3Decoder := &mockDecoder{name: "mp3"}
	oggDecoder := &mockDecoder{name: "ogg"}

	registry.Register("wav", wavDecoder)
	registry.Register("mp3", mp3Decoder)
	registry.Register("ogg", oggDecoder)

	tests := []struct {
		format string
		want   Decoder
		wantOK bool
	}{
		{"wav", wavDecoder, true},
		{"WAV", wavDecoder, true},
		{"mp3", mp3Decoder, true},
		{"ogg", oggDecoder, true},
		{"flac", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, ok := registry.Get(tt.format)
			if ok != tt.wantOK {
				t.Errorf("Registry.Get(%q) ok = %v, want %v", tt.format, ok, tt.wantOK)
			}
			if tt.wantOK && got != tt.want {
				t.Errorf("Registry.Get(%q) returned wrong decoder", tt.format)
			}
		})
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder1 := &mockDecoder{name: "first"}
	decoder2 := &mockDecoder{name: "second"}

	registry.Register("wav", decoder1)
	registry.Register("wav", decoder2)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}

	if got != decoder2 {
		t.Error("Registry.Get() did not return the overwritten decoder")
	}
}

func TestRegistry_Encoders(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.RegisterEncoder("wav", mockEncoder{})

	enc, ok := registry.GetEncoder("Wav")
	if !ok {
		t.Fatal("Registry.GetEncoder() failed to retrieve registered encoder")
	}

	sink, err := enc.Encode(nil, 8000, 2)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := sink.WriteFrames([][]float64{{1}, {2}}, 1); err != nil {
		t.Errorf("WriteFrames() error = %v", err)
	}

	// decoders and encoders live in separate namespaces
	if _, ok := registry.Get("wav"); ok {
		t.Error("Registry.Get() found a decoder registered only as encoder")
	}
}

func TestRegistry_ForPath(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &mockDecoder{name: "wav"}
	registry.Register("wav", wavDecoder)
	registry.Register("ogg", &failingDecoder{})

	tests := []struct {
		path       string
		wantFormat string
		wantOK     bool
	}{
		{"/tmp/in.wav", "wav", true},
		{"song.WAV", "wav", true},
		{"dir.d/take.ogg", "ogg", true},
		{"noext", "", false},
		{"track.flac", "flac", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			d, format, ok := registry.ForPath(tt.path)
			if format != tt.wantFormat {
				t.Errorf("ForPath(%q) format = %q, want %q", tt.path, format, tt.wantFormat)
			}
			if ok != tt.wantOK {
				t.Errorf("ForPath(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if ok && d == nil {
				t.Errorf("ForPath(%q) returned nil decoder", tt.path)
			}
		})
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "test"}

	done := make(chan bool)
	for range 10 {
		go func() {
			registry.Register("format", decoder)
			registry.RegisterEncoder("format", mockEncoder{})
			done <- true
		}()
	}

	for range 10 {
		go func() {
			_, _ = registry.Get("format")
			_, _ = registry.GetEncoder("format")
			done <- true
		}()
	}

	for range 20 {
		<-done
	}

	got, ok := registry.Get("format")
	if !ok {
		t.Error("Registry.Get() failed after concurrent operations")
	}
	if got != decoder {
		t.Error("Registry returned wrong decoder after concurrent operations")
	}
}

func TestRegistry_FailingDecoder(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("bad", &failingDecoder{})

	d, _ := registry.Get("bad")
	if _, err := d.Decode(nil); err == nil {
		t.Error("Decode() error = nil, want error from failing decoder")
	}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	if registry == nil {
		t.Fatal("NewRegistry() returned nil")
	}
	if registry.decoders == nil || registry.encoders == nil {
		t.Error("NewRegistry() did not initialize codec maps")
	}
	if registry.mtx == nil {
		t.Error("NewRegistry() did not initialize mutex")
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{})

	b.ReportAllocs()

	for b.Loop() {
		_, _ = registry.Get("wav")
	}
}

func BenchmarkRegistry_ConcurrentRegisterGet(b *testing.B) {
	registry := NewRegistry()
	decoder := &mockDecoder{}

	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i%2 == 0 {
				registry.Register("wav", decoder)
			} else {
				_, _ = registry.Get("wav")
			}
			i++
		}
	})
}
