// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/audframe/utils"
)

// NewPlanes allocates channels slices of length samples sharing one backing array.
func NewPlanes(channels, length int) [][]float64 {
	data := make([]float64, channels*length)
	planes := make([][]float64, channels)
	for c := range planes {
		lo := c * length
		planes[c] = data[lo : lo+length : lo+length]
	}
	return planes
}

// Deinterleave splits interleaved float32 samples into dst, one slice per
// channel, and returns the number of samples written per channel.
func Deinterleave(dst [][]float64, src []float32) (int, error) {
	channels := len(dst)
	if channels == 0 || len(src)%channels != 0 {
		return 0, fmt.Errorf("%w: %d values, %d channels", ErrInvalidInterleavedSize, len(src), channels)
	}

	frames := len(src) / channels
	if err := checkPlanes(dst, frames); err != nil {
		return 0, err
	}

	// stereo is the common case
	if channels == 2 {
		left, right := dst[0][:frames], dst[1][:frames]
		for i := range frames {
			left[i] = float64(src[2*i])
			right[i] = float64(src[2*i+1])
		}
		return frames, nil
	}

	for i := range frames {
		base := i * channels
		for c := range channels {
			dst[c][i] = float64(src[base+c])
		}
	}
	return frames, nil
}

// DeinterleaveInt splits interleaved integer PCM of the given bit depth into
// dst, scaling to [-1, 1).
func DeinterleaveInt(dst [][]float64, src []int, bitDepth int) (int, error) {
	channels := len(dst)
	if channels == 0 || len(src)%channels != 0 {
		return 0, fmt.Errorf("%w: %d values, %d channels", ErrInvalidInterleavedSize, len(src), channels)
	}

	frames := len(src) / channels
	if err := checkPlanes(dst, frames); err != nil {
		return 0, err
	}

	for i := range frames {
		base := i * channels
		for c := range channels {
			dst[c][i] = utils.IntToFloat(src[base+c], bitDepth)
		}
	}
	return frames, nil
}

// InterleaveInt packs src[c][:n] into dst as interleaved integer PCM of the
// given bit depth, clamping out of range samples. dst must hold n*len(src) values.
func InterleaveInt(dst []int, src [][]float64, n, bitDepth int) error {
	channels := len(src)
	if err := checkPlanes(src, n); err != nil {
		return err
	}
	if len(dst) < n*channels {
		return fmt.Errorf("%w: dst holds %d, need %d", ErrShortBuffer, len(dst), n*channels)
	}

	for i := range n {
		base := i * channels
		for c := range channels {
			dst[base+c] = utils.FloatToInt(src[c][i], bitDepth)
		}
	}
	return nil
}

func checkPlanes(planes [][]float64, n int) error {
	for c, p := range planes {
		if len(p) < n {
			return fmt.Errorf("%w: channel %d holds %d, need %d", ErrShortBuffer, c, len(p), n)
		}
	}
	return nil
}
