// SPDX-License-Identifier: EPL-2.0

package audframe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/audframe/audio"
)

const (
	// DefaultChunkSize is how many samples per channel are read at once.
	DefaultChunkSize = 4096
	// DefaultProgressEvery is how many chunks pass between progress reports.
	DefaultProgressEvery = 512

	// maxEmptyReads bounds consecutive (0, nil) reads before giving up.
	maxEmptyReads = 100
)

// Stats summarizes a Process run. Counts are samples per channel.
type Stats struct {
	Read    int64
	Written int64
	Chunks  int
}

// ProgressFunc receives the samples per channel read so far and the source
// length, which is -1 when the source cannot tell.
type ProgressFunc func(done, total int64)

type runConfig struct {
	chunk    int
	every    int
	progress ProgressFunc
	logger   *slog.Logger
}

type RunOption func(*runConfig)

// WithChunkSize sets how many samples per channel are read per iteration.
func WithChunkSize(n int) RunOption {
	return func(c *runConfig) { c.chunk = n }
}

// WithProgress reports progress every n chunks and once more at the end.
func WithProgress(every int, fn ProgressFunc) RunOption {
	return func(c *runConfig) {
		if every > 0 {
			c.every = every
		}
		c.progress = fn
	}
}

func WithLogger(l *slog.Logger) RunOption {
	return func(c *runConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Process streams src through p into dst until src is exhausted, then
// flushes whatever p still holds. Every sample read is written exactly once,
// in order. The context is checked between chunks.
//
// On error the pipeline is reset so it can be reused; dst is never closed.
func Process(ctx context.Context, src audio.Source, dst audio.Sink, p *audio.Pipeline, opts ...RunOption) (Stats, error) {
	cfg := runConfig{
		chunk:  DefaultChunkSize,
		every:  DefaultProgressEvery,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var stats Stats
	switch {
	case src == nil || dst == nil || p == nil:
		return stats, ErrNilStage
	case cfg.chunk < 1:
		return stats, fmt.Errorf("%w: %d", ErrInvalidChunkSize, cfg.chunk)
	case src.Channels() != p.Channels():
		return stats, fmt.Errorf("%w: source has %d channels, pipeline %d",
			audio.ErrChannelMismatch, src.Channels(), p.Channels())
	}

	total := src.Length()
	cfg.logger.Debug("processing started",
		"channels", src.Channels(),
		"sample_rate", src.SampleRate(),
		"length", total,
		"chunk", cfg.chunk,
		"delay", p.Delay(),
	)

	err := run(ctx, src, dst, p, &cfg, &stats)
	if err != nil {
		p.Reset()
		cfg.logger.Debug("processing aborted", "read", stats.Read, "written", stats.Written, "error", err)
		return stats, err
	}

	if cfg.progress != nil {
		cfg.progress(stats.Read, total)
	}
	cfg.logger.Debug("processing finished", "read", stats.Read, "written", stats.Written, "chunks", stats.Chunks)

	return stats, nil
}

func run(ctx context.Context, src audio.Source, dst audio.Sink, p *audio.Pipeline, cfg *runConfig, stats *Stats) error {
	buf := audio.NewPlanes(p.Channels(), cfg.chunk)
	total := src.Length()
	empty := 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, rerr := src.ReadFrames(buf)
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return fmt.Errorf("reading input: %w", rerr)
		}
		if n == 0 && rerr == nil {
			if empty++; empty >= maxEmptyReads {
				return fmt.Errorf("reading input: %w after %d empty reads", io.ErrNoProgress, empty)
			}
			continue
		}
		empty = 0

		if n > 0 {
			stats.Read += int64(n)

			out, err := p.ProcessInPlace(buf, n)
			if err != nil {
				return fmt.Errorf("processing: %w", err)
			}
			if err := write(dst, buf, out, stats); err != nil {
				return err
			}
		}

		stats.Chunks++
		if cfg.progress != nil && stats.Chunks%cfg.every == 0 {
			cfg.progress(stats.Read, total)
		}

		if rerr != nil {
			break
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		out, err := p.Flush(buf, cfg.chunk)
		if err != nil {
			return fmt.Errorf("flushing: %w", err)
		}
		if out == 0 {
			return nil
		}
		if err := write(dst, buf, out, stats); err != nil {
			return err
		}
	}
}

func write(dst audio.Sink, buf [][]float64, n int, stats *Stats) error {
	if n == 0 {
		return nil
	}
	if err := dst.WriteFrames(buf, n); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	stats.Written += int64(n)
	return nil
}
