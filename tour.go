package langtour

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Tour runs registered demos against a writer.
type Tour struct {
	registry *Registry
	logger   *slog.Logger
}

// Report summarizes one demo execution.
type Report struct {
	RunID    string
	Demo     string
	Lines    int
	Bytes    int64
	Duration time.Duration
}

// NewTour creates a tour over registry. A nil logger discards log output.
func NewTour(registry *Registry, logger *slog.Logger) *Tour {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Tour{
		registry: registry,
		logger:   logger,
	}
}

// Run executes the named demos in order.
//
// Unknown names are rejected before anything is written. The first write
// error stops the run and is returned wrapped with the demo name.
func (t *Tour) Run(ctx context.Context, w io.Writer, names ...string) error {
	_, err := t.RunWithReports(ctx, w, names...)
	return err
}

// RunWithReports is Run that also returns a Report per completed demo.
func (t *Tour) RunWithReports(ctx context.Context, w io.Writer, names ...string) ([]Report, error) {
	demos := make([]Demo, 0, len(names))
	for _, name := range names {
		d, err := t.registry.Lookup(name)
		if err != nil {
			return nil, err
		}
		demos = append(demos, d)
	}

	runID := uuid.NewString()
	log := t.logger.With("run_id", runID)
	log.Debug("tour starting", "demos", names)

	reports := make([]Report, 0, len(demos))
	sw := &stickyWriter{w: w}
	for _, d := range demos {
		if err := ctx.Err(); err != nil {
			return reports, fmt.Errorf("tour cancelled before %s: %w", d.Name, err)
		}

		log.Debug("demo starting", "demo", d.Name)
		start := time.Now()
		before := sw.stats()
		d.Run(sw)
		if sw.err != nil {
			log.Error("demo output failed", "demo", d.Name, "err", sw.err)
			return reports, fmt.Errorf("demo %s: %w", d.Name, sw.err)
		}
		after := sw.stats()

		r := Report{
			RunID:    runID,
			Demo:     d.Name,
			Lines:    after.lines - before.lines,
			Bytes:    after.bytes - before.bytes,
			Duration: time.Since(start),
		}
		reports = append(reports, r)
		log.Debug("demo finished",
			"demo", r.Demo,
			"lines", r.Lines,
			"bytes", r.Bytes,
			"duration", r.Duration)
	}

	log.Info("tour finished", "demos", len(reports))
	return reports, nil
}

// stickyWriter forwards to w until the first error, then drops everything.
// Demo functions ignore write errors; the tour checks err after each demo.
type stickyWriter struct {
	w     io.Writer
	err   error
	lines int
	bytes int64
}

type writeStats struct {
	lines int
	bytes int64
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	s.bytes += int64(n)
	s.lines += bytes.Count(p[:n], []byte{'\n'})
	if err != nil {
		s.err = err
	}
	return n, err
}

func (s *stickyWriter) stats() writeStats {
	return writeStats{lines: s.lines, bytes: s.bytes}
}
