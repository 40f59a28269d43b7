// Package finder wires a search intent through the backend and the output
// pipeline.
package finder

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/giftig/quickfind/internal/backend"
	"github.com/giftig/quickfind/internal/hits"
	"github.com/giftig/quickfind/internal/metrics"
	"github.com/giftig/quickfind/internal/output"
	"github.com/giftig/quickfind/internal/query"
)

// Finder runs search intents end to end. It holds no per-search state; one
// Finder can serve any number of independent searches.
type Finder struct {
	backend  backend.Runner
	excludes []string
	metrics  *metrics.Logger
	logger   *slog.Logger
}

// New creates a Finder. excludes are glob patterns matched against hit
// filenames; m may be nil to disable metrics.
func New(runner backend.Runner, excludes []string, m *metrics.Logger, logger *slog.Logger) *Finder {
	if logger == nil {
		logger = slog.Default()
	}

	return &Finder{
		backend:  runner,
		excludes: excludes,
		metrics:  m,
		logger:   logger,
	}
}

// Run executes the intent and returns the final deduplicated, sorted lines.
func (f *Finder) Run(ctx context.Context, intent query.Intent) ([]string, error) {
	start := time.Now()

	found, err := f.search(ctx, intent)
	if err != nil {
		if f.metrics != nil {
			f.metrics.LogError("search", err.Error())
		}
		return nil, err
	}

	formatted := make([]string, 0, len(found))
	for _, h := range found {
		if f.excluded(h.Filename) {
			continue
		}

		line, err := output.FormatHit(intent.Format, h)
		if err != nil {
			return nil, err
		}
		formatted = append(formatted, line)
	}

	results := output.Finalize(formatted, intent.SingleResult)

	f.logger.Debug("search complete",
		"term", intent.Term,
		"mode", string(intent.Mode),
		"hits", len(found),
		"results", len(results),
		"elapsed", time.Since(start),
	)
	if f.metrics != nil {
		f.metrics.LogSearch(intent.Term, string(intent.Mode), len(results), time.Since(start).Milliseconds())
	}

	return results, nil
}

func (f *Finder) search(ctx context.Context, intent query.Intent) ([]hits.Hit, error) {
	if intent.Mode == query.ModeFile {
		lines, err := f.backend.FindFiles(ctx, intent.Term)
		if err != nil {
			return nil, err
		}

		found := make([]hits.Hit, 0, len(lines))
		for _, l := range lines {
			found = append(found, hits.ParseFileLine(intent.Term, l))
		}
		return found, nil
	}

	regex := query.Compile(intent.Mode, intent.Term)
	f.logger.Debug("compiled search", "mode", string(intent.Mode), "regex", regex)

	lines, err := f.backend.FindContent(ctx, regex)
	if err != nil {
		return nil, err
	}

	found := make([]hits.Hit, 0, len(lines))
	for _, l := range lines {
		h, ok := hits.ParseContentLine(intent.Term, l)
		if !ok {
			f.logger.Warn("skipping malformed backend output line", "line", l)
			continue
		}
		found = append(found, h)
	}
	return found, nil
}

func (f *Finder) excluded(filename string) bool {
	rel := filepath.ToSlash(filename)
	for _, pattern := range f.excludes {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}
