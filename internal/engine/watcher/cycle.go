package watcher

import (
	"context"
	"errors"
	"path/filepath"

	"go.trai.ch/dirwatcher/internal/core/domain"
	"go.trai.ch/dirwatcher/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cycle runs one list, reconcile and scan pass, mutating set in place.
//
// A directory that cannot be listed is logged and leaves set untouched.
// A file that cannot be read is logged and keeps its watermark. Neither is
// returned. The only error Cycle returns wraps domain.ErrFatalCycle and
// signals a failure the caller should not retry, such as a panic.
func (w *Watcher) Cycle(ctx context.Context, set *domain.TrackedSet, cfg domain.WatchConfig) (err error) {
	defer zerr.Defer(func(panicErr error) {
		err = errors.Join(domain.ErrFatalCycle, panicErr)
	})

	if set == nil {
		return errors.Join(domain.ErrFatalCycle, zerr.New("tracked set is nil"))
	}

	listing, listErr := w.lister.List(ctx, cfg.WatchDirectory)
	if listErr != nil {
		w.logger.Error(listErr)
		return nil
	}

	events := Reconcile(set, listing, cfg.FileExtension, w.reporter)

	changed := len(events) > 0
	for tf := range set.Walk() {
		if !cfg.FileExtension.Matches(tf.Name) {
			continue
		}
		if w.scanFile(ctx, set, cfg, tf) {
			changed = true
		}
	}

	if v, ok := ports.VertexFromContext(ctx); ok && !changed {
		v.Cached()
	}

	return nil
}

// scanFile scans one tracked file and records the result. It reports whether
// anything about the file differs from the previous scan.
func (w *Watcher) scanFile(ctx context.Context, set *domain.TrackedSet, cfg domain.WatchConfig, prev domain.TrackedFile) bool {
	name := prev.Name
	path := filepath.Join(cfg.WatchDirectory, name)

	res, err := w.scanner.Scan(ctx, path, prev.Watermark, cfg.SearchText, func(line int) {
		w.reporter.Match(domain.MatchEvent{File: name, Line: line})
	})
	if err != nil {
		w.logger.Error(zerr.With(err, "file", name))
		return true
	}

	unchanged := res.Watermark == prev.Watermark && res.Digest == prev.Digest
	if unchanged {
		w.logger.Debug("file unchanged since last scan", "file", name)
	}

	if err := set.Update(name, res.Watermark, res.Digest); err != nil {
		w.logger.Error(err)
	}

	return !unchanged || res.Matches > 0
}
