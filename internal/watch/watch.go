// Package watch re-runs a search whenever watched files change.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes a directory tree and invokes a callback after changes,
// debounced so that a burst of filesystem events triggers a single rerun.
type Watcher struct {
	root     string
	debounce time.Duration
	logger   *slog.Logger
}

// New creates a Watcher rooted at root.
func New(root string, debounce time.Duration, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	return &Watcher{root: root, debounce: debounce, logger: logger}
}

// Run calls fn once immediately, then again after each debounced batch of
// changes, blocking until ctx is cancelled. Cancellation is a clean shutdown,
// not an error. Errors from fn are logged rather than fatal: a failed rerun
// should not tear the watch down.
func (w *Watcher) Run(ctx context.Context, fn func(context.Context) error) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := w.addTree(fsw); err != nil {
		return err
	}

	if err := fn(ctx); err != nil {
		w.logger.Error("initial run failed", "error", err)
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			// Watch new directories as they appear.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := fsw.Add(event.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
				}
			}

			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)

		case <-timer.C:
			if err := fn(ctx); err != nil {
				w.logger.Error("rerun failed", "error", err)
			}
		}
	}
}

// addTree registers every directory under the root, skipping hidden
// directories and node_modules.
func (w *Watcher) addTree(fsw *fsnotify.Watcher) error {
	return filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}

		name := d.Name()
		if path != w.root && (strings.HasPrefix(name, ".") || name == "node_modules") {
			return filepath.SkipDir
		}

		return fsw.Add(path)
	})
}
