// Package watch re-triggers validation runs when any of the input or
// reference files change on disk. Each trigger causes the caller to
// re-read every source from scratch; nothing is reprocessed
// incrementally.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is how long to wait for more changes before triggering.
const defaultDebounce = 500 * time.Millisecond

// Watcher watches a fixed set of files and emits a trigger when one of
// them changes. Events are debounced so a burst of writes produces a
// single trigger.
type Watcher struct {
	files    map[string]bool
	debounce time.Duration
	watcher  *fsnotify.Watcher
	logger   *slog.Logger

	pendingMu sync.Mutex
	pending   bool

	triggers chan struct{}
}

// New creates a watcher for the given files. The parent directory of
// each file is watched, since editors often replace files by rename.
func New(files []string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	watched := make(map[string]bool, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			continue
		}
		watched[abs] = true
	}

	return &Watcher{
		files:    watched,
		debounce: debounce,
		watcher:  fsw,
		logger:   logger,
		triggers: make(chan struct{}, 1),
	}, nil
}

// Triggers returns the channel that receives one value per debounced
// change burst.
func (w *Watcher) Triggers() <-chan struct{} {
	return w.triggers
}

// Start begins watching. The triggers channel is closed when ctx is
// cancelled or the watcher is stopped.
func (w *Watcher) Start(ctx context.Context) error {
	dirs := make(map[string]bool)
	for f := range w.files {
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			w.logger.Warn("Failed to watch directory", "path", dir, "error", err)
		} else {
			w.logger.Debug("Watching directory", "path", dir)
		}
	}

	go w.processEvents(ctx)

	w.logger.Info("Watching for changes",
		"files", len(w.files),
		"debounce", w.debounce)
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// processEvents handles fsnotify events with debouncing.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.triggers)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending()
		}
	}
}

// handleFSEvent marks a trigger pending when a watched file changed.
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	abs, err := filepath.Abs(event.Name)
	if err != nil || !w.files[abs] {
		return
	}

	w.pendingMu.Lock()
	w.pending = true
	w.pendingMu.Unlock()

	w.logger.Debug("Change detected", "path", abs, "op", event.Op.String())
}

// flushPending emits a trigger if changes accumulated since the last tick.
func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	pending := w.pending
	w.pending = false
	w.pendingMu.Unlock()

	if !pending {
		return
	}

	select {
	case w.triggers <- struct{}{}:
	default:
		// A trigger is already queued; the next run re-reads everything
		// anyway, so coalescing is safe.
	}
}
