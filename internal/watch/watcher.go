package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/lexhl/internal/document"
	"github.com/dshills/lexhl/internal/logging"
)

// Config holds watcher configuration options.
type Config struct {
	Path     string
	Debounce time.Duration
}

// DefaultConfig returns the defaults for watching path.
func DefaultConfig(path string) Config {
	return Config{
		Path:     path,
		Debounce: 50 * time.Millisecond,
	}
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the watcher's logger.
func WithLogger(l *logging.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// OnUpdate registers a callback run after each applied change. It runs on
// the watcher's goroutine, which owns the document.
func OnUpdate(fn func(Update)) Option {
	return func(w *Watcher) {
		w.onUpdate = fn
	}
}

// Watcher re-reads a file when it changes and applies the difference to a
// Document. The document must not be touched by other goroutines while Run
// is active.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	debounce  time.Duration
	doc       *document.Document
	onUpdate  func(Update)
	logger    *logging.Logger
}

// New creates a watcher for cfg.Path feeding doc.
func New(cfg Config, doc *document.Document, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	w := &Watcher{
		fsWatcher: fsw,
		path:      filepath.Clean(cfg.Path),
		debounce:  cfg.Debounce,
		doc:       doc,
		logger:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.WithComponent("watch").WithField("path", w.path)
	return w, nil
}

// Reload reads the file and applies it to the document.
func (w *Watcher) Reload() (Update, error) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return Update{}, fmt.Errorf("reading %s: %w", w.path, err)
	}

	upd, err := ApplyText(w.doc, string(data))
	if err != nil {
		return upd, err
	}
	w.logger.Debug("applied change: +%d -%d lines, %d rehighlighted", upd.Inserted, upd.Deleted, upd.Rehighlighted)
	return upd, nil
}

// Run watches the file's directory until ctx is cancelled. Editors often
// replace files rather than write them in place, so the directory is
// watched and events are filtered by name.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsWatcher.Close()

	dir := filepath.Dir(w.path)
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", dir, err)
	}

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			if !w.isRelevantEvent(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			upd, err := w.Reload()
			if err != nil {
				w.logger.Warn("reload failed: %v", err)
				continue
			}
			if w.onUpdate != nil && !upd.Empty() {
				w.onUpdate(upd)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error: %v", err)
		}
	}
}

// isRelevantEvent checks if the event should trigger a reload.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == w.path
}
