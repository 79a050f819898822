// Package watch provides a file system watcher for automatic catalog
// regeneration. It monitors a style file and re-renders when it changes.
package watch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler is called with the watched file's path after a debounced change.
type Handler func(path string) error

// Watcher monitors a single file for changes and triggers a handler.
type Watcher struct {
	Path     string
	Debounce time.Duration
	Handler  Handler
	Logger   *log.Logger

	mu      sync.Mutex
	timer   *time.Timer
	watcher *fsnotify.Watcher
}

// New creates a watcher for path. Debounce defaults to 500ms.
func New(path string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create file watcher: %w", err)
	}

	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("could not resolve %s: %w", path, err)
	}

	return &Watcher{
		Path:     abs,
		Debounce: debounce,
		Logger:   log.New(os.Stderr, "[watch] ", log.LstdFlags),
		watcher:  fsw,
	}, nil
}

// Start begins watching. It blocks until the context is cancelled.
//
// The parent directory is watched rather than the file itself so that
// editors which write via rename (vim, most IDEs) keep triggering events.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.Path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("could not watch %s: %w", dir, err)
	}

	w.Logger.Printf("Watching %s", w.Path)

	for {
		select {
		case <-ctx.Done():
			w.Logger.Println("Stopping watcher")
			return w.watcher.Close()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.Logger.Printf("Watch error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.Path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	// Debounce: editors fire bursts of events per save.
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.Debounce, func() {
		if w.Handler == nil {
			return
		}
		if err := w.Handler(w.Path); err != nil {
			w.Logger.Printf("Handler error: %v", err)
			return
		}
		w.Logger.Printf("Regenerated after change to %s", filepath.Base(w.Path))
	})
}
