// Package watcher reloads scene models when their backing file changes on
// disk. Events are debounced so editors that write in several bursts only
// trigger one reload.
package watcher

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ModelWatcher watches model files and invokes a callback after changes
// settle.
type ModelWatcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration

	mu       sync.Mutex
	onChange map[string]func(string)
	timers   map[string]*time.Timer
}

// New creates a watcher. Changes are reported after the debounce interval
// passes without further writes to the same file.
func New(debounce time.Duration) (*ModelWatcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &ModelWatcher{
		fs:       fs,
		debounce: debounce,
		onChange: make(map[string]func(string)),
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Watch registers a model file. onChange receives the absolute path once the
// file has settled after a change.
func (w *ModelWatcher) Watch(path string, onChange func(string)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	if err := w.fs.Add(absPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	w.mu.Lock()
	w.onChange[absPath] = onChange
	w.mu.Unlock()
	return nil
}

// Start begins dispatching change events. It returns immediately; dispatch
// runs on a background goroutine until Close is called.
func (w *ModelWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.fs.Events:
				if !ok {
					return
				}
				// Write covers in-place saves; Create covers editors that
				// replace the file atomically.
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					w.fileChanged(event.Name)
				}

			case err, ok := <-w.fs.Errors:
				if !ok {
					return
				}
				slog.Warn("model watcher error", "error", err)
			}
		}
	}()
}

func (w *ModelWatcher) fileChanged(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	onChange, exists := w.onChange[path]
	if !exists {
		return
	}

	if timer, exists := w.timers[path]; exists {
		timer.Stop()
	}

	w.timers[path] = time.AfterFunc(w.debounce, func() {
		onChange(path)
	})
}

// Close stops watching and releases the underlying notifier.
func (w *ModelWatcher) Close() error {
	w.mu.Lock()
	for _, timer := range w.timers {
		timer.Stop()
	}
	w.timers = make(map[string]*time.Timer)
	w.mu.Unlock()

	return w.fs.Close()
}
