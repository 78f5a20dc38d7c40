// Package filewatcher reports writes to individual files made outside the bridge.
package filewatcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/uber-go/tally"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _debounceTimeout = 200 * time.Millisecond

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// ChangeHandler is invoked with the path of a watched file after it was written.
type ChangeHandler func(path string)

// Watcher tracks a set of files. Each file may be added several times and is
// watched until it was removed as often as it was added.
type Watcher interface {
	Add(path string) error
	Remove(path string) error
	OnChange(handler ChangeHandler)
}

// Params are inbound parameters to initialize a new Watcher.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
}

type watcher struct {
	logger   *zap.SugaredLogger
	stats    tally.Scope
	debounce time.Duration

	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	files   map[string]int
	dirs    map[string]int
	timers  map[string]*time.Timer
	handler ChangeHandler
	wg      sync.WaitGroup
}

// New creates a Watcher which is started and stopped with the application.
func New(p Params) Watcher {
	w := newWatcher(p.Logger, p.Stats)
	p.Lifecycle.Append(fx.Hook{
		OnStart: w.start,
		OnStop:  w.stop,
	})
	return w
}

func newWatcher(logger *zap.SugaredLogger, stats tally.Scope) *watcher {
	return &watcher{
		logger:   logger.With("component", "filewatcher"),
		stats:    stats.SubScope("filewatcher"),
		debounce: _debounceTimeout,
		files:    make(map[string]int),
		dirs:     make(map[string]int),
		timers:   make(map[string]*time.Timer),
	}
}

func (w *watcher) start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsw != nil {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file system watcher: %w", err)
	}
	w.fsw = fsw

	w.wg.Add(1)
	go w.handleChanges(fsw)
	return nil
}

func (w *watcher) stop(ctx context.Context) error {
	w.mu.Lock()
	fsw := w.fsw
	w.fsw = nil
	for name, timer := range w.timers {
		timer.Stop()
		delete(w.timers, name)
	}
	w.mu.Unlock()

	if fsw == nil {
		return nil
	}
	err := fsw.Close()
	w.wg.Wait()
	return err
}

// OnChange sets the handler for change events, replacing any previous one.
func (w *watcher) OnChange(handler ChangeHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handler = handler
}

// Add starts watching path. The parent directory is watched so that atomic
// replacements by other editors are still observed.
func (w *watcher) Add(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsw == nil {
		return fmt.Errorf("watcher not started")
	}

	if w.files[path] > 0 {
		w.files[path]++
		return nil
	}

	dir := filepath.Dir(path)
	if w.dirs[dir] == 0 {
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("watching %q: %w", dir, err)
		}
	}
	w.dirs[dir]++
	w.files[path] = 1
	return nil
}

// Remove releases one reference to path.
func (w *watcher) Remove(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.files[path] == 0 {
		return nil
	}
	w.files[path]--
	if w.files[path] > 0 {
		return nil
	}
	delete(w.files, path)
	if timer, ok := w.timers[path]; ok {
		timer.Stop()
		delete(w.timers, path)
	}

	dir := filepath.Dir(path)
	w.dirs[dir]--
	if w.dirs[dir] > 0 {
		return nil
	}
	delete(w.dirs, dir)
	if w.fsw == nil {
		return nil
	}
	if err := w.fsw.Remove(dir); err != nil {
		w.logger.Debugf("removing watch on %q: %v", dir, err)
	}
	return nil
}

func (w *watcher) handleChanges(fsw *fsnotify.Watcher) {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			w.handleDebounce(event.Name)
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warnf("file watcher error: %v", err)
		}
	}
}

// handleDebounce collapses bursts of writes to the same file into one callback.
func (w *watcher) handleDebounce(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.files[path] == 0 {
		return
	}

	if timer, exists := w.timers[path]; exists {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		handler := w.handler
		w.mu.Unlock()

		w.stats.Counter("changes").Inc(1)
		if handler != nil {
			handler(path)
		}
	})
}
