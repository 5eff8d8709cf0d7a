package fs

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/stratum/pkg/core"
)

// Watch emits events for vault changes matching the glob pattern. The
// watcher runs until ctx is cancelled; the returned channel is closed on
// shutdown.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	events := make(chan core.Event, 100)
	w := newWatchWorker(s, pattern, events)

	if err := w.Start(ctx); err != nil {
		return nil, err
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		if err := w.Stop(context.Background()); err != nil {
			s.config.Logger.Debug("watcher stop", "error", err)
		}
		close(events)
		return nil
	})

	return events, nil
}

type watchWorker struct {
	*worker.BaseWorker
	store     *Store
	pattern   string
	events    chan<- core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

func newWatchWorker(store *Store, pattern string, events chan<- core.Event) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("fs-watcher"),
		store:      store,
		pattern:    pattern,
		events:     events,
	}
}

func (w *watchWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := w.recursiveAdd(watcher, w.store.Path); err != nil {
		_ = watcher.Close()
		return err
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(50 * time.Millisecond)
	w.store.setWatcherActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watchWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}
	return w.BaseWorker.Stop(ctx)
}

func (w *watchWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// recursiveAdd registers dir and every subdirectory with the watcher.
func (w *watchWorker) recursiveAdd(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

// shouldIgnore filters temp files from atomic writes and paths outside the
// requested pattern.
func (w *watchWorker) shouldIgnore(event fsnotify.Event) bool {
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, TempFilePrefix) {
		return true
	}

	if w.pattern == "" {
		return false
	}
	rel, err := filepath.Rel(w.store.Path, event.Name)
	if err != nil {
		return true
	}
	match, err := doublestar.Match(w.pattern, filepath.ToSlash(rel))
	return err != nil || !match
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	}
	return ""
}

// resolveID derives the event's entity id. Manifest paths yield the entity
// uuid; snapshot paths yield the vault-relative path of the file.
func (w *watchWorker) resolveID(name string) string {
	rel, err := filepath.Rel(w.store.Path, name)
	if err != nil {
		return name
	}
	rel = filepath.ToSlash(rel)

	if strings.HasPrefix(rel, w.store.config.SystemDir+"/") {
		return strings.TrimSuffix(filepath.Base(rel), ".yaml")
	}
	return rel
}

func (w *watchWorker) processFilesystemEvent(ctx context.Context, event fsnotify.Event) bool {
	w.store.config.Logger.Debug("event received", "name", event.Name)

	if w.shouldIgnore(event) {
		return false
	}

	eType := mapEventType(event)
	if eType == "" {
		return false
	}

	// New directories must be tracked as well.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			_ = w.recursiveAdd(w.watcher, event.Name)
		}
	}

	w.sendEvent(ctx, core.Event{
		Type: eType,
		ID:   w.resolveID(event.Name),
		Time: time.Now(),
	})
	return true
}

// sendEvent enqueues an event via the debouncer, protecting against channel
// closure during shutdown.
func (w *watchWorker) sendEvent(ctx context.Context, event core.Event) {
	w.debouncer.add(event, func(e core.Event) {
		defer func() {
			// Recover if the channel was closed while stopping.
			_ = recover()
		}()
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}

func (w *watchWorker) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := fmt.Errorf("watcher panic: %v", recovered)
			if w.store.config.Logger.Enabled(ctx, slog.LevelDebug) {
				w.store.config.Logger.Error("watcher panic", "error", panicErr, "stack", string(debug.Stack()))
			} else {
				w.store.config.Logger.Error("watcher panic", "error", panicErr)
			}
		}
	}()
	defer w.store.setWatcherActive(false)
	defer w.watcher.Close()

	err = w.eventLoop(ctx)

	// Stop accepting new events and wait for in-flight timers so nothing
	// fires after the channel is closed.
	w.debouncer.stopAndWait(5 * time.Second)
	return err
}

func (w *watchWorker) eventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.processFilesystemEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.store.config.Logger.Error("fsnotify error", "error", wErr)
		}
	}
}

// debouncer coalesces bursts of events for the same id into one emission.
type debouncer struct {
	interval time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{
		interval: interval,
		timers:   make(map[string]*time.Timer),
	}
}

func (d *debouncer) add(e core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if t, ok := d.timers[e.ID]; ok {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, e.ID)
	}

	d.wg.Add(1)
	d.timers[e.ID] = time.AfterFunc(d.interval, func() {
		defer d.wg.Done()
		d.mu.Lock()
		delete(d.timers, e.ID)
		d.mu.Unlock()
		fire(e)
	})
}

// stopAndWait stops accepting events and waits up to timeout for in-flight
// timers to fire.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
