package flags

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const defaultDebounce = 500 * time.Millisecond

// Reloader is what the watcher drives. *Evaluator satisfies it.
type Reloader interface {
	Reload() error
}

// Watcher re-applies the overrides file layer when the file changes on
// disk. Editors tend to emit bursts of events per save, so reloads are
// debounced on an injectable clock.
type Watcher struct {
	path     string
	reloader Reloader
	watcher  *fsnotify.Watcher
	clock    clockwork.Clock
	debounce time.Duration
	logger   *zap.Logger

	stop chan struct{}
	done chan struct{}
}

type WatcherOption func(*Watcher)

func WithWatcherClock(clock clockwork.Clock) WatcherOption {
	return func(w *Watcher) {
		w.clock = clock
	}
}

func WithWatcherLogger(logger *zap.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = logger
	}
}

func WithDebounce(debounce time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = debounce
	}
}

func NewWatcher(path string, reloader Reloader, opts ...WatcherOption) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file watcher")
	}

	w := &Watcher{
		path:     path,
		reloader: reloader,
		watcher:  fsWatcher,
		debounce: defaultDebounce,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.clock == nil {
		w.clock = clockwork.NewRealClock()
	}

	if w.logger == nil {
		w.logger = zap.NewNop()
	}

	return w, nil
}

// Start watches the directory containing the overrides file. Watching
// the directory rather than the file itself survives the
// rename-and-replace dance most editors do on save.
func (w *Watcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.path))
	if err != nil {
		_ = w.watcher.Close()
		return errors.Wrap(err, "failed to watch overrides directory")
	}

	go w.loop()

	w.logger.Info("watching overrides file", zap.String("path", w.path))
	return nil
}

func (w *Watcher) Stop() {
	close(w.stop)
	<-w.done
	_ = w.watcher.Close()
}

func (w *Watcher) loop() {
	defer close(w.done)

	var pending <-chan time.Time

	for {
		select {
		case event, more := <-w.watcher.Events:
			if !more {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("overrides file event", zap.String("op", event.Op.String()))
			pending = w.clock.After(w.debounce)

		case err, more := <-w.watcher.Errors:
			if !more {
				return
			}
			w.logger.Error("file watcher error", zap.Error(err))

		case <-pending:
			pending = nil
			err := w.reloader.Reload()
			if err != nil {
				w.logger.Error("failed to reload flags", zap.Error(err))
			}

		case <-w.stop:
			return
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
