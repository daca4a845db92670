package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vango-dev/navkit/internal/errors"
)

// WatchDebounce is how long Watch waits after the last change before
// reloading.
const WatchDebounce = 50 * time.Millisecond

// Watch reloads the config file at path whenever it changes and calls fn
// with the result. Files that fail to load are logged and skipped. Watch
// blocks until ctx is done.
//
// The parent directory is watched so editors that save by renaming a temp
// file over path are picked up.
func Watch(ctx context.Context, path string, fn func(*Config)) error {
	logger := slog.Default().With("component", "config")

	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.New("N204").Wrap(err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.New("N204").Wrap(err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.New("N204").WithDetail("cannot watch " + filepath.Dir(abs)).Wrap(err)
	}

	d := newDebouncer(WatchDebounce)
	defer d.stop()

	reload := func() {
		cfg, err := LoadFile(abs)
		if err != nil {
			logger.Warn("config reload failed", "path", abs, "error", err)
			return
		}
		logger.Info("config reloaded", "path", abs, "mode", cfg.Routing.Mode)
		fn(cfg)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("config changed", "path", abs, "op", event.Op.String())
			d.trigger(reload)

		case wErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("fsnotify error", "error", wErr)
		}
	}
}

// debouncer runs the last triggered function once no trigger has arrived
// for delay.
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
