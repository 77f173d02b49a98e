package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of file events into one reload.
const DefaultDebounce = 250 * time.Millisecond

// Watcher watches a configuration file and delivers reloaded configs on
// Updates. Editors often replace files via rename, so the parent directory
// is watched and events are filtered by name.
type Watcher struct {
	path     string
	debounce time.Duration

	fsw     *fsnotify.Watcher
	updates chan Config
	errs    chan error
	done    chan struct{}
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the event coalescing window.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// NewWatcher starts watching the config file at path.
func NewWatcher(path string, opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     path,
		debounce: DefaultDebounce,
		fsw:      fsw,
		updates:  make(chan Config, 1),
		errs:     make(chan error, 1),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	go w.run()
	return w, nil
}

// Updates returns the channel of reloaded configurations.
func (w *Watcher) Updates() <-chan Config { return w.updates }

// Errors returns the channel of watch and reload errors.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) run() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.report(err)

		case <-fire:
			timer = nil
			fire = nil
			cfg, err := Load(w.path)
			if err != nil {
				w.report(err)
				continue
			}
			select {
			case w.updates <- cfg:
			default:
				// Receiver lagging; drop the stale pending update.
				select {
				case <-w.updates:
				default:
				}
				w.updates <- cfg
			}
		}
	}
}

func (w *Watcher) report(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
