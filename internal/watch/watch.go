// Package watch reloads a trace file whenever it changes on disk.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/san-kum/rodopios/internal/trace"
)

// DefaultDebounce absorbs the burst of events a single save produces.
const DefaultDebounce = 150 * time.Millisecond

// Watcher follows one trace file. The parent directory is watched rather
// than the file itself so editors that save by rename are still seen.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	traces   chan trace.Trace
	logger   *zap.Logger
	Debounce time.Duration
}

func New(path string, logger *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		path:     abs,
		watcher:  fw,
		traces:   make(chan trace.Trace, 1),
		logger:   logger,
		Debounce: DefaultDebounce,
	}, nil
}

// Traces delivers the latest successfully decoded contents. A reader that
// falls behind only sees the newest version.
func (w *Watcher) Traces() <-chan trace.Trace { return w.traces }

// Run processes events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
			} else {
				timer.Reset(w.Debounce)
			}
			pending = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))

		case <-pending:
			pending = nil
			w.reload()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (w *Watcher) reload() {
	k, err := trace.Load(w.path)
	if err != nil {
		// Half-written files are common mid-save; the next event retries.
		w.logger.Debug("reload skipped", zap.String("path", w.path), zap.Error(err))
		return
	}
	tr := k.Trace()
	w.logger.Info("trace reloaded", zap.String("path", w.path), zap.Int("steps", len(tr)))

	select {
	case <-w.traces:
	default:
	}
	w.traces <- tr
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
