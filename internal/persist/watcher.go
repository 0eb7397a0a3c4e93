package persist

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watcher reports slots whose save files change on disk, so edits made by
// other tools can be reloaded. Events for a slot this process just saved are
// suppressed for a short window.
type Watcher struct {
	fs     *fsnotify.Watcher
	events chan int
	logger *slog.Logger
	window time.Duration
	now    func() time.Time

	mu         sync.Mutex
	suppressed map[int]time.Time

	done chan struct{}
}

// NewWatcher starts watching dir for save_<slot>.json writes.
func NewWatcher(dir string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "[NewWatcher] failed to create fsnotify watcher")
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "[NewWatcher] failed to watch directory: %s", dir)
	}
	w := &Watcher{
		fs:         fw,
		events:     make(chan int, 16),
		logger:     logger,
		window:     time.Second,
		now:        time.Now,
		suppressed: make(map[int]time.Time),
		done:       make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Events delivers slot numbers. The channel is closed by Close.
func (w *Watcher) Events() <-chan int { return w.events }

// Suppress ignores changes to slot for the next second.
func (w *Watcher) Suppress(slot int) {
	w.mu.Lock()
	w.suppressed[slot] = w.now().Add(w.window)
	w.mu.Unlock()
}

// Close stops watching and waits for the event loop to exit.
func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.events)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("save directory watch error", slog.String("error", err.Error()))
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return
	}
	slot, ok := SlotFromPath(ev.Name)
	if !ok || w.isSuppressed(slot) {
		return
	}
	select {
	case w.events <- slot:
		w.logger.Debug("slot changed on disk", slog.Int("slot", slot))
	default:
		w.logger.Debug("dropping slot change, queue full", slog.Int("slot", slot))
	}
}

func (w *Watcher) isSuppressed(slot int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	until, ok := w.suppressed[slot]
	if !ok {
		return false
	}
	if w.now().After(until) {
		delete(w.suppressed, slot)
		return false
	}
	return true
}
