// Package watcher polls the desktop for foreground-window, modifier and
// selection changes and raises debounced events. Debouncing is a correctness
// requirement, not an optimization: every selection event can trigger a
// model call downstream.
package watcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Jacquart08/ultimate-overlay/internal/platform"
)

// State of the polling loop.
type State int

const (
	Idle State = iota
	Polling
)

// Event is one edge-triggered observation from the polling loop.
type Event interface{ watcherEvent() }

// TitleChanged fires when the foreground window title differs from the
// previous tick.
type TitleChanged struct {
	Title string
}

func (TitleChanged) watcherEvent() {}

// ModifierChanged fires exactly once per press or release of the watched
// modifier key.
type ModifierChanged struct {
	Pressed bool
}

func (ModifierChanged) watcherEvent() {}

// SelectionChanged fires when a non-empty selection differs from the
// previous non-empty reading.
type SelectionChanged struct {
	Text  string
	Title string
}

func (SelectionChanged) watcherEvent() {}

// Watcher runs a single background polling loop over a platform.Probe.
type Watcher struct {
	probe    platform.Probe
	log      *zap.Logger
	modifier string
	interval time.Duration
	backoff  time.Duration

	events chan Event

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	done   chan struct{}

	lastTitle     string
	lastModifier  bool
	lastSelection string
	started       bool // first tick seeds state without raising events
}

func New(probe platform.Probe, modifier string, interval time.Duration, log *zap.Logger) *Watcher {
	if interval <= 0 {
		interval = 150 * time.Millisecond
	}
	return &Watcher{
		probe:    probe,
		log:      log,
		modifier: modifier,
		interval: interval,
		backoff:  time.Second,
		events:   make(chan Event, 16),
	}
}

// Events is the single-consumer stream of observations.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// State returns the current loop state.
func (w *Watcher) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Start transitions Idle -> Polling and spawns the loop. Calling Start on a
// running watcher is a no-op.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == Polling {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})
	w.state = Polling
	go w.loop(ctx)
}

// Stop signals termination; the loop exits at its next tick boundary. Stop
// blocks until the loop goroutine has returned.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.state != Polling {
		w.mu.Unlock()
		return
	}
	cancel, done := w.cancel, w.done
	w.mu.Unlock()

	cancel()
	<-done

	w.mu.Lock()
	w.state = Idle
	w.mu.Unlock()
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if err := w.tick(); err != nil {
			// A failed read must never kill monitoring: log, back off, retry.
			w.log.Warn("selection poll failed, backing off", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.backoff):
			}
		}
	}
}

// tick reads all three capabilities and emits edge-triggered events. The
// first tick only seeds the comparison state.
func (w *Watcher) tick() error {
	title, err := w.probe.ForegroundWindowTitle()
	if err != nil {
		return err
	}

	pressed, err := w.probe.ModifierPressed(w.modifier)
	if err != nil {
		return err
	}

	selection, err := w.probe.SelectedText()
	if err != nil {
		return err
	}

	seeded := w.started
	w.started = true

	if title != w.lastTitle {
		w.lastTitle = title
		if seeded {
			w.emit(TitleChanged{Title: title})
		}
	}

	if pressed != w.lastModifier {
		w.lastModifier = pressed
		if seeded {
			w.emit(ModifierChanged{Pressed: pressed})
		}
	}

	// Only non-empty readings count: releasing a selection must not fire,
	// and re-reading the same selection must not fire again.
	if selection != "" && selection != w.lastSelection {
		w.lastSelection = selection
		if seeded {
			w.emit(SelectionChanged{Text: selection, Title: title})
		}
	}

	return nil
}

// emit never blocks the polling loop; if the consumer has fallen 16 events
// behind, the oldest information is already stale anyway.
func (w *Watcher) emit(ev Event) {
	select {
	case w.events <- ev:
	default:
		w.log.Debug("dropping watcher event, consumer is behind")
	}
}
