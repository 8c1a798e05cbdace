package watcher

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Jacquart08/ultimate-overlay/internal/logging"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeProbe is a settable platform probe for driving the polling loop.
type fakeProbe struct {
	mu        sync.Mutex
	title     string
	pressed   bool
	selection string
	failures  int // remaining ticks that return an error
}

func (p *fakeProbe) ForegroundWindowTitle() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failures > 0 {
		p.failures--
		return "", errors.New("probe unavailable")
	}
	return p.title, nil
}

func (p *fakeProbe) ModifierPressed(string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pressed, nil
}

func (p *fakeProbe) SelectedText() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.selection, nil
}

func (p *fakeProbe) set(fn func(*fakeProbe)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(p)
}

func newTestWatcher(probe *fakeProbe) *Watcher {
	w := New(probe, "ctrl", 5*time.Millisecond, logging.NewNop())
	w.backoff = 5 * time.Millisecond
	return w
}

func awaitEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case ev := <-w.Events():
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watcher event")
		return nil
	}
}

func assertNoEvent(t *testing.T, w *Watcher, wait time.Duration) {
	t.Helper()
	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected event %#v", ev)
	case <-time.After(wait):
	}
}

func TestStartStopTransitions(t *testing.T) {
	w := newTestWatcher(&fakeProbe{})

	assert.Equal(t, Idle, w.State())
	w.Start()
	assert.Equal(t, Polling, w.State())

	// Start while polling is a no-op.
	w.Start()
	assert.Equal(t, Polling, w.State())

	w.Stop()
	assert.Equal(t, Idle, w.State())

	// Stop while idle is a no-op.
	w.Stop()
	assert.Equal(t, Idle, w.State())
}

func TestFirstTickSeedsWithoutEvents(t *testing.T) {
	probe := &fakeProbe{title: "Untitled - Notepad", pressed: true, selection: "hello"}
	w := newTestWatcher(probe)

	w.Start()
	defer w.Stop()

	// Pre-existing state is seeded silently; no synthetic initial events.
	assertNoEvent(t, w, 100*time.Millisecond)
}

func TestTitleChangeIsEdgeTriggered(t *testing.T) {
	probe := &fakeProbe{title: "Untitled - Notepad"}
	w := newTestWatcher(probe)

	w.Start()
	defer w.Stop()

	time.Sleep(30 * time.Millisecond) // let the first tick seed
	probe.set(func(p *fakeProbe) { p.title = "main.py - Visual Studio Code" })

	ev := awaitEvent(t, w)
	title, ok := ev.(TitleChanged)
	require.True(t, ok, "expected TitleChanged, got %#v", ev)
	assert.Equal(t, "main.py - Visual Studio Code", title.Title)

	// The unchanged title must not fire again.
	assertNoEvent(t, w, 100*time.Millisecond)
}

func TestModifierPressAndReleaseFireOnce(t *testing.T) {
	probe := &fakeProbe{}
	w := newTestWatcher(probe)

	w.Start()
	defer w.Stop()

	time.Sleep(30 * time.Millisecond)
	probe.set(func(p *fakeProbe) { p.pressed = true })

	ev := awaitEvent(t, w)
	mod, ok := ev.(ModifierChanged)
	require.True(t, ok, "expected ModifierChanged, got %#v", ev)
	assert.True(t, mod.Pressed)

	// Held key must not re-fire.
	assertNoEvent(t, w, 100*time.Millisecond)

	probe.set(func(p *fakeProbe) { p.pressed = false })
	ev = awaitEvent(t, w)
	mod, ok = ev.(ModifierChanged)
	require.True(t, ok, "expected ModifierChanged, got %#v", ev)
	assert.False(t, mod.Pressed)
}

func TestSelectionEmptyReadingsNeverFire(t *testing.T) {
	probe := &fakeProbe{selection: "initial"}
	w := newTestWatcher(probe)

	w.Start()
	defer w.Stop()

	time.Sleep(30 * time.Millisecond)

	// Clearing the selection is not an event.
	probe.set(func(p *fakeProbe) { p.selection = "" })
	assertNoEvent(t, w, 100*time.Millisecond)

	// Re-selecting the same text after clearing is not an event either:
	// only a reading that differs from the last non-empty one fires.
	probe.set(func(p *fakeProbe) { p.selection = "initial" })
	assertNoEvent(t, w, 100*time.Millisecond)
}

func TestSelectionChangeCarriesCurrentTitle(t *testing.T) {
	probe := &fakeProbe{title: "main.py - editor"}
	w := newTestWatcher(probe)

	w.Start()
	defer w.Stop()

	time.Sleep(30 * time.Millisecond)
	probe.set(func(p *fakeProbe) { p.selection = "def foo():" })

	ev := awaitEvent(t, w)
	sel, ok := ev.(SelectionChanged)
	require.True(t, ok, "expected SelectionChanged, got %#v", ev)
	assert.Equal(t, "def foo():", sel.Text)
	assert.Equal(t, "main.py - editor", sel.Title)
}

func TestSelectionSameTextDoesNotRefire(t *testing.T) {
	probe := &fakeProbe{}
	w := newTestWatcher(probe)

	w.Start()
	defer w.Stop()

	time.Sleep(30 * time.Millisecond)
	probe.set(func(p *fakeProbe) { p.selection = "alpha" })
	awaitEvent(t, w)

	// The same reading repeats every tick but fires only once.
	assertNoEvent(t, w, 100*time.Millisecond)

	probe.set(func(p *fakeProbe) { p.selection = "beta" })
	ev := awaitEvent(t, w)
	sel, ok := ev.(SelectionChanged)
	require.True(t, ok)
	assert.Equal(t, "beta", sel.Text)
}

func TestProbeErrorBacksOffAndRecovers(t *testing.T) {
	probe := &fakeProbe{title: "before", failures: 3}
	w := newTestWatcher(probe)

	w.Start()
	defer w.Stop()

	// Wait out the failing ticks plus their backoffs, then change state.
	time.Sleep(100 * time.Millisecond)
	probe.set(func(p *fakeProbe) { p.title = "after" })

	ev := awaitEvent(t, w)
	title, ok := ev.(TitleChanged)
	require.True(t, ok, "expected TitleChanged, got %#v", ev)
	assert.Equal(t, "after", title.Title)
	assert.Equal(t, Polling, w.State())
}

func TestStopIsCooperativeAndBlocks(t *testing.T) {
	probe := &fakeProbe{}
	w := newTestWatcher(probe)

	w.Start()
	time.Sleep(20 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
	assert.Equal(t, Idle, w.State())
}
