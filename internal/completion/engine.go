package completion

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Jacquart08/ultimate-overlay/internal/eventbus"
	"github.com/Jacquart08/ultimate-overlay/internal/models"
)

// Engine owns the model handle exclusively and serializes all access to it.
// Two generations must never run concurrently against the same handle.
type Engine struct {
	gen      Generator
	bus      *eventbus.EventBus
	log      *zap.Logger
	cooldown time.Duration

	mu           sync.Mutex
	state        models.ModelState
	progress     int
	loadCancel   context.CancelFunc
	lastAccepted time.Time
	nextID       uint64
	latestID     uint64 // id of the newest accepted request; older results are stale
	inFlight     bool
	pending      *models.CompletionRequest // at most one queued request, newest wins
}

func NewEngine(gen Generator, bus *eventbus.EventBus, cooldown time.Duration, log *zap.Logger) *Engine {
	if cooldown <= 0 {
		cooldown = 500 * time.Millisecond
	}
	return &Engine{
		gen:      gen,
		bus:      bus,
		log:      log,
		cooldown: cooldown,
		state:    models.ModelUnloaded,
	}
}

// Status returns the current lifecycle state and load progress.
func (e *Engine) Status() models.ModelStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return models.ModelStatus{State: e.state, Progress: e.progress}
}

// Enable starts loading the model. Only valid from Unloaded; the caller is
// never blocked. Progress and the final Ready/Failed state are pushed to the
// UI through the bus.
func (e *Engine) Enable() {
	e.mu.Lock()
	if e.state != models.ModelUnloaded {
		e.mu.Unlock()
		return
	}
	e.state = models.ModelLoading
	e.progress = 0
	ctx, cancel := context.WithCancel(context.Background())
	e.loadCancel = cancel
	e.mu.Unlock()

	e.pushStatus(models.ModelStatus{State: models.ModelLoading, Progress: 0})

	go e.load(ctx)
}

func (e *Engine) load(ctx context.Context) {
	err := func() (err error) {
		// The load capability must never take the engine down.
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("model load panicked: %v", r)
			}
		}()
		return e.gen.Load(ctx, e.reportProgress)
	}()

	e.mu.Lock()
	if e.state != models.ModelLoading {
		// Disabled while loading; the unload path already ran.
		e.mu.Unlock()
		return
	}
	status := models.ModelStatus{}
	if err != nil {
		e.state = models.ModelFailed
		e.progress = 0
		status = models.ModelStatus{State: models.ModelFailed, Err: err.Error()}
	} else {
		e.state = models.ModelReady
		e.progress = 100
		status = models.ModelStatus{State: models.ModelReady, Progress: 100}
	}
	e.mu.Unlock()

	if err != nil {
		e.log.Warn("model load failed", zap.Error(err))
	} else {
		e.log.Info("model ready")
	}
	e.pushStatus(status)
}

// reportProgress forwards load progress, clamped monotonic 0..100.
func (e *Engine) reportProgress(p int) {
	e.mu.Lock()
	if e.state != models.ModelLoading || p <= e.progress {
		e.mu.Unlock()
		return
	}
	if p > 100 {
		p = 100
	}
	e.progress = p
	e.mu.Unlock()

	e.pushStatus(models.ModelStatus{State: models.ModelLoading, Progress: p})
}

// Disable unloads the model. Valid from Ready and Loading; calling it from
// Failed resets to Unloaded with no-op cleanup.
func (e *Engine) Disable() {
	e.mu.Lock()
	if e.state == models.ModelUnloaded {
		e.mu.Unlock()
		return
	}
	if e.loadCancel != nil {
		e.loadCancel()
		e.loadCancel = nil
	}
	wasFailed := e.state == models.ModelFailed
	e.state = models.ModelUnloaded
	e.progress = 0
	e.pending = nil
	// Request ids start at 1, so clearing the latest id makes deliver
	// discard any generation that is still running. The generation itself
	// is non-preemptible and must not be joined here: that would stall the
	// caller behind a slow model call.
	e.latestID = 0
	e.mu.Unlock()

	if !wasFailed {
		e.gen.Unload()
	}
	e.log.Info("model unloaded")
	e.pushStatus(models.ModelStatus{State: models.ModelUnloaded})
}

// RequestCompletion accepts a generation request unless the model is not
// Ready or the cooldown since the last accepted request has not elapsed.
// Dropped requests are never queued; an accepted request supersedes a
// queued-but-not-started one.
func (e *Engine) RequestCompletion(text string, ctx models.Context) bool {
	now := time.Now()

	e.mu.Lock()
	if e.state != models.ModelReady {
		e.mu.Unlock()
		e.log.Debug("completion dropped, model unavailable",
			zap.String("state", e.Status().State.String()))
		return false
	}
	if now.Sub(e.lastAccepted) < e.cooldown {
		e.mu.Unlock()
		e.log.Debug("completion dropped, cooldown active")
		return false
	}

	e.lastAccepted = now
	e.nextID++
	req := models.CompletionRequest{
		ID:          e.nextID,
		Text:        text,
		Context:     ctx,
		SubmittedAt: now,
	}
	e.latestID = req.ID

	if e.inFlight {
		// Newest wins: replace whatever was waiting.
		e.pending = &req
		e.mu.Unlock()
		return true
	}
	e.inFlight = true
	e.mu.Unlock()

	go e.run(req)
	return true
}

// run executes one generation off the presentation thread, delivers the
// result if it is still the newest, and starts the pending request if one
// arrived meanwhile.
func (e *Engine) run(req models.CompletionRequest) {
	for {
		e.notifyPending(req)

		prompt := BuildPrompt(req.Text, req.Context.Language, req.Context.AppCategory)
		text, err := e.generate(prompt)

		e.deliver(req, text, err)

		e.mu.Lock()
		if e.pending == nil {
			e.inFlight = false
			e.mu.Unlock()
			return
		}
		req = *e.pending
		e.pending = nil
		e.mu.Unlock()
	}
}

func (e *Engine) generate(prompt string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("model generation panicked: %v", r)
		}
	}()
	return e.gen.Generate(context.Background(), prompt)
}

// deliver enqueues the result for the presentation loop, unless a newer
// request was accepted while this one ran. Stale results are discarded so an
// old answer can never overwrite a newer one.
func (e *Engine) deliver(req models.CompletionRequest, text string, err error) {
	e.mu.Lock()
	stale := req.ID != e.latestID
	e.mu.Unlock()

	if stale {
		e.log.Debug("discarding stale completion result", zap.Uint64("request_id", req.ID))
		return
	}

	result := models.CompletionResult{
		RequestID: req.ID,
		Text:      text,
		QueryText: req.Text,
	}
	if err != nil {
		result.Text = ""
		result.Err = err.Error()
		e.log.Warn("generation failed", zap.Uint64("request_id", req.ID), zap.Error(err))
	}

	if busErr := e.bus.SendToUI(eventbus.AIContentEvent{Result: result}); busErr != nil {
		e.log.Warn("failed to deliver completion result", zap.Error(busErr))
	}
}

func (e *Engine) notifyPending(req models.CompletionRequest) {
	if err := e.bus.SendToUI(eventbus.AIPendingEvent{QueryText: req.Text}); err != nil {
		e.log.Debug("failed to announce pending completion", zap.Error(err))
	}
}

func (e *Engine) pushStatus(status models.ModelStatus) {
	if err := e.bus.SendToUI(eventbus.ModelStatusEvent{Status: status}); err != nil {
		e.log.Warn("failed to push model status", zap.Error(err))
	}
}
