// Package core runs the overlay's background logic: it consumes watcher and
// UI events, classifies the foreground context, resolves content and pushes
// the results to the presentation loop. Nothing here ever calls into UI code
// directly; all delivery goes through the event bus.
package core

import (
	"context"

	"go.uber.org/zap"

	"github.com/Jacquart08/ultimate-overlay/internal/classify"
	"github.com/Jacquart08/ultimate-overlay/internal/completion"
	"github.com/Jacquart08/ultimate-overlay/internal/config"
	"github.com/Jacquart08/ultimate-overlay/internal/eventbus"
	"github.com/Jacquart08/ultimate-overlay/internal/favorites"
	"github.com/Jacquart08/ultimate-overlay/internal/knowledge"
	"github.com/Jacquart08/ultimate-overlay/internal/models"
	"github.com/Jacquart08/ultimate-overlay/internal/platform"
	"github.com/Jacquart08/ultimate-overlay/internal/resolve"
	"github.com/Jacquart08/ultimate-overlay/internal/watcher"
)

// OverlayService glues stores, classifier, resolver, watcher and the
// completion engine together behind the event bus.
type OverlayService struct {
	cfg       *config.Config
	log       *zap.Logger
	bus       *eventbus.EventBus
	knowledge *knowledge.Store
	shortcuts *knowledge.ShortcutStore
	favorites *favorites.Store
	resolver  *resolve.Resolver
	watch     *watcher.Watcher
	engine    *completion.Engine
	clipboard platform.Clipboard
	files     *knowledge.Watcher

	ctx    context.Context
	cancel context.CancelFunc

	// Event-loop-local state, touched only by the core goroutine.
	current    models.Context
	homeLocked bool
	modifierOn bool
	search     string
}

func NewOverlayService(cfg *config.Config, bus *eventbus.EventBus, probe platform.Probe, clip platform.Clipboard, log *zap.Logger) *OverlayService {
	ks := knowledge.NewStore(cfg.KnowledgePath, log)
	ss := knowledge.NewShortcutStore(cfg.ShortcutsPath, log)
	fav := favorites.NewStore(cfg.FavoritesPath, log)

	gen := completion.NewOpenAIGenerator(cfg.Model)
	engine := completion.NewEngine(gen, bus, cfg.Cooldown(), log)

	ctx, cancel := context.WithCancel(context.Background())

	svc := &OverlayService{
		cfg:       cfg,
		log:       log,
		bus:       bus,
		knowledge: ks,
		shortcuts: ss,
		favorites: fav,
		resolver:  resolve.New(ks, ss, fav),
		watch:     watcher.New(probe, cfg.Modifier, cfg.PollInterval(), log),
		engine:    engine,
		clipboard: clip,
		ctx:       ctx,
		cancel:    cancel,
	}

	if cfg.WatchFiles {
		fw := knowledge.NewWatcher(log, svc.requestRefresh)
		fw.Add(cfg.KnowledgePath, ks.Load)
		fw.Add(cfg.ShortcutsPath, ss.Load)
		svc.files = fw
	}

	return svc
}

// Start loads the stores and spawns the background loops. Load errors are
// already resolved to empty stores; the overlay starts regardless.
func (s *OverlayService) Start() {
	_ = s.knowledge.Load()
	_ = s.shortcuts.Load()
	_ = s.favorites.Load()

	s.watch.Start()
	if s.files != nil {
		go func() {
			if err := s.files.Run(s.ctx); err != nil {
				s.log.Warn("file watching disabled", zap.Error(err))
			}
		}()
	}

	go s.eventLoop()
	s.pushContent()
}

// Stop shuts down the polling loop and the model. The watcher stops
// cooperatively within one tick interval.
func (s *OverlayService) Stop() {
	s.cancel()
	s.watch.Stop()
	s.engine.Disable()
}

// Engine exposes the completion engine for status queries.
func (s *OverlayService) Engine() *completion.Engine {
	return s.engine
}

func (s *OverlayService) eventLoop() {
	for {
		select {
		case <-s.ctx.Done():
			return
		case ev, ok := <-s.watch.Events():
			if !ok {
				return
			}
			s.handleWatcherEvent(ev)
		case ev, ok := <-s.bus.UIToCore():
			if !ok {
				return
			}
			s.handleUIEvent(ev)
		}
	}
}

func (s *OverlayService) handleWatcherEvent(ev watcher.Event) {
	switch e := ev.(type) {
	case watcher.TitleChanged:
		s.current = classify.Classify(e.Title)
		s.pushContent()
	case watcher.ModifierChanged:
		s.modifierOn = e.Pressed
		s.pushContent()
	case watcher.SelectionChanged:
		// Selections flow straight into the completion pipeline; the engine
		// enforces readiness, cooldown and supersession.
		s.engine.RequestCompletion(e.Text, classify.Classify(e.Title))
	}
}

func (s *OverlayService) handleUIEvent(ev eventbus.UIEvent) {
	switch e := ev.(type) {
	case eventbus.SetModeEvent:
		s.homeLocked = e.Mode == models.ModeMenu
		s.pushContent()
	case eventbus.SearchEvent:
		s.search = e.Query
		s.pushContent()
	case eventbus.TogglePinEvent:
		s.togglePin(e)
		s.pushContent()
	case eventbus.ToggleAIEvent:
		if e.Enable {
			s.engine.Enable()
		} else {
			s.engine.Disable()
		}
	case eventbus.CopyEntryEvent:
		s.copyToClipboard(e.Code)
	case eventbus.ReloadStoresEvent:
		_ = s.knowledge.Load()
		_ = s.shortcuts.Load()
		s.pushStatusText("Knowledge and shortcuts reloaded")
		s.pushContent()
	case eventbus.RefreshEvent:
		s.pushContent()
	}
}

func (s *OverlayService) togglePin(e eventbus.TogglePinEvent) {
	var err error
	switch e.Kind {
	case models.EntryShortcut:
		_, err = s.favorites.ToggleShortcut(e.PinKey)
	case models.EntryKnowledge:
		_, err = s.favorites.ToggleKnowledge(e.PinKey)
	default:
		return
	}
	if err != nil {
		s.log.Warn("failed to persist favorites", zap.Error(err))
		s.pushStatusText("Could not save favorites")
	}
}

func (s *OverlayService) copyToClipboard(code string) {
	if err := s.clipboard.Write(code); err != nil {
		s.log.Warn("clipboard write failed", zap.Error(err))
		s.pushStatusText("Copy failed")
		return
	}
	s.pushStatusText("Copied to clipboard")
}

// mode derives the effective display mode: the locked menu wins, then the
// held modifier flips to shortcuts, otherwise the home/knowledge path where
// a language match pre-empts the home page.
func (s *OverlayService) mode() models.Mode {
	switch {
	case s.homeLocked:
		return models.ModeMenu
	case s.modifierOn:
		return models.ModeShortcuts
	default:
		return models.ModeHome
	}
}

func (s *OverlayService) pushContent() {
	res := s.resolver.Resolve(s.current, s.mode(), s.search)
	if err := s.bus.SendToUI(eventbus.ContentUpdateEvent{
		Context:    s.current,
		Resolution: res,
	}); err != nil {
		s.log.Warn("failed to push content to UI", zap.Error(err))
	}
}

func (s *OverlayService) pushStatusText(text string) {
	if err := s.bus.SendToUI(eventbus.StatusTextEvent{Text: text}); err != nil {
		s.log.Debug("failed to push status text", zap.Error(err))
	}
}

// requestRefresh is called from the file watcher goroutine; it re-resolves
// on the core loop by nudging the bus rather than touching loop state.
func (s *OverlayService) requestRefresh() {
	if err := s.bus.SendToCore(eventbus.RefreshEvent{}); err != nil {
		s.log.Debug("failed to request refresh", zap.Error(err))
	}
}
