package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Jacquart08/ultimate-overlay/internal/config"
	"github.com/Jacquart08/ultimate-overlay/internal/core"
	"github.com/Jacquart08/ultimate-overlay/internal/eventbus"
	"github.com/Jacquart08/ultimate-overlay/internal/logging"
	"github.com/Jacquart08/ultimate-overlay/internal/models"
	"github.com/Jacquart08/ultimate-overlay/internal/platform"
)

// Application manages the complete application lifecycle
type Application struct {
	config   *config.Config
	log      *zap.Logger
	eventBus *eventbus.EventBus
	service  *core.OverlayService
	model    *AppModel
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	log := logging.New(logging.Options{Dir: config.LogDir(), Debug: cfg.Debug})

	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(busErr eventbus.EventBusError) {
		log.Warn("event bus error", zap.String("operation", busErr.Operation), zap.Error(busErr.Err))
	})

	probe := platform.NewX11Probe()
	clip := platform.NewSystemClipboard()
	service := core.NewOverlayService(cfg, eb, probe, clip, log)

	model := &AppModel{
		appModel: createInitialAppModel(),
		eventBus: eb,
	}

	return &Application{
		config:   cfg,
		log:      log,
		eventBus: eb,
		service:  service,
		model:    model,
	}, nil
}

func (app *Application) Start() error {
	app.log.Info("starting overlay")
	app.service.Start()

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.eventBus.Close()
	_ = app.log.Sync()
}

func createInitialAppModel() models.AppModel {
	// Content arrives from the core as the single source of truth; the UI
	// starts empty.
	return models.AppModel{
		Mode:   models.ModeKnowledge,
		Status: "Ready",
	}
}
