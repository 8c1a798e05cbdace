package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jacquart08/ultimate-overlay/internal/eventbus"
	"github.com/Jacquart08/ultimate-overlay/internal/models"
	"github.com/Jacquart08/ultimate-overlay/internal/update"
	"github.com/Jacquart08/ultimate-overlay/ui/components"
)

// AppModel adapts the core-owned state for Bubble Tea. Update runs on the
// single presentation thread; the core only reaches it through the bus.
type AppModel struct {
	appModel models.AppModel
	eventBus *eventbus.EventBus
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		update.ListenForCoreEvents(m.eventBus),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, update.ListenForCoreEvents(m.eventBus)
	}

	cmd := update.HandleUpdateWithEventBus(&m.appModel, msg, m.eventBus)
	return m, cmd
}

func (m *AppModel) View() string {
	var b strings.Builder

	b.WriteString(components.RenderHeader(m.appModel))
	b.WriteString("\n")

	if m.appModel.AIText != "" || m.appModel.Loading {
		b.WriteString(components.RenderAIContent(m.appModel))
	} else {
		switch m.appModel.Mode {
		case models.ModeMenu:
			b.WriteString(components.RenderMenu(m.appModel.Menu))
		case models.ModeHome:
			b.WriteString(components.RenderHomePage(m.appModel.Home))
		default:
			b.WriteString(components.RenderEntries(m.appModel))
		}
	}

	b.WriteString("\n")
	b.WriteString(components.RenderStatus(m.appModel))

	return b.String()
}
