package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jacquart08/ultimate-overlay/internal/eventbus"
	"github.com/Jacquart08/ultimate-overlay/internal/models"
)

// HandleKeyMsg handles keyboard input. Actions that touch shared state are
// sent to the core over the bus; only local view state mutates here.
func HandleKeyMsg(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	if appModel.Searching {
		return handleSearchKey(appModel, keyMsg, eb)
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "/":
		appModel.Searching = true
	case "esc":
		if appModel.AIText != "" || appModel.AIQuery != "" {
			// AI content takes precedence over resolved content until cleared.
			appModel.AIText = ""
			appModel.AIQuery = ""
		} else if appModel.Search != "" {
			appModel.Search = ""
			sendToCore(appModel, eb, eventbus.SearchEvent{Query: ""})
		}
	case "up", "k":
		if appModel.Cursor > 0 {
			appModel.Cursor--
		}
	case "down", "j":
		if appModel.Cursor < len(appModel.Entries)-1 {
			appModel.Cursor++
		}
	case "h":
		sendToCore(appModel, eb, eventbus.SetModeEvent{Mode: models.ModeMenu})
	case "r":
		sendToCore(appModel, eb, eventbus.SetModeEvent{Mode: models.ModeHome})
	case "a":
		appModel.AIEnabled = !appModel.AIEnabled
		sendToCore(appModel, eb, eventbus.ToggleAIEvent{Enable: appModel.AIEnabled})
	case "R":
		sendToCore(appModel, eb, eventbus.ReloadStoresEvent{})
	case "p":
		if entry, ok := selectedEntry(appModel); ok && entry.Kind != models.EntryNotFound {
			sendToCore(appModel, eb, eventbus.TogglePinEvent{Kind: entry.Kind, PinKey: entry.PinKey})
		}
	case "c", "enter":
		if entry, ok := selectedEntry(appModel); ok && entry.Kind != models.EntryNotFound {
			sendToCore(appModel, eb, eventbus.CopyEntryEvent{Code: entry.Code})
		}
	case "d":
		if entry, ok := selectedEntry(appModel); ok && entry.DocURL != "" {
			appModel.Status = "Docs: " + entry.DocURL
			sendToCore(appModel, eb, eventbus.CopyEntryEvent{Code: entry.DocURL})
		}
	}
	return nil
}

func handleSearchKey(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	switch keyMsg.String() {
	case "esc":
		appModel.Searching = false
		appModel.Search = ""
		sendToCore(appModel, eb, eventbus.SearchEvent{Query: ""})
	case "enter":
		appModel.Searching = false
	case "backspace":
		if len(appModel.Search) > 0 {
			appModel.Search = appModel.Search[:len(appModel.Search)-1]
			sendToCore(appModel, eb, eventbus.SearchEvent{Query: appModel.Search})
		}
	default:
		if len(keyMsg.String()) == 1 {
			appModel.Search += keyMsg.String()
			sendToCore(appModel, eb, eventbus.SearchEvent{Query: appModel.Search})
		}
	}
	return nil
}

func selectedEntry(appModel *models.AppModel) (models.DisplayEntry, bool) {
	if appModel.Cursor < 0 || appModel.Cursor >= len(appModel.Entries) {
		return models.DisplayEntry{}, false
	}
	return appModel.Entries[appModel.Cursor], true
}

func sendToCore(appModel *models.AppModel, eb *eventbus.EventBus, ev eventbus.UIEvent) {
	if err := eb.SendToCore(ev); err != nil {
		appModel.Status = "Error: " + err.Error()
	}
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg) {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.ContentUpdateEvent:
		appModel.Context = event.Context
		appModel.Mode = event.Resolution.Mode
		appModel.Entries = event.Resolution.Entries
		appModel.Home = event.Resolution.Home
		appModel.Menu = event.Resolution.Menu
		if appModel.Cursor >= len(appModel.Entries) {
			appModel.Cursor = 0
		}
	case eventbus.AIPendingEvent:
		appModel.Loading = true
		appModel.AIQuery = event.QueryText
		appModel.Status = "Generating"
	case eventbus.AIContentEvent:
		appModel.Loading = false
		appModel.AIQuery = event.Result.QueryText
		switch {
		case event.Result.Err != "":
			appModel.AIText = ""
			appModel.Status = "AI error: " + event.Result.Err
		case event.Result.Text == "":
			appModel.AIText = ""
			appModel.Status = "No completion produced, try again"
		default:
			appModel.AIText = event.Result.Text
			appModel.Status = "Ready"
		}
	case eventbus.ModelStatusEvent:
		appModel.Model = event.Status
		switch event.Status.State {
		case models.ModelFailed:
			appModel.AIEnabled = false
			appModel.Status = "Model failed: " + event.Status.Err
		case models.ModelUnloaded:
			appModel.AIEnabled = false
		}
	case eventbus.StatusTextEvent:
		appModel.Status = event.Text
	}
}
