package eventbus

import (
	"github.com/Jacquart08/ultimate-overlay/internal/models"
	"github.com/Jacquart08/ultimate-overlay/internal/resolve"
)

// --- UI to Core ---

// SetModeEvent - user toggled Home/Read/Menu or a modifier flipped the view
type SetModeEvent struct {
	Mode models.Mode
}

func (e SetModeEvent) UIEvent() {}

// SearchEvent - user edited the search filter
type SearchEvent struct {
	Query string
}

func (e SearchEvent) UIEvent() {}

// TogglePinEvent - user pinned or unpinned the selected entry
type TogglePinEvent struct {
	Kind   models.EntryKind
	PinKey string
}

func (e TogglePinEvent) UIEvent() {}

// ToggleAIEvent - user switched the completion model on or off
type ToggleAIEvent struct {
	Enable bool
}

func (e ToggleAIEvent) UIEvent() {}

// CopyEntryEvent - user requested copy-to-clipboard of an entry's code
type CopyEntryEvent struct {
	Code string
}

func (e CopyEntryEvent) UIEvent() {}

// ReloadStoresEvent - user picked Reload from the system menu
type ReloadStoresEvent struct{}

func (e ReloadStoresEvent) UIEvent() {}

// RefreshEvent - stores changed out of band (file watcher), re-resolve only
type RefreshEvent struct{}

func (e RefreshEvent) UIEvent() {}

// --- Core to UI ---

// ContentUpdateEvent - Core pushes a freshly resolved view
type ContentUpdateEvent struct {
	Context    models.Context
	Resolution resolve.Resolution
}

func (e ContentUpdateEvent) CoreEvent() {}

// AIContentEvent - a completion result is ready for display
type AIContentEvent struct {
	Result models.CompletionResult
}

func (e AIContentEvent) CoreEvent() {}

// AIPendingEvent - a completion request was accepted and is in flight
type AIPendingEvent struct {
	QueryText string
}

func (e AIPendingEvent) CoreEvent() {}

// ModelStatusEvent - model lifecycle state or load progress changed
type ModelStatusEvent struct {
	Status models.ModelStatus
}

func (e ModelStatusEvent) CoreEvent() {}

// StatusTextEvent - transient status bar message (copy confirmation etc.)
type StatusTextEvent struct {
	Text string
}

func (e StatusTextEvent) CoreEvent() {}
