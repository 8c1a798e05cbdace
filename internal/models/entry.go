package models

// KnowledgeEntry is a static reference snippet associated with a language or
// application. Loaded from the knowledge JSON file, immutable after load.
type KnowledgeEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code,omitempty"`
	Summary     string `json:"summary"`
}

// ShortcutEntry is a keyboard-shortcut reference associated with an
// application. Loaded from the shortcuts JSON file.
type ShortcutEntry struct {
	Shortcut    string `json:"shortcut"`
	Description string `json:"description"`
	Code        string `json:"code,omitempty"`
	Summary     string `json:"summary"`
}

// EntryKind tags the variant held by a DisplayEntry.
type EntryKind int

const (
	EntryKnowledge EntryKind = iota
	EntryShortcut
	EntryNotFound // Synthetic "nothing found" placeholder
)

// DisplayEntry is one resolved row, ready for rendering. Created fresh per
// resolution call and never mutated in place.
type DisplayEntry struct {
	Kind        EntryKind
	Title       string // Entry title or shortcut string
	Description string
	Code        string // Copy-to-clipboard payload, may be empty
	Summary     string
	Pinned      bool
	PinKey      string // Key used by the favorites toggle (title or shortcut)
	DocURL      string // Documentation link, empty when unresolved
}

// MenuItem is one row of the home-locked system menu.
type MenuItem struct {
	Label       string
	Description string
}

// HomeSection is one block of an app-specific home page.
type HomeSection struct {
	Heading string
	Items   []string
}

// HomePage is the structured payload shown for home-capable applications.
type HomePage struct {
	AppName  string
	Sections []HomeSection
}
