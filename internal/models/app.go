package models

// AppModel represents the UI state - only local UI concerns. All mutable
// display state lives here and is owned by the Bubble Tea update loop.
type AppModel struct {
	Mode        Mode           // What the overlay is currently showing
	Context     Context        // Last classified context
	Entries     []DisplayEntry // Resolved entries for Knowledge/Shortcuts modes
	Home        *HomePage      // Home payload when Mode == ModeHome
	Menu        []MenuItem     // System menu when Mode == ModeMenu
	Search      string         // Search filter input
	Searching   bool           // Whether the search field has focus
	Cursor      int            // Selected entry index
	AIText      string         // Last delivered completion, shown until cleared
	AIQuery     string         // The selected text the completion answers
	Model       ModelStatus    // Generation model lifecycle for the status bar
	AIEnabled   bool           // Whether the user toggled AI on
	Status      string         // Status bar text
	Loading     bool           // A generation is in flight
	LoadingDots int            // Animation counter for loading dots
	Width       int            // Terminal width
	Height      int            // Terminal height
}
