// Package platform abstracts the OS-level capabilities the overlay polls:
// foreground window title, modifier-key state and the current text
// selection. The watcher state machine is platform-agnostic; only the Probe
// implementation knows about the windowing system.
package platform

// Probe reads the ambient desktop state. Implementations may be slow or
// fail per call; callers must treat every error as transient.
type Probe interface {
	// ForegroundWindowTitle returns the title of the focused window, or
	// empty when there is none.
	ForegroundWindowTitle() (string, error)

	// ModifierPressed reports whether the named modifier ("ctrl", "alt",
	// "shift") is currently held.
	ModifierPressed(name string) (bool, error)

	// SelectedText returns the current text selection, or empty when
	// nothing is selected.
	SelectedText() (string, error)
}

// Clipboard writes entry code snippets for the copy action.
type Clipboard interface {
	Write(text string) error
}
