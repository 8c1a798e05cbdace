package models

// Context is the inferred subject of the currently focused window.
// Language and AppCategory come from independent detectors and may both be
// set at the same time; callers decide precedence.
type Context struct {
	WindowTitle string // Raw title, empty when no window could be read
	Language    string // Detected from the rightmost file extension, empty if none
	AppCategory string // Detected from known app-name substrings, empty if none
}

// HasLanguage reports whether a programming language was detected.
func (c Context) HasLanguage() bool {
	return c.Language != ""
}

// HasApp reports whether a known application was detected.
func (c Context) HasApp() bool {
	return c.AppCategory != ""
}

// Mode selects what the overlay shows for the current context.
type Mode int

const (
	ModeKnowledge Mode = iota // Reference entries for the detected language/app
	ModeShortcuts             // Keyboard shortcuts for the detected app
	ModeHome                  // App-specific home page (recent items + actions)
	ModeMenu                  // Home-locked system menu
)

func (m Mode) String() string {
	switch m {
	case ModeKnowledge:
		return "knowledge"
	case ModeShortcuts:
		return "shortcuts"
	case ModeHome:
		return "home"
	case ModeMenu:
		return "menu"
	}
	return "unknown"
}
