// Package classify maps a raw window title to a Context. Pure functions
// only: identical input produces identical output, no I/O, no side effects.
package classify

import (
	"regexp"
	"strings"

	"github.com/Jacquart08/ultimate-overlay/internal/models"
)

var extensionPattern = regexp.MustCompile(`(?i)\.[a-z0-9]+`)

// Classify derives language and app category from a window title. The two
// detectors are independent and may both match; callers decide precedence.
func Classify(title string) models.Context {
	return models.Context{
		WindowTitle: title,
		Language:    detectLanguage(title),
		AppCategory: detectApp(title),
	}
}

// detectLanguage takes the rightmost extension-shaped fragment that maps to
// a known language. Window titles usually end with the active file name, so
// the rightmost match is the relevant one; earlier dot-fragments in paths or
// version strings must not override it.
func detectLanguage(title string) string {
	matches := extensionPattern.FindAllString(title, -1)
	language := ""
	for _, match := range matches {
		if lang, ok := extensionLanguages[strings.ToLower(match)]; ok {
			language = lang
		}
	}
	return language
}

// detectApp returns the first known app name, in table order, that appears
// in the lowercased title.
func detectApp(title string) string {
	lower := strings.ToLower(title)
	for _, app := range appNames {
		if strings.Contains(lower, app) {
			return app
		}
	}
	return ""
}

// KnownApps returns the app-name table in match order.
func KnownApps() []string {
	out := make([]string, len(appNames))
	copy(out, appNames)
	return out
}

// LanguageForExtension resolves a single extension (with or without the
// leading dot) against the language table.
func LanguageForExtension(ext string) (string, bool) {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	lang, ok := extensionLanguages[ext]
	return lang, ok
}
