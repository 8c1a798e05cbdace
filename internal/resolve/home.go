package resolve

import (
	"strings"

	"github.com/Jacquart08/ultimate-overlay/internal/models"
)

// homeCategories groups home-capable app names into payload families. Apps
// listed here get a structured home page; everything else falls through to
// knowledge resolution.
var homeCategories = map[string]string{
	"firefox":    "browser",
	"chrome":     "browser",
	"edge":       "browser",
	"word":       "office",
	"excel":      "office",
	"powerpoint": "office",
	"outlook":    "office",
	"steam":      "steam",
	"terminal":   "terminal",
	"powershell": "terminal",
	"cmd.exe":    "terminal",
	"slack":      "communication",
	"discord":    "communication",
	"teams":      "communication",
}

// homePageFor builds the structured home payload for a home-capable app.
// Recognized families get tailored sections; other apps in the set get the
// generic recent-items page parameterized by app name.
func homePageFor(app string) (*models.HomePage, bool) {
	if app == "" {
		return nil, false
	}
	category, ok := homeCategories[app]
	if !ok {
		return nil, false
	}

	name := displayName(app)
	switch category {
	case "browser":
		return &models.HomePage{
			AppName: name,
			Sections: []models.HomeSection{
				{Heading: "Recent pages", Items: []string{"Reopen closed tab: Ctrl+Shift+T", "History: Ctrl+H"}},
				{Heading: "Quick actions", Items: []string{"New tab: Ctrl+T", "Private window: Ctrl+Shift+P", "Find in page: Ctrl+F"}},
			},
		}, true
	case "office":
		return &models.HomePage{
			AppName: name,
			Sections: []models.HomeSection{
				{Heading: "Recent documents", Items: []string{"Open recent: File > Recent", "Pin frequent documents from the Open dialog"}},
				{Heading: "Quick actions", Items: []string{"New document: Ctrl+N", "Save as: F12", "Search commands: Alt+Q"}},
			},
		}, true
	case "steam":
		return &models.HomePage{
			AppName: name,
			Sections: []models.HomeSection{
				{Heading: "Recent games", Items: []string{"Library > Recent"}},
				{Heading: "Quick actions", Items: []string{"Screenshot: F12", "Overlay: Shift+Tab", "Friends list: view friends"}},
			},
		}, true
	case "terminal":
		return &models.HomePage{
			AppName: name,
			Sections: []models.HomeSection{
				{Heading: "Recent commands", Items: []string{"Search history: Ctrl+R", "Last argument: Alt+."}},
				{Heading: "Quick actions", Items: []string{"Clear screen: Ctrl+L", "Interrupt: Ctrl+C", "New tab: Ctrl+Shift+T"}},
			},
		}, true
	case "communication":
		return &models.HomePage{
			AppName: name,
			Sections: []models.HomeSection{
				{Heading: "Recent conversations", Items: []string{"Jump to conversation: Ctrl+K"}},
				{Heading: "Quick actions", Items: []string{"Mark as read: Esc", "Search: Ctrl+F", "Toggle mute: Ctrl+Shift+M"}},
			},
		}, true
	default:
		return genericHomePage(name), true
	}
}

// genericHomePage is the fallback payload for home-capable apps without a
// tailored layout.
func genericHomePage(appName string) *models.HomePage {
	return &models.HomePage{
		AppName: appName,
		Sections: []models.HomeSection{
			{Heading: "Recent items", Items: []string{"Recent items for " + appName + " are not tracked yet"}},
			{Heading: "Quick actions", Items: []string{"Switch window: Alt+Tab", "Close window: Alt+F4"}},
		},
	}
}

func displayName(app string) string {
	if app == "cmd.exe" {
		return "Command Prompt"
	}
	words := strings.Fields(app)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
