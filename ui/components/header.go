package components

import (
	"fmt"

	"github.com/Jacquart08/ultimate-overlay/internal/models"
	"github.com/Jacquart08/ultimate-overlay/ui/styles"
)

// RenderHeader shows the detected context, the active mode and the search
// filter.
func RenderHeader(m models.AppModel) string {
	subject := "no context"
	switch {
	case m.Context.HasLanguage():
		subject = m.Context.Language
	case m.Context.HasApp():
		subject = m.Context.AppCategory
	}

	header := fmt.Sprintf("Ultimate Overlay · %s · %s", subject, m.Mode)
	if m.Searching || m.Search != "" {
		header += "  " + styles.SearchStyle().Render("/"+m.Search)
		if m.Searching {
			header += styles.SearchStyle().Render("▌")
		}
	}

	width := m.Width
	if width <= 0 {
		width = 60
	}
	return styles.HeaderStyle(width).Render(header)
}
