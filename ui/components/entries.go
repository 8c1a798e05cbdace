package components

import (
	"strings"

	"github.com/Jacquart08/ultimate-overlay/internal/models"
	"github.com/Jacquart08/ultimate-overlay/ui/styles"
)

// RenderEntries draws the resolved knowledge or shortcut list with pin
// markers and the cursor highlight.
func RenderEntries(m models.AppModel) string {
	if len(m.Entries) == 0 {
		return styles.NotFoundStyle().Render("Nothing to show") + "\n"
	}

	var b strings.Builder
	titleStyle := styles.EntryTitleStyle()
	selectedStyle := styles.SelectedEntryStyle()
	pinStyle := styles.PinStyle()
	descStyle := styles.DescriptionStyle()
	codeStyle := styles.CodeStyle()

	for i, entry := range m.Entries {
		if entry.Kind == models.EntryNotFound {
			b.WriteString(styles.NotFoundStyle().Render(entry.Title) + "\n")
			continue
		}

		marker := "  "
		if entry.Pinned {
			marker = pinStyle.Render("★ ")
		}

		title := entry.Title
		if i == m.Cursor {
			b.WriteString(marker + selectedStyle.Render(title) + "\n")
		} else {
			b.WriteString(marker + titleStyle.Render(title) + "\n")
		}

		if entry.Description != "" {
			b.WriteString(descStyle.Render(entry.Description) + "\n")
		}
		if i == m.Cursor && entry.Code != "" {
			b.WriteString(codeStyle.Render(entry.Code) + "\n")
		}
	}

	return b.String()
}
