package components

import (
	"strings"

	"github.com/Jacquart08/ultimate-overlay/internal/models"
	"github.com/Jacquart08/ultimate-overlay/ui/styles"
)

// RenderMenu draws the home-locked system menu.
func RenderMenu(items []models.MenuItem) string {
	var b strings.Builder
	itemStyle := styles.MenuItemStyle()
	descStyle := styles.DescriptionStyle()

	for _, item := range items {
		b.WriteString(itemStyle.Render(item.Label) + "\n")
		if item.Description != "" {
			b.WriteString(descStyle.Render(item.Description) + "\n")
		}
	}

	return b.String()
}
