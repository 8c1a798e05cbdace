package components

import (
	"strings"

	"github.com/Jacquart08/ultimate-overlay/internal/models"
	"github.com/Jacquart08/ultimate-overlay/internal/utils"
	"github.com/Jacquart08/ultimate-overlay/ui/styles"
)

// RenderAIContent draws the completion panel. While a generation is in
// flight it shows the query with animated dots; once delivered, the result
// replaces normal content until the user dismisses it with esc.
func RenderAIContent(m models.AppModel) string {
	var b strings.Builder
	queryStyle := styles.AIQueryStyle()

	if m.AIQuery != "" {
		b.WriteString(queryStyle.Render("» "+truncate(m.AIQuery, 60)) + "\n")
	}

	if m.Loading {
		b.WriteString("Generating" + strings.Repeat(".", m.LoadingDots) + "\n")
	} else if m.AIText != "" {
		b.WriteString(utils.RenderMarkdown(m.AIText) + "\n")
	}

	return styles.AIPanelStyle().Render(b.String()) + "\n"
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
