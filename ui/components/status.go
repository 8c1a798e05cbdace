package components

import (
	"fmt"
	"strings"

	"github.com/Jacquart08/ultimate-overlay/internal/models"
	"github.com/Jacquart08/ultimate-overlay/ui/styles"
)

// RenderStatus draws the status bar with the model lifecycle indicator.
func RenderStatus(m models.AppModel) string {
	width := m.Width
	if width <= 0 {
		width = 60
	}
	statusStyle := styles.StatusStyle(width)

	content := m.Status
	if m.Loading {
		content += strings.Repeat(".", m.LoadingDots)
	}

	switch m.Model.State {
	case models.ModelLoading:
		content += fmt.Sprintf("  |  AI: loading %d%%", m.Model.Progress)
	case models.ModelReady:
		content += "  |  AI: ready"
	case models.ModelFailed:
		content += "  |  AI: failed"
	default:
		content += "  |  AI: off"
	}

	return statusStyle.Render(content)
}
