package components

import (
	"strings"

	"github.com/Jacquart08/ultimate-overlay/internal/models"
	"github.com/Jacquart08/ultimate-overlay/ui/styles"
)

// RenderHomePage draws the app-specific home payload: recent items and
// quick actions grouped by section.
func RenderHomePage(page *models.HomePage) string {
	if page == nil {
		return styles.NotFoundStyle().Render("No home page for this app") + "\n"
	}

	var b strings.Builder
	headingStyle := styles.HomeHeadingStyle()
	itemStyle := styles.HomeItemStyle()

	b.WriteString(headingStyle.Render(page.AppName) + "\n")
	for _, section := range page.Sections {
		b.WriteString(headingStyle.Render(section.Heading) + "\n")
		for _, item := range section.Items {
			b.WriteString(itemStyle.Render("• "+item) + "\n")
		}
	}

	return b.String()
}
