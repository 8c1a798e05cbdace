package utils

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Markdown styles
func CodeBlockStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Padding(0, 1).
		MarginLeft(2)
}

func BoldStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true)
}

func ListStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		MarginLeft(2)
}

var (
	inlineCodeRegex = regexp.MustCompile("`[^`]+`")
	boldRegex       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
)

// RenderMarkdown applies lightweight markdown rendering to model output.
// Completions are short, so only code fences, inline code, bold and list
// bullets are handled.
func RenderMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	var result strings.Builder

	inCodeBlock := false
	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			continue
		}
		if inCodeBlock {
			result.WriteString(CodeBlockStyle().Render(line) + "\n")
			continue
		}

		if item, found := strings.CutPrefix(line, "- "); found {
			result.WriteString(ListStyle().Render("• "+renderInline(item)) + "\n")
			continue
		}
		if item, found := strings.CutPrefix(line, "* "); found {
			result.WriteString(ListStyle().Render("• "+renderInline(item)) + "\n")
			continue
		}

		result.WriteString(renderInline(line) + "\n")
	}

	return strings.TrimSuffix(result.String(), "\n")
}

func renderInline(line string) string {
	line = inlineCodeRegex.ReplaceAllStringFunc(line, func(match string) string {
		return CodeBlockStyle().Render(strings.Trim(match, "`"))
	})
	line = boldRegex.ReplaceAllStringFunc(line, func(match string) string {
		return BoldStyle().Render(strings.Trim(match, "*"))
	})
	return line
}
