package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdownStripsCodeFences(t *testing.T) {
	out := RenderMarkdown("before\n```python\nx = 1\n```\nafter")
	assert.NotContains(t, out, "```")
	assert.Contains(t, out, "x = 1")
	assert.Contains(t, out, "before")
	assert.Contains(t, out, "after")
}

func TestRenderMarkdownBullets(t *testing.T) {
	out := RenderMarkdown("- first\n* second")
	assert.Contains(t, out, "• first")
	assert.Contains(t, out, "• second")
	assert.NotContains(t, out, "- first")
}

func TestRenderMarkdownInlineCode(t *testing.T) {
	out := RenderMarkdown("use `len(xs)` here")
	assert.NotContains(t, out, "`")
	assert.Contains(t, out, "len(xs)")
}

func TestRenderMarkdownBold(t *testing.T) {
	out := RenderMarkdown("this is **important** text")
	assert.NotContains(t, out, "**")
	assert.Contains(t, out, "important")
}

func TestRenderMarkdownPlainTextPassesThrough(t *testing.T) {
	out := RenderMarkdown("one\ntwo")
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
}
