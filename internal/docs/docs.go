// Package docs resolves "view documentation" links for resolved entries.
// Fixed lookup table; some targets template the entry title into a search
// URL, the rest point at the language or app landing page.
package docs

import (
	"net/url"
	"strings"
)

type target struct {
	base     string
	searchIn string // Templated search URL with %s for the query, optional
}

var targets = map[string]target{
	"python":     {base: "https://docs.python.org/3/", searchIn: "https://docs.python.org/3/search.html?q=%s"},
	"sql":        {base: "https://learn.microsoft.com/en-us/sql/t-sql/"},
	"r":          {base: "https://www.rdocumentation.org/", searchIn: "https://www.rdocumentation.org/search?q=%s"},
	"sas":        {base: "https://documentation.sas.com/"},
	"ttl":        {base: "https://www.w3.org/TR/turtle/"},
	"javascript": {base: "https://developer.mozilla.org/en-US/docs/Web/JavaScript", searchIn: "https://developer.mozilla.org/en-US/search?q=%s"},
	"typescript": {base: "https://www.typescriptlang.org/docs/"},
	"go":         {base: "https://pkg.go.dev/", searchIn: "https://pkg.go.dev/search?q=%s"},
	"rust":       {base: "https://doc.rust-lang.org/std/"},
	"java":       {base: "https://docs.oracle.com/en/java/"},
	"c++":        {base: "https://en.cppreference.com/w/"},
	"c#":         {base: "https://learn.microsoft.com/en-us/dotnet/csharp/"},
	"php":        {base: "https://www.php.net/manual/en/"},
	"ruby":       {base: "https://docs.ruby-lang.org/en/"},
	"swift":      {base: "https://docs.swift.org/swift-book/"},
	"excel":      {base: "https://support.microsoft.com/en-us/excel"},
	"word":       {base: "https://support.microsoft.com/en-us/word"},
	"firefox":    {base: "https://support.mozilla.org/en-US/products/firefox"},
	"chrome":     {base: "https://support.google.com/chrome/"},
	"steam":      {base: "https://help.steampowered.com/"},
}

// Resolve returns a documentation URL for the given language or app and
// entry title, or empty when nothing is known.
func Resolve(languageOrApp, title string) string {
	if languageOrApp == "" {
		return ""
	}
	t, ok := targets[strings.ToLower(languageOrApp)]
	if !ok {
		return ""
	}
	if t.searchIn != "" && title != "" {
		return strings.Replace(t.searchIn, "%s", url.QueryEscape(title), 1)
	}
	return t.base
}
