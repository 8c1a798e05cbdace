package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSearchTemplate(t *testing.T) {
	url := Resolve("Python", "List comprehension")
	assert.Equal(t, "https://docs.python.org/3/search.html?q=List+comprehension", url)
}

func TestResolveLandingPageWhenNoTemplate(t *testing.T) {
	assert.Equal(t, "https://www.typescriptlang.org/docs/", Resolve("TypeScript", "Generics"))
}

func TestResolveLandingPageWhenNoTitle(t *testing.T) {
	assert.Equal(t, "https://docs.python.org/3/", Resolve("python", ""))
}

func TestResolveCaseInsensitive(t *testing.T) {
	assert.Equal(t, Resolve("FIREFOX", ""), Resolve("firefox", ""))
	assert.NotEmpty(t, Resolve("FIREFOX", ""))
}

func TestResolveUnknown(t *testing.T) {
	assert.Empty(t, Resolve("", "anything"))
	assert.Empty(t, Resolve("cobol", ""))
}
