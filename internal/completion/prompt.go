package completion

import "fmt"

// BuildPrompt assembles the generation prompt from the selected text and the
// detected context. The template is fixed so identical selections always
// produce identical prompts.
func BuildPrompt(text, language, app string) string {
	switch {
	case language != "":
		return fmt.Sprintf("Explain the following %s code:\n%s", language, text)
	case app != "":
		return fmt.Sprintf("Explain the following text from %s:\n%s", app, text)
	default:
		return fmt.Sprintf("Explain the following text:\n%s", text)
	}
}
