// Package prompt builds the text prompt sent to the model from a user
// template and the selected input text.
package prompt

import "strings"

// Placeholder marks where the selected text is substituted into a template.
const Placeholder = "{input}"

// Sanitize escapes backslashes and then double quotes so that a template
// wrapping the placeholder in quotes stays syntactically valid. Backslashes
// must be escaped first, otherwise the quote escapes would themselves be
// corrupted.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)

	return strings.ReplaceAll(s, `"`, `\"`)
}

// Render substitutes the sanitized input into the first occurrence of
// Placeholder in template. A template without the placeholder is returned
// unchanged and the input is effectively ignored.
func Render(template, input string) string {
	return strings.Replace(template, Placeholder, Sanitize(input), 1)
}
