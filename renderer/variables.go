package renderer

import "regexp"

var templateVarRe = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// CleanTemplateVariables replaces every {{name}} placeholder with just the
// inner name, leaving all other text untouched. This is cosmetic
// normalization for display, not variable resolution: the placeholder's own
// name becomes the displayed text.
func CleanTemplateVariables(text string) string {
	return templateVarRe.ReplaceAllString(text, "$1")
}
