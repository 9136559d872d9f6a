// Package prose defines the prose renderer capability used for description
// fields, plus a minimal built-in implementation.
//
// The interface exists so callers can plug in a full Markdown engine; the
// default handles the subset that commonly appears in collection
// descriptions (paragraphs, inline code, bold, italic, links) and always
// escapes input first.
package prose

import (
	"html"
	"regexp"
	"strings"
)

// Renderer converts lightweight markup text to HTML.
type Renderer interface {
	// Render returns an HTML fragment for the given markup text. Empty or
	// whitespace-only input yields a safe placeholder paragraph.
	Render(text string) string
}

// Default returns the built-in renderer.
func Default() Renderer {
	return defaultRenderer{}
}

// Placeholder is what the default renderer emits for empty input.
const Placeholder = `<p class="text-muted">No description provided.</p>`

type defaultRenderer struct{}

var (
	codeRe   = regexp.MustCompile("`([^`]+)`")
	boldRe   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe = regexp.MustCompile(`\*([^*]+)\*`)
	linkRe   = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
	paraRe   = regexp.MustCompile(`\n[ \t]*\n`)
)

func (defaultRenderer) Render(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Placeholder
	}

	var b strings.Builder
	for _, para := range paraRe.Split(trimmed, -1) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(renderInline(para))
		b.WriteString("</p>\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// renderInline escapes a paragraph and applies the inline markup rules.
// Escaping happens first so markup replacements never introduce raw input
// into the output.
func renderInline(para string) string {
	s := html.EscapeString(para)
	s = codeRe.ReplaceAllString(s, "<code>$1</code>")
	s = boldRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicRe.ReplaceAllString(s, "<em>$1</em>")
	s = linkRe.ReplaceAllString(s, `<a href="$2">$1</a>`)
	s = strings.ReplaceAll(s, "\n", "<br>\n")
	return s
}
