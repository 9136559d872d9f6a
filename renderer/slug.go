package renderer

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonWordRe    = regexp.MustCompile(`[^a-z0-9_-]`)
	hyphenRunRe  = regexp.MustCompile(`-{2,}`)
)

// Slugify turns arbitrary display text into a URL-fragment-safe identifier:
// lower-cased, whitespace runs replaced by a single hyphen, anything that is
// not a word character or hyphen stripped, hyphen runs collapsed, and
// leading/trailing hyphens trimmed. It is deterministic and idempotent.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = whitespaceRe.ReplaceAllString(s, "-")
	s = nonWordRe.ReplaceAllString(s, "")
	s = hyphenRunRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// FolderAnchor derives the anchor identifier for a folder from its full
// ancestor-name path, including the folder's own name.
func FolderAnchor(path []string) string {
	return joinAnchor("folder", path)
}

// EndpointAnchor derives the anchor identifier for an endpoint from its
// ancestor-name path and its own name.
func EndpointAnchor(path []string, name string) string {
	parts := make([]string, 0, len(path)+1)
	parts = append(parts, path...)
	parts = append(parts, name)
	return joinAnchor("endpoint", parts)
}

// joinAnchor joins the slugified path parts under a prefix, skipping parts
// that slugify to nothing so the result never carries empty segments.
func joinAnchor(prefix string, parts []string) string {
	segs := make([]string, 0, len(parts)+1)
	segs = append(segs, prefix)
	for _, part := range parts {
		if slug := Slugify(part); slug != "" {
			segs = append(segs, slug)
		}
	}
	return strings.Join(segs, "-")
}
