package renderer

import (
	"strings"

	"github.com/segmentio/encoding/json"

	"github.com/jessy-bgl/postman-collection-to-html/parser"
)

const (
	// DefaultContentType is assumed when a response declares no content type.
	DefaultContentType = "text/plain"
	// DefaultLanguage is the preview language when nothing better is known.
	DefaultLanguage = "text"
)

// DefaultCollapseThreshold is the line count above which a response body is
// marked for collapsed display.
const DefaultCollapseThreshold = 10

// FormattedBody is the display form of a response body: a coarse content
// type, a preview language tag, the (possibly pretty-printed) text, and
// whether the body should render collapsed. Collapsing is purely a display
// hint; Body always holds the full text.
type FormattedBody struct {
	ContentType string
	Language    string
	Body        string
	Collapsed   bool
}

// FormatResponse determines the display content type and language for a
// response and reformats the body when it is structured. collapseAfter is
// the line count beyond which the body is marked collapsed; values <= 0 use
// DefaultCollapseThreshold.
func FormatResponse(resp *parser.Response, collapseAfter int) FormattedBody {
	f := FormattedBody{
		ContentType: DefaultContentType,
		Language:    DefaultLanguage,
		Body:        resp.Body,
	}

	if ct, ok := resp.Header("content-type"); ok && ct != "" {
		lower := strings.ToLower(ct)
		f.ContentType = lower
		switch {
		case strings.Contains(lower, "json"):
			f.Language = "json"
		case strings.Contains(lower, "xml"):
			f.Language = "xml"
		case strings.Contains(lower, "html"):
			f.Language = "html"
		case strings.Contains(lower, "javascript"):
			f.Language = "javascript"
		}
	}

	// An explicit preview hint wins over anything header-derived.
	if resp.PreviewLanguage != "" {
		f.Language = strings.ToLower(resp.PreviewLanguage)
	}

	if f.Language == "json" {
		f.Body = prettyJSON(f.Body)
	}

	if collapseAfter <= 0 {
		collapseAfter = DefaultCollapseThreshold
	}
	if countLines(f.Body) > collapseAfter {
		f.Collapsed = true
	}

	return f
}

// prettyJSON re-serializes a JSON body with 2-space indentation. A body that
// fails to parse is returned unchanged; a formatting failure is never an
// error.
func prettyJSON(body string) string {
	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return body
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return body
	}
	return string(out)
}

// countLines counts newline-delimited lines.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
