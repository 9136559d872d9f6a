// Package issues provides a unified issue type for problems observed while
// rendering a collection.
package issues

import (
	"fmt"

	"github.com/jessy-bgl/postman-collection-to-html/internal/severity"
)

// Issue represents a single problem found during rendering.
type Issue struct {
	// Path locates the node the issue concerns, as a slash-joined display
	// path (e.g. "Users/Get User")
	Path string
	// Message describes the issue
	Message string
	// Severity is the issue's severity level
	Severity severity.Severity
}

// String formats the issue for display.
func (i Issue) String() string {
	if i.Path == "" {
		return fmt.Sprintf("[%s] %s", i.Severity, i.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Path, i.Message)
}
