package mcpserver

import (
	"fmt"

	"github.com/jessy-bgl/postman-collection-to-html/parser"
)

// collectionInput represents the two ways a collection can be provided to a
// tool. Exactly one of File or Content must be set.
type collectionInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a collection export file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline collection export content (JSON or YAML)"`
}

// resolve parses the collection from whichever input was provided.
// Structural validation errors abort: tools never render a broken tree.
func (c collectionInput) resolve() (*parser.ParseResult, error) {
	count := 0
	if c.File != "" {
		count++
	}
	if c.Content != "" {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file or content must be provided (got %d)", count)
	}

	if c.Content != "" && int64(len(c.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set POSTMAN2HTML_MAX_INLINE_SIZE to increase",
			len(c.Content), cfg.MaxInlineSize)
	}

	p := parser.New()
	p.MaxFileSize = cfg.MaxFileSize

	var result *parser.ParseResult
	var err error
	if c.File != "" {
		result, err = p.Parse(c.File)
	} else {
		// Empty path so the format is sniffed from content.
		result, err = p.ParseBytes([]byte(c.Content), "")
	}
	if err != nil {
		return nil, err
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("collection has %d structural error(s): %v", len(result.Errors), result.Errors[0])
	}
	return result, nil
}
