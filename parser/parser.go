package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/segmentio/encoding/json"
	"go.yaml.in/yaml/v4"
)

// defaultMaxFileSize bounds collection input to 10MB unless overridden.
const defaultMaxFileSize = 10 * 1024 * 1024

// Parser handles collection export parsing.
type Parser struct {
	// ValidateStructure determines whether to perform basic structure
	// validation (collection name present, schema declared)
	ValidateStructure bool
	// MaxFileSize is the maximum input size in bytes (0 means the 10MB default)
	MaxFileSize int64
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		ValidateStructure: true,
	}
}

// SourceFormat represents the format of the source collection file
type SourceFormat string

const (
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
)

// CollectionStats contains statistical information about a parsed collection.
type CollectionStats struct {
	// FolderCount is the number of folder nodes
	FolderCount int
	// EndpointCount is the number of endpoint nodes
	EndpointCount int
	// ResponseCount is the total number of example responses
	ResponseCount int
	// MaxDepth is the deepest folder nesting level: 0 when no folders exist,
	// 1 when only top-level folders exist, and so on
	MaxDepth int
}

// ParseResult contains the parsed collection and metadata.
//
// Callers should treat the Collection as read-only: the rendering pipeline
// makes a single top-to-bottom traversal and never mutates the tree.
type ParseResult struct {
	// SourcePath is the input path the collection was read from; reader-based
	// parses synthesize a name ending in the detected format
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// Collection is the normalized folder/endpoint tree
	Collection *Collection
	// Errors contains structural validation errors
	Errors []error
	// Warnings contains non-fatal issues observed during parsing
	Warnings []string
	// Stats contains statistical information about the collection
	Stats CollectionStats
	// LoadTime is the time taken to load and decode the source
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

// Parse reads and parses a collection export from a file path.
func (p *Parser) Parse(path string) (*ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading collection: %w", err)
	}
	return p.ParseBytes(data, path)
}

// ParseReader reads and parses a collection export from r, typically stdin.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	limit := p.maxFileSize()
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading collection: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("collection exceeds maximum size of %d bytes", limit)
	}
	format := detectFormat("", data)
	return p.ParseBytes(data, "ParseReader."+string(format))
}

// ParseBytes parses a collection export from an in-memory buffer.
// sourcePath is used for format detection by extension and for reporting.
func (p *Parser) ParseBytes(data []byte, sourcePath string) (*ParseResult, error) {
	start := time.Now()

	if limit := p.maxFileSize(); int64(len(data)) > limit {
		return nil, fmt.Errorf("collection exceeds maximum size of %d bytes", limit)
	}

	format := detectFormat(sourcePath, data)

	jsonData := data
	if format == SourceFormatYAML {
		var err error
		jsonData, err = yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("parsing YAML collection: %w", err)
		}
	}

	var raw rawCollection
	dec := json.NewDecoder(bytes.NewReader(jsonData))
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing collection: %w", err)
	}

	col, stats := normalize(&raw)

	result := &ParseResult{
		SourcePath:   sourcePath,
		SourceFormat: format,
		Collection:   col,
		Stats:        stats,
		LoadTime:     time.Since(start),
		SourceSize:   int64(len(data)),
	}

	if p.ValidateStructure {
		p.validate(&raw, result)
	}

	return result, nil
}

// validate performs minimal shape checks on the decoded export. Failures are
// collected on the result rather than returned, matching the boundary-error
// policy: callers decide whether errors abort.
func (p *Parser) validate(raw *rawCollection, result *ParseResult) {
	if raw.Info.Name == "" {
		result.Errors = append(result.Errors, fmt.Errorf("collection info.name is required"))
	}
	if raw.Info.Schema == "" {
		result.Warnings = append(result.Warnings, "collection declares no schema; assuming v2.1 export shape")
	}
}

// maxFileSize returns the configured input bound or the default.
func (p *Parser) maxFileSize() int64 {
	if p.MaxFileSize > 0 {
		return p.MaxFileSize
	}
	return defaultMaxFileSize
}

// detectFormat determines the source format from the file extension, falling
// back to content sniffing: JSON documents start with '{' or '['.
func detectFormat(path string, data []byte) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// yamlToJSON converts a YAML document to JSON so both formats share one
// decode path.
func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("converting YAML to JSON: %w", err)
	}
	return out, nil
}

// FormatBytes renders a byte count in a human-friendly unit for CLI output.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
