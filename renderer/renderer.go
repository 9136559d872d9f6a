package renderer

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/jessy-bgl/postman-collection-to-html/internal/issues"
	"github.com/jessy-bgl/postman-collection-to-html/internal/labels"
	"github.com/jessy-bgl/postman-collection-to-html/internal/prose"
	"github.com/jessy-bgl/postman-collection-to-html/internal/severity"
	"github.com/jessy-bgl/postman-collection-to-html/parser"
	"github.com/jessy-bgl/postman-collection-to-html/walker"
)

// Severity indicates the severity level of a render issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about rendering choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates degraded output, e.g. disambiguated anchors
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates input that could not be rendered
	SeverityError = severity.SeverityError
)

// RenderIssue represents a single render issue or limitation
type RenderIssue = issues.Issue

// RenderResult contains the results of rendering a collection to HTML
type RenderResult struct {
	// Document is the complete, self-contained HTML document
	Document string
	// Language is the language tag that was actually selected for labels
	Language string
	// GeneratedAt is the timestamp stamped into the document header
	GeneratedAt time.Time
	// Issues contains all render issues in the order they were observed
	Issues []RenderIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// Stats describes the rendered collection
	Stats parser.CollectionStats
	// Success is true if rendering completed without error-severity issues
	Success bool
}

// HasWarnings returns true if there are any warnings
func (r *RenderResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// Renderer converts a parsed collection into an HTML document.
//
// A Renderer holds no state across calls: each Render invocation is
// independent, so distinct instances (or one instance used sequentially) are
// safe for parallel pipelines.
type Renderer struct {
	// Language is the BCP-47 tag selecting the label translation table.
	// Empty means English. Unparsable tags are a configuration error;
	// parsable but unsupported tags fall back to the closest match.
	Language string
	// Logo is raw embeddable markup inserted verbatim into the header when
	// non-empty
	Logo string
	// DividerLevel is a heading level ("h1".."h6") that receives a visual
	// separator rule; empty disables dividers
	DividerLevel string
	// Prose renders description fields; nil selects the built-in renderer
	Prose prose.Renderer
	// CollapseThreshold is the response-body line count beyond which bodies
	// render collapsed (0 means the default of 10)
	CollapseThreshold int
	// MaxDepth bounds folder nesting (0 means the walker default)
	MaxDepth int
	// Now supplies the generation timestamp; nil means time.Now. Exists so
	// tests can pin the date stamp.
	Now func() time.Time
}

// New creates a new Renderer instance with default settings
func New() *Renderer {
	return &Renderer{}
}

// Render is a convenience function that renders a collection with default
// settings. It's equivalent to creating a Renderer with New() and calling
// Render().
func Render(col *parser.Collection) (*RenderResult, error) {
	return New().Render(col)
}

// RenderFile is a convenience function that parses and renders a collection
// file with default settings.
func RenderFile(path string) (*RenderResult, error) {
	return New().RenderFile(path)
}

// RenderFile parses a collection export file and renders it.
func (r *Renderer) RenderFile(path string) (*RenderResult, error) {
	p := parser.New()
	parseResult, err := p.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse collection: %w", err)
	}
	if len(parseResult.Errors) > 0 {
		return nil, fmt.Errorf("collection has %d structural error(s), cannot render: %v",
			len(parseResult.Errors), parseResult.Errors[0])
	}
	return r.Render(parseResult.Collection)
}

// Render renders a parsed collection into a complete HTML document.
//
// Configuration is validated before traversal begins; once rendering starts
// it always produces a full document. Traversal-local anomalies are absorbed
// into the result's issue list.
func (r *Renderer) Render(col *parser.Collection) (*RenderResult, error) {
	if col == nil {
		return nil, fmt.Errorf("renderer: nil Collection")
	}

	table, tag, err := r.validateConfig()
	if err != nil {
		return nil, err
	}

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	pr := r.Prose
	if pr == nil {
		pr = prose.Default()
	}
	threshold := r.CollapseThreshold
	if threshold == 0 {
		threshold = DefaultCollapseThreshold
	}

	a := &assembler{
		labels:        table,
		langTag:       tag,
		prose:         pr,
		logo:          r.Logo,
		dividerLevel:  r.DividerLevel,
		collapseAfter: threshold,
		generatedAt:   now(),
		anchorUsed:    make(map[string]bool),
	}

	walkOpts := []walker.Option{
		walker.WithFolderHandler(a.enterFolder),
		walker.WithFolderExitHandler(a.exitFolder),
		walker.WithEndpointHandler(a.renderEndpoint),
	}
	if r.MaxDepth > 0 {
		walkOpts = append(walkOpts, walker.WithMaxDepth(r.MaxDepth))
	}
	if err := walker.Walk(col, walkOpts...); err != nil {
		return nil, err
	}

	result := &RenderResult{
		Document:    a.assemble(col),
		Language:    tag.String(),
		GeneratedAt: a.generatedAt,
		Issues:      a.issues,
		Stats:       a.stats,
	}
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
	result.Success = true
	for _, issue := range result.Issues {
		if issue.Severity == SeverityError {
			result.Success = false
			break
		}
	}
	return result, nil
}

// validDividerLevels enumerates the accepted DividerLevel values.
var validDividerLevels = map[string]bool{
	"": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// validateConfig checks the renderer configuration at the boundary so
// configuration problems never surface mid-traversal.
func (r *Renderer) validateConfig() (labels.Table, language.Tag, error) {
	if !validDividerLevels[r.DividerLevel] {
		return labels.Table{}, language.Und,
			fmt.Errorf("invalid divider level %q (expected h1 through h6)", r.DividerLevel)
	}
	if r.CollapseThreshold < 0 {
		return labels.Table{}, language.Und,
			fmt.Errorf("collapse threshold must be positive, got %d", r.CollapseThreshold)
	}
	table, tag, err := labels.For(r.Language)
	if err != nil {
		return labels.Table{}, language.Und, err
	}
	return table, tag, nil
}
