package renderer

import (
	"fmt"
	"html"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/jessy-bgl/postman-collection-to-html/internal/labels"
	"github.com/jessy-bgl/postman-collection-to-html/internal/prose"
	"github.com/jessy-bgl/postman-collection-to-html/parser"
	"github.com/jessy-bgl/postman-collection-to-html/walker"
)

// assembler accumulates the table-of-contents and body fragments during one
// traversal and wraps them with the page shell. Emitting both fragments from
// the same pass guarantees that every TOC anchor has exactly one matching
// section and vice versa.
type assembler struct {
	labels        labels.Table
	langTag       language.Tag
	prose         prose.Renderer
	logo          string
	dividerLevel  string
	collapseAfter int
	generatedAt   time.Time

	toc     strings.Builder
	content strings.Builder

	anchorUsed   map[string]bool
	issues       []RenderIssue
	codeBlockSeq int
	stats        parser.CollectionStats
}

// allocAnchor reserves an anchor identifier, appending an occurrence counter
// when the derived identifier is already taken. Duplicates are reported as
// warnings.
func (a *assembler) allocAnchor(base, displayPath string) string {
	anchor := base
	for i := 2; a.anchorUsed[anchor]; i++ {
		anchor = fmt.Sprintf("%s-%d", base, i)
	}
	if anchor != base {
		a.issues = append(a.issues, RenderIssue{
			Path:     displayPath,
			Message:  fmt.Sprintf("duplicate anchor %q disambiguated as %q", base, anchor),
			Severity: SeverityWarning,
		})
	}
	a.anchorUsed[anchor] = true
	return anchor
}

// headingLevel maps a nesting depth to a heading tag level. Top-level nodes
// get h2 (h1 is the page title); deeper levels flatten at h6.
func headingLevel(depth int) int {
	level := 2 + depth
	if level > 6 {
		level = 6
	}
	return level
}

// writeHeading emits a heading tag, attaching the divider class when the
// level matches the configured divider level.
func (a *assembler) writeHeading(b *strings.Builder, level int, class, inner string) {
	tag := fmt.Sprintf("h%d", level)
	if a.dividerLevel == tag {
		class += " divided"
	}
	fmt.Fprintf(b, "<%s class=%q>%s</%s>\n", tag, class, inner, tag)
}

// nodePath joins a context path and node name for anchor derivation without
// sharing the context's backing array.
func nodePath(ctx *walker.Context, name string) []string {
	path := make([]string, 0, len(ctx.Path)+1)
	path = append(path, ctx.Path...)
	path = append(path, name)
	return path
}

func displayPath(path []string) string {
	return strings.Join(path, "/")
}

// enterFolder opens the folder's TOC entry and content section.
func (a *assembler) enterFolder(f *parser.Folder, ctx *walker.Context) walker.Action {
	a.stats.FolderCount++
	if ctx.Depth+1 > a.stats.MaxDepth {
		a.stats.MaxDepth = ctx.Depth + 1
	}
	path := nodePath(ctx, f.Name)
	anchor := a.allocAnchor(FolderAnchor(path), displayPath(path))

	fmt.Fprintf(&a.toc, `<li class="toc-folder"><a href="#%s">%s</a>`, anchor, html.EscapeString(f.Name))
	if len(f.Items) > 0 {
		a.toc.WriteString("<ul>\n")
	}

	fmt.Fprintf(&a.content, `<section class="folder" id="%s">`+"\n", anchor)
	a.writeHeading(&a.content, headingLevel(ctx.Depth), "folder-title", html.EscapeString(f.Name))
	if f.Description != "" {
		fmt.Fprintf(&a.content, `<div class="folder-description">%s</div>`+"\n", a.prose.Render(f.Description))
	}
	return walker.Continue
}

// exitFolder closes what enterFolder opened.
func (a *assembler) exitFolder(f *parser.Folder, _ *walker.Context) {
	if len(f.Items) > 0 {
		a.toc.WriteString("</ul>")
	}
	a.toc.WriteString("</li>\n")
	a.content.WriteString("</section>\n")
}

// renderEndpoint emits the TOC entry and the full content fragment for one
// endpoint.
func (a *assembler) renderEndpoint(e *parser.Endpoint, ctx *walker.Context) walker.Action {
	a.stats.EndpointCount++
	a.stats.ResponseCount += len(e.Responses)
	anchor := a.allocAnchor(EndpointAnchor(ctx.Path, e.Name), displayPath(nodePath(ctx, e.Name)))

	fmt.Fprintf(&a.toc, `<li class="toc-endpoint"><a href="#%s">%s</a></li>`+"\n",
		anchor, html.EscapeString(e.Name))

	b := &a.content
	fmt.Fprintf(b, `<section class="endpoint" id="%s">`+"\n", anchor)
	a.writeHeading(b, headingLevel(ctx.Depth), "endpoint-title", html.EscapeString(e.Name))

	if e.Request == nil {
		fmt.Fprintf(b, `<p class="no-request">%s</p>`+"\n", html.EscapeString(a.labels.NoRequest))
		b.WriteString("</section>\n")
		return walker.Continue
	}
	req := e.Request

	method := req.Method
	if method == "" {
		method = "GET"
	}
	fmt.Fprintf(b, `<div class="endpoint-url"><span class="method %s">%s</span> <code>%s</code></div>`+"\n",
		strings.ToLower(method), html.EscapeString(strings.ToUpper(method)),
		html.EscapeString(displayURL(req.URL)))

	// The endpoint-level description wins over the request-level one.
	desc := e.Description
	if desc == "" {
		desc = req.Description
	}
	if desc != "" {
		fmt.Fprintf(b, `<div class="endpoint-description">%s</div>`+"\n", a.prose.Render(desc))
	}

	if params := displayableQuery(req.URL.Query); len(params) > 0 {
		a.writeBlockTitle(b, a.labels.QueryParams)
		rows := make([][]string, 0, len(params))
		for _, p := range params {
			rows = append(rows, []string{p.Key, CleanTemplateVariables(p.Value), p.Description})
		}
		a.writeTable(b, []string{a.labels.Key, a.labels.Value, a.labels.Description}, rows)
	}

	if len(req.Headers) > 0 {
		a.writeBlockTitle(b, a.labels.Headers)
		rows := make([][]string, 0, len(req.Headers))
		for _, h := range req.Headers {
			rows = append(rows, []string{h.Key, CleanTemplateVariables(h.Value)})
		}
		a.writeTable(b, []string{a.labels.Key, a.labels.Value}, rows)
	}

	a.writeRequestBody(b, req.Body)
	a.writeResponses(b, e.Responses)

	b.WriteString("</section>\n")
	return walker.Continue
}

// displayURL prefers the structured path-segment form over the raw string.
func displayURL(u parser.URL) string {
	if len(u.Path) > 0 {
		segs := make([]string, 0, len(u.Path))
		for _, seg := range u.Path {
			segs = append(segs, CleanTemplateVariables(seg))
		}
		return "/" + strings.Join(segs, "/")
	}
	return CleanTemplateVariables(u.Raw)
}

// displayableQuery filters out authentication artifacts that are not meant
// for display.
func displayableQuery(query []parser.KeyValue) []parser.KeyValue {
	var out []parser.KeyValue
	for _, q := range query {
		if strings.EqualFold(q.Key, "token") || strings.EqualFold(q.Key, "key") {
			continue
		}
		out = append(out, q)
	}
	return out
}

// writeRequestBody renders a raw payload as a code block or formdata as a
// table. Unknown modes and absent bodies render nothing.
func (a *assembler) writeRequestBody(b *strings.Builder, body *parser.Body) {
	if body == nil {
		return
	}
	switch body.Mode {
	case parser.BodyModeRaw:
		if body.Raw == "" {
			return
		}
		lang := body.Language
		if lang == "" {
			lang = DefaultLanguage
		}
		a.writeBlockTitle(b, a.labels.RequestBody)
		a.writeCode(b, lang, CleanTemplateVariables(body.Raw), false)
	case parser.BodyModeFormData:
		if len(body.FormData) == 0 {
			return
		}
		a.writeBlockTitle(b, a.labels.FormData)
		rows := make([][]string, 0, len(body.FormData))
		for _, f := range body.FormData {
			ftype := f.Type
			if ftype == "" {
				ftype = "text"
			}
			rows = append(rows, []string{f.Key, CleanTemplateVariables(f.Value), ftype})
		}
		a.writeTable(b, []string{a.labels.Key, a.labels.Value, a.labels.Type}, rows)
	}
}

// writeResponses renders each example response as its own labeled block.
func (a *assembler) writeResponses(b *strings.Builder, responses []parser.Response) {
	for i := range responses {
		resp := &responses[i]
		f := FormatResponse(resp, a.collapseAfter)

		label := a.labels.ResponseExample
		if resp.Name != "" {
			label += ": " + resp.Name
		}
		a.writeBlockTitle(b, label)

		if f.ContentType != DefaultContentType {
			fmt.Fprintf(b, `<div class="content-type">%s: <code>%s</code></div>`+"\n",
				html.EscapeString(a.labels.ContentType), html.EscapeString(f.ContentType))
		}
		if f.Body != "" {
			a.writeCode(b, f.Language, f.Body, f.Collapsed)
		}
	}
}

func (a *assembler) writeBlockTitle(b *strings.Builder, title string) {
	fmt.Fprintf(b, `<div class="block-title">%s</div>`+"\n", html.EscapeString(title))
}

// writeTable emits a table with the given column headers. Cells are escaped
// here, so callers pass raw values.
func (a *assembler) writeTable(b *strings.Builder, headers []string, rows [][]string) {
	b.WriteString("<table><thead><tr>")
	for _, h := range headers {
		fmt.Fprintf(b, "<th>%s</th>", html.EscapeString(h))
	}
	b.WriteString("</tr></thead><tbody>\n")
	for _, row := range rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(b, "<td>%s</td>", html.EscapeString(cell))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody></table>\n")
}

// writeCode emits a code block. Collapsed blocks get a bounded-height
// container, a fade affordance, and a toggle control; the full text is
// always present.
func (a *assembler) writeCode(b *strings.Builder, lang, body string, collapsed bool) {
	code := fmt.Sprintf(`<pre><code class="language-%s">%s</code></pre>`,
		html.EscapeString(lang), html.EscapeString(body))
	if !collapsed {
		b.WriteString(code)
		b.WriteString("\n")
		return
	}
	a.codeBlockSeq++
	id := fmt.Sprintf("code-%d", a.codeBlockSeq)
	fmt.Fprintf(b, `<div class="code-collapsed" id="%s">%s<div class="code-fade"></div></div>`+"\n", id, code)
	fmt.Fprintf(b, `<button type="button" class="code-toggle" data-target="%s" data-show="%s" data-collapse="%s">%s</button>`+"\n",
		id, html.EscapeString(a.labels.ShowAll), html.EscapeString(a.labels.Collapse),
		html.EscapeString(a.labels.ShowAll))
}

// assemble wraps the accumulated fragments with the page shell and returns
// the final document text.
func (a *assembler) assemble(col *parser.Collection) string {
	var b strings.Builder
	b.Grow(len(docStyle) + len(docScript) + a.toc.Len() + a.content.Len() + 1024)

	fmt.Fprintf(&b, "<!DOCTYPE html>\n<html lang=%q>\n<head>\n", a.langTag.String())
	b.WriteString("<meta charset=\"utf-8\">\n<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(col.Name))
	b.WriteString("<style>\n")
	b.WriteString(docStyle)
	b.WriteString("</style>\n</head>\n<body>\n")

	b.WriteString(`<header class="page-header">` + "\n")
	if a.logo != "" {
		fmt.Fprintf(&b, `<div class="logo">%s</div>`+"\n", a.logo)
	}
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(col.Name))
	fmt.Fprintf(&b, `<p class="generated">%s %s</p>`+"\n",
		html.EscapeString(a.labels.GeneratedOn), a.generatedAt.Format("02/01/2006"))
	b.WriteString("</header>\n")

	fmt.Fprintf(&b, `<section class="overview" id="overview">%s</section>`+"\n",
		a.prose.Render(col.Description))

	fmt.Fprintf(&b, `<nav class="toc" id="table-of-contents">`+"\n<h2>%s</h2>\n<ul>\n",
		html.EscapeString(a.labels.TableOfContents))
	b.WriteString(a.toc.String())
	b.WriteString("</ul>\n</nav>\n")

	b.WriteString(`<main class="content">` + "\n")
	b.WriteString(a.content.String())
	b.WriteString("</main>\n<script>\n")
	b.WriteString(docScript)
	b.WriteString("</script>\n</body>\n</html>\n")

	return b.String()
}
