// Package pmhtml converts Postman-style API collection exports into a single
// self-contained HTML document for human browsing.
//
// The library consists of three primary packages:
//
//   - parser: Load a collection (JSON or YAML) into a typed folder/endpoint tree
//   - walker: Traverse the tree with per-node handlers
//   - renderer: Produce the final HTML document
//
// # Quick Start
//
// Render a collection export to HTML:
//
//	import "github.com/jessy-bgl/postman-collection-to-html/renderer"
//
//	result, err := renderer.RenderFile("collection.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = os.WriteFile("api.html", []byte(result.Document), 0600)
//
// Parse a collection without rendering:
//
//	import "github.com/jessy-bgl/postman-collection-to-html/parser"
//
//	p := parser.New()
//	result, err := p.Parse("collection.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Endpoints: %d\n", result.Stats.EndpointCount)
//
// Configure the output language and chrome:
//
//	r := renderer.New()
//	r.Language = "fr"
//	r.DividerLevel = "h2"
//	result, err := r.Render(parseResult.Collection)
//
// # Command-Line Interface
//
// The postman2html command wraps the library:
//
//	# Render a collection to HTML
//	postman2html render -o api.html collection.json
//
//	# Summarize a collection without rendering
//	postman2html inspect collection.json
//
//	# Serve the tools over MCP stdio
//	postman2html mcp
//
// Install the CLI:
//
//	go install github.com/jessy-bgl/postman-collection-to-html/cmd/postman2html@latest
//
// # Error Handling
//
// Malformed input and invalid configuration abort before any output is
// produced. Missing optional fields inside a valid collection never abort a
// render; the affected subsection is omitted and traversal continues. Render
// anomalies such as duplicate anchors are reported as warning issues on the
// RenderResult.
package pmhtml
