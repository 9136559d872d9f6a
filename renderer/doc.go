// Package renderer turns a parsed collection tree into one self-contained
// HTML document.
//
// The pipeline is a single deterministic pass: a depth-first traversal emits
// a table-of-contents fragment and a body fragment keyed by identical anchor
// identifiers, then the document assembler wraps both with the overview
// section and the static page shell (embedded CSS and the expand/collapse
// script). Nothing in the output references external files.
//
// Rendering never fails on missing optional fields: an endpoint without a
// request renders a placeholder, a response body that claims JSON but does
// not parse is shown verbatim, and so on. Only boundary problems (nil
// collection, invalid configuration, unreadable input) return errors.
//
// Example:
//
//	r := renderer.New()
//	r.Language = "fr"
//	result, err := r.RenderFile("collection.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, issue := range result.Issues {
//		log.Println(issue)
//	}
//	_ = os.WriteFile("api.html", []byte(result.Document), 0600)
package renderer
