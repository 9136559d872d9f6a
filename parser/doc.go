// Package parser loads Postman-style API collection exports into a typed
// folder/endpoint tree.
//
// The parser accepts JSON or YAML input, detects the format, and normalizes
// the loosely-shaped export into an explicit tagged union: every entry in a
// collection is either a *Folder (it carries an "item" attribute, even an
// empty one) or an *Endpoint. The classification happens exactly once, at
// decode time; downstream consumers switch on the Node variants and never
// re-inspect raw shapes.
//
// Basic usage:
//
//	p := parser.New()
//	result, err := p.Parse("collection.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if len(result.Errors) > 0 {
//		log.Fatalf("invalid collection: %v", result.Errors[0])
//	}
//	fmt.Printf("%s: %d endpoints\n", result.Collection.Name, result.Stats.EndpointCount)
//
// The parsed tree is read-only by convention: one parse, one traversal, no
// mutation.
package parser
