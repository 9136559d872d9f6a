// Package walker traverses a parsed collection tree and calls handlers for
// each folder and endpoint node.
//
// The walk is a single depth-first pass in source order. Handlers return an
// Action that controls traversal: Continue descends normally, SkipChildren
// suppresses a folder's children, and Stop halts the walk immediately.
//
// Example, counting endpoints per top-level folder:
//
//	err := walker.Walk(col,
//		walker.WithEndpointHandler(func(e *parser.Endpoint, ctx *walker.Context) walker.Action {
//			if len(ctx.Path) > 0 {
//				counts[ctx.Path[0]]++
//			}
//			return walker.Continue
//		}),
//	)
//
// The walker never mutates the tree. Traversal is implemented with an
// explicit frame stack rather than recursion, so pathological nesting depth
// cannot overflow the call stack; a configurable depth bound turns such
// inputs into an error before any node beyond the bound is visited.
package walker
