package walker

import (
	"fmt"

	"github.com/jessy-bgl/postman-collection-to-html/parser"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current folder but continues
	// with siblings. The folder's exit handler still fires.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Context carries the position of the node being visited.
type Context struct {
	// Path holds the display names of the node's ancestor folders, outermost
	// first. It excludes the node's own name.
	Path []string
	// Depth is the folder nesting level: top-level nodes are at depth 0.
	Depth int
}

// FolderHandler is called when entering each folder.
type FolderHandler func(folder *parser.Folder, ctx *Context) Action

// FolderExitHandler is called after a folder's children have been visited
// (or skipped). It has no action: the subtree is already complete.
type FolderExitHandler func(folder *parser.Folder, ctx *Context)

// EndpointHandler is called for each endpoint.
type EndpointHandler func(endpoint *parser.Endpoint, ctx *Context) Action

// Walker traverses collection trees and calls handlers for each node.
type Walker struct {
	onFolder     FolderHandler
	onFolderExit FolderExitHandler
	onEndpoint   EndpointHandler

	maxDepth int
}

// defaultMaxDepth bounds folder nesting; beyond this the input is considered
// pathological and the walk fails instead of degrading.
const defaultMaxDepth = 512

// New creates a new Walker with default settings.
func New() *Walker {
	return &Walker{
		maxDepth: defaultMaxDepth,
	}
}

// Option configures the Walker.
type Option func(*Walker)

// WithFolderHandler sets the handler called when entering a folder.
func WithFolderHandler(fn FolderHandler) Option {
	return func(w *Walker) { w.onFolder = fn }
}

// WithFolderExitHandler sets the handler called after a folder's subtree.
func WithFolderExitHandler(fn FolderExitHandler) Option {
	return func(w *Walker) { w.onFolderExit = fn }
}

// WithEndpointHandler sets the handler called for each endpoint.
func WithEndpointHandler(fn EndpointHandler) Option {
	return func(w *Walker) { w.onEndpoint = fn }
}

// WithMaxDepth sets the maximum folder nesting depth.
// Default is 512. If depth is <= 0, the default is kept.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}

// Walk traverses the collection and calls registered handlers for each node.
func Walk(col *parser.Collection, opts ...Option) error {
	if col == nil {
		return fmt.Errorf("walker: nil Collection")
	}

	w := New()
	for _, opt := range opts {
		opt(w)
	}

	return w.walk(col)
}

// frame is one pending unit of work on the explicit traversal stack: either
// a node to visit, or a folder exit to emit once its subtree is done.
type frame struct {
	node   parser.Node
	folder *parser.Folder // set on exit frames
	path   []string
	depth  int
	exit   bool
}

// walk performs the actual traversal iteratively. Children are pushed in
// reverse so they pop in source order.
func (w *Walker) walk(col *parser.Collection) error {
	stack := make([]frame, 0, len(col.Items))
	for i := len(col.Items) - 1; i >= 0; i-- {
		stack = append(stack, frame{node: col.Items[i]})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.exit {
			if w.onFolderExit != nil {
				w.onFolderExit(f.folder, &Context{Path: f.path, Depth: f.depth})
			}
			continue
		}

		if f.depth > w.maxDepth {
			return fmt.Errorf("walker: folder nesting exceeds maximum depth %d", w.maxDepth)
		}

		ctx := &Context{Path: f.path, Depth: f.depth}

		switch n := f.node.(type) {
		case *parser.Folder:
			action := Continue
			if w.onFolder != nil {
				action = w.onFolder(n, ctx)
			}
			if action == Stop {
				return nil
			}
			// The exit frame goes on first so it pops after the children.
			stack = append(stack, frame{folder: n, path: f.path, depth: f.depth, exit: true})
			if action != SkipChildren && len(n.Items) > 0 {
				childPath := make([]string, len(f.path)+1)
				copy(childPath, f.path)
				childPath[len(f.path)] = n.Name
				for i := len(n.Items) - 1; i >= 0; i-- {
					stack = append(stack, frame{node: n.Items[i], path: childPath, depth: f.depth + 1})
				}
			}

		case *parser.Endpoint:
			if w.onEndpoint != nil {
				if w.onEndpoint(n, ctx) == Stop {
					return nil
				}
			}

		default:
			return fmt.Errorf("walker: unsupported node type: %T", f.node)
		}
	}

	return nil
}
