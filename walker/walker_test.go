package walker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jessy-bgl/postman-collection-to-html/parser"
)

// testTree builds:
//
//	Auth/
//	  Login
//	  Tokens/
//	    Refresh token
//	Health check
func testTree() *parser.Collection {
	return &parser.Collection{
		Name: "Test",
		Items: []parser.Node{
			&parser.Folder{
				Name: "Auth",
				Items: []parser.Node{
					&parser.Endpoint{Name: "Login"},
					&parser.Folder{
						Name: "Tokens",
						Items: []parser.Node{
							&parser.Endpoint{Name: "Refresh token"},
						},
					},
				},
			},
			&parser.Endpoint{Name: "Health check"},
		},
	}
}

// trace records every handler invocation as "event:name@depth[path]".
func trace(t *testing.T, col *parser.Collection, extra ...Option) []string {
	t.Helper()
	var events []string
	record := func(event, name string, ctx *Context) {
		events = append(events, fmt.Sprintf("%s:%s@%d[%s]", event, name, ctx.Depth, strings.Join(ctx.Path, "/")))
	}
	opts := []Option{
		WithFolderHandler(func(f *parser.Folder, ctx *Context) Action {
			record("enter", f.Name, ctx)
			return Continue
		}),
		WithFolderExitHandler(func(f *parser.Folder, ctx *Context) {
			record("exit", f.Name, ctx)
		}),
		WithEndpointHandler(func(e *parser.Endpoint, ctx *Context) Action {
			record("endpoint", e.Name, ctx)
			return Continue
		}),
	}
	opts = append(opts, extra...)
	require.NoError(t, Walk(col, opts...))
	return events
}

func TestWalk_Order(t *testing.T) {
	events := trace(t, testTree())
	assert.Equal(t, []string{
		"enter:Auth@0[]",
		"endpoint:Login@1[Auth]",
		"enter:Tokens@1[Auth]",
		"endpoint:Refresh token@2[Auth/Tokens]",
		"exit:Tokens@1[Auth]",
		"exit:Auth@0[]",
		"endpoint:Health check@0[]",
	}, events)
}

func TestWalk_SkipChildren(t *testing.T) {
	var events []string
	err := Walk(testTree(),
		WithFolderHandler(func(f *parser.Folder, _ *Context) Action {
			events = append(events, "enter:"+f.Name)
			if f.Name == "Auth" {
				return SkipChildren
			}
			return Continue
		}),
		WithFolderExitHandler(func(f *parser.Folder, _ *Context) {
			events = append(events, "exit:"+f.Name)
		}),
		WithEndpointHandler(func(e *parser.Endpoint, _ *Context) Action {
			events = append(events, "endpoint:"+e.Name)
			return Continue
		}),
	)
	require.NoError(t, err)

	// The skipped folder's exit still fires; its subtree does not.
	assert.Equal(t, []string{"enter:Auth", "exit:Auth", "endpoint:Health check"}, events)
}

func TestWalk_Stop(t *testing.T) {
	t.Run("from endpoint handler", func(t *testing.T) {
		var visited []string
		err := Walk(testTree(),
			WithEndpointHandler(func(e *parser.Endpoint, _ *Context) Action {
				visited = append(visited, e.Name)
				return Stop
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"Login"}, visited)
	})

	t.Run("from folder handler", func(t *testing.T) {
		entered := 0
		exited := 0
		err := Walk(testTree(),
			WithFolderHandler(func(_ *parser.Folder, _ *Context) Action {
				entered++
				return Stop
			}),
			WithFolderExitHandler(func(_ *parser.Folder, _ *Context) {
				exited++
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, 1, entered)
		assert.Zero(t, exited, "stop must not fire the stopped folder's exit")
	})
}

func TestWalk_MaxDepth(t *testing.T) {
	// Nest 5 folders; the innermost holds one endpoint.
	col := &parser.Collection{Name: "Deep"}
	inner := &parser.Folder{Name: "f5", Items: []parser.Node{&parser.Endpoint{Name: "leaf"}}}
	node := parser.Node(inner)
	for i := 4; i >= 1; i-- {
		node = &parser.Folder{Name: fmt.Sprintf("f%d", i), Items: []parser.Node{node}}
	}
	col.Items = []parser.Node{node}

	t.Run("within bound", func(t *testing.T) {
		assert.NoError(t, Walk(col, WithMaxDepth(5)))
	})

	t.Run("exceeds bound", func(t *testing.T) {
		err := Walk(col, WithMaxDepth(3))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "maximum depth")
	})

	t.Run("non-positive keeps default", func(t *testing.T) {
		assert.NoError(t, Walk(col, WithMaxDepth(0)))
		assert.NoError(t, Walk(col, WithMaxDepth(-1)))
	})
}

func TestWalk_NilCollection(t *testing.T) {
	assert.Error(t, Walk(nil))
}

func TestWalk_EmptyCollection(t *testing.T) {
	assert.NoError(t, Walk(&parser.Collection{Name: "Empty"}))
}

func TestWalk_PathIsolation(t *testing.T) {
	// Sibling folders at the same level must not see each other's names in
	// their children's paths.
	col := &parser.Collection{
		Name: "Siblings",
		Items: []parser.Node{
			&parser.Folder{Name: "A", Items: []parser.Node{&parser.Endpoint{Name: "a1"}}},
			&parser.Folder{Name: "B", Items: []parser.Node{&parser.Endpoint{Name: "b1"}}},
		},
	}
	paths := map[string]string{}
	err := Walk(col,
		WithEndpointHandler(func(e *parser.Endpoint, ctx *Context) Action {
			paths[e.Name] = strings.Join(ctx.Path, "/")
			return Continue
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a1": "A", "b1": "B"}, paths)
}

func TestAction(t *testing.T) {
	assert.True(t, Continue.IsValid())
	assert.True(t, SkipChildren.IsValid())
	assert.True(t, Stop.IsValid())
	assert.False(t, Action(99).IsValid())

	assert.Equal(t, "Continue", Continue.String())
	assert.Equal(t, "SkipChildren", SkipChildren.String())
	assert.Equal(t, "Stop", Stop.String())
	assert.Equal(t, "Action(99)", Action(99).String())
}
