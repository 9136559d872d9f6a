// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes postman2html capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	pmhtml "github.com/jessy-bgl/postman-collection-to-html"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `postman2html MCP server — parses API collection exports (JSON or YAML) and renders them as self-contained HTML documents.

Configuration: All defaults are configurable via POSTMAN2HTML_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- POSTMAN2HTML_LANG (default: en) — default label language for render
- POSTMAN2HTML_COLLAPSE_AFTER (default: 10) — default response-body collapse threshold in lines
- POSTMAN2HTML_MAX_FILE_SIZE (default: 10485760) — maximum collection size in bytes
- POSTMAN2HTML_MAX_INLINE_SIZE (default: 1048576) — maximum inline content size in bytes

Collections can be supplied by file path or as inline content. Rendered documents embed all styles and scripts; no network access is needed to view them.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "postman2html", Version: pmhtml.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Render an API collection export as a self-contained HTML document. Accepts a file path or inline content (JSON or YAML). Options: lang (BCP-47 label language), divider (h1..h6 heading separator), collapse_after (response-body line threshold). Returns the document plus render statistics and any issues. Default language and collapse threshold are configurable via POSTMAN2HTML_LANG and POSTMAN2HTML_COLLAPSE_AFTER env vars.",
	}, handleRender)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Parse an API collection export and return a structural summary: name, schema, folder/endpoint/response counts, nesting depth, and an indented tree outline. Use this to explore a collection before rendering it.",
	}, handleInspect)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
