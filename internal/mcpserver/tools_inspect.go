package mcpserver

import (
	"context"
	"strings"

	"github.com/jessy-bgl/postman-collection-to-html/parser"
	"github.com/jessy-bgl/postman-collection-to-html/walker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type inspectInput struct {
	Collection collectionInput `json:"collection"        jsonschema:"The collection export to inspect"`
	Outline    bool            `json:"outline,omitempty" jsonschema:"Include an indented tree outline of folders and endpoints"`
}

type inspectOutput struct {
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Schema        string   `json:"schema,omitempty"`
	Format        string   `json:"format"`
	FolderCount   int      `json:"folder_count"`
	EndpointCount int      `json:"endpoint_count"`
	ResponseCount int      `json:"response_count"`
	MaxDepth      int      `json:"max_depth"`
	Warnings      []string `json:"warnings,omitempty"`
	Outline       string   `json:"outline,omitempty"`
}

func handleInspect(_ context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	result, err := input.Collection.resolve()
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	col := result.Collection
	output := inspectOutput{
		Name:          col.Name,
		Description:   col.Description,
		Schema:        col.Schema,
		Format:        string(result.SourceFormat),
		FolderCount:   result.Stats.FolderCount,
		EndpointCount: result.Stats.EndpointCount,
		ResponseCount: result.Stats.ResponseCount,
		MaxDepth:      result.Stats.MaxDepth,
		Warnings:      result.Warnings,
	}

	if input.Outline {
		outline, err := buildOutline(col)
		if err != nil {
			return errResult(err), inspectOutput{}, nil
		}
		output.Outline = outline
	}

	return nil, output, nil
}

// buildOutline renders the folder/endpoint tree as indented text, one node
// per line: folder names end with a slash, endpoints show their method.
func buildOutline(col *parser.Collection) (string, error) {
	var sb strings.Builder
	err := walker.Walk(col,
		walker.WithFolderHandler(func(f *parser.Folder, ctx *walker.Context) walker.Action {
			sb.WriteString(strings.Repeat("  ", ctx.Depth))
			sb.WriteString(f.Name)
			sb.WriteString("/\n")
			return walker.Continue
		}),
		walker.WithEndpointHandler(func(e *parser.Endpoint, ctx *walker.Context) walker.Action {
			sb.WriteString(strings.Repeat("  ", ctx.Depth))
			method := "GET"
			if e.Request != nil && e.Request.Method != "" {
				method = e.Request.Method
			}
			sb.WriteString(method)
			sb.WriteString(" ")
			sb.WriteString(e.Name)
			sb.WriteString("\n")
			return walker.Continue
		}),
	)
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
