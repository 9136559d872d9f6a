package mcpserver

import (
	"context"
	"os"

	"github.com/jessy-bgl/postman-collection-to-html/renderer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type renderInput struct {
	Collection    collectionInput `json:"collection"               jsonschema:"The collection export to render"`
	Lang          string          `json:"lang,omitempty"           jsonschema:"Label language as a BCP-47 tag (default: en)"`
	Logo          string          `json:"logo,omitempty"           jsonschema:"Raw markup embedded verbatim in the document header"`
	Divider       string          `json:"divider,omitempty"        jsonschema:"Heading level that receives a separator rule (h1..h6)"`
	CollapseAfter int             `json:"collapse_after,omitempty" jsonschema:"Collapse response bodies longer than this many lines (default: 10)"`
	Output        string          `json:"output,omitempty"         jsonschema:"Write the document to this file instead of returning it inline"`
}

type renderOutput struct {
	Document      string   `json:"document,omitempty"`
	OutputFile    string   `json:"output_file,omitempty"`
	Language      string   `json:"language"`
	FolderCount   int      `json:"folder_count"`
	EndpointCount int      `json:"endpoint_count"`
	ResponseCount int      `json:"response_count"`
	Issues        []string `json:"issues,omitempty"`
	WarningCount  int      `json:"warning_count"`
	Success       bool     `json:"success"`
}

func handleRender(_ context.Context, _ *mcp.CallToolRequest, input renderInput) (*mcp.CallToolResult, renderOutput, error) {
	parseResult, err := input.Collection.resolve()
	if err != nil {
		return errResult(err), renderOutput{}, nil
	}

	r := renderer.New()
	r.Language = input.Lang
	if r.Language == "" {
		r.Language = cfg.Lang
	}
	r.Logo = input.Logo
	r.DividerLevel = input.Divider
	r.CollapseThreshold = input.CollapseAfter
	if r.CollapseThreshold == 0 {
		r.CollapseThreshold = cfg.CollapseAfter
	}

	result, err := r.Render(parseResult.Collection)
	if err != nil {
		return errResult(err), renderOutput{}, nil
	}

	output := renderOutput{
		Language:      result.Language,
		FolderCount:   result.Stats.FolderCount,
		EndpointCount: result.Stats.EndpointCount,
		ResponseCount: result.Stats.ResponseCount,
		WarningCount:  result.WarningCount,
		Success:       result.Success,
	}
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, issue.String())
	}

	if input.Output != "" {
		if err := os.WriteFile(input.Output, []byte(result.Document), 0600); err != nil {
			return errResult(err), renderOutput{}, nil
		}
		output.OutputFile = input.Output
	} else {
		output.Document = result.Document
	}

	return nil, output, nil
}
