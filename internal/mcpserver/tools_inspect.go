package mcpserver

import (
	"context"

	"github.com/erraggy/jsontools/parser"
	"github.com/erraggy/jsontools/walker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type inspectInput struct {
	Document documentInput `json:"document" jsonschema:"The document to inspect"`
}

type inspectOutput struct {
	Format         string   `json:"format"`
	Encoding       string   `json:"encoding"`
	Kind           string   `json:"kind"`
	SourceBytes    int64    `json:"source_bytes"`
	TotalNodes     int      `json:"total_nodes"`
	Objects        int      `json:"objects"`
	Arrays         int      `json:"arrays"`
	Strings        int      `json:"strings"`
	Numbers        int      `json:"numbers"`
	Booleans       int      `json:"booleans"`
	Nulls          int      `json:"nulls"`
	Leaves         int      `json:"leaves"`
	MaxDepth       int      `json:"max_depth"`
	TopLevelFields []string `json:"top_level_fields,omitempty"`
	TopLevelItems  int      `json:"top_level_items,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
}

func handleInspect(_ context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	result, err := input.Document.resolve()
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	stats, err := walker.CollectStats(result.Document)
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	output := inspectOutput{
		Format:      string(result.SourceFormat),
		Encoding:    result.SourceEncoding,
		Kind:        result.Document.Kind().String(),
		SourceBytes: result.SourceSize,
		TotalNodes:  stats.Total,
		Objects:     stats.Objects,
		Arrays:      stats.Arrays,
		Strings:     stats.Strings,
		Numbers:     stats.Numbers,
		Booleans:    stats.Booleans,
		Nulls:       stats.Nulls,
		Leaves:      stats.Leaves(),
		MaxDepth:    stats.MaxDepth,
		Warnings:    result.Warnings,
	}

	switch result.Document.Kind() {
	case parser.KindObject:
		output.TopLevelFields = makeSlice[string](result.Document.Len())
		for _, f := range result.Document.Fields() {
			output.TopLevelFields = append(output.TopLevelFields, f.Name)
		}
	case parser.KindArray:
		output.TopLevelItems = result.Document.Len()
	}

	return nil, output, nil
}
