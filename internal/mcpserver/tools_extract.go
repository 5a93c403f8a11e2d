package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/jsontools/converter"
	"github.com/erraggy/jsontools/jsonpath"
	"github.com/erraggy/jsontools/parser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type extractInput struct {
	Document documentInput `json:"document"         jsonschema:"The document to extract from"`
	Path     string        `json:"path,omitempty"   jsonschema:"Dotted path addressing the subtree (e.g. store.items[2].price); empty addresses the whole document"`
	Format   string        `json:"format,omitempty" jsonschema:"Output format: json (default) or yaml"`
}

type extractOutput struct {
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Format  string `json:"format"`
	Content string `json:"content"`
}

func handleExtract(_ context.Context, _ *mcp.CallToolRequest, input extractInput) (*mcp.CallToolResult, extractOutput, error) {
	result, err := input.Document.resolve()
	if err != nil {
		return errResult(err), extractOutput{}, nil
	}

	path, err := jsonpath.Parse(input.Path)
	if err != nil {
		return errResult(err), extractOutput{}, nil
	}
	node, err := path.Resolve(result.Document)
	if err != nil {
		return errResult(err), extractOutput{}, nil
	}

	var format parser.SourceFormat
	var data []byte
	switch input.Format {
	case "", "json":
		format = parser.SourceFormatJSON
		data, err = converter.JSON(node)
	case "yaml":
		format = parser.SourceFormatYAML
		data, err = converter.YAML(node)
	default:
		return errResult(fmt.Errorf("invalid format %q; valid values: json, yaml", input.Format)), extractOutput{}, nil
	}
	if err != nil {
		return errResult(err), extractOutput{}, nil
	}

	return nil, extractOutput{
		Path:    path.String(),
		Kind:    node.Kind().String(),
		Format:  string(format),
		Content: string(data),
	}, nil
}
