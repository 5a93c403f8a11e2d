package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/jsontools/differ"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type compareInput struct {
	Expected     documentInput `json:"expected"                jsonschema:"The expected document"`
	Actual       documentInput `json:"actual"                  jsonschema:"The actual document to compare against the expected"`
	Path         string        `json:"path,omitempty"          jsonschema:"Dotted path addressing the part of the actual document to compare (e.g. store.items[2].price)"`
	Mode         string        `json:"mode,omitempty"          jsonschema:"Comparison mode: value (default) or structure"`
	Tolerance    string        `json:"tolerance,omitempty"     jsonschema:"Numeric tolerance as decimal text (e.g. 0.01); empty means exact equality"`
	IgnoreMarker string        `json:"ignore_marker,omitempty" jsonschema:"Expected string value that matches any actual value (default ${json-unit.ignore})"`
	ExtraFields  string        `json:"extra_fields,omitempty"  jsonschema:"Policy for actual-only object fields: strict (default) or lenient"`
	Offset       int           `json:"offset,omitempty"        jsonschema:"Skip this many differences before returning results"`
	Limit        int           `json:"limit,omitempty"         jsonschema:"Maximum differences to return (default 100)"`
}

type compareDifference struct {
	Path    string `json:"path"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

type compareOutput struct {
	Identical        bool                `json:"identical"`
	Mode             string              `json:"mode"`
	TotalDifferences int                 `json:"total_differences"`
	Returned         int                 `json:"returned"`
	Differences      []compareDifference `json:"differences,omitempty"`
	Report           string              `json:"report"`
}

func handleCompare(_ context.Context, _ *mcp.CallToolRequest, input compareInput) (*mcp.CallToolResult, compareOutput, error) {
	mode, err := parseCompareMode(input.Mode)
	if err != nil {
		return errResult(err), compareOutput{}, nil
	}

	opts, err := compareOptions(input)
	if err != nil {
		return errResult(err), compareOutput{}, nil
	}
	d, err := differ.New(opts...)
	if err != nil {
		return errResult(err), compareOutput{}, nil
	}

	expected, err := input.Expected.resolve()
	if err != nil {
		return errResult(fmt.Errorf("expected: %w", err)), compareOutput{}, nil
	}
	actual, err := input.Actual.resolve()
	if err != nil {
		return errResult(fmt.Errorf("actual: %w", err)), compareOutput{}, nil
	}

	var result *differ.Result
	if input.Path == "" {
		result = d.Compare(expected.Document, actual.Document)
	} else {
		result, err = d.CompareAt(expected.Document, actual.Document, input.Path)
		if err != nil {
			return errResult(err), compareOutput{}, nil
		}
	}

	var identical bool
	var diffs []differ.Difference
	var report string
	switch mode {
	case differ.ModeStructure:
		identical = result.SimilarStructure()
		diffs = result.StructureDifferences()
		report = result.StructureReport()
	default:
		identical = result.Similar()
		diffs = result.Differences()
		report = result.String()
	}

	page := paginate(diffs, input.Offset, input.Limit)
	output := compareOutput{
		Identical:        identical,
		Mode:             mode.String(),
		TotalDifferences: len(diffs),
		Returned:         len(page),
		Differences:      makeSlice[compareDifference](len(page)),
		Report:           report,
	}
	for _, df := range page {
		output.Differences = append(output.Differences, compareDifference{
			Path:    df.Path,
			Type:    string(df.Type),
			Message: df.Message,
		})
	}

	return nil, output, nil
}

func parseCompareMode(s string) (differ.Mode, error) {
	switch s {
	case "", "value":
		return differ.ModeValue, nil
	case "structure":
		return differ.ModeStructure, nil
	default:
		return 0, fmt.Errorf("invalid mode %q; valid values: value, structure", s)
	}
}

// compareOptions translates tool arguments into differ options. Tolerance
// stays in its textual form so 0.01 means exactly one hundredth.
func compareOptions(input compareInput) ([]differ.Option, error) {
	var opts []differ.Option
	if input.Tolerance != "" {
		opts = append(opts, differ.WithToleranceString(input.Tolerance))
	}
	if input.IgnoreMarker != "" {
		opts = append(opts, differ.WithIgnoreMarker(input.IgnoreMarker))
	}
	switch input.ExtraFields {
	case "":
	case "strict":
		opts = append(opts, differ.WithExtraFields(differ.ExtraFieldsStrict))
	case "lenient":
		opts = append(opts, differ.WithExtraFields(differ.ExtraFieldsLenient))
	default:
		return nil, fmt.Errorf("invalid extra_fields %q; valid values: strict, lenient", input.ExtraFields)
	}
	return opts, nil
}
