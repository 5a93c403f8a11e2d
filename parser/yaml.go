package parser

import (
	"fmt"
	"math"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/jsontools/jsonerrors"
)

// decodeYAML parses data into a Node tree by walking the yaml.Node AST.
// Walking the AST rather than decoding into map[string]any keeps mapping
// key order, which plain YAML decoding would lose.
func decodeYAML(data []byte, maxDepth int) (*Node, []string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, nil, &jsonerrors.ParseError{
			Message: "invalid YAML",
			Cause:   err,
		}
	}
	if root.Kind == 0 {
		return nil, nil, &jsonerrors.ParseError{Message: "empty document"}
	}

	var warnings []string
	node, err := yamlToNode(&root, 0, maxDepth, &warnings)
	if err != nil {
		return nil, nil, err
	}
	return node, warnings, nil
}

func yamlToNode(y *yaml.Node, depth, maxDepth int, warnings *[]string) (*Node, error) {
	if depth > maxDepth {
		return nil, &jsonerrors.ParseError{
			Line:    y.Line,
			Column:  y.Column,
			Message: fmt.Sprintf("maximum nesting depth %d exceeded", maxDepth),
		}
	}

	switch y.Kind {
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return nil, &jsonerrors.ParseError{Message: "empty document"}
		}
		return yamlToNode(y.Content[0], depth, maxDepth, warnings)

	case yaml.AliasNode:
		// Self-referential anchors blow past maxDepth and are rejected there.
		return yamlToNode(y.Alias, depth+1, maxDepth, warnings)

	case yaml.ScalarNode:
		return yamlScalar(y, warnings)

	case yaml.SequenceNode:
		items := make([]*Node, 0, len(y.Content))
		for _, c := range y.Content {
			item, err := yamlToNode(c, depth+1, maxDepth, warnings)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return Array(items...), nil

	case yaml.MappingNode:
		fields := make([]Field, 0, len(y.Content)/2)
		for i := 0; i+1 < len(y.Content); i += 2 {
			key, value := y.Content[i], y.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return nil, &jsonerrors.ParseError{
					Line:    key.Line,
					Column:  key.Column,
					Message: "complex mapping keys are not supported",
				}
			}
			child, err := yamlToNode(value, depth+1, maxDepth, warnings)
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{Name: key.Value, Value: child})
		}
		return Object(fields...), nil

	default:
		return nil, &jsonerrors.ParseError{
			Line:    y.Line,
			Column:  y.Column,
			Message: fmt.Sprintf("unsupported YAML node kind %d", y.Kind),
		}
	}
}

func yamlScalar(y *yaml.Node, warnings *[]string) (*Node, error) {
	switch y.Tag {
	case "!!null":
		return Null(), nil

	case "!!bool":
		var b bool
		if err := y.Decode(&b); err != nil {
			return nil, &jsonerrors.ParseError{
				Line:    y.Line,
				Column:  y.Column,
				Message: fmt.Sprintf("invalid boolean %q", y.Value),
				Cause:   err,
			}
		}
		return Bool(b), nil

	case "!!int", "!!float":
		return yamlNumber(y)

	case "!!str":
		return Text(y.Value), nil

	default:
		// Timestamps, binary blobs, and custom tags have no JSON meaning;
		// their scalar text is carried through as a string.
		*warnings = append(*warnings, fmt.Sprintf(
			"line %d: scalar with tag %s treated as string", y.Line, y.Tag))
		return Text(y.Value), nil
	}
}

// yamlNumber converts a numeric YAML scalar. Lexemes already written as
// JSON numbers are kept verbatim and parsed exactly; YAML-only spellings
// (hex, octal, leading-dot floats) are re-rendered in decimal. Non-finite
// floats are rejected because JSON cannot express them.
func yamlNumber(y *yaml.Node) (*Node, error) {
	if jsonNumberRe.MatchString(y.Value) {
		n, err := Number(y.Value)
		if err == nil {
			return n, nil
		}
	}

	var i int64
	if err := y.Decode(&i); err == nil {
		return NumberFromInt(i), nil
	}

	var f float64
	if err := y.Decode(&f); err != nil {
		return nil, &jsonerrors.ParseError{
			Line:    y.Line,
			Column:  y.Column,
			Message: fmt.Sprintf("invalid number %q", y.Value),
			Cause:   err,
		}
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, &jsonerrors.ParseError{
			Line:    y.Line,
			Column:  y.Column,
			Message: fmt.Sprintf("non-finite number %q has no JSON representation", y.Value),
		}
	}
	n, err := NumberFromFloat(f)
	if err != nil {
		return nil, &jsonerrors.ParseError{
			Line:    y.Line,
			Column:  y.Column,
			Message: fmt.Sprintf("invalid number %q", y.Value),
			Cause:   err,
		}
	}
	return n, nil
}
