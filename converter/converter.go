package converter

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/jsontools/parser"
)

// Converter renders parsed documents back to bytes. The zero value produces
// compact JSON and two-space YAML; New returns the default used by the CLI,
// which indents JSON as well.
type Converter struct {
	// JSONIndent is the indent unit for JSON output.
	// Empty produces compact single-line JSON.
	JSONIndent string

	// YAMLIndent is the number of spaces per YAML nesting level.
	// Non-positive values fall back to 2.
	YAMLIndent int
}

// New creates a new Converter with default settings: two-space indented
// JSON and two-space YAML.
func New() *Converter {
	return &Converter{
		JSONIndent: "  ",
		YAMLIndent: 2,
	}
}

// JSON is a convenience function that renders the document as indented JSON
// with default settings. It's equivalent to New().JSON(doc).
func JSON(doc *parser.Node) ([]byte, error) {
	return New().JSON(doc)
}

// YAML is a convenience function that renders the document as YAML with
// default settings. It's equivalent to New().YAML(doc).
func YAML(doc *parser.Node) ([]byte, error) {
	return New().YAML(doc)
}

// Convert is a convenience function that renders the document in the given
// format with default settings. It's equivalent to New().Convert(doc, format).
func Convert(doc *parser.Node, format parser.SourceFormat) ([]byte, error) {
	return New().Convert(doc, format)
}

// Convert renders the document in the given format.
func (c *Converter) Convert(doc *parser.Node, format parser.SourceFormat) ([]byte, error) {
	switch format {
	case parser.SourceFormatJSON:
		return c.JSON(doc)
	case parser.SourceFormatYAML:
		return c.YAML(doc)
	default:
		return nil, fmt.Errorf("converter: unsupported output format %q", format)
	}
}

// JSON renders the document as JSON. Object field order and numeric source
// lexemes survive, so a document parsed from JSON renders back
// byte-for-byte modulo whitespace.
func (c *Converter) JSON(doc *parser.Node) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("converter: nil document")
	}

	compact, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("converter: render JSON: %w", err)
	}
	if c.JSONIndent == "" {
		return compact, nil
	}

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.Indent(buf, compact, "", c.JSONIndent); err != nil {
		return nil, fmt.Errorf("converter: indent JSON: %w", err)
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// YAML renders the document as YAML. Mapping key order follows the object
// field order; numeric source lexemes are kept where YAML can express them
// plainly. Output ends with a newline.
func (c *Converter) YAML(doc *parser.Node) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("converter: nil document")
	}

	buf := getBuffer()
	defer putBuffer(buf)

	enc := yaml.NewEncoder(buf)
	enc.SetIndent(c.yamlIndent())
	if err := enc.Encode(yamlTree(doc)); err != nil {
		return nil, fmt.Errorf("converter: render YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("converter: render YAML: %w", err)
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

func (c *Converter) yamlIndent() int {
	if c.YAMLIndent <= 0 {
		return 2
	}
	return c.YAMLIndent
}
