package jsonassert

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/erraggy/jsontools/parser"
)

// normalizeDocument converts any supported document representation into a
// Node. Strings, byte slices, and readers are parsed as JSON or YAML
// documents; everything else converts as a plain Go value.
func normalizeDocument(v any) (*parser.Node, error) {
	switch t := v.(type) {
	case nil:
		return parser.Null(), nil
	case *parser.Node:
		if t == nil {
			return parser.Null(), nil
		}
		return t, nil
	case string:
		result, err := parser.New().ParseString(t)
		if err != nil {
			return nil, err
		}
		return result.Document, nil
	case json.RawMessage:
		return parseDocument(t)
	case []byte:
		return parseDocument(t)
	case io.Reader:
		result, err := parser.New().ParseReader(t)
		if err != nil {
			return nil, err
		}
		return result.Document, nil
	default:
		return parser.FromValue(v)
	}
}

func parseDocument(data []byte) (*parser.Node, error) {
	result, err := parser.New().ParseBytes(data)
	if err != nil {
		return nil, err
	}
	return result.Document, nil
}

// normalizeExpected is normalizeDocument plus the expected-string
// convenience rule: a string that cannot possibly be a JSON document is
// taken as a JSON string value, so Equal(t, "y", actual) expects the
// string "y" rather than failing to parse it.
func normalizeExpected(v any) (*parser.Node, error) {
	if s, ok := v.(string); ok && !looksLikeDocument(s) {
		return parser.Text(s), nil
	}
	return normalizeDocument(v)
}

// looksLikeDocument reports whether a string plausibly encodes a JSON
// document: an object, array, or quoted string opener, a literal, or a
// number.
func looksLikeDocument(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	switch s[0] {
	case '{', '[', '"':
		return true
	}
	if s == "true" || s == "false" || s == "null" {
		return true
	}
	_, err := parser.Number(s)
	return err == nil
}
