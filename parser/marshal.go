package parser

import (
	"strconv"

	"go.yaml.in/yaml/v4"
)

// String renders the node as compact JSON. Object fields keep their
// insertion order and numbers keep their source lexemes, so a parsed
// document renders back the way it was written.
func (n *Node) String() string {
	return string(n.appendJSON(make([]byte, 0, 64)))
}

// MarshalJSON implements json.Marshaler with order-preserving output.
func (n *Node) MarshalJSON() ([]byte, error) {
	return n.appendJSON(make([]byte, 0, 64)), nil
}

func (n *Node) appendJSON(dst []byte) []byte {
	switch n.kind {
	case KindNull:
		return append(dst, "null"...)
	case KindBool:
		return strconv.AppendBool(dst, n.boolean)
	case KindNumber:
		return append(dst, n.lexeme...)
	case KindText:
		return appendJSONString(dst, n.text)
	case KindArray:
		dst = append(dst, '[')
		for i, it := range n.items {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = it.appendJSON(dst)
		}
		return append(dst, ']')
	case KindObject:
		dst = append(dst, '{')
		for i, f := range n.fields {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendJSONString(dst, f.Name)
			dst = append(dst, ':')
			dst = f.Value.appendJSON(dst)
		}
		return append(dst, '}')
	default:
		return append(dst, "null"...)
	}
}

const hexDigits = "0123456789abcdef"

// appendJSONString appends s as a JSON string literal. Unlike
// encoding/json it does not escape HTML characters, keeping rendered
// reports readable.
func appendJSONString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		dst = append(dst, s[start:i]...)
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		}
		start = i + 1
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}

// MarshalYAML implements yaml.Marshaler, producing a yaml.Node tree that
// keeps object field order and numeric lexemes intact.
func (n *Node) MarshalYAML() (any, error) {
	return n.yamlNode(), nil
}

func (n *Node) yamlNode() *yaml.Node {
	switch n.kind {
	case KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(n.boolean)}
	case KindNumber:
		tag := "!!float"
		if n.num.IsInt() && !hasFloatSyntax(n.lexeme) {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: n.lexeme}
	case KindText:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.text}
	case KindArray:
		content := make([]*yaml.Node, len(n.items))
		for i, it := range n.items {
			content[i] = it.yamlNode()
		}
		return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: content}
	case KindObject:
		content := make([]*yaml.Node, 0, len(n.fields)*2)
		for _, f := range n.fields {
			content = append(content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name},
				f.Value.yamlNode(),
			)
		}
		return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: content}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// hasFloatSyntax reports whether a JSON number lexeme is written in
// fractional or exponent form. "1.0" keeps a float tag even though its
// value is integral, so the YAML round trip preserves the author's intent.
func hasFloatSyntax(lexeme string) bool {
	for i := 0; i < len(lexeme); i++ {
		switch lexeme[i] {
		case '.', 'e', 'E':
			return true
		}
	}
	return false
}
