package converter

import (
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/jsontools/parser"
)

// yamlTree converts a Node into a yaml.Node tree, preserving object field
// order and numeric source lexemes. Explicit tags let the emitter quote
// scalars whose plain form would resolve to a different type, so the
// string "007" round-trips as a string.
func yamlTree(n *parser.Node) *yaml.Node {
	switch n.Kind() {
	case parser.KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}

	case parser.KindBool:
		v := "false"
		if n.Bool() {
			v = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v}

	case parser.KindNumber:
		lexeme := n.Lexeme()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: numberTag(lexeme), Value: lexeme}

	case parser.KindText:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.Text()}

	case parser.KindArray:
		seq := &yaml.Node{
			Kind:    yaml.SequenceNode,
			Tag:     "!!seq",
			Content: make([]*yaml.Node, 0, n.Len()),
		}
		for i := 0; i < n.Len(); i++ {
			seq.Content = append(seq.Content, yamlTree(n.Item(i)))
		}
		return seq

	case parser.KindObject:
		m := &yaml.Node{
			Kind:    yaml.MappingNode,
			Tag:     "!!map",
			Content: make([]*yaml.Node, 0, n.Len()*2),
		}
		for i := 0; i < n.Len(); i++ {
			name, value := n.FieldAt(i)
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
				yamlTree(value),
			)
		}
		return m

	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// numberTag picks !!int for integer lexemes and !!float for lexemes with a
// fraction or exponent.
func numberTag(lexeme string) string {
	if strings.ContainsAny(lexeme, ".eE") {
		return "!!float"
	}
	return "!!int"
}
