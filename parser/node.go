package parser

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
)

// Kind identifies the JSON value category held by a Node.
type Kind int

const (
	// KindNull is the JSON null value.
	KindNull Kind = iota
	// KindBool is a JSON boolean.
	KindBool
	// KindNumber is a JSON number of arbitrary precision.
	KindNumber
	// KindText is a JSON string.
	KindText
	// KindArray is a JSON array with significant element order.
	KindArray
	// KindObject is a JSON object with field insertion order preserved
	// for iteration but irrelevant to equality.
	KindObject
)

// String returns the JSON name of the kind, e.g. "object" or "string".
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindText:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsContainer reports whether the kind is an array or object.
func (k Kind) IsContainer() bool {
	return k == KindArray || k == KindObject
}

// Field is one name/value pair of an object Node.
type Field struct {
	// Name is the field name
	Name string
	// Value is the field value
	Value *Node
}

// Node is the canonical immutable representation of one JSON value:
// null, boolean, number, string, array, or object. Trees of Nodes are
// acyclic and finite; they originate from JSON or YAML documents, or
// from plain Go values via [FromValue].
//
// Nodes are constructed once by the parser (or the constructor functions
// below) and never modified afterwards, so a Node may be shared freely
// across concurrent comparisons without locking.
type Node struct {
	kind Kind

	boolean bool
	num     *big.Rat
	lexeme  string
	text    string

	items  []*Node
	fields []Field
	index  map[string]int
}

var (
	nullNode  = &Node{kind: KindNull}
	trueNode  = &Node{kind: KindBool, boolean: true}
	falseNode = &Node{kind: KindBool}
)

// Null returns the null Node.
func Null() *Node { return nullNode }

// Bool returns a boolean Node.
func Bool(v bool) *Node {
	if v {
		return trueNode
	}
	return falseNode
}

// Text returns a string Node.
func Text(v string) *Node {
	return &Node{kind: KindText, text: v}
}

// jsonNumberRe matches the JSON number grammar from RFC 8259.
var jsonNumberRe = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// Number returns a number Node parsed from its JSON source text.
// The lexeme must match the JSON number grammar; it is retained verbatim
// for rendering while the value is held as an exact decimal, so 1.0 and 1
// render differently but compare as equal.
func Number(lexeme string) (*Node, error) {
	if !jsonNumberRe.MatchString(lexeme) {
		return nil, fmt.Errorf("parser: invalid JSON number %q", lexeme)
	}
	r, ok := new(big.Rat).SetString(lexeme)
	if !ok {
		return nil, fmt.Errorf("parser: cannot parse number %q", lexeme)
	}
	return &Node{kind: KindNumber, num: r, lexeme: lexeme}, nil
}

// MustNumber is like Number but panics on an invalid lexeme.
// Intended for literals in tests and examples.
func MustNumber(lexeme string) *Node {
	n, err := Number(lexeme)
	if err != nil {
		panic(err)
	}
	return n
}

// NumberFromInt returns a number Node holding the given integer.
func NumberFromInt(v int64) *Node {
	return &Node{
		kind:   KindNumber,
		num:    new(big.Rat).SetInt64(v),
		lexeme: strconv.FormatInt(v, 10),
	}
}

// NumberFromFloat returns a number Node holding the given float.
// The value is interpreted through its shortest decimal representation,
// so NumberFromFloat(0.1) equals the parsed literal 0.1 exactly.
// NaN and infinities are rejected; they have no JSON representation.
func NumberFromFloat(v float64) (*Node, error) {
	lexeme := strconv.FormatFloat(v, 'g', -1, 64)
	r, ok := new(big.Rat).SetString(lexeme)
	if !ok {
		return nil, fmt.Errorf("parser: non-finite number %v", v)
	}
	return &Node{kind: KindNumber, num: r, lexeme: lexeme}, nil
}

// Array returns an array Node with the given elements in order.
// Nil elements are replaced by the null Node.
func Array(items ...*Node) *Node {
	elems := make([]*Node, len(items))
	for i, it := range items {
		if it == nil {
			it = nullNode
		}
		elems[i] = it
	}
	return &Node{kind: KindArray, items: elems}
}

// Object returns an object Node with the given fields in order.
// A repeated field name keeps its first position with the last value,
// matching how duplicate keys collapse during parsing.
// Nil field values are replaced by the null Node.
func Object(fields ...Field) *Node {
	ordered := make([]Field, 0, len(fields))
	index := make(map[string]int, len(fields))
	for _, f := range fields {
		if f.Value == nil {
			f.Value = nullNode
		}
		if at, ok := index[f.Name]; ok {
			ordered[at].Value = f.Value
			continue
		}
		index[f.Name] = len(ordered)
		ordered = append(ordered, f)
	}
	return &Node{kind: KindObject, fields: ordered, index: index}
}

// Kind returns the JSON value category of the node.
func (n *Node) Kind() Kind { return n.kind }

// IsContainer reports whether the node is an array or object.
func (n *Node) IsContainer() bool { return n.kind.IsContainer() }

// Bool returns the boolean value, or false if the node is not a boolean.
func (n *Node) Bool() bool {
	return n.kind == KindBool && n.boolean
}

// Text returns the string value, or "" if the node is not a string.
func (n *Node) Text() string {
	if n.kind != KindText {
		return ""
	}
	return n.text
}

// Number returns a copy of the exact numeric value, or nil if the node
// is not a number. The copy keeps the node immutable; mutating the
// returned value has no effect on the node.
func (n *Node) Number() *big.Rat {
	if n.kind != KindNumber {
		return nil
	}
	return new(big.Rat).Set(n.num)
}

// Lexeme returns the number's source text, or "" if the node is not a number.
func (n *Node) Lexeme() string {
	if n.kind != KindNumber {
		return ""
	}
	return n.lexeme
}

// Len returns the element count for arrays, the field count for objects,
// and 0 for every leaf.
func (n *Node) Len() int {
	switch n.kind {
	case KindArray:
		return len(n.items)
	case KindObject:
		return len(n.fields)
	default:
		return 0
	}
}

// Item returns the i-th array element, or nil if the node is not an array
// or the index is out of range.
func (n *Node) Item(i int) *Node {
	if n.kind != KindArray || i < 0 || i >= len(n.items) {
		return nil
	}
	return n.items[i]
}

// Items returns a copy of the array elements, or nil for non-arrays.
func (n *Node) Items() []*Node {
	if n.kind != KindArray {
		return nil
	}
	out := make([]*Node, len(n.items))
	copy(out, n.items)
	return out
}

// Field returns the value of the named object field and whether it exists.
func (n *Node) Field(name string) (*Node, bool) {
	if n.kind != KindObject {
		return nil, false
	}
	at, ok := n.index[name]
	if !ok {
		return nil, false
	}
	return n.fields[at].Value, true
}

// FieldAt returns the i-th object field in insertion order.
// It returns "" and nil if the node is not an object or i is out of range.
func (n *Node) FieldAt(i int) (string, *Node) {
	if n.kind != KindObject || i < 0 || i >= len(n.fields) {
		return "", nil
	}
	f := n.fields[i]
	return f.Name, f.Value
}

// Fields returns a copy of the object fields in insertion order,
// or nil for non-objects.
func (n *Node) Fields() []Field {
	if n.kind != KindObject {
		return nil
	}
	out := make([]Field, len(n.fields))
	copy(out, n.fields)
	return out
}
