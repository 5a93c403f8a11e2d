package parser

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"github.com/erraggy/jsontools/internal/maputil"
	"github.com/erraggy/jsontools/jsonerrors"
)

// FromValue converts a plain Go value into a Node using the default parser.
// See [Parser.FromValue] for the supported types.
func FromValue(v any) (*Node, error) {
	return New().FromValue(v)
}

// FromValue converts a plain Go value into a Node. Supported directly:
// nil, bool, string, all integer and float kinds, json.Number, *big.Int,
// *big.Rat, []any, map[string]any, []*Node, map[string]*Node, []Field, and
// *Node (returned as is). []byte and json.RawMessage are treated as raw
// JSON documents. Anything else goes through encoding/json marshaling, so
// struct tags apply.
//
// Go maps have no iteration order; their fields are added in sorted key
// order for deterministic output. Comparison is unaffected since object
// field order never influences equality.
func (p *Parser) FromValue(v any) (*Node, error) {
	return p.fromValue(v, 0)
}

func (p *Parser) fromValue(v any, depth int) (*Node, error) {
	if depth > p.maxDepth() {
		return nil, &jsonerrors.ParseError{
			Message: fmt.Sprintf("maximum nesting depth %d exceeded", p.maxDepth()),
		}
	}

	switch t := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		if t == nil {
			return Null(), nil
		}
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return Text(t), nil

	case json.Number:
		n, err := Number(t.String())
		if err != nil {
			return nil, &jsonerrors.ParseError{
				Message: fmt.Sprintf("invalid number %q", t.String()),
				Cause:   err,
			}
		}
		return n, nil
	case float64:
		return floatNode(t, 64)
	case float32:
		return floatNode(float64(t), 32)
	case int:
		return NumberFromInt(int64(t)), nil
	case int8:
		return NumberFromInt(int64(t)), nil
	case int16:
		return NumberFromInt(int64(t)), nil
	case int32:
		return NumberFromInt(int64(t)), nil
	case int64:
		return NumberFromInt(t), nil
	case uint:
		return uintNode(uint64(t)), nil
	case uint8:
		return NumberFromInt(int64(t)), nil
	case uint16:
		return NumberFromInt(int64(t)), nil
	case uint32:
		return NumberFromInt(int64(t)), nil
	case uint64:
		return uintNode(t), nil
	case *big.Int:
		return &Node{kind: KindNumber, num: new(big.Rat).SetInt(t), lexeme: t.String()}, nil
	case *big.Rat:
		return ratNode(t)

	case json.RawMessage:
		return decodeJSON(t, p.maxDepth())
	case []byte:
		return decodeJSON(t, p.maxDepth())

	case []any:
		items := make([]*Node, 0, len(t))
		for i, el := range t {
			n, err := p.fromValue(el, depth+1)
			if err != nil {
				return nil, fmt.Errorf("parser: element %d: %w", i, err)
			}
			items = append(items, n)
		}
		return Array(items...), nil

	case map[string]any:
		fields := make([]Field, 0, len(t))
		for _, k := range maputil.SortedKeys(t) {
			n, err := p.fromValue(t[k], depth+1)
			if err != nil {
				return nil, fmt.Errorf("parser: field %q: %w", k, err)
			}
			fields = append(fields, Field{Name: k, Value: n})
		}
		return Object(fields...), nil

	case []*Node:
		return Array(t...), nil
	case map[string]*Node:
		fields := make([]Field, 0, len(t))
		for _, k := range maputil.SortedKeys(t) {
			fields = append(fields, Field{Name: k, Value: t[k]})
		}
		return Object(fields...), nil
	case []Field:
		return Object(t...), nil

	default:
		// Fall back to encoding/json so struct tags and custom marshalers
		// are honored. Map keys come back sorted, matching the cases above.
		data, err := json.Marshal(v)
		if err != nil {
			return nil, &jsonerrors.ParseError{
				Message: fmt.Sprintf("unsupported value of type %T", v),
				Cause:   err,
			}
		}
		return decodeJSON(data, p.maxDepth())
	}
}

// floatNode builds a number Node from a float through its shortest decimal
// representation, so FromValue(0.1) equals the parsed literal 0.1 exactly.
func floatNode(v float64, bitSize int) (*Node, error) {
	lexeme := strconv.FormatFloat(v, 'g', -1, bitSize)
	r, ok := new(big.Rat).SetString(lexeme)
	if !ok {
		return nil, &jsonerrors.ParseError{
			Message: fmt.Sprintf("non-finite number %v has no JSON representation", v),
		}
	}
	return &Node{kind: KindNumber, num: r, lexeme: lexeme}, nil
}

func uintNode(v uint64) *Node {
	return &Node{
		kind:   KindNumber,
		num:    new(big.Rat).SetUint64(v),
		lexeme: strconv.FormatUint(v, 10),
	}
}

// ratNode builds a number Node from an exact rational. The value must
// have a finite decimal expansion; 1/3 cannot be written as a JSON number
// and is rejected.
func ratNode(r *big.Rat) (*Node, error) {
	if r == nil {
		return Null(), nil
	}
	lexeme, ok := decimalLexeme(r)
	if !ok {
		return nil, &jsonerrors.ParseError{
			Message: fmt.Sprintf("%s has no finite decimal representation", r.RatString()),
		}
	}
	return &Node{kind: KindNumber, num: new(big.Rat).Set(r), lexeme: lexeme}, nil
}

// decimalLexeme renders a rational as an exact decimal, reporting false
// when the denominator has prime factors other than 2 and 5.
func decimalLexeme(r *big.Rat) (string, bool) {
	if r.IsInt() {
		return r.Num().String(), true
	}
	denom := new(big.Int).Set(r.Denom())
	two := big.NewInt(2)
	five := big.NewInt(5)
	ten := big.NewInt(10)
	rem := new(big.Int)
	prec := 0
	for {
		if denom.Cmp(big.NewInt(1)) == 0 {
			break
		}
		quo := new(big.Int)
		if quo.QuoRem(denom, ten, rem); rem.Sign() == 0 {
			denom.Set(quo)
			prec++
			continue
		}
		if quo.QuoRem(denom, two, rem); rem.Sign() == 0 {
			denom.Set(quo)
			prec++
			continue
		}
		if quo.QuoRem(denom, five, rem); rem.Sign() == 0 {
			denom.Set(quo)
			prec++
			continue
		}
		return "", false
	}
	return r.FloatString(prec), true
}
