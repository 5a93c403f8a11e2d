package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/erraggy/jsontools/jsonerrors"
)

// decodeJSON parses data into a Node tree using a token walk. Decoding
// through tokens rather than map[string]any keeps object field order and
// the original numeric lexemes, both of which map decoding would lose.
func decodeJSON(data []byte, maxDepth int) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	node, err := decodeJSONValue(dec, data, 0, maxDepth)
	if err != nil {
		return nil, err
	}

	// Only whitespace may follow the document.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		line, col := lineCol(data, dec.InputOffset())
		return nil, &jsonerrors.ParseError{
			Line:    line,
			Column:  col,
			Message: "unexpected data after top-level value",
		}
	}
	return node, nil
}

// decodeJSONValue decodes one JSON value starting at the decoder's position.
func decodeJSONValue(dec *json.Decoder, data []byte, depth, maxDepth int) (*Node, error) {
	if depth > maxDepth {
		return nil, &jsonerrors.ParseError{
			Message: fmt.Sprintf("maximum nesting depth %d exceeded", maxDepth),
		}
	}

	tok, err := dec.Token()
	if err != nil {
		return nil, jsonParseError(data, dec.InputOffset(), err)
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec, data, depth, maxDepth)
		case '[':
			return decodeJSONArray(dec, data, depth, maxDepth)
		default:
			line, col := lineCol(data, dec.InputOffset())
			return nil, &jsonerrors.ParseError{
				Line:    line,
				Column:  col,
				Message: fmt.Sprintf("unexpected %q", t.String()),
			}
		}
	case bool:
		return Bool(t), nil
	case json.Number:
		n, err := Number(t.String())
		if err != nil {
			return nil, jsonParseError(data, dec.InputOffset(), err)
		}
		return n, nil
	case string:
		return Text(t), nil
	case nil:
		return Null(), nil
	default:
		line, col := lineCol(data, dec.InputOffset())
		return nil, &jsonerrors.ParseError{
			Line:    line,
			Column:  col,
			Message: fmt.Sprintf("unexpected token %v", tok),
		}
	}
}

func decodeJSONObject(dec *json.Decoder, data []byte, depth, maxDepth int) (*Node, error) {
	var fields []Field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, jsonParseError(data, dec.InputOffset(), err)
		}
		key, ok := keyTok.(string)
		if !ok {
			line, col := lineCol(data, dec.InputOffset())
			return nil, &jsonerrors.ParseError{
				Line:    line,
				Column:  col,
				Message: fmt.Sprintf("object key must be a string, got %v", keyTok),
			}
		}
		value, err := decodeJSONValue(dec, data, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: key, Value: value})
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, jsonParseError(data, dec.InputOffset(), err)
	}
	return Object(fields...), nil
}

func decodeJSONArray(dec *json.Decoder, data []byte, depth, maxDepth int) (*Node, error) {
	var items []*Node
	for dec.More() {
		value, err := decodeJSONValue(dec, data, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		items = append(items, value)
	}
	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return nil, jsonParseError(data, dec.InputOffset(), err)
	}
	return Array(items...), nil
}

// jsonParseError converts an encoding/json error into a ParseError with
// line/column positioning.
func jsonParseError(data []byte, offset int64, err error) error {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		offset = syn.Offset
	}
	line, col := lineCol(data, offset)
	msg := "invalid JSON"
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		msg = "unexpected end of input"
	}
	return &jsonerrors.ParseError{
		Line:    line,
		Column:  col,
		Message: msg,
		Cause:   err,
	}
}

// lineCol converts a byte offset into 1-based line and column numbers.
func lineCol(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line = 1 + bytes.Count(prefix, []byte{'\n'})
	if last := bytes.LastIndexByte(prefix, '\n'); last >= 0 {
		col = int(offset) - last
	} else {
		col = int(offset) + 1
	}
	return line, col
}
