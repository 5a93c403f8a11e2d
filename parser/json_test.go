package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/jsontools/jsonerrors"
)

func TestDecodeJSONScalars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind Kind
		check    func(t *testing.T, n *Node)
	}{
		{
			name:     "null",
			input:    `null`,
			wantKind: KindNull,
		},
		{
			name:     "true",
			input:    `true`,
			wantKind: KindBool,
			check:    func(t *testing.T, n *Node) { assert.True(t, n.Bool()) },
		},
		{
			name:     "false",
			input:    `false`,
			wantKind: KindBool,
			check:    func(t *testing.T, n *Node) { assert.False(t, n.Bool()) },
		},
		{
			name:     "integer",
			input:    `42`,
			wantKind: KindNumber,
			check:    func(t *testing.T, n *Node) { assert.Equal(t, "42", n.Lexeme()) },
		},
		{
			name:     "decimal keeps trailing zero",
			input:    `10.50`,
			wantKind: KindNumber,
			check:    func(t *testing.T, n *Node) { assert.Equal(t, "10.50", n.Lexeme()) },
		},
		{
			name:     "exponent keeps spelling",
			input:    `1e100`,
			wantKind: KindNumber,
			check:    func(t *testing.T, n *Node) { assert.Equal(t, "1e100", n.Lexeme()) },
		},
		{
			name:     "string",
			input:    `"hello"`,
			wantKind: KindText,
			check:    func(t *testing.T, n *Node) { assert.Equal(t, "hello", n.Text()) },
		},
		{
			name:     "string with escapes",
			input:    `"say \"hi\"\né"`,
			wantKind: KindText,
			check:    func(t *testing.T, n *Node) { assert.Equal(t, "say \"hi\"\né", n.Text()) },
		},
		{
			name:     "surrounding whitespace",
			input:    "\n\t  true  \n",
			wantKind: KindBool,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := decodeJSON([]byte(tt.input), defaultMaxDepth)
			require.NoError(t, err)
			require.Equal(t, tt.wantKind, n.Kind())
			if tt.check != nil {
				tt.check(t, n)
			}
		})
	}
}

func TestDecodeJSONContainers(t *testing.T) {
	t.Run("object keeps field order", func(t *testing.T) {
		n, err := decodeJSON([]byte(`{"zebra": 1, "apple": 2, "mango": 3}`), defaultMaxDepth)
		require.NoError(t, err)
		require.Equal(t, KindObject, n.Kind())

		var names []string
		for i := 0; i < n.Len(); i++ {
			name, _ := n.FieldAt(i)
			names = append(names, name)
		}
		assert.Equal(t, []string{"zebra", "apple", "mango"}, names)
	})

	t.Run("duplicate keys collapse to last value", func(t *testing.T) {
		n, err := decodeJSON([]byte(`{"a": 1, "b": 2, "a": 3}`), defaultMaxDepth)
		require.NoError(t, err)
		require.Equal(t, 2, n.Len())

		a, ok := n.Field("a")
		require.True(t, ok)
		assert.Equal(t, "3", a.Lexeme())

		name, _ := n.FieldAt(0)
		assert.Equal(t, "a", name)
	})

	t.Run("nested structure", func(t *testing.T) {
		n, err := decodeJSON([]byte(`{"items": [{"sku": "W-1"}, {"sku": "W-2"}]}`), defaultMaxDepth)
		require.NoError(t, err)

		items, ok := n.Field("items")
		require.True(t, ok)
		require.Equal(t, KindArray, items.Kind())
		require.Equal(t, 2, items.Len())

		sku, ok := items.Item(1).Field("sku")
		require.True(t, ok)
		assert.Equal(t, "W-2", sku.Text())
	})

	t.Run("empty containers", func(t *testing.T) {
		obj, err := decodeJSON([]byte(`{}`), defaultMaxDepth)
		require.NoError(t, err)
		assert.Equal(t, KindObject, obj.Kind())
		assert.Zero(t, obj.Len())

		arr, err := decodeJSON([]byte(`[]`), defaultMaxDepth)
		require.NoError(t, err)
		assert.Equal(t, KindArray, arr.Kind())
		assert.Zero(t, arr.Len())
	})
}

func TestDecodeJSONErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{
			name:    "empty input",
			input:   ``,
			wantMsg: "unexpected end of input",
		},
		{
			name:    "truncated object",
			input:   `{"a": 1`,
			wantMsg: "unexpected end of input",
		},
		{
			name:    "truncated string",
			input:   `"never closed`,
			wantMsg: "unexpected end of input",
		},
		{
			name:    "missing value",
			input:   `{"a": }`,
			wantMsg: "invalid JSON",
		},
		{
			name:    "bare word",
			input:   `flase`,
			wantMsg: "invalid JSON",
		},
		{
			name:    "trailing garbage",
			input:   `{"a": 1} extra`,
			wantMsg: "unexpected data after top-level value",
		},
		{
			name:    "two documents",
			input:   `{} {}`,
			wantMsg: "unexpected data after top-level value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeJSON([]byte(tt.input), defaultMaxDepth)
			require.Error(t, err)
			assert.True(t, errors.Is(err, jsonerrors.ErrParse), "expected a parse error, got %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDecodeJSONErrorPosition(t *testing.T) {
	// The error on line 3 must carry its position.
	input := "{\n  \"a\": 1,\n  \"b\": oops\n}"
	_, err := decodeJSON([]byte(input), defaultMaxDepth)
	require.Error(t, err)

	var pe *jsonerrors.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 3, pe.Line)
	assert.Positive(t, pe.Column)
}

func TestDecodeJSONDepthLimit(t *testing.T) {
	deep := strings.Repeat("[", 12) + "1" + strings.Repeat("]", 12)

	_, err := decodeJSON([]byte(deep), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum nesting depth 10 exceeded")

	_, err = decodeJSON([]byte(deep), 20)
	assert.NoError(t, err)
}

func TestLineCol(t *testing.T) {
	data := []byte("ab\ncde\nf")

	tests := []struct {
		offset   int64
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3},
		{3, 2, 1},  // right after the first newline
		{6, 2, 4},
		{7, 3, 1},
		{8, 3, 2},
		{99, 3, 2}, // clamped to input length
	}

	for _, tt := range tests {
		line, col := lineCol(data, tt.offset)
		assert.Equal(t, tt.wantLine, line, "offset %d line", tt.offset)
		assert.Equal(t, tt.wantCol, col, "offset %d col", tt.offset)
	}
}
