package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/jsontools/parser"
)

func mustParse(t *testing.T, src string) *parser.Node {
	t.Helper()
	doc, err := parser.New().ParseString(src)
	require.NoError(t, err)
	return doc.Document
}

func TestJSON_IndentedPreservesOrderAndLexemes(t *testing.T) {
	doc := mustParse(t, `{"b":1.50,"a":{"z":true,"y":[1e2,null]}}`)

	out, err := JSON(doc)
	require.NoError(t, err)

	want := `{
  "b": 1.50,
  "a": {
    "z": true,
    "y": [
      1e2,
      null
    ]
  }
}`
	assert.Equal(t, want, string(out))
}

func TestJSON_Compact(t *testing.T) {
	doc := mustParse(t, `{"b":1.50,"a":[1,2]}`)

	c := &Converter{}
	out, err := c.JSON(doc)
	require.NoError(t, err)

	assert.Equal(t, `{"b":1.50,"a":[1,2]}`, string(out))
	assert.Equal(t, doc.String(), string(out))
}

func TestJSON_EmptyContainersStayCompact(t *testing.T) {
	doc := mustParse(t, `{"a":{},"b":[]}`)

	out, err := JSON(doc)
	require.NoError(t, err)

	want := `{
  "a": {},
  "b": []
}`
	assert.Equal(t, want, string(out))
}

func TestJSON_LeafRoot(t *testing.T) {
	out, err := JSON(parser.MustNumber("1.50"))
	require.NoError(t, err)
	assert.Equal(t, "1.50", string(out))
}

func TestJSON_NilDocument(t *testing.T) {
	_, err := JSON(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil document")
}

func TestYAML_FlatMapping(t *testing.T) {
	doc := mustParse(t, `{"name":"widget","price":9.99,"active":true,"note":null}`)

	out, err := YAML(doc)
	require.NoError(t, err)

	want := "name: widget\nprice: 9.99\nactive: true\nnote: null\n"
	assert.Equal(t, want, string(out))
}

func TestYAML_NestedIndent(t *testing.T) {
	doc := mustParse(t, `{"a":{"b":1},"c":[1,2]}`)

	t.Run("default two spaces", func(t *testing.T) {
		out, err := YAML(doc)
		require.NoError(t, err)
		assert.Equal(t, "a:\n  b: 1\nc:\n  - 1\n  - 2\n", string(out))
	})

	t.Run("four spaces", func(t *testing.T) {
		c := &Converter{YAMLIndent: 4}
		out, err := c.YAML(doc)
		require.NoError(t, err)
		assert.Equal(t, "a:\n    b: 1\nc:\n    - 1\n    - 2\n", string(out))
	})
}

func TestYAML_LeafRoot(t *testing.T) {
	out, err := YAML(parser.Text("hi"))
	require.NoError(t, err)
	assert.Equal(t, "hi\n", string(out))
}

func TestYAML_NilDocument(t *testing.T) {
	_, err := YAML(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil document")
}

func TestYAML_RoundTrip(t *testing.T) {
	src := `{"b":1.50,"exp":1e2,"neg":-0,"s":"007","arr":[1,2.5],"nested":{"deep":null,"ok":false}}`
	doc := mustParse(t, src)

	out, err := YAML(doc)
	require.NoError(t, err)

	back, err := parser.New().ParseBytes(out)
	require.NoError(t, err)

	// Field order and numeric lexemes survive the round trip, so the
	// compact renderings are identical.
	assert.Equal(t, doc.String(), back.Document.String())
}

func TestYAML_StringsStayStrings(t *testing.T) {
	// Plain renderings of these would resolve to other YAML types; the
	// emitter must quote them.
	src := `{"a":"007","b":"true","c":"1.5","d":"null","e":"-0"}`
	doc := mustParse(t, src)

	out, err := YAML(doc)
	require.NoError(t, err)

	back, err := parser.New().ParseBytes(out)
	require.NoError(t, err)

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		got, ok := back.Document.Field(name)
		require.True(t, ok, "field %s missing after round trip", name)
		assert.Equal(t, parser.KindText, got.Kind(), "field %s changed kind", name)
		want, _ := doc.Field(name)
		assert.Equal(t, want.Text(), got.Text(), "field %s changed value", name)
	}
}

func TestConvert_DispatchesOnFormat(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)

	jsonOut, err := Convert(doc, parser.SourceFormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(jsonOut))

	yamlOut, err := Convert(doc, parser.SourceFormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(yamlOut))
}

func TestConvert_UnknownFormat(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)

	_, err := Convert(doc, parser.SourceFormatUnknown)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestNumberTag(t *testing.T) {
	tests := []struct {
		lexeme string
		want   string
	}{
		{"0", "!!int"},
		{"-7", "!!int"},
		{"123456789012345678901234567890", "!!int"},
		{"1.5", "!!float"},
		{"-0.25", "!!float"},
		{"1e2", "!!float"},
		{"5E-1", "!!float"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, numberTag(tt.lexeme), "lexeme %q", tt.lexeme)
	}
}
