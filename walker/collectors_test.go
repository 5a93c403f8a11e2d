package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/jsontools/parser"
)

func TestCollectLeaves_DocumentOrder(t *testing.T) {
	doc := parser.Object(
		parser.Field{Name: "id", Value: parser.MustNumber("42")},
		parser.Field{Name: "tags", Value: parser.Array(parser.Text("new"), parser.Text("sale"))},
		parser.Field{Name: "meta", Value: parser.Object(
			parser.Field{Name: "active", Value: parser.Bool(true)},
			parser.Field{Name: "note", Value: parser.Null()},
		)},
	)

	leaves, err := CollectLeaves(doc)
	require.NoError(t, err)

	var paths []string
	for _, leaf := range leaves.All {
		paths = append(paths, leaf.Path)
	}
	assert.Equal(t, []string{"id", "tags[0]", "tags[1]", "meta.active", "meta.note"}, paths)

	require.Contains(t, leaves.ByPath, "tags[1]")
	assert.Equal(t, "sale", leaves.ByPath["tags[1]"].Node.Text())
	assert.Equal(t, "42", leaves.ByPath["id"].Node.Lexeme())
	assert.Equal(t, parser.KindNull, leaves.ByPath["meta.note"].Node.Kind())
}

func TestCollectLeaves_LeafRoot(t *testing.T) {
	leaves, err := CollectLeaves(parser.Bool(false))
	require.NoError(t, err)

	require.Len(t, leaves.All, 1)
	assert.Equal(t, "", leaves.All[0].Path)
	assert.Equal(t, parser.KindBool, leaves.All[0].Node.Kind())
	assert.Same(t, leaves.All[0], leaves.ByPath[""])
}

func TestCollectLeaves_NilDocument(t *testing.T) {
	leaves, err := CollectLeaves(nil)
	require.Error(t, err)
	assert.Nil(t, leaves)
}

func TestCollectStats_MixedDocument(t *testing.T) {
	doc := parser.Object(
		parser.Field{Name: "name", Value: parser.Text("a")},
		parser.Field{Name: "count", Value: parser.MustNumber("3")},
		parser.Field{Name: "flags", Value: parser.Array(parser.Bool(true), parser.Bool(false), parser.Null())},
		parser.Field{Name: "nested", Value: parser.Object(
			parser.Field{Name: "inner", Value: parser.Array(
				parser.Object(parser.Field{Name: "x", Value: parser.MustNumber("1")}),
			)},
		)},
	)

	stats, err := CollectStats(doc)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Objects)
	assert.Equal(t, 2, stats.Arrays)
	assert.Equal(t, 1, stats.Strings)
	assert.Equal(t, 2, stats.Numbers)
	assert.Equal(t, 2, stats.Booleans)
	assert.Equal(t, 1, stats.Nulls)
	assert.Equal(t, 11, stats.Total)
	assert.Equal(t, 6, stats.Leaves())
	assert.Equal(t, 4, stats.MaxDepth, "deepest node is nested.inner[0].x")
}

func TestCollectStats_LeafRoot(t *testing.T) {
	stats, err := CollectStats(parser.Text("only"))
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Strings)
	assert.Equal(t, 1, stats.Leaves())
	assert.Equal(t, 0, stats.MaxDepth)
}

func TestCollectStats_NilDocument(t *testing.T) {
	stats, err := CollectStats(nil)
	require.Error(t, err)
	assert.Nil(t, stats)
}
