package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/jsontools/parser"
)

func TestDocumentInput_ResolveFile(t *testing.T) {
	docCache.reset()
	// Use an existing testdata file from the repo
	input := documentInput{File: "../../testdata/orders.json"}
	result, err := input.resolve()
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, parser.SourceFormatJSON, result.SourceFormat)

	order, ok := result.Document.Field("order")
	require.True(t, ok)
	assert.Equal(t, "A-1001", order.Text())
}

func TestDocumentInput_ResolveContent(t *testing.T) {
	docCache.reset()
	input := documentInput{Content: `{"name": "widget", "qty": 3}`}
	result, err := input.resolve()
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, parser.SourceFormatJSON, result.SourceFormat)
	assert.Equal(t, 2, result.Document.Len())
}

func TestDocumentInput_ResolveYAMLContent(t *testing.T) {
	docCache.reset()
	input := documentInput{Content: "name: widget\nqty: 3\n"}
	result, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, parser.SourceFormatYAML, result.SourceFormat)
	assert.Equal(t, 2, result.Document.Len())
}

func TestDocumentInput_ResolveNoneProvided(t *testing.T) {
	input := documentInput{}
	_, err := input.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file, url, or content must be provided")
}

func TestDocumentInput_ResolveMultipleProvided(t *testing.T) {
	input := documentInput{File: "foo.json", Content: "bar"}
	_, err := input.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file, url, or content must be provided")
}

func TestDocumentInput_ResolveFileNotFound(t *testing.T) {
	docCache.reset()
	input := documentInput{File: "/nonexistent/path.json"}
	_, err := input.resolve()
	assert.Error(t, err)
}

func TestDocumentInput_InlineSizeLimit(t *testing.T) {
	old := cfg
	t.Cleanup(func() { cfg = old })
	limited := *old
	limited.MaxInlineSize = 8
	cfg = &limited
	docCache.reset()

	input := documentInput{Content: `{"a": 1, "b": 2}`}
	_, err := input.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestDocCache_HitOnSameFile(t *testing.T) {
	docCache.reset()
	input := documentInput{File: "../../testdata/orders.json"}

	// First call populates cache.
	result1, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, docCache.size())

	// Second call should return the same pointer (cache hit).
	result2, err := input.resolve()
	require.NoError(t, err)
	assert.Same(t, result1, result2, "expected same pointer from cache hit")
}

func TestDocCache_MissOnModifiedFile(t *testing.T) {
	docCache.reset()

	// Create a temp file.
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title": "v1"}`), 0644))

	input := documentInput{File: path}
	result1, err := input.resolve()
	require.NoError(t, err)
	title, ok := result1.Document.Field("title")
	require.True(t, ok)
	assert.Equal(t, "v1", title.Text())

	// Modify the file (change mtime).
	require.NoError(t, os.WriteFile(path, []byte(`{"title": "v2"}`), 0644))

	// Ensure mtime differs from the first write on coarse-grained filesystems.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	result2, err := input.resolve()
	require.NoError(t, err)
	// Should be a different result since mtime changed.
	assert.NotSame(t, result1, result2)
	title2, ok := result2.Document.Field("title")
	require.True(t, ok)
	assert.Equal(t, "v2", title2.Text())
}

func TestDocCache_ContentHash(t *testing.T) {
	docCache.reset()
	input := documentInput{Content: `{"hash": "test"}`}

	result1, err := input.resolve()
	require.NoError(t, err)

	// Same content should hit cache.
	result2, err := input.resolve()
	require.NoError(t, err)
	assert.Same(t, result1, result2)
}

func TestDocCache_LRUEviction(t *testing.T) {
	docCache.reset()

	// Insert 11 documents into a cache of size 10.
	// Track the first content's cache key to verify it is evicted.
	var firstKey string
	for i := range 11 {
		content := fmt.Sprintf(`{"index": %d}`, i)
		if i == 0 {
			firstKey = makeCacheKey(documentInput{Content: content})
		}
		input := documentInput{Content: content}
		_, err := input.resolve()
		require.NoError(t, err)
	}

	// Cache should not exceed max size.
	assert.Equal(t, 10, docCache.size())

	// The first entry (oldest) should have been evicted.
	assert.Nil(t, docCache.get(firstKey), "expected oldest entry to be evicted")
}

func TestMakeCacheKey_Kinds(t *testing.T) {
	contentKey := makeCacheKey(documentInput{Content: `{"a": 1}`})
	assert.Contains(t, contentKey, "content:")

	urlKey := makeCacheKey(documentInput{URL: "https://example.com/doc.json"})
	assert.Equal(t, "url:https://example.com/doc.json", urlKey)

	// A file that cannot be stat'ed yields no key at all.
	assert.Empty(t, makeCacheKey(documentInput{File: "/nonexistent/path.json"}))
	assert.Empty(t, makeCacheKey(documentInput{}))
}
