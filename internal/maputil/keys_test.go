package maputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]bool
		expected []string
	}{
		{
			name:     "unsorted input",
			input:    map[string]bool{"shipping": true, "items": true, "order": true},
			expected: []string{"items", "order", "shipping"},
		},
		{
			name:     "single key",
			input:    map[string]bool{"total": true},
			expected: []string{"total"},
		},
		{
			name:     "empty map",
			input:    map[string]bool{},
			expected: []string{},
		},
		{
			name:     "nil map",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortedKeys(tt.input)
			assert.Equal(t, tt.expected, got, "SortedKeys(%v)", tt.input)
		})
	}
}

func TestSortedKeys_ValueTypes(t *testing.T) {
	type bin struct{ sku string }

	strs := map[string]string{"c": "3", "a": "1", "b": "2"}
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(strs))

	ptrs := map[string]*bin{"w2": {sku: "W-2"}, "w1": {sku: "W-1"}}
	assert.Equal(t, []string{"w1", "w2"}, SortedKeys(ptrs))
}

func TestSortedKeys_ByteOrder(t *testing.T) {
	// Sorting is by byte value, so "Z" sorts before "a" and "item10"
	// sorts before "item2".
	input := map[string]int{"item2": 2, "item10": 10, "Z": 0, "a": 1}
	got := SortedKeys(input)
	expected := []string{"Z", "a", "item10", "item2"}
	assert.Equal(t, expected, got, "SortedKeys(%v)", input)
}
