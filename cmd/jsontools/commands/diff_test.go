package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDoc writes a document to a temp file and returns its path.
func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSetupDiffFlags(t *testing.T) {
	fs, flags := SetupDiffFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Empty(t, flags.Path)
		assert.Equal(t, modeValue, flags.Mode)
		assert.Empty(t, flags.Tolerance)
		assert.Empty(t, flags.IgnoreMarker)
		assert.Equal(t, "strict", flags.ExtraFields)
		assert.Equal(t, FormatText, flags.Format)
		assert.Equal(t, ColorAuto, flags.Color)
		assert.False(t, flags.Quiet)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{
			"-path", "store.items[0]",
			"-mode", "structure",
			"-tolerance", "0.01",
			"-ignore-marker", "<<any>>",
			"-extra-fields", "lenient",
			"-format", "json",
			"-color", "never",
			"-q",
			"expected.json", "actual.json",
		}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "store.items[0]", flags.Path)
		assert.Equal(t, modeStructure, flags.Mode)
		assert.Equal(t, "0.01", flags.Tolerance)
		assert.Equal(t, "<<any>>", flags.IgnoreMarker)
		assert.Equal(t, "lenient", flags.ExtraFields)
		assert.Equal(t, FormatJSON, flags.Format)
		assert.Equal(t, ColorNever, flags.Color)
		assert.True(t, flags.Quiet)
		assert.Equal(t, 2, fs.NArg())
	})
}

func TestHandleDiff_Help(t *testing.T) {
	assert.NoError(t, HandleDiff([]string{"--help"}))
}

func TestHandleDiff_NotEnoughArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", []string{}},
		{"one arg", []string{"expected.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, HandleDiff(tt.args))
		})
	}
}

func TestHandleDiff_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"invalid format", []string{"-format", "yaml", "a.json", "b.json"}, "invalid format"},
		{"invalid color", []string{"-color", "sometimes", "a.json", "b.json"}, "invalid color mode"},
		{"invalid mode", []string{"-mode", "lenient", "a.json", "b.json"}, "invalid mode"},
		{"invalid extra-fields", []string{"-extra-fields", "loose", "a.json", "b.json"}, "invalid extra-fields"},
		{"unparseable tolerance", []string{"-tolerance", "abc", "a.json", "b.json"}, "configuring comparison"},
		{"negative tolerance", []string{"-tolerance", "-0.5", "a.json", "b.json"}, "configuring comparison"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HandleDiff(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestHandleDiff_LoadErrors(t *testing.T) {
	valid := writeDoc(t, "valid.json", `{"a": 1}`)
	malformed := writeDoc(t, "malformed.json", `{"a": }`)

	t.Run("nonexistent expected", func(t *testing.T) {
		err := HandleDiff([]string{"-color", "never", "/nonexistent/expected.json", valid})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing expected")
	})

	t.Run("malformed actual", func(t *testing.T) {
		err := HandleDiff([]string{"-color", "never", valid, malformed})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing actual")
	})

	t.Run("path not found in actual", func(t *testing.T) {
		err := HandleDiff([]string{"-color", "never", "-path", "missing.field", valid, valid})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "resolving path")
	})

	t.Run("malformed path", func(t *testing.T) {
		err := HandleDiff([]string{"-color", "never", "-path", "items[", valid, valid})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "resolving path")
	})
}

// Only similar documents exercise HandleDiff end to end here: differences
// terminate the process with exit status 1.
func TestHandleDiff_Similar(t *testing.T) {
	t.Run("identical json", func(t *testing.T) {
		expected := writeDoc(t, "expected.json", `{"order": "A-1001", "total": 109.95}`)
		actual := writeDoc(t, "actual.json", `{"order": "A-1001", "total": 109.95}`)
		assert.NoError(t, HandleDiff([]string{"-color", "never", expected, actual}))
	})

	t.Run("json against equivalent yaml", func(t *testing.T) {
		expected := writeDoc(t, "expected.json", `{"order": "A-1001", "tracked": false}`)
		actual := writeDoc(t, "actual.yaml", "order: A-1001\ntracked: false\n")
		assert.NoError(t, HandleDiff([]string{"-color", "never", expected, actual}))
	})

	t.Run("quiet", func(t *testing.T) {
		expected := writeDoc(t, "expected.json", `{"a": 1}`)
		actual := writeDoc(t, "actual.json", `{"a": 1}`)
		assert.NoError(t, HandleDiff([]string{"-q", expected, actual}))
	})

	t.Run("json format", func(t *testing.T) {
		expected := writeDoc(t, "expected.json", `{"a": 1}`)
		actual := writeDoc(t, "actual.json", `{"a": 1}`)
		assert.NoError(t, HandleDiff([]string{"-color", "never", "-format", "json", expected, actual}))
	})

	t.Run("within tolerance", func(t *testing.T) {
		expected := writeDoc(t, "expected.json", `{"total": 10.0}`)
		actual := writeDoc(t, "actual.json", `{"total": 10.004}`)
		assert.NoError(t, HandleDiff([]string{"-color", "never", "-tolerance", "0.01", expected, actual}))
	})

	t.Run("default ignore marker", func(t *testing.T) {
		expected := writeDoc(t, "expected.json", `{"id": "${json-unit.ignore}", "name": "x"}`)
		actual := writeDoc(t, "actual.json", `{"id": 12345, "name": "x"}`)
		assert.NoError(t, HandleDiff([]string{"-color", "never", expected, actual}))
	})

	t.Run("custom ignore marker", func(t *testing.T) {
		expected := writeDoc(t, "expected.json", `{"id": "<<any>>"}`)
		actual := writeDoc(t, "actual.json", `{"id": [1, 2, 3]}`)
		assert.NoError(t, HandleDiff([]string{"-color", "never", "-ignore-marker", "<<any>>", expected, actual}))
	})

	t.Run("lenient extra fields", func(t *testing.T) {
		expected := writeDoc(t, "expected.json", `{"a": 1}`)
		actual := writeDoc(t, "actual.json", `{"a": 1, "b": 2}`)
		assert.NoError(t, HandleDiff([]string{"-color", "never", "-extra-fields", "lenient", expected, actual}))
	})

	t.Run("structure mode tolerates value drift", func(t *testing.T) {
		expected := writeDoc(t, "expected.json", `{"a": 1, "b": "x"}`)
		actual := writeDoc(t, "actual.json", `{"a": 2, "b": "y"}`)
		assert.NoError(t, HandleDiff([]string{"-color", "never", "-mode", "structure", expected, actual}))
	})

	t.Run("subtree via path", func(t *testing.T) {
		expected := writeDoc(t, "expected.json", `{"sku": "W-2", "qty": 1}`)
		actual := writeDoc(t, "actual.json", `{"store": {"items": [{"sku": "W-1", "qty": 2}, {"sku": "W-2", "qty": 1}]}}`)
		assert.NoError(t, HandleDiff([]string{"-color", "never", "-path", "store.items[1]", expected, actual}))
	})
}

func TestParseDiffMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		wantErr bool
	}{
		{"value", modeValue, false},
		{"structure", modeStructure, false},
		{"empty", "", true},
		{"unknown", "strict", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDiffMode(tt.mode)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDiffOptions(t *testing.T) {
	t.Run("defaults produce no options", func(t *testing.T) {
		opts, err := diffOptions(&DiffFlags{ExtraFields: "strict"})
		require.NoError(t, err)
		assert.Empty(t, opts)
	})

	t.Run("all knobs", func(t *testing.T) {
		opts, err := diffOptions(&DiffFlags{
			Tolerance:    "0.01",
			IgnoreMarker: "<<any>>",
			ExtraFields:  "lenient",
		})
		require.NoError(t, err)
		assert.Len(t, opts, 3)
	})

	t.Run("invalid policy", func(t *testing.T) {
		_, err := diffOptions(&DiffFlags{ExtraFields: "loose"})
		assert.Error(t, err)
	})
}
