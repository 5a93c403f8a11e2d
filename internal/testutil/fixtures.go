// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/erraggy/jsontools/converter"
	"github.com/erraggy/jsontools/parser"
)

// MustParse parses a JSON or YAML document, failing the test on error.
func MustParse(t *testing.T, src string) *parser.Node {
	t.Helper()

	res, err := parser.New().ParseString(src)
	if err != nil {
		t.Fatalf("Failed to parse fixture document: %v", err)
	}
	return res.Document
}

// NewSimpleDocument creates a minimal order document for testing.
// Contains one scalar of each leaf kind.
func NewSimpleDocument() *parser.Node {
	return parser.Object(
		parser.Field{Name: "id", Value: parser.MustNumber("1")},
		parser.Field{Name: "name", Value: parser.Text("test")},
		parser.Field{Name: "active", Value: parser.Bool(true)},
		parser.Field{Name: "note", Value: parser.Null()},
	)
}

// NewDetailedDocument creates a nested order document with arrays, nested
// objects, and high-precision numbers for testing.
func NewDetailedDocument() *parser.Node {
	return parser.Object(
		parser.Field{Name: "order", Value: parser.Text("A-1001")},
		parser.Field{Name: "total", Value: parser.MustNumber("109.95")},
		parser.Field{Name: "items", Value: parser.Array(
			parser.Object(
				parser.Field{Name: "sku", Value: parser.Text("W-1")},
				parser.Field{Name: "qty", Value: parser.MustNumber("2")},
				parser.Field{Name: "price", Value: parser.MustNumber("19.99")},
			),
			parser.Object(
				parser.Field{Name: "sku", Value: parser.Text("W-2")},
				parser.Field{Name: "qty", Value: parser.MustNumber("1")},
				parser.Field{Name: "price", Value: parser.MustNumber("69.97")},
			),
		)},
		parser.Field{Name: "shipping", Value: parser.Object(
			parser.Field{Name: "method", Value: parser.Text("ground")},
			parser.Field{Name: "tracked", Value: parser.Bool(false)},
			parser.Field{Name: "eta", Value: parser.Null()},
		)},
	)
}

// WriteTempJSON renders a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, doc *parser.Node) string {
	t.Helper()

	data, err := converter.JSON(doc)
	if err != nil {
		t.Fatalf("Failed to render document to JSON: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.json")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary JSON file: %v", err)
	}

	return tmpFile
}

// WriteTempYAML renders a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc *parser.Node) string {
	t.Helper()

	data, err := converter.YAML(doc)
	if err != nil {
		t.Fatalf("Failed to render document to YAML: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}

// LoadArchive reads a txtar fixture archive, failing the test on error.
func LoadArchive(t *testing.T, path string) *txtar.Archive {
	t.Helper()

	ar, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("Failed to load fixture archive %s: %v", path, err)
	}
	return ar
}

// ArchiveFile returns the named file from a txtar archive, failing the test
// if it is absent.
func ArchiveFile(t *testing.T, ar *txtar.Archive, name string) []byte {
	t.Helper()

	for _, f := range ar.Files {
		if f.Name == name {
			return f.Data
		}
	}
	t.Fatalf("Fixture archive has no file %q", name)
	return nil
}

// HasArchiveFile reports whether the archive contains the named file.
func HasArchiveFile(ar *txtar.Archive, name string) bool {
	for _, f := range ar.Files {
		if f.Name == name {
			return true
		}
	}
	return false
}
