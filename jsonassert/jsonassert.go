package jsonassert

import (
	"github.com/erraggy/jsontools/differ"
)

// TestingT is the subset of testing.T the assertions need. *testing.T and
// *testing.B both satisfy it.
type TestingT interface {
	Errorf(format string, args ...any)
}

// tHelper is implemented by *testing.T; when present, assertion functions
// mark themselves as helpers so failures point at the caller.
type tHelper interface {
	Helper()
}

// fullDocumentName names the actual document in reports when only a part
// of it was compared.
const fullDocumentName = "fullJson"

// Equal asserts that expected and actual represent the same JSON document.
// Object field order is irrelevant; array order matters. It reports the
// full difference list through t and returns whether the assertion held.
func Equal(t TestingT, expected, actual any, opts ...differ.Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return check(t, expected, actual, "", false, opts)
}

// PartEqual asserts that the subtree of fullDocument addressed by path
// equals expected. Path syntax is "root.array[0].value"; an empty path
// compares the whole document.
func PartEqual(t TestingT, expected, fullDocument any, path string, opts ...differ.Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return check(t, expected, fullDocument, path, false, opts)
}

// StructureEqual asserts that expected and actual have the same shape:
// matching container kinds, field names, and array lengths, with leaf
// values ignored.
func StructureEqual(t TestingT, expected, actual any, opts ...differ.Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return check(t, expected, actual, "", true, opts)
}

// PartStructureEqual asserts that the subtree of fullDocument addressed by
// path has the same shape as expected.
func PartStructureEqual(t TestingT, expected, fullDocument any, path string, opts ...differ.Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return check(t, expected, fullDocument, path, true, opts)
}

// check normalizes both inputs, runs the comparison, and reports the
// outcome through t. Input, path, and configuration problems fail the
// assertion with the error text; content differences fail it with the
// rendered report.
func check(t TestingT, expected, document any, path string, structure bool, opts []differ.Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	expNode, err := normalizeExpected(expected)
	if err != nil {
		t.Errorf("invalid expected document: %v", err)
		return false
	}
	docNode, err := normalizeDocument(document)
	if err != nil {
		t.Errorf("invalid actual document: %v", err)
		return false
	}

	name := differ.DefaultDocumentName
	if path != "" {
		name = fullDocumentName
	}
	dOpts := make([]differ.Option, 0, len(opts)+1)
	dOpts = append(dOpts, differ.WithDocumentName(name))
	dOpts = append(dOpts, opts...)

	d, err := differ.New(dOpts...)
	if err != nil {
		t.Errorf("invalid comparison configuration: %v", err)
		return false
	}

	result, err := d.CompareAt(expNode, docNode, path)
	if err != nil {
		t.Errorf("cannot compare at path %q: %v", path, err)
		return false
	}

	if structure {
		if result.SimilarStructure() {
			return true
		}
		t.Errorf("%s", result.StructureReport())
		return false
	}
	if result.Similar() {
		return true
	}
	t.Errorf("%s", result.String())
	return false
}
