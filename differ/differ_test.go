package differ

import (
	"errors"
	"sync"
	"testing"

	"github.com/erraggy/jsontools/jsonerrors"
	"github.com/erraggy/jsontools/parser"
)

// mustNode parses a JSON document for test input.
func mustNode(t *testing.T, src string) *parser.Node {
	t.Helper()
	result, err := parser.New().ParseString(src)
	if err != nil {
		t.Fatalf("parsing %q: %v", src, err)
	}
	return result.Document
}

// mustDiffer builds a Differ, failing the test on option errors.
func mustDiffer(t *testing.T, opts ...Option) *Differ {
	t.Helper()
	d, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func TestNew(t *testing.T) {
	d := mustDiffer(t)

	if d.cfg.ignoreMarker != DefaultIgnoreMarker {
		t.Errorf("default ignore marker = %q, want %q", d.cfg.ignoreMarker, DefaultIgnoreMarker)
	}
	if d.cfg.tolerance != nil {
		t.Error("default tolerance should be nil (exact comparison)")
	}
	if d.cfg.extraFields != ExtraFieldsStrict {
		t.Errorf("default extra field policy = %v, want strict", d.cfg.extraFields)
	}
	if d.cfg.documentName != "actual" {
		t.Errorf("default document name = %q, want %q", d.cfg.documentName, "actual")
	}
}

func TestNewOptionError(t *testing.T) {
	d, err := New(WithTolerance(-0.5))
	if err == nil {
		t.Fatal("expected error for negative tolerance, got nil")
	}
	if d != nil {
		t.Error("expected nil Differ on option error")
	}
	if !errors.Is(err, jsonerrors.ErrConfig) {
		t.Errorf("error does not match ErrConfig: %v", err)
	}
}

func TestCompareSimilar(t *testing.T) {
	d := mustDiffer(t)

	expected := mustNode(t, `{"a":1,"b":2}`)
	actual := mustNode(t, `{"b":2,"a":1}`)

	result := d.Compare(expected, actual)
	if !result.Similar() {
		t.Errorf("expected similar documents, got:\n%s", result.String())
	}
	if !result.SimilarStructure() {
		t.Errorf("expected structurally similar documents, got:\n%s", result.StructureReport())
	}
}

func TestCompareReflexive(t *testing.T) {
	d := mustDiffer(t)

	doc := mustNode(t, `{"a":[1,2.5,"x",null,true],"b":{"c":{"d":[]}},"e":{}}`)

	result := d.Compare(doc, doc)
	if !result.Similar() {
		t.Errorf("document differs from itself:\n%s", result.String())
	}
	if !result.SimilarStructure() {
		t.Errorf("document structurally differs from itself:\n%s", result.StructureReport())
	}
}

func TestCompareExtraField(t *testing.T) {
	expected := mustNode(t, `{"a":1}`)
	actual := mustNode(t, `{"a":1,"b":2}`)

	t.Run("strict reports the field", func(t *testing.T) {
		result := mustDiffer(t).Compare(expected, actual)

		if result.Similar() {
			t.Fatal("expected a difference for the extra field")
		}
		diffs := result.Differences()
		if len(diffs) != 1 {
			t.Fatalf("got %d differences, want 1:\n%s", len(diffs), result.String())
		}
		if diffs[0].Type != ExtraField {
			t.Errorf("difference type = %q, want %q", diffs[0].Type, ExtraField)
		}
		if diffs[0].Path != "b" {
			t.Errorf("difference path = %q, want %q", diffs[0].Path, "b")
		}
	})

	t.Run("lenient tolerates the field", func(t *testing.T) {
		result := mustDiffer(t, WithExtraFields(ExtraFieldsLenient)).Compare(expected, actual)

		if !result.Similar() {
			t.Errorf("lenient policy should tolerate extra fields:\n%s", result.String())
		}
	})

	t.Run("structure reports it under both policies", func(t *testing.T) {
		for _, policy := range []ExtraFieldPolicy{ExtraFieldsStrict, ExtraFieldsLenient} {
			result := mustDiffer(t, WithExtraFields(policy)).Compare(expected, actual)
			if result.SimilarStructure() {
				t.Errorf("policy %v: extra field should change the structure", policy)
			}
		}
	})
}

func TestCompareIgnoreMarker(t *testing.T) {
	t.Run("marker matches a scalar", func(t *testing.T) {
		d := mustDiffer(t)
		expected := mustNode(t, `{"a":"${json-unit.ignore}"}`)
		actual := mustNode(t, `{"a":42}`)

		if !d.Compare(expected, actual).Similar() {
			t.Error("marker should match a number")
		}
	})

	t.Run("marker matches a container", func(t *testing.T) {
		d := mustDiffer(t)
		expected := mustNode(t, `{"a":"${json-unit.ignore}"}`)
		actual := mustNode(t, `{"a":{"deeply":["nested",1]}}`)

		result := d.Compare(expected, actual)
		if !result.Similar() {
			t.Errorf("marker should match an object:\n%s", result.String())
		}
		if !result.SimilarStructure() {
			t.Errorf("marker should match structurally too:\n%s", result.StructureReport())
		}
	})

	t.Run("marker works at depth", func(t *testing.T) {
		d := mustDiffer(t)
		expected := mustNode(t, `{"a":{"b":[1,"${json-unit.ignore}",3]}}`)
		actual := mustNode(t, `{"a":{"b":[1,false,3]}}`)

		if !d.Compare(expected, actual).Similar() {
			t.Error("marker should apply at any depth")
		}
	})

	t.Run("custom marker", func(t *testing.T) {
		d := mustDiffer(t, WithIgnoreMarker("__any__"))
		expected := mustNode(t, `{"a":"__any__"}`)
		actual := mustNode(t, `{"a":[1,2,3]}`)

		if !d.Compare(expected, actual).Similar() {
			t.Error("custom marker should match anything")
		}

		// The default marker is now an ordinary string.
		expected = mustNode(t, `{"a":"${json-unit.ignore}"}`)
		if d.Compare(expected, actual).Similar() {
			t.Error("default marker should have no effect once replaced")
		}
	})

	t.Run("marker only applies on the expected side", func(t *testing.T) {
		d := mustDiffer(t)
		expected := mustNode(t, `{"a":42}`)
		actual := mustNode(t, `{"a":"${json-unit.ignore}"}`)

		if d.Compare(expected, actual).Similar() {
			t.Error("an actual value equal to the marker is just a string")
		}
	})
}

func TestCompareTolerance(t *testing.T) {
	d := mustDiffer(t, WithTolerance(0.01))

	t.Run("within tolerance", func(t *testing.T) {
		expected := mustNode(t, `{"a":1.0}`)
		actual := mustNode(t, `{"a":1.005}`)
		if !d.Compare(expected, actual).Similar() {
			t.Error("1.0 and 1.005 should match with tolerance 0.01")
		}
	})

	t.Run("beyond tolerance", func(t *testing.T) {
		expected := mustNode(t, `{"a":1.0}`)
		actual := mustNode(t, `{"a":1.02}`)
		if d.Compare(expected, actual).Similar() {
			t.Error("1.0 and 1.02 should differ with tolerance 0.01")
		}
	})
}

func TestCompareAt(t *testing.T) {
	document := mustNode(t, `{"root":{"items":[{"name":"x"},{"name":"y"}]}}`)

	t.Run("resolves and compares", func(t *testing.T) {
		d := mustDiffer(t)
		expected := mustNode(t, `"y"`)

		result, err := d.CompareAt(expected, document, "root.items[1].name")
		if err != nil {
			t.Fatalf("CompareAt: %v", err)
		}
		if !result.Similar() {
			t.Errorf("expected similar, got:\n%s", result.String())
		}
	})

	t.Run("difference paths include the prefix", func(t *testing.T) {
		d := mustDiffer(t)
		expected := mustNode(t, `{"name":"z"}`)

		result, err := d.CompareAt(expected, document, "root.items[1]")
		if err != nil {
			t.Fatalf("CompareAt: %v", err)
		}
		diffs := result.Differences()
		if len(diffs) != 1 {
			t.Fatalf("got %d differences, want 1:\n%s", len(diffs), result.String())
		}
		if diffs[0].Path != "root.items[1].name" {
			t.Errorf("difference path = %q, want %q", diffs[0].Path, "root.items[1].name")
		}
	})

	t.Run("empty path compares the whole document", func(t *testing.T) {
		d := mustDiffer(t)

		result, err := d.CompareAt(document, document, "")
		if err != nil {
			t.Fatalf("CompareAt: %v", err)
		}
		if !result.Similar() {
			t.Errorf("expected similar, got:\n%s", result.String())
		}
	})

	t.Run("malformed path", func(t *testing.T) {
		d := mustDiffer(t)

		_, err := d.CompareAt(document, document, "root..items")
		if err == nil {
			t.Fatal("expected error for malformed path")
		}
		if !errors.Is(err, jsonerrors.ErrPathSyntax) {
			t.Errorf("error does not match ErrPathSyntax: %v", err)
		}
	})

	t.Run("unresolvable path", func(t *testing.T) {
		d := mustDiffer(t)

		_, err := d.CompareAt(document, document, "root.items[9]")
		if err == nil {
			t.Fatal("expected error for unresolvable path")
		}
		if !errors.Is(err, jsonerrors.ErrPathNotFound) {
			t.Errorf("error does not match ErrPathNotFound: %v", err)
		}
	})
}

func TestCompareStructureMode(t *testing.T) {
	d := mustDiffer(t)

	expected := mustNode(t, `{"a":1,"b":[1,2]}`)
	actual := mustNode(t, `{"a":99,"b":[5,6]}`)

	result := d.Compare(expected, actual)
	if !result.SimilarStructure() {
		t.Errorf("same shape should be structurally similar:\n%s", result.StructureReport())
	}
	if result.Similar() {
		t.Error("different leaf values should not be value-similar")
	}
}

func TestCompareNil(t *testing.T) {
	d := mustDiffer(t)

	t.Run("both nil", func(t *testing.T) {
		if !d.Compare(nil, nil).Similar() {
			t.Error("nil and nil should compare as equal nulls")
		}
	})

	t.Run("nil expected", func(t *testing.T) {
		actual := mustNode(t, `{"a":1}`)
		result := d.Compare(nil, actual)
		if result.Similar() {
			t.Error("null and object should differ")
		}
		diffs := result.Differences()
		if len(diffs) != 1 || diffs[0].Type != TypeMismatch {
			t.Errorf("unexpected differences: %v", diffs)
		}
	})

	t.Run("nil actual", func(t *testing.T) {
		expected := mustNode(t, `"x"`)
		if d.Compare(expected, nil).Similar() {
			t.Error("string and null should differ")
		}
	})
}

func TestCompareConcurrent(t *testing.T) {
	d := mustDiffer(t, WithTolerance(0.5))

	expected := mustNode(t, `{"a":[1,2,3],"b":{"c":"x"}}`)
	same := mustNode(t, `{"b":{"c":"x"},"a":[1.2,2,3]}`)
	different := mustNode(t, `{"a":[1,2],"b":{"c":"y"}}`)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if !d.Compare(expected, same).Similar() {
					t.Error("equivalent documents reported different")
					return
				}
				if d.Compare(expected, different).Similar() {
					t.Error("different documents reported similar")
					return
				}
			}
		}()
	}
	wg.Wait()
}
