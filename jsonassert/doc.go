/*
Package jsonassert provides test assertions for comparing JSON documents.

The assertions delegate to the differ package and fail the test with the
rendered difference report when the documents do not match. Mismatched
content never panics and never aborts the test run; it is reported through
the test's Errorf like any other assertion failure.

# Usage

	func TestResponse(t *testing.T) {
		body := callAPI(t)
		jsonassert.Equal(t, `{"status":"ok","count":3}`, body)
	}

A failed assertion reports every difference at once:

	found 2 difference(s) between expected and actual:
	  value mismatch at "status": expected "ok", found "error"
	  missing field at "count": expected 3

# Input forms

Both the expected and actual arguments accept any supported document
representation: *parser.Node, string, []byte, json.RawMessage, io.Reader,
or a plain Go value (maps, slices, numbers, structs via encoding/json).
Everything converges on the parser package's Node type before comparison,
so mixing representations is fine:

	jsonassert.Equal(t, map[string]any{"a": 1}, response.Body)

Strings and byte slices are parsed as documents, JSON or YAML alike.

# Expected strings

An expected string that cannot possibly be a JSON document is taken as a
JSON string value instead of failing to parse. This makes leaf assertions
read naturally:

	jsonassert.PartEqual(t, "y", doc, "root.items[1].name")

expects the string "y" at that path. Strings that start an object, array,
or quoted string, or spell a JSON literal or number, are parsed as
documents: Equal(t, "true", body) expects the boolean true, not the text
"true".

# Part comparison

PartEqual and PartStructureEqual resolve a dotted/bracketed path (for
example "root.items[1].name") in the full actual document and compare only
the addressed subtree. Reported difference paths stay rooted at the full
document, and the report names it "fullJson" rather than "actual". An
empty path compares the whole document.

# Configuration

Options are the differ package's options. Pass them per assertion:

	jsonassert.Equal(t, expected, actual, differ.WithTolerance(0.01))

or bundle them in an immutable Config built once and shared:

	cfg, err := jsonassert.NewConfig(
		differ.WithTolerance(0.01),
		differ.WithExtraFields(differ.ExtraFieldsLenient),
	)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Equal(t, expected, actual)

Default() returns the zero configuration: ignore marker
"${json-unit.ignore}", exact numeric equality, strict extra fields. There
is no process-wide mutable state; concurrent tests can share a Config
freely.
*/
package jsonassert
