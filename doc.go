// Package jsontools provides comprehensive tools for comparing, inspecting, and
// transforming JSON and YAML documents.
//
// jsontools offers a set of packages built around a single canonical document
// tree: parse any supported input into a tree of nodes, then diff, traverse,
// address, convert, or assert against it.
//
// # Overview
//
// The library consists of six primary packages:
//
//   - parser: Parse JSON and YAML into a canonical node tree
//   - differ: Compare two documents and report structured differences
//   - jsonpath: Address individual values inside a document by path
//   - jsonassert: Test-friendly assertions built on the differ
//   - walker: Depth-first traversal of a node tree with path tracking
//   - converter: Serialize a node tree back to JSON or YAML
//
// All packages operate on the same canonical tree, so a document parsed once
// can flow through any combination of them without re-parsing.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/jsontools
//
// # Quick Start
//
// Parse a document:
//
//	import "github.com/erraggy/jsontools/parser"
//
//	p := parser.New()
//	result, err := p.Parse("config.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Parsed %s in %s\n", result.SourcePath, result.LoadTime)
//
// Compare two documents:
//
//	import "github.com/erraggy/jsontools/differ"
//
//	d, err := differ.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	result := d.Compare(expected, actual)
//	if !result.Similar() {
//		fmt.Println(result.String())
//	}
//
// Extract a value by path:
//
//	import "github.com/erraggy/jsontools/jsonpath"
//
//	path, err := jsonpath.Parse("items[2].name")
//	if err != nil {
//		log.Fatal(err)
//	}
//	node, err := path.Resolve(doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(node.String())
//
// # Parser Package
//
// The parser package turns JSON or YAML input into a canonical tree of nodes.
// Numbers are kept at arbitrary precision, object field order is preserved, and
// YAML scalars are mapped onto the same six node kinds JSON produces, so the
// rest of the library never needs to know which format a document came from.
//
// Key features:
//   - Multi-format support (JSON, YAML) with automatic detection
//   - Arbitrary-precision numbers with original formatting preserved
//   - Field order preservation for objects
//   - UTF-8, UTF-16, and UTF-32 input encodings
//   - File, URL, reader, byte, string, and Go value sources
//
// Example:
//
//	p := parser.New()
//	result, err := p.ParseString(`{"id": 1, "name": "widget"}`)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if name, ok := result.Document.Field("name"); ok {
//		fmt.Println(name.Text())
//	}
//
// See the parser package documentation for more details.
//
// # Differ Package
//
// The differ package compares an expected document against an actual document
// and collects every difference into a result. Differences are data, not
// errors: a comparison that finds mismatches still succeeds, and the caller
// inspects the result to decide what to do.
//
// Key features:
//   - Value comparison and structure-only comparison from a single pass
//   - Numeric tolerance for approximate comparison
//   - Ignore markers to skip designated subtrees
//   - Strict or lenient handling of unexpected object fields
//   - Human-readable reports with full paths to each difference
//
// Example:
//
//	d, err := differ.New(differ.WithTolerance(0.01))
//	if err != nil {
//		log.Fatal(err)
//	}
//	result := d.Compare(expected, actual)
//	for _, diff := range result.Differences() {
//		fmt.Printf("%s at %q: %s\n", diff.Type, diff.Path, diff.Message)
//	}
//
// See the differ package documentation for more details.
//
// # JSONPath Package
//
// The jsonpath package parses dotted path expressions such as "a.b[2].c" and
// resolves them against a document tree. Paths are validated up front, so a
// syntactically bad path is reported before any document is touched.
//
// Example:
//
//	path := jsonpath.MustParse("servers[0].host")
//	node, err := path.Resolve(doc)
//	if err != nil {
//		var notFound *jsonerrors.PathNotFoundError
//		if errors.As(err, &notFound) {
//			fmt.Printf("no value at %s\n", notFound.Path)
//		}
//	}
//
// See the jsonpath package documentation for more details.
//
// # JSONAssert Package
//
// The jsonassert package wraps the differ in an API shaped for Go tests. It
// accepts expected and actual values in any form the parser understands and
// reports mismatches through the standard testing interfaces.
//
// Example:
//
//	func TestResponse(t *testing.T) {
//		body := fetchBody(t)
//		jsonassert.Equal(t, `{"status": "ok", "count": 3}`, body)
//	}
//
// See the jsonassert package documentation for more details.
//
// # Walker Package
//
// The walker package visits every node of a document tree in depth-first
// order, reporting the path to each node as it goes. It backs the CLI's path
// listing and is useful for building custom document analysis.
//
// Example:
//
//	err := walker.Walk(doc, func(path string, node *parser.Node) error {
//		if node.Kind() == parser.KindText {
//			fmt.Printf("%s = %q\n", path, node.Text())
//		}
//		return nil
//	})
//
// See the walker package documentation for more details.
//
// # Converter Package
//
// The converter package serializes a node tree to JSON (compact or indented)
// or YAML. Combined with the parser it performs format conversion that
// preserves field order and numeric formatting.
//
// Example:
//
//	c := converter.New()
//	out, err := c.Convert(doc, converter.FormatYAML)
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.Stdout.Write(out)
//
// See the converter package documentation for more details.
//
// # Common Workflows
//
// Diff two files and print a report:
//
//	p := parser.New()
//	expected, err := p.Parse("expected.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	actual, err := p.Parse("actual.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	d, err := differ.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	result := d.Compare(expected.Document, actual.Document)
//	if !result.Similar() {
//		fmt.Println(result.String())
//	}
//
// Convert YAML to JSON:
//
//	p := parser.New()
//	result, err := p.Parse("config.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	c := converter.New()
//	c.Indent = 2
//	out, err := c.Convert(result.Document, converter.FormatJSON)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = os.WriteFile("config.json", out, 0o600)
//
// Compare only part of a document:
//
//	d, err := differ.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := d.CompareAt(expected, document, "response.items[0]")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.Similar() {
//		fmt.Println(result.String())
//	}
//
// # Error Handling
//
// All packages follow consistent error handling patterns:
//
//   - Parse errors: *jsonerrors.ParseError with source, line, and column
//   - Path errors: *jsonerrors.PathSyntaxError and *jsonerrors.PathNotFoundError
//   - Configuration errors: *jsonerrors.ConfigError from option validation
//   - Differences: collected in the differ's Result, never returned as error
//
// Every typed error matches a package-level sentinel via errors.Is, so callers
// can branch on category without inspecting concrete types.
//
// # Command-Line Interface
//
// In addition to the library packages, jsontools provides a command-line
// interface:
//
//	# Diff two documents
//	jsontools diff expected.json actual.json
//
//	# Extract a value by path
//	jsontools extract -p "items[0].name" data.yaml
//
//	# List every path in a document
//	jsontools paths data.json
//
//	# Convert between formats
//	jsontools convert -t yaml -o config.yaml config.json
//
// Install the CLI:
//
//	go install github.com/erraggy/jsontools/cmd/jsontools@latest
//
// # Additional Resources
//
//   - GitHub Repository: https://github.com/erraggy/jsontools
//   - Go Package Documentation: https://pkg.go.dev/github.com/erraggy/jsontools
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in the
// repository for full details.
package jsontools
