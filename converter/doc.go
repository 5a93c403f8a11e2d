// Package converter renders parsed documents back to JSON or YAML bytes.
//
// The converter round-trips what the parser read: object field order and
// numeric source lexemes survive, so converting a document between formats
// never reorders fields or rewrites 1.50 as 1.5. This makes it safe for
// tools that normalize whole files (the CLI convert command) and for
// presenting extracted subtrees.
//
// # Quick Start
//
// Render a parsed document as YAML:
//
//	doc, err := parser.New().ParseString(`{"name": "widget", "price": 9.99}`)
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := converter.YAML(doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.Stdout.Write(out)
//
// Or use a reusable Converter instance to control layout:
//
//	c := converter.New()
//	c.JSONIndent = "\t"
//	out1, _ := c.JSON(doc1)
//	out2, _ := c.JSON(doc2)
//
// # Output Forms
//
//   - [Converter.JSON]: indented JSON, or compact when JSONIndent is empty
//   - [Converter.YAML]: block-style YAML, two-space indent by default
//   - [Converter.Convert]: dispatches on a [parser.SourceFormat], letting
//     callers preserve the input format of a document they are rewriting
//
// Strings whose plain YAML form would resolve to another type (such as
// "007" or "true") are quoted in YAML output, so round-tripping through
// either format preserves every value exactly.
//
// # Related Packages
//
//   - [github.com/erraggy/jsontools/parser] - Parse documents before rendering
//   - [github.com/erraggy/jsontools/jsonpath] - Extract a subtree to render
//   - [github.com/erraggy/jsontools/differ] - Compare documents instead of rewriting them
package converter
