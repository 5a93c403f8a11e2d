/*
Package parser reads JSON and YAML documents into one canonical node tree.

# Overview

Every input route produces the same thing: a ParseResult whose Document is
an immutable tree of Nodes. A Node is a null, boolean, number, string,
array, or object; the rest of the module (differ, jsonpath, walker,
converter, jsonassert) operates on that tree and never looks back at the
source bytes.

# Input Routes

Parse reads a file path or an http(s) URL. ParseBytes, ParseString, and
ParseReader take in-memory input. FromValue converts a live Go value
(maps, slices, structs, scalars) without a serialization round trip.
ParseWithOptions exposes the same routes through functional options:

	result, err := parser.ParseWithOptions(
		parser.WithFilePath("orders.yaml"),
		parser.WithMaxDepth(50),
	)

# Format and Encoding Detection

The format is detected from the file extension, the Content-Type header,
or the content itself, in that order of preference. JSON input is decoded
by the JSON path; everything else goes through the YAML path, which
accepts JSON's syntax as a subset. UTF-8, UTF-16, and UTF-32 input (with
or without a byte order mark) is transcoded before parsing, and the
detected encoding is recorded on the ParseResult.

# Numbers

Numbers are held as arbitrary-precision rationals together with their
source lexeme. 0.1 means exactly one tenth, 9007199254740993 survives
beyond float64's integer range, and rendering reproduces the source
spelling rather than a normalized form. YAML-only spellings (hex, octal,
a leading dot) are re-rendered as plain decimal so every lexeme in the
tree is valid JSON.

# Objects

Objects preserve field order for rendering while comparing by presence,
not position. A duplicate field name keeps the first occurrence's
position with the last occurrence's value, matching JSON parser
convention.

# Warnings

YAML scalars whose tag has no JSON meaning (timestamps, binary) are
carried through as strings and reported in ParseResult.Warnings rather
than failing the parse.
*/
package parser
