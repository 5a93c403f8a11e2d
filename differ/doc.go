/*
Package differ compares two parsed documents and reports their differences.

# Overview

The comparison walks expected and actual trees together, depth-first and
pre-order, and records one Difference per mismatch. Differences are data,
not errors: a comparison that finds mismatches still succeeds, and the
caller reads the Result to decide what to do. Only malformed call arguments
(bad path syntax, an unresolvable path, invalid options) are reported as
errors.

# Comparison Modes

Every comparison computes two views of the same walk:

  - Value comparison requires matching kinds and equal leaf values.
    Result.Similar answers it and Result.String renders its report.
  - Structure comparison only requires matching shape: any two scalars
    match regardless of kind or value, while container kind, object
    fields, and array lengths must still agree. Result.SimilarStructure
    answers it and Result.StructureReport renders its report.

Object field order never matters; only field presence does. Array element
order always matters, in both modes.

# Ignore Marker

An expected string leaf equal to the configured ignore marker matches any
actual value, including containers, at any depth. The marker is honored
before any type or value inspection. The default marker is
"${json-unit.ignore}":

	expected, _ := parser.FromValue(map[string]any{"id": "${json-unit.ignore}", "name": "widget"})
	actual, _ := parser.FromValue(map[string]any{"id": 12345, "name": "widget"})

	d, _ := differ.New()
	d.Compare(expected, actual).Similar() // true

# Numeric Tolerance

Without a tolerance, numbers must be mathematically equal; 1.0 and 1 are
the same number. With a tolerance t, numbers match when their absolute
difference is at most t (the boundary is inclusive). Tolerances are held
as exact rationals, so decimal tolerances like 0.01 carry no binary
floating point error:

	d, err := differ.New(differ.WithTolerance(0.01))

# Extra Fields

Whether fields present only in the actual document count as differences is
configurable. The default strict policy reports them; the lenient policy
ignores them in value comparison. Structure comparison always reports them,
since an extra field changes the shape:

	d, err := differ.New(differ.WithExtraFields(differ.ExtraFieldsLenient))

# Partial Comparison

Differ.CompareAt compares the expected tree against the part of a larger
document addressed by a path such as "root.items[1].name". Recorded
difference paths include the prefix, so reports point into the full
document:

	result, err := d.CompareAt(expected, document, "root.items[1]")

# Concurrency

A Differ is immutable after construction. Each comparison is a pure
function of its inputs with all accumulation state local to the call, so a
single Differ may be shared by any number of goroutines.
*/
package differ
