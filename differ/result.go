package differ

import (
	"fmt"
	"strings"
)

// DifferenceType classifies a recorded difference.
type DifferenceType string

const (
	// TypeMismatch records expected and actual nodes of different kinds.
	TypeMismatch DifferenceType = "type mismatch"
	// MissingField records an expected object field absent from the actual
	// document.
	MissingField DifferenceType = "missing field"
	// ExtraField records an actual object field the expected document does
	// not mention.
	ExtraField DifferenceType = "extra field"
	// ArrayLength records arrays whose lengths differ.
	ArrayLength DifferenceType = "array length"
	// ValueMismatch records same-kind leaves whose values differ.
	ValueMismatch DifferenceType = "value mismatch"
)

// Difference is one recorded mismatch between expected and actual.
type Difference struct {
	// Path addresses the mismatched node in dotted/bracketed notation,
	// rooted at the comparison's starting point ("" for the root itself).
	Path string
	// Type classifies the mismatch.
	Type DifferenceType
	// Message is a human-readable description of the mismatch.
	Message string
}

// String returns a formatted one-line representation of the difference.
func (d Difference) String() string {
	return fmt.Sprintf("%s at %q: %s", d.Type, d.Path, d.Message)
}

// Result contains the differences found by one comparison. Both comparison
// modes are computed by the same Compare call; rendering never recomputes
// the comparison. A Result is immutable.
type Result struct {
	documentName   string
	valueDiffs     []Difference
	structureDiffs []Difference
}

// Similar reports whether the documents have the same values.
func (r *Result) Similar() bool {
	return len(r.valueDiffs) == 0
}

// SimilarStructure reports whether the documents have the same shape.
func (r *Result) SimilarStructure() bool {
	return len(r.structureDiffs) == 0
}

// Differences returns the value comparison differences in discovery order.
// The returned slice is a copy.
func (r *Result) Differences() []Difference {
	return copyDiffs(r.valueDiffs)
}

// StructureDifferences returns the structure comparison differences in
// discovery order. The returned slice is a copy.
func (r *Result) StructureDifferences() []Difference {
	return copyDiffs(r.structureDiffs)
}

// String renders the value comparison report, one difference per line in
// discovery order.
func (r *Result) String() string {
	return r.render(ModeValue)
}

// StructureReport renders the structure comparison report, one difference
// per line in discovery order.
func (r *Result) StructureReport() string {
	return r.render(ModeStructure)
}

func (r *Result) render(mode Mode) string {
	diffs := r.valueDiffs
	if mode == ModeStructure {
		diffs = r.structureDiffs
	}

	if len(diffs) == 0 {
		if mode == ModeStructure {
			return fmt.Sprintf("expected and %s are structurally similar", r.documentName)
		}
		return fmt.Sprintf("expected and %s are similar", r.documentName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "found %d difference(s) between expected and %s:", len(diffs), r.documentName)
	for _, d := range diffs {
		b.WriteString("\n  ")
		b.WriteString(d.String())
	}
	return b.String()
}

func copyDiffs(diffs []Difference) []Difference {
	if len(diffs) == 0 {
		return nil
	}
	out := make([]Difference, len(diffs))
	copy(out, diffs)
	return out
}
