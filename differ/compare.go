package differ

import (
	"fmt"
	"strconv"

	"github.com/erraggy/jsontools/internal/pathutil"
	"github.com/erraggy/jsontools/parser"
)

// comparison carries the state of one walk. All state is local to a single
// Compare call; nothing here is shared.
type comparison struct {
	mode  Mode
	cfg   *config
	path  *pathutil.PathBuilder
	diffs *[]Difference
}

func (c *comparison) record(t DifferenceType, format string, args ...any) {
	*c.diffs = append(*c.diffs, Difference{
		Path:    c.path.String(),
		Type:    t,
		Message: fmt.Sprintf(format, args...),
	})
}

// compare visits one expected/actual pair. Depth-first, pre-order.
func (c *comparison) compare(expected, actual *parser.Node) {
	// The ignore marker wins over every other rule, at any depth, in both
	// modes, regardless of the actual value's kind.
	if expected.Kind() == parser.KindText && expected.Text() == c.cfg.ignoreMarker {
		return
	}

	if c.mode == ModeStructure {
		c.compareStructure(expected, actual)
		return
	}

	if expected.Kind() != actual.Kind() {
		c.record(TypeMismatch, "expected %s, found %s", expected.Kind(), actual.Kind())
		return
	}

	switch expected.Kind() {
	case parser.KindObject:
		c.compareObjects(expected, actual)
	case parser.KindArray:
		c.compareArrays(expected, actual)
	case parser.KindNumber:
		c.compareNumbers(expected, actual)
	case parser.KindText:
		if expected.Text() != actual.Text() {
			c.record(ValueMismatch, "expected %s, found %s", describe(expected), describe(actual))
		}
	case parser.KindBool:
		if expected.Bool() != actual.Bool() {
			c.record(ValueMismatch, "expected %s, found %s", describe(expected), describe(actual))
		}
	case parser.KindNull:
		// Null equals null.
	}
}

// compareStructure applies the shape-only rules: any two scalars match,
// containers must agree in kind and recurse.
func (c *comparison) compareStructure(expected, actual *parser.Node) {
	if !expected.IsContainer() && !actual.IsContainer() {
		return
	}

	if expected.Kind() != actual.Kind() {
		c.record(TypeMismatch, "expected %s, found %s", expected.Kind(), actual.Kind())
		return
	}

	if expected.Kind() == parser.KindObject {
		c.compareObjects(expected, actual)
	} else {
		c.compareArrays(expected, actual)
	}
}

// compareObjects reports missing fields in expected's order, then extra
// fields in actual's order, then recurses into shared fields in expected's
// order. Field presence, not position, determines equality.
func (c *comparison) compareObjects(expected, actual *parser.Node) {
	for i := 0; i < expected.Len(); i++ {
		name, value := expected.FieldAt(i)
		if _, ok := actual.Field(name); !ok {
			c.path.Push(name)
			c.record(MissingField, "expected %s", describe(value))
			c.path.Pop()
		}
	}

	// Structure comparison always reports extras; an unexpected field is a
	// shape change. Value comparison honors the configured policy.
	if c.mode == ModeStructure || c.cfg.extraFields == ExtraFieldsStrict {
		for i := 0; i < actual.Len(); i++ {
			name, value := actual.FieldAt(i)
			if _, ok := expected.Field(name); !ok {
				c.path.Push(name)
				c.record(ExtraField, "found unexpected %s", describe(value))
				c.path.Pop()
			}
		}
	}

	for i := 0; i < expected.Len(); i++ {
		name, expValue := expected.FieldAt(i)
		actValue, ok := actual.Field(name)
		if !ok {
			continue
		}
		c.path.Push(name)
		c.compare(expValue, actValue)
		c.path.Pop()
	}
}

// compareArrays reports a length mismatch once, then recurses pairwise by
// index up to the shorter length. Element order is significant in both modes.
func (c *comparison) compareArrays(expected, actual *parser.Node) {
	if expected.Len() != actual.Len() {
		c.record(ArrayLength, "expected length %d, found %d", expected.Len(), actual.Len())
	}

	n := min(expected.Len(), actual.Len())
	for i := 0; i < n; i++ {
		c.path.PushIndex(i)
		c.compare(expected.Item(i), actual.Item(i))
		c.path.Pop()
	}
}

// describe summarizes a node for difference messages: leaf values verbatim,
// containers by kind.
func describe(n *parser.Node) string {
	switch n.Kind() {
	case parser.KindNull:
		return "null"
	case parser.KindBool:
		if n.Bool() {
			return "true"
		}
		return "false"
	case parser.KindNumber:
		return n.Lexeme()
	case parser.KindText:
		return strconv.Quote(n.Text())
	case parser.KindArray:
		return "an array"
	default:
		return "an object"
	}
}
