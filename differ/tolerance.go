package differ

import (
	"math/big"

	"github.com/erraggy/jsontools/parser"
)

// compareNumbers applies the numeric equality rules in value comparison.
//
// Without a tolerance, the arbitrary-precision values must be equal;
// representation does not matter, so 1.0, 1, and 1e0 are the same number.
// With a tolerance t, the numbers match when |expected - actual| <= t.
// The boundary is inclusive: a difference of exactly t passes.
func (c *comparison) compareNumbers(expected, actual *parser.Node) {
	exp := expected.Number()
	act := actual.Number()

	if c.cfg.tolerance == nil {
		if exp.Cmp(act) != 0 {
			c.record(ValueMismatch, "expected %s, found %s", expected.Lexeme(), actual.Lexeme())
		}
		return
	}

	diff := new(big.Rat).Sub(exp, act)
	diff.Abs(diff)
	if diff.Cmp(c.cfg.tolerance) > 0 {
		c.record(ValueMismatch, "expected %s, found %s (tolerance %s)",
			expected.Lexeme(), actual.Lexeme(), c.cfg.toleranceStr)
	}
}
