package jsonassert

import (
	"github.com/erraggy/jsontools/differ"
)

// Config is an immutable bundle of comparison options applied to every
// assertion made through it. The zero value is the default configuration;
// a Config may be shared across concurrent tests.
type Config struct {
	opts []differ.Option
}

// NewConfig validates the options and returns a Config carrying them.
// Invalid options (negative tolerance, empty ignore marker) are reported
// here, once, instead of on every assertion.
func NewConfig(opts ...differ.Option) (Config, error) {
	if _, err := differ.New(opts...); err != nil {
		return Config{}, err
	}
	return Config{opts: append([]differ.Option(nil), opts...)}, nil
}

// Default returns the default configuration: ignore marker
// "${json-unit.ignore}", exact numeric equality, strict extra fields.
func Default() Config {
	return Config{}
}

// Equal is Config-scoped [Equal]. Per-call options apply after the
// Config's own and win on conflict.
func (c Config) Equal(t TestingT, expected, actual any, opts ...differ.Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return check(t, expected, actual, "", false, c.merged(opts))
}

// PartEqual is Config-scoped [PartEqual].
func (c Config) PartEqual(t TestingT, expected, fullDocument any, path string, opts ...differ.Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return check(t, expected, fullDocument, path, false, c.merged(opts))
}

// StructureEqual is Config-scoped [StructureEqual].
func (c Config) StructureEqual(t TestingT, expected, actual any, opts ...differ.Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return check(t, expected, actual, "", true, c.merged(opts))
}

// PartStructureEqual is Config-scoped [PartStructureEqual].
func (c Config) PartStructureEqual(t TestingT, expected, fullDocument any, path string, opts ...differ.Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return check(t, expected, fullDocument, path, true, c.merged(opts))
}

func (c Config) merged(opts []differ.Option) []differ.Option {
	if len(opts) == 0 {
		return c.opts
	}
	merged := make([]differ.Option, 0, len(c.opts)+len(opts))
	merged = append(merged, c.opts...)
	merged = append(merged, opts...)
	return merged
}
