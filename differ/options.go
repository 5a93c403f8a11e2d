package differ

import (
	"math"
	"math/big"
	"strconv"

	"github.com/erraggy/jsontools/jsonerrors"
	"github.com/erraggy/jsontools/parser"
)

// DefaultIgnoreMarker is the expected string value that matches any actual
// value during comparison.
const DefaultIgnoreMarker = "${json-unit.ignore}"

// DefaultDocumentName names the actual document in rendered reports.
const DefaultDocumentName = "actual"

// ExtraFieldPolicy controls whether fields present only in the actual
// document count as value differences.
type ExtraFieldPolicy int

const (
	// ExtraFieldsStrict reports every actual field the expected document
	// does not mention. This is the default.
	ExtraFieldsStrict ExtraFieldPolicy = iota
	// ExtraFieldsLenient tolerates actual fields the expected document does
	// not mention. Structure comparison still reports them.
	ExtraFieldsLenient
)

// String returns the policy name.
func (p ExtraFieldPolicy) String() string {
	switch p {
	case ExtraFieldsStrict:
		return "strict"
	case ExtraFieldsLenient:
		return "lenient"
	default:
		return "unknown"
	}
}

// Option is a function that configures a Differ.
type Option func(*config) error

// config holds the comparison configuration. It is built once by New and
// never mutated afterwards; concurrent comparisons read the same snapshot.
type config struct {
	ignoreMarker string
	tolerance    *big.Rat // nil requires exact equality
	toleranceStr string   // original form, for messages
	extraFields  ExtraFieldPolicy
	documentName string
	logger       parser.Logger
}

// applyOptions applies option functions and validates configuration.
func applyOptions(opts ...Option) (*config, error) {
	cfg := &config{
		ignoreMarker: DefaultIgnoreMarker,
		documentName: DefaultDocumentName,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// WithIgnoreMarker sets the expected string value that matches any actual
// value. An empty marker is rejected: it would make every empty expected
// string match anything.
// Default: DefaultIgnoreMarker
func WithIgnoreMarker(marker string) Option {
	return func(cfg *config) error {
		if marker == "" {
			return &jsonerrors.ConfigError{
				Option:  "WithIgnoreMarker",
				Message: "ignore marker cannot be empty",
			}
		}
		cfg.ignoreMarker = marker
		return nil
	}
}

// WithTolerance sets the numeric comparison tolerance. Two numbers are
// considered equal when their absolute difference does not exceed the
// tolerance. A zero tolerance requires exact equality; a negative, NaN, or
// infinite tolerance is rejected.
//
// The float is converted through its shortest decimal form, so
// WithTolerance(0.01) means exactly one hundredth.
// Default: no tolerance (exact equality)
func WithTolerance(tolerance float64) Option {
	return func(cfg *config) error {
		if math.IsNaN(tolerance) || math.IsInf(tolerance, 0) {
			return &jsonerrors.ConfigError{
				Option:  "WithTolerance",
				Value:   tolerance,
				Message: "tolerance must be a finite number",
			}
		}
		if tolerance < 0 {
			return &jsonerrors.ConfigError{
				Option:  "WithTolerance",
				Value:   tolerance,
				Message: "tolerance cannot be negative",
			}
		}
		lexeme := strconv.FormatFloat(tolerance, 'g', -1, 64)
		rat, ok := new(big.Rat).SetString(lexeme)
		if !ok {
			return &jsonerrors.ConfigError{
				Option:  "WithTolerance",
				Value:   tolerance,
				Message: "tolerance is not representable",
			}
		}
		cfg.tolerance = rat
		cfg.toleranceStr = lexeme
		return nil
	}
}

// WithToleranceString sets the numeric comparison tolerance from its exact
// textual form, bypassing binary floating point entirely. It accepts the
// same syntax as big.Rat.SetString, e.g. "0.01", "1e-9", or "1/3".
// Default: no tolerance (exact equality)
func WithToleranceString(tolerance string) Option {
	return func(cfg *config) error {
		rat, ok := new(big.Rat).SetString(tolerance)
		if !ok {
			return &jsonerrors.ConfigError{
				Option:  "WithToleranceString",
				Value:   tolerance,
				Message: "cannot parse tolerance",
			}
		}
		if rat.Sign() < 0 {
			return &jsonerrors.ConfigError{
				Option:  "WithToleranceString",
				Value:   tolerance,
				Message: "tolerance cannot be negative",
			}
		}
		cfg.tolerance = rat
		cfg.toleranceStr = tolerance
		return nil
	}
}

// WithExtraFields sets the policy for fields present only in the actual
// document.
// Default: ExtraFieldsStrict
func WithExtraFields(policy ExtraFieldPolicy) Option {
	return func(cfg *config) error {
		switch policy {
		case ExtraFieldsStrict, ExtraFieldsLenient:
			cfg.extraFields = policy
			return nil
		default:
			return &jsonerrors.ConfigError{
				Option:  "WithExtraFields",
				Value:   policy,
				Message: "unknown extra field policy",
			}
		}
	}
}

// WithDocumentName names the actual document in rendered reports. Useful
// when comparing against a subtree of a larger document, where "actual"
// undersells what was compared.
// Default: DefaultDocumentName
func WithDocumentName(name string) Option {
	return func(cfg *config) error {
		if name == "" {
			return &jsonerrors.ConfigError{
				Option:  "WithDocumentName",
				Message: "document name cannot be empty",
			}
		}
		cfg.documentName = name
		return nil
	}
}

// WithLogger sets the logger for comparison diagnostics.
// Default: no logging
func WithLogger(logger parser.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = logger
		return nil
	}
}
