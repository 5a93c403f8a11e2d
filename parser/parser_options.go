package parser

import (
	"fmt"
	"io"
	"net/http"

	"github.com/erraggy/jsontools"
	"github.com/erraggy/jsontools/internal/options"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte
	str      *string
	value    any
	valueSet bool

	// Configuration options
	userAgent          string
	httpClient         *http.Client
	insecureSkipVerify bool
	logger             Logger

	// Resource limits (0 means use default)
	maxDepth      int
	maxSourceSize int64

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// ParseWithOptions parses a document using functional options.
// This provides a flexible, extensible API that combines input source
// selection and configuration in a single function call.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("data.yaml"),
//	    parser.WithSourceName("expected"),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	p := &Parser{
		UserAgent:          cfg.userAgent,
		HTTPClient:         cfg.httpClient,
		InsecureSkipVerify: cfg.insecureSkipVerify,
		Logger:             cfg.logger,
		MaxDepth:           cfg.maxDepth,
		MaxSourceSize:      cfg.maxSourceSize,
	}

	// Route to appropriate parsing method based on input source
	var result *ParseResult
	var parseErr error
	switch {
	case cfg.filePath != nil:
		result, parseErr = p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		result, parseErr = p.ParseReader(cfg.reader)
	case cfg.bytes != nil:
		result, parseErr = p.ParseBytes(cfg.bytes)
	case cfg.str != nil:
		result, parseErr = p.ParseString(*cfg.str)
	case cfg.valueSet:
		var doc *Node
		doc, parseErr = p.FromValue(cfg.value)
		if parseErr == nil {
			result = &ParseResult{
				SourcePath:     "FromValue",
				SourceFormat:   SourceFormatUnknown,
				SourceEncoding: string(encUTF8),
				Document:       doc,
			}
		}
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("parser: no input source specified")
	}

	if parseErr != nil {
		return result, parseErr
	}

	// Apply source name override if specified
	if result != nil && cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}

	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{
		userAgent: jsontools.UserAgent(),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	if err := options.ValidateSingleInputSource(
		"parser: must specify an input source (use WithFilePath, WithReader, WithBytes, WithString, or WithValue)",
		"parser: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil, cfg.str != nil, cfg.valueSet,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return fmt.Errorf("parser: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return fmt.Errorf("parser: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithString specifies a string of JSON or YAML source text as the input
func WithString(s string) Option {
	return func(cfg *parseConfig) error {
		cfg.str = &s
		return nil
	}
}

// WithValue specifies a plain Go value as the input. The value is
// normalized through [Parser.FromValue]; nil is the null document.
func WithValue(v any) Option {
	return func(cfg *parseConfig) error {
		cfg.value = v
		cfg.valueSet = true
		return nil
	}
}

// WithSourceName overrides ParseResult.SourcePath in the result.
// Useful when parsing from memory on behalf of a named document.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = &name
		return nil
	}
}

// WithLogger specifies a structured logger for debug output
func WithLogger(logger Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = logger
		return nil
	}
}

// WithUserAgent specifies the User-Agent string used when fetching URLs
func WithUserAgent(userAgent string) Option {
	return func(cfg *parseConfig) error {
		cfg.userAgent = userAgent
		return nil
	}
}

// WithHTTPClient specifies the HTTP client used for fetching URLs.
// When set, WithInsecureSkipVerify is ignored; configure TLS on the
// client's transport instead.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *parseConfig) error {
		cfg.httpClient = client
		return nil
	}
}

// WithInsecureSkipVerify disables TLS certificate verification for URL input
func WithInsecureSkipVerify(skip bool) Option {
	return func(cfg *parseConfig) error {
		cfg.insecureSkipVerify = skip
		return nil
	}
}

// WithMaxDepth overrides the maximum nesting depth accepted by the parser
func WithMaxDepth(depth int) Option {
	return func(cfg *parseConfig) error {
		if depth < 0 {
			return fmt.Errorf("parser: max depth cannot be negative, got %d", depth)
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithMaxSourceSize overrides the maximum size in bytes accepted from a URL fetch
func WithMaxSourceSize(size int64) Option {
	return func(cfg *parseConfig) error {
		if size < 0 {
			return fmt.Errorf("parser: max source size cannot be negative, got %d", size)
		}
		cfg.maxSourceSize = size
		return nil
	}
}
