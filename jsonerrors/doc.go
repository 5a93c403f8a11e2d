// Package jsonerrors provides structured error types for the jsontools library.
//
// Import path: github.com/erraggy/jsontools/jsonerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies. Content differences between two documents are never
// errors; they are reported as data by the differ package. The types here cover the
// failures that abort an operation entirely: unparsable input, malformed path
// expressions, paths that address nothing, and invalid configuration.
//
// # Error Types
//
// The package provides four core error types:
//
//   - [ParseError]: JSON/YAML parsing failures during input normalization
//   - [PathSyntaxError]: path expressions that do not match the path grammar
//   - [PathNotFoundError]: well-formed paths addressing an absent field or index
//   - [ConfigError]: invalid options, such as a negative tolerance
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrPathSyntax]: Matches any [PathSyntaxError]
//   - [ErrPathNotFound]: Matches any [PathNotFoundError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("data.json"))
//	if errors.Is(err, jsonerrors.ErrParse) {
//	    // Handle parse error
//	}
//
// Extract error details with errors.As():
//
//	var pathErr *jsonerrors.PathNotFoundError
//	if errors.As(err, &pathErr) {
//	    fmt.Printf("nothing at %s\n", pathErr.Path)
//	}
//
// # Error Chaining
//
// All error types support error chaining via the Cause field and Unwrap() method.
// This allows finding root causes through the standard error chain:
//
//	var parseErr *jsonerrors.ParseError
//	if errors.As(err, &parseErr) {
//	    if errors.Is(parseErr.Cause, os.ErrNotExist) {
//	        // The input file doesn't exist
//	    }
//	}
package jsonerrors
