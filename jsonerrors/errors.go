// Package jsonerrors provides structured error types for jsontools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: JSON/YAML parsing failures during input normalization
//   - PathSyntaxError: path expressions that violate the path grammar
//   - PathNotFoundError: well-formed paths that address nothing in the document
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.Is
//
//	node, err := path.Resolve(doc)
//	if err != nil {
//	    if errors.Is(err, jsonerrors.ErrPathNotFound) {
//	        // The document has no value at this path
//	    }
//	}
package jsonerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrPathSyntax indicates a malformed path expression.
	ErrPathSyntax = errors.New("path syntax error")

	// ErrPathNotFound indicates a path that addresses nothing in the document.
	ErrPathNotFound = errors.New("path not found")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse a JSON or YAML document.
// This includes deserialization errors and unsupported constructs such as
// non-finite YAML floats, which have no JSON meaning.
type ParseError struct {
	// Source is the file path or source identifier
	Source string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// PathSyntaxError represents a path expression that does not match the
// path grammar: segment ("." segment | "[" digits "]")*, where segment
// is [A-Za-z_][A-Za-z0-9_]*.
type PathSyntaxError struct {
	// Path is the offending path expression
	Path string
	// Position is the byte offset where parsing failed (-1 if unknown)
	Position int
	// Message describes the syntax violation
	Message string
}

// Error returns a human-readable error message.
func (e *PathSyntaxError) Error() string {
	msg := "path syntax error"
	if e.Path != "" {
		msg += fmt.Sprintf(" in %q", e.Path)
	}
	if e.Position >= 0 {
		msg += fmt.Sprintf(" at position %d", e.Position)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *PathSyntaxError) Is(target error) bool {
	return target == ErrPathSyntax
}

// PathNotFoundError represents a well-formed path that references a field or
// index absent from the document being resolved.
type PathNotFoundError struct {
	// Path is the full path expression being resolved
	Path string
	// Segment is the segment that failed to resolve, e.g. `name` or `[3]`
	Segment string
	// Resolved is the portion of the path that resolved successfully ("" at root)
	Resolved string
	// Message describes why the segment did not resolve
	Message string
}

// Error returns a human-readable error message.
func (e *PathNotFoundError) Error() string {
	msg := "path not found"
	if e.Path != "" {
		msg += fmt.Sprintf(": %q", e.Path)
	}
	if e.Segment != "" {
		msg += fmt.Sprintf(": segment %q", e.Segment)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *PathNotFoundError) Is(target error) bool {
	return target == ErrPathNotFound
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting
// settings, such as a negative numeric tolerance.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
