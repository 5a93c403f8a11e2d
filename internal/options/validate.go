// Package options provides shared utilities for option validation across packages.
// The parser's input options and the MCP server's document inputs both require
// exactly one source; the check lives here so the error behavior stays uniform.
package options

import "errors"

// ValidateSingleInputSource checks that exactly one of sources is set.
// noSourceMsg becomes the error when none is set, multiSourceMsg when
// more than one is.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	n := 0
	for _, set := range sources {
		if set {
			n++
		}
	}
	switch {
	case n == 0:
		return errors.New(noSourceMsg)
	case n > 1:
		return errors.New(multiSourceMsg)
	}
	return nil
}
