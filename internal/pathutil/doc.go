// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

// Package pathutil provides efficient path building utilities for document
// traversal.
//
// The primary type is [PathBuilder], which uses push/pop semantics to build
// dotted/bracketed paths such as "root.items[2].name" incrementally without
// allocating intermediate strings. This is particularly useful in recursive
// traversal where paths are built on each recursive call but only used when
// reporting differences or resolution failures.
//
// # PathBuilder Usage
//
// Use [Get] to obtain a pooled PathBuilder, and [Put] to return it:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("items")
//	path.PushIndex(i)
//	// ... recurse ...
//	path.Pop()
//	path.Pop()
//
//	// Only call String() when needed (e.g., recording a difference)
//	if mismatch {
//	    record(path.String(), description)
//	}
//
// Field segments are joined with dots; index segments append directly, so
// the example above produces "items[2]" rather than "items.[2]".
package pathutil
