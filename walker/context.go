package walker

import (
	"context"
	"sync"

	"github.com/erraggy/jsontools/parser"
)

// WalkContext provides contextual information about the current node being
// visited. It follows the http.Request pattern for context access.
//
// Contexts are pooled: a WalkContext is only valid for the duration of the
// handler call it was passed to. Handlers that need to retain information
// must copy the fields, not the pointer.
type WalkContext struct {
	// Path is the dotted path to the current node, with bracketed array
	// indexes. Empty for the document root.
	// Example: "orders[2].items[0].sku"
	Path string

	// Name is the object field name that holds the current node.
	// Empty for the document root and for array elements.
	Name string

	// Index is the element position when the current node is an array
	// element, -1 otherwise.
	Index int

	// Depth is the nesting depth, 0 at the document root.
	Depth int

	// Parent is the ancestor chain, nearest first. Only populated when
	// parent tracking is enabled via WithParentTracking.
	Parent *ParentInfo

	ctx context.Context
}

// Context returns the context.Context for cancellation and deadline
// propagation. Returns context.Background() if no context was set.
func (wc *WalkContext) Context() context.Context {
	if wc.ctx == nil {
		return context.Background()
	}
	return wc.ctx
}

// IsRoot returns true if the current node is the document root.
func (wc *WalkContext) IsRoot() bool {
	return wc.Depth == 0
}

// IsElement returns true if the current node is an array element.
func (wc *WalkContext) IsElement() bool {
	return wc.Index >= 0
}

// ParentInfo provides information about an ancestor node in the traversal.
// This enables handlers to access ancestor nodes for context-aware processing.
type ParentInfo struct {
	// Node is the ancestor node.
	Node *parser.Node

	// Path is the path to this ancestor.
	Path string

	// Parent is the grandparent, enabling ancestor chain traversal.
	// nil for the document root.
	Parent *ParentInfo
}

// ParentObject returns the nearest ancestor that is an object, if any.
// Requires parent tracking.
func (wc *WalkContext) ParentObject() (*parser.Node, bool) {
	for p := wc.Parent; p != nil; p = p.Parent {
		if p.Node.Kind() == parser.KindObject {
			return p.Node, true
		}
	}
	return nil, false
}

// ParentArray returns the nearest ancestor that is an array, if any.
// Requires parent tracking.
func (wc *WalkContext) ParentArray() (*parser.Node, bool) {
	for p := wc.Parent; p != nil; p = p.Parent {
		if p.Node.Kind() == parser.KindArray {
			return p.Node, true
		}
	}
	return nil, false
}

// Ancestors returns the full ancestor chain, nearest first.
// Returns nil at the root or when parent tracking is not enabled.
func (wc *WalkContext) Ancestors() []*ParentInfo {
	var ancestors []*ParentInfo
	for p := wc.Parent; p != nil; p = p.Parent {
		ancestors = append(ancestors, p)
	}
	return ancestors
}

// contextPool recycles WalkContext values across handler calls.
var contextPool = sync.Pool{
	New: func() any { return new(WalkContext) },
}

// newContext builds a pooled WalkContext for one handler call.
func (w *Walker) newContext(path, name string, index, depth int, parent *ParentInfo) *WalkContext {
	wc := contextPool.Get().(*WalkContext)
	wc.Path = path
	wc.Name = name
	wc.Index = index
	wc.Depth = depth
	wc.Parent = parent
	wc.ctx = w.userCtx
	return wc
}

// releaseContext clears a WalkContext and returns it to the pool.
func releaseContext(wc *WalkContext) {
	*wc = WalkContext{}
	contextPool.Put(wc)
}
