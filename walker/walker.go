package walker

import (
	"context"
	"fmt"

	"github.com/erraggy/jsontools/internal/pathutil"
	"github.com/erraggy/jsontools/parser"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// NodeHandler is called for every node regardless of kind.
type NodeHandler func(wc *WalkContext, node *parser.Node) Action

// ObjectHandler is called for each object node.
// It runs before the generic NodeHandler.
type ObjectHandler func(wc *WalkContext, node *parser.Node) Action

// ArrayHandler is called for each array node.
// It runs before the generic NodeHandler.
type ArrayHandler func(wc *WalkContext, node *parser.Node) Action

// LeafHandler is called for each leaf node: null, boolean, number, or string.
// It runs before the generic NodeHandler.
type LeafHandler func(wc *WalkContext, node *parser.Node) Action

// defaultMaxDepth bounds recursion for pathological nesting.
const defaultMaxDepth = 100

// Walker traverses JSON trees depth-first and calls handlers for each node.
type Walker struct {
	// Handlers
	onNode   NodeHandler
	onObject ObjectHandler
	onArray  ArrayHandler
	onLeaf   LeafHandler

	// Configuration
	maxDepth    int
	trackParent bool
	userCtx     context.Context

	// Internal state
	stopped bool
}

// New creates a new Walker with default settings.
func New() *Walker {
	return &Walker{
		maxDepth: defaultMaxDepth,
	}
}

// Option configures the Walker.
type Option func(*Walker)

// WithNodeHandler sets the handler called for every node.
// Kind-specific handlers run before it.
func WithNodeHandler(fn NodeHandler) Option {
	return func(w *Walker) { w.onNode = fn }
}

// WithObjectHandler sets the handler for object nodes.
func WithObjectHandler(fn ObjectHandler) Option {
	return func(w *Walker) { w.onObject = fn }
}

// WithArrayHandler sets the handler for array nodes.
func WithArrayHandler(fn ArrayHandler) Option {
	return func(w *Walker) { w.onArray = fn }
}

// WithLeafHandler sets the handler for leaf nodes.
func WithLeafHandler(fn LeafHandler) Option {
	return func(w *Walker) { w.onLeaf = fn }
}

// WithMaxDepth sets the maximum traversal depth. Nodes deeper than this
// are not visited. Default is 100. If depth is <= 0, the default is kept.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
		// If depth <= 0, keep the default (100)
	}
}

// WithParentTracking enables tracking of ancestor nodes during traversal.
// When enabled, WalkContext.Parent provides access to the ancestor chain,
// and helper methods like ParentObject(), ParentArray(), and Ancestors()
// become available.
//
// This adds some overhead (one allocation per container node), so only
// enable when needed. By default, parent tracking is disabled.
func WithParentTracking() Option {
	return func(w *Walker) { w.trackParent = true }
}

// WithUserContext sets the context for cancellation and deadline propagation.
// The context is available to handlers via wc.Context().
func WithUserContext(ctx context.Context) Option {
	return func(w *Walker) { w.userCtx = ctx }
}

// Walk traverses the document depth-first in document order and calls
// registered handlers for each node: object fields in insertion order,
// array elements by index, parents before children.
func Walk(doc *parser.Node, opts ...Option) error {
	if doc == nil {
		return fmt.Errorf("walker: nil document")
	}

	w := New()
	for _, opt := range opts {
		opt(w)
	}

	return w.walk(doc)
}

// walk performs the actual traversal.
func (w *Walker) walk(doc *parser.Node) error {
	w.stopped = false

	pb := pathutil.Get()
	defer pathutil.Put(pb)

	w.visit(doc, pb, "", -1, 0, nil)
	return nil
}

// visit walks one node and recurses into its children. The name is the
// object field name that holds the node ("" for the root and for array
// elements), and index is the element position (-1 outside arrays).
func (w *Walker) visit(node *parser.Node, pb *pathutil.PathBuilder, name string, index, depth int, parent *ParentInfo) {
	if w.stopped || node == nil {
		return
	}

	path := pb.String()
	wc := w.newContext(path, name, index, depth, parent)

	// Kind-specific handler first, then the generic handler.
	// The generic handler is called even if the specific handler returned
	// SkipChildren, but not if it returned Stop.
	continueToChildren := true
	var specific Action
	switch node.Kind() {
	case parser.KindObject:
		if w.onObject != nil {
			specific = w.onObject(wc, node)
		}
	case parser.KindArray:
		if w.onArray != nil {
			specific = w.onArray(wc, node)
		}
	default:
		if w.onLeaf != nil {
			specific = w.onLeaf(wc, node)
		}
	}
	if !w.handleAction(specific) {
		if w.stopped {
			releaseContext(wc)
			return
		}
		continueToChildren = false
	}

	if w.onNode != nil {
		if !w.handleAction(w.onNode(wc, node)) {
			if w.stopped {
				releaseContext(wc)
				return
			}
			continueToChildren = false
		}
	}

	releaseContext(wc)

	if !continueToChildren || !node.IsContainer() {
		return
	}
	if depth+1 > w.maxDepth {
		return
	}

	var childParent *ParentInfo
	if w.trackParent {
		childParent = &ParentInfo{Node: node, Path: path, Parent: parent}
	}

	switch node.Kind() {
	case parser.KindObject:
		for i := 0; i < node.Len(); i++ {
			fieldName, value := node.FieldAt(i)
			pb.Push(fieldName)
			w.visit(value, pb, fieldName, -1, depth+1, childParent)
			pb.Pop()
			if w.stopped {
				return
			}
		}
	case parser.KindArray:
		for i := 0; i < node.Len(); i++ {
			pb.PushIndex(i)
			w.visit(node.Item(i), pb, "", i, depth+1, childParent)
			pb.Pop()
			if w.stopped {
				return
			}
		}
	}
}

// handleAction processes the action returned by a handler.
// Returns true if walking should continue to children.
func (w *Walker) handleAction(action Action) bool {
	switch action {
	case Stop:
		w.stopped = true
		return false
	case SkipChildren:
		return false
	default:
		return true
	}
}
