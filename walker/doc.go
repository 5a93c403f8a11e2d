// Package walker provides depth-first traversal of JSON trees.
//
// The walker visits every node of a [parser.Node] tree in document order,
// calling registered handlers with the node and its path. This is useful
// for analysis and collection tasks that need to inspect many parts of a
// document in a single pass.
//
// # Quick Start
//
// Walk a document and print every leaf path:
//
//	doc, _ := parser.New().ParseString(`{"a": 1, "b": [true, null]}`)
//
//	walker.Walk(doc,
//	    walker.WithLeafHandler(func(wc *walker.WalkContext, node *parser.Node) walker.Action {
//	        fmt.Printf("%s: %s\n", wc.Path, node.Kind())
//	        return walker.Continue
//	    }),
//	)
//
// # Flow Control
//
// Handlers return an [Action] to control traversal:
//
//   - [Continue]: continue traversing children and siblings normally
//   - [SkipChildren]: skip all children of the current node, continue with siblings
//   - [Stop]: stop the entire walk immediately
//
// Example using SkipChildren to prune a subtree:
//
//	walker.Walk(doc,
//	    walker.WithObjectHandler(func(wc *walker.WalkContext, node *parser.Node) walker.Action {
//	        if wc.Name == "metadata" {
//	            return walker.SkipChildren
//	        }
//	        return walker.Continue
//	    }),
//	)
//
// # Handler Types
//
// Handlers may be registered per node category:
//
//   - [ObjectHandler]: object nodes
//   - [ArrayHandler]: array nodes
//   - [LeafHandler]: null, boolean, number, and string nodes
//   - [NodeHandler]: every node regardless of kind
//
// The kind-specific handler runs before the generic NodeHandler. The
// generic handler is still called when the specific handler returns
// SkipChildren, but not after Stop.
//
// # WalkContext
//
// Every handler receives a [WalkContext] as its first parameter, providing
// the node's Path, field Name, array Index, and Depth. Contexts are pooled
// and only valid for the duration of the handler call; copy the fields,
// not the pointer, to retain them.
//
// # Parent Tracking
//
// Enable parent tracking to access ancestor nodes during traversal:
//
//	walker.Walk(doc,
//	    walker.WithParentTracking(),
//	    walker.WithLeafHandler(func(wc *walker.WalkContext, node *parser.Node) walker.Action {
//	        if arr, ok := wc.ParentArray(); ok {
//	            // The leaf lives inside arr, possibly indirectly.
//	            _ = arr
//	        }
//	        return walker.Continue
//	    }),
//	)
//
// Helper methods: [WalkContext.ParentObject], [WalkContext.ParentArray],
// [WalkContext.Ancestors].
//
// # Context Propagation
//
// Pass a [context.Context] for cancellation and timeout support:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//
//	walker.Walk(doc,
//	    walker.WithUserContext(ctx),
//	    walker.WithNodeHandler(func(wc *walker.WalkContext, node *parser.Node) walker.Action {
//	        if wc.Context().Err() != nil {
//	            return walker.Stop
//	        }
//	        return walker.Continue
//	    }),
//	)
//
// # Built-in Collectors
//
// For common collection patterns, the walker provides pre-built helpers:
//
//   - [CollectLeaves]: returns a [LeafCollector] with every leaf and its path
//   - [CollectStats]: returns [Stats] with node counts by kind and the maximum depth
//
// Example:
//
//	leaves, err := walker.CollectLeaves(doc)
//	for _, leaf := range leaves.All {
//	    fmt.Printf("%s = %s\n", leaf.Path, leaf.Node)
//	}
//
// # Related Packages
//
//   - [github.com/erraggy/jsontools/parser] - Parse documents before walking
//   - [github.com/erraggy/jsontools/differ] - Compare two parsed documents
//   - [github.com/erraggy/jsontools/jsonpath] - Resolve a single path instead of walking
package walker
