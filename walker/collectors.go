package walker

import (
	"github.com/erraggy/jsontools/parser"
)

// LeafInfo contains information about a collected leaf node.
type LeafInfo struct {
	// Node is the collected leaf: null, boolean, number, or string.
	Node *parser.Node

	// Path is the full path to the leaf. Empty when the document root
	// itself is a leaf.
	Path string
}

// LeafCollector holds leaves collected during a walk.
type LeafCollector struct {
	// All contains all leaves in document order.
	All []*LeafInfo

	// ByPath provides lookup by path. Paths are unique within a document.
	ByPath map[string]*LeafInfo
}

// CollectLeaves walks the document and collects every leaf node with its path.
// Leaves appear in document order: object fields in insertion order, array
// elements by index.
func CollectLeaves(doc *parser.Node) (*LeafCollector, error) {
	collector := &LeafCollector{
		All:    make([]*LeafInfo, 0),
		ByPath: make(map[string]*LeafInfo),
	}

	err := Walk(doc,
		WithLeafHandler(func(wc *WalkContext, node *parser.Node) Action {
			info := &LeafInfo{
				Node: node,
				Path: wc.Path,
			}
			collector.All = append(collector.All, info)
			collector.ByPath[wc.Path] = info
			return Continue
		}),
	)
	if err != nil {
		return nil, err
	}

	return collector, nil
}

// Stats summarizes the shape of a document.
type Stats struct {
	// Total is the number of nodes of any kind.
	Total int

	// Counts per kind.
	Objects  int
	Arrays   int
	Strings  int
	Numbers  int
	Booleans int
	Nulls    int

	// MaxDepth is the deepest nesting level reached, 0 for a bare leaf.
	MaxDepth int
}

// Leaves returns the number of leaf nodes.
func (s *Stats) Leaves() int {
	return s.Strings + s.Numbers + s.Booleans + s.Nulls
}

// CollectStats walks the document and tallies node counts by kind along
// with the maximum nesting depth.
func CollectStats(doc *parser.Node) (*Stats, error) {
	stats := &Stats{}

	err := Walk(doc,
		WithNodeHandler(func(wc *WalkContext, node *parser.Node) Action {
			stats.Total++
			switch node.Kind() {
			case parser.KindObject:
				stats.Objects++
			case parser.KindArray:
				stats.Arrays++
			case parser.KindText:
				stats.Strings++
			case parser.KindNumber:
				stats.Numbers++
			case parser.KindBool:
				stats.Booleans++
			case parser.KindNull:
				stats.Nulls++
			}
			if wc.Depth > stats.MaxDepth {
				stats.MaxDepth = wc.Depth
			}
			return Continue
		}),
	)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
