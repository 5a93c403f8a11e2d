package jsonpath

import (
	"fmt"

	"github.com/erraggy/jsontools/internal/pathutil"
	"github.com/erraggy/jsontools/jsonerrors"
	jsonparser "github.com/erraggy/jsontools/parser"
)

// Resolve walks the document from its root, consuming one segment per step,
// and returns the addressed node. A name segment requires the current node
// to be an object containing that field; an index segment requires the
// current node to be an array with the index in range. Any violation returns
// a [jsonerrors.PathNotFoundError]. The empty path returns the document
// unchanged.
//
// Resolve never mutates the document. The same document and path always
// produce the same result.
func (p *Path) Resolve(doc *jsonparser.Node) (*jsonparser.Node, error) {
	if doc == nil {
		return nil, &jsonerrors.PathNotFoundError{
			Path:    p.raw,
			Message: "document is nil",
		}
	}

	resolved := pathutil.Get()
	defer pathutil.Put(resolved)

	current := doc
	for _, seg := range p.segments {
		switch s := seg.(type) {
		case NameSegment:
			if current.Kind() != jsonparser.KindObject {
				return nil, p.notFound(s, resolved, fmt.Sprintf("expected object, found %s", current.Kind()))
			}
			child, ok := current.Field(s.Name)
			if !ok {
				return nil, p.notFound(s, resolved, fmt.Sprintf("object has no field %q", s.Name))
			}
			current = child
			resolved.Push(s.Name)

		case IndexSegment:
			if current.Kind() != jsonparser.KindArray {
				return nil, p.notFound(s, resolved, fmt.Sprintf("expected array, found %s", current.Kind()))
			}
			if s.Index >= current.Len() {
				return nil, p.notFound(s, resolved, fmt.Sprintf("index %d out of range for array of length %d", s.Index, current.Len()))
			}
			current = current.Item(s.Index)
			resolved.PushIndex(s.Index)
		}
	}

	return current, nil
}

func (p *Path) notFound(seg Segment, resolved *pathutil.PathBuilder, msg string) error {
	return &jsonerrors.PathNotFoundError{
		Path:     p.raw,
		Segment:  seg.String(),
		Resolved: resolved.String(),
		Message:  msg,
	}
}
