package pathutil

import (
	"strconv"
	"strings"
)

// PathBuilder assembles a document path segment by segment during tree
// traversal. Push and Pop mirror descent and ascent, and the rendered
// string is only materialized by String, so a walk that never reports
// anything never pays for path formatting.
//
// Name segments join with a dot and index segments append directly:
//
//	items[1].sku
type PathBuilder struct {
	segs []string
	n    int // rendered length, kept current for the Grow in String
}

// Push appends an object field name.
func (b *PathBuilder) Push(name string) {
	if len(b.segs) > 0 {
		b.n++ // dot separator
	}
	b.segs = append(b.segs, name)
	b.n += len(name)
}

// PushIndex appends an array index as "[i]".
func (b *PathBuilder) PushIndex(i int) {
	seg := "[" + strconv.Itoa(i) + "]"
	b.segs = append(b.segs, seg)
	b.n += len(seg)
}

// Pop removes the most recent segment.
func (b *PathBuilder) Pop() {
	if len(b.segs) == 0 {
		return
	}
	last := b.segs[len(b.segs)-1]
	b.segs = b.segs[:len(b.segs)-1]
	b.n -= len(last)
	if len(b.segs) > 0 && !isIndexSegment(last) {
		b.n-- // dot separator
	}
}

// Reset empties the builder for reuse.
func (b *PathBuilder) Reset() {
	b.segs = b.segs[:0]
	b.n = 0
}

// String renders the accumulated path. The root path renders as "".
func (b *PathBuilder) String() string {
	if len(b.segs) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(b.n)
	sb.WriteString(b.segs[0])
	for _, seg := range b.segs[1:] {
		if !isIndexSegment(seg) {
			sb.WriteByte('.')
		}
		sb.WriteString(seg)
	}
	return sb.String()
}

func isIndexSegment(seg string) bool {
	return len(seg) > 0 && seg[0] == '['
}
