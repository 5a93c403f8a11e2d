// Package jsonpath parses and resolves dotted path expressions against
// parsed documents.
//
// The grammar is deliberately small: a path is a field name optionally
// followed by further field names and zero-based array indices.
//
//	segment ("." segment | "[" digits "]")*
//
// where segment is [A-Za-z_][A-Za-z0-9_]*. Examples:
//
//	root.array[0].value
//	servers[2].host
//	matrix[1][0]
//
// The empty string addresses the document root. There are no wildcards,
// filters, or recursive descent; every well-formed path addresses at most
// one value.
//
// Parse errors are reported as [jsonerrors.PathSyntaxError] with the byte
// position of the offending character. Resolution errors are reported as
// [jsonerrors.PathNotFoundError] carrying the portion of the path that did
// resolve, which makes "where did it go wrong" immediately visible.
package jsonpath

import (
	"fmt"
	"strconv"

	"github.com/erraggy/jsontools/jsonerrors"
)

// Path represents a parsed path expression.
type Path struct {
	raw      string
	segments []Segment
}

// String returns the original path expression.
func (p *Path) String() string {
	return p.raw
}

// IsRoot reports whether the path addresses the document root.
func (p *Path) IsRoot() bool {
	return len(p.segments) == 0
}

// Segments returns the parsed segments in order. The returned slice is a
// copy; mutating it does not affect the path.
func (p *Path) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Segment represents a single step in a path expression.
type Segment interface {
	// String renders the segment in path notation.
	String() string
	// segmentType returns a string identifying the segment type for debugging.
	segmentType() string
}

// NameSegment selects a field of an object by name.
type NameSegment struct {
	Name string
}

func (s NameSegment) String() string { return s.Name }

func (s NameSegment) segmentType() string { return "name" }

// IndexSegment selects an element of an array by zero-based index.
type IndexSegment struct {
	Index int
}

func (s IndexSegment) String() string { return "[" + strconv.Itoa(s.Index) + "]" }

func (s IndexSegment) segmentType() string { return "index" }

// Parse parses a path expression string into a Path.
//
// Examples:
//
//	Parse("")                  // Document root
//	Parse("info.title")        // Nested field access
//	Parse("servers[0].host")   // Array element field
func Parse(expr string) (*Path, error) {
	if expr == "" {
		return &Path{raw: ""}, nil
	}

	p := &parser{
		input: expr,
		pos:   0,
	}

	segments, err := p.parse()
	if err != nil {
		return nil, err
	}

	return &Path{
		raw:      expr,
		segments: segments,
	}, nil
}

// MustParse is like Parse but panics on a malformed expression.
// It simplifies initialization of known-good paths.
func MustParse(expr string) *Path {
	p, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// parser is the internal path parser.
type parser struct {
	input string
	pos   int
}

func (p *parser) parse() ([]Segment, error) {
	var segments []Segment

	// Must start with a field name; a leading '.' or '[' is malformed.
	seg, err := p.parseNameSegment()
	if err != nil {
		return nil, err
	}
	segments = append(segments, seg)

	for p.pos < len(p.input) {
		ch := p.peek()

		switch ch {
		case '.':
			p.advance()
			seg, err := p.parseNameSegment()
			if err != nil {
				return nil, err
			}
			segments = append(segments, seg)

		case '[':
			p.advance()
			seg, err := p.parseIndexSegment()
			if err != nil {
				return nil, err
			}
			segments = append(segments, seg)

		default:
			return nil, p.syntaxError(p.pos, fmt.Sprintf("unexpected character %q", ch))
		}
	}

	return segments, nil
}

func (p *parser) parseNameSegment() (Segment, error) {
	if p.pos >= len(p.input) {
		return nil, p.syntaxError(p.pos, "unexpected end of input")
	}
	if !isSegmentStart(p.input[p.pos]) {
		return nil, p.syntaxError(p.pos, fmt.Sprintf("expected field name, found %q", p.input[p.pos]))
	}

	start := p.pos
	p.pos++
	for p.pos < len(p.input) && isSegmentChar(p.input[p.pos]) {
		p.pos++
	}

	return NameSegment{Name: p.input[start:p.pos]}, nil
}

func (p *parser) parseIndexSegment() (Segment, error) {
	start := p.pos
	for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		if p.pos >= len(p.input) {
			return nil, p.syntaxError(p.pos, "unexpected end of input")
		}
		return nil, p.syntaxError(p.pos, fmt.Sprintf("expected digit, found %q", p.input[p.pos]))
	}
	if p.pos >= len(p.input) {
		return nil, p.syntaxError(p.pos, "unexpected end of input")
	}
	if p.input[p.pos] != ']' {
		return nil, p.syntaxError(p.pos, fmt.Sprintf("expected ']', found %q", p.input[p.pos]))
	}

	idx, err := strconv.Atoi(p.input[start:p.pos])
	if err != nil {
		return nil, p.syntaxError(start, fmt.Sprintf("invalid index %q", p.input[start:p.pos]))
	}
	p.advance() // consume ']'

	return IndexSegment{Index: idx}, nil
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) advance() {
	if p.pos < len(p.input) {
		p.pos++
	}
}

func (p *parser) syntaxError(pos int, msg string) error {
	return &jsonerrors.PathSyntaxError{
		Path:     p.input,
		Position: pos,
		Message:  msg,
	}
}

func isSegmentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		ch == '_'
}

func isSegmentChar(ch byte) bool {
	return isSegmentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
