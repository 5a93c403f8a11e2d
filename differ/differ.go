package differ

import (
	"github.com/erraggy/jsontools/internal/pathutil"
	"github.com/erraggy/jsontools/jsonpath"
	"github.com/erraggy/jsontools/parser"
)

// Mode selects which view of a comparison a report renders.
type Mode int

const (
	// ModeValue requires matching kinds and equal leaf values.
	ModeValue Mode = iota
	// ModeStructure requires matching shape only; scalar kinds and values
	// are not compared.
	ModeStructure
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeValue:
		return "value"
	case ModeStructure:
		return "structure"
	default:
		return "unknown"
	}
}

// Differ compares parsed documents. The zero value is not usable; construct
// instances with [New]. A Differ is immutable after construction and safe
// for concurrent use.
type Differ struct {
	cfg *config
}

// New creates a Differ from the supplied options.
//
// Example:
//
//	d, err := differ.New(
//	    differ.WithTolerance(0.01),
//	    differ.WithExtraFields(differ.ExtraFieldsLenient),
//	)
func New(opts ...Option) (*Differ, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Differ{cfg: cfg}, nil
}

// Compare walks the expected tree against the actual tree and returns the
// accumulated differences for both comparison modes. A nil node is treated
// as JSON null. Compare never fails; mismatched content is data in the
// Result, not an error.
func (d *Differ) Compare(expected, actual *parser.Node) *Result {
	return d.compare(expected, actual, nil)
}

// CompareAt resolves path within document and compares the expected tree
// against the addressed subtree. Recorded difference paths include the
// prefix, so reports point into the full document. The empty path compares
// against the whole document.
//
// CompareAt fails only for a malformed path ([jsonerrors.PathSyntaxError])
// or a path that addresses nothing ([jsonerrors.PathNotFoundError]).
func (d *Differ) CompareAt(expected, document *parser.Node, path string) (*Result, error) {
	parsed, err := jsonpath.Parse(path)
	if err != nil {
		return nil, err
	}
	actual, err := parsed.Resolve(document)
	if err != nil {
		return nil, err
	}
	return d.compare(expected, actual, parsed), nil
}

func (d *Differ) compare(expected, actual *parser.Node, prefix *jsonpath.Path) *Result {
	if expected == nil {
		expected = parser.Null()
	}
	if actual == nil {
		actual = parser.Null()
	}

	result := &Result{
		documentName:   d.cfg.documentName,
		valueDiffs:     d.walk(ModeValue, expected, actual, prefix),
		structureDiffs: d.walk(ModeStructure, expected, actual, prefix),
	}

	d.log().Debug("comparison complete",
		"differences", len(result.valueDiffs),
		"structureDifferences", len(result.structureDiffs))

	return result
}

// walk runs one comparison pass and returns the differences it found.
func (d *Differ) walk(mode Mode, expected, actual *parser.Node, prefix *jsonpath.Path) []Difference {
	c := &comparison{
		mode:  mode,
		cfg:   d.cfg,
		path:  pathutil.Get(),
		diffs: getDifferenceSlice(),
	}
	defer pathutil.Put(c.path)
	defer putDifferenceSlice(c.diffs)

	if prefix != nil {
		for _, seg := range prefix.Segments() {
			switch s := seg.(type) {
			case jsonpath.NameSegment:
				c.path.Push(s.Name)
			case jsonpath.IndexSegment:
				c.path.PushIndex(s.Index)
			}
		}
	}

	c.compare(expected, actual)

	if len(*c.diffs) == 0 {
		return nil
	}
	out := make([]Difference, len(*c.diffs))
	copy(out, *c.diffs)
	return out
}

func (d *Differ) log() parser.Logger {
	if d.cfg.logger == nil {
		return parser.NopLogger{}
	}
	return d.cfg.logger
}
