package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/erraggy/jsontools/internal/cliutil"
	"github.com/erraggy/jsontools/parser"
	"github.com/erraggy/jsontools/walker"
)

// PathsFlags contains flags for the paths command
type PathsFlags struct {
	Format string
	Quiet  bool
}

// SetupPathsFlags creates and configures a FlagSet for the paths command.
// Returns the FlagSet and a PathsFlags struct with bound flag variables.
func SetupPathsFlags() (*flag.FlagSet, *PathsFlags) {
	fs := flag.NewFlagSet("paths", flag.ContinueOnError)
	flags := &PathsFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "quiet", false, "suppress headers and decoration for piping")
	fs.BoolVar(&flags.Quiet, "q", false, "suppress headers and decoration for piping")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: jsontools paths [flags] <document>\n\n")
		cliutil.Writef(output, "List every leaf path in a JSON or YAML document with its kind and value.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  jsontools paths order.json\n")
		cliutil.Writef(output, "  jsontools paths -q order.json | cut -f1\n")
		cliutil.Writef(output, "  jsontools paths -format json order.yaml | jq '.[].path'\n")
		cliutil.Writef(output, "\nNotes:\n")
		cliutil.Writef(output, "  - The document may be a file path, URL, or '-' for stdin\n")
		cliutil.Writef(output, "  - Paths appear in document order and feed directly into\n")
		cliutil.Writef(output, "    'jsontools extract -path' and 'jsontools diff -path'\n")
		cliutil.Writef(output, "  - A document whose root is a single leaf lists one row with an empty path\n")
	}

	return fs, flags
}

// leafRecord is one leaf in -format json or yaml output.
type leafRecord struct {
	Path  string `json:"path" yaml:"path"`
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
}

// HandlePaths executes the paths command
func HandlePaths(args []string) error {
	fs, flags := SetupPathsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("paths command requires exactly one document")
	}

	docPath := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	result, err := ParseDocument(docPath)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	leaves, err := walker.CollectLeaves(result.Document)
	if err != nil {
		return fmt.Errorf("collecting leaf paths: %w", err)
	}

	if len(leaves.All) == 0 {
		// Only containers all the way down, e.g. {} or [[]].
		if !flags.Quiet {
			cliutil.Writef(os.Stderr, "No leaf values in document.\n")
		}
		return nil
	}

	if flags.Format == FormatText {
		headers := []string{"PATH", "KIND", "VALUE"}
		rows := make([][]string, 0, len(leaves.All))
		for _, leaf := range leaves.All {
			rows = append(rows, []string{leaf.Path, leaf.Node.Kind().String(), leafSummary(leaf.Node)})
		}
		RenderSummaryTable(os.Stdout, headers, rows, flags.Quiet)
		return nil
	}

	records := make([]leafRecord, 0, len(leaves.All))
	for _, leaf := range leaves.All {
		records = append(records, leafRecord{
			Path:  leaf.Path,
			Kind:  leaf.Node.Kind().String(),
			Value: leafSummary(leaf.Node),
		})
	}
	return OutputStructured(records, flags.Format)
}

// leafSummary renders a leaf value for display: strings quoted, numbers in
// their source spelling.
func leafSummary(n *parser.Node) string {
	switch n.Kind() {
	case parser.KindNull:
		return "null"
	case parser.KindBool:
		if n.Bool() {
			return "true"
		}
		return "false"
	case parser.KindNumber:
		return n.Lexeme()
	default:
		return strconv.Quote(n.Text())
	}
}
