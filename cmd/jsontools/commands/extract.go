package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/jsontools/converter"
	"github.com/erraggy/jsontools/internal/cliutil"
	"github.com/erraggy/jsontools/jsonpath"
	"github.com/erraggy/jsontools/parser"
)

// ExtractFlags contains flags for the extract command
type ExtractFlags struct {
	Path   string
	Format string
}

// SetupExtractFlags creates and configures a FlagSet for the extract command.
// Returns the FlagSet and an ExtractFlags struct with bound flag variables.
func SetupExtractFlags() (*flag.FlagSet, *ExtractFlags) {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	flags := &ExtractFlags{}

	fs.StringVar(&flags.Path, "path", "", "path to the subtree to extract (e.g. store.items[0].sku); empty addresses the whole document")
	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: jsontools extract [flags] <document>\n\n")
		cliutil.Writef(output, "Resolve a path in a JSON or YAML document and print the addressed subtree.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  jsontools extract -path store.items[0].sku order.json\n")
		cliutil.Writef(output, "  jsontools extract -path shipping -format yaml order.json\n")
		cliutil.Writef(output, "  jsontools extract order.yaml            # whole document, as JSON\n")
		cliutil.Writef(output, "  cat order.yaml | jsontools extract -path total -\n")
		cliutil.Writef(output, "\nNotes:\n")
		cliutil.Writef(output, "  - The document may be a file path, URL, or '-' for stdin\n")
		cliutil.Writef(output, "  - Paths use dotted fields and bracketed indexes; quote fields with\n")
		cliutil.Writef(output, "    special characters as [\"field.name\"]\n")
		cliutil.Writef(output, "  - Output preserves the source's field order and number spellings\n")
	}

	return fs, flags
}

// HandleExtract executes the extract command
func HandleExtract(args []string) error {
	fs, flags := SetupExtractFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("extract command requires exactly one document")
	}

	docPath := fs.Arg(0)

	if err := ValidateDocumentFormat(flags.Format); err != nil {
		return err
	}

	path, err := jsonpath.Parse(flags.Path)
	if err != nil {
		return fmt.Errorf("parsing path: %w", err)
	}

	result, err := ParseDocument(docPath)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	node, err := path.Resolve(result.Document)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	format := parser.SourceFormatJSON
	if flags.Format == FormatYAML {
		format = parser.SourceFormatYAML
	}

	data, err := converter.Convert(node, format)
	if err != nil {
		return fmt.Errorf("rendering subtree: %w", err)
	}

	if _, err := os.Stdout.Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Println()
	}
	return nil
}
