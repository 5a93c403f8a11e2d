package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/jsontools/converter"
	"github.com/erraggy/jsontools/internal/cliutil"
	"github.com/erraggy/jsontools/parser"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Format string
	Output string
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Format, "format", "", "target format: json or yaml (required)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: jsontools convert [flags] <document>\n\n")
		cliutil.Writef(output, "Convert a document between JSON and YAML, preserving field order.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  jsontools convert -format yaml order.json\n")
		cliutil.Writef(output, "  jsontools convert -format json -o order.json order.yaml\n")
		cliutil.Writef(output, "  cat order.yaml | jsontools convert -format json -\n")
		cliutil.Writef(output, "\nNotes:\n")
		cliutil.Writef(output, "  - The document may be a file path, URL, or '-' for stdin\n")
		cliutil.Writef(output, "  - Object field order and numeric source spellings survive conversion\n")
		cliutil.Writef(output, "  - Output files are written with restrictive permissions (0600)\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one document")
	}

	docPath := fs.Arg(0)

	if flags.Format == "" {
		fs.Usage()
		return fmt.Errorf("target format is required (use -format json or -format yaml)")
	}
	if err := ValidateDocumentFormat(flags.Format); err != nil {
		return err
	}

	result, err := ParseDocument(docPath)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	format := parser.SourceFormatJSON
	if flags.Format == FormatYAML {
		format = parser.SourceFormatYAML
	}

	data, err := converter.Convert(result.Document, format)
	if err != nil {
		return fmt.Errorf("rendering document: %w", err)
	}

	if flags.Output == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		if len(data) > 0 && data[len(data)-1] != '\n' {
			fmt.Println()
		}
		return nil
	}

	if err := ValidateOutputPath(flags.Output, []string{docPath}); err != nil {
		return err
	}
	cleaned := filepath.Clean(flags.Output)
	if err := RejectSymlinkOutput(cleaned); err != nil {
		return err
	}
	if err := os.WriteFile(cleaned, data, 0600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	cliutil.Writef(os.Stderr, "Output written to: %s\n", cleaned)
	return nil
}
