package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"

	"github.com/erraggy/jsontools/differ"
	"github.com/erraggy/jsontools/internal/cliutil"
)

// Comparison mode names accepted by the -mode flag.
const (
	modeValue     = "value"
	modeStructure = "structure"
)

// DiffFlags contains flags for the diff command
type DiffFlags struct {
	Path         string
	Mode         string
	Tolerance    string
	IgnoreMarker string
	ExtraFields  string
	Format       string
	Color        string
	Quiet        bool
}

// SetupDiffFlags creates and configures a FlagSet for the diff command.
// Returns the FlagSet and a DiffFlags struct with bound flag variables.
func SetupDiffFlags() (*flag.FlagSet, *DiffFlags) {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	flags := &DiffFlags{}

	fs.StringVar(&flags.Path, "path", "", "compare expected against the subtree of actual at this path (e.g. store.items[0])")
	fs.StringVar(&flags.Mode, "mode", modeValue, "comparison mode: value or structure")
	fs.StringVar(&flags.Tolerance, "tolerance", "", "numeric tolerance as decimal text (e.g. 0.01 or 1e-9)")
	fs.StringVar(&flags.IgnoreMarker, "ignore-marker", "", "expected string value that matches any actual value (default ${json-unit.ignore})")
	fs.StringVar(&flags.ExtraFields, "extra-fields", "strict", "policy for actual-only object fields: strict or lenient")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text or json")
	fs.StringVar(&flags.Color, "color", ColorAuto, "colorize text output: auto, always, or never")
	fs.BoolVar(&flags.Quiet, "quiet", false, "suppress all output; rely on the exit status")
	fs.BoolVar(&flags.Quiet, "q", false, "suppress all output; rely on the exit status")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: jsontools diff [flags] <expected> <actual>\n\n")
		cliutil.Writef(output, "Compare two JSON or YAML documents and report differences.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nModes:\n")
		cliutil.Writef(output, "  value (default)  Compare values: leaves must match exactly, within the\n")
		cliutil.Writef(output, "                   tolerance for numbers, unless marked ignored.\n")
		cliutil.Writef(output, "  structure        Compare shape only: kinds, field sets, and array lengths\n")
		cliutil.Writef(output, "                   must match, leaf values are free to differ.\n")
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  jsontools diff expected.json actual.json\n")
		cliutil.Writef(output, "  jsontools diff -tolerance 0.01 expected.json response.json\n")
		cliutil.Writef(output, "  jsontools diff -mode structure golden.yaml response.json\n")
		cliutil.Writef(output, "  jsontools diff -path store.items[0] item.json full-response.json\n")
		cliutil.Writef(output, "  jsontools diff -extra-fields lenient -format json expected.json actual.json | jq '.identical'\n")
		cliutil.Writef(output, "  curl -s https://api.example.com/order/7 | jsontools diff -q expected.json -\n")
		cliutil.Writef(output, "\nExit Status:\n")
		cliutil.Writef(output, "  0    Documents are similar\n")
		cliutil.Writef(output, "  1    Differences found\n")
		cliutil.Writef(output, "  2    Usage or load error\n")
		cliutil.Writef(output, "\nNotes:\n")
		cliutil.Writef(output, "  - Documents may be file paths, URLs, or '-' for stdin\n")
		cliutil.Writef(output, "  - JSON and YAML inputs mix freely; both normalize to the same tree\n")
		cliutil.Writef(output, "  - -path addresses a subtree of the actual document; reported paths\n")
		cliutil.Writef(output, "    stay rooted at the full document\n")
	}

	return fs, flags
}

// HandleDiff executes the diff command
func HandleDiff(args []string) error {
	fs, flags := SetupDiffFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("diff command requires exactly two documents")
	}

	expectedPath := fs.Arg(0)
	actualPath := fs.Arg(1)

	// Validate flags before touching any input
	if err := ValidateReportFormat(flags.Format); err != nil {
		return err
	}
	if err := ConfigureColor(flags.Color); err != nil {
		return err
	}
	mode, err := parseDiffMode(flags.Mode)
	if err != nil {
		return err
	}
	opts, err := diffOptions(flags)
	if err != nil {
		return err
	}

	d, err := differ.New(opts...)
	if err != nil {
		return fmt.Errorf("configuring comparison: %w", err)
	}

	expected, err := ParseDocument(expectedPath)
	if err != nil {
		return fmt.Errorf("parsing expected: %w", err)
	}
	actual, err := ParseDocument(actualPath)
	if err != nil {
		return fmt.Errorf("parsing actual: %w", err)
	}

	var result *differ.Result
	if flags.Path != "" {
		result, err = d.CompareAt(expected.Document, actual.Document, flags.Path)
		if err != nil {
			return fmt.Errorf("resolving path: %w", err)
		}
	} else {
		result = d.Compare(expected.Document, actual.Document)
	}

	diffs := result.Differences()
	report := result.String()
	identical := result.Similar()
	if mode == differ.ModeStructure {
		diffs = result.StructureDifferences()
		report = result.StructureReport()
		identical = result.SimilarStructure()
	}

	switch {
	case flags.Quiet:
		// Exit status only.
	case flags.Format == FormatJSON:
		if err := outputDiffJSON(mode, identical, diffs, report); err != nil {
			return err
		}
	default:
		renderDiffText(identical, diffs, report)
	}

	if !identical {
		os.Exit(1)
	}
	return nil
}

// parseDiffMode maps a -mode flag value to a differ comparison mode.
func parseDiffMode(mode string) (differ.Mode, error) {
	switch mode {
	case modeValue:
		return differ.ModeValue, nil
	case modeStructure:
		return differ.ModeStructure, nil
	default:
		return differ.ModeValue, fmt.Errorf("invalid mode '%s'. Valid modes: %s, %s", mode, modeValue, modeStructure)
	}
}

// diffOptions translates flag values into differ options. Tolerance and
// marker values are validated by the differ itself when New applies them.
func diffOptions(flags *DiffFlags) ([]differ.Option, error) {
	var opts []differ.Option

	if flags.Tolerance != "" {
		opts = append(opts, differ.WithToleranceString(flags.Tolerance))
	}
	if flags.IgnoreMarker != "" {
		opts = append(opts, differ.WithIgnoreMarker(flags.IgnoreMarker))
	}

	switch flags.ExtraFields {
	case "", "strict":
		// ExtraFieldsStrict is the differ default.
	case "lenient":
		opts = append(opts, differ.WithExtraFields(differ.ExtraFieldsLenient))
	default:
		return nil, fmt.Errorf("invalid extra-fields '%s'. Valid policies: strict, lenient", flags.ExtraFields)
	}

	return opts, nil
}

// diffOutput is the shape emitted by -format json.
type diffOutput struct {
	Identical   bool             `json:"identical"`
	Mode        string           `json:"mode"`
	Differences []diffDifference `json:"differences,omitempty"`
	Report      string           `json:"report"`
}

// diffDifference is one difference in -format json output.
type diffDifference struct {
	Path    string `json:"path"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

func outputDiffJSON(mode differ.Mode, identical bool, diffs []differ.Difference, report string) error {
	out := diffOutput{
		Identical: identical,
		Mode:      mode.String(),
		Report:    report,
	}
	for _, d := range diffs {
		out.Differences = append(out.Differences, diffDifference{
			Path:    d.Path,
			Type:    string(d.Type),
			Message: d.Message,
		})
	}
	return OutputStructured(out, FormatJSON)
}

var (
	okMark   = color.New(color.FgGreen).SprintFunc()
	failText = color.New(color.FgRed).SprintFunc()
	pathText = color.New(color.FgCyan).SprintFunc()
	kindText = color.New(color.FgYellow).SprintFunc()
)

// renderDiffText prints the comparison outcome to stdout. The uncolored text
// matches the report the differ renders, difference for difference.
func renderDiffText(identical bool, diffs []differ.Difference, report string) {
	if identical {
		cliutil.Writef(os.Stdout, "%s %s\n", okMark("✓"), report)
		return
	}

	header := fmt.Sprintf("found %d difference(s) between expected and %s:", len(diffs), differ.DefaultDocumentName)
	cliutil.Writef(os.Stdout, "%s\n", failText(header))
	for _, d := range diffs {
		cliutil.Writef(os.Stdout, "  %s at %s: %s\n", kindText(string(d.Type)), pathText(strconv.Quote(d.Path)), d.Message)
	}
}
