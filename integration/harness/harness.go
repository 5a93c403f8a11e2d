//go:build integration

// Package harness provides the integration test framework for jsontools.
// It enables declarative scenario-driven testing via txtar archives: each
// archive carries an expected document, an actual document, the comparison
// configuration, and the outcome the comparison must produce.
package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/erraggy/jsontools/differ"
	"github.com/erraggy/jsontools/jsonassert"
	"github.com/erraggy/jsontools/parser"
)

// Scenario represents a complete comparison scenario loaded from a txtar
// archive.
type Scenario struct {
	// Name is the archive file name without its extension
	Name string
	// Description is the first line of the archive comment
	Description string
	// Path addresses the subtree of the actual document to compare against;
	// empty compares the whole document
	Path string
	// Options is the comparison configuration from options.yaml
	Options ScenarioOptions
	// Want is the expected outcome from want.yaml
	Want ScenarioWant
	// Expected is the expected document fixture
	Expected Document
	// Actual is the actual document fixture
	Actual Document
	// WantReport is the exact value comparison report, when recorded
	WantReport string
	// WantStructureReport is the exact structure comparison report, when
	// recorded
	WantStructureReport string

	// filePath is the path to the scenario archive (set by loader)
	filePath string
}

// ScenarioOptions mirrors the differ options a scenario may set.
type ScenarioOptions struct {
	// Tolerance is a numeric tolerance in decimal form, e.g. "0.01"
	Tolerance string `yaml:"tolerance,omitempty"`
	// IgnoreMarker overrides the expected string value that matches anything
	IgnoreMarker string `yaml:"ignoreMarker,omitempty"`
	// ExtraFields is the extra-field policy: "strict" or "lenient"
	ExtraFields string `yaml:"extraFields,omitempty"`
	// DocumentName names the actual document in rendered reports
	DocumentName string `yaml:"documentName,omitempty"`
}

// ScenarioWant is the outcome a scenario expects.
type ScenarioWant struct {
	// Similar states whether the value comparison must find the documents
	// similar
	Similar *bool `yaml:"similar,omitempty"`
	// StructurallySimilar states whether the structure comparison must find
	// the documents similar
	StructurallySimilar *bool `yaml:"structurallySimilar,omitempty"`
	// Error expects the pipeline to fail with an error containing this
	// substring instead of producing a comparison
	Error string `yaml:"error,omitempty"`
}

// Document is one document fixture from a scenario archive.
type Document struct {
	// Name is the file name inside the archive; its extension declares the
	// format
	Name string
	// Data is the raw document content
	Data []byte
}

// ScenarioResult contains the result of running one scenario.
type ScenarioResult struct {
	// Scenario is the scenario that was executed
	Scenario *Scenario
	// Success indicates whether every check passed
	Success bool
	// Error is the pipeline error, for scenarios that expect one
	Error error
	// Differences is the number of value differences the comparison found
	Differences int
	// Duration is the total scenario execution time
	Duration time.Duration
}

// RunScenario executes a scenario end to end: it writes both fixtures to
// disk, parses them back, runs the configured comparison, and checks the
// outcome against the scenario's expectations. The facade is driven with
// the same inputs and must agree with the differ.
func RunScenario(t *testing.T, scenario *Scenario) *ScenarioResult {
	t.Helper()

	start := time.Now()
	result := &ScenarioResult{Scenario: scenario}
	defer func() {
		result.Duration = time.Since(start)
		result.Success = !t.Failed()
	}()

	dir := t.TempDir()
	p := parser.New()

	expected, err := parseFixture(p, dir, scenario.Expected)
	if err != nil {
		result.Error = err
		checkExpectedError(t, scenario, err)
		return result
	}
	actual, err := parseFixture(p, dir, scenario.Actual)
	if err != nil {
		result.Error = err
		checkExpectedError(t, scenario, err)
		return result
	}

	opts, err := buildOptions(scenario.Options)
	if err != nil {
		result.Error = err
		checkExpectedError(t, scenario, err)
		return result
	}
	d, err := differ.New(opts...)
	if err != nil {
		result.Error = err
		checkExpectedError(t, scenario, err)
		return result
	}

	comparison, err := d.CompareAt(expected.Document, actual.Document, scenario.Path)
	if err != nil {
		result.Error = err
		checkExpectedError(t, scenario, err)
		return result
	}
	if scenario.Want.Error != "" {
		t.Errorf("expected an error containing %q, but the comparison succeeded", scenario.Want.Error)
		return result
	}

	result.Differences = len(comparison.Differences())

	if scenario.Want.Similar != nil {
		AssertSimilar(t, comparison, *scenario.Want.Similar)
	}
	if scenario.Want.StructurallySimilar != nil {
		AssertStructurallySimilar(t, comparison, *scenario.Want.StructurallySimilar)
	}
	if scenario.WantReport != "" {
		AssertReport(t, "value report", comparison.String(), scenario.WantReport)
	}
	if scenario.WantStructureReport != "" {
		AssertReport(t, "structure report", comparison.StructureReport(), scenario.WantStructureReport)
	}

	// The facade wraps the same engine; drive it with the same inputs and
	// require the same verdicts.
	if scenario.Want.Similar != nil {
		rec := &Recorder{}
		passed := jsonassert.PartEqual(rec, expected.Document, actual.Document, scenario.Path, opts...)
		AssertFacadeAgrees(t, rec, passed, *scenario.Want.Similar, "value")
	}
	if scenario.Want.StructurallySimilar != nil {
		rec := &Recorder{}
		passed := jsonassert.PartStructureEqual(rec, expected.Document, actual.Document, scenario.Path, opts...)
		AssertFacadeAgrees(t, rec, passed, *scenario.Want.StructurallySimilar, "structure")
	}

	return result
}

// parseFixture writes a document fixture into dir under its archive name and
// parses it from disk, so format detection sees the same extension a real
// caller would.
func parseFixture(p *parser.Parser, dir string, doc Document) (*parser.ParseResult, error) {
	path := filepath.Join(dir, doc.Name)
	if err := os.WriteFile(path, doc.Data, 0600); err != nil {
		return nil, fmt.Errorf("harness: failed to write fixture %s: %w", doc.Name, err)
	}
	return p.Parse(path)
}

// buildOptions converts scenario options into differ options.
func buildOptions(o ScenarioOptions) ([]differ.Option, error) {
	var opts []differ.Option
	if o.Tolerance != "" {
		opts = append(opts, differ.WithToleranceString(o.Tolerance))
	}
	if o.IgnoreMarker != "" {
		opts = append(opts, differ.WithIgnoreMarker(o.IgnoreMarker))
	}
	switch o.ExtraFields {
	case "":
	case "strict":
		opts = append(opts, differ.WithExtraFields(differ.ExtraFieldsStrict))
	case "lenient":
		opts = append(opts, differ.WithExtraFields(differ.ExtraFieldsLenient))
	default:
		return nil, fmt.Errorf("harness: unknown extraFields policy %q", o.ExtraFields)
	}
	if o.DocumentName != "" {
		opts = append(opts, differ.WithDocumentName(o.DocumentName))
	}
	return opts, nil
}

// checkExpectedError verifies a pipeline error against the scenario's
// expectation.
func checkExpectedError(t *testing.T, scenario *Scenario, err error) {
	t.Helper()

	if scenario.Want.Error == "" {
		t.Errorf("unexpected error: %v", err)
		return
	}
	if !strings.Contains(err.Error(), scenario.Want.Error) {
		t.Errorf("error does not contain %q:\n  %v", scenario.Want.Error, err)
	}
}
