//go:build integration

package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/erraggy/jsontools/differ"
)

// AssertSimilar asserts the value comparison verdict.
func AssertSimilar(t *testing.T, result *differ.Result, want bool) {
	t.Helper()
	if result.Similar() == want {
		return
	}
	if want {
		t.Errorf("expected similar documents, got %d difference(s):", len(result.Differences()))
		for _, d := range result.Differences() {
			t.Errorf("  - %s", d.String())
		}
		return
	}
	t.Error("expected differences, but the documents are similar")
}

// AssertStructurallySimilar asserts the structure comparison verdict.
func AssertStructurallySimilar(t *testing.T, result *differ.Result, want bool) {
	t.Helper()
	if result.SimilarStructure() == want {
		return
	}
	if want {
		t.Errorf("expected structurally similar documents, got %d difference(s):", len(result.StructureDifferences()))
		for _, d := range result.StructureDifferences() {
			t.Errorf("  - %s", d.String())
		}
		return
	}
	t.Error("expected structure differences, but the shapes match")
}

// AssertReport asserts that a rendered report matches the recorded one
// exactly.
func AssertReport(t *testing.T, label, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	t.Errorf("%s does not match the recorded report", label)
	t.Logf("  want:\n%s", indent(want))
	t.Logf("  got:\n%s", indent(got))
}

// Recorder captures facade failures so a test can inspect them instead of
// failing itself. It satisfies jsonassert.TestingT.
type Recorder struct {
	// Failures holds one formatted message per Errorf call
	Failures []string
}

// Errorf records a failure message.
func (r *Recorder) Errorf(format string, args ...any) {
	r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
}

// AssertFacadeAgrees asserts that a facade check came to the same verdict
// as the differ, and that it reported failures exactly when it failed.
func AssertFacadeAgrees(t *testing.T, rec *Recorder, passed, want bool, mode string) {
	t.Helper()

	if passed != want {
		t.Errorf("jsonassert %s check returned %t, differ found %t", mode, passed, want)
		for _, f := range rec.Failures {
			t.Logf("  facade: %s", f)
		}
		return
	}
	if !passed && len(rec.Failures) == 0 {
		t.Errorf("jsonassert %s check failed without reporting a failure", mode)
	}
	if passed && len(rec.Failures) > 0 {
		t.Errorf("jsonassert %s check passed but reported %d failure(s)", mode, len(rec.Failures))
	}
}

// indent prefixes every line with four spaces for readable log output.
func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n")
}
