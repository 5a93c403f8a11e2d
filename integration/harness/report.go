//go:build integration

package harness

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

// PrintScenarioHeader prints the header for a scenario.
func PrintScenarioHeader(t *testing.T, scenario *Scenario) {
	t.Helper()

	t.Logf("")
	t.Logf("Scenario: %s", scenario.Name)
	if scenario.Description != "" {
		t.Logf("  %s", scenario.Description)
	}
	t.Logf("  Documents: %s vs %s", scenario.Expected.Name, scenario.Actual.Name)
	if scenario.Path != "" {
		t.Logf("  Compare at: %s", scenario.Path)
	}
	if opts := describeOptions(scenario.Options); opts != "" {
		t.Logf("  Options: %s", opts)
	}
	t.Logf("")
}

// PrintScenarioResult prints a summary line for one executed scenario.
func PrintScenarioResult(t *testing.T, result *ScenarioResult) {
	t.Helper()

	status := "PASS"
	if !result.Success {
		status = "FAIL"
	}

	t.Logf("  Result: %s (%s), %d difference(s)", status, formatDuration(result.Duration), result.Differences)
	if result.Error != nil {
		t.Logf("  Pipeline error: %v", result.Error)
	}
}

// PrintSummary prints a summary of all scenario results.
func PrintSummary(t *testing.T, results []*ScenarioResult, duration time.Duration) {
	t.Helper()

	passed := 0
	failed := 0
	for _, r := range results {
		if r.Success {
			passed++
		} else {
			failed++
		}
	}

	t.Logf("")
	t.Logf("%s", strings.Repeat("=", 80))
	t.Logf("INTEGRATION TEST SUMMARY")
	t.Logf("%s", strings.Repeat("=", 80))
	t.Logf("Scenarios:  %d passed, %d failed", passed, failed)
	t.Logf("Duration:   %s", formatDuration(duration))
	t.Logf("%s", strings.Repeat("=", 80))

	if failed > 0 {
		t.Logf("")
		t.Logf("Failed scenarios:")
		for _, r := range results {
			if !r.Success {
				t.Logf("  - %s", r.Scenario.Name)
			}
		}
	}
}

// describeOptions renders the non-default options on one line.
func describeOptions(o ScenarioOptions) string {
	var parts []string
	if o.Tolerance != "" {
		parts = append(parts, "tolerance="+o.Tolerance)
	}
	if o.IgnoreMarker != "" {
		parts = append(parts, "ignoreMarker="+o.IgnoreMarker)
	}
	if o.ExtraFields != "" {
		parts = append(parts, "extraFields="+o.ExtraFields)
	}
	if o.DocumentName != "" {
		parts = append(parts, "documentName="+o.DocumentName)
	}
	return strings.Join(parts, ", ")
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
