//go:build integration

package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"
	"golang.org/x/tools/txtar"
)

// LoadScenario loads a single scenario from a txtar archive.
func LoadScenario(path string) (*Scenario, error) {
	ar, err := txtar.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("harness: failed to read scenario archive %s: %w", path, err)
	}

	scenario := &Scenario{
		Name:        strings.TrimSuffix(filepath.Base(path), ".txtar"),
		Description: archiveDescription(ar.Comment),
		filePath:    path,
	}

	for _, f := range ar.Files {
		switch {
		case f.Name == "options.yaml":
			if err := yaml.Unmarshal(f.Data, &scenario.Options); err != nil {
				return nil, fmt.Errorf("harness: invalid options.yaml in %s: %w", path, err)
			}
		case f.Name == "want.yaml":
			if err := yaml.Unmarshal(f.Data, &scenario.Want); err != nil {
				return nil, fmt.Errorf("harness: invalid want.yaml in %s: %w", path, err)
			}
		case f.Name == "path":
			scenario.Path = strings.TrimSpace(string(f.Data))
		case f.Name == "want-report":
			scenario.WantReport = strings.TrimRight(string(f.Data), "\n")
		case f.Name == "want-structure-report":
			scenario.WantStructureReport = strings.TrimRight(string(f.Data), "\n")
		case strings.HasPrefix(f.Name, "expected."):
			if scenario.Expected.Name != "" {
				return nil, fmt.Errorf("harness: scenario %s has more than one expected document", path)
			}
			scenario.Expected = Document{Name: f.Name, Data: f.Data}
		case strings.HasPrefix(f.Name, "actual."):
			if scenario.Actual.Name != "" {
				return nil, fmt.Errorf("harness: scenario %s has more than one actual document", path)
			}
			scenario.Actual = Document{Name: f.Name, Data: f.Data}
		default:
			return nil, fmt.Errorf("harness: scenario %s has unrecognized file %q", path, f.Name)
		}
	}

	if err := ValidateScenario(scenario); err != nil {
		return nil, fmt.Errorf("harness: invalid scenario %s: %w", path, err)
	}

	return scenario, nil
}

// LoadAllScenarios loads all scenario archives from a directory recursively.
func LoadAllScenarios(dir string) ([]*Scenario, error) {
	var scenarios []*Scenario

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".txtar" {
			return nil
		}

		scenario, err := LoadScenario(path)
		if err != nil {
			return err
		}

		scenarios = append(scenarios, scenario)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("harness: failed to load scenarios from %s: %w", dir, err)
	}

	return scenarios, nil
}

// ValidateScenario validates a scenario's structure and required fields.
func ValidateScenario(s *Scenario) error {
	if s.Expected.Name == "" {
		return fmt.Errorf("scenario %q has no expected document", s.Name)
	}
	if s.Actual.Name == "" {
		return fmt.Errorf("scenario %q has no actual document", s.Name)
	}

	for _, doc := range []Document{s.Expected, s.Actual} {
		ext := filepath.Ext(doc.Name)
		if ext != ".json" && ext != ".yaml" {
			return fmt.Errorf("scenario %q document %s must end in .json or .yaml", s.Name, doc.Name)
		}
	}

	if s.Want.Error == "" && s.Want.Similar == nil {
		return fmt.Errorf("scenario %q must state similar in want.yaml", s.Name)
	}
	if s.Want.Error != "" && (s.WantReport != "" || s.WantStructureReport != "") {
		return fmt.Errorf("scenario %q expects an error and cannot also record reports", s.Name)
	}

	return nil
}

// archiveDescription extracts the first non-empty comment line.
func archiveDescription(comment []byte) string {
	for _, line := range strings.Split(string(comment), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}

// ScenarioPath returns the relative path of the scenario archive for display.
func ScenarioPath(s *Scenario, baseDir string) string {
	if s.filePath == "" {
		return s.Name
	}
	rel, err := filepath.Rel(baseDir, s.filePath)
	if err != nil {
		return s.filePath
	}
	return rel
}

// ScenarioTestName returns a test-friendly name for the scenario.
func ScenarioTestName(s *Scenario, baseDir string) string {
	path := ScenarioPath(s, baseDir)
	path = strings.TrimSuffix(path, ".txtar")
	path = strings.ReplaceAll(path, string(filepath.Separator), "/")
	return path
}
