package director

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGenerateScenarioPath(t *testing.T) {
	path := GenerateScenarioPath(DefaultScenarioDir)

	if !strings.Contains(path, "scenario_") {
		t.Errorf("Path should contain 'scenario_': %s", path)
	}
	if filepath.Dir(path) != DefaultScenarioDir {
		t.Errorf("Path should be in %s: %s", DefaultScenarioDir, path)
	}

	t.Logf("Generated path: %s", path)
}

func TestFindLatestScenario(t *testing.T) {
	testDir := t.TempDir()

	// Create test files with different timestamps
	files := []string{
		filepath.Join(testDir, "scenario_2026-02-12_10-00-00.yaml"),
		filepath.Join(testDir, "scenario_2026-02-13_01-00-00.yml"),
		filepath.Join(testDir, "scenario_2026-02-11_15-30-00.yaml"),
		filepath.Join(testDir, "notes.txt"), // ignored
	}

	for i, f := range files {
		os.WriteFile(f, []byte("test"), 0644)
		modTime := time.Now().Add(time.Duration(i) * time.Hour)
		os.Chtimes(f, modTime, modTime)
	}

	latest, err := FindLatestScenario(testDir)
	if err != nil {
		t.Fatalf("FindLatestScenario failed: %v", err)
	}

	t.Logf("Latest scenario: %s", latest)

	// The newest yaml/yml file wins; the even newer .txt is not a scenario.
	if latest != files[2] {
		t.Errorf("Expected latest to be %s, got %s", files[2], latest)
	}
}

func TestFindLatestScenarioEmptyDir(t *testing.T) {
	if _, err := FindLatestScenario(t.TempDir()); err == nil {
		t.Error("Expected error for directory without scenarios")
	}
}
