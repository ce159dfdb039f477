package configuration

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/typelog/typelog/core"
)

func TestLoadFromJSON(t *testing.T) {
	data := []byte(`{
		"minimumSeverity": "warning",
		"console": true,
		"file": "/var/log/app.log",
		"showTimestamp": false,
		"timestampLayout": "15:04:05",
		"subjects": ["Order", "Invoice"],
		"scopes": ["Order:ERROR", "Invoice"]
	}`)

	config, err := LoadFromJSON(data)
	if err != nil {
		t.Fatalf("LoadFromJSON returned error: %v", err)
	}
	if config.MinimumSeverity != "warning" {
		t.Errorf("MinimumSeverity = %q", config.MinimumSeverity)
	}
	if !config.Console || config.File != "/var/log/app.log" {
		t.Errorf("sinks not parsed: %+v", config)
	}
	if config.ShowTimestamp == nil || *config.ShowTimestamp {
		t.Error("showTimestamp false not parsed")
	}
	if len(config.Scopes) != 2 {
		t.Errorf("scopes = %v", config.Scopes)
	}
}

func TestLoadFromYAML(t *testing.T) {
	data := []byte(`
minimumSeverity: error
console: true
subjects:
  - Order
scopes:
  - "Order:ERROR"
`)

	config, err := LoadFromYAML(data)
	if err != nil {
		t.Fatalf("LoadFromYAML returned error: %v", err)
	}
	if config.MinimumSeverity != "error" || !config.Console {
		t.Errorf("config = %+v", config)
	}
	if len(config.Subjects) != 1 || config.Subjects[0] != "Order" {
		t.Errorf("subjects = %v", config.Subjects)
	}
}

func TestLoadFromFileByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "config.json")
	if err := os.WriteFile(jsonPath, []byte(`{"minimumSeverity":"debug"}`), 0644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(yamlPath, []byte("minimumSeverity: info\n"), 0644); err != nil {
		t.Fatal(err)
	}

	fromJSON, err := LoadFromFile(jsonPath)
	if err != nil || fromJSON.MinimumSeverity != "debug" {
		t.Errorf("json load: %+v, %v", fromJSON, err)
	}
	fromYAML, err := LoadFromFile(yamlPath)
	if err != nil || fromYAML.MinimumSeverity != "info" {
		t.Errorf("yaml load: %+v, %v", fromYAML, err)
	}
}

func TestBuildAppliesFloorAndScopes(t *testing.T) {
	config := &Config{
		MinimumSeverity: "warning",
		Console:         true,
		Subjects:        []string{"Order"},
		Scopes:          []string{"Order:ERROR"},
	}

	logger, err := config.Build()
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if logger.MinimumSeverity() != core.Warning {
		t.Errorf("floor = %v, want Warning", logger.MinimumSeverity())
	}
	if logger.LogsAllSubjects() {
		t.Error("scopes should turn per-type scoping on")
	}
	if !logger.ShouldLog(core.Error, "Order") {
		t.Error("Error rejected for scoped subject")
	}
	if logger.ShouldLog(core.Warning, "Order") {
		t.Error("Warning passed for subject scoped at ERROR")
	}
}

func TestBuildStrictSeverityError(t *testing.T) {
	config := &Config{MinimumSeverity: "loud"}

	_, err := config.Build()
	if !errors.Is(err, core.ErrInvalidSeverityName) {
		t.Fatalf("expected ErrInvalidSeverityName, got %v", err)
	}
}

func TestBuildUnknownSubjectError(t *testing.T) {
	config := &Config{
		Console: true,
		Scopes:  []string{"Phantom:ERROR"},
	}

	_, err := config.Build()
	if !errors.Is(err, core.ErrUnknownSubjectType) {
		t.Fatalf("expected ErrUnknownSubjectType, got %v", err)
	}
}
