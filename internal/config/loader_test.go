package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if loadErr.Path != "nonexistent/config.yaml" {
		t.Errorf("expected path 'nonexistent/config.yaml', got %q", loadErr.Path)
	}
	if loadErr.Message != "config file not found" {
		t.Errorf("expected message 'config file not found', got %q", loadErr.Message)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
export:
  output_dir: " exports "
  file_name: canvas.png
  scale: 3
  width: 1000
  chart_height: 500
  title: Market Map
  attribution: ""
  timeout: 1m

log:
  level: debug
  dir: /tmp/logs
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	want := &Config{
		Export: ExportConfig{
			OutputDir:   "exports",
			FileName:    "canvas.png",
			Scale:       3,
			Width:       1000,
			ChartHeight: 500,
			Title:       "Market Map",
			Attribution: "",
			Timeout:     time.Minute,
		},
		Log: LogConfig{Level: "debug", Dir: "/tmp/logs"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, `
export:
  output_dir: out
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Export.OutputDir != "out" {
		t.Errorf("expected output_dir 'out', got %q", cfg.Export.OutputDir)
	}
	if cfg.Export.FileName != DefaultFileName {
		t.Errorf("expected default file name, got %q", cfg.Export.FileName)
	}
	if cfg.Export.Scale != DefaultScale {
		t.Errorf("expected default scale, got %v", cfg.Export.Scale)
	}
	if cfg.Export.Title != DefaultTitle {
		t.Errorf("expected default title, got %q", cfg.Export.Title)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("expected default log level, got %q", cfg.Log.Level)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "export: [unterminated\n")

	_, err := Load(path)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if loadErr.Message != "failed to read config file" {
		t.Errorf("unexpected message %q", loadErr.Message)
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	path := writeConfig(t, `
export:
  file_name: canvas.gif
`)

	_, err := Load(path)
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors in chain, got %v", err)
	}
	if verrs[0].Field != "export.file_name" {
		t.Errorf("field = %q", verrs[0].Field)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
export:
  output_dir: from-file
  scale: 2
`)

	t.Setenv("STRATEGYCANVAS_EXPORT_OUTPUT_DIR", "from-env")
	t.Setenv("STRATEGYCANVAS_EXPORT_SCALE", "1.5")
	t.Setenv("STRATEGYCANVAS_EXPORT_WIDTH", "not-a-number")
	t.Setenv("STRATEGYCANVAS_EXPORT_TIMEOUT", "5s")
	t.Setenv("STRATEGYCANVAS_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Export.OutputDir != "from-env" {
		t.Errorf("output_dir = %q, want from-env", cfg.Export.OutputDir)
	}
	if cfg.Export.Scale != 1.5 {
		t.Errorf("scale = %v, want 1.5", cfg.Export.Scale)
	}
	if cfg.Export.Width != DefaultWidth {
		t.Errorf("unparseable width override should be ignored, got %d", cfg.Export.Width)
	}
	if cfg.Export.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.Export.Timeout)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	t.Setenv("STRATEGYCANVAS_EXPORT_FILE_NAME", "env.png")

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}

	want := NewConfig()
	want.Export.FileName = "env.png"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadOrDefault() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOrDefault_ExistingFile(t *testing.T) {
	path := writeConfig(t, "export:\n  width: 640\n")

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Export.Width != 640 {
		t.Errorf("width = %d, want 640", cfg.Export.Width)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := NewConfig()
	cfg.Export.OutputDir = "exports"
	cfg.Export.Timeout = 2 * time.Minute
	cfg.Log.Level = "error"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() after Save() error = %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("round trip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestLoadError_Error(t *testing.T) {
	withCause := &LoadError{Path: "p.yaml", Message: "bad", Err: errors.New("boom")}
	if got := withCause.Error(); got != "p.yaml: bad: boom" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(withCause, withCause.Err) {
		t.Error("LoadError should unwrap to its cause")
	}

	bare := &LoadError{Path: "p.yaml", Message: "bad"}
	if got := bare.Error(); got != "p.yaml: bad" {
		t.Errorf("Error() = %q", got)
	}
}
