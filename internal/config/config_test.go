package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
window:
  width: 1280
questions:
  path: data/quiz.yaml
audio:
  enabled: false
seed: 42
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 600 {
		t.Fatalf("unexpected window %+v", cfg.Window)
	}
	if cfg.Questions.Path != "data/quiz.yaml" || cfg.Questions.Table != "questions" {
		t.Fatalf("unexpected questions %+v", cfg.Questions)
	}
	if cfg.Audio.Enabled || cfg.Seed != 42 || cfg.Log.Mode != "development" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := Load(missing, false); err == nil {
		t.Fatal("expected error for explicit missing config")
	}
	cfg, err := Load(missing, true)
	if err != nil {
		t.Fatalf("optional missing config: %v", err)
	}
	if cfg.Window.Width != 800 {
		t.Fatalf("expected defaults, got %+v", cfg.Window)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("window: [unclosed"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path, true); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		q    Questions
		want string
	}{
		{Questions{Path: "q.csv"}, FormatCSV},
		{Questions{Path: "q.YML"}, FormatYAML},
		{Questions{Path: "q.yaml"}, FormatYAML},
		{Questions{Path: "q.db"}, FormatSQLite},
		{Questions{Path: "q.txt"}, FormatCSV},
		{Questions{Path: "q.csv", Format: "SQLite"}, FormatSQLite},
	}
	for _, tt := range tests {
		if got := tt.q.ResolveFormat(); got != tt.want {
			t.Errorf("%+v: expected %s, got %s", tt.q, tt.want, got)
		}
	}
}
