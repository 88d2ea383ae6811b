package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
)

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// Partial config (only runs.save)
	content := []byte("aoc:\n  runs:\n    save: true\n")
	if err := os.WriteFile(filepath.Join(root, "aoc.yaml"), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if !cfg.Runs.Save {
		t.Fatalf("expected runs.save=true")
	}
	if cfg.Year != 2023 {
		t.Fatalf("expected default year=2023, got=%d", cfg.Year)
	}
	if cfg.Paths.InputDir != "input" {
		t.Fatalf("expected input dir=input, got=%s", cfg.Paths.InputDir)
	}
	if cfg.Paths.AnswersFile != "answers.yaml" {
		t.Fatalf("expected answers file=answers.yaml, got=%s", cfg.Paths.AnswersFile)
	}
	if cfg.Fetch.SessionEnv != "AOC_SESSION" {
		t.Fatalf("expected session env=AOC_SESSION, got=%s", cfg.Fetch.SessionEnv)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	root := t.TempDir()
	content := []byte(`aoc:
  year: 2022
  paths:
    input_dir: puzzles
    runs_dir: out
  fetch:
    url: http://localhost/{{day}}
    session_file: .session
`)
	if err := os.WriteFile(filepath.Join(root, "aoc.yaml"), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Year != 2022 || cfg.Paths.InputDir != "puzzles" || cfg.Paths.RunsDir != "out" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Fetch.URL != "http://localhost/{{day}}" || cfg.Fetch.SessionFile != ".session" {
		t.Fatalf("fetch overrides not applied: %+v", cfg.Fetch)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	root := t.TempDir()
	for name, content := range map[string]string{
		"yaml": "aoc: [unterminated\n",
		"year": "aoc:\n  year: 1999\n",
	} {
		if err := os.WriteFile(filepath.Join(root, "aoc.yaml"), []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		_, err := LoadConfig(root)
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Fatalf("%s: expected KindInvalidConfig, got %v", name, err)
		}
	}
}
