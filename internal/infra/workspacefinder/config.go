package workspacefinder

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
)

// LoadConfig loads aoc.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.AOC.Year != 0 {
		if y.AOC.Year < 2015 {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  errors.Mark(errors.Newf("field aoc.year: %d is before the first event", y.AOC.Year), domain.ErrInvalidConfig),
			}
		}
		cfg.Year = y.AOC.Year
	}
	if y.AOC.Paths.InputDir != "" {
		cfg.Paths.InputDir = y.AOC.Paths.InputDir
	}
	if y.AOC.Paths.RunsDir != "" {
		cfg.Paths.RunsDir = y.AOC.Paths.RunsDir
	}
	if y.AOC.Paths.AnswersFile != "" {
		cfg.Paths.AnswersFile = y.AOC.Paths.AnswersFile
	}
	if u := strings.TrimSpace(y.AOC.Fetch.URL); u != "" {
		cfg.Fetch.URL = u
	}
	if y.AOC.Fetch.SessionEnv != "" {
		cfg.Fetch.SessionEnv = y.AOC.Fetch.SessionEnv
	}
	if y.AOC.Fetch.SessionFile != "" {
		cfg.Fetch.SessionFile = y.AOC.Fetch.SessionFile
	}
	if y.AOC.Runs.Save != nil {
		cfg.Runs.Save = *y.AOC.Runs.Save
	}

	return cfg, nil
}

type yamlConfig struct {
	AOC struct {
		Year int `yaml:"year"`

		Paths struct {
			InputDir    string `yaml:"input_dir"`
			RunsDir     string `yaml:"runs_dir"`
			AnswersFile string `yaml:"answers_file"`
		} `yaml:"paths"`

		Fetch struct {
			URL         string `yaml:"url"`
			SessionEnv  string `yaml:"session_env"`
			SessionFile string `yaml:"session_file"`
		} `yaml:"fetch"`

		Runs struct {
			Save *bool `yaml:"save"`
		} `yaml:"runs"`
	} `yaml:"aoc"`
}
