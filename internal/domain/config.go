package domain

// Config represents the workspace configuration loaded from aoc.yaml.
type Config struct {
	Year  int
	Paths PathsConfig
	Fetch FetchConfig
	Runs  RunsConfig
}

type PathsConfig struct {
	InputDir    string
	RunsDir     string
	AnswersFile string
}

// FetchConfig controls how puzzle inputs are downloaded.
// URL is a template with {{year}} and {{day}} placeholders.
type FetchConfig struct {
	URL         string
	SessionEnv  string
	SessionFile string
}

type RunsConfig struct {
	Save bool
}

// DefaultConfig provides sane defaults if aoc.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Year: 2023,
		Paths: PathsConfig{
			InputDir:    "input",
			RunsDir:     "runs",
			AnswersFile: "answers.yaml",
		},
		Fetch: FetchConfig{
			URL:        "https://adventofcode.com/{{year}}/day/{{day}}/input",
			SessionEnv: "AOC_SESSION",
		},
	}
}
