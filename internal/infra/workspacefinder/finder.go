package workspacefinder

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
)

// ConfigFile marks the root of a workspace.
const ConfigFile = "aoc.yaml"

// Finder locates a workspace root by searching for aoc.yaml upward.
type Finder struct {
	ConfigFile string // defaults to "aoc.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFile}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if _, err := os.Stat(cfgPath); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  errors.Wrapf(domain.ErrNotFound, "no %s in %s or any parent", f.ConfigFile, abs),
			}
		}
		cur = parent
	}
}

// Workspace is a resolved workspace: its root and the configuration in force.
type Workspace struct {
	Root   string
	Config domain.Config
	// Found is false when no aoc.yaml exists and Root is the start directory
	// with default configuration.
	Found bool
}

// Resolve finds the workspace containing startDir. Without an aoc.yaml
// anywhere upward, startDir itself is used with the default configuration so
// that ./input/<day> keeps working in a bare checkout.
func (f *Finder) Resolve(startDir string) (Workspace, error) {
	root, err := f.FindRoot(startDir)
	if err != nil {
		if !domain.IsKind(err, domain.KindNotFound) {
			return Workspace{}, err
		}
		abs, aerr := filepath.Abs(startDir)
		if aerr != nil {
			abs = startDir
		}
		return Workspace{Root: abs, Config: domain.DefaultConfig()}, nil
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		return Workspace{}, err
	}
	return Workspace{Root: root, Config: cfg, Found: true}, nil
}

// Path joins rel onto the workspace root unless it is already absolute.
func (w Workspace) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(w.Root, rel)
}
