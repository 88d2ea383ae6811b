// Package fsinput reads and writes puzzle inputs kept as plain files named
// after the day ("input/01", "input/02", ...).
package fsinput

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
	"github.com/jsfr/advent-of-code-2023/internal/ports"
)

type Store struct {
	dir string
}

// NewStore returns a store rooted at dir, typically <workspace>/input.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

var (
	_ ports.InputLoader = (*Store)(nil)
	_ ports.InputWriter = (*Store)(nil)
)

// PathFor is where the input of day lives.
func (s *Store) PathFor(day domain.DayID) string {
	return filepath.Join(s.dir, string(day))
}

func (s *Store) LoadInput(day domain.DayID, override string) (domain.Input, error) {
	path := override
	if path == "" {
		path = s.PathFor(day)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Input{}, &domain.OpError{
				Op:   "fsinput.load",
				Kind: domain.KindNotFound,
				Path: path,
				Err:  errors.Wrapf(domain.ErrNotFound, "no input for day %s", day),
			}
		}
		return domain.Input{}, &domain.OpError{
			Op:   "fsinput.load",
			Kind: domain.KindIO,
			Path: path,
			Err:  errors.Wrap(err, "failed to read input"),
		}
	}

	return domain.Input{Day: day, Path: path, Text: string(b)}, nil
}

func (s *Store) HasInput(day domain.DayID) bool {
	info, err := os.Stat(s.PathFor(day))
	return err == nil && info.Mode().IsRegular()
}

func (s *Store) WriteInput(day domain.DayID, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", &domain.OpError{Op: "fsinput.mkdir", Kind: domain.KindIO, Path: s.dir, Err: err}
	}

	path := s.PathFor(day)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return "", &domain.OpError{Op: "fsinput.write", Kind: domain.KindIO, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{Op: "fsinput.rename", Kind: domain.KindIO, Path: path, Err: err}
	}
	return path, nil
}
