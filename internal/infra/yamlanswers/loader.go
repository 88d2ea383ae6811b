package yamlanswers

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
)

// Loader reads the pinned answers of a workspace from a YAML file.
type Loader struct {
	Path string
}

func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

func (l *Loader) LoadAnswers() (domain.AnswerBook, error) {
	return LoadAnswers(l.Path)
}

func LoadAnswers(path string) (domain.AnswerBook, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindIO
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "yamlanswers.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLAnswers
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, &domain.OpError{
			Op:   "yamlanswers.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapAnswers(path, dto)
}
