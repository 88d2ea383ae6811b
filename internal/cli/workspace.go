package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
	"github.com/jsfr/advent-of-code-2023/internal/infra/aocweb"
	"github.com/jsfr/advent-of-code-2023/internal/infra/fsinput"
	"github.com/jsfr/advent-of-code-2023/internal/infra/runstore"
	"github.com/jsfr/advent-of-code-2023/internal/infra/workspacefinder"
	"github.com/jsfr/advent-of-code-2023/internal/infra/yamlanswers"
	"github.com/jsfr/advent-of-code-2023/internal/ports"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle/calendar"
)

type workspaceCtx struct {
	root  string
	cfg   domain.Config
	found bool

	catalog ports.SolverCatalog
	inputs  *fsinput.Store
	answers ports.AnswerLoader
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	start, err := resolveStartDir(workspaceFlag)
	if err != nil {
		return nil, err
	}

	ws, err := workspacefinder.NewFinder().Resolve(start)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:    ws.Root,
		cfg:     ws.Config,
		found:   ws.Found,
		catalog: calendar.New(),
		inputs:  fsinput.NewStore(ws.Path(ws.Config.Paths.InputDir)),
		answers: yamlanswers.NewLoader(ws.Path(ws.Config.Paths.AnswersFile)),
	}, nil
}

func (ws *workspaceCtx) store() ports.ArtifactStore {
	return runstore.NewJSONStore(ws.root, ws.cfg, runstore.WithIndex(true))
}

func (ws *workspaceCtx) fetcher() ports.InputFetcher {
	return aocweb.NewFetcher(ws.cfg.Fetch)
}

func resolveStartDir(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", errors.Wrap(err, "invalid workspace path")
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "get working directory")
	}
	return wd, nil
}

// resolveInputPath makes an explicit --input path absolute relative to the
// current directory, which is what a user typing it expects.
func resolveInputPath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", nil
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", errors.Wrapf(err, "invalid input path %q", p)
	}
	return abs, nil
}
