package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
	"github.com/jsfr/advent-of-code-2023/internal/ports"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle"
)

type SolvePuzzle struct {
	catalog ports.SolverCatalog
	inputs  ports.InputLoader
	store   ports.ArtifactStore
	year    int
	logger  *slog.Logger
	now     func() time.Time
}

type SolveOption func(*SolvePuzzle)

// WithArtifactStore saves every run, successful or not, as an artifact.
func WithArtifactStore(store ports.ArtifactStore, year int) SolveOption {
	return func(uc *SolvePuzzle) {
		uc.store = store
		uc.year = year
	}
}

func WithSolveLogger(l *slog.Logger) SolveOption {
	return func(uc *SolvePuzzle) {
		if l != nil {
			uc.logger = l
		}
	}
}

func NewSolvePuzzle(catalog ports.SolverCatalog, inputs ports.InputLoader, opts ...SolveOption) *SolvePuzzle {
	uc := &SolvePuzzle{
		catalog: catalog,
		inputs:  inputs,
		logger:  slog.New(slog.DiscardHandler),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute solves one part of one day. inputPath overrides the workspace input
// file when set. A solver error is returned unchanged alongside a result that
// records it.
func (uc *SolvePuzzle) Execute(ctx context.Context, day domain.DayID, part domain.PartID, inputPath string) (domain.RunResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.RunResult{}, err
	}

	entry, err := uc.catalog.Lookup(day)
	if err != nil {
		return domain.RunResult{}, err
	}

	in, err := uc.inputs.LoadInput(day, inputPath)
	if err != nil {
		return domain.RunResult{}, err
	}

	run := domain.RunResult{
		Day:       day,
		Part:      part,
		Title:     entry.Title,
		InputPath: in.Path,
		InputSize: len(in.Text),
	}

	uc.logger.Debug("solve.start", "day", day, "part", part, "input", in.Path, "bytes", len(in.Text))

	run.StartedAt = uc.now()
	answer, solveErr := puzzle.Solve(entry.New(), part, in.Text)
	run.EndedAt = uc.now()

	if solveErr != nil {
		run.Error = domain.NewRunError(solveErr)
		uc.logger.Info("solve.failed", "day", day, "part", part, "kind", run.Error.Kind, "error", solveErr.Error())
	} else {
		run.Answer = answer
		uc.logger.Info("solve.ok", "day", day, "part", part, "duration_ms", run.Duration().Milliseconds())
	}

	if uc.store != nil {
		id, err := uc.store.SaveRun(domain.RunArtifact{Year: uc.year, Run: run})
		if err != nil {
			uc.logger.Warn("solve.save_failed", "day", day, "part", part, "error", err.Error())
			if solveErr == nil {
				return run, err
			}
		} else {
			run.RunID = id
		}
	}

	return run, solveErr
}
