package usecase

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
	"github.com/jsfr/advent-of-code-2023/internal/ports"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle"
)

type VerifyAnswers struct {
	catalog ports.SolverCatalog
	inputs  ports.InputLoader
	answers ports.AnswerLoader
	logger  *slog.Logger
}

func NewVerifyAnswers(catalog ports.SolverCatalog, inputs ports.InputLoader, answers ports.AnswerLoader, logger *slog.Logger) *VerifyAnswers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &VerifyAnswers{
		catalog: catalog,
		inputs:  inputs,
		answers: answers,
		logger:  logger,
	}
}

// Execute re-solves every pinned answer, restricted to days when given, and
// reports one Verification per pinned answer. Failures of a single entry are
// recorded on that entry; only loading the answer book or cancellation
// aborts the pass.
func (uc *VerifyAnswers) Execute(ctx context.Context, days []domain.DayID) ([]domain.Verification, error) {
	book, err := uc.answers.LoadAnswers()
	if err != nil {
		return nil, err
	}

	selected := book.Days()
	if len(days) > 0 {
		selected = make([]domain.DayID, 0, len(days))
		for _, d := range days {
			if _, ok := book[d]; !ok {
				return nil, &domain.OpError{
					Op:   "usecase.verify",
					Kind: domain.KindNotFound,
					Err:  errors.Wrapf(domain.ErrNotFound, "no pinned answers for day %s", d),
				}
			}
			selected = append(selected, d)
		}
	}

	out := make([]domain.Verification, 0, len(selected)*2)
	for _, day := range selected {
		var (
			solver  puzzle.Solver
			in      domain.Input
			loadErr error
		)
		entry, err := uc.catalog.Lookup(day)
		if err != nil {
			loadErr = err
		} else {
			solver = entry.New()
			in, loadErr = uc.inputs.LoadInput(day, "")
		}

		for _, part := range domain.Parts() {
			want, ok := book.Want(day, part)
			if !ok {
				continue
			}
			if err := ctx.Err(); err != nil {
				return out, err
			}

			v := domain.Verification{Day: day, Part: part, Want: want}
			if loadErr != nil {
				v.Error = domain.NewRunError(loadErr)
			} else if got, err := puzzle.Solve(solver, part, in.Text); err != nil {
				v.Error = domain.NewRunError(err)
			} else {
				v.Got = got
				v.Passed = got == want
			}

			if v.Passed {
				uc.logger.Debug("verify.ok", "day", day, "part", part)
			} else {
				uc.logger.Info("verify.mismatch", "day", day, "part", part, "want", want, "got", v.Got)
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// Failed counts the verifications that did not pass.
func Failed(vs []domain.Verification) int {
	n := 0
	for _, v := range vs {
		if !v.Passed {
			n++
		}
	}
	return n
}
