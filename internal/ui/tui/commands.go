package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
	"github.com/jsfr/advent-of-code-2023/internal/usecase"
)

const solveTimeout = 5 * time.Minute

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func cmdSolve(deps Deps, day domain.DayID, part domain.PartID) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = solvedMsg{err: &domain.OpError{
					Op:   "tui.solve",
					Kind: domain.KindExecution,
					Err:  errors.Newf("solver panicked: %v", r),
				}}
			}
		}()

		log := deps.Logger
		if log != nil && deps.Debug {
			log.Debug("tui.solve", "day", string(day), "part", string(part))
		}

		uc := usecase.NewSolvePuzzle(deps.Catalog, deps.Inputs, usecase.WithSolveLogger(log))

		ctx, cancel := context.WithTimeout(context.Background(), solveTimeout)
		defer cancel()

		run, err := uc.Execute(ctx, day, part, "")
		return solvedMsg{run: run, err: err}
	}
}
