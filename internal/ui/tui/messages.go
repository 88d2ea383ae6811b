package tui

import "github.com/jsfr/advent-of-code-2023/internal/domain"

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type solvedMsg struct {
	run domain.RunResult
	err error
}
