package tui

import (
	"log/slog"

	"github.com/jsfr/advent-of-code-2023/internal/ports"
)

type Deps struct {
	Catalog ports.SolverCatalog
	Inputs  ports.InputLoader

	WorkspaceRoot        string
	WorkspaceFound       bool
	WorkspaceInitializer ports.WorkspaceInitializer

	Logger *slog.Logger
	Debug  bool
}
