package ports

import (
	"github.com/jsfr/advent-of-code-2023/internal/domain"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle"
)

// SolverCatalog resolves a day to its solver.
type SolverCatalog interface {
	Lookup(day domain.DayID) (puzzle.Entry, error)
	Days() []puzzle.Entry
}
