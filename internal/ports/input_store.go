package ports

import "github.com/jsfr/advent-of-code-2023/internal/domain"

// InputLoader reads puzzle inputs. An empty override means the day's default
// location in the workspace.
type InputLoader interface {
	LoadInput(day domain.DayID, override string) (domain.Input, error)
	HasInput(day domain.DayID) bool
}

// InputWriter stores a downloaded input at the day's default location.
type InputWriter interface {
	WriteInput(day domain.DayID, data []byte) (path string, err error)
}
