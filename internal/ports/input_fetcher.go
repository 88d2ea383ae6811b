package ports

import (
	"context"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
)

// InputFetcher downloads the personal puzzle input for a day.
type InputFetcher interface {
	FetchInput(ctx context.Context, year int, day domain.DayID) ([]byte, error)
}
