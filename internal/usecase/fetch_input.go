package usecase

import (
	"context"
	"log/slog"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
	"github.com/jsfr/advent-of-code-2023/internal/ports"
)

// InputStore is what FetchInput needs from the workspace input directory.
type InputStore interface {
	ports.InputLoader
	ports.InputWriter
}

type FetchInput struct {
	fetcher ports.InputFetcher
	inputs  InputStore
	year    int
	logger  *slog.Logger
}

func NewFetchInput(fetcher ports.InputFetcher, inputs InputStore, year int, logger *slog.Logger) *FetchInput {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FetchInput{fetcher: fetcher, inputs: inputs, year: year, logger: logger}
}

// Execute downloads the input of day unless it is already present. force
// downloads and overwrites regardless.
func (uc *FetchInput) Execute(ctx context.Context, day domain.DayID, force bool) (domain.FetchResult, error) {
	if !force && uc.inputs.HasInput(day) {
		in, err := uc.inputs.LoadInput(day, "")
		if err != nil {
			return domain.FetchResult{}, err
		}
		uc.logger.Debug("fetch.skipped", "day", day, "path", in.Path)
		return domain.FetchResult{Day: day, Path: in.Path, Bytes: len(in.Text), Skipped: true}, nil
	}

	data, err := uc.fetcher.FetchInput(ctx, uc.year, day)
	if err != nil {
		uc.logger.Warn("fetch.failed", "day", day, "error", err.Error())
		return domain.FetchResult{}, err
	}

	path, err := uc.inputs.WriteInput(day, data)
	if err != nil {
		return domain.FetchResult{}, err
	}

	uc.logger.Info("fetch.ok", "day", day, "path", path, "bytes", len(data))
	return domain.FetchResult{Day: day, Path: path, Bytes: len(data)}, nil
}
