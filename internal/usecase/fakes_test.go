package usecase

import (
	"context"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle"
)

// --- fakes shared by the usecase tests ---

// echoSolver answers with the input length for part one and fails part two.
type echoSolver struct{ err error }

func (s echoSolver) SolvePartOne(input string) (string, error) {
	return puzzle.Answer(len(input)), nil
}

func (s echoSolver) SolvePartTwo(string) (string, error) {
	return "", s.err
}

func fakeCatalog(entries ...puzzle.Entry) *puzzle.Registry {
	return puzzle.NewRegistry(entries...)
}

func echoEntry(day domain.DayID, partTwoErr error) puzzle.Entry {
	return puzzle.Entry{
		Day:   day,
		Title: "Echo " + string(day),
		New:   func() puzzle.Solver { return echoSolver{err: partTwoErr} },
	}
}

type fakeInputs struct {
	texts   map[domain.DayID]string
	written map[domain.DayID][]byte
	loads   int
}

func (f *fakeInputs) LoadInput(day domain.DayID, override string) (domain.Input, error) {
	f.loads++
	path := "input/" + string(day)
	if override != "" {
		path = override
	}
	text, ok := f.texts[day]
	if !ok {
		return domain.Input{}, &domain.OpError{Op: "fake.load", Kind: domain.KindNotFound, Path: path, Err: domain.ErrNotFound}
	}
	return domain.Input{Day: day, Path: path, Text: text}, nil
}

func (f *fakeInputs) HasInput(day domain.DayID) bool {
	_, ok := f.texts[day]
	return ok
}

func (f *fakeInputs) WriteInput(day domain.DayID, data []byte) (string, error) {
	if f.written == nil {
		f.written = map[domain.DayID][]byte{}
	}
	if f.texts == nil {
		f.texts = map[domain.DayID]string{}
	}
	f.written[day] = data
	f.texts[day] = string(data)
	return "input/" + string(day), nil
}

type fakeStore struct {
	saved bool
	last  domain.RunArtifact
	err   error
}

func (s *fakeStore) SaveRun(run domain.RunArtifact) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = true
	s.last = run
	return "run-123", nil
}

type fakeAnswers struct {
	book domain.AnswerBook
	err  error
}

func (f fakeAnswers) LoadAnswers() (domain.AnswerBook, error) {
	return f.book, f.err
}

type fakeFetcher struct {
	data  []byte
	err   error
	calls int
}

func (f *fakeFetcher) FetchInput(_ context.Context, _ int, _ domain.DayID) ([]byte, error) {
	f.calls++
	return f.data, f.err
}
