package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
)

func TestSolvePuzzle_Success(t *testing.T) {
	inputs := &fakeInputs{texts: map[domain.DayID]string{"01": "abcd"}}
	uc := NewSolvePuzzle(fakeCatalog(echoEntry("01", nil)), inputs)

	run, err := uc.Execute(context.Background(), "01", domain.PartOne, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.Answer != "4" {
		t.Fatalf("expected answer 4, got %q", run.Answer)
	}
	if run.Title != "Echo 01" || run.InputPath != "input/01" || run.InputSize != 4 {
		t.Fatalf("unexpected run metadata: %+v", run)
	}
	if run.Error != nil {
		t.Fatalf("expected no run error, got %+v", run.Error)
	}
	if run.RunID != "" {
		t.Fatalf("expected no run id without a store, got %q", run.RunID)
	}
}

func TestSolvePuzzle_InputOverride(t *testing.T) {
	inputs := &fakeInputs{texts: map[domain.DayID]string{"01": "xy"}}
	uc := NewSolvePuzzle(fakeCatalog(echoEntry("01", nil)), inputs)

	run, err := uc.Execute(context.Background(), "01", domain.PartOne, "/tmp/other.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.InputPath != "/tmp/other.txt" {
		t.Fatalf("expected override path, got %q", run.InputPath)
	}
}

func TestSolvePuzzle_UnknownDay(t *testing.T) {
	inputs := &fakeInputs{}
	uc := NewSolvePuzzle(fakeCatalog(echoEntry("01", nil)), inputs)

	_, err := uc.Execute(context.Background(), "10", domain.PartOne, "")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if inputs.loads != 0 {
		t.Fatalf("input must not be read for an unknown day")
	}
}

func TestSolvePuzzle_MissingInput(t *testing.T) {
	uc := NewSolvePuzzle(fakeCatalog(echoEntry("01", nil)), &fakeInputs{})

	_, err := uc.Execute(context.Background(), "01", domain.PartOne, "")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestSolvePuzzle_SolverErrorPropagates(t *testing.T) {
	solverErr := &domain.OpError{Op: "echo.part_two", Kind: domain.KindNotImplemented, Err: domain.ErrNotImplemented}
	inputs := &fakeInputs{texts: map[domain.DayID]string{"01": "abc"}}
	store := &fakeStore{}
	uc := NewSolvePuzzle(fakeCatalog(echoEntry("01", solverErr)), inputs, WithArtifactStore(store, 2023))

	run, err := uc.Execute(context.Background(), "01", domain.PartTwo, "")
	if !errors.Is(err, solverErr) {
		t.Fatalf("expected the solver error unchanged, got %v", err)
	}
	if run.Answer != "" {
		t.Fatalf("expected no answer, got %q", run.Answer)
	}
	if run.Error == nil || run.Error.Kind != domain.KindNotImplemented {
		t.Fatalf("expected run error of kind not_implemented, got %+v", run.Error)
	}
	if !store.saved || store.last.Run.Error == nil {
		t.Fatalf("expected failed run to be saved")
	}
}

func TestSolvePuzzle_SavesArtifact(t *testing.T) {
	inputs := &fakeInputs{texts: map[domain.DayID]string{"04": "xyz"}}
	store := &fakeStore{}
	uc := NewSolvePuzzle(fakeCatalog(echoEntry("04", nil)), inputs, WithArtifactStore(store, 2023))

	clock := time.Date(2023, 12, 4, 6, 0, 0, 0, time.UTC)
	uc.now = func() time.Time {
		clock = clock.Add(5 * time.Millisecond)
		return clock
	}

	run, err := uc.Execute(context.Background(), "04", domain.PartOne, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.RunID != "run-123" {
		t.Fatalf("expected run id, got %q", run.RunID)
	}
	if store.last.Year != 2023 || store.last.Run.Answer != "3" {
		t.Fatalf("unexpected artifact: %+v", store.last)
	}
	if run.Duration() != 5*time.Millisecond {
		t.Fatalf("expected 5ms, got %s", run.Duration())
	}
}

func TestSolvePuzzle_SaveFailure(t *testing.T) {
	saveErr := &domain.OpError{Op: "runstore.save", Kind: domain.KindIO, Err: errors.New("disk full")}
	inputs := &fakeInputs{texts: map[domain.DayID]string{"01": "a"}}
	uc := NewSolvePuzzle(fakeCatalog(echoEntry("01", nil)), inputs, WithArtifactStore(&fakeStore{err: saveErr}, 2023))

	run, err := uc.Execute(context.Background(), "01", domain.PartOne, "")
	if !errors.Is(err, saveErr) {
		t.Fatalf("expected save error, got %v", err)
	}
	if run.Answer != "1" {
		t.Fatalf("answer should still be reported, got %q", run.Answer)
	}
}

func TestSolvePuzzle_CanceledContext(t *testing.T) {
	inputs := &fakeInputs{texts: map[domain.DayID]string{"01": "a"}}
	uc := NewSolvePuzzle(fakeCatalog(echoEntry("01", nil)), inputs)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := uc.Execute(ctx, "01", domain.PartOne, ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if inputs.loads != 0 {
		t.Fatalf("input must not be read after cancellation")
	}
}
