// Package puzzle defines the contract every day's solver implements and the
// small set of helpers the solvers share for splitting input and reporting
// failures.
package puzzle

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
)

// Solver computes the two answers of a day from the raw puzzle text.
// Implementations are stateless; the same input always yields the same answer.
type Solver interface {
	SolvePartOne(input string) (string, error)
	SolvePartTwo(input string) (string, error)
}

// Solve dispatches to the operation selected by part.
func Solve(s Solver, part domain.PartID, input string) (string, error) {
	switch part {
	case domain.PartOne:
		return s.SolvePartOne(input)
	case domain.PartTwo:
		return s.SolvePartTwo(input)
	default:
		return "", &domain.OpError{
			Op:   "puzzle.solve",
			Kind: domain.KindNotFound,
			Err:  errors.Wrapf(domain.ErrNotFound, "part %s was not found", part),
		}
	}
}

// Lines splits input into records the way a line reader would: a single
// trailing newline does not produce an empty record and "\r\n" endings are
// accepted.
func Lines(input string) []string {
	if input == "" {
		return nil
	}
	input = strings.TrimSuffix(input, "\n")
	lines := strings.Split(input, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Answer formats an integer answer.
func Answer(n int) string {
	return strconv.Itoa(n)
}

// Invalid reports input that does not match a day's grammar.
func Invalid(op string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindInvalidInput,
		Err:  errors.Mark(err, domain.ErrInvalidInput),
	}
}

// Invalidf is Invalid with a formatted message.
func Invalidf(op, format string, args ...any) error {
	return Invalid(op, errors.Newf(format, args...))
}

// Missing reports that an element the algorithm needs was not found.
func Missing(op, format string, args ...any) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindPrecondition,
		Err:  errors.Mark(errors.Newf(format, args...), domain.ErrPrecondition),
	}
}

// NotImplemented is returned by placeholder parts.
func NotImplemented(op string) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindNotImplemented,
		Err:  domain.ErrNotImplemented,
	}
}

// ParseLines applies parse to every record, failing on the first bad one with
// the line number and text attached.
func ParseLines[T any](op, input string, parse func(string) (T, error)) ([]T, error) {
	lines := Lines(input)
	out := make([]T, 0, len(lines))
	for i, line := range lines {
		v, err := parse(line)
		if err != nil {
			return nil, Invalid(op, errors.Wrapf(err, "line %d %q", i+1, line))
		}
		out = append(out, v)
	}
	return out, nil
}
