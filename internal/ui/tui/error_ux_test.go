package tui

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle"
)

func TestUserMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{
			name: "missing input",
			err:  &domain.OpError{Op: "fsinput.load", Kind: domain.KindNotFound, Path: "input/05", Err: domain.ErrNotFound},
			want: "Input file not found (try aoc fetch)",
		},
		{
			name: "unknown day",
			err:  &domain.OpError{Op: "puzzle.lookup", Kind: domain.KindNotFound, Err: domain.ErrNotFound},
			want: "Day not found",
		},
		{
			name: "read failure",
			err:  &domain.OpError{Op: "fsinput.load", Kind: domain.KindIO, Path: "/w/input/01", Err: errors.New("denied")},
			want: "Could not read 01",
		},
		{
			name: "bad line",
			err: puzzle.Invalid("day02.parse",
				errors.Wrapf(errors.New("unexpected \"x\""), "line %d %q", 3, "Game x")),
			want: "Malformed puzzle input at line 3",
		},
		{
			name: "bad grammar",
			err:  puzzle.Invalidf("day08.parse", "node %q is not defined", "QQQ"),
			want: "Malformed puzzle input",
		},
		{
			name: "precondition",
			err:  puzzle.Missing("day11.parse", "no galaxies in image"),
			want: "Puzzle input is incomplete: no galaxies in image",
		},
		{
			name: "placeholder",
			err:  puzzle.NotImplemented("day03.part_two"),
			want: "This part is not solved yet",
		},
		{
			name: "yaml line",
			err: &domain.OpError{Op: "yamlanswers.load", Kind: domain.KindInvalidConfig, Path: "/w/answers.yaml",
				Err: errors.New("yaml: line 4: did not find expected key")},
			want: "Invalid YAML at answers.yaml line 4",
		},
		{
			name: "plain config",
			err:  &domain.OpError{Op: "workspacefinder.loadconfig", Kind: domain.KindInvalidConfig, Err: errors.New("year must be >= 2015")},
			want: "Invalid config",
		},
		{name: "bare yaml", err: errors.New("yaml: line 2: mapping values are not allowed"), want: "Invalid YAML line 2"},
		{name: "unknown", err: errors.New("boom"), want: "Unexpected error (see logs)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, userMessage(tt.err))
		})
	}
}

func TestClampString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", clampString("abc", 0))
	assert.Equal(t, "abc", clampString("abc", 3))
	assert.Equal(t, "ab…", clampString("abc", 2))
	assert.Equal(t, "éé…", clampString("ééé", 2))
}
