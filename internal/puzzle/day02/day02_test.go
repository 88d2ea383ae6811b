package day02

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
)

const sample = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestSolvePartOne(t *testing.T) {
	t.Parallel()

	got, err := Day{}.SolvePartOne(sample)
	require.NoError(t, err)
	assert.Equal(t, "8", got)
}

func TestSolvePartTwo(t *testing.T) {
	t.Parallel()

	got, err := Day{}.SolvePartTwo(sample)
	require.NoError(t, err)
	assert.Equal(t, "2286", got)
}

func TestParseGame(t *testing.T) {
	t.Parallel()

	g, err := parseGame("Game 3: 8 green, 6 blue, 20 red; 5 blue")
	require.NoError(t, err)

	want := game{id: 3, sets: []set{{red: 20, green: 8, blue: 6}, {blue: 5}}}
	if diff := cmp.Diff(want, g, cmp.AllowUnexported(game{}, set{})); diff != "" {
		t.Fatalf("game mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, set{red: 20, green: 8, blue: 6}, g.minSet())
}

func TestParseGame_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{name: "missing tag", line: "Gme 1: 3 blue"},
		{name: "missing id", line: "Game : 3 blue"},
		{name: "unknown colour", line: "Game 1: 3 purple"},
		{name: "trailing separator", line: "Game 1: 3 blue;"},
		{name: "no sets", line: "Game 1:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Day{}.SolvePartOne(tt.line)
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindInvalidInput))
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestParseError_IsDeterministic(t *testing.T) {
	t.Parallel()

	_, first := Day{}.SolvePartTwo("Game 1: 3 blue, x red")
	_, second := Day{}.SolvePartTwo("Game 1: 3 blue, x red")
	require.Error(t, first)
	assert.Equal(t, first.Error(), second.Error())
}
