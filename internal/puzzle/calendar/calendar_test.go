package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle"
)

func TestNew_RegisteredDays(t *testing.T) {
	t.Parallel()

	var got []domain.DayID
	for _, e := range New().Days() {
		got = append(got, e.Day)
		assert.NotEmpty(t, e.Title, e.Day)
		assert.NotNil(t, e.New(), e.Day)
	}
	assert.Equal(t, []domain.DayID{"01", "02", "03", "04", "05", "06", "07", "08", "09", "11"}, got)
}

func TestNew_DayTenIsNotRegistered(t *testing.T) {
	t.Parallel()

	_, err := New().Lookup("10")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
	assert.Contains(t, err.Error(), "day 10 was not found")
}

func TestNew_SolvesSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		day   domain.DayID
		part  domain.PartID
		input string
		want  string
	}{
		{day: "01", part: domain.PartOne, input: "1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet\n", want: "142"},
		{day: "04", part: domain.PartOne, input: "Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53\n", want: "8"},
		{day: "06", part: domain.PartTwo, input: "Time:      7  15   30\nDistance:  9  40  200\n", want: "71503"},
		{day: "09", part: domain.PartTwo, input: "10 13 16 21 30 45\n", want: "5"},
	}

	reg := New()
	for _, tt := range tests {
		t.Run(string(tt.day), func(t *testing.T) {
			t.Parallel()
			e, err := reg.Lookup(tt.day)
			require.NoError(t, err)
			got, err := puzzle.Solve(e.New(), tt.part, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
