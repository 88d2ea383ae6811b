// Package day06 counts the ways to win boat races: holding the button for h
// milliseconds of a t millisecond race travels h*(t-h) millimetres.
package day06

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/jsfr/advent-of-code-2023/internal/puzzle"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle/scan"
)

type Day struct{}

var _ puzzle.Solver = Day{}

type races struct {
	times   []int
	records []int
}

// SolvePartOne multiplies the number of winning hold times of every race.
func (Day) SolvePartOne(input string) (string, error) {
	r, err := parseRaces(input)
	if err != nil {
		return "", err
	}

	product := 1
	for i, t := range r.times {
		product *= waysToWin(t, r.records[i])
	}
	return puzzle.Answer(product), nil
}

// SolvePartTwo reads each row as one number with the spacing removed.
func (Day) SolvePartTwo(input string) (string, error) {
	r, err := parseRaces(input)
	if err != nil {
		return "", err
	}

	t, err := concat(r.times)
	if err != nil {
		return "", puzzle.Invalid("day06.part_two", errors.Wrap(err, "time"))
	}
	record, err := concat(r.records)
	if err != nil {
		return "", puzzle.Invalid("day06.part_two", errors.Wrap(err, "distance"))
	}
	return puzzle.Answer(waysToWin(t, record)), nil
}

func waysToWin(t, record int) int {
	n := 0
	for hold := 1; hold < t; hold++ {
		if hold*(t-hold) > record {
			n++
		}
	}
	return n
}

func concat(nums []int) (int, error) {
	var b strings.Builder
	for _, n := range nums {
		b.WriteString(strconv.Itoa(n))
	}
	return strconv.Atoi(b.String())
}

// parseRaces reads the "Time:" and "Distance:" rows.
func parseRaces(input string) (races, error) {
	r, err := scan.All(input, func(c *scan.Cursor) (races, error) {
		times, err := row(c, "Time:")
		if err != nil {
			return races{}, err
		}
		if err := c.Newline(); err != nil {
			return races{}, err
		}
		records, err := row(c, "Distance:")
		if err != nil {
			return races{}, err
		}
		_ = c.Newline()
		if len(times) != len(records) {
			return races{}, errors.Newf("%d times but %d distances", len(times), len(records))
		}
		return races{times: times, records: records}, nil
	})
	if err != nil {
		return races{}, puzzle.Invalid("day06.parse", errors.Wrap(err, "failed to parse races"))
	}
	return r, nil
}

func row(c *scan.Cursor, label string) ([]int, error) {
	if err := c.Tag(label); err != nil {
		return nil, err
	}
	if err := c.Spaces1(); err != nil {
		return nil, err
	}
	nums, err := scan.Ints(c)
	if err != nil {
		return nil, err
	}
	c.Spaces()
	return nums, nil
}
