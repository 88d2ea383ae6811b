// Package day09 extrapolates OASIS sensor histories.
package day09

import (
	"github.com/jsfr/advent-of-code-2023/internal/puzzle"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle/scan"
)

type Day struct{}

var _ puzzle.Solver = Day{}

// SolvePartOne sums the next value of every history.
func (Day) SolvePartOne(input string) (string, error) {
	return sumOf(input, next)
}

// SolvePartTwo sums the value preceding every history.
func (Day) SolvePartTwo(input string) (string, error) {
	return sumOf(input, prev)
}

func sumOf(input string, extrapolate func([]int) int) (string, error) {
	histories, err := puzzle.ParseLines("day09.parse", input, parseHistory)
	if err != nil {
		return "", err
	}

	total := 0
	for _, h := range histories {
		total += extrapolate(h)
	}
	return puzzle.Answer(total), nil
}

func next(h []int) int {
	if allZero(h) {
		return 0
	}
	return h[len(h)-1] + next(diffs(h))
}

func prev(h []int) int {
	if allZero(h) {
		return 0
	}
	return h[0] - prev(diffs(h))
}

func diffs(h []int) []int {
	out := make([]int, len(h)-1)
	for i := range out {
		out[i] = h[i+1] - h[i]
	}
	return out
}

func allZero(h []int) bool {
	for _, v := range h {
		if v != 0 {
			return false
		}
	}
	return true
}

// parseHistory reads blank-separated, possibly negative integers.
func parseHistory(line string) ([]int, error) {
	return scan.All(line, func(c *scan.Cursor) ([]int, error) {
		c.Spaces()
		first, err := c.SignedInt()
		if err != nil {
			return nil, err
		}
		out := []int{first}
		for {
			c.Spaces()
			if c.Done() {
				return out, nil
			}
			n, err := c.SignedInt()
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
	})
}
