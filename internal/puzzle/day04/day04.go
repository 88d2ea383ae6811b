// Package day04 scores scratchcards.
package day04

import (
	"slices"

	"github.com/jsfr/advent-of-code-2023/internal/puzzle"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle/scan"
)

type Day struct{}

var _ puzzle.Solver = Day{}

type card struct {
	id      int
	winning []int
	have    []int
}

func (c card) matches() int {
	n := 0
	for _, h := range c.have {
		if slices.Contains(c.winning, h) {
			n++
		}
	}
	return n
}

// score is 1 for the first match and doubles for every further one.
func (c card) score() int {
	m := c.matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

func (Day) SolvePartOne(input string) (string, error) {
	cards, err := puzzle.ParseLines("day04.parse", input, parseCard)
	if err != nil {
		return "", err
	}

	total := 0
	for _, c := range cards {
		total += c.score()
	}
	return puzzle.Answer(total), nil
}

// SolvePartTwo counts cards once every card with m matches has won a copy of
// each of the next m cards, for every copy of itself held.
func (Day) SolvePartTwo(input string) (string, error) {
	cards, err := puzzle.ParseLines("day04.parse", input, parseCard)
	if err != nil {
		return "", err
	}

	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= i+c.matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}

	total := 0
	for _, n := range copies {
		total += n
	}
	return puzzle.Answer(total), nil
}

// parseCard reads "Card  1: 41 48 83 | 83 86  6".
func parseCard(line string) (card, error) {
	return scan.All(line, func(c *scan.Cursor) (card, error) {
		if err := c.Tag("Card"); err != nil {
			return card{}, err
		}
		c.Spaces()
		id, err := c.Int()
		if err != nil {
			return card{}, err
		}
		if err := c.Tag(":"); err != nil {
			return card{}, err
		}
		c.Spaces()
		winning, err := scan.Ints(c)
		if err != nil {
			return card{}, err
		}
		c.Spaces()
		if err := c.Tag("|"); err != nil {
			return card{}, err
		}
		c.Spaces()
		have, err := scan.Ints(c)
		if err != nil {
			return card{}, err
		}
		c.Spaces()
		return card{id: id, winning: winning, have: have}, nil
	})
}
