// Package day02 plays the cube game: each game reveals several handfuls of
// red, green and blue cubes.
package day02

import (
	"github.com/cockroachdb/errors"

	"github.com/jsfr/advent-of-code-2023/internal/puzzle"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle/scan"
)

// Bag limits for part one.
const (
	maxRed   = 12
	maxGreen = 13
	maxBlue  = 14
)

type Day struct{}

var _ puzzle.Solver = Day{}

type game struct {
	id   int
	sets []set
}

type set struct {
	red, green, blue int
}

func (s set) power() int { return s.red * s.green * s.blue }

// minSet is the smallest bag that makes every handful of g possible.
func (g game) minSet() set {
	var m set
	for _, s := range g.sets {
		m.red = max(m.red, s.red)
		m.green = max(m.green, s.green)
		m.blue = max(m.blue, s.blue)
	}
	return m
}

func (g game) possible() bool {
	for _, s := range g.sets {
		if s.red > maxRed || s.green > maxGreen || s.blue > maxBlue {
			return false
		}
	}
	return true
}

func (Day) SolvePartOne(input string) (string, error) {
	games, err := puzzle.ParseLines("day02.parse", input, parseGame)
	if err != nil {
		return "", err
	}

	total := 0
	for _, g := range games {
		if g.possible() {
			total += g.id
		}
	}
	return puzzle.Answer(total), nil
}

func (Day) SolvePartTwo(input string) (string, error) {
	games, err := puzzle.ParseLines("day02.parse", input, parseGame)
	if err != nil {
		return "", err
	}

	total := 0
	for _, g := range games {
		total += g.minSet().power()
	}
	return puzzle.Answer(total), nil
}

// parseGame reads "Game N: 3 blue, 4 red; 1 red, 2 green".
func parseGame(line string) (game, error) {
	return scan.All(line, func(c *scan.Cursor) (game, error) {
		if err := c.Tag("Game "); err != nil {
			return game{}, err
		}
		id, err := c.Int()
		if err != nil {
			return game{}, err
		}
		if err := c.Tag(":"); err != nil {
			return game{}, err
		}
		c.Spaces()
		sets, err := scan.List(c, "; ", parseSet)
		if err != nil {
			return game{}, err
		}
		return game{id: id, sets: sets}, nil
	})
}

func parseSet(c *scan.Cursor) (set, error) {
	var s set
	_, err := scan.List(c, ", ", func(c *scan.Cursor) (struct{}, error) {
		n, err := c.Int()
		if err != nil {
			return struct{}{}, err
		}
		c.Spaces()
		mark := c.Mark()
		color, err := c.Alpha()
		if err != nil {
			return struct{}{}, err
		}
		switch color {
		case "red":
			s.red = n
		case "green":
			s.green = n
		case "blue":
			s.blue = n
		default:
			c.Reset(mark)
			return struct{}{}, errors.Newf("unknown colour %q", color)
		}
		return struct{}{}, nil
	})
	return s, err
}
