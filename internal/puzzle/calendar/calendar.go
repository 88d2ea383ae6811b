// Package calendar wires every implemented day into a puzzle.Registry.
package calendar

import (
	"github.com/jsfr/advent-of-code-2023/internal/puzzle"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle/day01"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle/day02"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle/day03"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle/day04"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle/day05"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle/day06"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle/day07"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle/day08"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle/day09"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle/day11"
)

func solver(s puzzle.Solver) func() puzzle.Solver {
	return func() puzzle.Solver { return s }
}

// New returns a registry holding every day that has a solver.
func New() *puzzle.Registry {
	return puzzle.NewRegistry(
		puzzle.Entry{Day: "01", Title: "Trebuchet?!", New: solver(day01.Day{})},
		puzzle.Entry{Day: "02", Title: "Cube Conundrum", New: solver(day02.Day{})},
		puzzle.Entry{Day: "03", Title: "Gear Ratios", New: solver(day03.Day{})},
		puzzle.Entry{Day: "04", Title: "Scratchcards", New: solver(day04.Day{})},
		puzzle.Entry{Day: "05", Title: "If You Give A Seed A Fertilizer", New: solver(day05.Day{})},
		puzzle.Entry{Day: "06", Title: "Wait For It", New: solver(day06.Day{})},
		puzzle.Entry{Day: "07", Title: "Camel Cards", New: solver(day07.Day{})},
		puzzle.Entry{Day: "08", Title: "Haunted Wasteland", New: solver(day08.Day{})},
		puzzle.Entry{Day: "09", Title: "Mirage Maintenance", New: solver(day09.Day{})},
		puzzle.Entry{Day: "11", Title: "Cosmic Expansion", New: solver(day11.Day{})},
	)
}
