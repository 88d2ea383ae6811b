// Package day11 measures distances between galaxies in an expanding image.
package day11

import (
	"github.com/jsfr/advent-of-code-2023/internal/puzzle"
)

type Day struct{}

var _ puzzle.Solver = Day{}

const (
	youngFactor = 2
	oldFactor   = 1_000_000
)

// SolvePartOne sums the pairwise distances with every empty row and column
// doubled.
func (Day) SolvePartOne(input string) (string, error) {
	return sumDistances(input, youngFactor)
}

// SolvePartTwo replaces every empty row and column with a million of them.
func (Day) SolvePartTwo(input string) (string, error) {
	return sumDistances(input, oldFactor)
}

type point struct {
	row, col int
}

// image is the parsed galaxy map. The expansion factor is fixed when it is
// built and applied to every coordinate it reports.
type image struct {
	galaxies []point
	factor   int
	// emptyRowsBefore[r] counts empty rows strictly above row r; likewise
	// for columns.
	emptyRowsBefore []int
	emptyColsBefore []int
}

func sumDistances(input string, factor int) (string, error) {
	img, err := parseImage(input, factor)
	if err != nil {
		return "", err
	}
	if len(img.galaxies) == 0 {
		return "", puzzle.Missing("day11.solve", "no galaxies in image")
	}

	total := 0
	for i, a := range img.galaxies {
		pa := img.expand(a)
		for _, b := range img.galaxies[i+1:] {
			pb := img.expand(b)
			total += abs(pa.row-pb.row) + abs(pa.col-pb.col)
		}
	}
	return puzzle.Answer(total), nil
}

func (img image) expand(p point) point {
	return point{
		row: p.row + (img.factor-1)*img.emptyRowsBefore[p.row],
		col: p.col + (img.factor-1)*img.emptyColsBefore[p.col],
	}
}

func parseImage(input string, factor int) (image, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return image{factor: factor}, nil
	}

	width := len(lines[0])
	rowHas := make([]bool, len(lines))
	colHas := make([]bool, width)
	var galaxies []point
	for r, line := range lines {
		if len(line) != width {
			return image{}, puzzle.Invalidf("day11.parse", "line %d %q has width %d, want %d", r+1, line, len(line), width)
		}
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case '.':
			case '#':
				galaxies = append(galaxies, point{row: r, col: c})
				rowHas[r] = true
				colHas[c] = true
			default:
				return image{}, puzzle.Invalidf("day11.parse", "line %d %q: unexpected %q at column %d", r+1, line, line[c], c+1)
			}
		}
	}

	return image{
		galaxies:        galaxies,
		factor:          factor,
		emptyRowsBefore: emptyBefore(rowHas),
		emptyColsBefore: emptyBefore(colHas),
	}, nil
}

func emptyBefore(has []bool) []int {
	out := make([]int, len(has))
	n := 0
	for i, h := range has {
		out[i] = n
		if !h {
			n++
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
