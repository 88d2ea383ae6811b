// Package day03 reads an engine schematic: a grid of digits, '.' for empty
// cells and anything else as a symbol.
package day03

import (
	"github.com/jsfr/advent-of-code-2023/internal/puzzle"
)

type Day struct{}

var _ puzzle.Solver = Day{}

type schematic [][]byte

// partNumber is a horizontal run of digits and the cells it spans.
type partNumber struct {
	value    int
	row      int
	from, to int // inclusive column range
}

// SolvePartOne sums every number that touches a symbol, diagonals included.
func (Day) SolvePartOne(input string) (string, error) {
	grid := parseSchematic(input)

	total := 0
	for _, n := range grid.numbers() {
		if grid.touchesSymbol(n) {
			total += n.value
		}
	}
	return puzzle.Answer(total), nil
}

func (Day) SolvePartTwo(string) (string, error) {
	return "", puzzle.NotImplemented("day03.part_two")
}

func parseSchematic(input string) schematic {
	lines := puzzle.Lines(input)
	grid := make(schematic, len(lines))
	for i, l := range lines {
		grid[i] = []byte(l)
	}
	return grid
}

func (g schematic) numbers() []partNumber {
	var out []partNumber
	for r, row := range g {
		for c := 0; c < len(row); c++ {
			if !isDigit(row[c]) {
				continue
			}
			n := partNumber{row: r, from: c}
			for c < len(row) && isDigit(row[c]) {
				n.value = n.value*10 + int(row[c]-'0')
				c++
			}
			n.to = c - 1
			out = append(out, n)
		}
	}
	return out
}

func (g schematic) touchesSymbol(n partNumber) bool {
	for r := n.row - 1; r <= n.row+1; r++ {
		for c := n.from - 1; c <= n.to+1; c++ {
			if g.isSymbol(r, c) {
				return true
			}
		}
	}
	return false
}

func (g schematic) isSymbol(r, c int) bool {
	if r < 0 || r >= len(g) || c < 0 || c >= len(g[r]) {
		return false
	}
	b := g[r][c]
	return b != '.' && !isDigit(b)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
