// Package day01 recovers calibration values: the first and last digit of each
// line form a two-digit number, and the answer is their sum.
package day01

import (
	"strings"

	"github.com/jsfr/advent-of-code-2023/internal/puzzle"
)

type Day struct{}

var _ puzzle.Solver = Day{}

var spelled = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

func (Day) SolvePartOne(input string) (string, error) {
	return sum("day01.part_one", input, asciiDigit)
}

func (Day) SolvePartTwo(input string) (string, error) {
	return sum("day01.part_two", input, spelledDigit)
}

// digitAt reports the digit that starts at s[i], if any.
type digitAt func(s string, i int) (int, bool)

func sum(op, input string, at digitAt) (string, error) {
	total := 0
	for _, line := range puzzle.Lines(input) {
		first, ok := firstDigit(line, at)
		if !ok {
			return "", puzzle.Missing(op, "no first digit present in line %q", line)
		}
		last, ok := lastDigit(line, at)
		if !ok {
			return "", puzzle.Missing(op, "no last digit present in line %q", line)
		}
		total += first*10 + last
	}
	return puzzle.Answer(total), nil
}

func firstDigit(line string, at digitAt) (int, bool) {
	for i := 0; i < len(line); i++ {
		if d, ok := at(line, i); ok {
			return d, true
		}
	}
	return 0, false
}

// Scanning from the right lets overlapping words resolve to the later one:
// "eightwo" ends in 2.
func lastDigit(line string, at digitAt) (int, bool) {
	for i := len(line) - 1; i >= 0; i-- {
		if d, ok := at(line, i); ok {
			return d, true
		}
	}
	return 0, false
}

func asciiDigit(s string, i int) (int, bool) {
	if s[i] >= '0' && s[i] <= '9' {
		return int(s[i] - '0'), true
	}
	return 0, false
}

func spelledDigit(s string, i int) (int, bool) {
	if s[i] >= '1' && s[i] <= '9' {
		return int(s[i] - '0'), true
	}
	for n, w := range spelled {
		if strings.HasPrefix(s[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}
